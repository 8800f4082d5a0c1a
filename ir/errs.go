package ir

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrShape    = errors.New("shape mismatch")
	ErrConflict = errors.New("structural conflict")
	ErrReadOnly = fmt.Errorf("read-only node: %w", errors.ErrUnsupported)
)
