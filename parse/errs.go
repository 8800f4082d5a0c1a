package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse  = errors.New("parse error")
	ErrFormat = fmt.Errorf("%w: unsupported format", ErrParse)
)
