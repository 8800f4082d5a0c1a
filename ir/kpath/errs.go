package kpath

import "errors"

var ErrSyntax = errors.New("path syntax error")
