package domain

import "errors"

var (
	ErrPairNotFound = errors.New("trading pair not found")
	ErrLabelExists  = errors.New("trading pair label already exists")
)
