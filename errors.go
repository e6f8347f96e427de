package segtree

import "errors"

var (
	ErrEmptyInput      = errors.New("segtree: input is empty")
	ErrInputTooLarge   = errors.New("segtree: input size exceeds maximum")
	ErrValueOutOfRange = errors.New("segtree: value out of range")
	ErrEmptyTree       = errors.New("segtree: tree is empty")
	ErrInvertedRange   = errors.New("segtree: start index is greater than end index")
	ErrIndexOutOfRange = errors.New("segtree: index out of range")
	ErrInvalidOption   = errors.New("segtree: invalid option")
)
