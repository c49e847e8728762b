package client

import "errors"

var (
	ErrInvalidInput = errors.New("input is neither an item list nor an object with items")
	ErrNoItems      = errors.New("input has no items")
)
