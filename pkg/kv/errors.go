package kv

import "errors"

var (
	// ErrEmptyPath indicates a store was created without a backing path
	ErrEmptyPath = errors.New("kv.empty_path")
)
