package critbit

import (
	"errors"

	"critbit/internal/base"
)

//goland:noinspection GoUnusedGlobalVariable
var (
	ErrNilTree      = errors.New("critbit: nil tree")
	ErrNilObject    = errors.New("critbit: nil object")
	ErrWrongKeyKind = errors.New("critbit: object does not implement the tree's key kind")
	ErrAlreadyExists = errors.New("critbit: an object with this key already exists")
	ErrNotFound     = errors.New("critbit: no object with this key")

	ErrOutOfMemory = base.ErrOutOfMemory
)
