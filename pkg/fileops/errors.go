package fileops

import "errors"

// Exported variables.
//
// The copy sentinels are the cause inside the *errors.PathError a copy
// returns; its Kind carries the coarser classification.
var (
	ErrFromNotFound        = errors.New("source does not exist")
	ErrFromWrongType       = errors.New("source is not a regular file")
	ErrFromUnsupportedType = errors.New("source is not a file, directory or symlink")
	ErrToWrongType         = errors.New("destination has the wrong file type")
	ErrEquivalentPath      = errors.New("source and destination are the same file")
)
