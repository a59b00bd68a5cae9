package admin

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported content file format")
	ErrDecodingFile      = errors.New("error decoding content file")
	ErrEmptyKey          = errors.New("content file has no slot key")
	ErrNotADirectory     = errors.New("content path is not a directory")
	ErrDuplicateKey      = errors.New("two content files map to the same slot")
)
