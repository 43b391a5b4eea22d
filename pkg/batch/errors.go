package batch

import "errors"

var (
	ErrReadInput   = errors.New("failed to read submissions")
	ErrDecodeInput = errors.New("failed to decode submissions")
	ErrUnknownForm = errors.New("unknown form kind")
)
