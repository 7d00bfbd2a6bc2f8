package domain

import "errors"

// Content errors
var (
	ErrNotFound         = errors.New("record not found")
	ErrSlugTaken        = errors.New("slug is already in use")
	ErrMissingSlug      = errors.New("slug is required")
	ErrMissingTitle     = errors.New("title is required")
	ErrMissingName      = errors.New("name is required")
	ErrInvalidGender    = errors.New("gender must be 'boys', 'girls' or 'coed'")
	ErrInvalidLocation  = errors.New("unknown location")
	ErrInvalidType      = errors.New("unknown program type")
	ErrInvalidGlobalKey = errors.New("unknown global key")
	ErrInvalidBlocks    = errors.New("block list is not valid JSON")
)
