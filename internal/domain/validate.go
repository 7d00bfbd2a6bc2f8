package domain

import "strings"

// Validate checks a Program before create/update.
func (p *Program) Validate() error {
	if strings.TrimSpace(p.Slug) == "" {
		return ErrMissingSlug
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrMissingTitle
	}
	if !isValidGender(p.Gender) {
		return ErrInvalidGender
	}
	if !isValidLocation(p.Location) {
		return ErrInvalidLocation
	}
	if !isValidProgramType(p.ProgramType) {
		return ErrInvalidType
	}
	return nil
}

// Validate checks a Page before create/update. An empty block list is valid;
// a present one must decode.
func (p *Page) Validate() error {
	if strings.TrimSpace(p.Slug) == "" {
		return ErrMissingSlug
	}
	if strings.TrimSpace(p.Title) == "" {
		return ErrMissingTitle
	}
	if _, err := DecodeBlocks(p.Blocks); err != nil {
		return ErrInvalidBlocks
	}
	return nil
}

func isValidGender(g Gender) bool {
	for _, v := range AllGenders {
		if g == v {
			return true
		}
	}
	return false
}

func isValidLocation(l Location) bool {
	for _, v := range AllLocations {
		if l == v {
			return true
		}
	}
	return false
}

func isValidProgramType(t ProgramType) bool {
	for _, v := range AllProgramTypes {
		if t == v {
			return true
		}
	}
	return false
}
