package md2flyer

import (
	"errors"
	"fmt"

	"github.com/alnah/go-md2flyer/internal/placeholder"
)

// Sentinel errors for library operations.
var (
	ErrContentNotFound  = errors.New("content file not found")
	ErrTemplateNotFound = errors.New("template file not found")
	ErrEmptyContent     = errors.New("content cannot be empty")
	ErrSectionCount     = errors.New("wrong number of sections")
	ErrWriteOutput      = errors.New("failed to write output")

	// Template verification errors.
	ErrPlaceholderMissing   = placeholder.ErrPlaceholderMissing
	ErrPlaceholderDuplicate = placeholder.ErrPlaceholderDuplicate

	// PDF export errors.
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
	ErrPDFGeneration   = errors.New("PDF generation failed")
)

// SectionCountError reports a content file with the wrong number of sections.
// It matches ErrSectionCount with errors.Is.
type SectionCountError struct {
	Found int
	Want  int
}

func (e *SectionCountError) Error() string {
	return fmt.Sprintf("%v: found %d, want %d", ErrSectionCount, e.Found, e.Want)
}

func (e *SectionCountError) Unwrap() error {
	return ErrSectionCount
}
