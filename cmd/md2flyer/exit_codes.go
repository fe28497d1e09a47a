package main

import (
	"context"
	"errors"
	"os"

	md2flyer "github.com/alnah/go-md2flyer"
	"github.com/alnah/go-md2flyer/internal/assets"
	"github.com/alnah/go-md2flyer/internal/config"
	"github.com/alnah/go-md2flyer/internal/fileutil"
	"github.com/alnah/go-md2flyer/internal/hints"
	"github.com/alnah/go-md2flyer/internal/watch"
)

// Exit codes for md2flyer CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, content layout, or template
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, md2flyer.ErrBrowserConnect) ||
		errors.Is(err, md2flyer.ErrPageCreate) ||
		errors.Is(err, md2flyer.ErrPageLoad) ||
		errors.Is(err, md2flyer.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2flyer.ErrContentNotFound) ||
		errors.Is(err, md2flyer.ErrTemplateNotFound) ||
		errors.Is(err, md2flyer.ErrWriteOutput) ||
		errors.Is(err, fileutil.ErrFileExists) ||
		errors.Is(err, watch.ErrWatch) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2flyer.ErrEmptyContent) ||
		errors.Is(err, md2flyer.ErrSectionCount) ||
		errors.Is(err, md2flyer.ErrPlaceholderMissing) ||
		errors.Is(err, md2flyer.ErrPlaceholderDuplicate) ||
		errors.Is(err, md2flyer.ErrInvalidPageSize) ||
		errors.Is(err, assets.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var countErr *md2flyer.SectionCountError

	switch {
	case errors.As(err, &countErr):
		return hints.ForSectionCount(countErr.Found, countErr.Want)
	case errors.Is(err, md2flyer.ErrContentNotFound), errors.Is(err, md2flyer.ErrTemplateNotFound):
		return hints.ForMissingInput()
	case errors.Is(err, md2flyer.ErrPlaceholderMissing), errors.Is(err, md2flyer.ErrPlaceholderDuplicate):
		return hints.ForPlaceholders(md2flyer.Placeholders())
	case errors.Is(err, md2flyer.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, md2flyer.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, md2flyer.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
