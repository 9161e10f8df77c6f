package main

import (
	"errors"
	"os"
	"syscall"

	resumy "github.com/resumy/go-resumy"
	"github.com/resumy/go-resumy/internal/assets"
	"github.com/resumy/go-resumy/internal/dateutil"
	"github.com/resumy/go-resumy/internal/schema"
)

// Exit codes for the resumy CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage/validation, and
// custom codes < 126. I/O failures report the underlying OS error number
// when one is available.
const (
	ExitSuccess = 0 // Successful operation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, schema validation failure, malformed input
	ExitIO      = 3 // File not found, permission denied (no errno available)
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, resumy.ErrBrowserConnect) ||
		errors.Is(err, resumy.ErrPageCreate) ||
		errors.Is(err, resumy.ErrPageLoad) ||
		errors.Is(err, resumy.ErrPDFGeneration) {
		return ExitBrowser
	}

	// Validation and usage errors (exit 2)
	var validationErr *schema.ValidationError
	if errors.As(err, &validationErr) {
		return ExitUsage
	}
	if errors.Is(err, schema.ErrSchemaLoad) ||
		errors.Is(err, resumy.ErrDocumentParse) ||
		errors.Is(err, resumy.ErrMissingProfile) ||
		errors.Is(err, resumy.ErrInvalidDate) ||
		errors.Is(err, resumy.ErrTemplateRender) ||
		errors.Is(err, resumy.ErrMarkdownRender) ||
		errors.Is(err, dateutil.ErrUnknownMonth) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, ErrMissingConfigPath) {
		return ExitUsage
	}

	// I/O errors: prefer the OS error number when one is wrapped
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, resumy.ErrDocumentNotFound) ||
		errors.Is(err, resumy.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrSchemaNotFound) ||
		errors.Is(err, assets.ErrThemeNotFound) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteConfig) ||
		errors.Is(err, ErrCopyTheme) {
		var errno syscall.Errno
		if errors.As(err, &errno) {
			return int(errno)
		}
		return ExitIO
	}

	return ExitGeneral
}
