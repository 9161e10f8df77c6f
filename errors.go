package resumy

import "errors"

// Sentinel errors for library operations.
var (
	// Document loading errors.
	ErrDocumentNotFound = errors.New("document file not found")
	ErrDocumentParse    = errors.New("failed to parse document")

	// Dialect transformation errors.
	ErrMissingProfile = errors.New("legacy document has no profile section")
	ErrInvalidDate    = errors.New("invalid partial date")

	// Theme and template errors.
	ErrTemplateNotFound = errors.New("theme template not found")
	ErrTemplateRender   = errors.New("theme template rendering failed")
	ErrMarkdownRender   = errors.New("markdown rendering failed")

	// PDF rendering errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
