package resumy

import (
	"context"
	"fmt"
	"time"
)

// defaultTimeout bounds the browser render when no timeout is specified.
const defaultTimeout = 60 * time.Second

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("resumy: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// BuildInput contains everything needed to build one resume.
type BuildInput struct {
	Document Document // Resume document, JSON Resume shaped (required)
	Theme    *Theme   // Theme directory (required)
	Metadata Metadata // PDF metadata, already normalized
}

// Service orchestrates the resume-to-PDF pipeline.
type Service struct {
	cfg          serviceConfig
	templates    templateRenderer
	pdfConverter pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:       serviceConfig{timeout: defaultTimeout},
		templates: newHTMLTemplateRenderer(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PDF converter if not injected (e.g., by tests)
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s
}

// Build runs the full pipeline and returns the PDF as bytes.
// The theme's template renders against the whole document as context,
// every stylesheet in the theme directory is folded into the HTML, the
// metadata is stamped into the head, and headless Chrome prints the
// result. The context is used for cancellation and timeout.
func (s *Service) Build(ctx context.Context, input BuildInput) ([]byte, error) {
	tplSrc, err := input.Theme.Template()
	if err != nil {
		return nil, err
	}

	htmlContent, err := s.templates.Render(tplSrc, input.Document)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	sheets, err := input.Theme.Stylesheets()
	if err != nil {
		return nil, err
	}
	for _, css := range sheets {
		htmlContent = injectStyle(htmlContent, css)
	}

	htmlContent = injectMetadata(htmlContent, input.Metadata)

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}
