package resumy

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/resumy/go-resumy/internal/fileutil"
)

// pdfConverter abstracts HTML to PDF conversion to allow different backends.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ pdfConverter = (*rodConverter)(nil)

// PDF page dimensions in inches (US Letter format). Themes may override
// the page box with @page rules; PreferCSSPageSize lets them win.
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.5
)

// rodConverter converts HTML to PDF using headless Chrome via go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodConverter struct {
	browser *rod.Browser
	timeout time.Duration
}

// newRodConverter creates a rodConverter with the given timeout.
func newRodConverter(timeout time.Duration) *rodConverter {
	return &rodConverter{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (c *rodConverter) ensureBrowser() error {
	if c.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	c.browser = rod.New().ControlURL(u)
	if err := c.browser.Connect(); err != nil {
		c.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.browser != nil {
		err := c.browser.Close()
		c.browser = nil
		return err
	}
	return nil
}

// ToPDF renders htmlContent to PDF bytes with print media semantics.
// The content is staged as a temporary file so relative references inside
// the document resolve against a real location.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.ensureBrowser(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := c.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// printOptions constructs the PrintToPDF request for resume output.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(paperWidthInches),
		PaperHeight:       floatPtr(paperHeightInches),
		MarginTop:         floatPtr(marginInches),
		MarginBottom:      floatPtr(marginInches),
		MarginLeft:        floatPtr(marginInches),
		MarginRight:       floatPtr(marginInches),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
