package resumy

import (
	"html"
	"strings"
)

// injectStyle inserts a <style> block into HTML content so the stylesheet
// travels inside the document handed to the PDF engine. Tries </head>
// first, then after <body>, then prepends. The CSS is sanitized so it
// cannot close the style block early.
func injectStyle(htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}
	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	return insertIntoHead(htmlContent, styleBlock)
}

// injectMetadata inserts document metadata tags into the HTML head.
// Chrome stamps the rendered page's title and meta tags into the PDF
// information dictionary, which is how the output PDF ends up carrying
// title, author, keywords and dates.
func injectMetadata(htmlContent string, meta Metadata) string {
	var b strings.Builder

	if meta.Title != "" {
		b.WriteString("<title>" + html.EscapeString(meta.Title) + "</title>")
	}
	if meta.Author != "" {
		b.WriteString(`<meta name="author" content="` + html.EscapeString(meta.Author) + `">`)
	}
	if len(meta.Keywords) > 0 {
		b.WriteString(`<meta name="keywords" content="` + html.EscapeString(strings.Join(meta.Keywords, ", ")) + `">`)
	}
	if meta.Created != "" {
		b.WriteString(`<meta name="dcterms.created" content="` + html.EscapeString(meta.Created) + `">`)
	}
	if meta.Modified != "" {
		b.WriteString(`<meta name="dcterms.modified" content="` + html.EscapeString(meta.Modified) + `">`)
	}

	if b.Len() == 0 {
		return htmlContent
	}
	return insertIntoHead(htmlContent, b.String())
}

// insertIntoHead places block before </head> when one exists, otherwise
// right after the opening <body> tag, otherwise prepends it.
func insertIntoHead(htmlContent, block string) string {
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + block + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + block + htmlContent[insertPos:]
		}
	}

	return block + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
