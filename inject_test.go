package resumy

import (
	"strings"
	"testing"
)

func TestInjectStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "empty css returns html unchanged",
			html: "<html><head></head><body></body></html>",
			css:  "",
			want: "<html><head></head><body></body></html>",
		},
		{
			name: "inserts before closing head",
			html: "<html><head></head><body></body></html>",
			css:  "body{color:red}",
			want: "<html><head><style>body{color:red}</style></head><body></body></html>",
		},
		{
			name: "inserts after body when no head",
			html: "<html><body>hi</body></html>",
			css:  "p{}",
			want: "<html><body><style>p{}</style>hi</body></html>",
		},
		{
			name: "prepends when no head or body",
			html: "<p>bare</p>",
			css:  "p{}",
			want: "<style>p{}</style><p>bare</p>",
		},
		{
			name: "escapes style-closing sequences",
			html: "<html><head></head><body></body></html>",
			css:  "p{}</style><script>alert(1)</script>",
			want: `<html><head><style>p{}<\/style><script>alert(1)<\/script></style></head><body></body></html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := injectStyle(tt.html, tt.css); got != tt.want {
				t.Errorf("injectStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInjectMetadata(t *testing.T) {
	t.Parallel()

	base := "<html><head></head><body></body></html>"

	t.Run("empty metadata leaves html unchanged", func(t *testing.T) {
		t.Parallel()

		if got := injectMetadata(base, Metadata{}); got != base {
			t.Errorf("injectMetadata() = %q, want unchanged", got)
		}
	})

	t.Run("injects title and meta tags", func(t *testing.T) {
		t.Parallel()

		meta := Metadata{
			Title:    "Jane Doe Resume",
			Author:   "Jane Doe",
			Keywords: []string{"resume", "go"},
			Created:  "2026-01-01",
			Modified: "2026-08-23",
		}
		got := injectMetadata(base, meta)

		for _, want := range []string{
			"<title>Jane Doe Resume</title>",
			`<meta name="author" content="Jane Doe">`,
			`<meta name="keywords" content="resume, go">`,
			`<meta name="dcterms.created" content="2026-01-01">`,
			`<meta name="dcterms.modified" content="2026-08-23">`,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("injectMetadata() missing %q in %q", want, got)
			}
		}
		if !strings.HasSuffix(strings.SplitAfter(got, "</head>")[0], `content="2026-08-23"></head>`) {
			t.Errorf("metadata not placed inside head: %q", got)
		}
	})

	t.Run("escapes html in values", func(t *testing.T) {
		t.Parallel()

		got := injectMetadata(base, Metadata{Title: `<script>"x"</script>`})
		if strings.Contains(got, "<script>") {
			t.Errorf("injectMetadata() did not escape title: %q", got)
		}
	})
}
