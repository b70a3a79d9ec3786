package layouts

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/codr1/ThemeStudio/internal/palette"
)

func TestGetThemeCssVars(t *testing.T) {
	colors := palette.Defaults().
		With(palette.Background, "#123456").
		With(palette.Foreground, "red;}</style><script>")

	css := getThemeCssVars(colors)
	if !strings.Contains(css, "--BACKGROUND:#123456;") {
		t.Fatalf("css missing BACKGROUND: %s", css)
	}
	if !strings.Contains(css, "--FOREGROUND:#0088FF;") {
		t.Fatalf("invalid FOREGROUND should fall back to default: %s", css)
	}
	if strings.Contains(css, "<") {
		t.Fatalf("css contains markup: %s", css)
	}
}

func TestBaseRendersBody(t *testing.T) {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>hello</p>")
		return err
	})

	var buf bytes.Buffer
	if err := Base("A & B", palette.Defaults(), body).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	html := buf.String()
	for _, want := range []string{"<title>A &amp; B</title>", "<p>hello</p>", "--EMPHASISCOLOR:#00AA55;", "/static/editor.js"} {
		if !strings.Contains(html, want) {
			t.Fatalf("page missing %q:\n%s", want, html)
		}
	}
}
