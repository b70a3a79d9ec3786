package layouts

import (
	"strings"

	"github.com/codr1/ThemeStudio/internal/palette"
)

const baseStyles = `
body{margin:0;font-family:system-ui,sans-serif;background:#16181d;color:#e8e8e8}
main{display:flex;flex-wrap:wrap;gap:2rem;padding:1.5rem}
.monitor{background:var(--BACKGROUND);color:var(--FOREGROUND);font:14px/1.3 monospace;padding:1rem;min-width:22rem}
.monitor .line{white-space:pre;min-height:1.3em}
.monitor [data-tone=info]{color:var(--INFOCOLOR)}
.monitor [data-tone=hi]{color:var(--HICOLOR1)}
.monitor [data-tone=cursor]{background:var(--CURSORCOLOR);color:var(--BACKGROUND)}
.monitor [data-tone=warn]{color:var(--WARNCOLOR)}
.monitor [data-tone=error]{color:var(--ERRORCOLOR)}
.monitor [data-tone=accent]{color:var(--ACCENTCOLOR)}
.monitor [data-tone=emphasis]{color:var(--EMPHASISCOLOR)}
.row{display:flex;justify-content:space-between;align-items:center;gap:1rem;margin:.2rem 0}
.gallery{display:flex;flex-wrap:wrap;gap:.5rem}
.g-item{padding:.5rem .75rem;cursor:pointer;border:1px solid #444;font:12px monospace}
`

// themeStyleTag is the page stylesheet. Only validated hex values reach it, so
// it is safe to emit unescaped.
func themeStyleTag(colors palette.ColorSet) string {
	return "<style>" + getThemeCssVars(colors) + baseStyles + "</style>"
}

// getThemeCssVars exposes every slot as a --SLOT custom property for the
// preview monitor. Invalid values fall back to the defaults.
func getThemeCssVars(colors palette.ColorSet) string {
	defaults := palette.Defaults()

	var b strings.Builder
	b.WriteString(":root{")
	colors.Each(func(slot palette.Slot, value string) {
		b.WriteString("--")
		b.WriteString(string(slot))
		b.WriteString(":")
		b.WriteString(themeColorOrDefault(value, defaults.Get(slot)))
		b.WriteString(";")
	})
	b.WriteString("}")
	return b.String()
}

func themeColorOrDefault(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	if !palette.IsHexColor(trimmed) {
		return fallback
	}
	return trimmed
}
