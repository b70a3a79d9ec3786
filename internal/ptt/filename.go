package ptt

import "strings"

const (
	// FallbackThemeName is used when no usable theme name is given.
	FallbackThemeName = "custom"

	maxThemeNameLen = 100
)

// ThemeName trims raw and falls back to FallbackThemeName. Path separators and
// control characters are replaced with '_' and the result is capped at 100 runes,
// so the name is always safe to use as a single file name.
func ThemeName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return FallbackThemeName
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case r < 0x20 || r == 0x7f:
			return '_'
		}
		return r
	}, name)
	if runes := []rune(name); len(runes) > maxThemeNameLen {
		name = string(runes[:maxThemeNameLen])
	}
	return name
}

// FileName returns the .ptt file name for a theme called raw.
func FileName(raw string) string {
	return ThemeName(raw) + FileExtension
}
