// Package ptt reads and writes picoTracker theme (.ptt) documents.
package ptt

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/codr1/ThemeStudio/internal/palette"
)

const (
	// DefaultFont is the only Font marker the device currently understands.
	DefaultFont = "#1"

	// FileExtension is appended to theme names for downloads.
	FileExtension = ".ptt"

	xmlHeader   = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	rootElement = "THEME"
)

// Marshal renders set as a .ptt document with the default Font marker.
func Marshal(set palette.ColorSet) []byte {
	return MarshalFont(set, DefaultFont)
}

// MarshalFont renders set with the given Font marker. An empty font uses
// DefaultFont. Colors are written in canonical slot order and uppercased, so
// equal sets always produce identical bytes.
func MarshalFont(set palette.ColorSet, font string) []byte {
	if font == "" {
		font = DefaultFont
	}

	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString("<" + rootElement + ">\n")
	buf.WriteString(`  <Font value="`)
	writeAttr(&buf, font)
	buf.WriteString("\" />\n")
	set.Each(func(slot palette.Slot, value string) {
		buf.WriteString(`  <Color name="`)
		writeAttr(&buf, string(slot))
		buf.WriteString(`" value="`)
		writeAttr(&buf, strings.ToUpper(value))
		buf.WriteString("\" />\n")
	})
	buf.WriteString("</" + rootElement + ">")
	return buf.Bytes()
}

// Encode writes the .ptt rendering of set to w.
func Encode(w io.Writer, set palette.ColorSet) error {
	_, err := w.Write(Marshal(set))
	return err
}

func writeAttr(buf *bytes.Buffer, value string) {
	// EscapeText only fails on writer errors, and bytes.Buffer never returns one.
	_ = xml.EscapeText(buf, []byte(value))
}
