package ptt

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/codr1/ThemeStudio/internal/palette"
)

// MaxDocumentSize bounds how much of an uploaded document is read.
const MaxDocumentSize = 1 << 20

const colorElement = "Color"

var (
	ErrUnsafeDocument = errors.New("document type declarations are not allowed")
	ErrNoRoot         = errors.New("document has no root element")
	ErrMultipleRoots  = errors.New("document has more than one root element")
	ErrTooLarge       = fmt.Errorf("document exceeds %d bytes", MaxDocumentSize)
)

// ParseError reports a document that could not be read as a theme.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "invalid theme document: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Decode extracts slot values from a .ptt document. Color elements are matched
// anywhere below the root and in any order; names that are not slots are
// skipped, as are elements without a value attribute. When a slot appears more
// than once the last occurrence wins.
//
// DOCTYPE and ENTITY declarations are rejected outright, and entity references
// other than the predefined XML ones fail to parse, so nothing outside the
// reader is ever consulted. Any failure returns a *ParseError and no values.
func Decode(r io.Reader) (map[palette.Slot]string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return nil, &ParseError{Err: fmt.Errorf("read document: %w", err)}
	}
	if len(data) > MaxDocumentSize {
		return nil, &ParseError{Err: ErrTooLarge}
	}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Strict = true

	raw := make(map[string]string)
	depth := 0
	sawRoot := false
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Err: err}
		}

		switch t := token.(type) {
		case xml.Directive:
			return nil, &ParseError{Err: ErrUnsafeDocument}
		case xml.StartElement:
			if depth == 0 {
				if sawRoot {
					return nil, &ParseError{Err: ErrMultipleRoots}
				}
				sawRoot = true
			} else if t.Name.Local == colorElement {
				readColor(t, raw)
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, &ParseError{Err: errors.New("text outside the root element")}
			}
		}
	}

	if !sawRoot {
		return nil, &ParseError{Err: ErrNoRoot}
	}
	return palette.FilterImported(raw), nil
}

func readColor(element xml.StartElement, raw map[string]string) {
	var name, value string
	hasValue := false
	for _, attr := range element.Attr {
		switch attr.Name.Local {
		case "name":
			name = strings.TrimSpace(attr.Value)
		case "value":
			value = strings.TrimSpace(attr.Value)
			hasValue = true
		}
	}
	if name == "" || !hasValue {
		return
	}
	raw[name] = value
}
