// internal/palette/colorset.go
package palette

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	White = "#FFFFFF"
	Black = "#000000"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// defaultColors is indexed like slotOrder.
var defaultColors = [SlotCount]string{
	"#000000", // BACKGROUND
	"#0088FF", // FOREGROUND
	"#00BB66", // HICOLOR1
	"#0066CC", // HICOLOR2
	"#000000", // CONSOLECOLOR
	"#00BB66", // CURSORCOLOR
	"#0088FF", // INFOCOLOR
	"#00AA55", // WARNCOLOR
	"#CC3333", // ERRORCOLOR
	"#00AA55", // ACCENTCOLOR
	"#0066CC", // ACCENTALTCOLOR
	"#00AA55", // EMPHASISCOLOR
}

func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// ColorSet holds one value for every slot. It is a value type: copies never
// share storage, so a ColorSet handed to many requests cannot be mutated by any
// of them.
type ColorSet struct {
	colors [SlotCount]string
}

// Defaults returns the built-in default theme.
func Defaults() ColorSet {
	return ColorSet{colors: defaultColors}
}

// NewColorSet builds a set from a complete mapping. Every slot must be present
// and hold a #RRGGBB value; values are stored uppercased.
func NewColorSet(values map[Slot]string) (ColorSet, error) {
	var set ColorSet
	for i, slot := range slotOrder {
		value, ok := values[slot]
		if !ok {
			return ColorSet{}, fmt.Errorf("%s is required", slot)
		}
		value = strings.TrimSpace(value)
		if !hexColorRegex.MatchString(value) {
			return ColorSet{}, fmt.Errorf("%s must be a 6-digit hex color like #AABBCC", slot)
		}
		set.colors[i] = strings.ToUpper(value)
	}
	for slot := range values {
		if !slot.Valid() {
			return ColorSet{}, fmt.Errorf("unknown slot %q", slot)
		}
	}
	return set, nil
}

// Get returns the value of slot, or "" for an unknown slot.
func (c ColorSet) Get(slot Slot) string {
	i, ok := slotIndex[slot]
	if !ok {
		return ""
	}
	return c.colors[i]
}

// With returns a copy of c with slot set to value. Unknown slots leave the copy
// unchanged.
func (c ColorSet) With(slot Slot, value string) ColorSet {
	if i, ok := slotIndex[slot]; ok {
		c.colors[i] = value
	}
	return c
}

// Each calls fn for every slot in canonical order.
func (c ColorSet) Each(fn func(slot Slot, value string)) {
	for i, slot := range slotOrder {
		fn(slot, c.colors[i])
	}
}

func (c ColorSet) Map() map[string]string {
	out := make(map[string]string, SlotCount)
	c.Each(func(slot Slot, value string) {
		out[string(slot)] = value
	})
	return out
}

func (c ColorSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}

// RGBSum returns r+g+b of a #RRGGBB color, each channel in [0,255].
func RGBSum(value string) (int, error) {
	value = strings.TrimSpace(value)
	if !hexColorRegex.MatchString(value) {
		return 0, fmt.Errorf("invalid hex color: %s", value)
	}
	color, err := colorful.Hex(strings.ToLower(value))
	if err != nil {
		return 0, fmt.Errorf("invalid hex color: %s: %w", value, err)
	}
	r, g, b := color.RGB255()
	return int(r) + int(g) + int(b), nil
}
