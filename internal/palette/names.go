package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMatch is a named reference color and its Lab distance from an input.
type ColorMatch struct {
	Name     string
	ColorHex string
	Distance float64
}

// Reference colors used to describe palette values in plain words.
var humanReadableColors = map[string]string{
	"Black":     "#000000",
	"White":     "#FFFFFF",
	"Red":       "#FF0000",
	"Green":     "#008000",
	"Blue":      "#0000FF",
	"Yellow":    "#FFFF00",
	"Cyan":      "#00FFFF",
	"Magenta":   "#FF00FF",
	"Gray":      "#808080",
	"Silver":    "#C0C0C0",
	"Maroon":    "#800000",
	"Olive":     "#808000",
	"Lime":      "#00FF00",
	"Teal":      "#008080",
	"Navy":      "#000080",
	"Purple":    "#800080",
	"Orange":    "#FFA500",
	"Pink":      "#FFC0CB",
	"Brown":     "#A52A2A",
	"Gold":      "#FFD700",
	"Beige":     "#F5F5DC",
	"Turquoise": "#40E0D0",
	"Lavender":  "#E6E6FA",
	"Chocolate": "#D2691E",
	"Coral":     "#FF7F50",
}

// ClosestColors ranks the reference colors by perceptual (CIE Lab) distance
// from value, nearest first, and returns at most limit of them.
func ClosestColors(value string, limit int) ([]ColorMatch, error) {
	value = strings.TrimSpace(value)
	if !hexColorRegex.MatchString(value) {
		return nil, fmt.Errorf("invalid hex color: %s", value)
	}
	input, err := colorful.Hex(strings.ToLower(value))
	if err != nil {
		return nil, fmt.Errorf("invalid hex color: %s: %w", value, err)
	}

	matches := make([]ColorMatch, 0, len(humanReadableColors))
	for name, hex := range humanReadableColors {
		reference, _ := colorful.Hex(strings.ToLower(hex))
		matches = append(matches, ColorMatch{
			Name:     name,
			ColorHex: hex,
			Distance: input.DistanceLab(reference),
		})
	}

	// Name breaks ties so output does not depend on map order.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Name < matches[j].Name
	})

	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, nil
}

// NearestName returns the name of the closest reference color.
func NearestName(value string) (string, error) {
	matches, err := ClosestColors(value, 1)
	if err != nil {
		return "", err
	}
	return matches[0].Name, nil
}
