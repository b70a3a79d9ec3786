package palette

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/codr1/ThemeStudio/assets"
)

const (
	defaultPresetSuffix = " DEFAULT"
	presetBlockLines    = SlotCount + 1
)

// Preset is a named theme bundled with the application.
type Preset struct {
	Name      string   `json:"name"`
	IsDefault bool     `json:"isDefault"`
	Colors    ColorSet `json:"colors"`
}

// LoadPresets parses the embedded palettes file.
func LoadPresets() ([]Preset, error) {
	file, err := assets.PalettesFS.Open(assets.PalettesPath)
	if err != nil {
		return nil, fmt.Errorf("open embedded palettes file: %w", err)
	}
	defer file.Close()

	return ParsePresets(file)
}

// ParsePresets reads blocks of a name line followed by one value per slot in
// canonical order. Blank lines are ignored. A name ending in " DEFAULT" marks
// the default preset; at most one may be marked.
func ParsePresets(r io.Reader) ([]Preset, error) {
	lines, err := readNonEmptyLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines)%presetBlockLines != 0 {
		return nil, fmt.Errorf("palettes file has %d non-empty lines, expected multiples of %d", len(lines), presetBlockLines)
	}

	presets := make([]Preset, 0, len(lines)/presetBlockLines)
	seen := make(map[string]bool)
	defaultName := ""
	for i := 0; i < len(lines); i += presetBlockLines {
		name := lines[i]
		isDefault := false
		if strings.HasSuffix(name, defaultPresetSuffix) {
			name = strings.TrimSpace(strings.TrimSuffix(name, defaultPresetSuffix))
			if name == "" {
				return nil, fmt.Errorf("palette name missing before DEFAULT at line %d", i+1)
			}
			if defaultName != "" {
				return nil, fmt.Errorf("multiple DEFAULT palettes: %q and %q", defaultName, name)
			}
			defaultName = name
			isDefault = true
		}
		if IsHexColor(name) {
			return nil, fmt.Errorf("palette name missing at line %d", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate palette name %q", name)
		}
		seen[name] = true

		values := make(map[Slot]string, SlotCount)
		for j, slot := range slotOrder {
			values[slot] = lines[i+1+j]
		}
		colors, err := NewColorSet(values)
		if err != nil {
			return nil, fmt.Errorf("invalid palette %q: %w", name, err)
		}

		presets = append(presets, Preset{Name: name, IsDefault: isDefault, Colors: colors})
	}

	return presets, nil
}

// DefaultPreset returns the preset marked DEFAULT.
func DefaultPreset(presets []Preset) (Preset, bool) {
	for _, preset := range presets {
		if preset.IsDefault {
			return preset, true
		}
	}
	return Preset{}, false
}

// FindPreset looks a preset up by exact name.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, preset := range presets {
		if preset.Name == name {
			return preset, true
		}
	}
	return Preset{}, false
}

func readNonEmptyLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	lines := []string{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read palettes file: %w", err)
	}
	return lines, nil
}
