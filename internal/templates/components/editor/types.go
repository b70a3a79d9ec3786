package editor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/codr1/ThemeStudio/internal/palette"
)

const (
	TrackerRows = 0x10
	TrackerCols = 8
)

// Tones map monitor text to the slot that colors it (see layouts CSS).
const (
	ToneInfo     = "info"
	ToneHi       = "hi"
	ToneCursor   = "cursor"
	ToneWarn     = "warn"
	ToneError    = "error"
	ToneAccent   = "accent"
	ToneEmphasis = "emphasis"
)

type SlotField struct {
	Slot palette.Slot
	// Value is the #RRGGBB value as exported.
	Value string
	// ColorName is the nearest plain-language color, shown as a hint.
	ColorName string
}

func (f SlotField) Name() string {
	return string(f.Slot)
}

func (f SlotField) InputID() string {
	return "in_" + string(f.Slot)
}

// InputValue is Value in the lowercase form <input type="color"> requires.
func (f SlotField) InputValue() string {
	return strings.ToLower(f.Value)
}

type PresetSwatch struct {
	Name      string
	IsDefault bool
	Colors    palette.ColorSet
}

func (p PresetSwatch) Label() string {
	if p.IsDefault {
		return p.Name + " (default)"
	}
	return p.Name
}

func (p PresetSwatch) Background() string {
	return p.Colors.Get(palette.Background)
}

func (p PresetSwatch) Foreground() string {
	return p.Colors.Get(palette.Foreground)
}

// MonitorCell is one run of text on the preview screen.
type MonitorCell struct {
	Text string
	Tone string
}

type MonitorLine struct {
	Cells []MonitorCell
}

type EditorData struct {
	AppName        string
	Fields         []SlotField
	Presets        []PresetSwatch
	Monitor        []MonitorLine
	MaxUploadBytes int64
}

func (d EditorData) MaxUploadBytesAttr() string {
	return strconv.FormatInt(d.MaxUploadBytes, 10)
}

func NewEditorData(appName string, colors palette.ColorSet, presets []palette.Preset, maxUploadBytes int64) EditorData {
	fields := make([]SlotField, 0, palette.SlotCount)
	colors.Each(func(slot palette.Slot, value string) {
		name, err := palette.NearestName(value)
		if err != nil {
			name = ""
		}
		fields = append(fields, SlotField{Slot: slot, Value: value, ColorName: name})
	})

	swatches := make([]PresetSwatch, len(presets))
	for i, preset := range presets {
		swatches[i] = PresetSwatch{Name: preset.Name, IsDefault: preset.IsDefault, Colors: preset.Colors}
	}

	return EditorData{
		AppName:        appName,
		Fields:         fields,
		Presets:        swatches,
		Monitor:        monitorLines(),
		MaxUploadBytes: maxUploadBytes,
	}
}

// monitorLines lays out a phrase screen: a title line, sixteen rows 00..0F and
// the status block underneath.
func monitorLines() []MonitorLine {
	lines := make([]MonitorLine, 0, TrackerRows+5)
	lines = append(lines, MonitorLine{Cells: []MonitorCell{
		{Text: "song sad-fog", Tone: ToneInfo},
		{Text: "                         "},
		{Text: "[c++f]", Tone: ToneHi},
	}})

	for row := 0; row < TrackerRows; row++ {
		cells := []MonitorCell{{Text: fmt.Sprintf("%02X", row), Tone: ToneInfo}, {Text: "  "}}
		if row == 0 {
			cells = append(cells, MonitorCell{Text: "00", Tone: ToneCursor})
		} else {
			cells = append(cells, MonitorCell{Text: "--", Tone: ToneInfo})
		}
		for col := 1; col < TrackerCols-1; col++ {
			tone := ToneInfo
			switch {
			case row == 4 && col == 2:
				tone = ToneWarn
			case row == 8 && col == 3:
				tone = ToneError
			case row%4 == 0 && col == 1:
				tone = ToneAccent
			}
			cells = append(cells, MonitorCell{Text: "  "}, MonitorCell{Text: "--", Tone: tone})
		}
		lines = append(lines, MonitorLine{Cells: cells})
	}

	lines = append(lines,
		MonitorLine{Cells: []MonitorCell{{Text: " "}}},
		MonitorLine{Cells: []MonitorCell{{Text: "D", Tone: ToneEmphasis}}},
		MonitorLine{Cells: []MonitorCell{{Text: "P G", Tone: ToneInfo}}},
		MonitorLine{Cells: []MonitorCell{{Text: "SCPI", Tone: ToneInfo}}},
	)
	return lines
}
