package palette

import "strings"

// FilterImported keeps the entries of raw whose name is a known slot. Unknown
// names are dropped without error, and the result may cover only some slots.
func FilterImported(raw map[string]string) map[Slot]string {
	out := make(map[Slot]string, len(raw))
	for name, value := range raw {
		slot, ok := ParseSlot(name)
		if !ok {
			continue
		}
		out[slot] = value
	}
	return out
}

// BuildExport merges submitted form values over defaults into a full set ready
// for export. Blank submissions and values that are not #RRGGBB fall back to the
// default; every value is uppercased. Keys that are not slots are ignored.
func BuildExport(form map[string]string, defaults ColorSet) ColorSet {
	var set ColorSet
	for i, slot := range slotOrder {
		value := strings.TrimSpace(form[string(slot)])
		if !IsHexColor(value) {
			value = defaults.colors[i]
		}
		set.colors[i] = strings.ToUpper(value)
	}
	return set
}
