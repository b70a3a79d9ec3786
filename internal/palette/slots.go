// internal/palette/slots.go
package palette

// Slot names one color field of a picoTracker theme.
type Slot string

const (
	Background     Slot = "BACKGROUND"
	Foreground     Slot = "FOREGROUND"
	HiColor1       Slot = "HICOLOR1"
	HiColor2       Slot = "HICOLOR2"
	ConsoleColor   Slot = "CONSOLECOLOR"
	CursorColor    Slot = "CURSORCOLOR"
	InfoColor      Slot = "INFOCOLOR"
	WarnColor      Slot = "WARNCOLOR"
	ErrorColor     Slot = "ERRORCOLOR"
	AccentColor    Slot = "ACCENTCOLOR"
	AccentAltColor Slot = "ACCENTALTCOLOR"
	EmphasisColor  Slot = "EMPHASISCOLOR"
)

// SlotCount is the number of slots in every theme.
const SlotCount = 12

// slotOrder is the canonical order used for export and display.
var slotOrder = [SlotCount]Slot{
	Background,
	Foreground,
	HiColor1,
	HiColor2,
	ConsoleColor,
	CursorColor,
	InfoColor,
	WarnColor,
	ErrorColor,
	AccentColor,
	AccentAltColor,
	EmphasisColor,
}

var slotIndex = func() map[Slot]int {
	index := make(map[Slot]int, SlotCount)
	for i, slot := range slotOrder {
		index[slot] = i
	}
	return index
}()

// Slots returns the slots in canonical order.
func Slots() []Slot {
	slots := make([]Slot, SlotCount)
	copy(slots, slotOrder[:])
	return slots
}

// ParseSlot looks name up in the fixed slot set. Matching is exact.
func ParseSlot(name string) (Slot, bool) {
	slot := Slot(name)
	if _, ok := slotIndex[slot]; !ok {
		return "", false
	}
	return slot, true
}

func (s Slot) Valid() bool {
	_, ok := slotIndex[s]
	return ok
}

func (s Slot) String() string {
	return string(s)
}
