package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// SlotWidth is the length of a slot in minutes
const SlotWidth uint64 = 15

const minutesPerDay uint64 = 24 * 60

// Days considered by default, in order
var Days = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi"}

// Slot is the start time of a fixed-width time unit, expressed in minutes since midnight
type Slot uint64

func ParseSlot(value string) (Slot, error) {
	var hours, minutes uint64
	if n, err := fmt.Sscanf(value, "%d:%d", &hours, &minutes); err != nil || n != 2 || len(value) != 5 {
		return 0, errors.Errorf("invalid time %q, expected HH:MM", value)
	}
	if hours > 23 || minutes > 59 {
		return 0, errors.Errorf("invalid time %q, out of range", value)
	}
	return Slot(hours*60 + minutes), nil
}

// MustParseSlot is like ParseSlot but panics on malformed input
func MustParseSlot(value string) Slot {
	slot, err := ParseSlot(value)
	if err != nil {
		panic(err)
	}
	return slot
}

func (slot Slot) String() string {
	minutes := uint64(slot) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Advance returns the slot n widths later. The hour rolls over naturally; "24:00" is printed as "00:00".
func (slot Slot) Advance(n uint64) Slot {
	return slot + Slot(n*SlotWidth)
}

// GenerateSlots returns the slot sequence covering [start, end)
func GenerateSlots(start, end Slot) ([]Slot, error) {
	if uint64(start)%SlotWidth != 0 || uint64(end)%SlotWidth != 0 {
		return nil, errors.Errorf("slot bounds %v and %v must be multiples of %d minutes", start, end, SlotWidth)
	} else if end <= start {
		return nil, errors.Errorf("slot range end %v must be after its start %v", end, start)
	}

	slots := make([]Slot, 0, (uint64(end)-uint64(start))/SlotWidth)
	for slot := start; slot < end; slot = slot.Advance(1) {
		slots = append(slots, slot)
	}
	return slots, nil
}

// BreakWindow is a fixed interval [Start, End) during which meetings should not run across.
// The zero value excludes nothing.
type BreakWindow struct {
	Start Slot
	End   Slot
}

func NewBreakWindow(start, end string) (BreakWindow, error) {
	startSlot, err := ParseSlot(start)
	if err != nil {
		return BreakWindow{}, errors.Wrap(err, "invalid break start")
	}
	endSlot, err := ParseSlot(end)
	if err != nil {
		return BreakWindow{}, errors.Wrap(err, "invalid break end")
	}
	if endSlot <= startSlot {
		return BreakWindow{}, errors.Errorf("break end %v does not follow its start %v", end, start)
	}
	return BreakWindow{Start: startSlot, End: endSlot}, nil
}

// Straddles reports whether a block [start, end) starts before the break and reaches or passes its end.
// Blocks starting inside the break are not considered straddling.
func (window BreakWindow) Straddles(start, end Slot) bool {
	return start < window.Start && end >= window.End
}

func (window BreakWindow) String() string {
	return fmt.Sprintf("%v-%v", window.Start, window.End)
}
