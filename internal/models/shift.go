package models

import (
	"encoding/json"
	"strings"
)

const (
	ModePhone   = "phone"
	ModeOffices = "offices"
	ModeKirya   = "kirya"
	// ModeIgnore survives in old records; it is readable but never produced
	// by the mode cycle.
	ModeIgnore = "ignore"
)

const (
	ShiftKindSecond = "second"
	ShiftKindMain   = "main"
	ShiftKindNight  = "night"
)

// modeCycle is the fixed order the editor steps through when cycling a
// slot's mode. An unrecognized stored mode restarts the cycle at phone.
var modeCycle = []string{ModePhone, ModeOffices, ModeKirya}

func NextMode(current string) string {
	for index, mode := range modeCycle {
		if mode == current {
			return modeCycle[(index+1)%len(modeCycle)]
		}
	}
	return modeCycle[0]
}

func IsScoringMode(mode string) bool {
	return mode == ModeOffices || mode == ModeKirya
}

// ShiftSlot is the canonical shape of one on-call slot. Persisted records may
// still carry the legacy single-name shape; UnmarshalJSON maps both onto this
// struct so nothing past the storage boundary ever sees the old format.
type ShiftSlot struct {
	Assignees []string `json:"names"`
	Mode      string   `json:"mode"`
	IsHoliday bool     `json:"isHoliday"`
}

func EmptyShiftSlot() ShiftSlot {
	return ShiftSlot{Assignees: []string{}, Mode: ModePhone}
}

func (slot *ShiftSlot) UnmarshalJSON(data []byte) error {
	var raw struct {
		Names     []string `json:"names"`
		Name      *string  `json:"name"`
		Mode      string   `json:"mode"`
		IsHoliday bool     `json:"isHoliday"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	assignees := raw.Names
	if assignees == nil && raw.Name != nil {
		if trimmed := strings.TrimSpace(*raw.Name); trimmed != "" {
			assignees = []string{trimmed}
		}
	}
	if assignees == nil {
		assignees = []string{}
	}

	mode := strings.TrimSpace(raw.Mode)
	if mode == "" {
		mode = ModePhone
	}

	slot.Assignees = assignees
	slot.Mode = mode
	slot.IsHoliday = raw.IsHoliday
	return nil
}

// Normalize enforces the canonical invariants on a slot built in code rather
// than decoded from JSON: assignees never nil, mode never empty.
func (slot *ShiftSlot) Normalize() {
	if slot.Assignees == nil {
		slot.Assignees = []string{}
	}
	if strings.TrimSpace(slot.Mode) == "" {
		slot.Mode = ModePhone
	}
}

func (slot ShiftSlot) HasData() bool {
	return len(slot.Assignees) > 0 || slot.IsHoliday
}

// ShiftSet holds the three daily slots. Legacy records used "morning" for the
// secondary slot and some wrote the primary slot under "day"; both aliases are
// accepted on read.
type ShiftSet struct {
	Second ShiftSlot `json:"second"`
	Main   ShiftSlot `json:"main"`
	Night  ShiftSlot `json:"night"`
}

func EmptyShiftSet() ShiftSet {
	return ShiftSet{
		Second: EmptyShiftSlot(),
		Main:   EmptyShiftSlot(),
		Night:  EmptyShiftSlot(),
	}
}

func (set *ShiftSet) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	second, err := decodeSlot(raw, "second", "morning")
	if err != nil {
		return err
	}
	main, err := decodeSlot(raw, "main", "day")
	if err != nil {
		return err
	}
	night, err := decodeSlot(raw, "night")
	if err != nil {
		return err
	}

	set.Second = second
	set.Main = main
	set.Night = night
	return nil
}

func decodeSlot(raw map[string]json.RawMessage, keys ...string) (ShiftSlot, error) {
	for _, key := range keys {
		payload, ok := raw[key]
		if !ok || string(payload) == "null" {
			continue
		}
		var slot ShiftSlot
		if err := json.Unmarshal(payload, &slot); err != nil {
			return ShiftSlot{}, err
		}
		return slot, nil
	}
	return EmptyShiftSlot(), nil
}

func (set *ShiftSet) Normalize() {
	set.Second.Normalize()
	set.Main.Normalize()
	set.Night.Normalize()
}

// IsEmpty reports whether the whole day carries no assignment and no holiday
// flag; such days are never persisted by the week editor.
func (set ShiftSet) IsEmpty() bool {
	return !set.Second.HasData() && !set.Main.HasData() && !set.Night.HasData()
}
