package model

import (
	"sort"
	"strings"
)

// TypeSlot is one elemental type of a record, ordered by Slot
type TypeSlot struct {
	Slot int
	Name string
}

// AbilitySlot is one ability of a record, ordered by Slot
type AbilitySlot struct {
	Slot   int
	Name   string
	Hidden bool
}

// Stat is a named base stat. Stats keep the order the API returned them in.
type Stat struct {
	Name      string
	BaseValue int
}

// Record is the decoded creature entry for one query
type Record struct {
	ID         int
	Name       string
	Types      []TypeSlot
	Abilities  []AbilitySlot
	Height     int    // decimetres
	Weight     int    // hectograms
	Stats      []Stat // source order
	ArtworkURL string // empty when the API offered no sprite
}

// SortedTypes returns a copy of Types ordered by slot ascending.
// Entries sharing a slot keep their source order.
func (r *Record) SortedTypes() []TypeSlot {
	out := make([]TypeSlot, len(r.Types))
	copy(out, r.Types)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// SortedAbilities returns a copy of Abilities ordered by slot ascending
func (r *Record) SortedAbilities() []AbilitySlot {
	out := make([]AbilitySlot, len(r.Abilities))
	copy(out, r.Abilities)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// DisplayName returns the name with its first character uppercased
func (r *Record) DisplayName() string {
	return Capitalize(r.Name)
}

// Capitalize uppercases the first character and leaves the rest unchanged.
// It is not title case: "mr-mime" becomes "Mr-mime".
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	for i := range s {
		if i > 0 {
			return strings.ToUpper(s[:i]) + s[i:]
		}
	}
	return strings.ToUpper(s)
}
