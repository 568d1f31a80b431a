package pokeapi

import (
	"github.com/pokeview/pokedex/internal/model"
)

// pokemonResponse is the subset of GET /pokemon/{id or name} the viewer uses.
// Optional members are pointers so absence can be told apart from zero.
type pokemonResponse struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Height    *int           `json:"height"`
	Weight    *int           `json:"weight"`
	Sprites   *spritesEntry  `json:"sprites"`
	Types     []typeEntry    `json:"types"`
	Abilities []abilityEntry `json:"abilities"`
	Stats     []statEntry    `json:"stats"`
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type typeEntry struct {
	Slot int            `json:"slot"`
	Type *namedResource `json:"type"`
}

type abilityEntry struct {
	Slot     int            `json:"slot"`
	IsHidden bool           `json:"is_hidden"`
	Ability  *namedResource `json:"ability"`
}

type statEntry struct {
	BaseStat *int           `json:"base_stat"`
	Stat     *namedResource `json:"stat"`
}

type spritesEntry struct {
	FrontDefault *string       `json:"front_default"`
	Other        *otherSprites `json:"other"`
}

type otherSprites struct {
	OfficialArtwork *artworkSprites `json:"official-artwork"`
}

type artworkSprites struct {
	FrontDefault *string `json:"front_default"`
}

// artworkURL picks the sprite to show: official artwork first, then the
// default front sprite, else none.
func (s *spritesEntry) artworkURL() string {
	if s == nil {
		return ""
	}
	if s.Other != nil && s.Other.OfficialArtwork != nil {
		if u := deref(s.Other.OfficialArtwork.FrontDefault); u != "" {
			return u
		}
	}
	return deref(s.FrontDefault)
}

// toRecord applies fallback defaults once so renderers never see nil members
func (p *pokemonResponse) toRecord() *model.Record {
	rec := &model.Record{
		ID:         p.ID,
		Name:       p.Name,
		Height:     derefInt(p.Height),
		Weight:     derefInt(p.Weight),
		ArtworkURL: p.Sprites.artworkURL(),
	}

	for _, t := range p.Types {
		if t.Type == nil {
			continue
		}
		rec.Types = append(rec.Types, model.TypeSlot{Slot: t.Slot, Name: t.Type.Name})
	}

	for _, a := range p.Abilities {
		if a.Ability == nil {
			continue
		}
		rec.Abilities = append(rec.Abilities, model.AbilitySlot{
			Slot:   a.Slot,
			Name:   a.Ability.Name,
			Hidden: a.IsHidden,
		})
	}

	for _, s := range p.Stats {
		name := ""
		if s.Stat != nil {
			name = s.Stat.Name
		}
		rec.Stats = append(rec.Stats, model.Stat{Name: name, BaseValue: derefInt(s.BaseStat)})
	}

	return rec
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
