package akahu

import (
	"encoding/json"

	"github.com/stanleykosi/akahu-go/pkg/nzfcc"
)

// CategoryGroup is one grouping of a category at a given granularity.
type CategoryGroup struct {
	// ID is the group identifier, wire field "_id".
	ID string

	// Name is the group's display name, e.g. "Lifestyle". Names outside the
	// published taxonomy decode to an unknown fallback, never an error.
	Name nzfcc.Group
}

type categoryGroupWire struct {
	ID   *string      `json:"_id"`
	Name *nzfcc.Group `json:"name"`
}

// UnmarshalJSON decodes a category group; error paths are relative to the
// group object.
func (g *CategoryGroup) UnmarshalJSON(data []byte) error {
	var w categoryGroupWire
	if err := json.Unmarshal(data, &w); err != nil {
		return invalidField("group", err)
	}
	if w.ID == nil {
		return missingField("_id")
	}
	if w.Name == nil {
		return missingField("name")
	}
	g.ID = *w.ID
	g.Name = *w.Name
	return nil
}

// MarshalJSON re-encodes the group under its wire names.
func (g CategoryGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(categoryGroupWire{ID: &g.ID, Name: &g.Name})
}

// CategoryGroups holds a category's groupings. Only the personal-finance
// grouping is standardised; apps with custom groupings configured receive
// them alongside, passed through undecoded.
type CategoryGroups struct {
	PersonalFinance *CategoryGroup             `json:"personal_finance,omitempty"`
	Other           map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON splits the personal-finance grouping from any custom ones.
func (g *CategoryGroups) UnmarshalJSON(data []byte) error {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return invalidField("groups", err)
	}
	if raw, ok := all["personal_finance"]; ok {
		pf := new(CategoryGroup)
		if err := json.Unmarshal(raw, pf); err != nil {
			return nestField("personal_finance", err)
		}
		g.PersonalFinance = pf
		delete(all, "personal_finance")
	}
	if len(all) > 0 {
		g.Other = all
	}
	return nil
}

// MarshalJSON re-assembles standard and custom groupings into one object.
func (g CategoryGroups) MarshalJSON() ([]byte, error) {
	all := make(map[string]json.RawMessage, len(g.Other)+1)
	for name, raw := range g.Other {
		all[name] = raw
	}
	if g.PersonalFinance != nil {
		encoded, err := json.Marshal(*g.PersonalFinance)
		if err != nil {
			return nil, err
		}
		all["personal_finance"] = encoded
	}
	return json.Marshal(all)
}

// Category is an NZFCC transaction category, either attached to an enriched
// transaction or listed by the app-scoped categories endpoint.
type Category struct {
	// ID is the category identifier, wire field "_id".
	ID CategoryID

	// Name is the NZFCC category name, e.g. "Cafes and restaurants".
	// Unrecognised names decode to an unknown fallback that preserves the
	// raw string; categorisation is advisory, not safety-critical.
	Name nzfcc.Code

	// Groups are the category's groupings at different granularities.
	Groups CategoryGroups
}

type categoryWire struct {
	ID     *CategoryID      `json:"_id"`
	Name   *nzfcc.Code      `json:"name"`
	Groups *json.RawMessage `json:"groups,omitempty"`
}

// UnmarshalJSON decodes a category; error paths are relative to the category
// object.
func (c *Category) UnmarshalJSON(data []byte) error {
	var w categoryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return invalidField("category", err)
	}
	if w.ID == nil {
		return missingField("_id")
	}
	if w.Name == nil {
		return missingField("name")
	}
	var groups CategoryGroups
	if w.Groups != nil {
		if err := json.Unmarshal(*w.Groups, &groups); err != nil {
			return nestField("groups", err)
		}
	}
	c.ID = *w.ID
	c.Name = *w.Name
	c.Groups = groups
	return nil
}

// MarshalJSON re-encodes the category under its wire names.
func (c Category) MarshalJSON() ([]byte, error) {
	w := categoryWire{ID: &c.ID, Name: &c.Name}
	if c.Groups.PersonalFinance != nil || len(c.Groups.Other) > 0 {
		encoded, err := json.Marshal(c.Groups)
		if err != nil {
			return nil, err
		}
		raw := json.RawMessage(encoded)
		w.Groups = &raw
	}
	return json.Marshal(w)
}
