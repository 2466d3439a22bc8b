package billing

import "sort"

// PlayType is the pricing category of a play.
type PlayType string

const (
	PlayTypeTragedy PlayType = "tragedy"
	PlayTypeComedy  PlayType = "comedy"
)

// Play is a catalog entry.
type Play struct {
	Name string   `json:"name" yaml:"name"`
	Type PlayType `json:"type" yaml:"type"`
}

// Catalog maps play ids to plays.
type Catalog map[string]Play

// Lookup resolves a play by id.
func (c Catalog) Lookup(playID string) (Play, error) {
	play, ok := c[playID]
	if !ok {
		return Play{}, &UnknownPlayError{PlayID: playID}
	}
	return play, nil
}

// IDs returns the catalog ids in ascending order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
