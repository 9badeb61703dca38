package models

import (
	"encoding/json"

	"github.com/kova98/karmakaze/enums"
)

// Raw is an entity's data exactly as the API sent it.
type Raw = map[string]any

// Record is an entity keyed by public field names. Every field of the
// entity's table is present; missing source values are nil.
type Record = map[string]any

// Listing is the typed view of a listing envelope. Children keep their data
// undecoded so any entity kind fits.
type Listing struct {
	Kind enums.Kind `json:"kind"`
	Data struct {
		After    *string    `json:"after"`
		Before   *string    `json:"before"`
		Dist     *int       `json:"dist"`
		Modhash  string     `json:"modhash"`
		Children []Envelope `json:"children"`
	} `json:"data"`
}

// Envelope is a single kind/data pair.
type Envelope struct {
	Kind enums.Kind      `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// Cursor returns the pagination cursor, empty when there are no more pages.
func (l *Listing) Cursor() string {
	if l.Data.After == nil {
		return ""
	}
	return *l.Data.After
}
