// Package zone defines the closed set of location kinds the synthesizers
// understand. Free-form location strings are resolved here, at the boundary.
package zone

import "strings"

// Kind represents the type of a location
type Kind int

const (
	Unknown Kind = iota // anything unrecognized; draws from fallback pools
	Town
	Forest
	Mine
	Lake
	Ruins
	Field
	Dungeon
)

// Kinds lists every recognized zone kind.
var Kinds = []Kind{Town, Forest, Mine, Lake, Ruins, Field, Dungeon}

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case Town:
		return "Town"
	case Forest:
		return "Forest"
	case Mine:
		return "Mine"
	case Lake:
		return "Lake"
	case Ruins:
		return "Ruins"
	case Field:
		return "Field"
	case Dungeon:
		return "Dungeon"
	default:
		return "Unknown"
	}
}

// IsSafe returns true if no hostile monsters spawn in the zone
func (k Kind) IsSafe() bool {
	return k == Town
}

// Parse converts a location type to a Kind, ignoring case.
// Unrecognized input maps to Unknown and false.
func Parse(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds {
		if strings.EqualFold(s, k.String()) {
			return k, true
		}
	}
	return Unknown, false
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a name; unrecognized names become Unknown.
func (k *Kind) UnmarshalText(text []byte) error {
	*k, _ = Parse(string(text))
	return nil
}
