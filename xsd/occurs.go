package xsd

import "strconv"

// Occurs is the occurrence constraint of an element or particle as read
// from schema source.
type Occurs struct {
	Min       int
	Max       int // ignored when Unbounded
	Unbounded bool
}

// ParseOccurs interprets raw minOccurs and maxOccurs tokens. Empty tokens
// take the schema default of 1; maxOccurs "unbounded" sets Unbounded.
// Malformed tokens keep the default.
func ParseOccurs(min, max string) Occurs {
	occ := Occurs{Min: 1, Max: 1}
	if min != "" {
		if min == "0" {
			occ.Min = 0
		} else if val, err := strconv.Atoi(min); err == nil && val >= 0 {
			occ.Min = val
		}
	}
	if max != "" {
		if max == "unbounded" {
			occ.Unbounded = true
			occ.Max = -1
		} else if val, err := strconv.Atoi(max); err == nil && val >= 0 {
			occ.Max = val
		}
	}
	return occ
}
