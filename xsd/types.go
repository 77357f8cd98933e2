// Package xsd maps raw schema type names onto a closed taxonomy of
// canonical XSD primitive and derived types, and interprets occurrence
// constraints read from schema source.
package xsd

import "strings"

// Type is a canonical XSD primitive or derived type.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeString
	TypeNormalizedString
	TypeToken
	TypeBoolean
	TypeInteger
	TypeDecimal
	TypeFloat
	TypeDouble
	TypeDate
	TypeTime
	TypeDateTime
	TypeDuration
	TypeGYear
	TypeGYearMonth
	TypeGMonth
	TypeGMonthDay
	TypeGDay
	TypeAnyURI
	TypeQName
	TypeHexBinary
	TypeBase64Binary
)

// Category is the semantic classification group of a type. Every type
// belongs to at most one group; TypeUnknown belongs to none.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryDateTime
	CategoryNumeric
	CategoryString
)

// info carries the canonical name and classification tag per variant, so
// group disjointness is structural rather than re-derived per predicate.
type info struct {
	name     string
	category Category
}

var typeInfo = map[Type]info{
	TypeString:           {"string", CategoryString},
	TypeNormalizedString: {"normalizedString", CategoryString},
	TypeToken:            {"token", CategoryString},
	TypeBoolean:          {"boolean", CategoryNone},
	TypeInteger:          {"integer", CategoryNumeric},
	TypeDecimal:          {"decimal", CategoryNumeric},
	TypeFloat:            {"float", CategoryNumeric},
	TypeDouble:           {"double", CategoryNumeric},
	TypeDate:             {"date", CategoryDateTime},
	TypeTime:             {"time", CategoryDateTime},
	TypeDateTime:         {"dateTime", CategoryDateTime},
	TypeDuration:         {"duration", CategoryDateTime},
	TypeGYear:            {"gYear", CategoryDateTime},
	TypeGYearMonth:       {"gYearMonth", CategoryDateTime},
	TypeGMonth:           {"gMonth", CategoryDateTime},
	TypeGMonthDay:        {"gMonthDay", CategoryDateTime},
	TypeGDay:             {"gDay", CategoryDateTime},
	TypeAnyURI:           {"anyURI", CategoryNone},
	TypeQName:            {"QName", CategoryNone},
	TypeHexBinary:        {"hexBinary", CategoryNone},
	TypeBase64Binary:     {"base64Binary", CategoryNone},
}

// byName maps every accepted source name to its canonical type. Several
// source names collapse onto one variant: the integral built-ins int,
// long, short and byte are all carried as TypeInteger.
var byName = map[string]Type{}

func init() {
	for t, i := range typeInfo {
		byName[i.name] = t
	}
	// Aliases
	byName["int"] = TypeInteger
	byName["long"] = TypeInteger
	byName["short"] = TypeInteger
	byName["byte"] = TypeInteger
}

// FromTypeName resolves a raw, optionally namespace-prefixed type name to
// its canonical type. Only the substring after the last ':' is matched,
// case-sensitively. Empty or unrecognized input yields TypeUnknown.
func FromTypeName(raw string) Type {
	if idx := strings.LastIndex(raw, ":"); idx >= 0 {
		raw = raw[idx+1:]
	}
	if t, ok := byName[raw]; ok {
		return t
	}
	return TypeUnknown
}

// String returns the canonical type name, or "unknown".
func (t Type) String() string {
	if i, ok := typeInfo[t]; ok {
		return i.name
	}
	return "unknown"
}

// Category returns the classification group of the type.
func (t Type) Category() Category {
	if i, ok := typeInfo[t]; ok {
		return i.category
	}
	return CategoryNone
}

// IsDateTime reports whether the type is a date, time, dateTime, duration
// or one of the g-prefixed calendar fragments.
func (t Type) IsDateTime() bool { return t.Category() == CategoryDateTime }

// IsNumeric reports whether the type is integer, decimal, float or double.
func (t Type) IsNumeric() bool { return t.Category() == CategoryNumeric }

// IsString reports whether the type is string, normalizedString or token.
func (t Type) IsString() bool { return t.Category() == CategoryString }
