package category

import "strings"

// Type is a question category as written in the bank's "type" column.
// The set is open: any string is a valid type, the constants below are
// only what the client offers by default.
type Type string

const (
	All    Type = "all" // sentinel, matches every type
	Red    Type = "red"
	Green  Type = "green"
	Yellow Type = "yellow"
	Blue   Type = "blue"
)

// Suggested returns the types offered by the client, sentinel first.
func Suggested() []Type {
	return []Type{All, Red, Green, Yellow, Blue}
}

// Normalize trims and lower-cases a raw type value.
func Normalize(raw string) Type {
	return Type(strings.ToLower(strings.TrimSpace(raw)))
}

// IsAll reports whether t selects every type. An empty filter counts as all.
func (t Type) IsAll() bool {
	n := Normalize(string(t))
	return n == "" || n == All
}

// Matches reports whether a record's type passes the filter t.
func (t Type) Matches(recordType string) bool {
	if t.IsAll() {
		return true
	}
	return Normalize(string(t)) == Normalize(recordType)
}
