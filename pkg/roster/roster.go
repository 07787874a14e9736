package roster

import "slices"

// Roster is an ordered list of distinct participant names.
// The zero value is an empty roster ready to use.
type Roster struct {
	names []string
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{}
}

// Append stores the title-cased form of name at the end of the roster and
// returns it. Callers must validate name first; Add does both.
func (r *Roster) Append(name string) string {
	formatted := TitleCase(name)
	r.names = append(r.names, formatted)
	return formatted
}

// Add validates input and appends it. It returns ErrBlankInput for blank
// input and ErrDuplicateName when the name is already present; the roster is
// left untouched in both cases.
func (r *Roster) Add(input string) (string, error) {
	if IsBlank(input) {
		return "", ErrBlankInput
	}
	if Exists(input, r.names) {
		return "", ErrDuplicateName
	}
	return r.Append(input), nil
}

// Clear removes every entry.
func (r *Roster) Clear() {
	r.names = nil
}

// Len returns the number of entries.
func (r *Roster) Len() int {
	return len(r.names)
}

// At returns the entry at index i. It panics if i is out of range.
func (r *Roster) At(i int) string {
	return r.names[i]
}

// Names returns a copy of the entries in insertion order.
func (r *Roster) Names() []string {
	return slices.Clone(r.names)
}
