// Package roster holds the participant list of a secret friend draw and the
// pure text rules that govern it.
//
// Names are stored title-cased and compared case-insensitively after
// trimming, so "ana", " ANA " and "Ana" are the same participant:
//
//	r := roster.New()
//	name, err := r.Add("joão silva") // "João Silva", nil
//	_, err = r.Add("  JOÃO SILVA ")  // roster.ErrDuplicateName
//	_, err = r.Add("   ")            // roster.ErrBlankInput
//
// The Roster type only grows by Append/Add and shrinks by Clear; there is no
// single-entry removal. It is not safe for concurrent use, owners are
// expected to serialize access (see svc/party).
//
// The validation helpers (IsBlank, Exists, HasMinimum) and the text helpers
// (Normalize, TitleCase) are pure functions and can be used on any name
// slice without a Roster.
package roster
