// Package settings defines the fully resolved terminal settings that a
// profile produces, together with the enumerations shared by profiles and
// resolved settings.
//
// Each enumeration has a single token table used for both parsing and
// formatting. Parsing never fails: an unrecognized token yields the
// enumeration's default value.
package settings
