// Package guid derives and formats the 128-bit identifiers used by profiles.
//
// Profiles that do not carry an explicit identifier get one derived from
// their name: a name-based (version 5, SHA-1) UUID computed over the
// [Namespace] followed by the UTF-16LE bytes of the name. The derivation is
// a pure function of (namespace, name), so any implementation produces the
// same identifier for the same name.
package guid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"
)

// Namespace is used for profiles that did not have a GUID specified.
var Namespace = uuid.MustParse("f65ddb7e-706b-4499-8a50-40313caf510a")

// ErrInvalidGUID is returned when text cannot be parsed as a GUID.
var ErrInvalidGUID = errors.New("invalid guid")

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// FromName derives the identifier for a profile name under [Namespace].
func FromName(name string) uuid.UUID {
	return Derive(Namespace, name)
}

// Derive computes the version 5 UUID of name under namespace. The name is
// hashed as UTF-16LE without a byte order mark.
func Derive(namespace uuid.UUID, name string) uuid.UUID {
	return uuid.NewSHA1(namespace, encodeName(name))
}

func encodeName(name string) []byte {
	b, err := utf16le.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return []byte(name)
	}

	return b
}

// Parse parses a GUID in braced ("{...}") or plain form.
func Parse(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if len(s) != 36 && len(s) != 38 {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidGUID, s)
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidGUID, err)
	}

	return id, nil
}

// Format returns the lowercase braced text form, e.g.
// "{f65ddb7e-706b-4499-8a50-40313caf510a}".
func Format(id uuid.UUID) string {
	return "{" + id.String() + "}"
}
