// Package resolve maps a free-text name-or-id token onto one candidate.
//
// The policy is ordered:
//  1. a candidate whose id equals the token exactly;
//  2. otherwise the first candidate, in the given order, with a name field
//     containing the token case-insensitively.
//
// There is no scoring. Callers control the outcome through candidate order.
package resolve

import (
	"strings"

	"github.com/avitaltamir/rostui/internal/source"
)

// Func resolves token against candidates using id and names accessors.
func Func[T any](token string, candidates []T, id func(T) string, names func(T) []string) (T, bool) {
	var zero T
	if token == "" || len(candidates) == 0 {
		return zero, false
	}

	for _, c := range candidates {
		if id(c) == token {
			return c, true
		}
	}

	needle := strings.ToLower(token)
	for _, c := range candidates {
		for _, name := range names(c) {
			if name != "" && strings.Contains(strings.ToLower(name), needle) {
				return c, true
			}
		}
	}

	return zero, false
}

// Entry resolves token against directory entries.
func Entry(token string, entries []source.Entry) (source.Entry, bool) {
	return Func(token, entries, entryID, source.Entry.Names)
}

// ByID returns the entry with the given id.
func ByID(id string, entries []source.Entry) (source.Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return source.Entry{}, false
}

func entryID(e source.Entry) string {
	return e.ID
}
