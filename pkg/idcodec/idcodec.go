// Package idcodec encodes identifier collections as delimited text.
//
// Relationship fields (attended course lists, team member lists, course
// rosters) are stored as delimiter-joined strings. All encoding and
// decoding of those fields lives here so the rest of the code works with
// decoded slices and maps, never raw text.
package idcodec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Delimiter separates identifiers in encoded lists and roster pairs.
// Identifiers containing the delimiter are not supported.
const Delimiter = "@"

// rosterSeparator separates an identifier from its status flag in a
// roster pair, e.g. "2019001:1".
const rosterSeparator = ":"

// Encode joins identifiers into a single delimited string.
// An empty slice encodes to the empty string.
func Encode(ids []string) string {
	return strings.Join(ids, Delimiter)
}

// Decode splits a delimited string into identifiers.
// The empty string decodes to an empty slice, never nil.
func Decode(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, Delimiter)
}

// Remove returns ids without any occurrence of id.
func Remove(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// EncodeRoster serializes an identifier->status map as "id:status" pairs
// joined by the delimiter. Keys are sorted so the encoding is
// deterministic: encoding the same map twice yields identical text.
func EncodeRoster(roster map[string]int) string {
	keys := make([]string, 0, len(roster))
	for k := range roster {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+rosterSeparator+strconv.Itoa(roster[k]))
	}
	return strings.Join(pairs, Delimiter)
}

// DecodeRoster parses an encoded roster back into an identifier->status
// map. The empty string decodes to an empty map. A pair without a
// separator or with a non-integer status is an error.
func DecodeRoster(s string) (map[string]int, error) {
	roster := make(map[string]int)
	if s == "" {
		return roster, nil
	}

	for _, pair := range strings.Split(s, Delimiter) {
		id, status, ok := strings.Cut(pair, rosterSeparator)
		if !ok {
			return nil, fmt.Errorf("malformed roster pair: %q", pair)
		}
		n, err := strconv.Atoi(status)
		if err != nil {
			return nil, fmt.Errorf("malformed roster status in %q: %w", pair, err)
		}
		roster[id] = n
	}
	return roster, nil
}
