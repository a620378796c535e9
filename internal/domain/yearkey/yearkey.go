// Package yearkey normalizes heterogeneous survey year labels into a
// totally-ordered comparable key. Labels are either plain years ("2024")
// or multi-year spans ("2014-2015"); both order by their first embedded
// integer. Two distinct labels sharing a start year order by lexicographic
// byte order of the verbatim label, so equal-but-distinct labels never
// compare equal and streak adjacency stays deterministic.
package yearkey

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Sentinel error kinds for this package.
var (
	// ErrMalformedLabel marks a label from which no ordering integer can
	// be extracted. The offending record is dropped, not the whole run.
	ErrMalformedLabel = errors.New("malformed year label")
)

// firstInteger extracts the leading ordering value from a label.
var firstInteger = regexp.MustCompile(`\d+`)

// Key is the derived ordering key for one year label. Comparable and safe
// to use as a map key; the verbatim label is preserved for display.
type Key struct {
	// Start is the first integer embedded in the label.
	Start int `json:"start"`
	// Label is the trimmed verbatim label.
	Label string `json:"label"`
}

// Parse builds a Key from a year label.
func Parse(label string) (Key, error) {
	trimmed := strings.TrimSpace(label)
	digits := firstInteger.FindString(trimmed)
	if digits == "" {
		return Key{}, fmt.Errorf("%w: %q", ErrMalformedLabel, label)
	}
	start, err := strconv.Atoi(digits)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %q: %v", ErrMalformedLabel, label, err)
	}
	return Key{Start: start, Label: trimmed}, nil
}

// Compare returns -1, 0, or 1. The order is total: start year ascending,
// then lexicographic label order between distinct labels with the same
// start ("2014" sorts before "2014-2015").
func Compare(a, b Key) int {
	switch {
	case a.Start < b.Start:
		return -1
	case a.Start > b.Start:
		return 1
	}
	return strings.Compare(a.Label, b.Label)
}

// Less reports whether k orders strictly before other.
func (k Key) Less(other Key) bool {
	return Compare(k, other) < 0
}

// String returns the verbatim label.
func (k Key) String() string {
	return k.Label
}

// Sort orders keys chronologically ascending, in place.
func Sort(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		return Compare(keys[i], keys[j]) < 0
	})
}
