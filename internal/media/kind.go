// Package media stores the media attached to hymns and decides how a
// stored location should be played.
package media

import (
	"fmt"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
)

// Kind is the sort of media attached to a hymn. The string value is what
// gets persisted.
type Kind string

const (
	KindAccompaniment Kind = "HYMN_BANZOU"
	KindTeaching      Kind = "HYMN_JIAOCHANG"
	KindSinging       Kind = "HYMN_CHANGSHI"
	KindMidi          Kind = "HYMN_MIDI"
	KindLink          Kind = "HYMN_URL"
)

// Kinds lists every media kind in display order.
var Kinds = []Kind{KindAccompaniment, KindTeaching, KindSinging, KindMidi, KindLink}

// ParseKind accepts either the persisted value or the short name
// ("banzou", "jiaochang", "changshi", "midi", "url").
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if s == string(k) || s == k.Short() {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown media kind %q", s)
}

// Short returns the lowercase name used on the command line.
func (k Kind) Short() string {
	switch k {
	case KindAccompaniment:
		return "banzou"
	case KindTeaching:
		return "jiaochang"
	case KindSinging:
		return "changshi"
	case KindMidi:
		return "midi"
	case KindLink:
		return "url"
	default:
		return string(k)
	}
}

// Label returns the display name.
func (k Kind) Label() string {
	switch k {
	case KindAccompaniment:
		return "伴奏"
	case KindTeaching:
		return "教唱"
	case KindSinging:
		return "唱诗"
	case KindMidi:
		return "MIDI"
	case KindLink:
		return "链接"
	default:
		return string(k)
	}
}

// Key identifies a media record: one per hymn and kind.
type Key struct {
	Hymn hymnal.Ref
	Kind Kind
}

func (k Key) String() string {
	return fmt.Sprintf("%s [%s]", k.Hymn, k.Kind.Label())
}

// Record is a stored media location. Either field may be empty.
type Record struct {
	Key
	URI      string
	FilePath string
}
