// Package hymnal defines the four hymn collections and the numbering rules
// that tie a user-facing hymn number to a collection.
package hymnal

import (
	"fmt"
	"strings"
)

// Type identifies a hymn collection.
type Type uint8

const (
	ER Type = iota + 1 // 儿童诗歌
	XB                 // 新歌颂咏
	BB                 // 補充本
	DB                 // 大本诗歌
)

// All lists the hymnals in display order.
var All = []Type{DB, BB, XB, ER}

// Numbering maxima. These must be updated whenever new content is added.
const (
	DBNoMax    = 780 // last main DB number
	DBSNoMax   = 6   // last DB supplement (Fu) number
	DBNoTMax   = DBNoMax + DBSNoMax
	DBIndexMax = DBNoTMax

	BBNoMax    = 1005
	BBIndexMax = 513

	XBNoMax    = 169
	XBIndexMax = 169

	ERNoMax    = 1232
	ERIndexMax = 330
)

// ParseType converts a short code ("er", "xb", "bb", "db") or a table name
// ("hymn_er", ...) into a Type.
func ParseType(s string) (Type, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "hymn_") {
	case "er":
		return ER, nil
	case "xb":
		return XB, nil
	case "bb":
		return BB, nil
	case "db":
		return DB, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, s)
}

// Valid reports whether t is one of the four known hymnals.
func (t Type) Valid() bool {
	return t >= ER && t <= DB
}

// String returns the short code of the hymnal.
func (t Type) String() string {
	switch t {
	case ER:
		return "er"
	case XB:
		return "xb"
	case BB:
		return "bb"
	case DB:
		return "db"
	default:
		return fmt.Sprintf("hymnal(%d)", uint8(t))
	}
}

// Table returns the persistence table name for the hymnal.
func (t Type) Table() string {
	return "hymn_" + t.String()
}

// Title returns the collection's display name.
func (t Type) Title() string {
	switch t {
	case ER:
		return "儿童诗歌"
	case XB:
		return "新歌颂咏"
	case BB:
		return "補充本"
	case DB:
		return "大本诗歌"
	default:
		return t.String()
	}
}

// Max returns the highest hymn number accepted for the hymnal,
// including the DB supplement numbers.
func (t Type) Max() int {
	switch t {
	case ER:
		return ERNoMax
	case XB:
		return XBNoMax
	case BB:
		return BBNoMax
	case DB:
		return DBNoTMax
	default:
		return 0
	}
}

// Ref points at one hymn of a collection.
// For DB supplement hymns Fu is set and No is the supplement number (1..DBSNoMax).
type Ref struct {
	Type Type
	No   int
	Fu   bool
}

// Absolute returns the number used for page indexing and persistence.
// DB supplement hymns continue after DBNoMax.
func (r Ref) Absolute() int {
	if r.Type == DB && r.Fu {
		return r.No + DBNoMax
	}
	return r.No
}

// FromAbsolute builds a Ref from an absolute number, splitting DB numbers
// beyond DBNoMax into supplement refs.
func FromAbsolute(t Type, no int) Ref {
	if t == DB && no > DBNoMax {
		return Ref{Type: t, No: no - DBNoMax, Fu: true}
	}
	return Ref{Type: t, No: no}
}

func (r Ref) String() string {
	if r.Fu {
		return fmt.Sprintf("%s 附%d", r.Type.Title(), r.No)
	}
	return fmt.Sprintf("%s %d", r.Type.Title(), r.No)
}
