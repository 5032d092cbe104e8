package filter

import (
	"fmt"
	"strings"
)

// Mode selects how windowed filters treat rows outside [0, RowCount).
type Mode int32

const (
	// ModeZero treats out-of-range samples as absent (zero contribution).
	ModeZero Mode = iota

	// ModeOmit makes the result undefined (NaN) when the window leaves the data.
	ModeOmit

	// ModeRepeat clamps to the first or last row.
	ModeRepeat

	// ModeMirror reflects about the first and last row: -1 reads row 1 and
	// n reads row n-2.
	ModeMirror

	// ModeCircular wraps modulo the row count.
	ModeCircular
)

var modeNames = [...]string{
	ModeZero:     "zero",
	ModeOmit:     "omit",
	ModeRepeat:   "repeat",
	ModeMirror:   "mirror",
	ModeCircular: "circular",
}

// Modes returns all modes in declaration order.
func Modes() []Mode {
	return []Mode{ModeZero, ModeOmit, ModeRepeat, ModeMirror, ModeCircular}
}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int32(m))
}

// ParseMode returns the mode named s (case-insensitive).
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Resolve maps a logical row index i onto a real row of an n-row source.
// ok is false when the mode provides no row: always for n <= 0, and for
// out-of-range i under ModeZero and ModeOmit.
func (m Mode) Resolve(i, n int) (row int, ok bool) {
	if n <= 0 {
		return -1, false
	}
	if i >= 0 && i < n {
		return i, true
	}

	switch m {
	case ModeRepeat:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	case ModeMirror:
		if n == 1 {
			return 0, true
		}
		period := 2 * (n - 1)
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - i
		}
		return i, true
	case ModeCircular:
		i %= n
		if i < 0 {
			i += n
		}
		return i, true
	default:
		return -1, false
	}
}
