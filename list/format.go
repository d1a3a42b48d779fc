package list

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var _ fmt.Stringer = &List[int]{}
var _ fmt.Scanner = &List[int]{}

// String renders the list as a bracketed, comma-separated sequence,
// e.g. [1, 2, 3]. An empty list renders as [].
func (l *List[T]) String() string {
	var b strings.Builder

	b.WriteByte('[')
	for it := l.head; it != nil; it = it.next {
		if it != l.head {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", it.value)
	}
	b.WriteByte(']')

	return b.String()
}

// Scan implements fmt.Scanner, reading the same bracketed form String
// produces: a leading '[', then either an immediate ']' or
// comma-separated values each read by the element type's own scanner,
// terminated by ']'. Scanned values are appended to l. A missing
// bracket or malformed comma run returns an error and leaves the
// input positioned where scanning stopped.
func (l *List[T]) Scan(state fmt.ScanState, verb rune) error {
	state.SkipSpace()
	r, _, err := state.ReadRune()
	if err != nil {
		return err
	}
	if r != '[' {
		return errors.Errorf("list: expected '[', got %q", r)
	}

	state.SkipSpace()
	r, _, err = state.ReadRune()
	if err != nil {
		return err
	}
	if r == ']' {
		return nil
	}
	if err := state.UnreadRune(); err != nil {
		return err
	}

	for {
		var v T
		if _, err := fmt.Fscan(state, &v); err != nil {
			return errors.Wrap(err, "list: scanning element")
		}
		l.PushBack(v)

		state.SkipSpace()
		r, _, err := state.ReadRune()
		if err != nil {
			return err
		}
		switch r {
		case ']':
			return nil
		case ',':
		default:
			return errors.Errorf("list: expected ',' or ']', got %q", r)
		}
	}
}

// Parse reads a single bracketed list literal from s.
func Parse[T comparable](s string) (*List[T], error) {
	l := New[T]()
	if _, err := fmt.Sscan(s, l); err != nil {
		return nil, err
	}
	return l, nil
}
