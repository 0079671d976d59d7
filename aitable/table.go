package aitable

import (
	"github.com/pkg/errors"

	"github.com/ZeroxCorbin/gs1-syntax-engine/lint"
)

// Table is a validated, lexicographically ordered AI table together with
// the AI-length-by-prefix lookup derived from it.
type Table struct {
	entries        []Entry
	lengthByPrefix [100]uint8
}

// New validates entries and builds a Table. The entries must be sorted
// lexicographically by AI; all AIs sharing a two-digit prefix must have the
// same length; entries that do not require FNC1 must agree with the fixed
// value length pre-defined for their prefix; and every referenced linter
// must resolve.
func New(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.New("AI table is empty")
	}

	t := &Table{entries: entries}

	prev := ""
	for i := range entries {
		e := &entries[i]

		if len(e.AI) < 2 || len(e.AI) > 4 || !allDigits(e.AI) {
			return nil, errors.Errorf("AI table is broken: %q is not a 2-4 digit AI", e.AI)
		}
		if e.AI <= prev {
			return nil, errors.Errorf("AI table is broken: entry (%s) is out of order", e.AI)
		}
		prev = e.AI

		if len(e.Components) == 0 {
			return nil, errors.Errorf("AI table is broken: AI (%s) has no components", e.AI)
		}
		for _, c := range e.Components {
			if c.CSet.LinterName() == "" {
				return nil, errors.Errorf("AI table is broken: AI (%s) has an invalid character set", e.AI)
			}
			if c.Min == 0 || c.Min > c.Max || int(c.Max) > MaxAILen {
				return nil, errors.Errorf("AI table is broken: AI (%s) has invalid component lengths", e.AI)
			}
			for _, name := range c.Linters {
				if _, err := lint.Lookup(name); err != nil {
					return nil, errors.Wrapf(err, "AI (%s)", e.AI)
				}
			}
		}

		p := prefixIndex(e.AI)
		l := uint8(len(e.AI))
		if t.lengthByPrefix[p] != 0 && t.lengthByPrefix[p] != l {
			return nil, errors.Errorf(
				"AI table is broken: AIs beginning '%c%c' have different lengths", e.AI[0], e.AI[1])
		}
		t.lengthByPrefix[p] = l

		fixed := FixedValueLength(e.AI)
		if e.FNC1 != (fixed == Variable) {
			return nil, errors.Errorf(
				"AI table is broken: AI (%s) disagrees with the fixed-length prefix list", e.AI)
		}
		if fixed != Variable && e.MaxLength() != int(fixed) {
			return nil, errors.Errorf(
				"AI table is broken: AI (%s) length %d differs from pre-defined length %d",
				e.AI, e.MaxLength(), fixed)
		}
	}

	return t, nil
}

// Entries returns the table entries in lexicographic AI order.
func (t *Table) Entries() []Entry {
	return t.entries
}

// AILengthByPrefix returns the length of all AIs whose first two digits are
// those of ai, or 0 when no such AIs exist. The first two bytes of ai must
// be digits.
func (t *Table) AILengthByPrefix(ai string) uint8 {
	return t.lengthByPrefix[prefixIndex(ai)]
}
