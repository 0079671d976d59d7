// Package dictionary parses the GS1 Syntax Dictionary text format into AI
// table entries suitable for loading into the syntax engine.
//
// The caller reads the file; this package transforms its lines. Each
// non-blank, non-comment line defines one AI or a numeric run of AIs:
//
//	AI[-AIlast] [*] component... [attribute...] [# title]
//
// where "*" marks a pre-defined fixed-length AI that needs no FNC1
// separator, a component is
//
//	[cset][min][..max][,linter...]
//
// with cset one of N, X, Y or Z and square brackets marking an optional
// component (e.g. "N14,csum,key", "X1..20", "[N2..4],mmoptss"), and an
// attribute is an "ex=" or "req=" rule token. Other "key=value" attribute
// tokens and the bare "dlpkey" flag are accepted and ignored; any other
// field is an error. Text after "#" is the title.
package dictionary

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ZeroxCorbin/gs1-syntax-engine/aitable"
)

// ParseLines converts Syntax Dictionary lines into a sorted AI table entry
// list. The result is not yet validated as a table; pass it to aitable.New
// or gs1.Engine.SetAITable.
func ParseLines(lines []string) ([]aitable.Entry, error) {
	var entries []aitable.Entry

	for n, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		parsed, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n+1)
		}
		entries = append(entries, parsed...)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].AI < entries[j].AI })
	return entries, nil
}

func parseLine(line string) ([]aitable.Entry, error) {
	title := ""
	if i := strings.Index(line, "#"); i >= 0 {
		title = strings.TrimSpace(line[i+1:])
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.New("missing AI")
	}

	first, last, err := parseAIRange(fields[0])
	if err != nil {
		return nil, err
	}
	fields = fields[1:]

	fnc1 := true
	if len(fields) > 0 && fields[0] == "*" {
		fnc1 = false
		fields = fields[1:]
	}

	var components []aitable.Component
	var attrs []string
	for _, f := range fields {
		if comp, ok, cerr := parseComponent(f); cerr != nil {
			return nil, cerr
		} else if ok {
			if len(attrs) > 0 {
				return nil, errors.Errorf("component %q follows attributes", f)
			}
			components = append(components, comp)
			continue
		}
		if strings.HasPrefix(f, "ex=") || strings.HasPrefix(f, "req=") {
			attrs = append(attrs, f)
			continue
		}
		if strings.Contains(f, "=") || f == "dlpkey" {
			continue // unrecognised attribute, e.g. dlpkey
		}
		return nil, errors.Errorf("unrecognised field %q", f)
	}
	if len(components) == 0 {
		return nil, errors.New("AI has no components")
	}

	var entries []aitable.Entry
	for ai := first; ; ai = nextAI(ai) {
		entries = append(entries, aitable.Entry{
			AI:         ai,
			FNC1:       fnc1,
			Components: components,
			Attrs:      strings.Join(attrs, " "),
			Title:      title,
		})
		if ai == last {
			break
		}
	}
	return entries, nil
}

func parseAIRange(f string) (first, last string, err error) {
	first, last = f, f
	if i := strings.IndexByte(f, '-'); i >= 0 {
		first, last = f[:i], f[i+1:]
	}
	if !validAI(first) || !validAI(last) {
		return "", "", errors.Errorf("malformed AI %q", f)
	}
	if len(first) != len(last) || first > last {
		return "", "", errors.Errorf("malformed AI range %q", f)
	}
	return first, last, nil
}

func validAI(ai string) bool {
	if len(ai) < 2 || len(ai) > 4 {
		return false
	}
	for i := 0; i < len(ai); i++ {
		if ai[i] < '0' || ai[i] > '9' {
			return false
		}
	}
	return true
}

// nextAI increments a fixed-width numeric AI string.
func nextAI(ai string) string {
	n, _ := strconv.Atoi(ai)
	s := strconv.Itoa(n + 1)
	for len(s) < len(ai) {
		s = "0" + s
	}
	return s
}

var csets = map[byte]aitable.CSet{
	'N': aitable.CSetNumeric,
	'X': aitable.CSet82,
	'Y': aitable.CSet39,
	'Z': aitable.CSet64,
}

// parseComponent recognises a component field; ok is false when the field
// is not component-shaped (so it may be an attribute instead).
func parseComponent(f string) (comp aitable.Component, ok bool, err error) {
	spec := f
	var linters []string
	if i := strings.IndexByte(f, ','); i >= 0 {
		spec = f[:i]
		linters = strings.Split(f[i+1:], ",")
	}

	optional := false
	if strings.HasPrefix(spec, "[") {
		if !strings.HasSuffix(spec, "]") {
			return comp, false, nil
		}
		optional = true
		spec = spec[1 : len(spec)-1]
	}

	if len(spec) < 2 {
		return comp, false, nil
	}
	cset, known := csets[spec[0]]
	if !known {
		return comp, false, nil
	}

	minStr, maxStr := spec[1:], spec[1:]
	if i := strings.Index(spec, ".."); i >= 0 {
		minStr, maxStr = spec[1:i], spec[i+2:]
	}
	min, err1 := strconv.Atoi(minStr)
	max, err2 := strconv.Atoi(maxStr)
	if err1 != nil || err2 != nil {
		return comp, false, nil
	}
	if min < 1 || min > max || max > aitable.MaxAILen {
		return comp, true, errors.Errorf("component %q has invalid lengths", f)
	}
	for _, l := range linters {
		if l == "" {
			return comp, true, errors.Errorf("component %q has an empty linter name", f)
		}
	}

	return aitable.Component{
		CSet:     cset,
		Min:      uint8(min),
		Max:      uint8(max),
		Optional: optional,
		Linters:  linters,
	}, true, nil
}
