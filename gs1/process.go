package gs1

import (
	"strings"

	"github.com/ZeroxCorbin/gs1-syntax-engine/aitable"
	"github.com/ZeroxCorbin/gs1-syntax-engine/lint"
)

// processAIData validates unbracketed AI data ("^...") and optionally
// extracts the AIs. base is the offset of data within the buffer that the
// extracted offsets index, so composite parts record correct positions.
func (e *Engine) processAIData(data string, base int, extract bool) *Error {
	if !startsWithFNC1(data) {
		return e.failf(ErrParseStructure, "Missing FNC1 in first position")
	}
	p := 1
	if p == len(data) {
		return e.failf(ErrParseStructure, "The AI data is empty")
	}

	for p < len(data) {
		// Find an AI that matches a prefix of the data. Unknown AIs of
		// unknown AI length cannot be permitted when extracting from a
		// raw data string: the AI cannot be told apart from its value.
		entry := e.table.Lookup(data[p:], 0, e.permitUnknownAIs)
		if entry == nil || (extract && entry == aitable.Unknown) {
			return e.failf(ErrUnknownAI, "No known AI is a prefix of: %.4s...", data[p:])
		}

		ailen := len(entry.AI)
		ai := data[p : p+ailen]
		aiStart := p
		p += ailen

		// r is the next FNC1 or the end of the data.
		r := strings.IndexByte(data[p:], '^')
		if r < 0 {
			r = len(data)
		} else {
			r += p
		}

		vallen, err := e.validateAIValue(ai, entry, data[p:r])
		if err != nil {
			return err
		}

		if extract {
			if len(e.aiData) >= MaxAIs {
				return e.failf(ErrTooManyAIs, "Too many AIs")
			}
			e.aiData = append(e.aiData, AIValue{
				Kind:        KindAIValue,
				Entry:       entry,
				AIOffset:    base + aiStart,
				AILen:       ailen,
				ValueOffset: base + p,
				ValueLen:    vallen,
				DLPathOrder: DLPathOrderAttribute,
			})
		}

		// After an AI requiring FNC1, expect an FNC1 or the end.
		p += vallen
		if entry.FNC1 && p < len(data) && data[p] != '^' {
			return e.failf(ErrAIValueTooLong, "AI (%s) data is too long", ai)
		}

		// Skip FNC1, even at the end of fixed-length AIs.
		if p < len(data) && data[p] == '^' {
			p++
		}
	}

	return nil
}

// validateAIValue walks the AI's components over val, running the cset
// linter and then each additional linter per component, and returns how
// many bytes validation consumed.
func (e *Engine) validateAIValue(ai string, entry *aitable.Entry, val string) (int, *Error) {
	if len(val) == 0 {
		return 0, e.failf(ErrParseStructure, "AI (%s) data is empty", ai)
	}

	// After a fixed-length value the data runs on into the next AI. The
	// components never consume more than the AI's maximum length, so val is
	// limited to that, keeping the linter error markup to this AI's value.
	if maxLen := entry.MaxLength(); len(val) > maxLen {
		val = val[:maxLen]
	}

	p := 0
	for _, part := range entry.Components {
		complen := len(val) - p // until the given FNC1 or end...
		if int(part.Max) < complen {
			complen = int(part.Max) // ... reduced to the component maximum
		}
		comp := val[p : p+complen]

		if part.Optional && complen == 0 {
			continue
		}
		if complen < int(part.Min) {
			return 0, e.failf(ErrAIValueTooShort, "AI (%s) data is too short", ai)
		}

		// The cset linter runs first, then the additional linters.
		if err := e.runLinter(part.CSet.LinterName(), ai, val, comp, p); err != nil {
			return 0, err
		}
		for _, name := range part.Linters {
			if err := e.runLinter(name, ai, val, comp, p); err != nil {
				return 0, err
			}
		}

		p += complen
	}

	return p, nil
}

// runLinter applies one named linter to a component and, on failure, records
// the linter error and the markup of the offending region within the whole
// value.
func (e *Engine) runLinter(name, ai, val, comp string, compOffset int) *Error {
	fn, err := lint.Lookup(name)
	if err != nil {
		return e.failf(ErrTableBroken, "AI (%s): %s", ai, err.Error())
	}
	lerr := fn(comp)
	if lerr == nil {
		return nil
	}
	pos := compOffset + lerr.Pos
	end := pos + lerr.Len
	if end > len(val) {
		end = len(val)
	}
	e.linterErr = lerr.Kind
	e.linterErrMarkup = "(" + ai + ")" + val[:pos] + "|" + val[pos:end] + "|" + val[end:]
	return e.failf(ErrLinterFailure, "AI (%s): %s", ai, lerr.Kind)
}
