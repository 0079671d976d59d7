package gs1

import (
	"strings"

	"github.com/pkg/errors"
)

type validationFunc func(*Engine) *Error

// validation is one entry of the cross-AI validation table. Locked entries
// cannot be disabled.
type validation struct {
	name    string
	locked  bool
	enabled bool
	fn      validationFunc
}

func (e *Engine) loadValidationTable() {
	e.validations = []validation{
		{name: "mutex", locked: true, enabled: true, fn: (*Engine).validateMutex},
		{name: "requisites", locked: false, enabled: true, fn: (*Engine).validateRequisites},
		{name: "repeats", locked: true, enabled: true, fn: (*Engine).validateRepeats},
	}
}

// validateAIs executes each enabled validation in table order; the first
// failing pass short-circuits.
func (e *Engine) validateAIs() *Error {
	for _, v := range e.validations {
		if !v.enabled || v.fn == nil {
			continue
		}
		if err := v.fn(e); err != nil {
			return err
		}
	}
	return nil
}

// SetValidationEnabled toggles a cross-AI validation pass by name. Locked
// passes refuse to be disabled.
func (e *Engine) SetValidationEnabled(name string, enabled bool) error {
	for i := range e.validations {
		v := &e.validations[i]
		if v.name != name {
			continue
		}
		if v.locked && !enabled {
			return errors.Errorf("validation %q is locked and cannot be disabled", name)
		}
		v.enabled = enabled
		return nil
	}
	return errors.Errorf("no such validation: %s", name)
}

// ValidationEnabled reports whether the named pass is enabled.
func (e *Engine) ValidationEnabled(name string) bool {
	for _, v := range e.validations {
		if v.name == name {
			return v.enabled
		}
	}
	return false
}

// ValidationLocked reports whether the named pass is locked.
func (e *Engine) ValidationLocked(name string) bool {
	for _, v := range e.validations {
		if v.name == name {
			return v.locked
		}
	}
	return false
}

// aiExists searches the extracted AIs for one matching the given pattern.
// The digit prefix of the pattern must match the same-length prefix of the
// candidate's AI; trailing "n" wildcards are covered by the prefix length.
// The AI at ignoreOffset is skipped so self-referencing patterns do not
// trigger on themselves: a candidate is ignored when its first len(pattern)
// data bytes equal those at the ignore position.
func (e *Engine) aiExists(pattern string, ignoreOffset int) (string, bool) {
	prefixlen := 0
	for prefixlen < len(pattern) && pattern[prefixlen] >= '0' && pattern[prefixlen] <= '9' {
		prefixlen++
	}

	for _, v := range e.aiData {
		if v.Kind != KindAIValue {
			continue
		}
		if !e.bufEqual(v.AIOffset, pattern[:prefixlen]) {
			continue
		}
		if e.bufRegionsEqual(v.AIOffset, ignoreOffset, len(pattern)) {
			continue
		}
		return e.aiDataBuf[v.AIOffset : v.AIOffset+v.AILen], true
	}
	return "", false
}

// bufEqual reports whether the data buffer at off starts with s.
func (e *Engine) bufEqual(off int, s string) bool {
	if off+len(s) > len(e.aiDataBuf) {
		return false
	}
	return e.aiDataBuf[off:off+len(s)] == s
}

// bufRegionsEqual compares n bytes of the data buffer at two offsets.
func (e *Engine) bufRegionsEqual(a, b, n int) bool {
	if a+n > len(e.aiDataBuf) || b+n > len(e.aiDataBuf) {
		return false
	}
	return e.aiDataBuf[a:a+n] == e.aiDataBuf[b:b+n]
}

// validateMutex processes the "ex" attributes of each extracted AI to
// ensure that mutually exclusive AIs do not appear together.
func (e *Engine) validateMutex() *Error {
	for _, v := range e.aiData {
		if v.Kind != KindAIValue {
			continue
		}
		for _, token := range strings.Fields(v.Entry.Attrs) {
			if !strings.HasPrefix(token, "ex=") {
				continue
			}
			for _, pattern := range strings.Split(token[3:], ",") {
				if matched, ok := e.aiExists(pattern, v.AIOffset); ok {
					return e.failf(ErrMutexViolation,
						"It is invalid to pair AI (%s) with AI (%s)",
						e.aiDataBuf[v.AIOffset:v.AIOffset+v.AILen], matched)
				}
			}
		}
	}
	return nil
}

// validateRequisites processes the "req" attributes of each extracted AI to
// ensure that every requisite group is satisfied by some other AI. Groups
// are ANDed; the comma-separated patterns within a group are ORed.
func (e *Engine) validateRequisites() *Error {
	for _, v := range e.aiData {
		if v.Kind != KindAIValue {
			continue
		}
		for _, token := range strings.Fields(v.Entry.Attrs) {
			if !strings.HasPrefix(token, "req=") {
				continue
			}
			satisfied := false
			for _, pattern := range strings.Split(token[4:], ",") {
				if _, ok := e.aiExists(pattern, v.AIOffset); ok {
					satisfied = true
					break
				}
			}
			if !satisfied {
				return e.failf(ErrRequisitesUnsatisfied,
					"Required AIs for AI (%s) are not satisfied: %s",
					e.aiDataBuf[v.AIOffset:v.AIOffset+v.AILen], token[4:])
			}
		}
	}
	return nil
}

// validateRepeats ensures that any repeated AIs have identical values.
// Repeats occur legitimately when reads of multiple symbols on one label
// are concatenated.
func (e *Engine) validateRepeats() *Error {
	for i := 0; i < len(e.aiData); i++ {
		v := e.aiData[i]
		if v.Kind != KindAIValue {
			continue
		}
		for j := i + 1; j < len(e.aiData); j++ {
			v2 := e.aiData[j]
			if v2.Kind != KindAIValue {
				continue
			}
			if v.AILen != v2.AILen ||
				e.aiDataBuf[v.AIOffset:v.AIOffset+v.AILen] != e.aiDataBuf[v2.AIOffset:v2.AIOffset+v2.AILen] {
				continue
			}
			if v.ValueLen != v2.ValueLen ||
				e.aiDataBuf[v.ValueOffset:v.ValueOffset+v.ValueLen] != e.aiDataBuf[v2.ValueOffset:v2.ValueOffset+v2.ValueLen] {
				return e.failf(ErrRepeatMismatch,
					"Multiple instances of AI (%s) have different values",
					e.aiDataBuf[v.AIOffset:v.AIOffset+v.AILen])
			}
		}
	}
	return nil
}
