package gs1

import (
	"strings"

	"github.com/ZeroxCorbin/gs1-syntax-engine/aitable"
)

// parseAIData converts bracketed AI syntax, "(AI)value...", to the regular
// unbracketed data string with "^" for FNC1, extracting AIs as it goes. A
// "(" inside a value must be escaped as "\(".
func (e *Engine) parseAIData(aiData string) *Error {
	var out []byte
	fnc1req := true // FNC1 in first

	i := 0
	for i < len(aiData) {
		if aiData[i] != '(' { // expect start of AI
			return e.parseFailed()
		}
		i++
		close := strings.IndexByte(aiData[i:], ')') // find end of AI
		if close < 0 {
			return e.parseFailed()
		}
		ailen := close
		entry := e.table.Lookup(aiData[i:], ailen, e.permitUnknownAIs)
		if entry == nil {
			return e.failf(ErrUnknownAI, "Unrecognised AI: %s", aiData[i:i+ailen])
		}
		ai := aiData[i : i+ailen]

		if fnc1req {
			out = append(out, '^') // write FNC1, if required
		}
		aiOffset := len(out)
		out = append(out, ai...)
		fnc1req = entry.FNC1 // whether FNC1 required before the next AI

		i += ailen + 1 // advance to start of AI value
		if i >= len(aiData) {
			return e.parseFailed() // message ends after AI with no value
		}

		valOffset := len(out)
		for {
			j := strings.IndexByte(aiData[i:], '(')
			if j < 0 {
				out = append(out, aiData[i:]...)
				i = len(aiData)
				break
			}
			j += i
			if aiData[j-1] == '\\' { // an escaped data bracket
				out = append(out, aiData[i:j-1]...)
				out = append(out, '(')
				i = j + 1
				continue
			}
			out = append(out, aiData[i:j]...)
			i = j
			break
		}

		// Certain checks happen at parse time, before the linters see
		// the components.
		val := string(out[valOffset:])
		if err := e.aiValLengthContentCheck(ai, entry, val); err != nil {
			return err
		}
		if len(out) > MaxDataLen {
			return e.failf(ErrParseStructure, "Maximum data length exceeded")
		}

		if len(e.aiData) >= MaxAIs {
			return e.failf(ErrTooManyAIs, "Too many AIs")
		}
		e.aiData = append(e.aiData, AIValue{
			Kind:        KindAIValue,
			Entry:       entry,
			AIOffset:    aiOffset,
			AILen:       ailen,
			ValueOffset: valOffset,
			ValueLen:    len(val),
			DLPathOrder: DLPathOrderAttribute,
		})
	}

	e.dataStr = string(out)
	e.aiDataBuf = e.dataStr

	// Re-validate the data that was written, without extraction, for
	// parity with direct unbracketed input.
	return e.processAIData(e.dataStr, 0, false)
}

func (e *Engine) parseFailed() *Error {
	return e.failf(ErrParseStructure, "Failed to parse AI data")
}

// aiValLengthContentCheck rejects values that are outside the AI's overall
// length bounds or that contain the "^" separator, before component-based
// validation runs. Reporting issues such as a checksum failure would not be
// helpful when the value is obviously truncated or over-long.
func (e *Engine) aiValLengthContentCheck(ai string, entry *aitable.Entry, val string) *Error {
	if len(val) < entry.MinLength() {
		return e.failf(ErrAIValueTooShort, "AI (%s) value is too short", ai)
	}
	if len(val) > entry.MaxLength() {
		return e.failf(ErrAIValueTooLong, "AI (%s) value is too long", ai)
	}
	if strings.IndexByte(val, '^') >= 0 {
		return e.failf(ErrIllegalSeparatorInValue, "AI (%s) contains illegal ^ character", ai)
	}
	return nil
}
