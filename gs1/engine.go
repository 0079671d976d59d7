// Package gs1 implements the GS1 syntax engine: parsing and validation of
// AI element strings in bracketed and unbracketed form, cross-AI semantic
// validation, and conversion to and from barcode scan data.
//
// The engine stores AI data in a compact unbracketed form where "^"
// represents FNC1, i.e. "^...". Bracketed element strings and scan data are
// parsed into that form, and a table of extracted AIs referencing the
// normalized buffer is populated as a side effect.
//
// An Engine is a single-threaded session context. Concurrent calls on the
// same Engine are not supported; distinct Engines are independent.
package gs1

import (
	"github.com/ZeroxCorbin/gs1-syntax-engine/aitable"
	"github.com/ZeroxCorbin/gs1-syntax-engine/lint"
)

const (
	// MaxAIs is the most extracted AI values a single input may carry.
	MaxAIs = 64
	// MaxDataLen is the capacity of the normalized data buffer.
	MaxDataLen = 8191
)

// ValueKind distinguishes the entries of the extracted AI list.
type ValueKind uint8

const (
	// KindAIValue is a parsed AI with its value.
	KindAIValue ValueKind = iota
	// KindComponentSeparator marks the "|" boundary between the linear
	// and 2D composite parts of the data.
	KindComponentSeparator
)

// DLPathOrderAttribute is the DLPathOrder for AIs that are not part of a
// Digital Link URI path, which is every AI for non-URI inputs.
const DLPathOrderAttribute = 0xFF

// AIValue is one extracted AI. The offsets index the engine's normalized
// data buffer; they remain valid until the next top-level operation.
type AIValue struct {
	Kind        ValueKind
	Entry       *aitable.Entry
	AIOffset    int
	AILen       int
	ValueOffset int
	ValueLen    int
	DLPathOrder uint8
}

// DigitalLinkParser extracts AI element data from a GS1 Digital Link URI.
// The returned element string is unbracketed AI data beginning with "^".
// It is an external collaborator of the engine: the URI grammar is not
// implemented here.
type DigitalLinkParser interface {
	ExtractAIsFromURL(uri string) (string, error)
}

// Engine is the session context that all operations run against.
type Engine struct {
	table            *aitable.Table
	sym              Symbology
	permitUnknownAIs bool
	addCheckDigit    bool

	dataStr    string
	aiData     []AIValue
	aiDataBuf  string // the buffer aiData offsets index: dataStr, or the DL extraction buffer
	dlAIBuffer string

	errMsg          string
	linterErr       lint.ErrorKind
	linterErrMarkup string

	validations []validation
	dlParser    DigitalLinkParser
}

// New returns an Engine over the embedded AI table.
func New() (*Engine, error) {
	e := &Engine{sym: SymNone}
	e.loadValidationTable()
	if err := e.SetAITable(nil); err != nil {
		return nil, err
	}
	return e, nil
}

// SetAITable replaces the active AI table. A nil or empty slice requests
// the embedded table. When the supplied table fails validation the engine
// falls back to the embedded table and reports the load failure, so the
// caller decides whether that is fatal.
func (e *Engine) SetAITable(entries []aitable.Entry) error {
	if len(entries) == 0 {
		e.table = aitable.Embedded()
		return nil
	}
	tbl, err := aitable.New(entries)
	if err != nil {
		e.table = aitable.Embedded()
		return e.failf(ErrTableBroken, "%s", err.Error())
	}
	e.table = tbl
	return nil
}

// SetPermitUnknownAIs controls whether AIs absent from the table may be
// vivified during lookup.
func (e *Engine) SetPermitUnknownAIs(permit bool) {
	e.permitUnknownAIs = permit
}

// PermitUnknownAIs reports the current unknown-AI policy.
func (e *Engine) PermitUnknownAIs() bool {
	return e.permitUnknownAIs
}

// SetAddCheckDigit controls whether EAN/UPC and DataBar primary data may be
// supplied without its check digit, which is then computed during scan data
// generation. Decoding scan data always requires the transmitted check
// digit to be present and correct.
func (e *Engine) SetAddCheckDigit(add bool) {
	e.addCheckDigit = add
}

// AddCheckDigit reports the current check digit completion policy.
func (e *Engine) AddCheckDigit() bool {
	return e.addCheckDigit
}

// SetDigitalLinkParser installs the external Digital Link URI collaborator
// used when scan data carries an http(s) payload.
func (e *Engine) SetDigitalLinkParser(p DigitalLinkParser) {
	e.dlParser = p
}

// reset clears the per-operation state at the start of each top-level call.
func (e *Engine) reset() {
	e.dataStr = ""
	e.aiData = e.aiData[:0]
	e.aiDataBuf = ""
	e.dlAIBuffer = ""
	e.errMsg = ""
	e.linterErr = lint.OK
	e.linterErrMarkup = ""
}

// clearOnError empties the output state so that no partial results survive
// a failed operation.
func (e *Engine) clearOnError() {
	e.dataStr = ""
	e.aiData = e.aiData[:0]
	e.aiDataBuf = ""
	e.dlAIBuffer = ""
}

// DataStr returns the current data string: unbracketed AI data beginning
// with "^", optionally followed by "|" and a composite part, or plain data.
func (e *Engine) DataStr() string {
	return e.dataStr
}

// AIData returns the extracted AI list for the current data.
func (e *Engine) AIData() []AIValue {
	return e.aiData
}

// NumAIs returns the number of entries in the extracted AI list.
func (e *Engine) NumAIs() int {
	return len(e.aiData)
}

// AI returns the AI digits of the i-th extracted entry.
func (e *Engine) AI(i int) string {
	v := e.aiData[i]
	return e.aiDataBuf[v.AIOffset : v.AIOffset+v.AILen]
}

// Value returns the value of the i-th extracted entry.
func (e *Engine) Value(i int) string {
	v := e.aiData[i]
	return e.aiDataBuf[v.ValueOffset : v.ValueOffset+v.ValueLen]
}

// ErrMsg returns the message of the last failed operation, or "".
func (e *Engine) ErrMsg() string {
	return e.errMsg
}

// LinterErr returns the linter failure of the last failed operation, or
// lint.OK.
func (e *Engine) LinterErr() lint.ErrorKind {
	return e.linterErr
}

// LinterErrMarkup returns the offending AI value with "|...|" around the
// region the linter rejected, or "".
func (e *Engine) LinterErrMarkup() string {
	return e.linterErrMarkup
}

// SetAIDataStr parses a bracketed AI element string such as
// "(01)12345678901231(10)ABC123", validates it, and stores the normalized
// unbracketed form.
func (e *Engine) SetAIDataStr(aiData string) error {
	e.reset()
	if err := e.parseAIData(aiData); err != nil {
		e.clearOnError()
		return err
	}
	if err := e.validateAIs(); err != nil {
		e.clearOnError()
		return err
	}
	return nil
}

// SetDataStr accepts a raw data string. Unbracketed AI data beginning with
// "^" (optionally "|"-delimited from a composite part, itself beginning
// "^") is validated and its AIs extracted; anything else is stored as plain
// data, except that when it contains "|" the part after the first "|" is
// processed as an AI composite part, which must begin with "^".
func (e *Engine) SetDataStr(data string) error {
	e.reset()
	if len(data) > MaxDataLen {
		err := e.failf(ErrParseStructure, "Maximum data length exceeded")
		e.clearOnError()
		return err
	}
	e.dataStr = data
	e.aiDataBuf = data
	if !startsWithFNC1(data) {
		if cc := indexComposite(data); cc >= 0 {
			if err := e.processComposite(data, cc); err != nil {
				e.clearOnError()
				return err
			}
			if err := e.validateAIs(); err != nil {
				e.clearOnError()
				return err
			}
		}
		return nil
	}

	linear := data
	cc := indexComposite(data)
	if cc >= 0 {
		linear = data[:cc]
	}
	if err := e.processAIData(linear, 0, true); err != nil {
		e.clearOnError()
		return err
	}
	if cc >= 0 {
		if err := e.processComposite(data, cc); err != nil {
			e.clearOnError()
			return err
		}
	}
	if err := e.validateAIs(); err != nil {
		e.clearOnError()
		return err
	}
	return nil
}

// processComposite validates and extracts the composite part following the
// "|" at offset cc, recording a separator marker in the AI list.
func (e *Engine) processComposite(data string, cc int) error {
	comp := data[cc+1:]
	if !startsWithFNC1(comp) {
		return e.failf(ErrParseStructure, "Composite component must start with FNC1")
	}
	if len(e.aiData) >= MaxAIs {
		return e.failf(ErrTooManyAIs, "Too many AIs")
	}
	e.aiData = append(e.aiData, AIValue{Kind: KindComponentSeparator})
	return e.processAIData(comp, cc+1, true)
}

func startsWithFNC1(s string) bool {
	return len(s) > 0 && s[0] == '^'
}

func indexComposite(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '|' {
			return i
		}
	}
	return -1
}
