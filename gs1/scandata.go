package gs1

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Symbology identifies the barcode symbol type that data is destined for or
// was read from.
type Symbology int

const (
	SymNone Symbology = iota
	SymDataBarOmni
	SymDataBarTruncated
	SymDataBarStacked
	SymDataBarStackedOmni
	SymDataBarLimited
	SymDataBarExpanded
	SymUPCA
	SymUPCE
	SymEAN13
	SymEAN8
	SymGS1128CCA
	SymGS1128CCC
	SymQR
	SymDM
	numSymbologies
)

var symbologyNames = [numSymbologies]string{
	"NONE",
	"DataBar Omnidirectional",
	"DataBar Truncated",
	"DataBar Stacked",
	"DataBar Stacked Omnidirectional",
	"DataBar Limited",
	"DataBar Expanded",
	"UPC-A",
	"UPC-E",
	"EAN-13",
	"EAN-8",
	"GS1-128 with CC-A or CC-B",
	"GS1-128 with CC-C",
	"QR Code",
	"Data Matrix",
}

func (s Symbology) String() string {
	if s < 0 || s >= numSymbologies {
		return "UNKNOWN"
	}
	return symbologyNames[s]
}

// SetSymbology selects the symbology used by GenerateScanData.
func (e *Engine) SetSymbology(sym Symbology) error {
	if sym < SymNone || sym >= numSymbologies {
		return errors.Errorf("unknown symbology: %d", sym)
	}
	e.sym = sym
	return nil
}

// Symbology returns the current symbology, which ProcessScanData updates to
// the default symbology of the scanned symbology identifier.
func (e *Engine) Symbology() Symbology {
	return e.sym
}

// gsChar is the group separator a scanner transmits where the symbol
// carried FNC1.
const gsChar = '\x1D'

// symIDEntry maps a three-character symbology identifier to whether its
// payload is GS1 AI data and the symbology it is taken to have been read
// from.
type symIDEntry struct {
	identifier string
	aiMode     bool
	defaultSym Symbology
}

var symIDTable = []symIDEntry{
	{"]C1", true, SymGS1128CCA},
	{"]E0", false, SymEAN13},
	{"]E4", false, SymEAN8},
	{"]e0", true, SymDataBarExpanded}, // shared with GS1-128 CC
	{"]d1", false, SymDM},
	{"]d2", true, SymDM},
	{"]Q1", false, SymQR},
	{"]Q3", true, SymQR},
}

// scancat appends AI data to out in over-the-wire form: the leading FNC1 is
// dropped (the symbology identifier implies it), embedded FNC1s become GS
// and a trailing FNC1 is stripped. Plain data is appended as-is, except
// that one level of leading-"^" backslash escaping is removed.
func scancat(out []byte, in string) []byte {
	if startsWithFNC1(in) {
		for i := 1; i < len(in); i++ {
			if in[i] == '^' {
				out = append(out, gsChar)
			} else {
				out = append(out, in[i])
			}
		}
		if len(in) > 1 && in[len(in)-1] == '^' { // strip any trailing FNC1
			out = out[:len(out)-1]
		}
		return out
	}

	// Unescape a leading sequence "\\...^" by one backslash.
	r := 0
	for r < len(in) && in[r] == '\\' {
		r++
	}
	if r > 0 && r < len(in) && in[r] == '^' {
		in = in[1:]
	}
	return append(out, in...)
}

// validateParity checks the final digit of str as a GS1 check digit over
// the preceding digits, replacing it with the correct digit on mismatch.
func validateParity(str []byte) bool {
	weight := 1
	if len(str)%2 == 0 {
		weight = 3
	}
	parity := 0
	for _, c := range str[:len(str)-1] {
		parity += weight * int(c-'0')
		weight = 4 - weight
	}
	parity = (10 - parity%10) % 10

	if byte(parity)+'0' == str[len(str)-1] {
		return true
	}
	str[len(str)-1] = byte(parity) + '0' // recalculate
	return false
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// normalisePrimary reduces dataStr to an EAN/UPC or DataBar primary of the
// given digit count, stripping an AI (01) introducer with zero padding of
// aiPrefix, verifying the check digit or, with AddCheckDigit set, computing
// it from data supplied one digit short (a "-" placeholder is appended and
// replaced by the computed digit).
func (e *Engine) normalisePrimary(dataStr, aiPrefix string, digits int, lead string) (string, *Error) {
	if len(dataStr) >= len(aiPrefix) && strings.HasPrefix(dataStr, aiPrefix) {
		dataStr = dataStr[len(aiPrefix):]
	}

	if !e.addCheckDigit {
		if len(dataStr) != digits {
			return "", e.failf(ErrScanDataBadPrimary, "Primary data must be %d digits", digits)
		}
	} else {
		if len(dataStr) != digits-1 {
			return "", e.failf(ErrScanDataBadPrimary,
				"Primary data must be %d digits without check digit", digits-1)
		}
	}

	if !allDigits(dataStr) {
		return "", e.failf(ErrScanDataBadPrimary, "Primary data must be all digits")
	}

	primary := lead + dataStr
	if e.addCheckDigit {
		primary += "-"
	}

	b := []byte(primary)
	if !validateParity(b) && !e.addCheckDigit {
		return "", e.failf(ErrScanDataBadPrimary, "Primary data check digit is incorrect")
	}
	return string(b), nil
}

// GenerateScanData encodes the current data string as the byte string a
// reader of the current symbology would transmit, symbology identifier
// included.
func (e *Engine) GenerateScanData() (string, error) {
	linear := e.dataStr
	cc := ""
	hasCC := false
	if i := indexComposite(e.dataStr); i >= 0 { // delimit end of linear data
		linear, cc, hasCC = e.dataStr[:i], e.dataStr[i+1:], true
	}

	var out []byte

	switch e.sym {

	case SymQR, SymDM:
		// "]Q1"/"]d1" for plain data; "]Q3"/"]d2" for GS1 data.
		if startsWithFNC1(linear) {
			if e.sym == SymQR {
				out = append(out, "]Q3"...)
			} else {
				out = append(out, "]d2"...)
			}
			out = scancat(out, linear)
		} else {
			if e.sym == SymQR {
				out = append(out, "]Q1"...)
			} else {
				out = append(out, "]d1"...)
			}
			out = scancat(out, e.dataStr) // plain data keeps the "|"
		}

	case SymGS1128CCA, SymGS1128CCC:
		if !hasCC {
			// "]C1" for linear-only GS1-128.
			if !startsWithFNC1(linear) {
				return "", e.failf(ErrScanDataBadPrimary, "GS1-128 data must start with FNC1")
			}
			out = append(out, "]C1"...)
			out = scancat(out, linear)
			break
		}
		fallthrough // GS1-128 Composite transmits as "]e0"

	case SymDataBarExpanded:
		// "]e0" followed by the concatenated AI data of linear and CC.
		if !startsWithFNC1(linear) {
			return "", e.failf(ErrScanDataBadPrimary, "AI data must start with FNC1")
		}
		out = append(out, "]e0"...)
		out = scancat(out, linear)

		if hasCC {
			if !startsWithFNC1(cc) {
				return "", e.failf(ErrScanDataBadPrimary, "Composite component must start with FNC1")
			}
			// Append a GS unless the last AI of the linear
			// component is fixed-length.
			lastAIfnc1 := false
			for _, v := range e.aiData {
				if v.Kind != KindAIValue {
					break
				}
				lastAIfnc1 = v.Entry.FNC1
			}
			if lastAIfnc1 {
				out = append(out, gsChar)
			}
			out = scancat(out, cc)
		}

	case SymDataBarOmni, SymDataBarTruncated, SymDataBarStacked, SymDataBarStackedOmni, SymDataBarLimited:
		// "]e0" with the primary converted to AI (01) form.
		primary, err := e.normalisePrimary(linear, "^01", 14, "")
		if err != nil {
			return "", err
		}
		if e.sym == SymDataBarLimited {
			n, perr := strconv.ParseUint(primary, 10, 64)
			if perr != nil || n > 19999999999999 {
				return "", e.failf(ErrScanDataBadPrimary, "Primary data item value is too large")
			}
		}
		out = append(out, "]e001"...)
		out = scancat(out, primary)

		if hasCC {
			if !startsWithFNC1(cc) {
				return "", e.failf(ErrScanDataBadPrimary, "Composite component must start with FNC1")
			}
			out = scancat(out, cc)
		}

	case SymUPCA, SymUPCE, SymEAN13, SymEAN8:
		// The primary is "]E0" + 13 digits ("]E4" + 8 for EAN-8); a CC
		// is a new message beginning "]e0".
		var primary string
		var err *Error
		var prefix string
		switch e.sym {
		case SymEAN8:
			primary, err = e.normalisePrimary(linear, "^01000000", 8, "")
			prefix = "]E4"
		case SymUPCE:
			primary, err = e.normalisePrimary(linear, "^0100", 12, "")
			prefix = "]E00" // UPC-E is normalised to 12 digits
		case SymUPCA:
			primary, err = e.normalisePrimary(linear, "^0100", 12, "0")
			prefix = "]E0"
		default: // EAN-13
			primary, err = e.normalisePrimary(linear, "^010", 13, "")
			prefix = "]E0"
		}
		if err != nil {
			return "", err
		}
		out = append(out, prefix...)
		out = scancat(out, primary)
		if hasCC {
			if !startsWithFNC1(cc) {
				return "", e.failf(ErrScanDataBadPrimary, "Composite component must start with FNC1")
			}
			out = append(out, "|]e0"...) // "|" means start of new message
			out = scancat(out, cc)
		}

	case SymNone:
		return "", nil
	}

	return string(out), nil
}

// ProcessScanData decodes scan data: a three-character symbology identifier
// followed by the transmitted payload. The data string and extracted AI
// list are rebuilt from the payload.
func (e *Engine) ProcessScanData(scanData string) error {
	e.reset()
	e.sym = SymNone

	fail := func(err *Error) error {
		e.clearOnError()
		e.sym = SymNone
		return err
	}

	if len(scanData) < 3 || scanData[0] != ']' {
		return fail(e.failf(ErrScanDataMissingSymID, "Missing symbology identifier"))
	}

	var entry *symIDEntry
	for i := range symIDTable {
		if strings.HasPrefix(scanData, symIDTable[i].identifier) {
			entry = &symIDTable[i]
			break
		}
	}
	if entry == nil {
		return fail(e.failf(ErrScanDataUnsupportedSymID, "Unsupported symbology identifier"))
	}

	scanData = scanData[3:]
	e.sym = entry.defaultSym
	aiMode := entry.aiMode
	var out []byte

	if e.sym == SymEAN13 || e.sym == SymEAN8 {
		primaryLen := 13
		if e.sym == SymEAN8 {
			primaryLen = 8
		}

		if len(scanData) < primaryLen {
			return fail(e.failf(ErrScanDataBadPrimary, "Primary scan data is too short"))
		}

		cc := ""
		hasCC := false
		switch {
		case len(scanData) >= primaryLen+4 && scanData[primaryLen:primaryLen+4] == "|]e0":
			cc, hasCC = scanData[primaryLen+4:], true
		case len(scanData) > primaryLen:
			return fail(e.failf(ErrScanDataBadPrimary, "Primary message is too long"))
		}

		primary := scanData[:primaryLen]
		if !allDigits(primary) {
			return fail(e.failf(ErrScanDataBadPrimary, "Primary message may only contain digits"))
		}
		b := []byte(primary)
		if !validateParity(b) {
			return fail(e.failf(ErrScanDataBadPrimary, "Primary message check digit is incorrect"))
		}

		out = append(out, primary...)
		if !hasCC {
			e.dataStr = string(out)
			e.aiDataBuf = e.dataStr
			return nil
		}

		// Process the CC as AI data following a "|" marker.
		out = append(out, '|')
		e.aiData = append(e.aiData, AIValue{Kind: KindComponentSeparator})
		scanData = cc
		aiMode = true
	}

	if aiMode {
		// A literal "^" would be conflated with FNC1.
		if strings.IndexByte(scanData, '^') >= 0 {
			return fail(e.failf(ErrIllegalSeparatorInValue, "Scan data contains illegal ^ character"))
		}

		base := len(out)
		out = append(out, '^')
		for i := 0; i < len(scanData); i++ {
			if scanData[i] == gsChar { // GS represents FNC1
				out = append(out, '^')
			} else {
				out = append(out, scanData[i])
			}
		}

		e.dataStr = string(out)
		e.aiDataBuf = e.dataStr
		if err := e.processAIData(e.dataStr[base:], base, true); err != nil {
			return fail(err)
		}
		if err := e.validateAIs(); err != nil {
			return fail(err)
		}
		return nil
	}

	// From here, plain data. Disambiguate from GS1 data by escaping a
	// leading "^": "^" -> "\^", "\^" -> "\\^", etc.
	r := 0
	for r < len(scanData) && scanData[r] == '\\' {
		r++
	}
	if r < len(scanData) && scanData[r] == '^' {
		out = append(out, '\\')
	}
	out = append(out, scanData...)
	e.dataStr = string(out)
	e.aiDataBuf = e.dataStr

	// A GS1 Digital Link URI is processed immediately, with the extracted
	// element string kept in a side buffer.
	if strings.HasPrefix(e.dataStr, "https://") || strings.HasPrefix(e.dataStr, "http://") {
		if e.dlParser != nil {
			extracted, err := e.dlParser.ExtractAIsFromURL(e.dataStr)
			if err != nil {
				return fail(e.failf(ErrParseStructure, "%s", err.Error()))
			}
			e.dlAIBuffer = extracted
			e.aiDataBuf = e.dlAIBuffer
			if perr := e.processAIData(e.dlAIBuffer, 0, true); perr != nil {
				return fail(perr)
			}
			if verr := e.validateAIs(); verr != nil {
				return fail(verr)
			}
		}
	}

	return nil
}
