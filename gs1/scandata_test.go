package gs1

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestGenerateScanData(t *testing.T) {
	type genTest struct {
		sym             Symbology
		dataStr, expect string
		ok              bool
	}

	pass := func(sym Symbology, dataStr, expect string) genTest {
		return genTest{sym: sym, dataStr: dataStr, expect: expect, ok: true}
	}

	e := newTestEngine(t)

	for i, tt := range []genTest{
		pass(SymNone, "TESTING", ""),

		/* QR */
		pass(SymQR, "TESTING", "]Q1TESTING"),
		pass(SymQR, "\\^TESTING", "]Q1^TESTING"),     // escaped data "^"
		pass(SymQR, "\\\\^TESTING", "]Q1\\^TESTING"), // escaped data "\^"
		pass(SymQR, "^011231231231233310ABC123^99TESTING",
			"]Q3011231231231233310ABC123\x1D99TESTING"),

		/* Data Matrix */
		pass(SymDM, "TESTING", "]d1TESTING"),
		pass(SymDM, "\\^TESTING", "]d1^TESTING"),
		pass(SymDM, "\\\\^TESTING", "]d1\\^TESTING"),
		pass(SymDM, "^011231231231233310ABC123^99TESTING",
			"]d2011231231231233310ABC123\x1D99TESTING"),
		pass(SymDM, "^011231231231233310ABC123^99TESTING^",
			"]d2011231231231233310ABC123\x1D99TESTING"), // trailing FNC1 stripped

		/* DataBar Expanded */
		pass(SymDataBarExpanded, "^011231231231233310ABC123^99TESTING",
			"]e0011231231231233310ABC123\x1D99TESTING"),
		pass(SymDataBarExpanded, // variable-length AI | composite
			"^011231231231233310ABC123^99TESTING|^98COMPOSITE^97XYZ",
			"]e0011231231231233310ABC123\x1D99TESTING\x1D98COMPOSITE\x1D97XYZ"),
		pass(SymDataBarExpanded, // fixed-length AI | composite
			"^011231231231233310ABC123^11991225|^98COMPOSITE^97XYZ",
			"]e0011231231231233310ABC123\x1D1199122598COMPOSITE\x1D97XYZ"),

		/* GS1-128 */
		pass(SymGS1128CCA, "^011231231231233310ABC123^99TESTING",
			"]C1011231231231233310ABC123\x1D99TESTING"),
		pass(SymGS1128CCA, // composite uses ]e0
			"^011231231231233310ABC123^99TESTING|^98COMPOSITE^97XYZ",
			"]e0011231231231233310ABC123\x1D99TESTING\x1D98COMPOSITE\x1D97XYZ"),

		/* DataBar OmniDirectional */
		pass(SymDataBarOmni, "^0124012345678905|^99COMPOSITE^98XYZ",
			"]e0012401234567890599COMPOSITE\x1D98XYZ"),
		pass(SymDataBarOmni, "24012345678905|^99COMPOSITE^98XYZ",
			"]e0012401234567890599COMPOSITE\x1D98XYZ"),

		/* DataBar Limited */
		pass(SymDataBarLimited, "^0115012345678907|^99COMPOSITE^98XYZ",
			"]e0011501234567890799COMPOSITE\x1D98XYZ"),
		pass(SymDataBarLimited, "15012345678907|^99COMPOSITE^98XYZ",
			"]e0011501234567890799COMPOSITE\x1D98XYZ"),

		/* UPC-A */
		pass(SymUPCA, "^0100416000336108|^99COMPOSITE^98XYZ",
			"]E00416000336108|]e099COMPOSITE\x1D98XYZ"),
		pass(SymUPCA, "416000336108|^99COMPOSITE^98XYZ",
			"]E00416000336108|]e099COMPOSITE\x1D98XYZ"),

		/* UPC-E */
		pass(SymUPCE, "^0100001234000057|^99COMPOSITE^98XYZ",
			"]E00001234000057|]e099COMPOSITE\x1D98XYZ"),
		pass(SymUPCE, "001234000057|^99COMPOSITE^98XYZ",
			"]E00001234000057|]e099COMPOSITE\x1D98XYZ"),

		/* EAN-13 */
		pass(SymEAN13, "^0102112345678900|^99COMPOSITE^98XYZ",
			"]E02112345678900|]e099COMPOSITE\x1D98XYZ"),
		pass(SymEAN13, "2112345678900|^99COMPOSITE^98XYZ",
			"]E02112345678900|]e099COMPOSITE\x1D98XYZ"),

		/* EAN-8 */
		pass(SymEAN8, "^0100000002345673|^99COMPOSITE^98XYZ",
			"]E402345673|]e099COMPOSITE\x1D98XYZ"),
		pass(SymEAN8, "02345673|^99COMPOSITE^98XYZ",
			"]E402345673|]e099COMPOSITE\x1D98XYZ"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.dataStr), func(t *testing.T) {
			w := expect.WrapT(t)

			w.StopOnMismatch().ShouldSucceed(e.SetSymbology(tt.sym))
			w.As(tt.dataStr).StopOnMismatch().ShouldSucceed(e.SetDataStr(tt.dataStr))
			out, err := e.GenerateScanData()
			if !tt.ok {
				w.As(tt.dataStr).ShouldFail(err)
				return
			}
			w.As(tt.dataStr).ShouldSucceed(err)
			w.As(tt.dataStr).ShouldBeEqual(out, tt.expect)
		})
	}
}

func TestGenerateScanData_addCheckDigit(t *testing.T) {
	w := expect.WrapT(t)
	e := newTestEngine(t)
	e.SetAddCheckDigit(true)

	w.ShouldSucceed(e.SetSymbology(SymEAN13))
	w.ShouldSucceed(e.SetDataStr("211234567890"))
	out, err := e.GenerateScanData()
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(out, "]E02112345678900")

	w.ShouldSucceed(e.SetSymbology(SymEAN8))
	w.ShouldSucceed(e.SetDataStr("0234567"))
	out, err = e.GenerateScanData()
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(out, "]E402345673")

	// Without the option, short primary data is rejected.
	e.SetAddCheckDigit(false)
	w.ShouldSucceed(e.SetDataStr("0234567"))
	_, err = e.GenerateScanData()
	w.ShouldFail(err)
}

func TestGenerateScanData_failures(t *testing.T) {
	w := expect.WrapT(t)
	e := newTestEngine(t)

	// GS1-128 requires FNC1-in-first.
	w.ShouldSucceed(e.SetSymbology(SymGS1128CCA))
	w.ShouldSucceed(e.SetDataStr("TESTING"))
	_, err := e.GenerateScanData()
	w.ShouldFail(err)

	// EAN-13 primary with an incorrect check digit.
	w.ShouldSucceed(e.SetSymbology(SymEAN13))
	w.ShouldSucceed(e.SetDataStr("2112345678901"))
	_, err = e.GenerateScanData()
	w.ShouldFail(err)

	// DataBar Limited value bound.
	w.ShouldSucceed(e.SetSymbology(SymDataBarLimited))
	w.ShouldSucceed(e.SetDataStr("20012345678909"))
	_, err = e.GenerateScanData()
	w.ShouldFail(err)
}

func TestProcessScanData(t *testing.T) {
	type scanTest struct {
		scanData, expect string
		sym              Symbology
		ok               bool
	}

	pass := func(scanData string, sym Symbology, expect string) scanTest {
		return scanTest{scanData: scanData, sym: sym, expect: expect, ok: true}
	}
	fail := func(scanData string) scanTest {
		return scanTest{scanData: scanData, sym: SymNone}
	}

	e := newTestEngine(t)

	for i, tt := range []scanTest{
		fail(""),    // no data
		fail("ABC"), // no symbology identifier
		fail("]"),   // short
		fail("]X"),  // short
		fail("]XX"), // unknown symbology identifier

		fail("]e0"), // empty GS1 data

		/* QR */
		pass("]Q1", SymQR, ""),
		pass("]Q1TESTING", SymQR, "TESTING"),
		pass("]Q1^TESTING", SymQR, "\\^TESTING"),
		pass("]Q1\\^TESTING", SymQR, "\\\\^TESTING"),
		fail("]Q3"), // empty GS1 data
		pass("]Q3011231231231233310ABC123\x1D99TESTING",
			SymQR, "^011231231231233310ABC123^99TESTING"),

		/* Data Matrix */
		pass("]d1", SymDM, ""),
		pass("]d1TESTING", SymDM, "TESTING"),
		pass("]d1^TESTING", SymDM, "\\^TESTING"),
		pass("]d1\\^TESTING", SymDM, "\\\\^TESTING"),
		fail("]d2"), // empty GS1 data
		pass("]d2011231231231233310ABC123\x1D99TESTING",
			SymDM, "^011231231231233310ABC123^99TESTING"),

		/* DataBar Expanded, shared with the DataBar family and GS1-128 CC */
		pass("]e0011231231231233310ABC123\x1D99TESTING",
			SymDataBarExpanded, "^011231231231233310ABC123^99TESTING"),
		pass("]e0011231231231233310ABC123\x1D99TESTING\x1D98XYZ",
			SymDataBarExpanded, "^011231231231233310ABC123^99TESTING^98XYZ"),
		pass("]e0011231231231233310ABC123\x1D1199122598TESTING\x1D97XYZ",
			SymDataBarExpanded, "^011231231231233310ABC123^1199122598TESTING^97XYZ"),

		/* GS1-128 linear-only; composite transmits as ]e0 */
		fail("]C1"), // empty GS1 data
		pass("]C1011231231231233310ABC123\x1D99TESTING",
			SymGS1128CCA, "^011231231231233310ABC123^99TESTING"),

		/* EAN/UPC, except EAN-8 */
		fail("]E0"),
		fail("]E0123456789012"),   // short
		fail("]E012345678901234"), // long
		fail("]E01234ABC890123"),  // non-numeric
		fail("]E02112345678901"),  // bad check digit
		pass("]E02112345678900", SymEAN13, "2112345678900"),
		pass("]E02112345678900|]e099COMPOSITE\x1D98XYZ",
			SymEAN13, "2112345678900|^99COMPOSITE^98XYZ"),

		/* EAN-8 */
		fail("]E4"),
		fail("]E41234567"),   // short
		fail("]E4123456789"), // long
		fail("]E412ABC678"),  // non-numeric
		fail("]E402345674"),  // bad check digit
		pass("]E402345673", SymEAN8, "02345673"),
		pass("]E402345673|]e099COMPOSITE\x1D98XYZ",
			SymEAN8, "02345673|^99COMPOSITE^98XYZ"),

		/* Literal "^" cannot appear in AI scan data */
		fail("]Q301123123123123^10ABC"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.scanData), func(t *testing.T) {
			w := expect.WrapT(t)

			err := e.ProcessScanData(tt.scanData)
			if tt.ok {
				w.As(fmt.Sprintf("%s: %s", tt.scanData, e.errMsg)).ShouldSucceed(err)
			} else {
				w.As(tt.scanData).ShouldFail(err)
			}
			w.As(tt.scanData).ShouldBeEqual(e.Symbology(), tt.sym)
			w.As(tt.scanData).ShouldBeEqual(e.DataStr(), tt.expect)
		})
	}
}

func TestProcessScanData_extraction(t *testing.T) {
	w := expect.WrapT(t)
	e := newTestEngine(t)

	err := e.ProcessScanData("]e0011231231231233310ABC123\x1D99TESTING")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(e.NumAIs(), 3)
	w.ShouldBeEqual(e.AI(0), "01")
	w.ShouldBeEqual(e.Value(0), "12312312312333")
	w.ShouldBeEqual(e.AI(1), "10")
	w.ShouldBeEqual(e.Value(1), "ABC123")
	w.ShouldBeEqual(e.AI(2), "99")
	w.ShouldBeEqual(e.Value(2), "TESTING")

	// EAN-13 with a composite extracts only the composite AIs.
	err = e.ProcessScanData("]E02112345678900|]e099COMPOSITE\x1D98XYZ")
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeEqual(e.NumAIs(), 3) // separator, 99, 98
	w.ShouldBeEqual(e.AIData()[0].Kind, KindComponentSeparator)
	w.ShouldBeEqual(e.AI(1), "99")
	w.ShouldBeEqual(e.Value(2), "XYZ")
}

// stubDLParser is a stand-in for the external Digital Link URI collaborator.
type stubDLParser struct {
	extracted string
}

func (p stubDLParser) ExtractAIsFromURL(string) (string, error) {
	return p.extracted, nil
}

func TestProcessScanData_digitalLink(t *testing.T) {
	w := expect.WrapT(t)
	e := newTestEngine(t)

	// Without a parser installed the URI is kept as plain data.
	uri := "]Q1https://example.com/01/12312312312333?99=TEST"
	w.StopOnMismatch().ShouldSucceed(e.ProcessScanData(uri))
	w.ShouldBeEqual(e.DataStr(), "https://example.com/01/12312312312333?99=TEST")
	w.ShouldBeEqual(e.NumAIs(), 0)

	// With a parser, the extracted element string is processed.
	e.SetDigitalLinkParser(stubDLParser{extracted: "^011231231231233399TEST"})
	w.StopOnMismatch().ShouldSucceed(e.ProcessScanData(uri))
	w.ShouldBeEqual(e.DataStr(), "https://example.com/01/12312312312333?99=TEST")
	w.ShouldBeEqual(e.NumAIs(), 2)
	w.ShouldBeEqual(e.AI(0), "01")
	w.ShouldBeEqual(e.AI(1), "99")
	w.ShouldBeEqual(e.Value(1), "TEST")
}

func TestValidateParity(t *testing.T) {
	type parityTest struct {
		value   string
		ok      bool
		recalc  byte
	}

	for i, tt := range []parityTest{
		{"24012345678905", true, '5'},
		{"24012345678909", false, '5'},
		{"2112233789657", true, '7'},
		{"2112233789658", false, '7'},
		{"416000336108", true, '8'},
		{"416000336107", false, '8'},
		{"02345680", true, '0'},
		{"02345689", false, '0'},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.value), func(t *testing.T) {
			w := expect.WrapT(t)

			b := []byte(tt.value)
			w.ShouldBeEqual(validateParity(b), tt.ok)
			w.ShouldBeEqual(b[len(b)-1], tt.recalc) // recomputed on mismatch
		})
	}
}
