package aitable

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

func TestLookup(t *testing.T) {
	w := expect.WrapT(t)
	tbl := Embedded()

	lookup := func(data string, ailen int) *Entry {
		return tbl.Lookup(data, ailen, false)
	}
	lookupUnknown := func(data string, ailen int) *Entry {
		return tbl.Lookup(data, ailen, true)
	}

	w.ShouldBeEqual(lookup("01", 2).AI, "01")     // exact lookup
	w.ShouldBeEqual(lookup("011234", 2).AI, "01") // exact lookup, data following
	w.ShouldBeEqual(lookup("011234", 0).AI, "01") // prefix lookup, data following
	w.ShouldBeEqual(lookup("8012", 0).AI, "8012") // prefix lookup

	w.ShouldBeTrue(lookup("2345XX", 4) == nil) // no such AI (2345)
	w.ShouldBeTrue(lookup("234XXX", 3) == nil) // no such AI (234)
	w.ShouldBeTrue(lookup("23XXXX", 2) == nil) // no such AI (23)
	w.ShouldBeTrue(lookup("2XXXXX", 1) == nil) // no such AI (2)
	w.ShouldBeTrue(lookup("XXXXXX", 0) == nil) // no matching prefix
	w.ShouldBeTrue(lookup("234567", 0) == nil) // no matching prefix

	w.ShouldBeEqual(lookup("235XXX", 0).AI, "235") // matching prefix
	w.ShouldBeTrue(lookup("235XXX", 2) == nil)     // no such AI (23), even though data starts 235
	w.ShouldBeTrue(lookup("235XXX", 1) == nil)     // no such AI (2), even though data starts 235

	w.ShouldBeEqual(lookup("37123", 2).AI, "37") // exact lookup
	w.ShouldBeTrue(lookup("37123", 3) == nil)    // no such AI (371), even though there is AI (37)
	w.ShouldBeTrue(lookup("37123", 1) == nil)    // no such AI (3), even though there is AI (37)

	w.ShouldBeTrue(lookupUnknown("89", 2) == Unknown) // vivified, requiring FNC1
	w.ShouldBeTrue(lookupUnknown("011", 3) == nil)    // can't vivify: known (01) is a prefix match

	w.ShouldBeTrue(lookupUnknown("800", 3) == nil) // don't vivify a prefix of existing (8001)
	w.ShouldBeTrue(lookupUnknown("80", 2) == nil)  // nor (80) for the same reason

	w.ShouldBeTrue(lookupUnknown("399", 3) == nil)      // AI prefix "39" has length 4
	w.ShouldBeTrue(lookupUnknown("3999", 4) == Unknown4) // so (3999) is okay

	w.ShouldBeTrue(lookupUnknown("2367", 4) == nil)     // AI prefix "23" has length 3
	w.ShouldBeTrue(lookupUnknown("236", 3) == Unknown3) // so (236) is okay, requiring FNC1

	w.ShouldBeTrue(lookupUnknown("4199", 4) == nil)           // AI prefix "41" has length 3
	w.ShouldBeTrue(lookupUnknown("419", 3) == Unknown3Fixed13) // so (419) is okay, not requiring FNC1
}

func TestAILengthByPrefix(t *testing.T) {
	w := expect.WrapT(t)
	tbl := Embedded()

	for prefix, length := range map[string]uint8{
		"00": 2, "01": 2, "02": 2, "10": 2, "11": 2, "12": 2, "13": 2,
		"15": 2, "16": 2, "17": 2, "20": 2, "21": 2, "22": 2,
		"23": 3, "24": 3, "25": 3,
		"30": 2, "31": 4, "32": 4, "33": 4, "34": 4, "35": 4, "36": 4,
		"37": 2, "39": 4,
		"40": 3, "41": 3, "42": 3, "43": 4,
		"70": 4, "71": 3, "72": 4,
		"80": 4, "81": 4, "82": 4,
		"90": 2, "91": 2, "92": 2, "93": 2, "94": 2, "95": 2, "96": 2,
		"97": 2, "98": 2, "99": 2,
	} {
		w.As(prefix).ShouldBeEqual(tbl.AILengthByPrefix(prefix), length)
	}

	w.ShouldBeEqual(tbl.AILengthByPrefix("89"), uint8(0)) // no such prefix
}

// Every AI's length must match the length-by-prefix table derived from the
// whole table.
func TestTableVsPrefixLength(t *testing.T) {
	tbl := Embedded()
	for _, entry := range tbl.Entries() {
		entry := entry
		t.Run(entry.AI, func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(uint8(len(entry.AI)), tbl.AILengthByPrefix(entry.AI))
		})
	}
}

// Every AI must require FNC1 exactly when the fixed-value-length policy
// marks its prefix as variable-length.
func TestTableVsFNC1Required(t *testing.T) {
	tbl := Embedded()
	for _, entry := range tbl.Entries() {
		entry := entry
		t.Run(entry.AI, func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(entry.FNC1, FixedValueLength(entry.AI) == Variable)
		})
	}
}

func TestFixedValueLength(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(FixedValueLength("00"), uint8(18))
	w.ShouldBeEqual(FixedValueLength("01"), uint8(14))
	w.ShouldBeEqual(FixedValueLength("04"), uint8(16))
	w.ShouldBeEqual(FixedValueLength("11"), uint8(6))
	w.ShouldBeEqual(FixedValueLength("20"), uint8(2))
	w.ShouldBeEqual(FixedValueLength("23"), uint8(Variable))
	w.ShouldBeEqual(FixedValueLength("31"), uint8(6))
	w.ShouldBeEqual(FixedValueLength("41"), uint8(13))
	w.ShouldBeEqual(FixedValueLength("42"), uint8(Variable))
	w.ShouldBeEqual(FixedValueLength("99"), uint8(Variable))
}

func TestNew_broken(t *testing.T) {
	type newTest struct {
		name    string
		entries []Entry
	}

	for i, tt := range []newTest{
		{"empty", nil},
		{"unsorted", []Entry{
			{AI: "01", Components: []Component{mandN(14, 14)}},
			{AI: "00", Components: []Component{mandN(18, 18)}},
		}},
		{"duplicate", []Entry{
			{AI: "90", FNC1: true, Components: []Component{mandX(1, 30)}},
			{AI: "90", FNC1: true, Components: []Component{mandX(1, 30)}},
		}},
		{"mixed prefix lengths", []Entry{
			{AI: "90", FNC1: true, Components: []Component{mandX(1, 30)}},
			{AI: "901", FNC1: true, Components: []Component{mandX(1, 30)}},
		}},
		{"non-digit AI", []Entry{
			{AI: "9A", FNC1: true, Components: []Component{mandX(1, 30)}},
		}},
		{"AI too long", []Entry{
			{AI: "12345", FNC1: true, Components: []Component{mandX(1, 30)}},
		}},
		{"no components", []Entry{
			{AI: "90", FNC1: true},
		}},
		{"fnc1 disagrees with prefix list", []Entry{
			{AI: "90", FNC1: false, Components: []Component{mandX(2, 2)}},
		}},
		{"fixed length disagrees with prefix list", []Entry{
			{AI: "11", FNC1: false, Components: []Component{mandN(4, 4)}},
		}},
		{"unknown linter", []Entry{
			{AI: "90", FNC1: true, Components: []Component{mandX(1, 30, "nosuchlinter")}},
		}},
		{"bad component lengths", []Entry{
			{AI: "90", FNC1: true, Components: []Component{mandX(8, 2)}},
		}},
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			_, err := New(tt.entries)
			w.ShouldFail(err)
		})
	}
}

func TestNew_embeddedEntries(t *testing.T) {
	w := expect.WrapT(t)
	tbl, err := New(embeddedEntries())
	w.StopOnMismatch().ShouldSucceed(err)
	w.ShouldBeTrue(len(tbl.Entries()) > 400)
}

func TestEntryLengths(t *testing.T) {
	w := expect.WrapT(t)

	e := Entry{Components: []Component{
		mandN(8, 8, "yymmddhh"),
		optN(2, 4, "mmoptss"),
	}}
	w.ShouldBeEqual(e.MinLength(), 8)
	w.ShouldBeEqual(e.MaxLength(), 12)

	e = Entry{Components: []Component{mandX(1, 20)}}
	w.ShouldBeEqual(e.MinLength(), 1)
	w.ShouldBeEqual(e.MaxLength(), 20)
}
