package lint

import "strings"

// lintCSum validates a numeric component whose final digit is a GS1 mod-10
// check digit.
func lintCSum(val string) *Err {
	if len(val) < 2 {
		return &Err{Kind: TooShortForCheckDigit, Pos: 0, Len: len(val)}
	}
	if !allDigits(val) {
		for i := 0; i < len(val); i++ {
			if val[i] < '0' || val[i] > '9' {
				return &Err{Kind: NonDigitCharacter, Pos: i, Len: 1}
			}
		}
	}
	if checkDigit(val[:len(val)-1]) != val[len(val)-1] {
		return &Err{Kind: IncorrectCheckDigit, Pos: len(val) - 1, Len: 1}
	}
	return nil
}

// checkDigit returns the GS1 mod-10 check digit for base, as an ASCII digit.
// Weights of 3 and 1 alternate leftwards from the rightmost digit.
func checkDigit(base string) byte {
	weight := 3
	sum := 0
	for i := len(base) - 1; i >= 0; i-- {
		sum += weight * int(base[i]-'0')
		weight = 4 - weight
	}
	return byte((10-sum%10)%10) + '0'
}

// csumAlphaPrimes are the weights applied to the data characters, rightmost
// first, when computing an alphanumeric check character pair.
var csumAlphaPrimes = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37,
	41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83,
}

// lintCSumAlpha validates a component terminated by an alphanumeric check
// character pair drawn from CSET 32.
func lintCSumAlpha(val string) *Err {
	if len(val) < 2 {
		return &Err{Kind: TooShortForCheckPair, Pos: 0, Len: len(val)}
	}
	data := val[:len(val)-2]
	if len(data) > len(csumAlphaPrimes) {
		data = data[len(data)-len(csumAlphaPrimes):]
	}
	c1 := cset32Value(val[len(val)-2])
	c2 := cset32Value(val[len(val)-1])
	if c1 < 0 {
		return &Err{Kind: InvalidCSet32Character, Pos: len(val) - 2, Len: 1}
	}
	if c2 < 0 {
		return &Err{Kind: InvalidCSet32Character, Pos: len(val) - 1, Len: 1}
	}
	sum := 0
	for i := 0; i < len(data); i++ {
		v := cset82Value(data[len(data)-1-i])
		if v < 0 {
			return &Err{Kind: InvalidCSet82Character, Pos: len(data) - 1 - i, Len: 1}
		}
		sum += v * csumAlphaPrimes[i]
	}
	sum %= 1021
	if cset32[sum>>5] != val[len(val)-2] || cset32[sum&31] != val[len(val)-1] {
		return &Err{Kind: IncorrectCheckPair, Pos: len(val) - 2, Len: 2}
	}
	return nil
}

// lintKey validates that a component is long enough to hold a GS1 key and
// starts with a plausible GS1 Company Prefix.
func lintKey(val string) *Err {
	if len(val) < 4 {
		return &Err{Kind: TooShortForKey, Pos: 0, Len: len(val)}
	}
	for i := 0; i < 4; i++ {
		if val[i] < '0' || val[i] > '9' {
			return &Err{Kind: InvalidGCPPrefix, Pos: i, Len: 1}
		}
	}
	return nil
}

func daysInMonth(yy, mm int) int {
	switch mm {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if yy%4 == 0 {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// lintDate validates a YYMMDD component. When zeroDay is true a day of "00"
// is permitted, denoting the last day of the month.
func lintDate(val string, zeroDay bool) *Err {
	if len(val) < 6 {
		return &Err{Kind: DateTooShort, Pos: 0, Len: len(val)}
	}
	if len(val) > 6 {
		return &Err{Kind: DateTooLong, Pos: 0, Len: len(val)}
	}
	yy := int(val[0]-'0')*10 + int(val[1]-'0')
	mm := int(val[2]-'0')*10 + int(val[3]-'0')
	dd := int(val[4]-'0')*10 + int(val[5]-'0')
	if mm < 1 || mm > 12 {
		return &Err{Kind: IllegalMonth, Pos: 2, Len: 2}
	}
	if dd == 0 {
		if zeroDay {
			return nil
		}
		return &Err{Kind: IllegalDay, Pos: 4, Len: 2}
	}
	if dd > daysInMonth(yy, mm) {
		return &Err{Kind: IllegalDay, Pos: 4, Len: 2}
	}
	return nil
}

func lintYYMMD0(val string) *Err { return lintDate(val, true) }
func lintYYMMDD(val string) *Err { return lintDate(val, false) }

// lintYYMMDDHH validates a date with an hour, YYMMDDHH.
func lintYYMMDDHH(val string) *Err {
	if len(val) < 8 {
		return &Err{Kind: DateTooShort, Pos: 0, Len: len(val)}
	}
	if len(val) > 8 {
		return &Err{Kind: DateTooLong, Pos: 0, Len: len(val)}
	}
	if err := lintDate(val[:6], false); err != nil {
		return err
	}
	hh := int(val[6]-'0')*10 + int(val[7]-'0')
	if hh > 23 {
		return &Err{Kind: IllegalHour, Pos: 6, Len: 2}
	}
	return nil
}

func lintHHMM(val string) *Err {
	if len(val) != 4 {
		return &Err{Kind: MMSSInvalidLength, Pos: 0, Len: len(val)}
	}
	hh := int(val[0]-'0')*10 + int(val[1]-'0')
	mm := int(val[2]-'0')*10 + int(val[3]-'0')
	if hh > 23 {
		return &Err{Kind: IllegalHour, Pos: 0, Len: 2}
	}
	if mm > 59 {
		return &Err{Kind: IllegalMinute, Pos: 2, Len: 2}
	}
	return nil
}

func lintMI(val string) *Err {
	if len(val) != 2 {
		return &Err{Kind: MMSSInvalidLength, Pos: 0, Len: len(val)}
	}
	if int(val[0]-'0')*10+int(val[1]-'0') > 59 {
		return &Err{Kind: IllegalMinute, Pos: 0, Len: 2}
	}
	return nil
}

// lintMMOptSS validates an optional minutes-and-seconds component: either MM
// or MMSS.
func lintMMOptSS(val string) *Err {
	if len(val) != 2 && len(val) != 4 {
		return &Err{Kind: MMSSInvalidLength, Pos: 0, Len: len(val)}
	}
	if int(val[0]-'0')*10+int(val[1]-'0') > 59 {
		return &Err{Kind: IllegalMinute, Pos: 0, Len: 2}
	}
	if len(val) == 4 && int(val[2]-'0')*10+int(val[3]-'0') > 59 {
		return &Err{Kind: IllegalSecond, Pos: 2, Len: 2}
	}
	return nil
}

func lintNonZero(val string) *Err {
	for i := 0; i < len(val); i++ {
		if val[i] != '0' {
			return nil
		}
	}
	return &Err{Kind: IllegalZeroValue, Pos: 0, Len: len(val)}
}

func lintZero(val string) *Err {
	for i := 0; i < len(val); i++ {
		if val[i] != '0' {
			return &Err{Kind: NotZero, Pos: i, Len: 1}
		}
	}
	return nil
}

func lintNoZeroPrefix(val string) *Err {
	if len(val) > 1 && val[0] == '0' {
		return &Err{Kind: IllegalZeroPrefix, Pos: 0, Len: 1}
	}
	return nil
}

func lintYesNo(val string) *Err {
	if val != "0" && val != "1" {
		return &Err{Kind: NotZeroOrOne, Pos: 0, Len: len(val)}
	}
	return nil
}

func lintWinding(val string) *Err {
	if val != "0" && val != "1" && val != "9" {
		return &Err{Kind: InvalidWindingDirection, Pos: 0, Len: len(val)}
	}
	return nil
}

// lintPieceOfTotal validates a component holding a piece number followed by
// a piece total, each occupying half the component.
func lintPieceOfTotal(val string) *Err {
	half := len(val) / 2
	piece, total := val[:half], val[half:]
	if lintNonZero(piece) != nil {
		return &Err{Kind: ZeroPieceNumber, Pos: 0, Len: half}
	}
	if lintNonZero(total) != nil {
		return &Err{Kind: ZeroTotalPieces, Pos: half, Len: len(val) - half}
	}
	if piece > total {
		return &Err{Kind: PieceNumberExceedsTotal, Pos: 0, Len: len(val)}
	}
	return nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

// lintPCEnc validates that every "%" introduces a two-hex-digit escape.
func lintPCEnc(val string) *Err {
	for i := 0; i < len(val); i++ {
		if val[i] != '%' {
			continue
		}
		if i+2 >= len(val) || !isHexDigit(val[i+1]) || !isHexDigit(val[i+2]) {
			return &Err{Kind: InvalidPercentSequence, Pos: i, Len: min(3, len(val)-i)}
		}
		i += 2
	}
	return nil
}

// lintLatLong validates a 20-digit geocoordinate: ten digits of latitude in
// units of 0.0000001 degree offset from -90 degrees, then ten of longitude
// offset from -180 degrees.
func lintLatLong(val string) *Err {
	if len(val) != 20 {
		return &Err{Kind: InvalidLatitude, Pos: 0, Len: len(val)}
	}
	lat, lng := val[:10], val[10:]
	if lat > "1800000000" {
		return &Err{Kind: InvalidLatitude, Pos: 0, Len: 10}
	}
	if lng > "3600000000" {
		return &Err{Kind: InvalidLongitude, Pos: 10, Len: 10}
	}
	return nil
}

func lintHyphen(val string) *Err {
	for i := 0; i < len(val); i++ {
		if val[i] != '-' {
			return &Err{Kind: NotHyphen, Pos: i, Len: 1}
		}
	}
	return nil
}

func lintImporterIdx(val string) *Err {
	if len(val) != 1 {
		return &Err{Kind: ImporterIdxMustBeOneCharacter, Pos: 0, Len: len(val)}
	}
	c := val[0]
	if c > 127 || cset64[c&0x7F] == 0 {
		return &Err{Kind: InvalidImportIdxCharacter, Pos: 0, Len: 1}
	}
	return nil
}

// lintIBAN structurally validates an IBAN: country code, mod-97 checksum and
// the permitted character set.
func lintIBAN(val string) *Err {
	if len(val) < 10 {
		return &Err{Kind: IbanTooShort, Pos: 0, Len: len(val)}
	}
	for i := 0; i < len(val); i++ {
		c := val[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return &Err{Kind: InvalidIbanCharacter, Pos: i, Len: 1}
		}
	}
	if !isISO3166Alpha2(val[:2]) {
		return &Err{Kind: IllegalIbanCountryCode, Pos: 0, Len: 2}
	}
	// Rearranged mod-97 over A=10..Z=35, processed incrementally.
	rearranged := val[4:] + val[:4]
	rem := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		if c >= 'A' && c <= 'Z' {
			v := int(c-'A') + 10
			rem = (rem*100 + v) % 97
		} else {
			rem = (rem*10 + int(c-'0')) % 97
		}
	}
	if rem != 1 {
		return &Err{Kind: IncorrectIbanChecksum, Pos: 2, Len: 2}
	}
	return nil
}

func lintISO3166(val string) *Err {
	if !isISO3166Numeric(val) {
		return &Err{Kind: NotISO3166, Pos: 0, Len: len(val)}
	}
	return nil
}

func lintISO3166Or999(val string) *Err {
	if val != "999" && !isISO3166Numeric(val) {
		return &Err{Kind: NotISO3166Or999, Pos: 0, Len: len(val)}
	}
	return nil
}

// lintISO3166List validates a concatenated list of numeric country codes.
func lintISO3166List(val string) *Err {
	if len(val)%3 != 0 {
		return &Err{Kind: NotISO3166, Pos: 0, Len: len(val)}
	}
	for i := 0; i < len(val); i += 3 {
		if !isISO3166Numeric(val[i : i+3]) {
			return &Err{Kind: NotISO3166, Pos: i, Len: 3}
		}
	}
	return nil
}

func lintISO3166Alpha2(val string) *Err {
	if !isISO3166Alpha2(strings.ToUpper(val)) || strings.ToUpper(val) != val {
		return &Err{Kind: NotISO3166Alpha2, Pos: 0, Len: len(val)}
	}
	return nil
}

func lintISO4217(val string) *Err {
	if !isISO4217Numeric(val) {
		return &Err{Kind: NotISO4217, Pos: 0, Len: len(val)}
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func init() {
	register("csum", lintCSum)
	register("csumalpha", lintCSumAlpha)
	register("key", lintKey)
	register("yymmd0", lintYYMMD0)
	register("yymmdd", lintYYMMDD)
	register("yymmddhh", lintYYMMDDHH)
	register("hhmm", lintHHMM)
	register("mi", lintMI)
	register("mmoptss", lintMMOptSS)
	register("nonzero", lintNonZero)
	register("zero", lintZero)
	register("nozeroprefix", lintNoZeroPrefix)
	register("yesno", lintYesNo)
	register("winding", lintWinding)
	register("pieceoftotal", lintPieceOfTotal)
	register("pcenc", lintPCEnc)
	register("latlong", lintLatLong)
	register("hyphen", lintHyphen)
	register("importeridx", lintImporterIdx)
	register("iban", lintIBAN)
	register("iso3166", lintISO3166)
	register("iso3166999", lintISO3166Or999)
	register("iso3166list", lintISO3166List)
	register("iso3166alpha2", lintISO3166Alpha2)
	register("iso4217", lintISO4217)
}
