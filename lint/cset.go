package lint

// Character set membership tables, indexed by ASCII code point.

var (
	// CSET 82: the invariant character set for AI values.
	cset82 = [127]uint8{
		'!': 1, '"': 1, '%': 1, '&': 1, '\'': 1, '(': 1, ')': 1,
		'*': 1, '+': 1, ',': 1, '-': 1, '.': 1, '/': 1,
		':': 1, ';': 1, '<': 1, '=': 1, '>': 1, '?': 1, '_': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
		'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1,
		'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1,
		's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
	}

	// CSET 39: the character set for AIs used with Components and Parts.
	cset39 = [127]uint8{
		'#': 1, '-': 1, '/': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
	}

	// CSET 64: file-safe URI-safe base 64.
	cset64 = [127]uint8{
		'-': 1, '_': 1,
		'0': 1, '1': 1, '2': 1, '3': 1, '4': 1, '5': 1, '6': 1, '7': 1, '8': 1, '9': 1,
		'A': 1, 'B': 1, 'C': 1, 'D': 1, 'E': 1, 'F': 1, 'G': 1, 'H': 1, 'I': 1,
		'J': 1, 'K': 1, 'L': 1, 'M': 1, 'N': 1, 'O': 1, 'P': 1, 'Q': 1, 'R': 1,
		'S': 1, 'T': 1, 'U': 1, 'V': 1, 'W': 1, 'X': 1, 'Y': 1, 'Z': 1,
		'a': 1, 'b': 1, 'c': 1, 'd': 1, 'e': 1, 'f': 1, 'g': 1, 'h': 1, 'i': 1,
		'j': 1, 'k': 1, 'l': 1, 'm': 1, 'n': 1, 'o': 1, 'p': 1, 'q': 1, 'r': 1,
		's': 1, 't': 1, 'u': 1, 'v': 1, 'w': 1, 'x': 1, 'y': 1, 'z': 1,
	}
)

// cset32 is the alphabet used for alphanumeric check character pairs. It
// excludes characters that are easily misread (0, 1, I, O).
const cset32 = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

func cset32Value(c byte) int {
	for i := 0; i < len(cset32); i++ {
		if cset32[i] == c {
			return i
		}
	}
	return -1
}

// cset82Value returns the position of c in CSET 82, or -1 when c is not a
// member. The ordering matches the character value assignments used by the
// alphanumeric check character pair algorithm.
const cset82Seq = "!\"%&'()*+,-./0123456789:;<=>?ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

func cset82Value(c byte) int {
	for i := 0; i < len(cset82Seq); i++ {
		if cset82Seq[i] == c {
			return i
		}
	}
	return -1
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func lintCSetNumeric(val string) *Err {
	for i := 0; i < len(val); i++ {
		if val[i] < '0' || val[i] > '9' {
			return &Err{Kind: NonDigitCharacter, Pos: i, Len: 1}
		}
	}
	return nil
}

func lintCSet82(val string) *Err {
	for i := 0; i < len(val); i++ {
		if val[i] > 127 || cset82[val[i]&0x7F] == 0 {
			return &Err{Kind: InvalidCSet82Character, Pos: i, Len: 1}
		}
	}
	return nil
}

func lintCSet39(val string) *Err {
	for i := 0; i < len(val); i++ {
		if val[i] > 127 || cset39[val[i]&0x7F] == 0 {
			return &Err{Kind: InvalidCSet39Character, Pos: i, Len: 1}
		}
	}
	return nil
}

// lintCSet64 accepts file-safe URI-safe base 64 data. The data is carried
// unpadded, so a trailing "=" is reported as a padding defect and an
// embedded "=" as an invalid character.
func lintCSet64(val string) *Err {
	for i := 0; i < len(val); i++ {
		if val[i] == '=' {
			if i == len(val)-1 {
				return &Err{Kind: InvalidCSet64Padding, Pos: i, Len: 1}
			}
			return &Err{Kind: InvalidCSet64Character, Pos: i, Len: 1}
		}
		if val[i] > 127 || cset64[val[i]&0x7F] == 0 {
			return &Err{Kind: InvalidCSet64Character, Pos: i, Len: 1}
		}
	}
	return nil
}

func init() {
	register("csetnumeric", lintCSetNumeric)
	register("cset82", lintCSet82)
	register("cset39", lintCSet39)
	register("cset64", lintCSet64)
}
