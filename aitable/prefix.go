package aitable

// Variable marks a prefix as having no pre-defined fixed value length.
const Variable = 0

// fixedValueLengths maps each two-digit AI prefix to the fixed value length
// that AIs with that prefix carry, or Variable. It is a constant policy used
// when vivifying AIs that are not in the table, so it is deliberately not
// derived from the table itself.
var fixedValueLengths = [100]uint8{
	18, 14, 14, 14, 16, /* (00) - (04) */
	Variable, Variable, Variable, Variable, Variable, Variable,
	6, 6, 6, 6, 6, 6, 6, 6, 6, 2, /* (11) - (20) */
	Variable, Variable,
	Variable, /* (23) no longer defined as fixed length */
	Variable, Variable, Variable, Variable, Variable, Variable, Variable,
	6, 6, 6, 6, 6, 6, /* (31) - (36) */
	Variable, Variable, Variable, Variable,
	13, /* (41) */
}

// FixedValueLength returns the fixed value length pre-defined for the
// two-digit prefix of ai, or Variable. The first two bytes of ai must be
// digits.
func FixedValueLength(ai string) uint8 {
	return fixedValueLengths[(ai[0]-'0')*10+(ai[1]-'0')]
}

func prefixIndex(ai string) int {
	return int(ai[0]-'0')*10 + int(ai[1]-'0')
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
