package aitable

// Pseudo table entries returned when an AI that is not present in the table
// is "vivified". Lookup selects one by the AI length implied by the prefix
// and the pre-defined fixed value length, so that callers learn how much
// data the unknown AI consumes.
var (
	Unknown         = unknownEntry("", true, 1, 90)
	Unknown2        = unknownEntry("XX", true, 1, 90)
	Unknown3        = unknownEntry("XXX", true, 1, 90)
	Unknown4        = unknownEntry("XXXX", true, 1, 90)
	Unknown2Fixed2  = unknownEntry("XX", false, 2, 2)
	Unknown2Fixed14 = unknownEntry("XX", false, 14, 14)
	Unknown2Fixed16 = unknownEntry("XX", false, 16, 16)
	Unknown2Fixed18 = unknownEntry("XX", false, 18, 18)
	Unknown3Fixed13 = unknownEntry("XXX", false, 13, 13)
	Unknown4Fixed6  = unknownEntry("XXXX", false, 6, 6)
)

func unknownEntry(ai string, fnc1 bool, min, max uint8) *Entry {
	return &Entry{
		AI:         ai,
		FNC1:       fnc1,
		Components: []Component{{CSet: CSet82, Min: min, Max: max}},
		Title:      "UNKNOWN",
	}
}

// strncmp compares up to n bytes of a and b the way C's strncmp does,
// treating the end of a string as a byte that collates before any other.
func strncmp(a, b string, n int) int {
	for i := 0; i < n; i++ {
		var ca, cb byte
		if i < len(a) {
			ca = a[i]
		}
		if i < len(b) {
			cb = b[i]
		}
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		if ca == 0 {
			return 0
		}
	}
	return 0
}

// Lookup finds the table entry matching a prefix of data.
//
// For an exact lookup, ailen gives the AI's length and the matched entry
// must have exactly that length. With ailen 0, the entry whose AI matches a
// prefix of data is returned.
//
// When no entry matches and permitUnknown is set, an unknown AI is vivified
// by consulting the AI-length-by-prefix and fixed-value-length tables,
// returning one of the Unknown pseudo entries, but never when the candidate
// collides with the prefix of a known AI, and never when the tables
// disagree with the given length.
func (t *Table) Lookup(data string, ailen int, permitUnknown bool) *Entry {
	if ailen == 1 || ailen > 4 { // AI length between 2 and 4, even for unknown AIs
		return nil
	}

	digits := ailen
	if digits == 0 {
		digits = 2
	}
	if len(data) < digits || !allDigits(data[:digits]) {
		return nil
	}

	s, e := 0, len(t.entries)
	for s < e {
		m := s + (e-s)/2
		entry := &t.entries[m]
		cmp := strncmp(entry.AI, data, len(entry.AI))
		if cmp == 0 {
			if ailen != 0 && len(entry.AI) != ailen {
				return nil // prefix match, but incorrect length
			}
			return entry
		}
		if ailen != 0 && strncmp(data, entry.AI, ailen) == 0 {
			return nil // don't vivify an AI that is a prefix of a known AI
		}
		if cmp < 0 {
			s = m + 1
		} else {
			e = m
		}
	}

	if !permitUnknown {
		return nil
	}

	aiLen := int(t.AILengthByPrefix(data))
	if ailen != 0 && aiLen != 0 && aiLen != ailen {
		return nil
	}
	if aiLen != 0 && (len(data) < aiLen || !allDigits(data[:aiLen])) {
		return nil
	}

	valLen := FixedValueLength(data)
	switch {
	case aiLen == 2 && valLen == Variable:
		return Unknown2
	case aiLen == 2 && valLen == 2:
		return Unknown2Fixed2
	case aiLen == 2 && valLen == 14:
		return Unknown2Fixed14
	case aiLen == 2 && valLen == 16:
		return Unknown2Fixed16
	case aiLen == 2 && valLen == 18:
		return Unknown2Fixed18
	case aiLen == 3 && valLen == Variable:
		return Unknown3
	case aiLen == 3 && valLen == 13:
		return Unknown3Fixed13
	case aiLen == 4 && valLen == Variable:
		return Unknown4
	case aiLen == 4 && valLen == 6:
		return Unknown4Fixed6
	}

	return Unknown // unknown AI length
}
