package engine

// ParseReading decodes a reading of the form [-]D[D].D into tenths.
//
// The decimal point must sit right after one or two integer digits and be
// followed by exactly one digit; trailing bytes are ignored. Anything else
// gives an undefined result.
func ParseReading(b []byte) int64 {
	sign, i := int64(1), 0
	if b[0] == '-' {
		sign, i = -1, 1
	}

	if b[i+1] == '.' {
		// '0'*11 == 528
		return sign * (int64(b[i])*10 + int64(b[i+2]) - '0'*11)
	}

	// '0'*111 == 5328
	return sign * (int64(b[i])*100 + int64(b[i+1])*10 + int64(b[i+3]) - '0'*111)
}

// FormatTenths renders a value in tenths with exactly one fractional digit.
func FormatTenths(v int64) string {
	return string(appendTenths(make([]byte, 0, 8), v))
}

func appendTenths(buf []byte, v int64) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}

	buf = appendInt(buf, v/10)
	return append(buf, '.', byte('0'+v%10))
}

func appendInt(buf []byte, v int64) []byte {
	if v >= 10 {
		buf = appendInt(buf, v/10)
	}
	return append(buf, byte('0'+v%10))
}
