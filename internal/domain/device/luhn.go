package device

// LuhnCheckDigit returns the check digit for a string of decimal digits.
func LuhnCheckDigit(digits string) (int, bool) {
	if digits == "" {
		return 0, false
	}
	sum := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10, true
}

// LuhnValid reports whether the last digit of s is the check digit of the rest.
func LuhnValid(s string) bool {
	if len(s) < 2 {
		return false
	}
	want, ok := LuhnCheckDigit(s[:len(s)-1])
	if !ok {
		return false
	}
	last := s[len(s)-1]
	return last >= '0' && last <= '9' && int(last-'0') == want
}
