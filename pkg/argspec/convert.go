package argspec

import (
	"errors"
	"strconv"
	"strings"
)

func garbage(tok string) *Error {
	return newError(ErrGarbage, "Garbage at end of number: '%s'", tok)
}

// parseInt accepts decimal and the 0x, 0o, 0b and leading-0 octal forms.
// Out-of-range values clamp to the int limits.
func parseInt(tok string) (int, *Error) {
	if strings.ContainsRune(tok, '_') {
		return 0, garbage(tok)
	}
	n, err := strconv.ParseInt(tok, 0, strconv.IntSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, garbage(tok)
	}
	return int(n), nil
}

// parseFloat saturates to infinity on overflow rather than failing.
func parseFloat(tok string, bits int) (float64, *Error) {
	if strings.ContainsRune(tok, '_') {
		return 0, garbage(tok)
	}
	f, err := strconv.ParseFloat(tok, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, garbage(tok)
	}
	return f, nil
}

func parseBool(tok string) (bool, *Error) {
	switch strings.ToLower(tok) {
	case "true", "on":
		return true, nil
	case "false", "off":
		return false, nil
	}
	i, err := parseInt(tok)
	if err != nil {
		return false, err
	}
	return i != 0, nil
}

// parseVec reads up to n components, stopping early at an option marker.
// A single component is broadcast; otherwise missing components are zero.
func parseVec(n int, c *cursor) ([4]float32, *Error) {
	var v [4]float32

	i := 0
	for ; i < n && !c.done() && !c.atOption(); i++ {
		f, err := parseFloat(c.next(), 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}

	if i == 1 {
		for j := 1; j < n; j++ {
			v[j] = v[0]
		}
	}
	return v, nil
}
