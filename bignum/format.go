// SPDX-License-Identifier: MIT

package bignum

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders x in hexadecimal: the most significant word unpadded,
// every following word zero-padded to WordBits/4 digits.
func (x *Nat) String() string {
	w := x.view()
	var sb strings.Builder
	sb.Grow(len(w) * hexDigits)
	sb.WriteString(strconv.FormatUint(uint64(w[len(w)-1]), 16))

	var (
		i     int
		digit string
	)
	for i = len(w) - 2; i >= 0; i-- {
		digit = strconv.FormatUint(uint64(w[i]), 16)
		sb.WriteString(strings.Repeat("0", hexDigits-len(digit)))
		sb.WriteString(digit)
	}

	return sb.String()
}

// Text is String.
func (x *Nat) Text() string { return x.String() }

// Format implements fmt.Formatter. %s, %v and %x print lower-case hex, %X
// upper case; '#' adds the 0x/0X prefix to %x/%X, and a width pads with
// spaces ('-' pads on the right).
func (x *Nat) Format(f fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'v', 'x':
		s = x.String()
		if verb == 'x' && f.Flag('#') {
			s = "0x" + s
		}
	case 'X':
		s = strings.ToUpper(x.String())
		if f.Flag('#') {
			s = "0X" + s
		}
	default:
		fmt.Fprintf(f, "%%!%c(bignum.Nat=%s)", verb, x.String())
		return
	}
	if w, ok := f.Width(); ok && len(s) < w {
		pad := strings.Repeat(" ", w-len(s))
		if f.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	_, _ = io.WriteString(f, s)
}

// MarshalText implements encoding.TextMarshaler using String.
func (x *Nat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using SetString.
func (z *Nat) UnmarshalText(text []byte) error {
	return z.SetString(string(text))
}

// SetString parses hexadecimal text as produced by String. Leading zeros are
// accepted. On error z is unchanged.
func (z *Nat) SetString(s string) error {
	if s == "" {
		return ErrSyntax
	}
	var n int
	n = (len(s) + hexDigits - 1) / hexDigits
	if n > maxWords {
		return ErrCapacity
	}
	digits := make([]Word, n)

	var (
		i, lo, hi int
		v         uint64
		err       error
	)
	hi = len(s)
	for i = 0; i < n; i++ {
		lo = hi - hexDigits
		if lo < 0 {
			lo = 0
		}
		v, err = strconv.ParseUint(s[lo:hi], 16, WordBits)
		if err != nil {
			return ErrSyntax
		}
		digits[i] = Word(v)
		hi = lo
	}
	if err = z.reserve(n); err != nil {
		return err
	}
	z.words = z.words[:n]
	copy(z.words, digits)
	z.norm()

	return nil
}
