package discountcode

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"unicode"
)

var (
	ErrMalformedCode = errors.New("code is malformed")
	ErrInvalidFormat = errors.New("invalid code format configuration")
)

const (
	DefaultPrefix   = "EDC"
	DefaultLength   = 6
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ManualCode is the short human-enterable form of a discount code.
type ManualCode string

func (c ManualCode) String() string {
	return string(c)
}

// Format describes how manual codes look: an optional display prefix, a fixed
// length and the alphabet they are drawn from.
type Format struct {
	Prefix   string
	Length   int
	Alphabet string
}

func DefaultFormat() Format {
	return Format{Prefix: DefaultPrefix, Length: DefaultLength, Alphabet: DefaultAlphabet}
}

func NewFormat(prefix string, length int, alphabet string) (Format, error) {
	f := Format{Prefix: strings.ToUpper(prefix), Length: length, Alphabet: alphabet}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

func (f Format) Validate() error {
	if f.Length < 4 || f.Length > 32 {
		return ErrInvalidFormat
	}
	if len(f.Alphabet) < 2 {
		return ErrInvalidFormat
	}
	for _, r := range f.Alphabet {
		if !isUpperAlnum(r) {
			return ErrInvalidFormat
		}
	}
	return nil
}

// Generate draws Length characters uniformly from Alphabet using crypto/rand.
func (f Format) Generate() (ManualCode, error) {
	size := big.NewInt(int64(len(f.Alphabet)))
	buf := make([]byte, f.Length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		buf[i] = f.Alphabet[n.Int64()]
	}
	return ManualCode(buf), nil
}

// Normalize turns whatever a cashier typed or scanned into a manual code:
// letters are uppercased, every non-alphanumeric character is dropped and
// the display prefix is removed only when exactly one code remains after it.
// A code that itself starts with the prefix letters is left intact.
func (f Format) Normalize(raw string) (ManualCode, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToUpper(raw) {
		if isUpperAlnum(r) {
			b.WriteRune(r)
		}
	}
	s := b.String()

	if f.Prefix != "" && len(s) == len(f.Prefix)+f.Length && strings.HasPrefix(s, f.Prefix) {
		s = s[len(f.Prefix):]
	}

	if len(s) != f.Length {
		return "", ErrMalformedCode
	}
	for _, r := range s {
		if !strings.ContainsRune(f.Alphabet, r) {
			return "", ErrMalformedCode
		}
	}
	return ManualCode(s), nil
}

func (f Format) Display(code ManualCode) string {
	if f.Prefix == "" {
		return code.String()
	}
	return f.Prefix + "-" + code.String()
}

func isUpperAlnum(r rune) bool {
	return r < unicode.MaxASCII && (('A' <= r && r <= 'Z') || ('0' <= r && r <= '9'))
}
