package base58

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAlphabet  = errors.New("base58: alphabet must contain 58 distinct characters")
	ErrInvalidCharacter = errors.New("base58: invalid character")
)

// BTCAlphabet is the Bitcoin character set.
// 0 O l I are excluded as visually ambiguous.
var BTCAlphabet = mustAlphabet("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")

// Alphabet maps digit values to symbols and back.
// Built once by NewAlphabet and reused across encode/decode calls.
type Alphabet struct {
	encode [58]byte
	decode [256]int16
}

func NewAlphabet(charset string) (*Alphabet, error) {
	if len(charset) != 58 {
		return nil, fmt.Errorf("%w, got length %d", ErrInvalidAlphabet, len(charset))
	}
	a := new(Alphabet)
	for i := range a.decode {
		a.decode[i] = -1
	}
	for i := 0; i < len(charset); i++ {
		c := charset[i]
		if a.decode[c] != -1 {
			return nil, fmt.Errorf("%w, %q appears twice", ErrInvalidAlphabet, c)
		}
		a.encode[i] = c
		a.decode[c] = int16(i)
	}
	return a, nil
}

// Zero is the symbol for digit zero. Leading zero bytes encode as runs of it.
func (a *Alphabet) Zero() byte {
	return a.encode[0]
}

func (a *Alphabet) String() string {
	return string(a.encode[:])
}

func mustAlphabet(charset string) *Alphabet {
	a, err := NewAlphabet(charset)
	if err != nil {
		panic(err)
	}
	return a
}
