// Package base58 implements base58 encoding and decoding over
// configurable 58-symbol alphabets. Leading zero bytes are significant
// and round-trip as leading zero symbols.
package base58

import (
	"fmt"
	"math/big"
)

var radix = big.NewInt(58)

// Encode encodes input with the Bitcoin alphabet.
func Encode(input []byte) []byte {
	return EncodeAlphabet(input, BTCAlphabet)
}

// EncodeAlphabet encodes input with the given alphabet. Each leading
// zero byte becomes one zero symbol; the rest is treated as a
// big-endian unsigned integer and rendered in base 58. A zero-valued
// remainder yields no digits, so empty input encodes to empty output.
func EncodeAlphabet(input []byte, alpha *Alphabet) []byte {
	zeros := 0
	for zeros < len(input) && input[zeros] == 0x00 {
		zeros++
	}
	acc := new(big.Int).SetBytes(input[zeros:])
	mod := new(big.Int)
	var digits []byte // least significant first
	for acc.Sign() > 0 {
		acc.QuoRem(acc, radix, mod)
		digits = append(digits, alpha.encode[mod.Int64()])
	}
	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = alpha.Zero()
	}
	for i, d := range digits {
		out[len(out)-1-i] = d
	}
	return out
}

// Decode decodes input with the Bitcoin alphabet.
func Decode(input []byte) ([]byte, error) {
	return DecodeAlphabet(input, BTCAlphabet)
}

// DecodeString decodes a text address. The string is processed as its
// raw bytes, so it agrees byte-for-byte with Decode.
func DecodeString(s string) ([]byte, error) {
	return DecodeAlphabet([]byte(s), BTCAlphabet)
}

func DecodeStringAlphabet(s string, alpha *Alphabet) ([]byte, error) {
	return DecodeAlphabet([]byte(s), alpha)
}

// DecodeAlphabet decodes input with the given alphabet. Each leading
// zero symbol becomes one zero byte; the remaining symbols are folded
// into a big integer and written out big-endian. A symbol outside the
// alphabet fails with ErrInvalidCharacter.
func DecodeAlphabet(input []byte, alpha *Alphabet) ([]byte, error) {
	zeros := 0
	for zeros < len(input) && input[zeros] == alpha.Zero() {
		zeros++
	}
	acc := new(big.Int)
	digit := new(big.Int)
	for i, c := range input[zeros:] {
		d := alpha.decode[c]
		if d < 0 {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, c, zeros+i)
		}
		acc.Mul(acc, radix)
		acc.Add(acc, digit.SetInt64(int64(d)))
	}
	raw := acc.Bytes()
	out := make([]byte, zeros+len(raw))
	copy(out[zeros:], raw)
	return out, nil
}
