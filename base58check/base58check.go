// Package base58check implements the versioned, checksum-protected
// address format layered on base58: a one-byte version, the content,
// and the first four bytes of sha256(sha256(version+content)).
//
// ref: https://en.bitcoin.it/wiki/Base58Check_encoding
package base58check

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mkohlhaas/base58check/base58"
)

const checksumLength = 4

var (
	ErrInvalidVersion = errors.New("base58check: version must be in [0,255]")
	ErrInvalidAddress = errors.New("base58check: invalid address")
)

// Checksum returns the first four bytes of sha256(sha256(payload)).
func Checksum(payload []byte) [checksumLength]byte {
	firstHash := sha256.Sum256(payload)
	secondHash := sha256.Sum256(firstHash[:])
	var cksum [checksumLength]byte
	copy(cksum[:], secondHash[:checksumLength])
	return cksum
}

// Encode prepends the version byte to content, appends the checksum
// and base58-encodes the result with the Bitcoin alphabet.
func Encode(content []byte, version int) ([]byte, error) {
	return EncodeAlphabet(content, version, base58.BTCAlphabet)
}

func EncodeAlphabet(content []byte, version int, alpha *base58.Alphabet) ([]byte, error) {
	if version < 0 || version > 0xff {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidVersion, version)
	}
	payload := make([]byte, 0, 1+len(content)+checksumLength)
	payload = append(payload, byte(version))
	payload = append(payload, content...)
	cksum := Checksum(payload)
	payload = append(payload, cksum[:]...)
	return base58.EncodeAlphabet(payload, alpha), nil
}

// IsValid reports whether the trailing checksum of the decoded address
// matches the double hash of the rest. Decode failures propagate as
// errors; they are distinct from a checksum mismatch.
func IsValid(address []byte) (bool, error) {
	return IsValidAlphabet(address, base58.BTCAlphabet)
}

func IsValidString(address string) (bool, error) {
	return IsValidAlphabet([]byte(address), base58.BTCAlphabet)
}

func IsValidAlphabet(address []byte, alpha *base58.Alphabet) (bool, error) {
	raw, err := base58.DecodeAlphabet(address, alpha)
	if err != nil {
		return false, err
	}
	return checksumHolds(raw), nil
}

// Decode returns the content of a valid address, stripping the version
// byte and the checksum. An address whose checksum does not hold, or
// whose payload is too short to carry version and checksum, fails with
// ErrInvalidAddress.
func Decode(address []byte) ([]byte, error) {
	return DecodeAlphabet(address, base58.BTCAlphabet)
}

func DecodeString(address string) ([]byte, error) {
	return DecodeAlphabet([]byte(address), base58.BTCAlphabet)
}

func DecodeStringAlphabet(address string, alpha *base58.Alphabet) ([]byte, error) {
	return DecodeAlphabet([]byte(address), alpha)
}

func DecodeAlphabet(address []byte, alpha *base58.Alphabet) ([]byte, error) {
	raw, err := base58.DecodeAlphabet(address, alpha)
	if err != nil {
		return nil, err
	}
	if len(raw) < 1+checksumLength || !checksumHolds(raw) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return raw[1 : len(raw)-checksumLength], nil
}

func checksumHolds(raw []byte) bool {
	if len(raw) < checksumLength {
		return false
	}
	claimed := raw[len(raw)-checksumLength:]
	expected := Checksum(raw[:len(raw)-checksumLength])
	return bytes.Equal(claimed, expected[:])
}
