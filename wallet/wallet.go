// Package wallet derives Bitcoin-style addresses from ECDSA key pairs
// using the base58check address format.
package wallet

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"

	"github.com/mkohlhaas/base58check/b58error"
	"github.com/mkohlhaas/base58check/base58check"
	"golang.org/x/crypto/ripemd160"
)

// https://raw.githubusercontent.com/kallerosenbaum/grokkingbitcoin/master/images/ch03/u03-14.svg
const version = 0x00

type Wallet struct {
	PrivateKey ecdsa.PrivateKey
	PublicKey  []byte
}

// https://raw.githubusercontent.com/kallerosenbaum/grokkingbitcoin/master/images/ch03/03-13.svg
// Returns the address used by end-users: base58check over the wallet's
// public key hash with version 0x00.
func (w Wallet) Address() []byte {
	address, err := base58check.Encode(PublicKeyHash(w.PublicKey), version)
	b58error.Handle(err)
	return address
}

func NewKeyPair() (ecdsa.PrivateKey, []byte) {
	curve := elliptic.P256()
	private, err := ecdsa.GenerateKey(curve, rand.Reader)
	b58error.Handle(err)
	pub := append(private.PublicKey.X.Bytes(), private.PublicKey.Y.Bytes()...)
	return *private, pub
}

func MakeWallet() *Wallet {
	private, public := NewKeyPair()
	wallet := Wallet{private, public}
	return &wallet
}

// https://raw.githubusercontent.com/kallerosenbaum/grokkingbitcoin/master/images/ch03/03-06.svg
func PublicKeyHash(pubKey []byte) []byte {
	pubHash := sha256.Sum256(pubKey)
	hasher := ripemd160.New()
	_, err := hasher.Write(pubHash[:])
	b58error.Handle(err)
	publicRipMD := hasher.Sum(nil)
	return publicRipMD
}

// https://raw.githubusercontent.com/kallerosenbaum/grokkingbitcoin/master/images/ch03/03-15.svg
func ValidateAddress(address string) bool {
	ok, err := base58check.IsValidString(address)
	return err == nil && ok
}

// Turns an address back into its public key hash.
func PubKeyHashFrom(address []byte) ([]byte, error) {
	return base58check.Decode(address)
}
