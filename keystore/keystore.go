// Package keystore persists wallets in a badger database keyed by
// their base58check address.
package keystore

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/gob"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgraph-io/badger"
	"github.com/mkohlhaas/base58check/wallet"
)

type Store struct {
	Database *badger.DB
}

// Flat gob form of a wallet. The curve is fixed to P-256, so only the
// scalar and the raw public key need to be stored.
type walletRecord struct {
	D         []byte
	PublicKey []byte
}

func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	db, err := openDB(&opts)
	if err != nil {
		return nil, err
	}
	return &Store{Database: db}, nil
}

func (s *Store) Close() error {
	return s.Database.Close()
}

// Stores the wallet under its address and returns the address.
func (s *Store) Put(w *wallet.Wallet) (string, error) {
	address := string(w.Address())
	var content bytes.Buffer
	record := walletRecord{D: w.PrivateKey.D.Bytes(), PublicKey: w.PublicKey}
	if err := gob.NewEncoder(&content).Encode(record); err != nil {
		return "", err
	}
	err := s.Database.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(address), content.Bytes())
	})
	if err != nil {
		return "", err
	}
	return address, nil
}

// Returns the wallet stored under address.
// Fails with badger.ErrKeyNotFound if there is none.
func (s *Store) Get(address string) (*wallet.Wallet, error) {
	var record walletRecord
	err := s.Database.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(address))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return gob.NewDecoder(bytes.NewReader(val)).Decode(&record)
		})
	})
	if err != nil {
		return nil, err
	}
	return record.toWallet(), nil
}

// Returns all addresses in the store.
func (s *Store) Addresses() ([]string, error) {
	var addresses []string
	err := s.Database.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			addresses = append(addresses, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r walletRecord) toWallet() *wallet.Wallet {
	curve := elliptic.P256()
	x, y := curve.ScalarBaseMult(r.D)
	private := ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve, X: x, Y: y},
		D:         new(big.Int).SetBytes(r.D),
	}
	return &wallet.Wallet{PrivateKey: private, PublicKey: r.PublicKey}
}

func retry(opts badger.Options) (*badger.DB, error) {
	lockPath := filepath.Join(opts.Dir, "LOCK")
	if err := os.Remove(lockPath); err != nil {
		return nil, fmt.Errorf(`removing "LOCK": %s`, err)
	}
	opts.Truncate = true
	db, err := badger.Open(opts)
	return db, err
}

func openDB(opts *badger.Options) (*badger.DB, error) {
	if db, err := badger.Open(*opts); err != nil {
		if strings.Contains(err.Error(), "LOCK") {
			if db, err := retry(*opts); err == nil {
				log.Println("database unlocked, value log truncated")
				return db, nil
			}
			log.Println("could not unlock database:", err)
		}
		return nil, err
	} else {
		return db, nil
	}
}
