package keystore

import (
	"testing"

	"github.com/dgraph-io/badger"
	"github.com/mkohlhaas/base58check/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGet(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()
	w := wallet.MakeWallet()
	address, err := store.Put(w)
	require.NoError(t, err)
	assert.Equal(t, string(w.Address()), address)
	loaded, err := store.Get(address)
	require.NoError(t, err)
	assert.Equal(t, w.PublicKey, loaded.PublicKey)
	assert.Equal(t, w.PrivateKey.D, loaded.PrivateKey.D)
	assert.Equal(t, string(w.Address()), string(loaded.Address()))
}

func TestGetMissing(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()
	_, err = store.Get("1BoatSLRHtKNngkdXEeobR76b53LETtpyT")
	assert.Equal(t, badger.ErrKeyNotFound, err)
}

func TestAddresses(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()
	addresses, err := store.Addresses()
	require.NoError(t, err)
	assert.Empty(t, addresses)
	first, err := store.Put(wallet.MakeWallet())
	require.NoError(t, err)
	second, err := store.Put(wallet.MakeWallet())
	require.NoError(t, err)
	addresses, err = store.Addresses()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first, second}, addresses)
}

func TestReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	require.NoError(t, err)
	address, err := store.Put(wallet.MakeWallet())
	require.NoError(t, err)
	require.NoError(t, store.Close())
	store, err = Open(dir)
	require.NoError(t, err)
	defer store.Close()
	loaded, err := store.Get(address)
	require.NoError(t, err)
	assert.Equal(t, address, string(loaded.Address()))
}
