// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package lvldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/ncn/kv"
)

func TestLevelDB(t *testing.T) {
	var (
		key        = []byte("123")
		value      = []byte("456")
		inValidKey = []byte("abc")
	)

	persistent, err := New(filepath.Join(t.TempDir(), "db"), Options{16, 16})
	require.NoError(t, err)
	defer persistent.Close()

	mem, err := NewMem()
	require.NoError(t, err)
	defer mem.Close()

	for _, db := range []*LevelDB{persistent, mem} {
		assert.NoError(t, db.Put(key, value))

		got, err := db.Get(key)
		assert.NoError(t, err)
		assert.Equal(t, value, got)

		has, err := db.Has(key)
		assert.NoError(t, err)
		assert.True(t, has)

		has, err = db.Has(inValidKey)
		assert.NoError(t, err)
		assert.False(t, has)

		assert.NoError(t, db.Delete(key))
		_, err = db.Get(key)
		assert.True(t, db.IsNotFound(err))
	}
}

func TestBulkIsAtomic(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	bulk := db.Bulk()
	assert.NoError(t, bulk.Put([]byte("a"), []byte("1")))
	assert.NoError(t, bulk.Put([]byte("b"), []byte("2")))
	assert.Equal(t, 2, bulk.Len())

	// nothing visible before Write
	has, err := db.Has([]byte("a"))
	assert.NoError(t, err)
	assert.False(t, has)

	assert.NoError(t, bulk.Write())
	got, err := db.Get([]byte("b"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
}

func TestSnapshot(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Put([]byte("k"), []byte("old")))
	snap := db.Snapshot()
	defer snap.Release()

	require.NoError(t, db.Put([]byte("k"), []byte("new")))

	got, err := snap.Get([]byte("k"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("old"), got)
}

func TestBucketIterate(t *testing.T) {
	db, err := NewMem()
	require.NoError(t, err)
	defer db.Close()

	voters := kv.Bucket("v")
	claims := kv.Bucket("c")
	require.NoError(t, voters.NewPutter(db).Put([]byte("1"), []byte("x")))
	require.NoError(t, voters.NewPutter(db).Put([]byte("2"), []byte("y")))
	require.NoError(t, claims.NewPutter(db).Put([]byte("1"), []byte("z")))

	iter := voters.NewIterator(db, kv.Range{})
	defer iter.Release()

	var keys []string
	for iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	assert.NoError(t, iter.Error())
	assert.Equal(t, []string{"1", "2"}, keys)
}
