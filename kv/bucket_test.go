// Copyright (c) 2021 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errNotFound = errors.New("not found")

type mem map[string]string

func (m mem) Get(k []byte) ([]byte, error) {
	if v, ok := m[string(k)]; ok {
		return []byte(v), nil
	}
	return nil, errNotFound
}

func (m mem) Has(k []byte) (bool, error) {
	_, ok := m[string(k)]
	return ok, nil
}

func (m mem) Put(k, v []byte) error {
	m[string(k)] = string(v)
	return nil
}

func (m mem) Delete(k []byte) error {
	delete(m, string(k))
	return nil
}

func (m mem) IsNotFound(err error) bool {
	return err == errNotFound
}

func TestBucket_GetterGet(t *testing.T) {
	m := mem{"k1": "v1", "k2": "v2"}

	tests := []struct {
		b    Bucket
		key  string
		want string
	}{
		{Bucket(""), "k1", "v1"},
		{Bucket(""), "k2", "v2"},
		{Bucket("k"), "k1", ""},
		{Bucket("k"), "1", "v1"},
		{Bucket("k"), "2", "v2"},
		{Bucket("k1"), "", "v1"},
	}
	for _, tt := range tests {
		t.Run(string(tt.b)+"/"+tt.key, func(t *testing.T) {
			got, _ := tt.b.NewGetter(m).Get([]byte(tt.key))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestBucket_GetterHas(t *testing.T) {
	m := mem{"k1": "v1", "k2": "v2"}

	tests := []struct {
		b    Bucket
		key  string
		want bool
	}{
		{Bucket(""), "k1", true},
		{Bucket("k"), "k1", false},
		{Bucket("k"), "1", true},
		{Bucket("k1"), "", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.b)+"/"+tt.key, func(t *testing.T) {
			got, err := tt.b.NewGetter(m).Has([]byte(tt.key))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBucket_Putter(t *testing.T) {
	m := mem{}
	b := Bucket("voter")

	p := b.NewPutter(m)
	assert.NoError(t, p.Put([]byte("1"), []byte("a")))
	assert.Equal(t, mem{"voter1": "a"}, m)

	assert.NoError(t, p.Delete([]byte("1")))
	assert.Empty(t, m)

	_, err := b.NewGetter(m).Get([]byte("1"))
	assert.True(t, b.NewGetter(m).IsNotFound(err))
}

func TestBucket_Key(t *testing.T) {
	assert.Equal(t, []byte("claimabc"), Bucket("claim").Key([]byte("abc")))
	assert.Equal(t, []byte("claim"), Bucket("claim").Key(nil))
}
