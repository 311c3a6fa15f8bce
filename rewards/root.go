// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package rewards

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"

	"github.com/vechain/ncn/thor"
)

// MerkleRoot is where the authoritative rewards root lives. It is either an
// Inline hash or an External reference.
type MerkleRoot interface {
	fmt.Stringer
	tag() byte
}

// Inline is a root held by the rewards state itself.
type Inline struct {
	Hash thor.Bytes32
}

// External references 32 bytes at Offset of the data of Account.
type External struct {
	Account thor.Address
	Offset  uint64
}

const (
	tagInline   byte = 0
	tagExternal byte = 1
)

func (Inline) tag() byte   { return tagInline }
func (External) tag() byte { return tagExternal }

func (r Inline) String() string {
	return "inline(" + r.Hash.String() + ")"
}

func (r External) String() string {
	return fmt.Sprintf("external(%v@%d)", r.Account, r.Offset)
}

// EncodeRoot encodes root as a 1-byte tag followed by its fields.
// A nil root encodes to nil.
func EncodeRoot(root MerkleRoot) []byte {
	switch r := root.(type) {
	case nil:
		return nil
	case Inline:
		return append([]byte{r.tag()}, r.Hash[:]...)
	case External:
		data := make([]byte, 1+20+8)
		data[0] = r.tag()
		copy(data[1:], r.Account[:])
		binary.LittleEndian.PutUint64(data[21:], r.Offset)
		return data
	default:
		panic(fmt.Sprintf("unexpected merkle root %T", root))
	}
}

// DecodeRoot decodes data produced by EncodeRoot.
func DecodeRoot(data []byte) (MerkleRoot, error) {
	if len(data) == 0 {
		return nil, nil
	}
	switch data[0] {
	case tagInline:
		if len(data) != 1+32 {
			return nil, errors.New("inline root: bad length")
		}
		return Inline{Hash: thor.BytesToBytes32(data[1:])}, nil
	case tagExternal:
		if len(data) != 1+20+8 {
			return nil, errors.New("external root: bad length")
		}
		return External{
			Account: thor.BytesToAddress(data[1:21]),
			Offset:  binary.LittleEndian.Uint64(data[21:]),
		}, nil
	default:
		return nil, errors.Errorf("unknown root tag %d", data[0])
	}
}
