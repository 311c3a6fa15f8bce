// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_Reverts(t *testing.T) {
	revert := New(KindIntegrity, "test")
	assert.Equal(t, "test", revert.message)
	assert.Equal(t, revert.Error(), revert.message)
	assert.Equal(t, KindIntegrity, revert.Kind())

	assert.True(t, IsRevertErr(revert))
	assert.False(t, IsRevertErr(nil))
	assert.False(t, IsRevertErr(fmt.Errorf("test")))
	assert.False(t, IsRevertErr(big.NewInt(0)))
}

func TestKindOf(t *testing.T) {
	wrapped := errors.Wrap(ErrAlreadyClaimed, "claim")
	assert.True(t, IsRevertErr(wrapped))
	assert.Equal(t, KindExhaustion, KindOf(wrapped))
	assert.ErrorIs(t, wrapped, ErrAlreadyClaimed)

	assert.Equal(t, KindUnknown, KindOf(errors.New("disk")))
	assert.Equal(t, KindStaleness, KindOf(ErrStaleEpoch))
	assert.Equal(t, "authorization", KindOf(ErrInvalidOperator).String())
}
