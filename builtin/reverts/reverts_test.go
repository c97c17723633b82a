// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	e := NewRequireError("Nothing staked")
	b := e.Bytes()

	assert.Equal(t, "08c379a0", hex.EncodeToString(b[:4]))
	assert.Len(t, b, 4+32+32+32)
	assert.Equal(t, byte(32), b[4+31])
	assert.Equal(t, byte(len("Nothing staked")), b[4+32+31])
	assert.Equal(t, "Nothing staked", string(b[4+64:4+64+len("Nothing staked")]))

	var nilErr *ErrRequire
	assert.Nil(t, nilErr.Bytes())
}

func TestIsRevertErr(t *testing.T) {
	e := NewRequireError("No rewards yet")

	assert.True(t, IsRevertErr(e))
	assert.True(t, IsRevertErr(fmt.Errorf("claim: %w", e)))
	assert.False(t, IsRevertErr(errors.New("disk failure")))
	assert.False(t, IsRevertErr(nil))
	assert.False(t, IsRevertErr("not an error"))

	got, ok := AsRevert(fmt.Errorf("claim: %w", e))
	assert.True(t, ok)
	assert.Same(t, e, got)
}
