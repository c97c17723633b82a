// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transactions_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/farm/api/transactions"
	"github.com/vechain/farm/api/utils/types"
	"github.com/vechain/farm/builtin"
	"github.com/vechain/farm/genesis"
	"github.com/vechain/farm/test/testfarm"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

var (
	alice    = genesis.DevAccounts()[1]
	chainTag = genesis.NewDevnet().ChainTag()
)

func initTransactionServer(t *testing.T) (*testfarm.Farm, *httptest.Server) {
	farm, err := testfarm.NewDefault()
	require.NoError(t, err)

	router := mux.NewRouter()
	transactions.New(farm.Runtime()).Mount(router, "/transactions")
	ts := httptest.NewServer(router)

	t.Cleanup(func() {
		ts.Close()
		farm.Close()
	})
	return farm, ts
}

func httpPost(t *testing.T, url string, body any) ([]byte, int) {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := http.Post(url, "application/x-www-form-urlencoded", bytes.NewReader(data)) //#nosec G107
	require.NoError(t, err)
	defer res.Body.Close()
	r, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return r, res.StatusCode
}

func rawTx(t *testing.T, b *tx.Builder, nonce uint64) *transactions.RawTx {
	return encodeTx(t, b.ChainTag(chainTag).Nonce(nonce))
}

func encodeTx(t *testing.T, b *tx.Builder) *transactions.RawTx {
	trx := tx.MustSign(b.Build(), alice.PrivateKey)
	data, err := rlp.EncodeToBytes(trx)
	require.NoError(t, err)
	return &transactions.RawTx{Raw: hexutil.Encode(data)}
}

func TestSendTransaction(t *testing.T) {
	_, ts := initTransactionServer(t)
	amount := testfarm.Units(10, thor.DefaultStakeTokenDecimals)

	approve := tx.NewBuilder(tx.OpApprove).
		Contract(builtin.StakeToken.Address).
		To(builtin.Farming.Address).
		Value(amount)
	body, code := httpPost(t, ts.URL+"/transactions", rawTx(t, approve, 0))
	require.Equal(t, http.StatusOK, code, string(body))

	var receipt types.Receipt
	require.NoError(t, json.Unmarshal(body, &receipt))
	assert.False(t, receipt.Reverted)
	assert.Equal(t, alice.Address, receipt.Origin)
	assert.Equal(t, tx.OpApprove, receipt.Op)
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, tx.EventApproval, receipt.Events[0].Name)

	body, code = httpPost(t, ts.URL+"/transactions", rawTx(t, tx.NewBuilder(tx.OpStake).Value(amount), 1))
	require.Equal(t, http.StatusOK, code, string(body))
	require.NoError(t, json.Unmarshal(body, &receipt))
	assert.False(t, receipt.Reverted)
	assert.Equal(t, tx.OpStake, receipt.Op)
	assert.Contains(t, eventNames(receipt.Events), tx.EventStaked)
}

func TestRevertedTransaction(t *testing.T) {
	_, ts := initTransactionServer(t)

	body, code := httpPost(t, ts.URL+"/transactions", rawTx(t, tx.NewBuilder(tx.OpClaim), 0))
	require.Equal(t, http.StatusOK, code, string(body))

	var receipt types.Receipt
	require.NoError(t, json.Unmarshal(body, &receipt))
	assert.True(t, receipt.Reverted)
	assert.Equal(t, "Nothing staked", receipt.RevertReason)
	assert.NotEmpty(t, receipt.RevertData)
	assert.Empty(t, receipt.Events)
}

func TestRejectedTransaction(t *testing.T) {
	_, ts := initTransactionServer(t)

	tests := []struct {
		name string
		body any
		code int
	}{
		{"bad nonce", rawTx(t, tx.NewBuilder(tx.OpClaim), 7), http.StatusForbidden},
		{"unknown op", rawTx(t, tx.NewBuilder(tx.Op("burn")), 0), http.StatusBadRequest},
		{"foreign chain", encodeTx(t, tx.NewBuilder(tx.OpClaim).ChainTag(chainTag+1)), http.StatusBadRequest},
		{"bad hex", &transactions.RawTx{Raw: "0xzz"}, http.StatusBadRequest},
		{"bad rlp", &transactions.RawTx{Raw: "0x0102"}, http.StatusBadRequest},
		{"unknown field", map[string]string{"data": "0x"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, code := httpPost(t, ts.URL+"/transactions", tt.body)
			assert.Equal(t, tt.code, code, string(body))
		})
	}
}

func eventNames(events []*types.Event) []string {
	names := make([]string, 0, len(events))
	for _, ev := range events {
		names = append(names, ev.Name)
	}
	return names
}
