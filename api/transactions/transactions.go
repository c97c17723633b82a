// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transactions

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/farm/api/utils"
	"github.com/vechain/farm/api/utils/types"
	"github.com/vechain/farm/runtime"
	"github.com/vechain/farm/state"
)

type Transactions struct {
	rt *runtime.Runtime
}

func New(rt *runtime.Runtime) *Transactions {
	return &Transactions{rt}
}

func (t *Transactions) handleSendTransaction(w http.ResponseWriter, req *http.Request) error {
	var raw RawTx
	if err := utils.ParseJSON(req.Body, &raw); err != nil {
		return utils.BadRequest(errors.WithMessage(err, "body"))
	}
	trx, err := raw.decode()
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "raw"))
	}

	receipt, err := t.rt.Execute(trx)
	if err != nil {
		var stateErr *state.Error
		switch {
		case errors.As(err, &stateErr):
			return err
		case errors.Is(err, runtime.ErrBadNonce):
			return utils.Forbidden(errors.WithMessage(err, "rejected tx"))
		default:
			return utils.BadRequest(errors.WithMessage(err, "bad tx"))
		}
	}
	metricTransactionOp().AddWithLabel(1, map[string]string{"op": string(trx.Op())})
	return utils.WriteJSON(w, types.ConvertReceipt(receipt))
}

func (t *Transactions) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").
		Methods(http.MethodPost).
		Name("POST /transactions").
		HandlerFunc(utils.WrapHandlerFunc(t.handleSendTransaction))
}
