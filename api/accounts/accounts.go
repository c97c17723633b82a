// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package accounts

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/farm/api/utils"
	"github.com/vechain/farm/builtin"
	"github.com/vechain/farm/runtime"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/xenv"
)

type Accounts struct {
	rt *runtime.Runtime
}

func New(rt *runtime.Runtime) *Accounts {
	return &Accounts{rt}
}

func parseAddress(req *http.Request) (thor.Address, error) {
	addr, err := thor.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return thor.Address{}, utils.BadRequest(errors.WithMessage(err, "address"))
	}
	return addr, nil
}

func (a *Accounts) handleGetAccount(w http.ResponseWriter, req *http.Request) error {
	addr, err := parseAddress(req)
	if err != nil {
		return err
	}
	nonce, err := a.rt.Nonce(addr)
	if err != nil {
		return err
	}

	acc := &Account{Nonce: nonce}
	err = a.rt.View(func(env *xenv.Environment) error {
		stake, err := builtin.StakeToken.WithState(env.State(), nil).BalanceOf(addr)
		if err != nil {
			return err
		}
		reward, err := builtin.RewardToken.WithState(env.State(), nil).BalanceOf(addr)
		if err != nil {
			return err
		}
		acc.StakeBalance = (*math.HexOrDecimal256)(stake)
		acc.RewardBalance = (*math.HexOrDecimal256)(reward)
		return nil
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, acc)
}

func (a *Accounts) handleGetNonce(w http.ResponseWriter, req *http.Request) error {
	addr, err := parseAddress(req)
	if err != nil {
		return err
	}
	nonce, err := a.rt.Nonce(addr)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Nonce{nonce})
}

func (a *Accounts) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/{address}").
		Methods(http.MethodGet).
		Name("GET /accounts/{address}").
		HandlerFunc(utils.WrapHandlerFunc(a.handleGetAccount))
	sub.Path("/{address}/nonce").
		Methods(http.MethodGet).
		Name("GET /accounts/{address}/nonce").
		HandlerFunc(utils.WrapHandlerFunc(a.handleGetNonce))
}
