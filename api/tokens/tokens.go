// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tokens

import (
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/farm/api/utils"
	"github.com/vechain/farm/builtin"
	"github.com/vechain/farm/builtin/token"
	"github.com/vechain/farm/runtime"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/xenv"
)

type Tokens struct {
	rt *runtime.Runtime
}

func New(rt *runtime.Runtime) *Tokens {
	return &Tokens{rt}
}

// parseToken accepts "stake", "reward" or the address of a token contract.
func parseToken(s string) (thor.Address, error) {
	switch strings.ToLower(s) {
	case "stake":
		return builtin.StakeToken.Address, nil
	case "reward":
		return builtin.RewardToken.Address, nil
	}
	addr, err := thor.ParseAddress(s)
	if err != nil {
		return thor.Address{}, utils.BadRequest(errors.WithMessage(err, "token"))
	}
	if _, ok := builtin.TokenAt(addr); !ok {
		return thor.Address{}, utils.NotFound(fmt.Errorf("token %v not found", addr))
	}
	return addr, nil
}

func parseRole(s string) (thor.Bytes32, error) {
	switch strings.ToLower(s) {
	case "minter":
		return thor.RoleMinter, nil
	case "admin":
		return thor.RoleAdmin, nil
	}
	role, err := thor.ParseBytes32(s)
	if err != nil {
		return thor.Bytes32{}, utils.BadRequest(errors.WithMessage(err, "role"))
	}
	return role, nil
}

func parseAddress(req *http.Request, name string) (thor.Address, error) {
	addr, err := thor.ParseAddress(mux.Vars(req)[name])
	if err != nil {
		return thor.Address{}, utils.BadRequest(errors.WithMessage(err, name))
	}
	return addr, nil
}

func (t *Tokens) view(req *http.Request, fn func(tok *token.Token) error) error {
	addr, err := parseToken(mux.Vars(req)["token"])
	if err != nil {
		return err
	}
	return t.rt.View(func(env *xenv.Environment) error {
		tok, err := env.Token(addr)
		if err != nil {
			return err
		}
		return fn(tok)
	})
}

func (t *Tokens) handleGetToken(w http.ResponseWriter, req *http.Request) error {
	var result *Token
	err := t.view(req, func(tok *token.Token) error {
		md, err := tok.Metadata()
		if err != nil {
			return err
		}
		supply, err := tok.TotalSupply()
		if err != nil {
			return err
		}
		result = &Token{
			Address:     tok.Address(),
			Name:        md.Name,
			Symbol:      md.Symbol,
			Decimals:    md.Decimals,
			TotalSupply: (*math.HexOrDecimal256)(supply),
		}
		return nil
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, result)
}

func (t *Tokens) handleGetBalance(w http.ResponseWriter, req *http.Request) error {
	account, err := parseAddress(req, "address")
	if err != nil {
		return err
	}
	var bal *big.Int
	err = t.view(req, func(tok *token.Token) (err error) {
		bal, err = tok.BalanceOf(account)
		return
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Balance{(*math.HexOrDecimal256)(bal)})
}

func (t *Tokens) handleGetAllowance(w http.ResponseWriter, req *http.Request) error {
	owner, err := parseAddress(req, "owner")
	if err != nil {
		return err
	}
	spender, err := parseAddress(req, "spender")
	if err != nil {
		return err
	}
	var allowance *big.Int
	err = t.view(req, func(tok *token.Token) (err error) {
		allowance, err = tok.Allowance(owner, spender)
		return
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Allowance{(*math.HexOrDecimal256)(allowance)})
}

func (t *Tokens) handleGetRole(w http.ResponseWriter, req *http.Request) error {
	role, err := parseRole(mux.Vars(req)["role"])
	if err != nil {
		return err
	}
	account, err := parseAddress(req, "address")
	if err != nil {
		return err
	}
	var granted bool
	err = t.view(req, func(tok *token.Token) (err error) {
		granted, err = tok.HasRole(role, account)
		return
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Role{role, granted})
}

func (t *Tokens) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/{token}").
		Methods(http.MethodGet).
		Name("GET /tokens/{token}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetToken))
	sub.Path("/{token}/balances/{address}").
		Methods(http.MethodGet).
		Name("GET /tokens/{token}/balances/{address}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetBalance))
	sub.Path("/{token}/allowances/{owner}/{spender}").
		Methods(http.MethodGet).
		Name("GET /tokens/{token}/allowances/{owner}/{spender}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetAllowance))
	sub.Path("/{token}/roles/{role}/{address}").
		Methods(http.MethodGet).
		Name("GET /tokens/{token}/roles/{role}/{address}").
		HandlerFunc(utils.WrapHandlerFunc(t.handleGetRole))
}
