// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farming

import (
	"math/big"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/farm/api/utils"
	"github.com/vechain/farm/runtime"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/xenv"
)

type Farming struct {
	rt *runtime.Runtime
}

func New(rt *runtime.Runtime) *Farming {
	return &Farming{rt}
}

func (f *Farming) handleGetConfig(w http.ResponseWriter, _ *http.Request) error {
	var cfg *Config
	err := f.rt.View(func(env *xenv.Environment) error {
		c, err := env.Farming().Config()
		if err != nil {
			return err
		}
		total, err := env.Farming().TotalStaked()
		if err != nil {
			return err
		}
		cfg = convertConfig(c, total, env.Time())
		return nil
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, cfg)
}

func (f *Farming) handleGetPosition(w http.ResponseWriter, req *http.Request) error {
	addr, err := thor.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}

	var pos *Position
	err = f.rt.View(func(env *xenv.Environment) error {
		fm := env.Farming()
		p, err := fm.Position(addr)
		if err != nil {
			return err
		}
		minHold, err := fm.MinimumHoldPeriod()
		if err != nil {
			return err
		}
		pending := new(big.Int)
		if !p.IsEmpty() {
			if pending, err = fm.PendingReward(addr, env.Time()); err != nil {
				return err
			}
		}
		pos = convertPosition(p, pending, minHold, env.Time())
		return nil
	})
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, pos)
}

func (f *Farming) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/config").
		Methods(http.MethodGet).
		Name("GET /farming/config").
		HandlerFunc(utils.WrapHandlerFunc(f.handleGetConfig))
	sub.Path("/positions/{address}").
		Methods(http.MethodGet).
		Name("GET /farming/positions/{address}").
		HandlerFunc(utils.WrapHandlerFunc(f.handleGetPosition))
}
