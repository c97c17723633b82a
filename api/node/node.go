// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package node

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vechain/farm/api/utils"
	"github.com/vechain/farm/runtime"
	"github.com/vechain/farm/thor"
)

// Info static description of the running node.
type Info struct {
	Name      string       `json:"name"`
	Version   string       `json:"version"`
	GenesisID thor.Bytes32 `json:"genesisId"`
}

// Status node info plus the runtime clock and the chain tag transactions must carry.
type Status struct {
	Info
	ChainTag byte   `json:"chainTag"`
	Time     uint64 `json:"time"`
}

type Node struct {
	rt   *runtime.Runtime
	info Info
}

func New(rt *runtime.Runtime, info Info) *Node {
	return &Node{
		rt,
		info,
	}
}

func (n *Node) handleNodeInfo(w http.ResponseWriter, _ *http.Request) error {
	return utils.WriteJSON(w, &Status{n.info, n.rt.ChainTag(), n.rt.Now()})
}

func (n *Node) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/info").
		Methods(http.MethodGet).
		Name("GET /node/info").
		HandlerFunc(utils.WrapHandlerFunc(n.handleNodeInfo))
}
