// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"net/http/pprof"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/vechain/farm/api/accounts"
	"github.com/vechain/farm/api/events"
	"github.com/vechain/farm/api/farming"
	"github.com/vechain/farm/api/middleware"
	"github.com/vechain/farm/api/node"
	"github.com/vechain/farm/api/subscriptions"
	"github.com/vechain/farm/api/tokens"
	"github.com/vechain/farm/api/transactions"
	"github.com/vechain/farm/log"
	"github.com/vechain/farm/logdb"
	"github.com/vechain/farm/runtime"
)

var logger = log.WithContext("pkg", "api")

type Options struct {
	AllowedOrigins       string
	LogsLimit            uint64
	PprofOn              bool
	SkipLogs             bool
	EnableMetrics        bool
	EnableReqLogger      *atomic.Bool
	SlowQueriesThreshold time.Duration
	Log5xxErrors         bool
	NodeInfo             node.Info
}

// New return api router
func New(
	rt *runtime.Runtime,
	logDB *logdb.LogDB,
	opts Options,
) (http.HandlerFunc, func()) {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	accounts.New(rt).
		Mount(router, "/accounts")
	farming.New(rt).
		Mount(router, "/farming")
	tokens.New(rt).
		Mount(router, "/tokens")
	transactions.New(rt).
		Mount(router, "/transactions")
	if !opts.SkipLogs {
		events.New(logDB, opts.LogsLimit).
			Mount(router, "/logs/events")
	}
	node.New(rt, opts.NodeInfo).
		Mount(router, "/node")
	subs := subscriptions.New(rt, origins)
	subs.Mount(router, "/subscriptions")

	if opts.PprofOn {
		router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		router.HandleFunc("/debug/pprof/profile", pprof.Profile)
		router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		router.HandleFunc("/debug/pprof/trace", pprof.Trace)
		router.PathPrefix("/debug/pprof/").HandlerFunc(pprof.Index)
	}

	if opts.EnableMetrics {
		router.Use(metricsMiddleware)
	}

	reqLogger := opts.EnableReqLogger
	if reqLogger == nil {
		reqLogger = &atomic.Bool{}
	}
	router.Use(middleware.RequestLoggerMiddleware(logger, reqLogger, opts.SlowQueriesThreshold, opts.Log5xxErrors))

	handler := handlers.CompressHandler(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}),
	)(handler)

	return handler.ServeHTTP, subs.Close // subscriptions handles hijacked conns, which need to be closed
}
