// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/farm/api"
	"github.com/vechain/farm/api/node"
	"github.com/vechain/farm/health"
	"github.com/vechain/farm/log"
	"github.com/vechain/farm/logdb"
	"github.com/vechain/farm/lvldb"
	"github.com/vechain/farm/metrics"
	"github.com/vechain/farm/runtime"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/tx"
)

var (
	version   string
	gitCommit string
	gitTag    string
	logger    = log.WithContext("pkg", "farm")
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Farm",
		Usage:     "Staking and reward accounting node",
		Copyright: "2026 VeChain Foundation <https://vechain.org/>",
		Commands: []cli.Command{
			{
				Name:  "node",
				Usage: "run a farm node",
				Flags: []cli.Flag{
					dataDirFlag,
					genesisFlag,
					persistFlag,
					apiAddrFlag,
					apiCorsFlag,
					apiTimeoutFlag,
					apiLogsLimitFlag,
					apiSlowQueriesThresholdFlag,
					apiLog5xxErrorsFlag,
					enableAPILogsFlag,
					pprofFlag,
					verbosityFlag,
					jsonLogsFlag,
					enableMetricsFlag,
					metricsAddrFlag,
					adminAddrFlag,
					ntpServerFlag,
					maxClockOffsetFlag,
				},
				Action: nodeAction,
			},
		},
	}
	app.Commands = append(app.Commands, clientCommands...)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func nodeAction(ctx *cli.Context) error {
	exitSignal := handleExitSignal()
	defer func() { logger.Info("exited") }()

	logLevel := initLogger(int(ctx.Uint(verbosityFlag.Name)), ctx.Bool(jsonLogsFlag.Name))

	// metrics are lazily loaded, enable them before anything registers
	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
	}

	gene, err := selectGenesis(ctx)
	if err != nil {
		return err
	}

	var (
		mainDB      *lvldb.LevelDB
		logDB       *logdb.LogDB
		instanceDir string
	)
	if ctx.Bool(persistFlag.Name) {
		if instanceDir, err = makeInstanceDir(ctx, gene); err != nil {
			return err
		}
		if mainDB, err = openMainDB(instanceDir); err != nil {
			return err
		}
		if logDB, err = openLogDB(instanceDir); err != nil {
			mainDB.Close()
			return err
		}
	} else {
		instanceDir = "Memory"
		mainDB = lvldb.NewMem()
		if logDB, err = logdb.NewMem(); err != nil {
			mainDB.Close()
			return err
		}
	}
	defer func() { logger.Info("closing main database..."); mainDB.Close() }()
	defer func() { logger.Info("closing log database..."); logDB.Close() }()

	st := state.New(mainDB)
	if err := gene.Setup(st); err != nil {
		return err
	}

	rt := runtime.New(gene.ChainTag(), st, logDB, func() uint64 { return uint64(time.Now().Unix()) })
	defer rt.Close()

	h := health.New(func() error {
		_, err := mainDB.Has([]byte("health-probe"))
		return err
	}, ctx.Duration(maxClockOffsetFlag.Name))
	receipts := make(chan *tx.Receipt, 64)
	receiptSub := rt.SubscribeReceipts(receipts)
	defer receiptSub.Unsubscribe()

	apiLogs := &atomic.Bool{}
	apiLogs.Store(ctx.Bool(enableAPILogsFlag.Name))

	handler, closeAPI := api.New(rt, logDB, api.Options{
		AllowedOrigins:       ctx.String(apiCorsFlag.Name),
		LogsLimit:            ctx.Uint64(apiLogsLimitFlag.Name),
		PprofOn:              ctx.Bool(pprofFlag.Name),
		EnableMetrics:        ctx.Bool(enableMetricsFlag.Name),
		EnableReqLogger:      apiLogs,
		SlowQueriesThreshold: time.Duration(ctx.Uint64(apiSlowQueriesThresholdFlag.Name)) * time.Millisecond,
		Log5xxErrors:         ctx.Bool(apiLog5xxErrorsFlag.Name),
		NodeInfo: node.Info{
			Name:      "farm",
			Version:   fullVersion(),
			GenesisID: gene.ID(),
		},
	})
	defer func() { logger.Info("closing API..."); closeAPI() }()

	apiURL, stopAPI, err := startAPIServer(
		ctx.String(apiAddrFlag.Name),
		handler,
		time.Duration(ctx.Uint64(apiTimeoutFlag.Name))*time.Millisecond,
	)
	if err != nil {
		return err
	}
	defer func() { logger.Info("stopping API server..."); stopAPI() }()

	var metricsURL string
	if ctx.Bool(enableMetricsFlag.Name) {
		url, stop, err := startMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return err
		}
		defer func() { logger.Info("stopping metrics server..."); stop() }()
		metricsURL = url
	}

	var adminURL string
	if addr := ctx.String(adminAddrFlag.Name); addr != "" {
		url, stop, err := api.StartAdminServer(addr, logLevel, h, apiLogs)
		if err != nil {
			return err
		}
		defer func() { logger.Info("stopping admin server..."); stop() }()
		adminURL = url
	}

	printStartupMessage(gene, instanceDir, apiURL, metricsURL, adminURL)

	g, gctx := errgroup.WithContext(exitSignal)
	g.Go(func() error {
		h.Watch(receipts, gctx.Done())
		return nil
	})
	if server := ctx.String(ntpServerFlag.Name); server != "" {
		g.Go(func() error {
			return watchClockOffset(gctx, server, h)
		})
	}
	return g.Wait()
}
