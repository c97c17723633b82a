// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net"
	"net/http"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/beevik/ntp"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/farm/co"
	"github.com/vechain/farm/genesis"
	"github.com/vechain/farm/health"
	"github.com/vechain/farm/log"
	"github.com/vechain/farm/logdb"
	"github.com/vechain/farm/lvldb"
	"github.com/vechain/farm/metrics"
	"github.com/vechain/farm/thor"
)

const (
	defaultMaxClockOffset = 5 * time.Second
	clockCheckInterval    = 10 * time.Minute
)

func initLogger(lvl int, jsonLogs bool) *slog.LevelVar {
	logLevel := log.FromLegacyLevel(lvl)
	output := io.Writer(os.Stdout)

	var level slog.LevelVar
	level.Set(logLevel)

	var handler slog.Handler
	if jsonLogs {
		handler = log.JSONHandlerWithLevel(output, &level)
	} else {
		useColor := (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"
		if useColor {
			output = os.Stderr
		}
		handler = log.NewTerminalHandlerWithLevel(output, &level, useColor)
	}
	log.SetDefault(log.NewLogger(handler))
	return &level
}

func selectGenesis(ctx *cli.Context) (*genesis.Genesis, error) {
	path := ctx.String(genesisFlag.Name)
	if path == "" {
		return genesis.NewDevnet(), nil
	}
	cfg, err := genesis.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	gene, err := genesis.NewCustomNet(cfg)
	if err != nil {
		return nil, errors.WithMessage(err, "build genesis")
	}
	return gene, nil
}

func makeDataDir(ctx *cli.Context) (string, error) {
	dataDir := ctx.String(dataDirFlag.Name)
	if dataDir == "" {
		return "", fmt.Errorf("unable to infer default data dir, use -%s to specify", dataDirFlag.Name)
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return "", errors.Wrapf(err, "create data dir [%v]", dataDir)
	}
	return dataDir, nil
}

// makeInstanceDir returns a directory dedicated to the given genesis.
func makeInstanceDir(ctx *cli.Context, gene *genesis.Genesis) (string, error) {
	dataDir, err := makeDataDir(ctx)
	if err != nil {
		return "", err
	}
	instanceDir := filepath.Join(dataDir, fmt.Sprintf("instance-%x", gene.ID().Bytes()[24:]))
	if err := os.MkdirAll(instanceDir, 0o700); err != nil {
		return "", errors.Wrapf(err, "create instance dir [%v]", instanceDir)
	}
	return instanceDir, nil
}

func openMainDB(instanceDir string) (*lvldb.LevelDB, error) {
	path := filepath.Join(instanceDir, "main.db")
	db, err := lvldb.New(path, lvldb.Options{})
	if err != nil {
		return nil, errors.WithMessagef(err, "open main database [%v]", path)
	}
	return db, nil
}

func openLogDB(instanceDir string) (*logdb.LogDB, error) {
	path := filepath.Join(instanceDir, "logs.db")
	db, err := logdb.New(path)
	if err != nil {
		return nil, errors.WithMessagef(err, "open log database [%v]", path)
	}
	return db, nil
}

// loadKey reads a hex private key from keyFile, or treats the value itself as the hex key.
func loadKey(keyFile string) (*ecdsa.PrivateKey, error) {
	if keyFile == "" {
		return nil, errors.New("private key required, use --" + keyFlag.Name)
	}
	key, err := crypto.LoadECDSA(keyFile)
	if err == nil {
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load private key")
	}
	key, err = crypto.HexToECDSA(strings.TrimPrefix(keyFile, "0x"))
	if err != nil {
		return nil, errors.Wrap(err, "decode private key")
	}
	return key, nil
}

// parseAmount converts a decimal token amount to base units.
func parseAmount(s string, decimals uint8) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("amount required")
	}
	whole, frac, _ := strings.Cut(s, ".")
	if len(frac) > int(decimals) {
		return nil, fmt.Errorf("amount %v has more than %d decimals", s, decimals)
	}
	digits := whole + frac + strings.Repeat("0", int(decimals)-len(frac))
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok || v.Sign() < 0 || strings.ContainsAny(digits, "+-") {
		return nil, fmt.Errorf("invalid amount %v", s)
	}
	return v, nil
}

// formatAmount renders base units as a decimal token amount.
func formatAmount(v *big.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}
	if decimals == 0 {
		return v.String()
	}
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(v, unit, new(big.Int))
	if frac.Sign() == 0 {
		return whole.String()
	}
	fs := frac.String()
	fs = strings.Repeat("0", int(decimals)-len(fs)) + fs
	return whole.String() + "." + strings.TrimRight(fs, "0")
}

func startAPIServer(addr string, handler http.Handler, timeout time.Duration) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen API addr [%v]", addr)
	}
	if timeout > 0 {
		handler = handleAPITimeout(handler, timeout)
	}
	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	var goes co.Goes
	goes.Go(func() {
		srv.Serve(listener)
	})
	return "http://" + listener.Addr().String() + "/", func() {
		srv.Close()
		goes.Wait()
	}, nil
}

// handleAPITimeout bounds every request but websocket upgrades with timeout.
func handleAPITimeout(h http.Handler, timeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
			h.ServeHTTP(w, r)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}

func startMetricsServer(addr string) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen metrics addr [%v]", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.HTTPHandler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	var goes co.Goes
	goes.Go(func() {
		srv.Serve(listener)
	})
	return "http://" + listener.Addr().String() + "/metrics", func() {
		srv.Close()
		goes.Wait()
	}, nil
}

// watchClockOffset queries server periodically and feeds the offset to h.
// Rewards accrue on the local clock, so a drifting clock is reported.
func watchClockOffset(ctx context.Context, server string, h *health.Health) error {
	check := func() {
		resp, err := ntp.Query(server)
		if err != nil {
			logger.Debug("failed to access NTP", "server", server, "err", err)
			return
		}
		h.ClockOffset(resp.ClockOffset)
		offset := resp.ClockOffset
		if offset < 0 {
			offset = -offset
		}
		if offset > defaultMaxClockOffset {
			logger.Warn("clock offset detected", "offset", resp.ClockOffset)
		}
	}

	check()
	ticker := time.NewTicker(clockCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			check()
		}
	}
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		logger.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}

func defaultDataDir() string {
	if home := homeDir(); home != "" {
		return filepath.Join(home, ".farm")
	}
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

func printStartupMessage(gene *genesis.Genesis, instanceDir, apiURL, metricsURL, adminURL string) {
	orDisabled := func(s string) string {
		if s == "" {
			return "disabled"
		}
		return s
	}
	fmt.Printf(`Starting %v
    Network      [ %v %v ]
    Instance dir [ %v ]
    API portal   [ %v ]
    Metrics      [ %v ]
    Admin        [ %v ]
`,
		fullVersion(),
		gene.ID(), gene.Name(),
		instanceDir,
		apiURL,
		orDisabled(metricsURL),
		orDisabled(adminURL),
	)
}

func addressOf(key *ecdsa.PrivateKey) thor.Address {
	return thor.Address(crypto.PubkeyToAddress(key.PublicKey))
}
