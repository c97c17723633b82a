// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	dataDirFlag = cli.StringFlag{
		Name:   "data-dir",
		Value:  defaultDataDir(),
		Usage:  "directory for the state and event databases",
		EnvVar: "FARM_DATA_DIR",
	}
	genesisFlag = cli.StringFlag{
		Name:   "genesis",
		Usage:  "path to a yaml genesis file, the dev network genesis is used if not set",
		EnvVar: "FARM_GENESIS",
	}
	persistFlag = cli.BoolFlag{
		Name:   "persist",
		Usage:  "store state and events in data-dir instead of memory",
		EnvVar: "FARM_PERSIST",
	}
	apiAddrFlag = cli.StringFlag{
		Name:   "api-addr",
		Value:  "localhost:8669",
		Usage:  "API service listening address",
		EnvVar: "FARM_API_ADDR",
	}
	apiCorsFlag = cli.StringFlag{
		Name:   "api-cors",
		Value:  "",
		Usage:  "comma separated list of domains from which to accept cross origin requests to API",
		EnvVar: "FARM_API_CORS",
	}
	apiTimeoutFlag = cli.Uint64Flag{
		Name:   "api-timeout",
		Value:  10000,
		Usage:  "API request timeout value in milliseconds",
		EnvVar: "FARM_API_TIMEOUT",
	}
	apiLogsLimitFlag = cli.Uint64Flag{
		Name:   "api-logs-limit",
		Value:  1000,
		Usage:  "limit the number of logs returned by /logs API",
		EnvVar: "FARM_API_LOGS_LIMIT",
	}
	apiSlowQueriesThresholdFlag = cli.Uint64Flag{
		Name:   "api-slow-queries-threshold",
		Usage:  "all queries with execution time(ms) above threshold will be logged",
		EnvVar: "FARM_API_SLOW_QUERIES_THRESHOLD",
	}
	apiLog5xxErrorsFlag = cli.BoolFlag{
		Name:   "api-log-5xx-errors",
		Usage:  "log all requests answered with a 5xx status",
		EnvVar: "FARM_API_LOG_5XX_ERRORS",
	}
	enableAPILogsFlag = cli.BoolFlag{
		Name:   "enable-api-logs",
		Usage:  "enables API requests logging",
		EnvVar: "FARM_ENABLE_API_LOGS",
	}
	pprofFlag = cli.BoolFlag{
		Name:   "pprof",
		Usage:  "turn on go-pprof",
		EnvVar: "FARM_PPROF",
	}
	verbosityFlag = cli.UintFlag{
		Name:   "verbosity",
		Value:  3,
		Usage:  "log verbosity (0-9)",
		EnvVar: "FARM_VERBOSITY",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:   "log-json",
		Usage:  "output logs in JSON format",
		EnvVar: "FARM_LOG_JSON",
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:   "enable-metrics",
		Usage:  "enables metrics collection",
		EnvVar: "FARM_ENABLE_METRICS",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:   "metrics-addr",
		Value:  "localhost:2112",
		Usage:  "metrics service listening address",
		EnvVar: "FARM_METRICS_ADDR",
	}
	adminAddrFlag = cli.StringFlag{
		Name:   "admin-addr",
		Usage:  "admin service listening address, disabled if not set",
		EnvVar: "FARM_ADMIN_ADDR",
	}
	ntpServerFlag = cli.StringFlag{
		Name:   "ntp-server",
		Value:  "pool.ntp.org",
		Usage:  "NTP server used to check the local clock, empty to disable",
		EnvVar: "FARM_NTP_SERVER",
	}
	maxClockOffsetFlag = cli.DurationFlag{
		Name:   "max-clock-offset",
		Value:  defaultMaxClockOffset,
		Usage:  "clock offset beyond which the node reports unhealthy",
		EnvVar: "FARM_MAX_CLOCK_OFFSET",
	}

	// client flags
	nodeFlag = cli.StringFlag{
		Name:   "node",
		Value:  "http://localhost:8669",
		Usage:  "API URL of the farm node",
		EnvVar: "FARM_NODE",
	}
	keyFlag = cli.StringFlag{
		Name:   "key",
		Usage:  "hex private key, or path to a file holding one",
		EnvVar: "FARM_KEY",
	}
	amountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "token amount, decimals allowed (e.g. 1.5)",
	}
	spenderFlag = cli.StringFlag{
		Name:  "spender",
		Usage: "address allowed to spend, the farming contract if not set",
	}
	tokenFlag = cli.StringFlag{
		Name:  "token",
		Value: "stake",
		Usage: "token to use: stake, reward or a token address",
	}
	rateFlag = cli.Uint64Flag{
		Name:  "rate",
		Usage: "reward rate in percent per accrual interval",
	}
	periodFlag = cli.Uint64Flag{
		Name:  "period",
		Usage: "minimum hold period in seconds",
	}
	addressFlag = cli.StringFlag{
		Name:  "address",
		Usage: "account address, the key's address if not set",
	}
	eventNameFlag = cli.StringFlag{
		Name:  "name",
		Usage: "only show events of this name",
	}
)
