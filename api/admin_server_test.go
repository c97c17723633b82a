// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vechain/farm/health"
)

func TestStartAdminServer(t *testing.T) {
	var level slog.LevelVar
	var apiLogs atomic.Bool
	h := health.New(nil, time.Second)

	url, stop, err := StartAdminServer("127.0.0.1:0", &level, h, &apiLogs)
	require.NoError(t, err)
	defer stop()

	res, err := http.Get(url + "/loglevel")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "info", body["currentLevel"])
}

func TestStartAdminServerBadAddr(t *testing.T) {
	_, _, err := StartAdminServer("bad-addr", nil, nil, nil)
	assert.Error(t, err)
}
