// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/farm/health"
)

func TestHealthAPI(t *testing.T) {
	var probeErr error
	h := health.New(func() error { return probeErr }, time.Second)

	router := mux.NewRouter()
	New(h).Mount(router, "/admin/health")
	ts := httptest.NewServer(router)
	defer ts.Close()

	get := func() (*health.Status, int) {
		res, err := http.Get(ts.URL + "/admin/health")
		require.NoError(t, err)
		defer res.Body.Close()
		var status health.Status
		require.NoError(t, json.NewDecoder(res.Body).Decode(&status))
		return &status, res.StatusCode
	}

	status, code := get()
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, status.Healthy)

	probeErr = errors.New("closed")
	status, code = get()
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, status.Healthy)
	assert.Equal(t, "closed", status.StorageError)
}
