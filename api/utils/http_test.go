// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapHandlerFunc(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"ok", nil, http.StatusOK, ""},
		{"bad request", BadRequest(errors.New("address: invalid")), http.StatusBadRequest, "address: invalid\n"},
		{"forbidden", Forbidden(errors.New("limit")), http.StatusForbidden, "limit\n"},
		{"not found", NotFound(errors.New("unknown token")), http.StatusNotFound, "unknown token\n"},
		{"wrapped", pkgerrors.WithMessage(BadRequest(errors.New("inner")), "outer"), http.StatusBadRequest, "inner\n"},
		{"no cause", HTTPError(nil, http.StatusTeapot), http.StatusTeapot, ""},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "boom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := WrapHandlerFunc(func(http.ResponseWriter, *http.Request) error { return tt.err })
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusCode(BadRequest(errors.New("x"))))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("x")))
}

func TestParseJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	require.NoError(t, ParseJSON(strings.NewReader(`{"name":"farm"}`), &v))
	assert.Equal(t, "farm", v.Name)

	assert.Error(t, ParseJSON(strings.NewReader(`{"unknown":1}`), &v))
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteJSON(rec, M{"rate": 10}))
	assert.Equal(t, JSONContentType, rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"rate":10}`, rec.Body.String())
}
