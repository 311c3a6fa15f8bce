// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package loglevel

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelHandler(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		body             any
		expectedStatus   int
		expectedLevel    string
		expectedErrorMsg string
	}{
		{
			name:           "Valid POST input - set level to DEBUG",
			method:         http.MethodPost,
			body:           map[string]string{"level": "debug"},
			expectedStatus: http.StatusOK,
			expectedLevel:  "debug",
		},
		{
			name:           "Valid POST input - set level to TRACE",
			method:         http.MethodPost,
			body:           map[string]string{"level": "trace"},
			expectedStatus: http.StatusOK,
			expectedLevel:  "trace",
		},
		{
			name:             "Invalid POST input - invalid level",
			method:           http.MethodPost,
			body:             map[string]string{"level": "invalid_body"},
			expectedStatus:   http.StatusBadRequest,
			expectedErrorMsg: "Invalid verbosity level",
		},
		{
			name:           "Invalid POST input - unknown field",
			method:         http.MethodPost,
			body:           map[string]string{"verbosity": "debug"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "GET request - get current level INFO",
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
			expectedLevel:  "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logLevel slog.LevelVar
			logLevel.Set(slog.LevelInfo)

			var body []byte
			if tt.body != nil {
				var err error
				body, err = json.Marshal(tt.body)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(tt.method, "/admin/loglevel", bytes.NewReader(body))
			rr := httptest.NewRecorder()
			router := mux.NewRouter()
			New(&logLevel).Mount(router, "/admin/loglevel")
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedLevel != "" {
				var response Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
				assert.Equal(t, tt.expectedLevel, response.CurrentLevel)
			} else if tt.expectedErrorMsg != "" {
				assert.Equal(t, tt.expectedErrorMsg, strings.Trim(rr.Body.String(), "\n"))
			}
		})
	}
}
