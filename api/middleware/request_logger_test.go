// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vechain/ncn/log"
)

// mockLogger is a simple logger implementation for testing purposes
type mockLogger struct {
	loggedData []any
}

func (m *mockLogger) With(_ ...any) log.Logger                    { return m }
func (m *mockLogger) Log(_ slog.Level, _ string, _ ...any)        {}
func (m *mockLogger) Trace(_ string, _ ...any)                    {}
func (m *mockLogger) Debug(_ string, _ ...any)                    {}
func (m *mockLogger) Error(_ string, _ ...any)                    {}
func (m *mockLogger) Crit(_ string, _ ...any)                     {}
func (m *mockLogger) Enabled(_ context.Context, _ slog.Level) bool { return true }
func (m *mockLogger) Handler() slog.Handler                       { return nil }

func (m *mockLogger) Info(_ string, ctx ...any) {
	m.loggedData = append(m.loggedData, ctx...)
}

func (m *mockLogger) Warn(_ string, ctx ...any) {
	m.loggedData = append(m.loggedData, ctx...)
}

func TestRequestLoggerHandler(t *testing.T) {
	tests := []struct {
		name                 string
		handler              http.HandlerFunc
		enabled              bool
		slowQueriesThreshold time.Duration
		log5xxErrors         bool
		shouldLog            bool
	}{
		{
			name:      "logging enabled",
			handler:   func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("OK")) },
			enabled:   true,
			shouldLog: true,
		},
		{
			name:      "logging disabled",
			handler:   func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("OK")) },
			shouldLog: false,
		},
		{
			name: "slow query over threshold",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(15 * time.Millisecond)
				w.Write([]byte("OK"))
			},
			slowQueriesThreshold: 10 * time.Millisecond,
			shouldLog:            true,
		},
		{
			name:                 "fast query under threshold",
			handler:              func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("OK")) },
			slowQueriesThreshold: time.Second,
			shouldLog:            false,
		},
		{
			name:         "5xx logged",
			handler:      func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			log5xxErrors: true,
			shouldLog:    true,
		},
		{
			name:         "4xx not logged",
			handler:      func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusConflict) },
			log5xxErrors: true,
			shouldLog:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &mockLogger{}
			var enabled atomic.Bool
			enabled.Store(tt.enabled)

			handler := RequestLoggerMiddleware(logger, &enabled, tt.slowQueriesThreshold, tt.log5xxErrors)(tt.handler)
			req := httptest.NewRequest(http.MethodPost, "/votes", strings.NewReader(`{"operator":"0x01"}`))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			reqID := rr.Header().Get(RequestIDHeader)
			assert.NotEmpty(t, reqID)

			if !tt.shouldLog {
				assert.Empty(t, logger.loggedData)
				return
			}
			assert.Contains(t, logger.loggedData, "requestID")
			assert.Contains(t, logger.loggedData, reqID)
			assert.Contains(t, logger.loggedData, `{"operator":"0x01"}`)
		})
	}
}

func TestRequestIDPropagated(t *testing.T) {
	var enabled atomic.Bool
	handler := RequestLoggerMiddleware(&mockLogger{}, &enabled, 0, false)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/ballot", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "abc", rr.Header().Get(RequestIDHeader))
}
