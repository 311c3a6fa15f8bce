// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package middleware

import (
	"bytes"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/pborman/uuid"

	"github.com/vechain/ncn/log"
)

// RequestIDHeader carries the id assigned to each request.
const RequestIDHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestLoggerMiddleware returns a middleware logging requests while enabled is
// set, requests slower than slowQueriesThreshold (if non-zero), and 5xx
// responses if log5xxErrors is set. Every response is tagged with a request id.
func RequestLoggerMiddleware(logger log.Logger, enabled *atomic.Bool, slowQueriesThreshold time.Duration, log5xxErrors bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.New()
			}
			w.Header().Set(RequestIDHeader, reqID)

			if !enabled.Load() && slowQueriesThreshold == 0 && !log5xxErrors {
				next.ServeHTTP(w, r)
				return
			}

			// the body can only be read once, so hand a copy to the next handler
			var bodyBytes []byte
			if r.Body != nil {
				var err error
				if bodyBytes, err = io.ReadAll(r.Body); err != nil {
					logger.Warn("unexpected body read error", "err", err, "requestID", reqID)
					http.Error(w, "bad request body", http.StatusBadRequest)
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r)
			duration := time.Since(start)

			slow := slowQueriesThreshold > 0 && duration > slowQueriesThreshold
			failed := log5xxErrors && rec.status >= http.StatusInternalServerError
			if !enabled.Load() && !slow && !failed {
				return
			}
			logger.Info("API Request",
				"requestID", reqID,
				"DurationMs", duration.Milliseconds(),
				"Timestamp", time.Now().Unix(),
				"URI", r.URL.String(),
				"Method", r.Method,
				"Status", rec.status,
				"Body", string(bodyBytes),
			)
		})
	}
}
