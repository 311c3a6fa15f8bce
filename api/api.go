// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/vechain/ncn/api/ballots"
	"github.com/vechain/ncn/api/claims"
	"github.com/vechain/ncn/api/middleware"
	"github.com/vechain/ncn/api/roots"
	"github.com/vechain/ncn/log"
	"github.com/vechain/ncn/network"
)

var logger = log.WithContext("pkg", "api")

type Options struct {
	AllowedOrigins string
	EnableMetrics  bool
	// EnableReqLogger toggles request logging, also at runtime through the admin API.
	EnableReqLogger      *atomic.Bool
	SlowQueriesThreshold time.Duration
	Log5xxErrors         bool
}

// New return api router
func New(n *network.Network, opts Options) http.HandlerFunc {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	ballots.New(n).
		Mount(router, "")
	roots.New(n).
		Mount(router, "/rewards")
	claims.New(n).
		Mount(router, "/claims")

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
		handlers.AllowedHeaders([]string{"content-type", middleware.RequestIDHeader}),
		handlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	)(handler)

	return handler.ServeHTTP
}
