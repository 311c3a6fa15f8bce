// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/vechain/ncn/api/admin"
	"github.com/vechain/ncn/metrics"
)

// bodyLimit caps request bodies. A claim with a proof of 64 levels fits well within.
const bodyLimit = 64 * 1024

// serve runs srv on a new listener bound to addr, and returns the listen
// address with a func to stop it.
func serve(kind, addr string, srv *http.Server) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.Wrapf(err, "listen %s addr [%v]", kind, addr)
	}

	var goes sync.WaitGroup
	goes.Go(func() {
		srv.Serve(listener)
	})
	return listener.Addr().String(), func() {
		srv.Close()
		goes.Wait()
	}, nil
}

// StartAPIServer serves handler at addr. Requests taking longer than timeout
// are answered with 503, no timeout if zero.
func StartAPIServer(addr string, handler http.Handler, timeout time.Duration) (string, func(), error) {
	if timeout > 0 {
		handler = http.TimeoutHandler(handler, timeout, "request timeout")
	}
	handler = http.MaxBytesHandler(handler, bodyLimit)

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	host, stop, err := serve("API", addr, srv)
	if err != nil {
		return "", nil, err
	}
	return "http://" + host + "/", stop, nil
}

func StartAdminServer(addr string, logLevel *slog.LevelVar, apiLogs *atomic.Bool) (string, func(), error) {
	srv := &http.Server{Handler: admin.New(logLevel, apiLogs), ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	host, stop, err := serve("admin API", addr, srv)
	if err != nil {
		return "", nil, err
	}
	return "http://" + host + "/admin", stop, nil
}

func StartMetricsServer(addr string) (string, func(), error) {
	router := mux.NewRouter()
	router.PathPrefix("/metrics").Handler(metrics.HTTPHandler())
	handler := handlers.CompressHandler(router)

	srv := &http.Server{Handler: handler, ReadHeaderTimeout: time.Second, ReadTimeout: 5 * time.Second}
	host, stop, err := serve("metrics API", addr, srv)
	if err != nil {
		return "", nil, err
	}
	return "http://" + host + "/metrics", stop, nil
}
