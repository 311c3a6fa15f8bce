// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package httpserver

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/ncn/metrics"
)

func get(t *testing.T, url string) (string, int) {
	res, err := http.Get(url) // nolint:gosec
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(body), res.StatusCode
}

func TestAPIServer(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow" {
			time.Sleep(200 * time.Millisecond)
		}
		if _, err := io.ReadAll(r.Body); err != nil {
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		}
		w.Write([]byte("ok"))
	})

	url, stop, err := StartAPIServer("localhost:0", handler, 50*time.Millisecond)
	require.NoError(t, err)
	defer stop()
	assert.True(t, strings.HasPrefix(url, "http://127.0.0.1:"))

	body, code := get(t, url+"fast")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body)

	_, code = get(t, url+"slow")
	assert.Equal(t, http.StatusServiceUnavailable, code)

	res, err := http.Post(url, "application/json", bytes.NewReader(make([]byte, bodyLimit+1)))
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)
}

func TestAdminServer(t *testing.T) {
	level := &slog.LevelVar{}
	url, stop, err := StartAdminServer("localhost:0", level, &atomic.Bool{})
	require.NoError(t, err)
	defer stop()

	body, code := get(t, url+"/loglevel")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"info"`)
}

func TestMetricsServer(t *testing.T) {
	metrics.InitializePrometheusMetrics()
	metrics.Counter("server_test_total").Add(1)

	url, stop, err := StartMetricsServer("localhost:0")
	require.NoError(t, err)
	defer stop()

	body, code := get(t, url)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "ncn_server_test_total 1")
}

func TestListenError(t *testing.T) {
	_, _, err := StartMetricsServer("not an addr")
	assert.Error(t, err)
}
