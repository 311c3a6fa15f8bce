// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	m := defaultNoopMetrics()
	assert.Nil(t, m.GetOrCreateHandler())

	// must not panic
	m.GetOrCreateCountMeter("c").Add(1)
	m.GetOrCreateGaugeMeter("g").Set(1)
	m.GetOrCreateCountVecMeter("cv", []string{"a"}).AddWithLabel(1, map[string]string{"a": "b"})
	m.GetOrCreateHistogramVecMeter("h", []string{"a"}, nil).ObserveWithLabels(1, map[string]string{"a": "b"})
}

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()
	assert.NotNil(t, HTTPHandler())

	Counter("test_votes").Add(3)
	Counter("test_votes").Add(2)
	CounterVec("test_claims", []string{"result"}).AddWithLabel(1, map[string]string{"result": "ok"})
	Gauge("test_epoch").Set(7)
	HistogramVec("test_duration", []string{"path"}, BucketHTTPReqs).ObserveWithLabels(12, map[string]string{"path": "ballot"})

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				values[mf.GetName()] += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, float64(5), values["ncn_test_votes"])
	assert.Equal(t, float64(1), values["ncn_test_claims"])
	assert.Equal(t, float64(7), values["ncn_test_epoch"])
}

func TestLazyLoad(t *testing.T) {
	calls := 0
	f := LazyLoad(func() int {
		calls++
		return calls
	})
	assert.Equal(t, 1, f())
	assert.Equal(t, 1, f())
	assert.Equal(t, 1, calls)
}
