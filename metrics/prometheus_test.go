// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	stakes := Counter("stakes")
	ops := CounterVec("ops", []string{"op"})
	latency := Histogram("latency_ms", BucketOps)
	latencyVec := HistogramVec("latency_vec_ms", []string{"op"}, BucketOps)
	positions := Gauge("positions")
	supply := GaugeVec("supply", []string{"token"})

	n := rand.N(50) + 2
	total := 0
	for i := range n {
		op := "stake"
		if i%2 == 1 {
			op = "claim"
		}
		stakes.Add(1)
		ops.AddWithLabel(1, map[string]string{"op": op})
		latency.Observe(int64(i))
		latencyVec.ObserveWithLabels(int64(i), map[string]string{"op": op})
		positions.Add(1)
		supply.AddWithLabel(int64(i), map[string]string{"token": strconv.Itoa(i % 2)})
		total += i
	}
	supply.SetWithLabel(7, map[string]string{"token": "0"})

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	got := make(map[string]*dto.MetricFamily)
	for _, mf := range families {
		got[mf.GetName()] = mf
	}

	require.Equal(t, float64(n), got["farm_metrics_stakes"].Metric[0].GetCounter().GetValue())
	require.Equal(t, float64(n), got["farm_metrics_ops"].Metric[0].GetCounter().GetValue()+
		got["farm_metrics_ops"].Metric[1].GetCounter().GetValue())
	require.Equal(t, float64(total), got["farm_metrics_latency_ms"].Metric[0].GetHistogram().GetSampleSum())
	require.Equal(t, float64(total), got["farm_metrics_latency_vec_ms"].Metric[0].GetHistogram().GetSampleSum()+
		got["farm_metrics_latency_vec_ms"].Metric[1].GetHistogram().GetSampleSum())
	require.Equal(t, float64(n), got["farm_metrics_positions"].Metric[0].GetGauge().GetValue())

	for _, m := range got["farm_metrics_supply"].Metric {
		if m.GetLabel()[0].GetValue() == "0" {
			require.Equal(t, float64(7), m.GetGauge().GetValue())
		}
	}
}

func TestLazyLoading(t *testing.T) {
	metrics = defaultNoopMetrics() // make sure it starts in the default state of noopMeter

	for _, a := range []any{
		Gauge("noopGauge"),
		GaugeVec("noopGauge", nil),
		Counter("noopCounter"),
		CounterVec("noopCounter", nil),
		Histogram("noopHist", nil),
		HistogramVec("noopHist", nil, nil),
	} {
		require.IsType(t, &noopMeters{}, a)
	}

	lazyGauge := LazyLoadGauge("lazyGauge")
	lazyGaugeVec := LazyLoadGaugeVec("lazyGaugeVec", nil)
	lazyCounter := LazyLoadCounter("lazyCounter")
	lazyCounterVec := LazyLoadCounterVec("lazyCounterVec", nil)
	lazyHistogram := LazyLoadHistogram("lazyHistogram", nil)
	lazyHistogramVec := LazyLoadHistogramVec("lazyHistogramVec", nil, nil)

	// after initialization, newly created metrics become of the prometheus type
	InitializePrometheusMetrics()

	require.IsType(t, &promGaugeMeter{}, lazyGauge())
	require.IsType(t, &promGaugeVecMeter{}, lazyGaugeVec())
	require.IsType(t, &promCountMeter{}, lazyCounter())
	require.IsType(t, &promCountVecMeter{}, lazyCounterVec())
	require.IsType(t, &promHistogramMeter{}, lazyHistogram())
	require.IsType(t, &promHistogramVecMeter{}, lazyHistogramVec())
}
