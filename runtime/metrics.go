// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import (
	"github.com/vechain/farm/metrics"
)

var (
	metricOpCount    = metrics.LazyLoadCounterVec("runtime_op_count", []string{"op", "outcome"})
	metricOpDuration = metrics.LazyLoadHistogramVec("runtime_op_duration_ms", []string{"op"}, metrics.BucketOps)
)
