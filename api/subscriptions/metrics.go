// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package subscriptions

import "github.com/vechain/farm/metrics"

var (
	metricActiveSubscriptions = metrics.LazyLoadGaugeVec("api_active_subscriptions", []string{"type"})
	metricDroppedReceipts     = metrics.LazyLoadCounter("api_subscription_dropped_receipts")
)
