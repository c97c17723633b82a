// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package transactions

import "github.com/vechain/farm/metrics"

var metricTransactionOp = metrics.LazyLoadCounterVec("api_transaction_op_count", []string{"op"})
