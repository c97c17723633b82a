// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package farming

import (
	"errors"
	"fmt"

	"github.com/vechain/farm/builtin/reverts"
)

// Rejections of farming operations. Every one of them leaves the state untouched.
var (
	ErrInvalidAmount        = reverts.NewRequireError("Provide more than zero")
	ErrPositionAlreadyOpen  = reverts.NewRequireError("Unstake balances first")
	ErrNoActivePosition     = reverts.NewRequireError("Nothing staked")
	ErrNoRewardYet          = reverts.NewRequireError("No rewards yet")
	ErrHoldPeriodNotElapsed = reverts.NewRequireError("Can't unstake yet")
	ErrUnauthorized         = reverts.NewRequireError("You're not the owner")
)

// LedgerError is a failed call to the stake or reward ledger.
type LedgerError struct {
	// Op is the ledger method that failed, e.g. "transferFrom".
	Op    string
	Cause error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Cause)
}

func (e *LedgerError) Unwrap() error {
	return e.Cause
}

// IsLedgerFailure reports whether err was raised by an external ledger call.
func IsLedgerFailure(err error) bool {
	var le *LedgerError
	return errors.As(err, &le)
}

func ledgerError(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &LedgerError{Op: op, Cause: cause}
}
