// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package thor

// Default reward parameters applied at genesis.
// With these values 10 stake units held for one accrual interval earn one reward unit,
// before rescaling between the decimals of the two assets.
const (
	InitialRewardRate        uint64 = 10  // percent of the staked amount per accrual interval
	InitialMinimumHoldPeriod uint64 = 600 // seconds a position must be held before it can be unstaked
	InitialAccrualInterval   uint64 = 300 // seconds in one accrual interval

	// RewardRateDenominator scales RewardRate into a fraction.
	RewardRateDenominator uint64 = 100
)

// Default token metadata of the dev network.
const (
	DefaultStakeTokenDecimals  uint8 = 18
	DefaultRewardTokenDecimals uint8 = 8
)

// Role identifiers used by the token ledger.
var (
	RoleAdmin  = Keccak256([]byte("ADMIN"))
	RoleMinter = Keccak256([]byte("MINTER"))
)
