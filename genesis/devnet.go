// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"crypto/ecdsa"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/vechain/farm/thor"
)

// DevAccount account for development.
type DevAccount struct {
	Address    thor.Address
	PrivateKey *ecdsa.PrivateKey
}

var devAccounts atomic.Value

// DevAccounts returns pre-alloced accounts for the dev network.
func DevAccounts() []DevAccount {
	if accs := devAccounts.Load(); accs != nil {
		return accs.([]DevAccount)
	}

	var accs []DevAccount
	privKeys := []string{
		"dce1443bd2ef0c2631adc1c67e5c93f13dc23a41c18b536effbbdcbcdb96fb65",
		"321d6443bc6177273b5abf54210fe806d451d6b7973bccc2384ef78bbcd0bf51",
		"2d7c882bad2a01105e36dda3646693bc1aaaa45b0ed63fb0ce23c060294f3af2",
		"593537225b037191d322c3b1df585fb1e5100811b71a6f7fc7e29cca1333483e",
		"ca7b25fc980c759df5f3ce17a3d881d6e19a38e651fc4315fc08917edab41058",
	}
	for _, str := range privKeys {
		pk, err := crypto.HexToECDSA(str)
		if err != nil {
			panic(err)
		}
		addr := crypto.PubkeyToAddress(pk.PublicKey)
		accs = append(accs, DevAccount{thor.Address(addr), pk})
	}
	devAccounts.Store(accs)
	return accs
}

// DevConfig returns the genesis config of the dev network. The first dev
// account is the admin, every dev account holds 1,000,000 stake units.
func DevConfig() *Config {
	launchTime := uint64(1526400000) // 'Wed May 16 2018 00:00:00 GMT+0800 (CST)'

	balance := new(big.Int).Mul(big.NewInt(1_000_000), new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(thor.DefaultStakeTokenDecimals)), nil))
	var accounts []Account
	for _, a := range DevAccounts() {
		accounts = append(accounts, Account{a.Address, (*math.HexOrDecimal256)(new(big.Int).Set(balance))})
	}

	return &Config{
		LaunchTime: launchTime,
		Admin:      DevAccounts()[0].Address,
		StakeToken: TokenConfig{
			Name:     "Uniswap V2",
			Symbol:   "UNI-V2",
			Decimals: thor.DefaultStakeTokenDecimals,
		},
		RewardToken: TokenConfig{
			Name:     "AIR",
			Symbol:   "AIR",
			Decimals: thor.DefaultRewardTokenDecimals,
		},
		Accounts: accounts,
	}
}

// NewDevnet create genesis for the dev network.
func NewDevnet() *Genesis {
	builder := newBuilder(DevConfig())
	id, err := builder.ComputeID()
	if err != nil {
		panic(err)
	}
	return &Genesis{builder, id, "devnet"}
}
