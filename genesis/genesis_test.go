// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis_test

import (
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/farm/builtin"
	"github.com/vechain/farm/genesis"
	"github.com/vechain/farm/lvldb"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
)

const customYAML = `
launchTime: 1700000000
admin: "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"
stakeToken:
  name: LP Token
  symbol: LP
  decimals: 18
rewardToken:
  name: AIR
  symbol: AIR
  decimals: 8
farming:
  rewardRate: 25
  minimumHoldPeriod: 0
  accrualInterval: 60
accounts:
  - address: "0xd3ae78222beadb038203be21ed5ce7c9b1bff602"
    balance: "1000000000000000000000"
  - address: "0x733b7269443c70de16bbf9b0615307884bcc5636"
    balance: "0x3635c9adc5dea00000"
`

func TestDevnet(t *testing.T) {
	g := genesis.NewDevnet()
	assert.Equal(t, "devnet", g.Name())
	assert.Equal(t, g.ID(), genesis.NewDevnet().ID())

	st := state.New(lvldb.NewMem())
	require.NoError(t, g.Setup(st))

	f := builtin.Farming.WithState(st, nil)
	cfg, err := f.Config()
	require.NoError(t, err)
	assert.Equal(t, genesis.DevAccounts()[0].Address, cfg.Admin)
	assert.Equal(t, builtin.StakeToken.Address, cfg.StakeToken)
	assert.Equal(t, builtin.RewardToken.Address, cfg.RewardToken)
	assert.Equal(t, thor.InitialRewardRate, cfg.RewardRate)
	assert.Equal(t, thor.InitialMinimumHoldPeriod, cfg.MinimumHoldPeriod)
	assert.Equal(t, thor.InitialAccrualInterval, cfg.AccrualInterval)

	stake := builtin.StakeToken.WithState(st, nil)
	md, err := stake.Metadata()
	require.NoError(t, err)
	assert.Equal(t, "UNI-V2", md.Symbol)
	assert.Equal(t, uint8(18), md.Decimals)

	want, _ := new(big.Int).SetString("1000000000000000000000000", 10)
	for _, a := range genesis.DevAccounts() {
		bal, err := stake.BalanceOf(a.Address)
		require.NoError(t, err)
		assert.Equal(t, want.String(), bal.String())
	}

	reward := builtin.RewardToken.WithState(st, nil)
	ok, err := reward.HasRole(thor.RoleMinter, builtin.Farming.Address)
	require.NoError(t, err)
	assert.True(t, ok)

	supply, err := reward.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, 0, supply.Sign())

	// building twice is a no-op
	require.NoError(t, g.Setup(st))
}

func TestGenesisMismatch(t *testing.T) {
	st := state.New(lvldb.NewMem())
	require.NoError(t, genesis.NewDevnet().Setup(st))

	cfg, err := genesis.ParseConfig([]byte(customYAML))
	require.NoError(t, err)
	custom, err := genesis.NewCustomNet(cfg)
	require.NoError(t, err)

	err = custom.Setup(st)
	assert.True(t, errors.Is(err, genesis.ErrMismatch))
}

func TestCustomNet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(customYAML), 0o600))

	cfg, err := genesis.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(1700000000), cfg.LaunchTime)
	assert.Equal(t, thor.MustParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"), cfg.Admin)
	require.Len(t, cfg.Accounts, 2)

	g, err := genesis.NewCustomNet(cfg)
	require.NoError(t, err)
	assert.Equal(t, "customnet", g.Name())

	st := state.New(lvldb.NewMem())
	require.NoError(t, g.Setup(st))

	fc, err := builtin.Farming.WithState(st, nil).Config()
	require.NoError(t, err)
	assert.Equal(t, uint64(25), fc.RewardRate)
	assert.Equal(t, uint64(0), fc.MinimumHoldPeriod)
	assert.Equal(t, uint64(60), fc.AccrualInterval)

	stake := builtin.StakeToken.WithState(st, nil)
	for _, a := range cfg.Accounts {
		bal, err := stake.BalanceOf(a.Address)
		require.NoError(t, err)
		assert.Equal(t, "1000000000000000000000", bal.String())
	}
}

func TestInvalidConfig(t *testing.T) {
	_, err := genesis.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = genesis.ParseConfig([]byte("admin: [1, 2"))
	assert.Error(t, err)

	_, err = genesis.NewCustomNet(&genesis.Config{})
	assert.Error(t, err)

	cfg := genesis.DevConfig()
	cfg.Accounts[0].Balance = nil
	_, err = genesis.NewCustomNet(cfg)
	assert.Error(t, err)
}
