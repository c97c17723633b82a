// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vechain/farm/builtin"
	"github.com/vechain/farm/builtin/farming"
	"github.com/vechain/farm/builtin/token"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/xenv"
)

// Config is user customized genesis.
type Config struct {
	LaunchTime  uint64        `yaml:"launchTime"`
	Admin       thor.Address  `yaml:"admin"`
	StakeToken  TokenConfig   `yaml:"stakeToken"`
	RewardToken TokenConfig   `yaml:"rewardToken"`
	Farming     FarmingConfig `yaml:"farming"`
	Accounts    []Account     `yaml:"accounts"`
}

// TokenConfig describes a token deployed at genesis.
type TokenConfig struct {
	Name     string `yaml:"name"`
	Symbol   string `yaml:"symbol"`
	Decimals uint8  `yaml:"decimals"`
}

// FarmingConfig holds the reward parameters. Zero values fall back to the defaults.
type FarmingConfig struct {
	RewardRate        *uint64 `yaml:"rewardRate"`
	MinimumHoldPeriod *uint64 `yaml:"minimumHoldPeriod"`
	AccrualInterval   uint64  `yaml:"accrualInterval"`
}

// Account is an initial stake token allocation.
type Account struct {
	Address thor.Address          `yaml:"address"`
	Balance *math.HexOrDecimal256 `yaml:"balance"`
}

// LoadConfig reads a genesis file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read genesis file")
	}
	return ParseConfig(data)
}

// ParseConfig decodes a yaml genesis.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode genesis")
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Admin.IsZero() {
		return errors.New("admin is required")
	}
	if c.StakeToken.Symbol == "" || c.RewardToken.Symbol == "" {
		return errors.New("token symbols are required")
	}
	for _, a := range c.Accounts {
		if a.Address.IsZero() {
			return errors.New("account address is required")
		}
		if a.Balance == nil || (*big.Int)(a.Balance).Sign() <= 0 {
			return errors.Errorf("account %v: balance must be positive", a.Address)
		}
	}
	return nil
}

func (c *Config) farmingConfig() *farming.Config {
	cfg := farming.DefaultConfig(c.Admin, builtin.StakeToken.Address, builtin.RewardToken.Address)
	if c.Farming.RewardRate != nil {
		cfg.RewardRate = *c.Farming.RewardRate
	}
	if c.Farming.MinimumHoldPeriod != nil {
		cfg.MinimumHoldPeriod = *c.Farming.MinimumHoldPeriod
	}
	if c.Farming.AccrualInterval != 0 {
		cfg.AccrualInterval = c.Farming.AccrualInterval
	}
	return cfg
}

// NewCustomNet create custom network genesis.
func NewCustomNet(cfg *Config) (*Genesis, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	builder := newBuilder(cfg)
	id, err := builder.ComputeID()
	if err != nil {
		return nil, err
	}
	return &Genesis{builder, id, "customnet"}, nil
}

func newBuilder(cfg *Config) *Builder {
	admin := cfg.Admin
	builder := new(Builder).
		Timestamp(cfg.LaunchTime).
		State(func(st *state.State) error {
			if err := builtin.StakeToken.WithState(st, nil).Initialize(&token.Metadata{
				Name:     cfg.StakeToken.Name,
				Symbol:   cfg.StakeToken.Symbol,
				Decimals: cfg.StakeToken.Decimals,
			}, admin); err != nil {
				return err
			}
			if err := builtin.RewardToken.WithState(st, nil).Initialize(&token.Metadata{
				Name:     cfg.RewardToken.Name,
				Symbol:   cfg.RewardToken.Symbol,
				Decimals: cfg.RewardToken.Decimals,
			}, admin); err != nil {
				return err
			}
			return builtin.Farming.WithState(st, nil).Initialize(cfg.farmingConfig())
		}).
		Call(func(env *xenv.Environment) error {
			// the farming contract mints rewards, the admin mints the initial stake supply
			reward, _ := env.Token(builtin.RewardToken.Address)
			if err := reward.GrantRole(env.Caller(), thor.RoleMinter, builtin.Farming.Address); err != nil {
				return err
			}
			stake, _ := env.Token(builtin.StakeToken.Address)
			return stake.GrantRole(env.Caller(), thor.RoleMinter, env.Caller())
		}, admin)

	for _, a := range cfg.Accounts {
		to, amount := a.Address, (*big.Int)(a.Balance)
		builder.Call(func(env *xenv.Environment) error {
			stake, _ := env.Token(builtin.StakeToken.Address)
			return stake.Mint(env.Caller(), to, amount)
		}, admin)
	}
	return builder
}
