// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/farm/api/events"
	"github.com/vechain/farm/api/utils/types"
	"github.com/vechain/farm/builtin"
	"github.com/vechain/farm/farmclient"
	"github.com/vechain/farm/thor"
)

// out is where client commands print their results.
var out io.Writer = os.Stdout

var clientCommands = []cli.Command{
	{
		Name:   "stake",
		Usage:  "approve and stake an amount of the stake token",
		Flags:  []cli.Flag{nodeFlag, keyFlag, amountFlag},
		Action: stakeAction,
	},
	{
		Name:   "claim",
		Usage:  "claim the accrued reward",
		Flags:  []cli.Flag{nodeFlag, keyFlag},
		Action: claimAction,
	},
	{
		Name:   "unstake",
		Usage:  "withdraw the whole stake",
		Flags:  []cli.Flag{nodeFlag, keyFlag},
		Action: unstakeAction,
	},
	{
		Name:   "approve",
		Usage:  "approve a spender for an amount of a token",
		Flags:  []cli.Flag{nodeFlag, keyFlag, tokenFlag, spenderFlag, amountFlag},
		Action: approveAction,
	},
	{
		Name:   "set-reward-rate",
		Usage:  "set the reward rate (admin only)",
		Flags:  []cli.Flag{nodeFlag, keyFlag, rateFlag},
		Action: setRewardRateAction,
	},
	{
		Name:   "set-minimum-hold",
		Usage:  "set the minimum hold period (admin only)",
		Flags:  []cli.Flag{nodeFlag, keyFlag, periodFlag},
		Action: setMinimumHoldAction,
	},
	{
		Name:   "position",
		Usage:  "show the position and pending reward of an account",
		Flags:  []cli.Flag{nodeFlag, keyFlag, addressFlag},
		Action: positionAction,
	},
	{
		Name:   "balance",
		Usage:  "show the token balance of an account",
		Flags:  []cli.Flag{nodeFlag, keyFlag, addressFlag, tokenFlag},
		Action: balanceAction,
	},
	{
		Name:   "config",
		Usage:  "show the farming configuration",
		Flags:  []cli.Flag{nodeFlag},
		Action: configAction,
	},
	{
		Name:   "watch",
		Usage:  "stream farming and token events",
		Flags:  []cli.Flag{nodeFlag, eventNameFlag},
		Action: watchAction,
	},
}

func newClient(ctx *cli.Context) *farmclient.Client {
	return farmclient.New(ctx.String(nodeFlag.Name))
}

func tokenDecimals(c *farmclient.Client, token string) (uint8, error) {
	t, err := c.Token(token)
	if err != nil {
		return 0, err
	}
	return t.Decimals, nil
}

func printReceipt(r *types.Receipt) error {
	fmt.Fprintf(out, "tx %v (%v) by %v at %v\n", r.TxID, r.Op, r.Origin, r.Time)
	for _, ev := range r.Events {
		fmt.Fprintf(out, "    %-12v subject=%v counterparty=%v amount=%v\n",
			ev.Name, ev.Subject, ev.Counterparty, (*big.Int)(ev.Amount))
	}
	if r.Reverted {
		return fmt.Errorf("reverted: %v", r.RevertReason)
	}
	return nil
}

func stakeAction(ctx *cli.Context) error {
	key, err := loadKey(ctx.String(keyFlag.Name))
	if err != nil {
		return err
	}
	c := newClient(ctx)
	decimals, err := tokenDecimals(c, farmclient.StakeToken)
	if err != nil {
		return err
	}
	amount, err := parseAmount(ctx.String(amountFlag.Name), decimals)
	if err != nil {
		return err
	}
	r, err := c.Stake(key, amount)
	if err != nil {
		return err
	}
	return printReceipt(r)
}

func claimAction(ctx *cli.Context) error {
	key, err := loadKey(ctx.String(keyFlag.Name))
	if err != nil {
		return err
	}
	r, err := newClient(ctx).Claim(key)
	if err != nil {
		return err
	}
	return printReceipt(r)
}

func unstakeAction(ctx *cli.Context) error {
	key, err := loadKey(ctx.String(keyFlag.Name))
	if err != nil {
		return err
	}
	r, err := newClient(ctx).Unstake(key)
	if err != nil {
		return err
	}
	return printReceipt(r)
}

func approveAction(ctx *cli.Context) error {
	key, err := loadKey(ctx.String(keyFlag.Name))
	if err != nil {
		return err
	}
	c := newClient(ctx)
	token, err := c.Token(ctx.String(tokenFlag.Name))
	if err != nil {
		return err
	}
	spender := builtin.Farming.Address
	if s := ctx.String(spenderFlag.Name); s != "" {
		if spender, err = thor.ParseAddress(s); err != nil {
			return errors.WithMessage(err, "spender")
		}
	}
	amount, err := parseAmount(ctx.String(amountFlag.Name), token.Decimals)
	if err != nil {
		return err
	}
	r, err := c.Approve(key, token.Address, spender, amount)
	if err != nil {
		return err
	}
	return printReceipt(r)
}

func setRewardRateAction(ctx *cli.Context) error {
	if !ctx.IsSet(rateFlag.Name) {
		return errors.New("rate required, use --" + rateFlag.Name)
	}
	key, err := loadKey(ctx.String(keyFlag.Name))
	if err != nil {
		return err
	}
	r, err := newClient(ctx).SetRewardRate(key, ctx.Uint64(rateFlag.Name))
	if err != nil {
		return err
	}
	return printReceipt(r)
}

func setMinimumHoldAction(ctx *cli.Context) error {
	if !ctx.IsSet(periodFlag.Name) {
		return errors.New("period required, use --" + periodFlag.Name)
	}
	key, err := loadKey(ctx.String(keyFlag.Name))
	if err != nil {
		return err
	}
	r, err := newClient(ctx).SetMinimumHoldPeriod(key, ctx.Uint64(periodFlag.Name))
	if err != nil {
		return err
	}
	return printReceipt(r)
}

// accountAddress resolves --address, falling back to the address of --key.
func accountAddress(ctx *cli.Context) (thor.Address, error) {
	if s := ctx.String(addressFlag.Name); s != "" {
		addr, err := thor.ParseAddress(s)
		return addr, errors.WithMessage(err, "address")
	}
	key, err := loadKey(ctx.String(keyFlag.Name))
	if err != nil {
		return thor.Address{}, errors.WithMessage(err, "address or key required")
	}
	return addressOf(key), nil
}

func positionAction(ctx *cli.Context) error {
	addr, err := accountAddress(ctx)
	if err != nil {
		return err
	}
	c := newClient(ctx)
	pos, err := c.Position(&addr)
	if err != nil {
		return err
	}
	stakeDecimals, err := tokenDecimals(c, farmclient.StakeToken)
	if err != nil {
		return err
	}
	rewardDecimals, err := tokenDecimals(c, farmclient.RewardToken)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, `Position of %v
    Staked         [ %v ]
    Since          [ %v ]
    Held for       [ %vs ]
    Claims         [ %v ]
    Can unstake    [ %v ]
    Pending reward [ %v ]
`,
		addr,
		formatAmount((*big.Int)(pos.Amount), stakeDecimals),
		pos.StartTime,
		pos.HeldFor,
		pos.ClaimCount,
		pos.CanUnstake,
		formatAmount((*big.Int)(pos.PendingReward), rewardDecimals),
	)
	return nil
}

func balanceAction(ctx *cli.Context) error {
	addr, err := accountAddress(ctx)
	if err != nil {
		return err
	}
	c := newClient(ctx)
	token, err := c.Token(ctx.String(tokenFlag.Name))
	if err != nil {
		return err
	}
	bal, err := c.Balance(token.Address.String(), &addr)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%v %v\n", formatAmount(bal, token.Decimals), token.Symbol)
	return nil
}

func configAction(ctx *cli.Context) error {
	c := newClient(ctx)
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	stakeDecimals, err := tokenDecimals(c, farmclient.StakeToken)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, `Farming
    Admin               [ %v ]
    Stake token         [ %v ]
    Reward token        [ %v ]
    Reward rate         [ %v%% per %vs ]
    Minimum hold period [ %vs ]
    Total staked        [ %v ]
`,
		cfg.Admin,
		cfg.StakeToken,
		cfg.RewardToken,
		cfg.RewardRate, cfg.AccrualInterval,
		cfg.MinimumHoldPeriod,
		formatAmount((*big.Int)(cfg.TotalStaked), stakeDecimals),
	)
	return nil
}

func watchAction(ctx *cli.Context) error {
	c, err := farmclient.NewWithWS(ctx.String(nodeFlag.Name))
	if err != nil {
		return err
	}
	sub, err := c.SubscribeEvents(&events.EventCriteria{Name: ctx.String(eventNameFlag.Name)})
	if err != nil {
		return err
	}
	defer sub.Close()

	exit := handleExitSignal()
	for {
		select {
		case <-exit.Done():
			return nil
		case msg, ok := <-sub.C:
			if !ok {
				return nil
			}
			if msg.Error != nil {
				return msg.Error
			}
			ev := msg.Data
			fmt.Fprintf(out, "%v %-12v subject=%v counterparty=%v amount=%v tx=%v\n",
				ev.Meta.Time, ev.Name, ev.Subject, ev.Counterparty, (*big.Int)(ev.Amount), ev.Meta.TxID)
		}
	}
}
