// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token implements a fungible token ledger with allowances and role gated minting.
package token

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/vechain/farm/builtin/reverts"
	"github.com/vechain/farm/builtin/solidity"
	"github.com/vechain/farm/log"
	"github.com/vechain/farm/state"
	"github.com/vechain/farm/thor"
	"github.com/vechain/farm/tx"
)

var logger = log.WithContext("pkg", "token")

var (
	ErrInsufficientBalance   = reverts.NewRequireError("insufficient balance")
	ErrInsufficientAllowance = reverts.NewRequireError("insufficient allowance")
	ErrMissingRole           = reverts.NewRequireError("missing role")
	ErrNegativeAmount        = reverts.NewRequireError("negative amount")
	ErrZeroAddress           = reverts.NewRequireError("zero address")
	ErrSupplyOverflow        = reverts.NewRequireError("supply overflow")
)

var (
	slotMetadata    = thor.BytesToBytes32([]byte("metadata"))
	slotTotalSupply = thor.BytesToBytes32([]byte("total-supply"))
	slotBalances    = thor.BytesToBytes32([]byte("balances"))
	slotAllowances  = thor.BytesToBytes32([]byte("allowances"))
	slotRoles       = thor.BytesToBytes32([]byte("roles"))
)

// Metadata describes a token.
type Metadata struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// Token is the native implementation of a token contract.
type Token struct {
	sctx        *solidity.Context
	emit        tx.Emitter
	totalSupply *solidity.Uint256
	balances    *solidity.Mapping[thor.Address, *big.Int]
	allowances  *solidity.Mapping[thor.Bytes32, *big.Int]
	roles       *solidity.Mapping[thor.Bytes32, bool]
}

// New creates a token bound to the contract address. emit may be nil.
func New(addr thor.Address, state *state.State, emit tx.Emitter) *Token {
	sctx := solidity.NewContext(addr, state)
	return &Token{
		sctx:        sctx,
		emit:        emit,
		totalSupply: solidity.NewUint256(sctx, slotTotalSupply),
		balances:    solidity.NewMapping[thor.Address, *big.Int](sctx, slotBalances),
		allowances:  solidity.NewMapping[thor.Bytes32, *big.Int](sctx, slotAllowances),
		roles:       solidity.NewMapping[thor.Bytes32, bool](sctx, slotRoles),
	}
}

// Address returns the contract address.
func (t *Token) Address() thor.Address {
	return t.sctx.Address()
}

func allowanceKey(owner, spender thor.Address) thor.Bytes32 {
	return thor.Blake2b(owner.Bytes(), spender.Bytes())
}

func roleKey(role thor.Bytes32, account thor.Address) thor.Bytes32 {
	return thor.Blake2b(role.Bytes(), account.Bytes())
}

func checkAmount(amount *big.Int) error {
	if amount == nil || amount.Sign() < 0 {
		return ErrNegativeAmount
	}
	return nil
}

//
// Getters - no state change
//

// Metadata returns name, symbol and decimals.
func (t *Token) Metadata() (*Metadata, error) {
	var md Metadata
	err := t.sctx.State().DecodeStorage(t.sctx.Address(), slotMetadata, func(raw []byte) error {
		if len(raw) == 0 {
			return nil
		}
		return rlp.DecodeBytes(raw, &md)
	})
	if err != nil {
		return nil, err
	}
	return &md, nil
}

// Decimals returns the number of decimals of one whole unit.
func (t *Token) Decimals() (uint8, error) {
	md, err := t.Metadata()
	if err != nil {
		return 0, err
	}
	return md.Decimals, nil
}

// TotalSupply returns the amount minted so far.
func (t *Token) TotalSupply() (*big.Int, error) {
	return t.totalSupply.Get()
}

// BalanceOf returns the balance of account.
func (t *Token) BalanceOf(account thor.Address) (*big.Int, error) {
	bal, err := t.balances.Get(account)
	if err != nil {
		return nil, err
	}
	if bal == nil {
		return new(big.Int), nil
	}
	return bal, nil
}

// Allowance returns how much spender may still move out of owner's balance.
func (t *Token) Allowance(owner, spender thor.Address) (*big.Int, error) {
	a, err := t.allowances.Get(allowanceKey(owner, spender))
	if err != nil {
		return nil, err
	}
	if a == nil {
		return new(big.Int), nil
	}
	return a, nil
}

// HasRole reports whether account holds role.
func (t *Token) HasRole(role thor.Bytes32, account thor.Address) (bool, error) {
	return t.roles.Get(roleKey(role, account))
}

//
// Setters - state change
//

// Initialize writes the metadata and grants the admin role to admin. Used at genesis.
func (t *Token) Initialize(md *Metadata, admin thor.Address) error {
	if err := t.sctx.State().EncodeStorage(t.sctx.Address(), slotMetadata, func() ([]byte, error) {
		return rlp.EncodeToBytes(md)
	}); err != nil {
		return err
	}
	return t.setRole(thor.RoleAdmin, admin, true)
}

func (t *Token) setBalance(account thor.Address, bal *big.Int) error {
	if bal.Sign() == 0 {
		t.balances.Delete(account)
		return nil
	}
	return t.balances.Set(account, bal)
}

func (t *Token) setAllowance(owner, spender thor.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		t.allowances.Delete(allowanceKey(owner, spender))
		return nil
	}
	return t.allowances.Set(allowanceKey(owner, spender), amount)
}

func (t *Token) setRole(role thor.Bytes32, account thor.Address, granted bool) error {
	if !granted {
		t.roles.Delete(roleKey(role, account))
		return nil
	}
	return t.roles.Set(roleKey(role, account), true)
}

func (t *Token) move(from, to thor.Address, amount *big.Int) error {
	if to.IsZero() {
		return ErrZeroAddress
	}
	fromBal, err := t.BalanceOf(from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	if err := t.setBalance(from, new(big.Int).Sub(fromBal, amount)); err != nil {
		return err
	}
	// read after write, from may equal to
	toBal, err := t.BalanceOf(to)
	if err != nil {
		return err
	}
	if err := t.setBalance(to, new(big.Int).Add(toBal, amount)); err != nil {
		return err
	}
	t.emit.Emit(&tx.Event{
		Address:      t.sctx.Address(),
		Name:         tx.EventTransfer,
		Subject:      from,
		Counterparty: to,
		Amount:       new(big.Int).Set(amount),
	})
	return nil
}

// Transfer moves amount from the caller's balance to to.
func (t *Token) Transfer(from, to thor.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	logger.Trace("transfer", "token", t.sctx.Address(), "from", from, "to", to, "amount", amount)
	return t.move(from, to, amount)
}

// Approve sets the allowance of spender over owner's balance.
func (t *Token) Approve(owner, spender thor.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if spender.IsZero() {
		return ErrZeroAddress
	}
	if err := t.setAllowance(owner, spender, amount); err != nil {
		return err
	}
	t.emit.Emit(&tx.Event{
		Address:      t.sctx.Address(),
		Name:         tx.EventApproval,
		Subject:      owner,
		Counterparty: spender,
		Amount:       new(big.Int).Set(amount),
	})
	return nil
}

// TransferFrom moves amount from from to to, consuming spender's allowance.
func (t *Token) TransferFrom(spender, from, to thor.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	allowance, err := t.Allowance(from, spender)
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) < 0 {
		return ErrInsufficientAllowance
	}
	// fail before touching the allowance
	fromBal, err := t.BalanceOf(from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	if err := t.setAllowance(from, spender, new(big.Int).Sub(allowance, amount)); err != nil {
		return err
	}
	logger.Trace("transfer from", "token", t.sctx.Address(), "spender", spender, "from", from, "to", to, "amount", amount)
	return t.move(from, to, amount)
}

// Mint creates amount new units for to. The minter must hold the minter role.
func (t *Token) Mint(minter, to thor.Address, amount *big.Int) error {
	if err := checkAmount(amount); err != nil {
		return err
	}
	if to.IsZero() {
		return ErrZeroAddress
	}
	ok, err := t.HasRole(thor.RoleMinter, minter)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMissingRole
	}
	supply, err := t.totalSupply.Get()
	if err != nil {
		return err
	}
	if new(big.Int).Add(supply, amount).BitLen() > 256 {
		return ErrSupplyOverflow
	}
	if err := t.totalSupply.Add(amount); err != nil {
		return err
	}
	bal, err := t.BalanceOf(to)
	if err != nil {
		return err
	}
	if err := t.setBalance(to, new(big.Int).Add(bal, amount)); err != nil {
		return err
	}
	logger.Debug("minted", "token", t.sctx.Address(), "to", to, "amount", amount)
	t.emit.Emit(&tx.Event{
		Address:      t.sctx.Address(),
		Name:         tx.EventTransfer,
		Counterparty: to,
		Amount:       new(big.Int).Set(amount),
	})
	return nil
}

func (t *Token) updateRole(admin thor.Address, role thor.Bytes32, account thor.Address, granted bool) error {
	ok, err := t.HasRole(thor.RoleAdmin, admin)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMissingRole
	}
	if err := t.setRole(role, account, granted); err != nil {
		return err
	}
	name := tx.EventRoleGranted
	if !granted {
		name = tx.EventRoleRevoked
	}
	logger.Info("role updated", "token", t.sctx.Address(), "role", role.AbbrevString(), "account", account, "granted", granted)
	t.emit.Emit(&tx.Event{
		Address:      t.sctx.Address(),
		Name:         name,
		Subject:      account,
		Counterparty: admin,
		Amount:       new(big.Int),
		Extra:        role,
	})
	return nil
}

// GrantRole gives role to account. The caller must hold the admin role.
func (t *Token) GrantRole(admin thor.Address, role thor.Bytes32, account thor.Address) error {
	return t.updateRole(admin, role, account, true)
}

// RevokeRole takes role away from account. The caller must hold the admin role.
func (t *Token) RevokeRole(admin thor.Address, role thor.Bytes32, account thor.Address) error {
	return t.updateRole(admin, role, account, false)
}
