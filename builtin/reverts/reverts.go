// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reverts defines the error type raised when a built-in contract rejects a call.
package reverts

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
)

// ErrRequire is a failed requirement of a built-in contract. The call is reverted
// and the message is reported to the caller.
type ErrRequire struct {
	message string
}

func NewRequireError(message string) *ErrRequire {
	return &ErrRequire{
		message: message,
	}
}

func (e *ErrRequire) Error() string {
	return e.message
}

// Bytes returns the message abi encoded as Error(string), the revert data layout
// wallets and explorers understand.
func (e *ErrRequire) Bytes() []byte {
	if e == nil {
		return nil
	}

	// 4-byte selector for Error(string)
	selector, _ := hex.DecodeString("08c379a0")
	msgBytes := []byte(e.message)
	msgLen := uint64(len(msgBytes))

	// selector + offset (32 bytes) + length (32 bytes) + data (padded to 32)
	encoded := make([]byte, 0, 4+32+32+((len(msgBytes)+31)/32)*32)
	encoded = append(encoded, selector...)

	offset := make([]byte, 32)
	binary.BigEndian.PutUint64(offset[24:], 32)
	encoded = append(encoded, offset...)

	length := make([]byte, 32)
	binary.BigEndian.PutUint64(length[24:], msgLen)
	encoded = append(encoded, length...)

	data := make([]byte, ((len(msgBytes)+31)/32)*32)
	copy(data, msgBytes)
	encoded = append(encoded, data...)

	return encoded
}

// IsRevertErr reports whether err, or any error it wraps, is an *ErrRequire.
func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRequire
	if errors.As(e, &ve) {
		return ve != nil
	}
	return false
}

// AsRevert returns the first *ErrRequire in err's chain.
func AsRevert(err error) (*ErrRequire, bool) {
	var ve *ErrRequire
	if errors.As(err, &ve) && ve != nil {
		return ve, true
	}
	return nil, false
}
