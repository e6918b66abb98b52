// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"

	"github.com/mu-coin/mucoind/fault"
)

// Reason - why a block was rejected
type Reason int

// the rejection reasons
const (
	ReasonNone Reason = iota
	ReasonEmpty
	ReasonDuplicateAddress
	ReasonInvalidPoint
	ReasonInvalidSignature
	ReasonMissingHistory
	ReasonSequenceMismatch
	ReasonAlreadyExists
	ReasonInflation
	ReasonFeeMismatch
	ReasonStore
)

var reasonNames = map[Reason]string{
	ReasonNone:             "none",
	ReasonEmpty:            "empty block",
	ReasonDuplicateAddress: "duplicate address",
	ReasonInvalidPoint:     "invalid point",
	ReasonInvalidSignature: "invalid signature",
	ReasonMissingHistory:   "missing history",
	ReasonSequenceMismatch: "sequence mismatch",
	ReasonAlreadyExists:    "address already exists",
	ReasonInflation:        "inflation",
	ReasonFeeMismatch:      "fee mismatch",
	ReasonStore:            "store failure",
}

func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

var reasonErrors = map[Reason]error{
	ReasonEmpty:            fault.ErrEmptyBlock,
	ReasonDuplicateAddress: fault.ErrDuplicateAddress,
	ReasonInvalidPoint:     fault.ErrInvalidPoint,
	ReasonInvalidSignature: fault.ErrInvalidSignature,
	ReasonMissingHistory:   fault.ErrMissingHistory,
	ReasonSequenceMismatch: fault.ErrSequenceMismatch,
	ReasonAlreadyExists:    fault.ErrAddressExists,
	ReasonInflation:        fault.ErrInflation,
	ReasonFeeMismatch:      fault.ErrFeeMismatch,
	ReasonStore:            fault.ErrStoreFailure,
}

// Err - the fault matching a reason, nil for ReasonNone
func (r Reason) Err() error {
	return reasonErrors[r]
}

// MarshalText - the reason as its name
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Result - outcome of processing one block
//
// Index is the entry that failed, or -1 if the whole block failed
type Result struct {
	Accepted bool   `json:"accepted"`
	Reason   Reason `json:"reason"`
	Index    int    `json:"index"`
}

var accepted = Result{
	Accepted: true,
	Reason:   ReasonNone,
	Index:    -1,
}

func rejectBlock(reason Reason) Result {
	return Result{
		Accepted: false,
		Reason:   reason,
		Index:    -1,
	}
}

func rejectEntry(reason Reason, index int) Result {
	return Result{
		Accepted: false,
		Reason:   reason,
		Index:    index,
	}
}

func (r Result) String() string {
	if r.Accepted {
		return "accepted"
	}
	if r.Index < 0 {
		return fmt.Sprintf("rejected: %s", r.Reason)
	}
	return fmt.Sprintf("rejected: %s at entry: %d", r.Reason, r.Index)
}
