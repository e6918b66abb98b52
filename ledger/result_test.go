// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mu-coin/mucoind/fault"
	"github.com/mu-coin/mucoind/ledger"
)

func TestReasonErrors(t *testing.T) {
	assert.Nil(t, ledger.ReasonNone.Err(), "error for no reason")
	assert.Equal(t, fault.ErrSequenceMismatch, ledger.ReasonSequenceMismatch.Err(), "wrong error")
	assert.Equal(t, fault.ErrInflation, ledger.ReasonInflation.Err(), "wrong error")
	assert.True(t, fault.IsErrExists(ledger.ReasonAlreadyExists.Err()), "wrong error class")
	assert.True(t, fault.IsErrNotFound(ledger.ReasonMissingHistory.Err()), "wrong error class")

	for r := ledger.ReasonEmpty; r <= ledger.ReasonStore; r += 1 {
		assert.NotNil(t, r.Err(), "no error for: %s", r)
	}
}

func TestResultText(t *testing.T) {
	r := ledger.Result{
		Accepted: false,
		Reason:   ledger.ReasonFeeMismatch,
		Index:    -1,
	}
	assert.Equal(t, "rejected: fee mismatch", r.String(), "wrong block text")

	r.Reason = ledger.ReasonInvalidSignature
	r.Index = 2
	assert.Equal(t, "rejected: invalid signature at entry: 2", r.String(), "wrong entry text")

	buffer, err := json.Marshal(r)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `{"accepted":false,"reason":"invalid signature","index":2}`, string(buffer), "wrong JSON")

	assert.Equal(t, "reason(99)", ledger.Reason(99).String(), "wrong unknown text")
}
