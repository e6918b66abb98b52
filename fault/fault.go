// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressExists         = ExistsError("address already has history")
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrChecksumMismatch      = InvalidError("checksum mismatch")
	ErrDatabaseIsNotSet      = ProcessError("database is not set")
	ErrDuplicateAddress      = InvalidError("duplicate address in block")
	ErrEmptyBlock            = InvalidError("block has no entries")
	ErrFeeMismatch           = InvalidError("balance change does not match fee")
	ErrIncompatibleVersion   = InvalidError("incompatible database version")
	ErrInflation             = InvalidError("block does not reduce total balance")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidCursor         = InvalidError("invalid cursor")
	ErrInvalidKeyLength      = LengthError("invalid key length")
	ErrInvalidLength         = LengthError("invalid length")
	ErrInvalidNumber         = InvalidError("invalid number")
	ErrInvalidPoint          = InvalidError("invalid curve point")
	ErrInvalidPrivateKey     = InvalidError("invalid private key")
	ErrInvalidSignature      = InvalidError("invalid signature")
	ErrInvalidStoreType      = InvalidError("invalid store type")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrMissingDirectory      = NotFoundError("directory is not set")
	ErrMissingHistory        = NotFoundError("no previous block for address")
	ErrMissingPreviousEntry  = NotFoundError("previous block does not contain address")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrNotPublicKey          = InvalidError("not a public key")
	ErrNumberOutOfRange      = InvalidError("number out of range")
	ErrRecordTruncated       = RecordError("record truncated")
	ErrSequenceMismatch      = InvalidError("sequence number mismatch")
	ErrStoreFailure          = ProcessError("block store failure")
	ErrTransactionInProgress = ProcessError("transaction already in progress")
	ErrTransactionNotStarted = ProcessError("transaction not started")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
