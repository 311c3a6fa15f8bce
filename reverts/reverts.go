// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reverts defines the rejected-operation outcomes of voting, root
// management and claiming. A revert never leaves partial state behind, so it is
// always safe for the caller to retry.
package reverts

import (
	"errors"
)

// Kind classifies a revert.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindAuthorization wrong signer, mismatched configuration or identity.
	KindAuthorization
	// KindStaleness vote for a passed epoch, replayed vote.
	KindStaleness
	// KindIntegrity proof or root reference does not check out.
	KindIntegrity
	// KindExhaustion nothing left to count or pay.
	KindExhaustion
	// KindConflict concurrent modification detected.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindAuthorization:
		return "authorization"
	case KindStaleness:
		return "staleness"
	case KindIntegrity:
		return "integrity"
	case KindExhaustion:
		return "exhaustion"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

type ErrRevert struct {
	kind    Kind
	message string
}

func New(kind Kind, message string) *ErrRevert {
	return &ErrRevert{
		kind:    kind,
		message: message,
	}
}

func (e *ErrRevert) Error() string {
	return e.message
}

// Kind returns the class of the revert.
func (e *ErrRevert) Kind() Kind {
	return e.kind
}

func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRevert
	return errors.As(e, &ve)
}

// KindOf returns the kind of the revert wrapped in err, or KindUnknown.
func KindOf(err error) Kind {
	var ve *ErrRevert
	if errors.As(err, &ve) {
		return ve.kind
	}
	return KindUnknown
}

var (
	ErrConfigMismatch             = New(KindAuthorization, "config mismatch")
	ErrInvalidAuthority           = New(KindAuthorization, "invalid authority")
	ErrInvalidOperator            = New(KindAuthorization, "invalid operator")
	ErrInvalidOperatorVaultTicket = New(KindAuthorization, "invalid operator vault ticket")
	ErrInvalidVault               = New(KindAuthorization, "invalid vault")
	ErrInvalidOwner               = New(KindAuthorization, "invalid owner")

	ErrEpochAlreadyVoted = New(KindStaleness, "epoch already voted")
	ErrStaleEpoch        = New(KindStaleness, "stale epoch")
	ErrEpochNotStarted   = New(KindStaleness, "epoch not started")

	ErrInvalidProof     = New(KindIntegrity, "invalid proof")
	ErrRootUnavailable  = New(KindIntegrity, "rewards root unavailable")
	ErrOverflow         = New(KindIntegrity, "arithmetic overflow")
	ErrInvalidSignature = New(KindAuthorization, "invalid signature")

	ErrNoDelegation      = New(KindExhaustion, "no delegation")
	ErrAlreadyClaimed    = New(KindExhaustion, "already claimed")
	ErrInsufficientFunds = New(KindExhaustion, "insufficient funds")

	ErrClaimConflict = New(KindConflict, "claim state changed concurrently")
)
