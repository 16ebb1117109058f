package types

import (
	"cosmossdk.io/errors"
)

var (
	ErrInvalidSigner = errors.Register(ModuleName, 1101, "expected gov account as only signer for proposal message")

	ErrAuctionExists   = errors.Register(ModuleName, 1102, "auction already exists for asset")
	ErrAuctionNotFound = errors.Register(ModuleName, 1103, "auction not found")
	ErrAlreadySettled  = errors.Register(ModuleName, 1104, "auction already settled")
	ErrAuctionEnded    = errors.Register(ModuleName, 1105, "auction has ended")
	ErrAuctionNotEnded = errors.Register(ModuleName, 1106, "auction has not ended yet")
	ErrBidTooLow       = errors.Register(ModuleName, 1107, "bid too low")

	// ErrRefundMismatch rejects a refund target that does not match the
	// recorded highest bidder, so escrowed funds can never be redirected.
	ErrRefundMismatch = errors.Register(ModuleName, 1108, "refund target does not match current bidder")

	// ErrEscrowInvariant indicates the custody account held less than the
	// recorded bid. This cannot happen unless module state was corrupted.
	ErrEscrowInvariant = errors.Register(ModuleName, 1109, "escrow balance below recorded bid")

	ErrInvalidRequest = errors.Register(ModuleName, 1110, "invalid request")
)
