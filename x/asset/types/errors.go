package types

import (
	"cosmossdk.io/errors"
)

var (
	ErrInvalidSigner  = errors.Register(ModuleName, 1101, "expected gov account as only signer for proposal message")
	ErrAssetExists    = errors.Register(ModuleName, 1102, "asset already registered")
	ErrAssetNotFound  = errors.Register(ModuleName, 1103, "asset not found")
	ErrInvalidRequest = errors.Register(ModuleName, 1104, "invalid request")
)
