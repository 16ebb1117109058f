package types

// Bounds enforced in ValidateBasic before a message reaches the keeper.
const (
	// AssetIdMaxLen caps the opaque asset reference an auction is keyed by.
	AssetIdMaxLen = 128
)
