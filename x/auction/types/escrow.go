package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// EscrowAddress derives the custody account for one auction from the asset
// identity. The derivation is deterministic, so the account can always be
// located from the auction record alone and needs no creation step.
func EscrowAddress(assetID string) sdk.AccAddress {
	return address.Module(ModuleName, []byte(assetID))
}
