package keeper

import (
	"fmt"

	"artifacte/app/denom"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"artifacte/x/auction/types"
)

// RegisterInvariants registers the auction module invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-solvency", EscrowSolvencyInvariant(k))
}

// EscrowSolvencyInvariant checks that every open auction's custody account
// holds exactly the recorded current bid, and every settled auction's custody
// account is empty.
func EscrowSolvencyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken int
			detail string
		)

		_ = k.Auction.Walk(ctx, nil, func(assetID string, a types.Auction) (bool, error) {
			want := sdkmath.NewIntFromUint64(a.CurrentBid)
			if a.Settled {
				want = sdkmath.ZeroInt()
			}
			held := k.bank.GetBalance(ctx, types.EscrowAddress(assetID), denom.BaseDenom).Amount
			if !held.Equal(want) {
				broken++
				detail += fmt.Sprintf("\tauction %s: escrow holds %s, want %s (settled=%v)\n",
					assetID, held, want, a.Settled)
			}
			return false, nil
		})

		msg := sdk.FormatInvariant(types.ModuleName, "escrow-solvency",
			fmt.Sprintf("%d auctions with mismatched escrow balances\n%s", broken, detail))
		return msg, broken != 0
	}
}
