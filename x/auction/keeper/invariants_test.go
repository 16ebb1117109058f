package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"artifacte/x/auction/keeper"
	"artifacte/x/auction/types"
)

func TestEscrowSolvencyInvariant(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	invariant := keeper.EscrowSolvencyInvariant(f.keeper)

	seller := f.bech32Addr(t, "seller")
	bidder := f.bech32Addr(t, "bidder-one")
	fund(f, t, bidder, 10_000)

	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    f.ctx.BlockTime().Unix() + 3600,
	})
	require.NoError(t, err)

	_, broken := invariant(f.ctx)
	require.False(t, broken)

	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{Creator: bidder, AssetId: "villa-001", Amount: 1000})
	require.NoError(t, err)

	_, broken = invariant(f.ctx)
	require.False(t, broken)

	// Tamper with the custody account; the invariant must trip.
	f.bank.setBalance(types.EscrowAddress("villa-001"), nil)

	msg, broken := invariant(f.ctx)
	require.True(t, broken)
	require.Contains(t, msg, "villa-001")
}
