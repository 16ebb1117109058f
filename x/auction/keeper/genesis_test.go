package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"artifacte/x/auction/types"
)

func TestGenesis(t *testing.T) {
	genesisState := types.GenesisState{
		Params: types.DefaultParams(),
		Auctions: []types.Auction{
			{AssetId: "0", Seller: "seller-0", StartPrice: 10, EndTime: 100},
			{AssetId: "1", Seller: "seller-1", StartPrice: 20, EndTime: 200, CurrentBid: 25, CurrentBidder: "bidder-1"},
		},
	}

	f := initFixture(t)
	err := f.keeper.InitGenesis(f.ctx, genesisState)
	require.NoError(t, err)
	got, err := f.keeper.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.EqualExportedValues(t, genesisState.Params, got.Params)
	require.EqualExportedValues(t, genesisState.Auctions, got.Auctions)
}
