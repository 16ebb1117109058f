package keeper_test

import (
	"strconv"
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"artifacte/x/auction/keeper"
	"artifacte/x/auction/types"
)

func TestCreateAuctionStoresRecord(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")

	for i := 0; i < 5; i++ {
		assetID := "asset-" + strconv.Itoa(i)
		_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
			Creator:    seller,
			AssetId:    assetID,
			StartPrice: 100,
			EndTime:    f.ctx.BlockTime().Unix() + 3600,
		})
		require.NoError(t, err)

		rst, err := f.keeper.Auction.Get(f.ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, seller, rst.Seller)
		require.Equal(t, uint64(100), rst.StartPrice)
		require.Equal(t, uint64(0), rst.CurrentBid)
		require.Empty(t, rst.CurrentBidder)
		require.False(t, rst.Settled)
		require.Equal(t, f.ctx.BlockTime().Unix(), rst.CreatedAt)
	}
}

func TestCreateAuctionRejectsDuplicate(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")

	msg := &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    f.ctx.BlockTime().Unix() + 3600,
	}
	_, err := srv.CreateAuction(f.ctx, msg)
	require.NoError(t, err)

	_, err = srv.CreateAuction(f.ctx, msg)
	require.ErrorIs(t, err, types.ErrAuctionExists)

	// Creation is not an upsert either: a different seller cannot displace
	// the existing record.
	other := *msg
	other.Creator = f.bech32Addr(t, "other-seller")
	_, err = srv.CreateAuction(f.ctx, &other)
	require.ErrorIs(t, err, types.ErrAuctionExists)
}

func TestCreateAuctionRejectsBadCreator(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)

	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    "invalid",
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    f.ctx.BlockTime().Unix() + 3600,
	})
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)
}

func TestCreateAuctionAllowsPastDeadline(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")

	// A deadline already behind the block clock is legal; the auction is
	// born settleable with zero bids.
	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "expired-lot",
		StartPrice: 50,
		EndTime:    f.ctx.BlockTime().Unix() - 10,
	})
	require.NoError(t, err)

	_, err = srv.Settle(f.ctx, &types.MsgSettle{Creator: seller, AssetId: "expired-lot"})
	require.NoError(t, err)
}
