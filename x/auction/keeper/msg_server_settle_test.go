package keeper_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"artifacte/app/denom"
	"artifacte/x/auction/keeper"
	"artifacte/x/auction/types"
)

func TestSettlePaysSellerFromEscrow(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")
	bidder := f.bech32Addr(t, "bidder-one")
	cranker := f.bech32Addr(t, "cranker")
	fund(f, t, bidder, 10_000)

	end := f.ctx.BlockTime().Unix() + 3600
	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    end,
	})
	require.NoError(t, err)

	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{Creator: bidder, AssetId: "villa-001", Amount: 2500})
	require.NoError(t, err)

	// Settlement is permissionless; a third party cranks it here.
	later := f.ctx.WithBlockTime(time.Unix(end, 0))
	_, err = srv.Settle(later, &types.MsgSettle{Creator: cranker, AssetId: "villa-001"})
	require.NoError(t, err)

	require.Equal(t, int64(2500), f.bank.GetBalance(f.ctx, f.mustAccAddr(t, seller), denom.BaseDenom).Amount.Int64())
	require.True(t, escrowBalance(f, "villa-001").IsZero())

	rst, err := f.keeper.Auction.Get(f.ctx, "villa-001")
	require.NoError(t, err)
	require.True(t, rst.Settled)
	require.Equal(t, uint64(2500), rst.CurrentBid)
	require.Equal(t, bidder, rst.CurrentBidder)
}

func TestSettleZeroBidsMovesNothing(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")

	end := f.ctx.BlockTime().Unix() + 3600
	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    end,
	})
	require.NoError(t, err)

	later := f.ctx.WithBlockTime(time.Unix(end+5, 0))
	_, err = srv.Settle(later, &types.MsgSettle{Creator: seller, AssetId: "villa-001"})
	require.NoError(t, err)

	require.True(t, f.bank.GetBalance(f.ctx, f.mustAccAddr(t, seller), denom.BaseDenom).Amount.IsZero())

	rst, err := f.keeper.Auction.Get(f.ctx, "villa-001")
	require.NoError(t, err)
	require.True(t, rst.Settled)
}

func TestSettlePreconditions(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")

	end := f.ctx.BlockTime().Unix() + 3600
	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    end,
	})
	require.NoError(t, err)

	tests := []struct {
		desc    string
		ctx     sdk.Context
		request *types.MsgSettle
		err     error
	}{
		{
			desc:    "invalid creator address",
			ctx:     f.ctx,
			request: &types.MsgSettle{Creator: "invalid", AssetId: "villa-001"},
			err:     sdkerrors.ErrInvalidAddress,
		},
		{
			desc:    "unknown auction",
			ctx:     f.ctx,
			request: &types.MsgSettle{Creator: seller, AssetId: "no-such-lot"},
			err:     types.ErrAuctionNotFound,
		},
		{
			desc:    "before deadline",
			ctx:     f.ctx.WithBlockTime(time.Unix(end-1, 0)),
			request: &types.MsgSettle{Creator: seller, AssetId: "villa-001"},
			err:     types.ErrAuctionNotEnded,
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := srv.Settle(tc.ctx, tc.request)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSettleTwiceFails(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")

	end := f.ctx.BlockTime().Unix() + 3600
	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    end,
	})
	require.NoError(t, err)

	later := f.ctx.WithBlockTime(time.Unix(end, 0))
	_, err = srv.Settle(later, &types.MsgSettle{Creator: seller, AssetId: "villa-001"})
	require.NoError(t, err)

	_, err = srv.Settle(later, &types.MsgSettle{Creator: seller, AssetId: "villa-001"})
	require.ErrorIs(t, err, types.ErrAlreadySettled)
}

func TestSettleEscrowShortfall(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")
	bidder := f.bech32Addr(t, "bidder-one")
	fund(f, t, bidder, 10_000)

	end := f.ctx.BlockTime().Unix() + 3600
	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    end,
	})
	require.NoError(t, err)

	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{Creator: bidder, AssetId: "villa-001", Amount: 1000})
	require.NoError(t, err)

	f.bank.setBalance(types.EscrowAddress("villa-001"), sdk.NewCoins())

	later := f.ctx.WithBlockTime(time.Unix(end, 0))
	_, err = srv.Settle(later, &types.MsgSettle{Creator: seller, AssetId: "villa-001"})
	require.ErrorIs(t, err, types.ErrEscrowInvariant)

	// The failed settlement must not flip the flag.
	rst, err := f.keeper.Auction.Get(f.ctx, "villa-001")
	require.NoError(t, err)
	require.False(t, rst.Settled)
}
