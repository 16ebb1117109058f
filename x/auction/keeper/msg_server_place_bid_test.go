package keeper_test

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"artifacte/app/denom"
	"artifacte/x/auction/keeper"
	"artifacte/x/auction/types"
)

func fund(f *fixture, t *testing.T, bech string, amount int64) {
	t.Helper()
	f.bank.setBalance(f.mustAccAddr(t, bech), sdk.NewCoins(sdk.NewCoin(denom.BaseDenom, sdkmath.NewInt(amount))))
}

func escrowBalance(f *fixture, assetID string) sdkmath.Int {
	return f.bank.GetBalance(f.ctx, types.EscrowAddress(assetID), denom.BaseDenom).Amount
}

func TestPlaceBidFirstBidMovesFundsToEscrow(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
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

	resp, err := srv.PlaceBid(f.ctx, &types.MsgPlaceBid{
		Creator: bidder,
		AssetId: "villa-001",
		Amount:  1000,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(0), resp.Refunded)

	rst, err := f.keeper.Auction.Get(f.ctx, "villa-001")
	require.NoError(t, err)
	require.Equal(t, uint64(1000), rst.CurrentBid)
	require.Equal(t, bidder, rst.CurrentBidder)

	require.Equal(t, int64(1000), escrowBalance(f, "villa-001").Int64())
	require.Equal(t, int64(9000), f.bank.GetBalance(f.ctx, f.mustAccAddr(t, bidder), denom.BaseDenom).Amount.Int64())
}

func TestPlaceBidOutbidRefundsPrevious(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")
	first := f.bech32Addr(t, "bidder-one")
	second := f.bech32Addr(t, "bidder-two")
	fund(f, t, first, 5_000)
	fund(f, t, second, 5_000)

	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    f.ctx.BlockTime().Unix() + 3600,
	})
	require.NoError(t, err)

	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{Creator: first, AssetId: "villa-001", Amount: 1000})
	require.NoError(t, err)

	resp, err := srv.PlaceBid(f.ctx, &types.MsgPlaceBid{
		Creator:        second,
		AssetId:        "villa-001",
		Amount:         1500,
		PreviousBidder: first,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1000), resp.Refunded)

	// Escrow holds exactly the live bid; the outbid party is whole again.
	require.Equal(t, int64(1500), escrowBalance(f, "villa-001").Int64())
	require.Equal(t, int64(5000), f.bank.GetBalance(f.ctx, f.mustAccAddr(t, first), denom.BaseDenom).Amount.Int64())
	require.Equal(t, int64(3500), f.bank.GetBalance(f.ctx, f.mustAccAddr(t, second), denom.BaseDenom).Amount.Int64())

	rst, err := f.keeper.Auction.Get(f.ctx, "villa-001")
	require.NoError(t, err)
	require.Equal(t, uint64(1500), rst.CurrentBid)
	require.Equal(t, second, rst.CurrentBidder)
}

func TestPlaceBidPreconditions(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")
	first := f.bech32Addr(t, "bidder-one")
	second := f.bech32Addr(t, "bidder-two")
	fund(f, t, first, 10_000)
	fund(f, t, second, 10_000)

	end := f.ctx.BlockTime().Unix() + 3600
	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    end,
	})
	require.NoError(t, err)

	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{Creator: first, AssetId: "villa-001", Amount: 1200})
	require.NoError(t, err)

	tests := []struct {
		desc    string
		ctx     sdk.Context
		request *types.MsgPlaceBid
		err     error
	}{
		{
			desc:    "invalid bidder address",
			ctx:     f.ctx,
			request: &types.MsgPlaceBid{Creator: "invalid", AssetId: "villa-001", Amount: 2000},
			err:     sdkerrors.ErrInvalidAddress,
		},
		{
			desc:    "unknown auction",
			ctx:     f.ctx,
			request: &types.MsgPlaceBid{Creator: second, AssetId: "no-such-lot", Amount: 2000},
			err:     types.ErrAuctionNotFound,
		},
		{
			desc:    "bid at deadline",
			ctx:     f.ctx.WithBlockTime(time.Unix(end, 0)),
			request: &types.MsgPlaceBid{Creator: second, AssetId: "villa-001", Amount: 2000, PreviousBidder: first},
			err:     types.ErrAuctionEnded,
		},
		{
			desc:    "bid after deadline",
			ctx:     f.ctx.WithBlockTime(time.Unix(end+100, 0)),
			request: &types.MsgPlaceBid{Creator: second, AssetId: "villa-001", Amount: 2000, PreviousBidder: first},
			err:     types.ErrAuctionEnded,
		},
		{
			desc:    "equal to current bid",
			ctx:     f.ctx,
			request: &types.MsgPlaceBid{Creator: second, AssetId: "villa-001", Amount: 1200, PreviousBidder: first},
			err:     types.ErrBidTooLow,
		},
		{
			desc:    "below current bid",
			ctx:     f.ctx,
			request: &types.MsgPlaceBid{Creator: second, AssetId: "villa-001", Amount: 1100, PreviousBidder: first},
			err:     types.ErrBidTooLow,
		},
		{
			desc:    "previous bidder omitted",
			ctx:     f.ctx,
			request: &types.MsgPlaceBid{Creator: second, AssetId: "villa-001", Amount: 2000},
			err:     types.ErrRefundMismatch,
		},
		{
			desc:    "previous bidder wrong",
			ctx:     f.ctx,
			request: &types.MsgPlaceBid{Creator: second, AssetId: "villa-001", Amount: 2000, PreviousBidder: second},
			err:     types.ErrRefundMismatch,
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := srv.PlaceBid(tc.ctx, tc.request)
			require.ErrorIs(t, err, tc.err)

			// Failed bids leave the record untouched.
			rst, err := f.keeper.Auction.Get(f.ctx, "villa-001")
			require.NoError(t, err)
			require.Equal(t, uint64(1200), rst.CurrentBid)
			require.Equal(t, first, rst.CurrentBidder)
		})
	}
}

func TestPlaceBidFirstBidBelowStartPrice(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
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

	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{Creator: bidder, AssetId: "villa-001", Amount: 999})
	require.ErrorIs(t, err, types.ErrBidTooLow)

	// The floor itself is acceptable.
	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{Creator: bidder, AssetId: "villa-001", Amount: 1000})
	require.NoError(t, err)
}

func TestPlaceBidOnSettledAuction(t *testing.T) {
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

	later := f.ctx.WithBlockTime(time.Unix(end+1, 0))
	_, err = srv.Settle(later, &types.MsgSettle{Creator: seller, AssetId: "villa-001"})
	require.NoError(t, err)

	// Settled wins over the deadline check even when the clock is rolled
	// back below EndTime.
	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{Creator: bidder, AssetId: "villa-001", Amount: 2000})
	require.ErrorIs(t, err, types.ErrAlreadySettled)
}

func TestPlaceBidEscrowShortfall(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")
	first := f.bech32Addr(t, "bidder-one")
	second := f.bech32Addr(t, "bidder-two")
	fund(f, t, first, 10_000)
	fund(f, t, second, 10_000)

	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    f.ctx.BlockTime().Unix() + 3600,
	})
	require.NoError(t, err)

	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{Creator: first, AssetId: "villa-001", Amount: 1000})
	require.NoError(t, err)

	// Drain the custody account behind the module's back.
	f.bank.setBalance(types.EscrowAddress("villa-001"), sdk.NewCoins())

	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{
		Creator:        second,
		AssetId:        "villa-001",
		Amount:         2000,
		PreviousBidder: first,
	})
	require.ErrorIs(t, err, types.ErrEscrowInvariant)
}

func TestPlaceBidInsufficientBidderFunds(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	seller := f.bech32Addr(t, "seller")
	bidder := f.bech32Addr(t, "bidder-one")
	fund(f, t, bidder, 500)

	_, err := srv.CreateAuction(f.ctx, &types.MsgCreateAuction{
		Creator:    seller,
		AssetId:    "villa-001",
		StartPrice: 1000,
		EndTime:    f.ctx.BlockTime().Unix() + 3600,
	})
	require.NoError(t, err)

	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{Creator: bidder, AssetId: "villa-001", Amount: 1000})
	require.ErrorIs(t, err, sdkerrors.ErrInsufficientFunds)
}
