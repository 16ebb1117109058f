package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"artifacte/app/denom"
	"artifacte/x/auction/keeper"
	"artifacte/x/auction/types"
)

func TestEscrowQueryTracksBids(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	qs := keeper.NewQueryServerImpl(f.keeper)
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

	resp, err := qs.Escrow(f.ctx, &types.QueryEscrowRequest{AssetId: "villa-001"})
	require.NoError(t, err)
	require.Equal(t, denom.BaseDenom, resp.Balance.Denom)
	require.True(t, resp.Balance.Amount.IsZero())

	_, err = srv.PlaceBid(f.ctx, &types.MsgPlaceBid{Creator: bidder, AssetId: "villa-001", Amount: 1500})
	require.NoError(t, err)

	resp, err = qs.Escrow(f.ctx, &types.QueryEscrowRequest{AssetId: "villa-001"})
	require.NoError(t, err)
	require.Equal(t, int64(1500), resp.Balance.Amount.Int64())
}

func TestEscrowQueryErrors(t *testing.T) {
	f := initFixture(t)
	qs := keeper.NewQueryServerImpl(f.keeper)

	_, err := qs.Escrow(f.ctx, nil)
	require.ErrorIs(t, err, status.Error(codes.InvalidArgument, "invalid request"))

	_, err = qs.Escrow(f.ctx, &types.QueryEscrowRequest{})
	require.ErrorIs(t, err, status.Error(codes.InvalidArgument, "invalid request"))

	_, err = qs.Escrow(f.ctx, &types.QueryEscrowRequest{AssetId: "no-such-lot"})
	require.ErrorIs(t, err, status.Error(codes.NotFound, "not found"))
}

func TestParamsQuery(t *testing.T) {
	f := initFixture(t)
	qs := keeper.NewQueryServerImpl(f.keeper)

	resp, err := qs.Params(f.ctx, &types.QueryParamsRequest{})
	require.NoError(t, err)
	require.EqualExportedValues(t, types.DefaultParams(), resp.Params)

	_, err = qs.Params(f.ctx, nil)
	require.ErrorIs(t, err, status.Error(codes.InvalidArgument, "invalid request"))
}
