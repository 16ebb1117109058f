package keeper

import (
	"context"

	"artifacte/app/denom"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"artifacte/x/auction/types"
)

// Escrow reports the custody balance backing one auction. While the auction
// is open this equals the current bid; after settlement it is zero.
func (q queryServer) Escrow(ctx context.Context, req *types.QueryEscrowRequest) (*types.QueryEscrowResponse, error) {
	if req == nil || req.AssetId == "" {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ok, err := q.k.Auction.Has(ctx, req.AssetId)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}
	if !ok {
		return nil, status.Error(codes.NotFound, "not found")
	}

	bal := q.k.bank.GetBalance(ctx, types.EscrowAddress(req.AssetId), denom.BaseDenom)

	return &types.QueryEscrowResponse{Balance: bal}, nil
}

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	params, err := q.k.Params.Get(ctx)
	if err != nil {
		params = types.DefaultParams()
	}

	return &types.QueryParamsResponse{Params: params}, nil
}
