package keeper

import (
	"context"
	"fmt"

	"artifacte/app/metrics"
	"artifacte/x/auction/types"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

func (k msgServer) CreateAuction(ctx context.Context, msg *types.MsgCreateAuction) (*types.MsgCreateAuctionResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidAddress, fmt.Sprintf("invalid address: %s", err))
	}

	ok, err := k.Auction.Has(ctx, msg.AssetId)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrLogic, err.Error())
	} else if ok {
		// One auction per asset identity; creation is not idempotent.
		return nil, errorsmod.Wrapf(types.ErrAuctionExists, "asset %s", msg.AssetId)
	}

	// No validation of EndTime against the clock: an auction created with a
	// past deadline is immediately settleable with zero bids.
	auction := types.Auction{
		Seller:        msg.Creator,
		AssetId:       msg.AssetId,
		StartPrice:    msg.StartPrice,
		CurrentBid:    0,
		CurrentBidder: "",
		EndTime:       msg.EndTime,
		Settled:       false,
		CreatedAt:     k.nowUnix(ctx),
	}

	if err := k.Auction.Set(ctx, auction.AssetId, auction); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrLogic, err.Error())
	}

	metrics.MessagesCounter().WithLabelValues("create", "ok").Inc()

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent("auction_create",
			sdk.NewAttribute("asset_id", auction.AssetId),
			sdk.NewAttribute("seller", auction.Seller),
			sdk.NewAttribute("start_price", fmt.Sprintf("%d", auction.StartPrice)),
			sdk.NewAttribute("end_time", fmt.Sprintf("%d", auction.EndTime)),
		),
	)

	return &types.MsgCreateAuctionResponse{}, nil
}
