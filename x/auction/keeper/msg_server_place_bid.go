package keeper

import (
	"context"
	"errors"
	"fmt"

	"artifacte/app/denom"
	"artifacte/app/metrics"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"artifacte/x/auction/types"
)

func (k msgServer) PlaceBid(ctx context.Context, msg *types.MsgPlaceBid) (*types.MsgPlaceBidResponse, error) {
	bidderBz, err := k.addressCodec.StringToBytes(msg.Creator)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidAddress, fmt.Sprintf("invalid bidder address: %s", err))
	}
	bidder := sdk.AccAddress(bidderBz)

	auction, err := k.Auction.Get(ctx, msg.AssetId)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, errorsmod.Wrapf(types.ErrAuctionNotFound, "asset %s", msg.AssetId)
		}
		return nil, errorsmod.Wrap(sdkerrors.ErrLogic, err.Error())
	}

	// Preconditions in fixed order; the first failure aborts the whole
	// message with no state change.
	if auction.Settled {
		return nil, errorsmod.Wrapf(types.ErrAlreadySettled, "asset %s", msg.AssetId)
	}
	now := k.nowUnix(ctx)
	if now >= auction.EndTime {
		return nil, errorsmod.Wrapf(types.ErrAuctionEnded, "deadline %d, block time %d", auction.EndTime, now)
	}
	minBid := auction.StartPrice
	if auction.CurrentBid > 0 {
		minBid = auction.CurrentBid + 1
	}
	if msg.Amount < minBid {
		return nil, errorsmod.Wrapf(types.ErrBidTooLow, "bid %d below minimum %d", msg.Amount, minBid)
	}

	// The refund target named by the caller must match the recorded bidder
	// exactly, including the empty value when no bid has been placed.
	if msg.PreviousBidder != auction.CurrentBidder {
		return nil, errorsmod.Wrapf(types.ErrRefundMismatch,
			"got %q, recorded bidder %q", msg.PreviousBidder, auction.CurrentBidder)
	}

	escrow := types.EscrowAddress(msg.AssetId)

	var refunded uint64
	if auction.CurrentBid > 0 {
		prevBz, err := k.addressCodec.StringToBytes(auction.CurrentBidder)
		if err != nil {
			return nil, errorsmod.Wrap(sdkerrors.ErrLogic, fmt.Sprintf("stored bidder unparseable: %s", err))
		}
		prevAmt := sdkmath.NewIntFromUint64(auction.CurrentBid)

		// Balance-check before debiting. A shortfall means module state was
		// corrupted, not that the caller did anything wrong.
		held := k.bank.GetBalance(ctx, escrow, denom.BaseDenom)
		if held.Amount.LT(prevAmt) {
			return nil, errorsmod.Wrapf(types.ErrEscrowInvariant,
				"asset %s: escrow holds %s, recorded bid %s", msg.AssetId, held.Amount, prevAmt)
		}

		refund := sdk.NewCoins(sdk.NewCoin(denom.BaseDenom, prevAmt))
		if err := k.bank.SendCoins(ctx, escrow, sdk.AccAddress(prevBz), refund); err != nil {
			return nil, err
		}
		refunded = auction.CurrentBid
	}

	bidCoins := sdk.NewCoins(sdk.NewCoin(denom.BaseDenom, sdkmath.NewIntFromUint64(msg.Amount)))
	if err := k.bank.SendCoins(ctx, bidder, escrow, bidCoins); err != nil {
		return nil, err
	}

	auction.CurrentBid = msg.Amount
	auction.CurrentBidder = msg.Creator

	if err := k.Auction.Set(ctx, auction.AssetId, auction); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrLogic, "failed to update auction")
	}

	metrics.MessagesCounter().WithLabelValues("place_bid", "ok").Inc()
	if refunded > 0 {
		metrics.RefundedCounter().Add(float64(refunded))
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent("auction_bid",
			sdk.NewAttribute("asset_id", auction.AssetId),
			sdk.NewAttribute("bidder", msg.Creator),
			sdk.NewAttribute("amount", fmt.Sprintf("%d", msg.Amount)),
			sdk.NewAttribute("refunded", fmt.Sprintf("%d", refunded)),
			sdk.NewAttribute("refund_to", msg.PreviousBidder),
		),
	)

	return &types.MsgPlaceBidResponse{Refunded: refunded}, nil
}
