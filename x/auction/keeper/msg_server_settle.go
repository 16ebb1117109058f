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

// Settle closes an auction past its deadline and releases the escrowed
// winning bid to the seller. Anyone may crank it; the payout destination is
// taken from the record, never from the message.
func (k msgServer) Settle(ctx context.Context, msg *types.MsgSettle) (*types.MsgSettleResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidAddress, fmt.Sprintf("invalid creator address: %s", err))
	}

	auction, err := k.Auction.Get(ctx, msg.AssetId)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return nil, errorsmod.Wrapf(types.ErrAuctionNotFound, "asset %s", msg.AssetId)
		}
		return nil, errorsmod.Wrap(sdkerrors.ErrLogic, err.Error())
	}

	if auction.Settled {
		return nil, errorsmod.Wrapf(types.ErrAlreadySettled, "asset %s", msg.AssetId)
	}
	now := k.nowUnix(ctx)
	if now < auction.EndTime {
		return nil, errorsmod.Wrapf(types.ErrAuctionNotEnded, "deadline %d, block time %d", auction.EndTime, now)
	}

	if auction.CurrentBid > 0 {
		sellerBz, err := k.addressCodec.StringToBytes(auction.Seller)
		if err != nil {
			return nil, errorsmod.Wrap(sdkerrors.ErrLogic, fmt.Sprintf("stored seller unparseable: %s", err))
		}

		escrow := types.EscrowAddress(msg.AssetId)
		amt := sdkmath.NewIntFromUint64(auction.CurrentBid)

		held := k.bank.GetBalance(ctx, escrow, denom.BaseDenom)
		if held.Amount.LT(amt) {
			return nil, errorsmod.Wrapf(types.ErrEscrowInvariant,
				"asset %s: escrow holds %s, recorded bid %s", msg.AssetId, held.Amount, amt)
		}

		proceeds := sdk.NewCoins(sdk.NewCoin(denom.BaseDenom, amt))
		if err := k.bank.SendCoins(ctx, escrow, sdk.AccAddress(sellerBz), proceeds); err != nil {
			return nil, err
		}
	}

	auction.Settled = true

	if err := k.Auction.Set(ctx, auction.AssetId, auction); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrLogic, "failed to update auction")
	}

	metrics.MessagesCounter().WithLabelValues("settle", "ok").Inc()

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent("auction_settle",
			sdk.NewAttribute("asset_id", auction.AssetId),
			sdk.NewAttribute("seller", auction.Seller),
			sdk.NewAttribute("winner", auction.CurrentBidder),
			sdk.NewAttribute("amount", fmt.Sprintf("%d", auction.CurrentBid)),
		),
	)

	return &types.MsgSettleResponse{}, nil
}
