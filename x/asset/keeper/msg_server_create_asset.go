package keeper

import (
	"context"
	"fmt"

	"artifacte/x/asset/types"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

func (k msgServer) CreateAsset(ctx context.Context, msg *types.MsgCreateAsset) (*types.MsgCreateAssetResponse, error) {
	if _, err := k.addressCodec.StringToBytes(msg.Creator); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrInvalidAddress, fmt.Sprintf("invalid address: %s", err))
	}

	ok, err := k.Asset.Has(ctx, msg.AssetId)
	if err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrLogic, err.Error())
	} else if ok {
		return nil, errorsmod.Wrapf(types.ErrAssetExists, "asset %s", msg.AssetId)
	}

	asset := types.Asset{
		Authority:      msg.Creator,
		AssetId:        msg.AssetId,
		Name:           msg.Name,
		Category:       msg.Category,
		AppraisedValue: msg.AppraisedValue,
		ConditionGrade: msg.ConditionGrade,
		ImageUri:       msg.ImageUri,
		CreatedAt:      k.nowUnix(ctx),
		Fractionalized: false,
	}

	if err := k.Asset.Set(ctx, asset.AssetId, asset); err != nil {
		return nil, errorsmod.Wrap(sdkerrors.ErrLogic, err.Error())
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent("asset_create",
			sdk.NewAttribute("asset_id", asset.AssetId),
			sdk.NewAttribute("authority", asset.Authority),
			sdk.NewAttribute("category", asset.Category.String()),
		),
	)

	return &types.MsgCreateAssetResponse{}, nil
}
