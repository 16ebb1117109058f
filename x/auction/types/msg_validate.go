package types

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	_ sdk.Msg = (*MsgCreateAuction)(nil)
	_ sdk.Msg = (*MsgPlaceBid)(nil)
	_ sdk.Msg = (*MsgSettle)(nil)
	_ sdk.Msg = (*MsgUpdateParams)(nil)
)

func validateAssetID(assetID string) error {
	if strings.TrimSpace(assetID) == "" {
		return sdkerrors.ErrInvalidRequest.Wrap("asset_id required")
	}
	if len(assetID) > AssetIdMaxLen {
		return sdkerrors.ErrInvalidRequest.Wrapf("asset_id too long: %d > %d", len(assetID), AssetIdMaxLen)
	}
	return nil
}

func (msg *MsgCreateAuction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid creator address (%s)", err)
	}
	// A zero start price is legal: the first bid then sets the floor.
	// A past end time is equally legal and yields an auction that is
	// immediately settleable with no bids.
	return validateAssetID(msg.AssetId)
}

func (msg *MsgPlaceBid) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid creator address (%s)", err)
	}
	if err := validateAssetID(msg.AssetId); err != nil {
		return err
	}
	if msg.Amount == 0 {
		return sdkerrors.ErrInvalidRequest.Wrap("amount must be positive")
	}
	if msg.PreviousBidder != "" {
		if _, err := sdk.AccAddressFromBech32(msg.PreviousBidder); err != nil {
			return sdkerrors.ErrInvalidAddress.Wrapf("invalid previous bidder address (%s)", err)
		}
	}
	return nil
}

func (msg *MsgSettle) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid creator address (%s)", err)
	}
	return validateAssetID(msg.AssetId)
}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	return msg.Params.Validate()
}
