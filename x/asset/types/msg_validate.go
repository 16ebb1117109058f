package types

import (
	"strings"
	"unicode/utf8"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

var (
	_ sdk.Msg = (*MsgCreateAsset)(nil)
	_ sdk.Msg = (*MsgUpdateParams)(nil)
)

func (msg *MsgCreateAsset) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid creator address (%s)", err)
	}
	if err := validateBoundedString("asset_id", msg.AssetId, AssetIdMaxLen); err != nil {
		return err
	}
	if err := validateBoundedString("name", msg.Name, NameMaxLen); err != nil {
		return err
	}
	if _, ok := AssetCategory_name[int32(msg.Category)]; !ok {
		return sdkerrors.ErrInvalidRequest.Wrapf("unknown category %d", msg.Category)
	}
	if err := validateBoundedString("condition_grade", msg.ConditionGrade, ConditionGradeMaxLen); err != nil {
		return err
	}
	if msg.ImageUri != "" && len(msg.ImageUri) > ImageUriMaxLen {
		return sdkerrors.ErrInvalidRequest.Wrapf("image_uri too long: %d > %d", len(msg.ImageUri), ImageUriMaxLen)
	}
	return nil
}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid authority address (%s)", err)
	}
	return msg.Params.Validate()
}

func validateBoundedString(field, value string, max int) error {
	if strings.TrimSpace(value) == "" {
		return sdkerrors.ErrInvalidRequest.Wrapf("%s required", field)
	}
	if len(value) > max {
		return sdkerrors.ErrInvalidRequest.Wrapf("%s too long: %d > %d", field, len(value), max)
	}
	if !utf8.ValidString(value) {
		return sdkerrors.ErrInvalidRequest.Wrapf("%s must be valid UTF-8", field)
	}
	for _, r := range value {
		if r < 0x20 {
			return sdkerrors.ErrInvalidRequest.Wrapf("%s contains control characters", field)
		}
	}
	return nil
}
