package types_test

import (
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"artifacte/x/asset/types"
)

func bech32Addr(t *testing.T, seed string) string {
	t.Helper()
	for len(seed) < 20 {
		seed += "_"
	}
	return sdk.AccAddress([]byte(seed)).String()
}

func validCreateAsset(t *testing.T) types.MsgCreateAsset {
	return types.MsgCreateAsset{
		Creator:        bech32Addr(t, "creator"),
		AssetId:        "macallan-25",
		Name:           "Macallan 25yo Cask 4098",
		Category:       types.AssetCategorySpirits,
		AppraisedValue: 42_000,
		ConditionGrade: "A+",
		ImageUri:       "ipfs://QmYx3k",
	}
}

func TestMsgCreateAssetValidateBasic(t *testing.T) {
	tests := []struct {
		desc string
		mut  func(m *types.MsgCreateAsset)
		err  error
	}{
		{
			desc: "valid",
			mut:  func(m *types.MsgCreateAsset) {},
		},
		{
			desc: "empty image uri is legal",
			mut:  func(m *types.MsgCreateAsset) { m.ImageUri = "" },
		},
		{
			desc: "invalid creator",
			mut:  func(m *types.MsgCreateAsset) { m.Creator = "invalid" },
			err:  sdkerrors.ErrInvalidAddress,
		},
		{
			desc: "blank asset id",
			mut:  func(m *types.MsgCreateAsset) { m.AssetId = "  " },
			err:  sdkerrors.ErrInvalidRequest,
		},
		{
			desc: "asset id too long",
			mut:  func(m *types.MsgCreateAsset) { m.AssetId = strings.Repeat("a", types.AssetIdMaxLen+1) },
			err:  sdkerrors.ErrInvalidRequest,
		},
		{
			desc: "name too long",
			mut:  func(m *types.MsgCreateAsset) { m.Name = strings.Repeat("a", types.NameMaxLen+1) },
			err:  sdkerrors.ErrInvalidRequest,
		},
		{
			desc: "name with control characters",
			mut:  func(m *types.MsgCreateAsset) { m.Name = "bad\x00name" },
			err:  sdkerrors.ErrInvalidRequest,
		},
		{
			desc: "unknown category",
			mut:  func(m *types.MsgCreateAsset) { m.Category = types.AssetCategory(99) },
			err:  sdkerrors.ErrInvalidRequest,
		},
		{
			desc: "condition grade too long",
			mut:  func(m *types.MsgCreateAsset) { m.ConditionGrade = strings.Repeat("a", types.ConditionGradeMaxLen+1) },
			err:  sdkerrors.ErrInvalidRequest,
		},
		{
			desc: "image uri too long",
			mut:  func(m *types.MsgCreateAsset) { m.ImageUri = strings.Repeat("a", types.ImageUriMaxLen+1) },
			err:  sdkerrors.ErrInvalidRequest,
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			msg := validCreateAsset(t)
			tc.mut(&msg)
			err := msg.ValidateBasic()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgUpdateParamsValidateBasic(t *testing.T) {
	msg := types.MsgUpdateParams{Authority: bech32Addr(t, "authority"), Params: types.DefaultParams()}
	require.NoError(t, msg.ValidateBasic())

	msg.Authority = "invalid"
	require.ErrorIs(t, msg.ValidateBasic(), sdkerrors.ErrInvalidAddress)
}
