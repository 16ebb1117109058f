package types_test

import (
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"artifacte/x/auction/types"
)

func bech32Addr(t *testing.T, seed string) string {
	t.Helper()
	for len(seed) < 20 {
		seed += "_"
	}
	return sdk.AccAddress([]byte(seed)).String()
}

func TestMsgCreateAuctionValidateBasic(t *testing.T) {
	creator := bech32Addr(t, "creator")
	tests := []struct {
		desc string
		msg  types.MsgCreateAuction
		err  error
	}{
		{
			desc: "valid",
			msg:  types.MsgCreateAuction{Creator: creator, AssetId: "villa-001", StartPrice: 100, EndTime: 1},
		},
		{
			desc: "zero start price is legal",
			msg:  types.MsgCreateAuction{Creator: creator, AssetId: "villa-001"},
		},
		{
			desc: "invalid creator",
			msg:  types.MsgCreateAuction{Creator: "invalid", AssetId: "villa-001"},
			err:  sdkerrors.ErrInvalidAddress,
		},
		{
			desc: "empty asset id",
			msg:  types.MsgCreateAuction{Creator: creator, AssetId: "   "},
			err:  sdkerrors.ErrInvalidRequest,
		},
		{
			desc: "asset id too long",
			msg:  types.MsgCreateAuction{Creator: creator, AssetId: strings.Repeat("a", types.AssetIdMaxLen+1)},
			err:  sdkerrors.ErrInvalidRequest,
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgPlaceBidValidateBasic(t *testing.T) {
	creator := bech32Addr(t, "creator")
	prev := bech32Addr(t, "previous")
	tests := []struct {
		desc string
		msg  types.MsgPlaceBid
		err  error
	}{
		{
			desc: "valid without previous bidder",
			msg:  types.MsgPlaceBid{Creator: creator, AssetId: "villa-001", Amount: 1},
		},
		{
			desc: "valid with previous bidder",
			msg:  types.MsgPlaceBid{Creator: creator, AssetId: "villa-001", Amount: 1, PreviousBidder: prev},
		},
		{
			desc: "invalid creator",
			msg:  types.MsgPlaceBid{Creator: "invalid", AssetId: "villa-001", Amount: 1},
			err:  sdkerrors.ErrInvalidAddress,
		},
		{
			desc: "zero amount",
			msg:  types.MsgPlaceBid{Creator: creator, AssetId: "villa-001", Amount: 0},
			err:  sdkerrors.ErrInvalidRequest,
		},
		{
			desc: "invalid previous bidder",
			msg:  types.MsgPlaceBid{Creator: creator, AssetId: "villa-001", Amount: 1, PreviousBidder: "invalid"},
			err:  sdkerrors.ErrInvalidAddress,
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgSettleValidateBasic(t *testing.T) {
	creator := bech32Addr(t, "creator")

	msg := types.MsgSettle{Creator: creator, AssetId: "villa-001"}
	require.NoError(t, msg.ValidateBasic())

	msg = types.MsgSettle{Creator: "invalid", AssetId: "villa-001"}
	require.ErrorIs(t, msg.ValidateBasic(), sdkerrors.ErrInvalidAddress)

	msg = types.MsgSettle{Creator: creator, AssetId: ""}
	require.ErrorIs(t, msg.ValidateBasic(), sdkerrors.ErrInvalidRequest)
}

func TestMsgUpdateParamsValidateBasic(t *testing.T) {
	msg := types.MsgUpdateParams{Authority: bech32Addr(t, "authority"), Params: types.DefaultParams()}
	require.NoError(t, msg.ValidateBasic())

	msg.Authority = "invalid"
	require.ErrorIs(t, msg.ValidateBasic(), sdkerrors.ErrInvalidAddress)
}
