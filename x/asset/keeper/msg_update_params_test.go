package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"artifacte/x/asset/keeper"
	"artifacte/x/asset/types"
)

func TestUpdateParamsAuthority(t *testing.T) {
	f := initFixture(t)
	server := keeper.NewMsgServerImpl(f.keeper)

	authority := sdk.MustBech32ifyAddressBytes(
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		f.keeper.GetAuthority(),
	)

	_, err := server.UpdateParams(f.ctx, &types.MsgUpdateParams{
		Authority: authority,
		Params:    types.DefaultParams(),
	})
	require.NoError(t, err)

	_, err = server.UpdateParams(f.ctx, &types.MsgUpdateParams{
		Authority: f.bech32Addr(t, "not-the-authority"),
		Params:    types.DefaultParams(),
	})
	require.ErrorIs(t, err, types.ErrInvalidSigner)
}
