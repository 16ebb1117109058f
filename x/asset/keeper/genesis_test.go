package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"artifacte/x/asset/types"
)

func TestGenesis(t *testing.T) {
	genesisState := types.GenesisState{
		Params: types.DefaultParams(),
		Assets: []types.Asset{
			{AssetId: "0", Name: "Lot 0", Category: types.AssetCategoryRealEstate},
			{AssetId: "1", Name: "Lot 1", Category: types.AssetCategorySpirits, Fractionalized: true},
		},
	}

	f := initFixture(t)
	err := f.keeper.InitGenesis(f.ctx, genesisState)
	require.NoError(t, err)
	got, err := f.keeper.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.EqualExportedValues(t, genesisState.Params, got.Params)
	require.EqualExportedValues(t, genesisState.Assets, got.Assets)
}
