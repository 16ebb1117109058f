package keeper_test

import (
	"strconv"
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"artifacte/x/asset/keeper"
	"artifacte/x/asset/types"
)

func TestCreateAssetStoresRecord(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	creator := f.bech32Addr(t, "creator")

	for i := 0; i < 5; i++ {
		assetID := "asset-" + strconv.Itoa(i)
		_, err := srv.CreateAsset(f.ctx, &types.MsgCreateAsset{
			Creator:        creator,
			AssetId:        assetID,
			Name:           "Lot " + strconv.Itoa(i),
			Category:       types.AssetCategoryRealEstate,
			AppraisedValue: 500_000,
			ConditionGrade: "A",
			ImageUri:       "ipfs://Qm" + strconv.Itoa(i),
		})
		require.NoError(t, err)

		rst, err := f.keeper.Asset.Get(f.ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, creator, rst.Authority)
		require.Equal(t, types.AssetCategoryRealEstate, rst.Category)
		require.Equal(t, uint64(500_000), rst.AppraisedValue)
		require.Equal(t, f.ctx.BlockTime().Unix(), rst.CreatedAt)
		require.False(t, rst.Fractionalized)
	}
}

func TestCreateAssetRejectsDuplicate(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	creator := f.bech32Addr(t, "creator")

	msg := &types.MsgCreateAsset{
		Creator:        creator,
		AssetId:        "macallan-25",
		Name:           "Macallan 25yo Cask 4098",
		Category:       types.AssetCategorySpirits,
		AppraisedValue: 42_000,
		ConditionGrade: "A+",
	}
	_, err := srv.CreateAsset(f.ctx, msg)
	require.NoError(t, err)

	_, err = srv.CreateAsset(f.ctx, msg)
	require.ErrorIs(t, err, types.ErrAssetExists)
}

func TestCreateAssetRejectsBadCreator(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)

	_, err := srv.CreateAsset(f.ctx, &types.MsgCreateAsset{
		Creator: "invalid",
		AssetId: "macallan-25",
		Name:    "Macallan 25yo",
	})
	require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)
}

func TestCreateAssetEveryCategory(t *testing.T) {
	f := initFixture(t)
	srv := keeper.NewMsgServerImpl(f.keeper)
	creator := f.bech32Addr(t, "creator")

	categories := []types.AssetCategory{
		types.AssetCategoryRealEstate,
		types.AssetCategoryDigitalArt,
		types.AssetCategoryAgriculture,
		types.AssetCategoryAviation,
		types.AssetCategoryPreciousMetals,
		types.AssetCategoryLuxury,
		types.AssetCategorySpirits,
	}
	for i, cat := range categories {
		assetID := "asset-" + strconv.Itoa(i)
		_, err := srv.CreateAsset(f.ctx, &types.MsgCreateAsset{
			Creator:        creator,
			AssetId:        assetID,
			Name:           cat.String(),
			Category:       cat,
			AppraisedValue: 1,
			ConditionGrade: "B",
		})
		require.NoError(t, err)

		rst, err := f.keeper.Asset.Get(f.ctx, assetID)
		require.NoError(t, err)
		require.Equal(t, cat, rst.Category)
	}
}
