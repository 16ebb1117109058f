package keeper

import (
	"context"

	"artifacte/x/asset/types"
)

func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.Params.Set(ctx, genState.Params); err != nil {
		return err
	}

	for _, elem := range genState.Assets {
		if err := k.Asset.Set(ctx, elem.AssetId, elem); err != nil {
			return err
		}
	}

	return nil
}

func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()

	params, err := k.Params.Get(ctx)
	if err != nil {
		params = types.DefaultParams()
	}
	genesis.Params = params

	if err := k.Asset.Walk(ctx, nil, func(_ string, val types.Asset) (stop bool, err error) {
		genesis.Assets = append(genesis.Assets, val)
		return false, nil
	}); err != nil {
		return nil, err
	}

	return genesis, nil
}
