package keeper

import (
	"context"

	"artifacte/x/auction/types"
)

func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.Params.Set(ctx, genState.Params); err != nil {
		return err
	}

	for _, elem := range genState.Auctions {
		if err := k.Auction.Set(ctx, elem.AssetId, elem); err != nil {
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

	if err := k.Auction.Walk(ctx, nil, func(_ string, val types.Auction) (stop bool, err error) {
		genesis.Auctions = append(genesis.Auctions, val)
		return false, nil
	}); err != nil {
		return nil, err
	}

	return genesis, nil
}
