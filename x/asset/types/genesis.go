package types

import "fmt"

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Assets: []Asset{},
	}
}

func (gs GenesisState) Validate() error {
	assetIndexMap := make(map[string]struct{})
	for _, elem := range gs.Assets {
		if _, ok := assetIndexMap[elem.AssetId]; ok {
			return fmt.Errorf("duplicated asset id")
		}
		assetIndexMap[elem.AssetId] = struct{}{}
	}

	return gs.Params.Validate()
}
