package types

import "fmt"

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:   DefaultParams(),
		Auctions: []Auction{},
	}
}

func (gs GenesisState) Validate() error {
	assetIndexMap := make(map[string]struct{})
	for _, elem := range gs.Auctions {
		if _, ok := assetIndexMap[elem.AssetId]; ok {
			return fmt.Errorf("duplicated asset id for auction")
		}
		assetIndexMap[elem.AssetId] = struct{}{}

		if (elem.CurrentBid == 0) != (elem.CurrentBidder == "") {
			return fmt.Errorf("auction %s: current bid and current bidder out of sync", elem.AssetId)
		}
	}

	return gs.Params.Validate()
}
