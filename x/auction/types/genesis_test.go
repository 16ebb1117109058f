package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"artifacte/x/auction/types"
)

func TestGenesisState_Validate(t *testing.T) {
	tests := []struct {
		desc     string
		genState *types.GenesisState
		valid    bool
	}{
		{
			desc:     "default is valid",
			genState: types.DefaultGenesis(),
			valid:    true,
		},
		{
			desc: "valid genesis state",
			genState: &types.GenesisState{
				Params: types.DefaultParams(),
				Auctions: []types.Auction{
					{AssetId: "0"},
					{AssetId: "1", CurrentBid: 10, CurrentBidder: "bidder"},
				},
			},
			valid: true,
		},
		{
			desc: "duplicated auction",
			genState: &types.GenesisState{
				Params:   types.DefaultParams(),
				Auctions: []types.Auction{{AssetId: "0"}, {AssetId: "0"}},
			},
			valid: false,
		},
		{
			desc: "bid without bidder",
			genState: &types.GenesisState{
				Params:   types.DefaultParams(),
				Auctions: []types.Auction{{AssetId: "0", CurrentBid: 10}},
			},
			valid: false,
		},
		{
			desc: "bidder without bid",
			genState: &types.GenesisState{
				Params:   types.DefaultParams(),
				Auctions: []types.Auction{{AssetId: "0", CurrentBidder: "bidder"}},
			},
			valid: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.genState.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
