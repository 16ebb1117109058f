package types

import "cosmossdk.io/collections"

const (
	ModuleName = "auction"

	StoreKey = ModuleName

	GovModuleName = "gov"
)

var (
	ParamsKey  = collections.NewPrefix("params/")
	AuctionKey = collections.NewPrefix("auction/value/")
)
