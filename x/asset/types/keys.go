package types

import "cosmossdk.io/collections"

const (
	ModuleName = "asset"

	StoreKey = ModuleName

	GovModuleName = "gov"
)

var (
	ParamsKey = collections.NewPrefix("params/")
	AssetKey  = collections.NewPrefix("asset/value/")
)
