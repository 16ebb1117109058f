package app

import (
	sdkmath "cosmossdk.io/math"
	govv1 "github.com/cosmos/cosmos-sdk/x/gov/types/v1"
)

// raise x/gov quorum/threshold defaults before any module initialises.
func init() {
	govv1.DefaultQuorum = sdkmath.LegacyMustNewDecFromStr("0.5")
	govv1.DefaultThreshold = sdkmath.LegacyMustNewDecFromStr("0.667")
	govv1.DefaultExpeditedThreshold = sdkmath.LegacyMustNewDecFromStr("0.8")
	govv1.DefaultVetoThreshold = sdkmath.LegacyMustNewDecFromStr("0.334")
}
