package app

import (
	"fmt"
	"strings"

	"github.com/cosmos/cosmos-sdk/server"
	servertypes "github.com/cosmos/cosmos-sdk/server/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"artifacte/app/denom"
)

// EnsureBaseDenomMinGasPrices validates that --minimum-gas-prices, when set,
// is denominated entirely in the chain's base denom. Returns an error instead
// of panicking so callers can decide how to handle failures.
func EnsureBaseDenomMinGasPrices(appOpts servertypes.AppOptions) error {
	if appOpts == nil {
		return nil
	}
	raw := appOpts.Get(server.FlagMinGasPrices)
	if raw == nil {
		return nil
	}

	minGas := strings.TrimSpace(fmt.Sprintf("%v", raw))
	if minGas == "" {
		return nil
	}

	prices, err := sdk.ParseDecCoins(minGas)
	if err != nil {
		return fmt.Errorf("invalid minimum-gas-prices %q: %w", minGas, err)
	}
	for _, p := range prices {
		if p.Denom != denom.BaseDenom {
			return fmt.Errorf("minimum-gas-prices must be quoted in %s (got %q)", denom.BaseDenom, p.Denom)
		}
	}
	return nil
}
