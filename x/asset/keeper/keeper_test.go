package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"artifacte/x/asset/keeper"
	module "artifacte/x/asset/module"
	"artifacte/x/asset/types"
)

type fixture struct {
	ctx          sdk.Context
	keeper       keeper.Keeper
	addressCodec address.Codec
}

func initFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := sdk.GetConfig()
	cfg.SetBech32PrefixForAccount("arti", "artipub")
	cfg.SetBech32PrefixForValidator("artivaloper", "artivaloperpub")
	cfg.SetBech32PrefixForConsensusNode("artivalcons", "artivalconspub")

	encCfg := moduletestutil.MakeTestEncodingConfig(module.AppModule{})
	addrCodec := addresscodec.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix())
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	storeService := runtime.NewKVStoreService(storeKey)
	sdkCtx := testutil.DefaultContextWithDB(t, storeKey, storetypes.NewTransientStoreKey("transient_test")).Ctx

	authority := authtypes.NewModuleAddress(types.GovModuleName)

	k := keeper.NewKeeper(storeService, encCfg.Codec, addrCodec, authority)

	if err := k.Params.Set(sdkCtx, types.DefaultParams()); err != nil {
		t.Fatalf("failed to set params: %v", err)
	}

	sdkCtx = sdkCtx.WithBlockTime(time.Unix(1_700_000_000, 0))

	return &fixture{
		ctx:          sdkCtx,
		keeper:       k,
		addressCodec: addrCodec,
	}
}

func (f *fixture) bech32Addr(t *testing.T, seed string) string {
	t.Helper()
	for len(seed) < 20 {
		seed += "_"
	}
	addr, err := f.addressCodec.BytesToString([]byte(seed))
	if err != nil {
		t.Fatalf("encode address: %v", err)
	}
	return addr
}
