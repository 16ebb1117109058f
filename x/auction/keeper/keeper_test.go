package keeper_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/core/address"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	moduletestutil "github.com/cosmos/cosmos-sdk/types/module/testutil"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"artifacte/x/auction/keeper"
	module "artifacte/x/auction/module"
	"artifacte/x/auction/types"
)

// bankMock keeps per-address balances in memory so the escrow flow can be
// exercised without a real bank module.
type bankMock struct {
	balances map[string]sdk.Coins
}

func newBankMock() *bankMock {
	return &bankMock{balances: make(map[string]sdk.Coins)}
}

func (m *bankMock) setBalance(addr sdk.AccAddress, amt sdk.Coins) {
	m.balances[addr.String()] = amt
}

func (m *bankMock) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *bankMock) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

func (m *bankMock) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := m.balances[fromAddr.String()]
	if !from.IsAllGTE(amt) {
		return sdkerrors.ErrInsufficientFunds.Wrapf("%s has %s, needs %s", fromAddr, from, amt)
	}
	m.balances[fromAddr.String()] = from.Sub(amt...)
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

func (m *bankMock) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.SendCoins(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

func (m *bankMock) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}

type fixture struct {
	ctx          sdk.Context
	keeper       keeper.Keeper
	addressCodec address.Codec
	bank         *bankMock
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
	bank := newBankMock()
	k.SetBankKeeper(bank)

	if err := k.Params.Set(sdkCtx, types.DefaultParams()); err != nil {
		t.Fatalf("failed to set params: %v", err)
	}

	// A fixed clock; tests move it with WithBlockTime.
	sdkCtx = sdkCtx.WithBlockTime(time.Unix(1_700_000_000, 0))

	return &fixture{
		ctx:          sdkCtx,
		keeper:       k,
		addressCodec: addrCodec,
		bank:         bank,
	}
}

// bech32Addr builds a deterministic account address from a 20-byte-padded
// seed, the same trick the SDK's own keeper tests use.
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

func (f *fixture) mustAccAddr(t *testing.T, bech string) sdk.AccAddress {
	t.Helper()
	bz, err := f.addressCodec.StringToBytes(bech)
	if err != nil {
		t.Fatalf("decode address: %v", err)
	}
	return sdk.AccAddress(bz)
}
