package auction

import (
	"context"

	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"
	"cosmossdk.io/depinject/appconfig"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	"artifacte/x/auction/keeper"
	"artifacte/x/auction/types"
)

var _ depinject.OnePerModuleType = AppModule{}

func (AppModule) IsOnePerModuleType() {}

func init() {
	appconfig.Register(
		&types.Module{},
		appconfig.Provide(ProvideModule),
	)
}

type ModuleInputs struct {
	depinject.In

	Config       *types.Module
	StoreService store.KVStoreService
	Cdc          codec.Codec
	AddressCodec address.Codec

	AuthKeeper types.AuthKeeper
	BankKeeper bankkeeper.Keeper
}

type ModuleOutputs struct {
	depinject.Out

	AuctionKeeper keeper.Keeper
	Module        appmodule.AppModule
}

func ProvideModule(in ModuleInputs) ModuleOutputs {
	authority := authtypes.NewModuleAddress(types.GovModuleName)
	if in.Config.Authority != "" {
		authority = authtypes.NewModuleAddressOrBech32Address(in.Config.Authority)
	}
	k := keeper.NewKeeper(
		in.StoreService,
		in.Cdc,
		in.AddressCodec,
		authority,
	)
	k.SetBankKeeper(bankAdapter{bk: in.BankKeeper})
	m := NewAppModule(in.Cdc, k, in.AuthKeeper, bankAdapter{bk: in.BankKeeper})

	return ModuleOutputs{AuctionKeeper: k, Module: m}
}

type bankAdapter struct{ bk bankkeeper.Keeper }

// Implement the subset used by this module
func (b bankAdapter) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return b.bk.GetBalance(ctx, addr, denom)
}
func (b bankAdapter) SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	return b.bk.SpendableCoins(ctx, addr)
}
func (b bankAdapter) SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	return b.bk.SendCoins(ctx, from, to, amt)
}
func (b bankAdapter) SendCoinsFromAccountToModule(ctx context.Context, sender sdk.AccAddress, module string, amt sdk.Coins) error {
	return b.bk.SendCoinsFromAccountToModule(ctx, sender, module, amt)
}
func (b bankAdapter) SendCoinsFromModuleToAccount(ctx context.Context, module string, rcpt sdk.AccAddress, amt sdk.Coins) error {
	return b.bk.SendCoinsFromModuleToAccount(ctx, module, rcpt, amt)
}
