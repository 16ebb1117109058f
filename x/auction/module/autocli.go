package auction

import (
	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"

	"artifacte/x/auction/types"
)

func (am AppModule) AutoCLIOptions() *autocliv1.ModuleOptions {
	return &autocliv1.ModuleOptions{
		Query: &autocliv1.ServiceCommandDescriptor{
			Service: types.Query_serviceDesc.ServiceName,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "Params",
					Use:       "params",
					Short:     "Shows the parameters of the module",
				},
				{
					RpcMethod: "ListAuction",
					Use:       "list-auction",
					Short:     "List all auctions",
				},
				{
					RpcMethod:      "GetAuction",
					Use:            "get-auction [asset-id]",
					Short:          "Gets the auction for an asset",
					Alias:          []string{"show-auction"},
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "asset_id"}},
				},
				{
					RpcMethod:      "Escrow",
					Use:            "escrow [asset-id]",
					Short:          "Shows the custody balance backing an auction",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "asset_id"}},
				},
			},
		},
		Tx: &autocliv1.ServiceCommandDescriptor{
			Service:              types.Msg_serviceDesc.ServiceName,
			EnhanceCustomCommand: true,
			RpcCommandOptions: []*autocliv1.RpcCommandOptions{
				{
					RpcMethod: "UpdateParams",
					Skip:      true, // skipped because authority gated
				},
				{
					RpcMethod:      "CreateAuction",
					Use:            "create [asset-id] [start-price] [end-time]",
					Short:          "Open an auction for an asset",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "asset_id"}, {ProtoField: "start_price"}, {ProtoField: "end_time"}},
				},
				{
					RpcMethod:      "PlaceBid",
					Use:            "bid [asset-id] [amount] [previous-bidder]",
					Short:          "Place a bid, escrowing the amount and refunding the outbid party",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "asset_id"}, {ProtoField: "amount"}, {ProtoField: "previous_bidder"}},
				},
				{
					RpcMethod:      "Settle",
					Use:            "settle [asset-id]",
					Short:          "Settle a finished auction and release escrow to the seller",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "asset_id"}},
				},
			},
		},
	}
}
