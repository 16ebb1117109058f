package asset

import (
	autocliv1 "cosmossdk.io/api/cosmos/autocli/v1"

	"artifacte/x/asset/types"
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
					RpcMethod: "ListAsset",
					Use:       "list-asset",
					Short:     "List all registered assets",
				},
				{
					RpcMethod:      "GetAsset",
					Use:            "get-asset [asset-id]",
					Short:          "Gets a registered asset",
					Alias:          []string{"show-asset"},
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
					RpcMethod:      "CreateAsset",
					Use:            "create [asset-id] [name] [category] [appraised-value] [condition-grade] [image-uri]",
					Short:          "Register an asset record",
					PositionalArgs: []*autocliv1.PositionalArgDescriptor{{ProtoField: "asset_id"}, {ProtoField: "name"}, {ProtoField: "category"}, {ProtoField: "appraised_value"}, {ProtoField: "condition_grade"}, {ProtoField: "image_uri"}},
				},
			},
		},
	}
}
