package types_test

import (
	"testing"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/stretchr/testify/require"

	"artifacte/x/asset/types"
)

func TestServiceDescriptors(t *testing.T) {
	require.Equal(t, "artifacte.asset.v1.Msg", types.Msg_serviceDesc.ServiceName)
	require.Equal(t, "artifacte.asset.v1.Query", types.Query_serviceDesc.ServiceName)

	msgMethods := make(map[string]bool)
	for _, m := range types.Msg_serviceDesc.Methods {
		msgMethods[m.MethodName] = true
	}
	for _, want := range []string{"CreateAsset", "UpdateParams"} {
		require.Truef(t, msgMethods[want], "Msg service missing method %s", want)
	}

	queryMethods := make(map[string]bool)
	for _, m := range types.Query_serviceDesc.Methods {
		queryMethods[m.MethodName] = true
	}
	for _, want := range []string{"Params", "GetAsset", "ListAsset"} {
		require.Truef(t, queryMethods[want], "Query service missing method %s", want)
	}
}

func TestRegisterInterfaces(t *testing.T) {
	reg := codectypes.NewInterfaceRegistry()
	types.RegisterInterfaces(reg)

	for _, url := range []string{
		"/artifacte.asset.v1.MsgCreateAsset",
		"/artifacte.asset.v1.MsgUpdateParams",
	} {
		_, err := reg.Resolve(url)
		require.NoErrorf(t, err, "unresolved type URL %s", url)
	}
}
