package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"artifacte/x/auction/types"
)

func TestEscrowAddressDeterministic(t *testing.T) {
	a := types.EscrowAddress("villa-001")
	b := types.EscrowAddress("villa-001")
	require.Equal(t, a, b)

	other := types.EscrowAddress("villa-002")
	require.NotEqual(t, a, other)
	require.Len(t, a, 32)
}
