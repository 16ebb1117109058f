package preflight_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"artifacte/app"
	"artifacte/app/denom"
	auctiontypes "artifacte/x/auction/types"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/server"
	sdk "github.com/cosmos/cosmos-sdk/types"
	gogoproto "github.com/cosmos/gogoproto/proto"
)

func readFileIfExists(t *testing.T, path string) (string, bool) {
	t.Helper()
	bz, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(bz), true
}

func TestAuctionMsgTypesResolve(t *testing.T) {
	reg := codectypes.NewInterfaceRegistry()
	app.ModuleBasics.RegisterInterfaces(reg)

	urls := []string{
		"/artifacte.auction.v1.MsgCreateAuction",
		"/artifacte.auction.v1.MsgPlaceBid",
		"/artifacte.auction.v1.MsgSettle",
		"/artifacte.asset.v1.MsgCreateAsset",
	}

	resolver, ok := any(reg).(interface {
		Resolve(string) (gogoproto.Message, error)
	})
	require.True(t, ok, "interface registry missing Resolve implementation")

	for _, url := range urls {
		msg, err := resolver.Resolve(url)
		require.NoError(t, err, "unknown MsgTypeURL: %s", url)
		if _, ok := any(msg).(sdk.Msg); !ok {
			t.Fatalf("TypeURL %s resolved to %T, not sdk.Msg", url, msg)
		}
	}
}

func TestForeignDenomMinGasPricesRejected(t *testing.T) {
	opts := testAppOptions{
		server.FlagMinGasPrices: "0.1uatom",
	}
	err := app.EnsureBaseDenomMinGasPrices(opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), denom.BaseDenom)

	opts = testAppOptions{
		server.FlagMinGasPrices: "0.01" + denom.BaseDenom,
	}
	require.NoError(t, app.EnsureBaseDenomMinGasPrices(opts))

	require.NoError(t, app.EnsureBaseDenomMinGasPrices(testAppOptions{}))
}

func TestEscrowAddressDerivation(t *testing.T) {
	a := auctiontypes.EscrowAddress("villa-042")
	b := auctiontypes.EscrowAddress("villa-042")
	c := auctiontypes.EscrowAddress("watch-007")

	require.Equal(t, a, b, "escrow address must be a pure function of the asset id")
	require.NotEqual(t, a, c, "distinct assets must escrow into distinct accounts")
	require.Len(t, a, 32)
}

func TestMsgCapsPresent(t *testing.T) {
	repoRoot := findRepoRoot(t)
	checks := map[string][]string{
		"x/auction/types/limits.go": {"AssetIdMaxLen"},
		"x/asset/types/limits.go":   {"NameMaxLen", "ConditionGradeMaxLen", "ImageUriMaxLen"},
	}
	for file, tokens := range checks {
		contents, ok := readFileIfExists(t, filepath.Join(repoRoot, file))
		require.Truef(t, ok, "%s must exist", file)
		for _, token := range tokens {
			if !strings.Contains(contents, token) {
				t.Fatalf("%s missing constant %s", file, token)
			}
		}
	}
}

func TestNoHiddenMinGasPrices(t *testing.T) {
	repoRoot := findRepoRoot(t)
	allowed := map[string]struct{}{
		"app/min_gas_guard.go":              {},
		"cmd/artifacted/cmd/commands.go":    {},
		"tests/preflight/preflight_test.go": {},
	}
	keywords := [][]byte{
		[]byte("mingasprices"),
		[]byte("minimum-gas-prices"),
	}

	walkGoFiles(t, repoRoot, func(rel string, data []byte) {
		lower := bytes.ToLower(data)
		for _, needle := range keywords {
			if !bytes.Contains(lower, needle) {
				continue
			}
			if _, ok := allowed[rel]; ok {
				continue
			}
			t.Fatalf("unexpected minimum-gas-prices reference found in %s", rel)
		}
	})
}

func findRepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "../.."))
}

type testAppOptions map[string]interface{}

func (o testAppOptions) Get(key string) interface{} { return o[key] }

func walkGoFiles(t *testing.T, root string, fn func(rel string, data []byte)) {
	t.Helper()
	skip := map[string]bool{
		"vendor": true,
		"docs":   true,
		"proto":  true,
	}

	if err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			base := filepath.Base(path)
			// Same rule as the go tool: _ and . prefixed trees are not part
			// of the build.
			if path != root && (skip[base] || strings.HasPrefix(base, "_") || strings.HasPrefix(base, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		bz, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		fn(filepath.ToSlash(rel), bz)
		return nil
	}); err != nil {
		t.Fatalf("walk go files: %v", err)
	}
}
