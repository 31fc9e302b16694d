package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureVIUProductID = "656f437c824eaca2136f3f2f"

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestProductListShowsCatalog(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "product", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "products: 2")
	assert.Contains(t, stdout, "VIU")
	assert.Contains(t, stdout, "2 accounts, 4 screens")
	assert.Contains(t, stdout, "no pricing tiers")
}

func TestProductListJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "product", "list", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"AccountCount\": 2")
}

func TestProductListWithoutSnapshotFails(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "product", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no catalog snapshot")
}

func TestProductShowDisplaysPricingTiers(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "product", "show", fixtureVIUProductID)
	require.NoError(t, err)
	assert.Contains(t, stdout, "VIU")
	assert.Contains(t, stdout, "30 days")
	assert.Contains(t, stdout, "฿150")
}

func TestProductShowUnknownProductFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	_, _, err := executeCLI(t, home, "product", "show", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product not found")
}

func TestAccountListRequiresProductFlag(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	_, _, err := executeCLI(t, home, "account", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"product\" not set")
}

func TestAccountListOrdersNewestExpiryFirst(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "account", "list", "--product", fixtureVIUProductID)
	require.NoError(t, err)
	assert.Contains(t, stdout, "VIU (2 accounts)")
	assert.Contains(t, stdout, "(expired)")
	assert.Contains(t, stdout, "(current)")

	fresh := strings.Index(stdout, "acc-fresh")
	stale := strings.Index(stdout, "acc-stale")
	require.NotEqual(t, -1, fresh)
	require.NotEqual(t, -1, stale)
	assert.Less(t, fresh, stale)
}

func TestAccountShowDisplaysDetail(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "account", "show", "acc-fresh")
	require.NoError(t, err)
	assert.Contains(t, stdout, "platform: VIU")
	assert.Contains(t, stdout, "email: fresh@example.com")
	assert.Contains(t, stdout, "ends: 01/03/2099")
	assert.Contains(t, stdout, "30 (30-day package)")
}

func TestAccountShowJSONOutput(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	stdout, _, err := executeCLI(t, home, "account", "show", "acc-fresh", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, "\"PlatformName\": \"VIU\"")
}

func TestAccountCopyRejectsUnknownField(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	_, _, err := executeCLI(t, home, "account", "copy", "acc-fresh", "--field", "username")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported copy field")
}

func TestAccountCopyUnknownAccountFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCatalogFixture(home))

	_, _, err := executeCLI(t, home, "account", "copy", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account not found")
}

func TestRefreshFetchesAndSavesSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/products":
			fmt.Fprintf(w, `{"data":[{"id":%q,"name":"VIU","screen":4,"type":[{"dayType":30,"cost":100,"price":150,"agentPrice":120}]}]}`, fixtureVIUProductID)
		case "/accounts/week":
			fmt.Fprintf(w, `{"data":[{"id":"acc-remote","platform":%q,"userName":"Remote","email":"remote@example.com","password":"pw-remote","dayType":30,"endDate":"2099-05-01","status":"active"}]}`, fixtureVIUProductID)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("HARN_API_BASE_URL", server.URL)

	stdout, _, err := executeCLI(t, home, "refresh")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Fetched 1 products and 1 accounts.")

	data, err := os.ReadFile(filepath.Join(home, ".harn", "catalog.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "acc-remote")

	stdout, _, err = executeCLI(t, home, "account", "list", "--product", fixtureVIUProductID)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Remote (acc-remote)")
}

func TestRefreshBackendFailureLeavesNoSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	home := t.TempDir()
	t.Setenv("HARN_API_BASE_URL", server.URL)

	_, _, err := executeCLI(t, home, "refresh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch products")

	_, statErr := os.Stat(filepath.Join(home, ".harn", "catalog.toml"))
	assert.True(t, os.IsNotExist(statErr))
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeCatalogFixture(home string) error {
	configDir := filepath.Join(home, ".harn")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	catalog := `version = 1
fetched_at = "2025-06-01T00:00:00Z"

[[products]]
id = "` + fixtureVIUProductID + `"
name = "VIU"
screens = 4

[[products.tiers]]
duration_days = 30
cost = 100.0
price = 150.0
agent_price = 120.0

[[products]]
id = "659ed394610988d54ed1fbd5"
name = "WeTV"
screens = 2

[[accounts]]
id = "acc-fresh"
platform = "` + fixtureVIUProductID + `"
user_name = "Fresh"
email = "fresh@example.com"
password = "pw-fresh"
day_type = 30
start_date = "2025-02-01"
end_date = "2099-03-01"
status = "active"

[[accounts]]
id = "acc-stale"
platform = "` + fixtureVIUProductID + `"
user_name = "Stale"
email = "stale@example.com"
password = "pw-stale"
day_type = 28
end_date = "2020-01-10"
status = "used"
`

	return os.WriteFile(filepath.Join(configDir, "catalog.toml"), []byte(catalog), 0o600)
}
