package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/parcelscout/internal/catalog"
	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/alexanderramin/parcelscout/internal/repository"
	"github.com/alexanderramin/parcelscout/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// testApp wires an App over the built-in catalog with the given search delay.
func testApp(t *testing.T, delay time.Duration) *App {
	t.Helper()
	records, err := catalog.Default()
	require.NoError(t, err)
	return testAppWith(t, delay, records...)
}

// testAppWith wires an App over exactly the given records.
func testAppWith(t *testing.T, delay time.Duration, records ...*domain.PropertyRecord) *App {
	t.Helper()
	repo, err := repository.NewMemoryPropertyRepo(records)
	require.NoError(t, err)
	return &App{Lookup: service.NewLookupService(repo, delay)}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- Root command ---

func TestRootCmd_NonInteractivePrintsHelp(t *testing.T) {
	out, err := executeCmd(t, testApp(t, 0))
	require.NoError(t, err)
	assert.Contains(t, out, "lookup")
	assert.Contains(t, out, "list")
}

func TestRootCmd_WiresFromFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARCELSCOUT_CONFIG", "")

	app := &App{}
	defer app.Close()

	out, err := executeCmd(t, app, "--backend", "sqlite", "--delay", "0s", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "5721 18th Avenue")
	require.NotNil(t, app.Lookup)
	assert.Zero(t, app.Lookup.Delay())
}

func TestRootCmd_RejectsBadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PARCELSCOUT_CONFIG", "")

	app := &App{}
	defer app.Close()

	_, err := executeCmd(t, app, "--backend", "postgres", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.backend")
	assert.Nil(t, app.Lookup)
}

// --- list ---

func TestListCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t, 0), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ADDRESS")
	assert.Contains(t, out, "5721 18th Avenue")
	assert.Contains(t, out, "Brooklyn")
	assert.Contains(t, out, "R5")
}

// --- lookup ---

func TestLookupCmd_Found(t *testing.T) {
	out, err := executeCmd(t, testApp(t, 0), "lookup", "5721 18th Avenue")
	require.NoError(t, err)

	assert.Contains(t, out, "is zoned R5")
	assert.Contains(t, out, "Property Overview")
	assert.Contains(t, out, "Permits and Approvals")
	assert.Contains(t, out, "Properties")
	assert.Regexp(t, `Year Built\s+1931`, out)
	assert.Regexp(t, `Total Units\s+8`, out)
}

func TestLookupCmd_NotFound(t *testing.T) {
	out, err := executeCmd(t, testApp(t, 0), "lookup", "123 Nonexistent St")
	require.NoError(t, err)

	assert.Contains(t, out, "Property not found. Please check the address and try again.")
	assert.NotContains(t, out, "Properties")
	assert.NotContains(t, out, "Permits and Approvals")
}

func TestLookupCmd_ExactMatchOnly(t *testing.T) {
	for _, addr := range []string{"5721 18th avenue", " 5721 18th Avenue", "5721 18th Avenue "} {
		out, err := executeCmd(t, testApp(t, 0), "lookup", addr)
		require.NoError(t, err)
		assert.Contains(t, out, "Property not found.", "address %q", addr)
	}
}

func TestLookupCmd_SingleTab(t *testing.T) {
	out, err := executeCmd(t, testApp(t, 0), "lookup", "--tab", "summary", "5721 18th Avenue")
	require.NoError(t, err)

	assert.Contains(t, out, "Property Overview")
	assert.NotContains(t, out, "is zoned R5, perfect")
	assert.NotContains(t, out, "Permits and Approvals")
	assert.Contains(t, out, "Properties")
}

func TestLookupCmd_BadTab(t *testing.T) {
	_, err := executeCmd(t, testApp(t, 0), "lookup", "--tab", "map", "5721 18th Avenue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tab")
}

func TestLookupCmd_BadFormat(t *testing.T) {
	_, err := executeCmd(t, testApp(t, 0), "lookup", "-o", "json", "5721 18th Avenue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestLookupCmd_BlankAddress(t *testing.T) {
	_, err := executeCmd(t, testApp(t, 0), "lookup", "   ")
	assert.ErrorIs(t, err, errBlankAddress)

	// No argument and no terminal to prompt on.
	_, err = executeCmd(t, testApp(t, 0), "lookup")
	assert.ErrorIs(t, err, errBlankAddress)
}

func TestLookupCmd_YAML(t *testing.T) {
	out, err := executeCmd(t, testApp(t, 0), "lookup", "--format", "yaml", "5721 18th Avenue")
	require.NoError(t, err)

	var doc lookupOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "5721 18th Avenue", doc.Query)
	assert.Equal(t, "found", string(doc.Outcome))
	require.NotNil(t, doc.Property)
	assert.Equal(t, 1931, doc.Property.YearBuilt)
	assert.Len(t, doc.Property.ZoningDetails.Permits.Constraints, 2)
}

func TestLookupCmd_YAMLNotFound(t *testing.T) {
	out, err := executeCmd(t, testApp(t, 0), "lookup", "-o", "yaml", "nowhere")
	require.NoError(t, err)

	var doc lookupOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "not_found", string(doc.Outcome))
	assert.Equal(t, "Property not found. Please check the address and try again.", doc.Message)
	assert.Nil(t, doc.Property)
}

func TestLookupCmd_Markdown(t *testing.T) {
	out, err := executeCmd(t, testApp(t, 0), "lookup", "--format", "markdown", "--tab", "tasks", "5721 18th Avenue")
	require.NoError(t, err)

	assert.Contains(t, out, "Permits and Approvals")
	assert.Contains(t, out, "Submit Zoning Compliance Review")
	assert.NotContains(t, out, "Property Overview")
}

func TestLookupCmd_HonoursCancellation(t *testing.T) {
	app := testApp(t, time.Hour)
	root := NewRootCmd(app)
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"lookup", "5721 18th Avenue"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := root.ExecuteContext(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
