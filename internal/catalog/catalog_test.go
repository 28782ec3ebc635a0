package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/alexanderramin/parcelscout/internal/repository"
	"github.com/alexanderramin/parcelscout/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *CatalogSchema {
	return &CatalogSchema{
		Version: CurrentVersion,
		Properties: []PropertySchema{
			{Address: "1 Main St", TotalUnits: 2, ResidentialUnits: 1},
		},
	}
}

func TestDefault_ContainsBrooklynParcel(t *testing.T) {
	records, err := Default()
	require.NoError(t, err)
	require.Len(t, records, 1)

	p := records[0]
	assert.Equal(t, "5721 18th Avenue", p.Address)
	assert.Equal(t, "Brooklyn", p.City)
	assert.Equal(t, "R5", p.Zoning)
	assert.Equal(t, 1931, p.YearBuilt)
	assert.Equal(t, 8, p.TotalUnits)
	assert.Equal(t, 4, p.ResidentialUnits)
	assert.Equal(t, "Store Building (K4)", p.BuildingClass)
	assert.Len(t, p.ZoningDetails.Permits.Constraints, 2)
	assert.Len(t, p.ZoningDetails.Permits.Recommendations, 2)
	assert.Contains(t, p.ZoningDetails.Overview, "originally built in 1931 as a Store Building (K4).")
	assert.NotContains(t, p.ZoningDetails.Overview, "\n")
	assert.Equal(t,
		"FAR (1.25) limits total buildable area unless additional allowances, such as community facilities or bonuses, are applicable.",
		p.ZoningDetails.Permits.Constraints[1])
}

func TestValidateCatalogSchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateCatalogSchema(validSchema()))
}

func TestValidateCatalogSchema_CollectsAllErrors(t *testing.T) {
	schema := &CatalogSchema{
		Version: 7,
		Properties: []PropertySchema{
			{Address: "", NumFloors: -1},
			{Address: "2 Main St", TotalUnits: 1, ResidentialUnits: 3},
			{Address: "2 Main St"},
			{Address: "3 Main St", ZoningDetails: ZoningSchema{Permits: PermitSchema{Constraints: []string{""}}}},
		},
	}

	errs := ValidateCatalogSchema(schema)
	joined := errors.Join(errs...).Error()
	assert.Contains(t, joined, "version: unsupported value 7")
	assert.Contains(t, joined, "properties[0].address is required")
	assert.Contains(t, joined, "properties[0].num_floors must be >= 0")
	assert.Contains(t, joined, "properties[1].residential_units (3) exceeds total_units (1)")
	assert.Contains(t, joined, "properties[2].address: duplicate of properties[1]")
	assert.Contains(t, joined, "properties[3].zoning_details.permits.constraints[0] is empty")
}

func TestValidateCatalogSchema_WhitespaceAddressIsBlank(t *testing.T) {
	schema := validSchema()
	schema.Properties = append(schema.Properties,
		PropertySchema{Address: "   "},
		PropertySchema{Address: "\t\n"},
	)

	errs := ValidateCatalogSchema(schema)
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], "properties[1].address is required")
	assert.EqualError(t, errs[1], "properties[2].address is required")
}

func TestValidateCatalogSchema_DistinctCaseIsNotDuplicate(t *testing.T) {
	schema := validSchema()
	schema.Properties = append(schema.Properties, PropertySchema{Address: "1 MAIN ST"})
	assert.Empty(t, ValidateCatalogSchema(schema))
}

func TestValidateCatalogSchema_Empty(t *testing.T) {
	errs := ValidateCatalogSchema(&CatalogSchema{Version: CurrentVersion})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one property")
}

func TestParseCatalog_RejectsUnknownFields(t *testing.T) {
	_, err := ParseCatalog([]byte("version: 1\nproperties:\n  - address: x\n    zonning: R5\n"))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := `version: 1
properties:
  - address: "9 Elm St"
    zoning: "C4"
    total_units: 3
    residential_units: 2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "9 Elm St", records[0].Address)
	assert.Equal(t, "C4", records[0].Zoning)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 2\nproperties: []\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromRecord_RoundTrip(t *testing.T) {
	p := testutil.NewTestProperty()
	schema := &CatalogSchema{Version: CurrentVersion, Properties: []PropertySchema{FromRecord(p)}}
	assert.Equal(t, []*domain.PropertyRecord{p}, Convert(schema))
}

func TestSeed_KeepsCatalogOrder(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	records := []*domain.PropertyRecord{
		testutil.NewTestProperty(testutil.WithAddress("Z Street")),
		testutil.NewTestProperty(testutil.WithAddress("A Street")),
	}

	require.NoError(t, Seed(ctx, testutil.NewTestUoW(database), records))

	list, err := repository.NewSQLitePropertyRepo(database).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Z Street", list[0].Address)
	assert.Equal(t, "A Street", list[1].Address)
}

func TestSeed_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	records := []*domain.PropertyRecord{testutil.NewTestProperty(), testutil.NewTestProperty()}

	// Three deletes clear the tables, then each record takes five inserts:
	// row, two constraints, two recommendations. Exec 10 is mid-way through
	// the second record.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 10, Err: errors.New("disk full")}
	err := Seed(context.Background(), uow, records)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	list, err := repository.NewSQLitePropertyRepo(database).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSeed_FailedReseedKeepsPreviousCatalog(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.NewTestFileDB(t)
	require.NoError(t, Seed(ctx, testutil.NewTestUoW(database),
		[]*domain.PropertyRecord{testutil.NewTestProperty(testutil.WithAddress("Old Street"))}))

	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 5, Err: errors.New("disk full")}
	err := Seed(ctx, uow, []*domain.PropertyRecord{testutil.NewTestProperty(testutil.WithAddress("New Street"))})
	require.Error(t, err)

	list, err := repository.NewSQLitePropertyRepo(database).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Old Street", list[0].Address)
	assert.Len(t, list[0].ZoningDetails.Permits.Constraints, 2)
}

func TestSeed_ReseedSameAddresses(t *testing.T) {
	ctx := context.Background()
	database, _ := testutil.NewTestFileDB(t)
	records := []*domain.PropertyRecord{testutil.NewTestProperty()}

	for i := 0; i < 2; i++ {
		require.NoError(t, Seed(ctx, testutil.NewTestUoW(database), records))
	}

	list, err := repository.NewSQLitePropertyRepo(database).List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].ZoningDetails.Permits.Recommendations, 2)
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()
	for _, backend := range []Backend{BackendMemory, BackendSQLite} {
		t.Run(string(backend), func(t *testing.T) {
			store, err := Open(ctx, Options{Backend: backend})
			require.NoError(t, err)
			t.Cleanup(func() { store.Close() })

			p, err := store.FindByAddress(ctx, "5721 18th Avenue")
			require.NoError(t, err)
			assert.Equal(t, "R5", p.Zoning)
			assert.Len(t, p.ZoningDetails.Permits.Recommendations, 2)

			_, err = store.FindByAddress(ctx, "123 Nonexistent St")
			assert.ErrorIs(t, err, repository.ErrNotFound)
		})
	}
}

func TestOpen_SQLiteFileIsRebuilt(t *testing.T) {
	ctx := context.Background()
	opts := Options{Backend: BackendSQLite, DBPath: filepath.Join(t.TempDir(), "catalog.db")}

	for i := 0; i < 2; i++ {
		store, err := Open(ctx, opts)
		require.NoError(t, err)
		list, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
		require.NoError(t, store.Close())
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), Options{Backend: "redis"})
	assert.Error(t, err)
}
