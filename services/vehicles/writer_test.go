package vehicles

import (
	"context"
	"testing"
	"wtdata-backend/lib/testutil"
	"wtdata-backend/services/vehicles/db"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestPersistRoundTrip(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/vehicles",
		DbSchema: db.Schema,
	})
	defer cleanup()

	ctx := context.Background()
	record := Assemble(ctx, parsePage(t, aviationPage), Aviation)
	err := Persist(ctx, setup.DB, record)
	if err != nil {
		t.Fatal(err)
	}

	rows, err := setup.DB.QueryContext(ctx, "SELECT * FROM aviation")
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	require.True(t, rows.Next())
	row, err := ScanRowMap(rows)
	require.NoError(t, err)

	require.Equal(t, "P-51D-5", asString(row["name"]))
	require.Equal(t, "USA", asString(row["nation"]))
	require.Equal(t, "IV", asString(row["rank"]))
	require.Equal(t, "170000", asString(row["purchase"]))
	require.Equal(t, "1", asString(row["crew"]))
	// out-of-range numbers are stored as NULL, not zero
	require.Nil(t, row["max_altitude"])

	require.False(t, rows.Next())
	require.NoError(t, rows.Err())
}

func TestPersistDefaults(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/vehicles",
		DbSchema: db.Schema,
	})
	defer cleanup()

	ctx := context.Background()
	empty := parsePage(t, "<html><body></body></html>")
	record := Assemble(ctx, empty, Ground)
	err := Persist(ctx, setup.DB, record)
	if err != nil {
		t.Fatal(err)
	}

	rows, err := setup.DB.QueryContext(ctx, "SELECT * FROM ground")
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	require.True(t, rows.Next())
	row, err := ScanRowMap(rows)
	require.NoError(t, err)

	require.Equal(t, "Unknown", asString(row["name"]))
	require.Equal(t, "0", asString(row["purchase"]))
	require.Equal(t, "0", asString(row["research"]))
	require.Equal(t, "Unknown", asString(row["optics_gunner_device"]))
	require.Nil(t, row["AB"])
	require.Nil(t, row["crew"])

	shaped := Shape(Ground, row)
	require.Nil(t, shaped["AB"])
	require.Nil(t, shaped["crew"])
	require.Equal(t, 0.0, shaped["purchase"])
	require.Equal(t, 0, shaped["rank"])
	require.Equal(t, "Unknown", shaped["name"])
}

func TestPersistAppendOnly(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/vehicles",
		DbSchema: db.Schema,
	})
	defer cleanup()

	ctx := context.Background()
	record := Assemble(ctx, parsePage(t, helicopterPage), Helicopter)
	require.NoError(t, Persist(ctx, setup.DB, record))
	require.NoError(t, Persist(ctx, setup.DB, record))

	var count int
	err := setup.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM helicopters").Scan(&count)
	if err != nil {
		t.Fatal(err)
	}
	// identical records accumulate, there is no dedup on write
	require.Equal(t, 2, count)
}
