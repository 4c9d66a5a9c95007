package ioexport_test

import (
	"context"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gntraits/internal/ioexport"
	"github.com/gnames/gntraits/pkg/traits"
	"github.com/stretchr/testify/assert"
	_ "modernc.org/sqlite"
)

func testTable() *traits.Table {
	var table traits.Table
	table.Append(
		traits.Row{
			Species: "Escherichia coli",
			SetType: traits.SetMetabolite,
			SetID:   "glucose",
			Value:   "+",
		},
		traits.Row{
			Species: "Escherichia coli",
			SetType: traits.SetGramStain,
			SetID:   traits.SetGramStain,
			Value:   "negative",
		},
	)
	return &table
}

func TestWriteCSV(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "out.csv")

	err := ioexport.WriteCSV(path, testTable())
	assert.Nil(err)

	f, err := os.Open(path)
	assert.Nil(err)
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	assert.Nil(err)
	assert.Equal(3, len(recs))
	assert.Equal(traits.Headers(), recs[0])
	assert.Equal(
		[]string{"Escherichia coli", "metabolite", "glucose", "+"},
		recs[1],
	)
	assert.Equal(
		[]string{"Escherichia coli", "gram_stain", "gram_stain", "negative"},
		recs[2],
	)
}

func TestWriteCSVBadPath(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "no-such-dir", "out.csv")
	err := ioexport.WriteCSV(path, testTable())
	assert.NotNil(err)
}

func TestWriteSQLite(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "out.sqlite")
	ctx := context.Background()

	err := ioexport.WriteSQLite(ctx, path, testTable())
	assert.Nil(err)

	db, err := sql.Open("sqlite", path)
	assert.Nil(err)
	defer db.Close()

	var count int
	err = db.QueryRowContext(ctx,
		"SELECT count(*) FROM trait_rows").Scan(&count)
	assert.Nil(err)
	assert.Equal(2, count)

	var value string
	err = db.QueryRowContext(ctx,
		`SELECT value FROM trait_rows
		 WHERE set_type = 'gram_stain'`).Scan(&value)
	assert.Nil(err)
	assert.Equal("negative", value)
}

// A second write replaces the previous run instead of appending to it.
func TestWriteSQLiteRewrite(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "out.sqlite")
	ctx := context.Background()

	err := ioexport.WriteSQLite(ctx, path, testTable())
	assert.Nil(err)
	err = ioexport.WriteSQLite(ctx, path, testTable())
	assert.Nil(err)

	db, err := sql.Open("sqlite", path)
	assert.Nil(err)
	defer db.Close()

	var count int
	err = db.QueryRowContext(ctx,
		"SELECT count(*) FROM trait_rows").Scan(&count)
	assert.Nil(err)
	assert.Equal(2, count)
}
