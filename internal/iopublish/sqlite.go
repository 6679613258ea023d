package iopublish

import (
	"context"
	"database/sql"

	"github.com/gnames/gnzoo/pkg/report"
	_ "modernc.org/sqlite"
)

const dropAnimals = `DROP TABLE IF EXISTS animals`

const createAnimals = `
CREATE TABLE animals (
	uuid TEXT PRIMARY KEY,
	id TEXT NOT NULL,
	name TEXT NOT NULL,
	species TEXT NOT NULL,
	scientific_name TEXT,
	habitat TEXT NOT NULL,
	social_group TEXT NOT NULL,
	age INTEGER,
	sex TEXT,
	color TEXT,
	weight INTEGER,
	birth_date TEXT,
	arrival_date TEXT,
	origin TEXT
)`

const insertAnimal = `
INSERT INTO animals (
	uuid, id, name, species, scientific_name, habitat, social_group,
	age, sex, color, weight, birth_date, arrival_date, origin
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// exportSQLite recreates the animals table and fills it in one
// transaction.
func exportSQLite(ctx context.Context, path string, idx *report.Index) error {
	if err := ensureParent(path); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return SQLiteExportError(path, err)
	}
	defer db.Close()

	for _, q := range []string{dropAnimals, createAnimals} {
		if _, err = db.ExecContext(ctx, q); err != nil {
			return SQLiteExportError(path, err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return SQLiteExportError(path, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertAnimal)
	if err != nil {
		return SQLiteExportError(path, err)
	}
	defer stmt.Close()

	for _, a := range idx.Animals() {
		_, err = stmt.ExecContext(ctx,
			a.UUID.String(), a.ID, a.Name, a.Species.String(), a.Canonical,
			a.HabitatName(), a.Group, a.Age, a.Sex, a.Color, a.Weight,
			a.BirthDate, a.ArrivalDate, a.Origin,
		)
		if err != nil {
			return SQLiteExportError(path, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return SQLiteExportError(path, err)
	}
	return nil
}
