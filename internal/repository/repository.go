// Package repository holds what the table repositories share: the schema
// migration and the transaction helper.
package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"
)

//go:embed schema.sql
var schema string

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *dbpg.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}

// WithTx runs fn inside a transaction on the master node. The transaction
// is committed if fn returns nil and rolled back otherwise.
func WithTx(ctx context.Context, db *dbpg.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zlog.Logger.Error().Err(rbErr).Msg("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
