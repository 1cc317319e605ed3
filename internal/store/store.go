// Package store keeps archived runs in a SQL database. MySQL and SQLite are
// supported through database/sql.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	arithbench "github.com/varex83/acs-lab-1"
	"github.com/varex83/acs-lab-1/internal/bench"
)

// Driver names accepted by Open.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS arith_results (
	run_date    VARCHAR(32)  NOT NULL,
	toolchain   VARCHAR(128) NOT NULL,
	seq         INTEGER      NOT NULL,
	op          VARCHAR(4)   NOT NULL,
	type_name   VARCHAR(16)  NOT NULL,
	duration_ns BIGINT       NOT NULL,
	rate        DOUBLE       NOT NULL,
	iterations  BIGINT       NOT NULL
)`

// Store is a handle on the results table.
type Store struct {
	db *sql.DB
}

// Open connects with the named driver. It does not create the table; call
// Init for that.
func Open(driver, dsn string) (*Store, error) {
	switch driver {
	case DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		// one writer at a time
		db.SetMaxOpenConns(1)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Init creates the results table if it does not exist.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	return nil
}

// Save inserts every result of out in one transaction.
func (s *Store) Save(ctx context.Context, out arithbench.BenchOutput) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO arith_results
		(run_date, toolchain, seq, op, type_name, duration_ns, rate, iterations)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range out.Result {
		if _, err = stmt.ExecContext(ctx, out.Date, out.Toolchain, i,
			r.Op, r.Type, r.DurationNs, r.Rate, r.Iterations); err != nil {
			return fmt.Errorf("insert %s %s: %w", r.Op, r.Type, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadAll rebuilds every stored run, oldest first.
func (s *Store) LoadAll(ctx context.Context) ([]arithbench.BenchOutput, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT run_date, toolchain, op, type_name, duration_ns, rate, iterations
		FROM arith_results ORDER BY CAST(run_date AS SIGNED), toolchain, seq`)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var res []arithbench.BenchOutput
	for rows.Next() {
		var date, toolchain string
		var r bench.Result
		if err := rows.Scan(&date, &toolchain, &r.Op, &r.Type, &r.DurationNs, &r.Rate, &r.Iterations); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		n := len(res)
		if n == 0 || res[n-1].Date != date || res[n-1].Toolchain != toolchain {
			res = append(res, arithbench.BenchOutput{Date: date, Toolchain: toolchain})
			n++
		}
		res[n-1].Result = append(res[n-1].Result, r)
	}
	return res, rows.Err()
}
