// Package store keeps the order dataset in SQLite and answers the
// brand-scoped provider, country and order queries of the backend.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	_ "modernc.org/sqlite"
)

// Order is one planned purchase order.
type Order struct {
	Provider string
	Brand    string
	Country  string
	Date     time.Time
}

const dateLayout = "2006-01-02"

type DB struct {
	sql *sql.DB
}

// Open opens (or creates) the database at path. ":memory:" keeps the data
// in process.
func Open(path string) (*DB, error) {
	memory := path == ":memory:" || path == ""
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	if memory {
		dsn = "file::memory:?_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if memory {
		// Every connection would otherwise see its own empty database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS orders (
  id           INTEGER PRIMARY KEY,
  provider     TEXT NOT NULL,
  provider_key TEXT NOT NULL,
  brand        TEXT NOT NULL,
  brand_key    TEXT NOT NULL,
  country      TEXT NOT NULL,
  country_key  TEXT NOT NULL,
  order_date   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_brand ON orders(brand_key, provider_key, country_key);
    `); err != nil {
		db.Close()
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// Key folds an identifier for matching: surrounding space is ignored and
// case is folded, so " Chanel" matches "CHANEL".
func Key(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Replace swaps the whole dataset for orders in one transaction. Readers
// see either the old or the new set.
func (d *DB) Replace(ctx context.Context, orders []Order) (err error) {
	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM orders`); err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO orders(provider, provider_key, brand, brand_key, country, country_key, order_date) VALUES(?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, o := range orders {
		provider, brand, country := strings.TrimSpace(o.Provider), strings.TrimSpace(o.Brand), strings.TrimSpace(o.Country)
		if _, err = stmt.ExecContext(ctx, provider, Key(provider), brand, Key(brand), country, Key(country), o.Date.Format(dateLayout)); err != nil {
			return fmt.Errorf("insert %s/%s/%s: %w", provider, brand, country, err)
		}
	}
	return tx.Commit()
}

// Count returns the number of stored orders.
func (d *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := d.sql.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n)
	return n, err
}

// Providers lists the providers that carry any of brands, sorted.
func (d *DB) Providers(ctx context.Context, brands []string) ([]string, error) {
	if len(brands) == 0 {
		return []string{}, nil
	}
	in, args := brandFilter(brands)
	return d.queryStrings(ctx, `SELECT MIN(provider) FROM orders WHERE brand_key IN (`+in+`) GROUP BY provider_key ORDER BY 1`, args...)
}

// Countries lists the countries a provider ships to for brands, sorted.
func (d *DB) Countries(ctx context.Context, brands []string, provider string) ([]string, error) {
	if len(brands) == 0 {
		return []string{}, nil
	}
	in, args := brandFilter(brands)
	args = append(args, Key(provider))
	return d.queryStrings(ctx, `SELECT MIN(country) FROM orders WHERE brand_key IN (`+in+`) AND provider_key = ? GROUP BY country_key ORDER BY 1`, args...)
}

// Orders lists the orders of a provider and country for brands, by date.
func (d *DB) Orders(ctx context.Context, brands []string, provider, country string) ([]Order, error) {
	if len(brands) == 0 {
		return []Order{}, nil
	}
	in, args := brandFilter(brands)
	args = append(args, Key(provider), Key(country))
	rows, err := d.sql.QueryContext(ctx, `SELECT provider, brand, country, order_date FROM orders WHERE brand_key IN (`+in+`) AND provider_key = ? AND country_key = ? ORDER BY order_date, brand, id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		var (
			o    Order
			date string
		)
		if err := rows.Scan(&o.Provider, &o.Brand, &o.Country, &date); err != nil {
			return nil, err
		}
		o.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("stored date %q: %w", date, err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (d *DB) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func brandFilter(brands []string) (string, []any) {
	marks := make([]string, len(brands))
	args := make([]any, len(brands))
	for i, b := range brands {
		marks[i] = "?"
		args[i] = Key(b)
	}
	return strings.Join(marks, ","), args
}
