// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/danielhkuo/burner-lookup/db"
	"github.com/danielhkuo/burner-lookup/models"
)

// RecordStore is the read interface the handlers depend on.
type RecordStore interface {
	FindBurnerBySerial(ctx context.Context, serial string) (models.Burner, error)
	ListComponentsForBurner(ctx context.Context, burnerID int64) ([]models.Component, error)
	FindJobByNumber(ctx context.Context, jobNumber string) (models.Job, error)
	ListJobComponents(ctx context.Context, jobNumber string) ([]models.JobComponent, error)
	ListJobElectricalItems(ctx context.Context, jobNumber string) ([]models.JobElectricalItem, error)
	Ping(ctx context.Context) error
}

// SQLStore implements RecordStore over database/sql.
type SQLStore struct {
	db     *sql.DB
	dbType string
}

func NewSQLStore(conn *sql.DB, dbType string) *SQLStore {
	return &SQLStore{db: conn, dbType: dbType}
}

// rebind rewrites $N placeholders for sqlite, which spells them ?N.
func (s *SQLStore) rebind(query string) string {
	if s.dbType != db.TypeSQLite {
		return query
	}
	return strings.ReplaceAll(query, "$", "?")
}

// Close closes the underlying connection pool.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return storeErr("ping", err)
	}
	return nil
}

func (s *SQLStore) FindBurnerBySerial(ctx context.Context, serial string) (models.Burner, error) {
	var b models.Burner
	var model, customer sql.NullString
	var created sql.NullTime
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, serial_number, model, customer_name, created_at
		FROM burners
		WHERE serial_number = $1
	`), serial).Scan(&b.ID, &b.SerialNumber, &model, &customer, &created)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Burner{}, ErrNotFound
	}
	if err != nil {
		return models.Burner{}, storeErr("find burner", err)
	}

	b.Model = nullable(model)
	b.CustomerName = nullable(customer)
	b.CreatedAt = created.Time
	return b, nil
}

func (s *SQLStore) ListComponentsForBurner(ctx context.Context, burnerID int64) ([]models.Component, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, burner_id, part_code, part_description, quantity, tags
		FROM components
		WHERE burner_id = $1
		ORDER BY part_code ASC
	`), burnerID)
	if err != nil {
		return nil, storeErr("list components", err)
	}
	defer rows.Close()

	components := []models.Component{}
	for rows.Next() {
		var c models.Component
		var code, desc, tags sql.NullString
		var qty sql.NullFloat64
		if err := rows.Scan(&c.ID, &c.BurnerID, &code, &desc, &qty, &tags); err != nil {
			return nil, storeErr("scan component", err)
		}
		c.PartCode, c.PartDescription, c.Quantity = code.String, desc.String, qty.Float64
		c.Tags = nullable(tags)
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list components", err)
	}
	return components, nil
}

func (s *SQLStore) FindJobByNumber(ctx context.Context, jobNumber string) (models.Job, error) {
	var j models.Job
	var customer, filename, burnerType sql.NullString
	var created sql.NullTime
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT id, job_number, customer_name, filename, created_at, burner_type
		FROM jobs
		WHERE job_number = $1
	`), jobNumber).Scan(&j.ID, &j.JobNumber, &customer, &filename, &created, &burnerType)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Job{}, ErrNotFound
	}
	if err != nil {
		return models.Job{}, storeErr("find job", err)
	}

	j.CustomerName, j.Filename, j.BurnerType = customer.String, filename.String, burnerType.String
	j.CreatedAt = created.Time
	return j, nil
}

func (s *SQLStore) ListJobComponents(ctx context.Context, jobNumber string) ([]models.JobComponent, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, job_number, sheet_name, part_code, part_description, quantity, tags
		FROM job_components
		WHERE job_number = $1
		ORDER BY sheet_name ASC, part_code ASC
	`), jobNumber)
	if err != nil {
		return nil, storeErr("list job components", err)
	}
	defer rows.Close()

	components := []models.JobComponent{}
	for rows.Next() {
		var c models.JobComponent
		var sheet, code, desc, tags sql.NullString
		var qty sql.NullFloat64
		if err := rows.Scan(&c.ID, &c.JobNumber, &sheet, &code, &desc, &qty, &tags); err != nil {
			return nil, storeErr("scan job component", err)
		}
		c.SheetName, c.PartCode, c.PartDescription, c.Quantity = sheet.String, code.String, desc.String, qty.Float64
		c.Tags = nullable(tags)
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list job components", err)
	}
	return components, nil
}

func (s *SQLStore) ListJobElectricalItems(ctx context.Context, jobNumber string) ([]models.JobElectricalItem, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, job_number, sheet_name, item_code, description, quantity, notes
		FROM job_electrical_items
		WHERE job_number = $1
		ORDER BY sheet_name ASC, item_code ASC
	`), jobNumber)
	if err != nil {
		return nil, storeErr("list job electrical items", err)
	}
	defer rows.Close()

	items := []models.JobElectricalItem{}
	for rows.Next() {
		var e models.JobElectricalItem
		var sheet, code, desc, notes sql.NullString
		var qty sql.NullFloat64
		if err := rows.Scan(&e.ID, &e.JobNumber, &sheet, &code, &desc, &qty, &notes); err != nil {
			return nil, storeErr("scan job electrical item", err)
		}
		e.SheetName, e.ItemCode, e.Description, e.Quantity = sheet.String, code.String, desc.String, qty.Float64
		e.Notes = nullable(notes)
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list job electrical items", err)
	}
	return items, nil
}

// nullable keeps NULL as nil. Other nullable text columns read NULL as "".
func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
