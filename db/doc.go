// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and bootstraps the schema.

# Connections

Open selects the driver from the database type and pings it:

	conn, err := db.Open(ctx, db.TypePostgres, "postgres://...")

PostgreSQL uses github.com/lib/pq. SQLite uses the pure-Go modernc.org/sqlite
driver and is meant for local development and tests.

# Schema Creation

CreateSchema creates the lookup tables if they are missing:

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Production databases are normally managed elsewhere; the service only reads.

# Tables

	burners 1──* components            (components.burner_id)
	jobs    1──* job_components        (job_components.job_number)
	jobs    1──* job_electrical_items  (job_electrical_items.job_number)
*/
package db
