// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store provides read access to burners, jobs and their rows.
//
// Lookups by serial or job number return ErrNotFound when nothing matches.
// Query and connection failures come back as *Error, so callers can tell
// the two apart with errors.Is and errors.As. List methods return rows in
// database order and never return a nil slice on success.
//
// The tables are loaded by other tools, so any column may be NULL. NULL text
// reads as "" (tags and notes stay nil), NULL quantities as 0 and NULL
// timestamps as the zero time.
package store
