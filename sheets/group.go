// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheets

import "github.com/danielhkuo/burner-lookup/models"

// Group buckets components and electrical items by sheet name and merges
// them. Rows keep the order they arrive in. Electrical rows for a sheet that
// also has components are appended after the components; sheets with only
// electrical rows are added after all component sheets.
//
// Sheet names are compared exactly, so "Sheet 1" and "sheet 1" are distinct.
// Pass a nil electrical slice when electrical items are unavailable.
func Group(components []models.JobComponent, electrical []models.JobElectricalItem) *Sheets {
	out := New()
	for _, c := range components {
		out.Append(c.SheetName, ComponentRow(c))
	}

	elec := New()
	for _, e := range electrical {
		elec.Append(e.SheetName, ElectricalRow(e))
	}

	// Append covers both cases: an existing component sheet gets the
	// electrical rows at its end, a missing one is created.
	for _, name := range elec.names {
		out.Append(name, elec.rows[name]...)
	}
	return out
}

// GroupComponents groups job components alone.
func GroupComponents(components []models.JobComponent) *Sheets {
	return Group(components, nil)
}
