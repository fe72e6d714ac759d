// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package sheets assembles a job's bill-of-materials view.

A job's components and electrical items each carry a sheet name. Group
buckets both lists by that name and merges them:

	view := sheets.Group(components, electrical)
	for _, name := range view.Names() {
		rows := view.Rows(name)
		...
	}

Within a sheet, component rows come first in store order, followed by the
sheet's electrical rows in store order. Nothing is re-sorted.

Electrical rows serialize in the component shape:

	{"part_code": item_code, "part_description": description,
	 "quantity": quantity, "tags": notes, "type": "electrical"}
*/
package sheets
