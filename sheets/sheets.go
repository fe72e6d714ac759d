// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sheets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/danielhkuo/burner-lookup/models"
)

// Kind identifies which record a Row carries.
type Kind int

const (
	KindComponent Kind = iota
	KindElectrical
)

func (k Kind) String() string {
	switch k {
	case KindComponent:
		return models.TypeComponent
	case KindElectrical:
		return models.TypeElectrical
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Row is one line of a sheet. Exactly one of Component or Electrical is set,
// matching Kind.
type Row struct {
	Kind       Kind
	Component  *models.JobComponent
	Electrical *models.JobElectricalItem
}

func ComponentRow(c models.JobComponent) Row {
	return Row{Kind: KindComponent, Component: &c}
}

func ElectricalRow(e models.JobElectricalItem) Row {
	return Row{Kind: KindElectrical, Electrical: &e}
}

// PartCode returns the part code in the unified shape (item_code for
// electrical rows).
func (r Row) PartCode() string {
	if r.Kind == KindElectrical {
		return r.Electrical.ItemCode
	}
	return r.Component.PartCode
}

func (r Row) SheetName() string {
	if r.Kind == KindElectrical {
		return r.Electrical.SheetName
	}
	return r.Component.SheetName
}

// Unified returns the electrical item in component shape. Only valid for
// electrical rows.
func (r Row) Unified() models.ElectricalRow {
	return models.ElectricalRow{
		PartCode:        r.Electrical.ItemCode,
		PartDescription: r.Electrical.Description,
		Quantity:        r.Electrical.Quantity,
		Tags:            r.Electrical.Notes,
		Type:            models.TypeElectrical,
	}
}

// MarshalJSON writes component rows as the full component record and
// electrical rows in the unified shape.
func (r Row) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case KindComponent:
		return json.Marshal(r.Component)
	case KindElectrical:
		return json.Marshal(r.Unified())
	}
	return nil, fmt.Errorf("sheets: unknown row kind %v", r.Kind)
}

// Sheets maps sheet names to their rows, remembering the order in which
// sheets were first seen.
type Sheets struct {
	names []string
	rows  map[string][]Row
}

func New() *Sheets {
	return &Sheets{rows: make(map[string][]Row)}
}

// Append adds rows to the named sheet, creating it at the end of the sheet
// order if needed.
func (s *Sheets) Append(name string, rows ...Row) {
	existing, ok := s.rows[name]
	if !ok {
		s.names = append(s.names, name)
		existing = make([]Row, 0, len(rows))
	}
	s.rows[name] = append(existing, rows...)
}

func (s *Sheets) Has(name string) bool {
	_, ok := s.rows[name]
	return ok
}

// Names returns the sheet names in creation order.
func (s *Sheets) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Rows returns a copy of the named sheet's rows, nil if there is no such sheet.
func (s *Sheets) Rows(name string) []Row {
	return slices.Clone(s.rows[name])
}

func (s *Sheets) Len() int {
	return len(s.names)
}

// MarshalJSON encodes the sheets as a JSON object with keys in creation order.
func (s *Sheets) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		rows, err := json.Marshal(s.rows[name])
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		buf.Write(rows)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
