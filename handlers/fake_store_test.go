// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"

	"github.com/danielhkuo/burner-lookup/models"
	"github.com/danielhkuo/burner-lookup/store"
)

// fakeStore is an in-memory RecordStore with per-call error injection
type fakeStore struct {
	burners    map[string]models.Burner
	components map[int64][]models.Component
	jobs       map[string]models.Job
	jobComps   map[string][]models.JobComponent
	jobElec    map[string][]models.JobElectricalItem

	burnerErr, componentsErr, jobErr, jobCompsErr, jobElecErr, pingErr error

	calls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		burners:    map[string]models.Burner{},
		components: map[int64][]models.Component{},
		jobs:       map[string]models.Job{},
		jobComps:   map[string][]models.JobComponent{},
		jobElec:    map[string][]models.JobElectricalItem{},
	}
}

var errConnRefused = &store.Error{Op: "find job", Err: errors.New("connection refused")}

func (f *fakeStore) FindBurnerBySerial(_ context.Context, serial string) (models.Burner, error) {
	f.calls++
	if f.burnerErr != nil {
		return models.Burner{}, f.burnerErr
	}
	b, ok := f.burners[serial]
	if !ok {
		return models.Burner{}, store.ErrNotFound
	}
	return b, nil
}

func (f *fakeStore) ListComponentsForBurner(_ context.Context, burnerID int64) ([]models.Component, error) {
	f.calls++
	if f.componentsErr != nil {
		return nil, f.componentsErr
	}
	return append([]models.Component{}, f.components[burnerID]...), nil
}

func (f *fakeStore) FindJobByNumber(_ context.Context, jobNumber string) (models.Job, error) {
	f.calls++
	if f.jobErr != nil {
		return models.Job{}, f.jobErr
	}
	j, ok := f.jobs[jobNumber]
	if !ok {
		return models.Job{}, store.ErrNotFound
	}
	return j, nil
}

func (f *fakeStore) ListJobComponents(_ context.Context, jobNumber string) ([]models.JobComponent, error) {
	f.calls++
	if f.jobCompsErr != nil {
		return nil, f.jobCompsErr
	}
	return append([]models.JobComponent{}, f.jobComps[jobNumber]...), nil
}

func (f *fakeStore) ListJobElectricalItems(_ context.Context, jobNumber string) ([]models.JobElectricalItem, error) {
	f.calls++
	if f.jobElecErr != nil {
		return nil, f.jobElecErr
	}
	return append([]models.JobElectricalItem{}, f.jobElec[jobNumber]...), nil
}

func (f *fakeStore) Ping(context.Context) error {
	f.calls++
	return f.pingErr
}

// seedJob adds job C13676 with two component sheets and one shared
// electrical sheet
func (f *fakeStore) seedJob() {
	f.jobs["C13676"] = models.Job{ID: 1, JobNumber: "C13676", CustomerName: "Acme Foundry", Filename: "C13676.xlsx", BurnerType: "Gas"}
	f.jobComps["C13676"] = []models.JobComponent{
		{ID: 1, JobNumber: "C13676", SheetName: "S1", PartCode: "A", Quantity: 1},
		{ID: 2, JobNumber: "C13676", SheetName: "S1", PartCode: "B", Quantity: 2},
		{ID: 3, JobNumber: "C13676", SheetName: "S2", PartCode: "C", Quantity: 1},
	}
	f.jobElec["C13676"] = []models.JobElectricalItem{
		{ID: 1, JobNumber: "C13676", SheetName: "E1", ItemCode: "X", Description: "Relay", Quantity: 1},
		{ID: 2, JobNumber: "C13676", SheetName: "S1", ItemCode: "Y", Description: "Switch", Quantity: 3},
	}
}
