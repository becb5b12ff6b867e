// ABOUTME: Tests for collection entities
// ABOUTME: Member bookkeeping must drive the descriptive counters

package entity

import (
	"errors"
	"testing"

	"github.com/kallestad/metastudio/pkg/builder"
)

func newTestCollection(t *testing.T) *DataCollection {
	t.Helper()
	dc, err := NewDataCollection("experiments", builder.WithEnviron(stubEnv()))
	if err != nil {
		t.Fatalf("Failed to create collection: %v", err)
	}
	return dc
}

func counters(t *testing.T, dc *DataCollection) (total, collections, datasets int64) {
	t.Helper()
	desc, err := dc.Metadata().Get("desc")
	if err != nil {
		t.Fatalf("Failed to get desc: %v", err)
	}
	v, _ := desc.Store().Get("n_members")
	total = v.I64
	v, _ = desc.Store().Get("n_members_datacollection")
	collections = v.I64
	v, _ = desc.Store().Get("n_members_dataset")
	datasets = v.I64
	return total, collections, datasets
}

func TestCollectionCountersFollowMembership(t *testing.T) {
	dc := newTestCollection(t)

	dsA, err := NewDataSet("alpha", builder.WithEnviron(stubEnv()))
	if err != nil {
		t.Fatalf("Failed to create dataset: %v", err)
	}
	dsB, err := NewDataSet("beta", builder.WithEnviron(stubEnv()))
	if err != nil {
		t.Fatalf("Failed to create dataset: %v", err)
	}
	sub, err := NewDataCollection("sub", builder.WithEnviron(stubEnv()))
	if err != nil {
		t.Fatalf("Failed to create sub-collection: %v", err)
	}

	if err := dc.Add(dsA, ""); err != nil {
		t.Fatalf("Failed to add: %v", err)
	}
	if err := dc.Add(dsB, ""); err != nil {
		t.Fatalf("Failed to add: %v", err)
	}
	if err := dc.Add(sub, ""); err != nil {
		t.Fatalf("Failed to add: %v", err)
	}

	total, collections, datasets := counters(t, dc)
	if total != 3 || collections != 1 || datasets != 2 {
		t.Errorf("Expected 3/1/2, got %d/%d/%d", total, collections, datasets)
	}

	dc.Remove("dataset_alpha")
	total, collections, datasets = counters(t, dc)
	if total != 2 || collections != 1 || datasets != 1 {
		t.Errorf("Expected 2/1/1 after removal, got %d/%d/%d", total, collections, datasets)
	}
}

func TestCollectionAddDuplicateFails(t *testing.T) {
	dc := newTestCollection(t)

	ds, err := NewDataSet("alpha", builder.WithEnviron(stubEnv()))
	if err != nil {
		t.Fatalf("Failed to create dataset: %v", err)
	}

	if err := dc.Add(ds, ""); err != nil {
		t.Fatalf("Failed to add: %v", err)
	}
	if err := dc.Add(ds, ""); !errors.Is(err, ErrMemberExists) {
		t.Errorf("Expected ErrMemberExists, got %v", err)
	}
}

func TestCollectionChange(t *testing.T) {
	dc := newTestCollection(t)

	dsA, _ := NewDataSet("alpha", builder.WithEnviron(stubEnv()))
	dsB, _ := NewDataSet("beta", builder.WithEnviron(stubEnv()))

	if err := dc.Add(dsA, ""); err != nil {
		t.Fatalf("Failed to add: %v", err)
	}
	if err := dc.Change("dataset_alpha", dsB); err != nil {
		t.Fatalf("Failed to change: %v", err)
	}

	got, err := dc.Member("beta")
	if err != nil {
		t.Fatalf("Failed to look up member: %v", err)
	}
	if got != dsB {
		t.Error("Expected the replacement member")
	}

	if err := dc.Change("dataset_gone", dsA); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("Expected ErrMemberNotFound, got %v", err)
	}
}

func TestCollectionRemoveMissingIsNonFatal(t *testing.T) {
	dc := newTestCollection(t)

	dc.Remove("dataset_gone")
	if dc.Len() != 0 {
		t.Errorf("Expected empty collection, got %d members", dc.Len())
	}
}

func TestCollectionMemberKeyUsesExplicitName(t *testing.T) {
	dc := newTestCollection(t)

	ds, _ := NewDataSet("alpha", builder.WithEnviron(stubEnv()))
	if err := dc.Add(ds, "renamed"); err != nil {
		t.Fatalf("Failed to add: %v", err)
	}

	members := dc.Members()
	if _, ok := members["dataset_renamed"]; !ok {
		t.Errorf("Expected key 'dataset_renamed', got %v", members)
	}
}
