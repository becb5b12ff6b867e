// ABOUTME: Tests for the taxonomy container
// ABOUTME: Verifies substring lookup, overwrite policy and printing

package taxonomy

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kallestad/metastudio/pkg/record"
)

type stubEntity struct{}

func (e *stubEntity) ClassName() string { return "DataSet" }
func (e *stubEntity) SizeOf() int64     { return 64 }

func stubEnv() *record.StaticEnviron {
	return &record.StaticEnviron{
		User:  "jdoe",
		Clock: time.Date(2020, time.February, 14, 8, 30, 15, 0, time.UTC),
	}
}

func buildTaxonomy(t *testing.T) *Taxonomy {
	t.Helper()
	env := stubEnv()
	e := &stubEntity{}

	admin, err := record.NewAdmin(env, e, "sf_listings")
	if err != nil {
		t.Fatalf("Failed to build admin: %v", err)
	}
	desc, err := record.NewDesc(env, e, "sf_listings")
	if err != nil {
		t.Fatalf("Failed to build desc: %v", err)
	}
	process, err := record.NewProcess(env, e, "sf_listings")
	if err != nil {
		t.Fatalf("Failed to build process: %v", err)
	}

	tax := New()
	tax.Add(admin)
	tax.Add(desc)
	tax.Add(process)
	return tax
}

func TestGetBySubstring(t *testing.T) {
	tax := buildTaxonomy(t)

	short, err := tax.Get("admin")
	if err != nil {
		t.Fatalf("Failed to get by 'admin': %v", err)
	}
	full, err := tax.Get("Administrative")
	if err != nil {
		t.Fatalf("Failed to get by 'Administrative': %v", err)
	}
	if short != full {
		t.Error("Expected substring and full-name lookup to return the same record")
	}
	if short.Kind() != record.KindAdministrative {
		t.Errorf("Expected Administrative, got %s", short.Kind())
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	tax := buildTaxonomy(t)

	r, err := tax.Get("DESC")
	if err != nil {
		t.Fatalf("Failed to get by 'DESC': %v", err)
	}
	if r.Kind() != record.KindDescriptive {
		t.Errorf("Expected Descriptive, got %s", r.Kind())
	}
}

func TestGetNoMatchFails(t *testing.T) {
	tax := buildTaxonomy(t)

	_, err := tax.Get("nonexistent")
	if !errors.Is(err, ErrKindNotFound) {
		t.Errorf("Expected ErrKindNotFound, got %v", err)
	}
}

func TestAddSameKindOverwrites(t *testing.T) {
	env := stubEnv()
	e := &stubEntity{}

	first, err := record.NewAdmin(env, e, "first")
	if err != nil {
		t.Fatalf("Failed to build admin: %v", err)
	}
	second, err := record.NewAdmin(env, e, "second")
	if err != nil {
		t.Fatalf("Failed to build admin: %v", err)
	}

	tax := New()
	tax.Add(first)
	tax.Add(second)

	if tax.Len() != 1 {
		t.Fatalf("Expected 1 record, got %d", tax.Len())
	}

	r, err := tax.Get("admin")
	if err != nil {
		t.Fatalf("Failed to get: %v", err)
	}
	name, _ := r.Store().Get("name")
	if name.Str != "second" {
		t.Errorf("Expected last write to win, got '%s'", name.Str)
	}
}

func TestAllAndKinds(t *testing.T) {
	tax := buildTaxonomy(t)

	all := tax.All()
	if len(all) != 3 {
		t.Errorf("Expected 3 records, got %d", len(all))
	}
	if _, ok := all["administrative"]; !ok {
		t.Error("Expected lower-cased kind keys")
	}

	kinds := tax.Kinds()
	want := []string{"administrative", "descriptive", "process"}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("Position %d: expected '%s', got '%s'", i, kinds[i], k)
		}
	}
}

func TestPrintAllInInsertionOrder(t *testing.T) {
	tax := buildTaxonomy(t)

	var buf bytes.Buffer
	if err := tax.Print(&buf, ""); err != nil {
		t.Fatalf("Failed to print: %v", err)
	}

	out := buf.String()
	adminAt := strings.Index(out, "--- Administrative ---")
	descAt := strings.Index(out, "--- Descriptive ---")
	processAt := strings.Index(out, "--- Process ---")
	if adminAt < 0 || descAt < 0 || processAt < 0 {
		t.Fatalf("Expected all headers in output: %s", out)
	}
	if !(adminAt < descAt && descAt < processAt) {
		t.Error("Expected records printed in kind insertion order")
	}
}

func TestPrintOneKind(t *testing.T) {
	tax := buildTaxonomy(t)

	var buf bytes.Buffer
	if err := tax.Print(&buf, "desc"); err != nil {
		t.Fatalf("Failed to print: %v", err)
	}
	if strings.Contains(buf.String(), "--- Administrative ---") {
		t.Error("Expected only the descriptive record")
	}

	if err := tax.Print(&buf, "nonexistent"); !errors.Is(err, ErrKindNotFound) {
		t.Errorf("Expected ErrKindNotFound, got %v", err)
	}
}
