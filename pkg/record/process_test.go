// ABOUTME: Tests for process metadata records
// ABOUTME: Verifies the seeded activity log and append-on-update behavior

package record

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewProcessSeedsLog(t *testing.T) {
	env := testEnv()
	e := &testEntity{class: "DataSet", size: 128}

	p, err := NewProcess(env, e, "sf_listings")
	if err != nil {
		t.Fatalf("Failed to build process record: %v", err)
	}

	if p.Kind() != KindProcess {
		t.Errorf("Expected Process kind, got %s", p.Kind())
	}

	log := p.Log()
	if len(log) != 1 {
		t.Fatalf("Expected 1 seeded line, got %d", len(log))
	}
	for _, want := range []string{"DataSet", "sf_listings", "instantiated", "jdoe"} {
		if !strings.Contains(log[0], want) {
			t.Errorf("Expected seed line to contain '%s': %s", want, log[0])
		}
	}
}

func TestProcessUpdateAppends(t *testing.T) {
	env := testEnv()
	e := &testEntity{class: "DataSet", size: 128}

	p, err := NewProcess(env, e, "sf_listings")
	if err != nil {
		t.Fatalf("Failed to build process record: %v", err)
	}

	if err := p.Update("columns imputed"); err != nil {
		t.Fatalf("Failed to update: %v", err)
	}
	if err := p.Update("outliers removed"); err != nil {
		t.Fatalf("Failed to update: %v", err)
	}

	log := p.Log()
	if len(log) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(log))
	}
	if !strings.Contains(log[1], "columns imputed") {
		t.Errorf("Expected event in line: %s", log[1])
	}
	if !strings.Contains(log[2], "outliers removed") {
		t.Errorf("Expected events in order, got: %s", log[2])
	}
}

func TestProcessUpdateEmptyEventIsNoop(t *testing.T) {
	env := testEnv()
	e := &testEntity{class: "DataSet", size: 128}

	p, err := NewProcess(env, e, "sf_listings")
	if err != nil {
		t.Fatalf("Failed to build process record: %v", err)
	}

	if err := p.Update(""); err != nil {
		t.Fatalf("Empty update failed: %v", err)
	}
	if len(p.Log()) != 1 {
		t.Errorf("Expected log unchanged, got %d lines", len(p.Log()))
	}
}

func TestProcessPrint(t *testing.T) {
	env := testEnv()
	e := &testEntity{class: "DataSet", size: 128}

	p, err := NewProcess(env, e, "sf_listings")
	if err != nil {
		t.Fatalf("Failed to build process record: %v", err)
	}
	if err := p.Update("loaded"); err != nil {
		t.Fatalf("Failed to update: %v", err)
	}

	var buf bytes.Buffer
	p.Print(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("Expected 2 printed lines, got %d", len(lines))
	}
}
