// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadNumberingPlans(t *testing.T) {
	base := filepath.Join("numplan", "testdata", "plans.json")
	overwrite := filepath.Join("numplan", "testdata", "overwrite.json")

	idx, err := LoadNumberingPlans(base, overwrite)
	if err != nil {
		t.Fatalf("LoadNumberingPlans failed: %v", err)
	}
	if len(idx.Table) != 5 {
		t.Errorf("Expected 5 plans, got %d", len(idx.Table))
	}
	if len(idx.LookupByID("DE")) != 1 {
		t.Error("Expected overwrite-only entry DE to be loaded")
	}
}

func TestLoadNumberingPlansWithoutOverwrite(t *testing.T) {
	base := filepath.Join("numplan", "testdata", "plans.json")

	idx, err := LoadNumberingPlans(base, filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadNumberingPlans failed: %v", err)
	}
	if len(idx.Table) != 4 {
		t.Errorf("Expected 4 plans, got %d", len(idx.Table))
	}
}

func TestLoadNumberingPlansBrokenOverwriteIsIgnored(t *testing.T) {
	base := filepath.Join("numplan", "testdata", "plans.json")
	broken := filepath.Join(t.TempDir(), "overwrite.json")
	if err := os.WriteFile(broken, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	idx, err := LoadNumberingPlans(base, broken)
	if err != nil {
		t.Fatalf("LoadNumberingPlans failed: %v", err)
	}
	if len(idx.Table) != 4 {
		t.Errorf("Expected 4 plans, got %d", len(idx.Table))
	}
}

func TestLoadNumberingPlansMissingBase(t *testing.T) {
	if _, err := LoadNumberingPlans(filepath.Join(t.TempDir(), "none.json"), ""); err == nil {
		t.Error("Expected error for missing base file")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("NUMCLASS_TEST_VALUE", "set")
	if got := GetEnv("NUMCLASS_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("Expected 'set', got %q", got)
	}
	if got := GetEnv("NUMCLASS_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("Expected 'fallback', got %q", got)
	}

	t.Setenv("NUMCLASS_TEST_INT", "abc")
	if got := GetEnvInt("NUMCLASS_TEST_INT", 7); got != 7 {
		t.Errorf("Expected fallback 7 for malformed value, got %d", got)
	}
	t.Setenv("NUMCLASS_TEST_INT", "12")
	if got := GetEnvInt("NUMCLASS_TEST_INT", 7); got != 12 {
		t.Errorf("Expected 12, got %d", got)
	}
}
