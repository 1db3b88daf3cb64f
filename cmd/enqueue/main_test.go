package main

import (
	"encoding/json"
	"strings"
	"testing"

	"numclass-server/models"
)

func TestReadNumbers(t *testing.T) {
	got, err := readNumbers(nil, strings.NewReader("+1 650 253 0000\n\n  +44 7700 900123  \n"))
	if err != nil {
		t.Fatalf("readNumbers: %v", err)
	}
	if len(got) != 2 || got[1] != "+44 7700 900123" {
		t.Errorf("unexpected numbers %q", got)
	}

	got, _ = readNumbers([]string{"123"}, strings.NewReader("ignored"))
	if len(got) != 1 || got[0] != "123" {
		t.Errorf("positional arguments should win, got %q", got)
	}
}

func TestBuildMessages(t *testing.T) {
	bodies, err := buildMessages([]string{"+16502530000", "+16502530001"}, "US")
	if err != nil {
		t.Fatalf("buildMessages: %v", err)
	}
	if len(bodies) != 2 {
		t.Fatalf("expected 2 bodies, got %d", len(bodies))
	}

	var first, second models.QueuedNumber
	if err := json.Unmarshal(bodies[0], &first); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := json.Unmarshal(bodies[1], &second); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if first.Mid == "" || first.Mid == second.Mid {
		t.Errorf("expected distinct message ids, got %q and %q", first.Mid, second.Mid)
	}
	if first.Country == nil || *first.Country != "US" {
		t.Errorf("expected country US, got %v", first.Country)
	}
}
