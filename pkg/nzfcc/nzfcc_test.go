package nzfcc

import (
	"encoding/json"
	"testing"
)

func TestParseKnownCode(t *testing.T) {
	c := Parse("Cafes and restaurants")
	if !c.Known() {
		t.Fatal("expected a published code to be known")
	}
	if got := c.Group().String(); got != "Food" {
		t.Fatalf("expected group Food, got %q", got)
	}
}

func TestParseUnknownCodeFallsBack(t *testing.T) {
	c := Parse("Quantum groceries")
	if c.Known() {
		t.Fatal("expected an unpublished code to be unknown")
	}
	if c.String() != "Quantum groceries" {
		t.Fatalf("expected raw string preserved, got %q", c.String())
	}
	if c.Group().Known() {
		t.Fatal("expected an unknown code to have an unknown group")
	}
}

func TestCodeRoundTripsUnknownValues(t *testing.T) {
	var c Code
	if err := json.Unmarshal([]byte(`"Not A Real Category"`), &c); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	out, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}
	if string(out) != `"Not A Real Category"` {
		t.Fatalf("expected exact round-trip, got %s", out)
	}
}

func TestGroupParsing(t *testing.T) {
	tests := []struct {
		name  string
		known bool
	}{
		{name: "Lifestyle", known: true},
		{name: "Professional Services", known: true},
		{name: "Cryptocurrency", known: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ParseGroup(tt.name)
			if g.Known() != tt.known {
				t.Fatalf("ParseGroup(%q).Known() = %v, want %v", tt.name, g.Known(), tt.known)
			}
			if g.String() != tt.name {
				t.Fatalf("expected raw string preserved, got %q", g.String())
			}
		})
	}
}

func TestCodeRejectsNonStrings(t *testing.T) {
	var c Code
	if err := json.Unmarshal([]byte(`42`), &c); err == nil {
		t.Fatal("expected a numeric category to fail to decode")
	}
}
