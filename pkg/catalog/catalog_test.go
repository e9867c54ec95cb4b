package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestPut_NormalizesAndTruncates(t *testing.T) {
	c := New()
	c.Put(Record{
		Name:        "  Fungal Infection ",
		Description: "A common fungal infection of the skin.",
		Precautions: []string{"bath twice", "use clean cloths", "keep area dry", "use antifungal soap", "extra"},
	})

	record, err := c.Describe("fungal_infection")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if record.Name != "fungal_infection" {
		t.Errorf("expected normalized name, got %q", record.Name)
	}
	if len(record.Precautions) != MaxPrecautions {
		t.Errorf("expected precautions truncated to %d, got %d", MaxPrecautions, len(record.Precautions))
	}
}

func TestDescribe_NormalizesQuery(t *testing.T) {
	c := New()
	c.Put(Record{Name: "common_cold", Description: "Viral infection of the upper airways."})

	record, err := c.Describe("  Common Cold ")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if record.Description == "" {
		t.Error("expected description to be preserved")
	}
}

func TestDescribe_NotCataloged(t *testing.T) {
	c := New()
	_, err := c.Describe("unknown")
	if !errors.Is(err, ErrDiseaseNotCataloged) {
		t.Errorf("expected ErrDiseaseNotCataloged, got %v", err)
	}
}

func TestPut_ReplacesExisting(t *testing.T) {
	c := New()
	c.Put(Record{Name: "flu", Description: "first"})
	c.Put(Record{Name: "flu", Description: "second"})

	if c.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", c.Len())
	}
	record, err := c.Describe("flu")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if record.Description != "second" {
		t.Errorf("expected replacement to win, got %q", record.Description)
	}
}

func TestNames_Sorted(t *testing.T) {
	c := New()
	for _, name := range []string{"malaria", "allergy", "flu"} {
		c.Put(Record{Name: name})
	}
	if got := c.Names(); !reflect.DeepEqual(got, []string{"allergy", "flu", "malaria"}) {
		t.Errorf("expected sorted names, got %v", got)
	}
	if !c.Has("Allergy") {
		t.Error("Has should normalize the query name")
	}
}
