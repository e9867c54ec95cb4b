package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/medigraph/symptomgraph/pkg/graph"
)

func sampleTables() Tables {
	return Tables{
		Severity: map[string]int{
			"itching":   1,
			"skin_rash": 3,
			"lonely":    2, // rated but appears in no relationship
		},
		Relationships: map[string][]string{
			"fungal_infection": {"itching", "skin_rash"},
		},
		Descriptions: map[string]string{
			"fungal_infection": "A common fungal infection of the skin.",
		},
		Precautions: map[string][]string{
			"fungal_infection": {"bath twice", "keep area dry"},
		},
	}
}

func TestBuild(t *testing.T) {
	g, c, err := Build(sampleTables())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	stats := g.Statistics()
	if stats.Symptoms != 3 {
		t.Errorf("expected 3 symptom vertices (including the unconnected one), got %d", stats.Symptoms)
	}
	if stats.Diseases != 1 || stats.Edges != 2 {
		t.Errorf("unexpected graph shape: %+v", stats)
	}

	// Edge weight reflects the symptom's severity score
	if got := g.EdgeWeight("itching", "fungal_infection"); got != 1.0 {
		t.Errorf("expected weight 1.0 for severity 1, got %v", got)
	}

	record, err := c.Describe("fungal_infection")
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if record.Description == "" || len(record.Precautions) != 2 || len(record.Symptoms) != 2 {
		t.Errorf("catalog record not fully populated: %+v", record)
	}
}

func TestBuild_IsIdempotentPerTables(t *testing.T) {
	tables := sampleTables()
	first, _, err := Build(tables)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	second, _, err := Build(tables)
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}
	if first.Statistics() != second.Statistics() {
		t.Errorf("rebuild changed graph shape: %+v vs %+v",
			first.Statistics(), second.Statistics())
	}
}

func TestBuild_UnratedSymptomFails(t *testing.T) {
	tables := sampleTables()
	tables.Relationships["fungal_infection"] = append(
		tables.Relationships["fungal_infection"], "mystery_symptom")

	_, _, err := Build(tables)
	if !errors.Is(err, ErrSymptomUnrated) {
		t.Errorf("expected ErrSymptomUnrated, got %v", err)
	}
}

func TestBuild_ScorableButUndescribedStaysUncataloged(t *testing.T) {
	tables := sampleTables()
	delete(tables.Descriptions, "fungal_infection")

	g, c, err := Build(tables)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !g.HasVertex("fungal_infection") {
		t.Error("disease vertex should still exist in the graph")
	}
	if c.Has("fungal_infection") {
		t.Error("undescribed disease must stay out of the catalog")
	}
}

func writeTable(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	files := Files{
		Severity: writeTable(t, dir, "severity.csv",
			"symptom,weight\nitching,1\nskin_rash,3\n"),
		Relationship: writeTable(t, dir, "dataset.csv",
			"disease,symptom_1,symptom_2\nFungal Infection,itching,skin_rash\n"),
		Description: writeTable(t, dir, "description.csv",
			"disease,description\nFungal Infection,A common fungal infection of the skin.\n"),
		Precaution: writeTable(t, dir, "precaution.csv",
			"disease,p1,p2\nFungal Infection,bath twice,keep area dry\n"),
	}

	g, c, err := LoadFiles(files, nil)
	if err != nil {
		t.Fatalf("LoadFiles failed: %v", err)
	}

	if kind, ok := g.Kind("fungal_infection"); !ok || kind != graph.KindDisease {
		t.Error("expected fungal_infection disease vertex")
	}
	if !c.Has("fungal_infection") {
		t.Error("expected fungal_infection catalog record")
	}
}

func TestLoadFiles_MissingFile(t *testing.T) {
	files := Files{
		Severity:     filepath.Join(t.TempDir(), "missing.csv"),
		Relationship: "x",
		Description:  "y",
		Precaution:   "z",
	}
	if _, _, err := LoadFiles(files, nil); err == nil {
		t.Error("expected error for missing table file")
	}
}
