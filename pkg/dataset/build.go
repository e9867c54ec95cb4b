package dataset

import (
	"fmt"
	"os"

	"github.com/medigraph/symptomgraph/pkg/catalog"
	"github.com/medigraph/symptomgraph/pkg/graph"
	"github.com/medigraph/symptomgraph/pkg/logging"
)

// Files names the four source tables on disk.
type Files struct {
	Severity     string `yaml:"severity_file"`
	Relationship string `yaml:"relationship_file"`
	Description  string `yaml:"description_file"`
	Precaution   string `yaml:"precaution_file"`
}

// Build constructs the symptom-disease graph and the disease catalog from
// parsed tables. Errors here mean the source data is untrustworthy and
// abort startup.
func Build(tables Tables) (*graph.Graph, *catalog.Catalog, error) {
	g := graph.New()

	// Every rated symptom becomes a vertex, connected or not, so hosts can
	// present the full selectable symptom list.
	for symptom := range tables.Severity {
		if err := g.AddVertex(symptom, graph.KindSymptom); err != nil {
			return nil, nil, err
		}
	}

	for disease, symptoms := range tables.Relationships {
		if err := g.AddVertex(disease, graph.KindDisease); err != nil {
			return nil, nil, err
		}
		for _, symptom := range symptoms {
			severity, ok := tables.Severity[symptom]
			if !ok {
				return nil, nil, fmt.Errorf("build graph: disease %q symptom %q: %w",
					disease, symptom, ErrSymptomUnrated)
			}
			if err := g.AddVertex(symptom, graph.KindSymptom); err != nil {
				return nil, nil, err
			}
			if err := g.AddEdge(symptom, disease, severity); err != nil {
				return nil, nil, err
			}
		}
	}

	// The catalog is keyed off the description table. A disease that is
	// scorable but undescribed stays absent so the inconsistency surfaces
	// at request time instead of being papered over here.
	c := catalog.New()
	for disease, description := range tables.Descriptions {
		c.Put(catalog.Record{
			Name:        disease,
			Description: description,
			Precautions: tables.Precautions[disease],
			Symptoms:    tables.Relationships[disease],
		})
	}

	return g, c, nil
}

// LoadFiles reads the four tables from disk and builds the graph and
// catalog in one pass.
func LoadFiles(files Files, logger logging.Logger) (*graph.Graph, *catalog.Catalog, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	var tables Tables
	steps := []struct {
		path string
		load func(*os.File) error
	}{
		{files.Severity, func(f *os.File) (err error) {
			tables.Severity, err = LoadSeverity(f)
			return
		}},
		{files.Relationship, func(f *os.File) (err error) {
			tables.Relationships, err = LoadRelationships(f)
			return
		}},
		{files.Description, func(f *os.File) (err error) {
			tables.Descriptions, err = LoadDescriptions(f)
			return
		}},
		{files.Precaution, func(f *os.File) (err error) {
			tables.Precautions, err = LoadPrecautions(f)
			return
		}},
	}

	for _, step := range steps {
		f, err := os.Open(step.path)
		if err != nil {
			return nil, nil, fmt.Errorf("open table: %w", err)
		}
		err = step.load(f)
		f.Close()
		if err != nil {
			return nil, nil, err
		}
	}

	g, c, err := Build(tables)
	if err != nil {
		return nil, nil, err
	}

	stats := g.Statistics()
	logger.Info("dataset loaded",
		logging.Int("symptoms", stats.Symptoms),
		logging.Int("diseases", stats.Diseases),
		logging.Int("edges", stats.Edges),
		logging.Int("cataloged", c.Len()),
	)
	return g, c, nil
}
