// Package catalog holds static disease metadata: descriptions, precaution
// lists, and the symptom sets each disease is associated with. Records are
// immutable after load and consulted only after scoring, to enrich results.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/medigraph/symptomgraph/pkg/graph"
)

// ErrDiseaseNotCataloged indicates a disease produced by scoring has no
// catalog entry. This is a data-consistency defect between the relationship
// table and the description/precaution tables and is surfaced loudly rather
// than silently omitted, since omission would misrepresent the ranking.
var ErrDiseaseNotCataloged = errors.New("disease not cataloged")

// MaxPrecautions caps the precaution list per disease.
const MaxPrecautions = 4

// Record is the immutable metadata for one disease.
type Record struct {
	Name        string
	Description string
	Precautions []string
	Symptoms    []string
}

// Catalog is a lookup from disease name to its record.
type Catalog struct {
	records map[string]Record
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{records: make(map[string]Record)}
}

// Put inserts or replaces a record, normalizing its name and truncating the
// precaution list to MaxPrecautions. Used by loaders only; the catalog is
// read-only once serving requests.
func (c *Catalog) Put(record Record) {
	record.Name = graph.Normalize(record.Name)
	if len(record.Precautions) > MaxPrecautions {
		record.Precautions = record.Precautions[:MaxPrecautions]
	}
	c.records[record.Name] = record
}

// Describe returns the record for the named disease.
func (c *Catalog) Describe(name string) (Record, error) {
	record, ok := c.records[graph.Normalize(name)]
	if !ok {
		return Record{}, fmt.Errorf("describe disease %q: %w", name, ErrDiseaseNotCataloged)
	}
	return record, nil
}

// Has reports whether the named disease is cataloged.
func (c *Catalog) Has(name string) bool {
	_, ok := c.records[graph.Normalize(name)]
	return ok
}

// Names returns all cataloged disease names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.records))
	for name := range c.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of cataloged diseases.
func (c *Catalog) Len() int {
	return len(c.records)
}
