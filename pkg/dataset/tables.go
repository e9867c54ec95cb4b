// Package dataset loads the tabular source files (severity, relationship,
// description, precaution tables) and builds the symptom-disease graph and
// disease catalog from them. Loading happens once at startup; any
// inconsistency in the source data aborts initialization.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/medigraph/symptomgraph/pkg/graph"
)

// Severity scores are positive integers in [1, MaxSeverity].
const MaxSeverity = 7

var (
	ErrEmptyTable     = errors.New("table has no data rows")
	ErrSeverityRange  = errors.New("severity out of range")
	ErrSymptomUnrated = errors.New("symptom missing from severity table")
)

// Tables holds the parsed in-memory form of the four source tables.
type Tables struct {
	// Severity maps symptom name to its severity score in [1, MaxSeverity].
	Severity map[string]int
	// Relationships maps disease name to its associated symptom names.
	// Repeated rows for the same disease merge their symptom sets.
	Relationships map[string][]string
	// Descriptions maps disease name to free text.
	Descriptions map[string]string
	// Precautions maps disease name to an ordered list of precautions.
	Precautions map[string][]string
}

// readRows reads all CSV records after the header row.
func readRows(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows vary in width across the tables

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyTable
	}
	return rows[1:], nil
}

// LoadSeverity parses the severity table: symptom,weight rows.
func LoadSeverity(r io.Reader) (map[string]int, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, fmt.Errorf("load severity table: %w", err)
	}

	severity := make(map[string]int, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		name := graph.Normalize(row[0])
		if name == "" {
			continue
		}
		score, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("load severity table: symptom %q: %w", name, err)
		}
		if score < 1 || score > MaxSeverity {
			return nil, fmt.Errorf("load severity table: symptom %q score %d: %w",
				name, score, ErrSeverityRange)
		}
		severity[name] = score
	}
	return severity, nil
}

// LoadRelationships parses the relationship table: wide rows of
// disease,symptom_1,...,symptom_n with blank cells ignored. Repeated rows
// for the same disease merge, so reloading the same rows is idempotent.
func LoadRelationships(r io.Reader) (map[string][]string, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, fmt.Errorf("load relationship table: %w", err)
	}

	sets := make(map[string]map[string]struct{})
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		disease := graph.Normalize(row[0])
		if disease == "" {
			continue
		}
		if sets[disease] == nil {
			sets[disease] = make(map[string]struct{})
		}
		for _, cell := range row[1:] {
			symptom := graph.Normalize(cell)
			if symptom != "" {
				sets[disease][symptom] = struct{}{}
			}
		}
	}

	relationships := make(map[string][]string, len(sets))
	for disease, set := range sets {
		symptoms := make([]string, 0, len(set))
		for symptom := range set {
			symptoms = append(symptoms, symptom)
		}
		sort.Strings(symptoms)
		relationships[disease] = symptoms
	}
	return relationships, nil
}

// LoadDescriptions parses the description table: disease,description rows.
func LoadDescriptions(r io.Reader) (map[string]string, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, fmt.Errorf("load description table: %w", err)
	}

	descriptions := make(map[string]string, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		disease := graph.Normalize(row[0])
		if disease == "" {
			continue
		}
		descriptions[disease] = strings.TrimSpace(row[1])
	}
	return descriptions, nil
}

// LoadPrecautions parses the precaution table: disease,p1..p4 rows with
// blank precautions dropped.
func LoadPrecautions(r io.Reader) (map[string][]string, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, fmt.Errorf("load precaution table: %w", err)
	}

	precautions := make(map[string][]string, len(rows))
	for _, row := range rows {
		if len(row) < 1 {
			continue
		}
		disease := graph.Normalize(row[0])
		if disease == "" {
			continue
		}
		list := make([]string, 0, len(row)-1)
		for _, cell := range row[1:] {
			if p := strings.TrimSpace(cell); p != "" {
				list = append(list, p)
			}
		}
		precautions[disease] = list
	}
	return precautions, nil
}
