package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/medigraph/symptomgraph/pkg/catalog"
	"github.com/medigraph/symptomgraph/pkg/diagnosis"
	"github.com/medigraph/symptomgraph/pkg/graph"
)

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	stats := s.engine.Graph().Statistics()
	s.respondJSON(w, http.StatusOK, InfoResponse{
		Version:   s.version,
		Symptoms:  stats.Symptoms,
		Diseases:  stats.Diseases,
		Edges:     stats.Edges,
		StartedAt: s.startTime,
		Uptime:    time.Since(s.startTime).String(),
	})
}

func (s *Server) handleSymptoms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	symptoms := s.engine.Graph().VertexNames(graph.KindSymptom)
	s.respondJSON(w, http.StatusOK, SymptomsResponse{
		Symptoms: symptoms,
		Count:    len(symptoms),
	})
}

func (s *Server) handleDiseases(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	names := s.engine.Catalog().Names()
	diseases := make([]DiseaseResponse, 0, len(names))
	for _, name := range names {
		record, err := s.engine.Catalog().Describe(name)
		if err != nil {
			s.respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		diseases = append(diseases, recordToResponse(record))
	}
	s.respondJSON(w, http.StatusOK, DiseasesResponse{
		Diseases: diseases,
		Count:    len(diseases),
	})
}

func (s *Server) handleDisease(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/diseases/")
	if name == "" {
		s.respondError(w, http.StatusBadRequest, "Disease name required")
		return
	}

	record, err := s.engine.Catalog().Describe(name)
	if err != nil {
		if errors.Is(err, catalog.ErrDiseaseNotCataloged) {
			s.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, recordToResponse(record))
}

func (s *Server) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req DiagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	results, err := s.engine.Diagnose(req.Symptoms)
	elapsed := time.Since(start)

	if err != nil {
		switch {
		case errors.Is(err, diagnosis.ErrUnknownSymptom):
			// Recoverable: the caller re-selects; engine state is untouched.
			s.metrics.RecordDiagnosis("unknown_symptom", elapsed, 0)
			s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, catalog.ErrDiseaseNotCataloged):
			// Data-consistency defect between source tables.
			s.metrics.RecordDiagnosis("catalog_miss", elapsed, 0)
			s.respondError(w, http.StatusInternalServerError, err.Error())
		default:
			s.metrics.RecordDiagnosis("error", elapsed, 0)
			s.respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	s.metrics.RecordDiagnosis("ok", elapsed, len(results))
	s.respondJSON(w, http.StatusOK, DiagnoseResponse{
		Results: results,
		Count:   len(results),
		Time:    elapsed.String(),
	})
}

func recordToResponse(record catalog.Record) DiseaseResponse {
	return DiseaseResponse{
		Name:        record.Name,
		Description: record.Description,
		Precautions: record.Precautions,
		Symptoms:    record.Symptoms,
	}
}
