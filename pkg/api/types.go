package api

import (
	"time"

	"github.com/medigraph/symptomgraph/pkg/diagnosis"
)

// DiagnoseRequest is the payload for POST /diagnose.
type DiagnoseRequest struct {
	Symptoms []string `json:"symptoms" validate:"required,min=1,dive,required"`
}

// DiagnoseResponse carries the ranked candidates for a diagnosis request.
// An empty Results list is normal signal: fewer than two symptoms, or no
// symptom pair shares a disease.
type DiagnoseResponse struct {
	Results []diagnosis.Result `json:"results"`
	Count   int                `json:"count"`
	Time    string             `json:"time"`
}

// SymptomsResponse lists the selectable symptom names.
type SymptomsResponse struct {
	Symptoms []string `json:"symptoms"`
	Count    int      `json:"count"`
}

// DiseaseResponse is one catalog entry.
type DiseaseResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Precautions []string `json:"precautions"`
	Symptoms    []string `json:"symptoms"`
}

// DiseasesResponse lists catalog entries.
type DiseasesResponse struct {
	Diseases []DiseaseResponse `json:"diseases"`
	Count    int               `json:"count"`
}

// InfoResponse describes the running service.
type InfoResponse struct {
	Version   string    `json:"version"`
	Symptoms  int       `json:"symptoms"`
	Diseases  int       `json:"diseases"`
	Edges     int       `json:"edges"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
