// Package e2e exercises the full HTTP surface end to end: dataset files on
// disk, graph and catalog build, and the wired handler chain.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medigraph/symptomgraph/pkg/api"
	"github.com/medigraph/symptomgraph/pkg/dataset"
	"github.com/medigraph/symptomgraph/pkg/diagnosis"
	"github.com/medigraph/symptomgraph/pkg/metrics"
)

const (
	severityCSV = `symptom,weight
itching,1
skin_rash,3
continuous_sneezing,4
shivering,5
headache,3
high_fever,7
`
	relationshipCSV = `disease,symptom_1,symptom_2,symptom_3
Fungal Infection,itching,skin_rash,
Allergy,continuous_sneezing,shivering,
Common Cold,headache,high_fever,continuous_sneezing
`
	descriptionCSV = `disease,description
Fungal Infection,A common fungal infection of the skin.
Allergy,An immune response to a foreign substance.
Common Cold,A viral infection of the upper respiratory tract.
`
	precautionCSV = `disease,p1,p2,p3,p4
Fungal Infection,bath twice,use clean cloths,keep area dry,use antifungal soap
Allergy,apply calamine,cover area with bandage,,use ice
Common Cold,drink vitamin c rich drinks,take vapour,avoid cold food,keep fever in check
`
)

// startTestServer loads the sample dataset from temp files and starts an
// HTTP test server over the fully wired handler.
func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	files := dataset.Files{
		Severity:     write("severity.csv", severityCSV),
		Relationship: write("dataset.csv", relationshipCSV),
		Description:  write("description.csv", descriptionCSV),
		Precaution:   write("precaution.csv", precautionCSV),
	}

	g, c, err := dataset.LoadFiles(files, nil)
	require.NoError(t, err)

	engine := diagnosis.NewEngine(g, c, nil)
	server, err := api.NewServer(engine, metrics.NewRegistry(), nil, nil)
	require.NoError(t, err)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postDiagnose(t *testing.T, baseURL string, symptoms []string) (*http.Response, api.DiagnoseResponse) {
	t.Helper()

	body, err := json.Marshal(api.DiagnoseRequest{Symptoms: symptoms})
	require.NoError(t, err)

	resp, err := http.Post(baseURL+"/diagnose", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded api.DiagnoseResponse
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	}
	return resp, decoded
}

func TestCompleteDiagnosisWorkflow(t *testing.T) {
	ts := startTestServer(t)

	// Step 1: discover the selectable symptoms
	resp, err := http.Get(ts.URL + "/symptoms")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var symptoms api.SymptomsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&symptoms))
	assert.Equal(t, 6, symptoms.Count)
	assert.Contains(t, symptoms.Symptoms, "high_fever")

	// Step 2: diagnose with two symptoms that share one disease
	diagResp, ranked := postDiagnose(t, ts.URL, []string{"itching", "skin_rash"})
	require.Equal(t, http.StatusOK, diagResp.StatusCode)
	require.Len(t, ranked.Results, 1)
	assert.Equal(t, "fungal_infection", ranked.Results[0].Disease)
	assert.InDelta(t, 100.0, ranked.Results[0].Probability, 1e-9)
	assert.NotEmpty(t, ranked.Results[0].Description)
	assert.Len(t, ranked.Results[0].Precautions, 4)

	// Step 3: look up the winning disease in the catalog
	resp, err = http.Get(ts.URL + "/diseases/fungal_infection")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var disease api.DiseaseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&disease))
	assert.Equal(t, []string{"itching", "skin_rash"}, disease.Symptoms)
}

func TestDiagnosisDistribution(t *testing.T) {
	ts := startTestServer(t)

	// continuous_sneezing is shared by allergy and common_cold; selecting
	// symptoms from both clusters produces a multi-candidate distribution.
	resp, result := postDiagnose(t, ts.URL,
		[]string{"continuous_sneezing", "shivering", "headache", "high_fever"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.GreaterOrEqual(t, len(result.Results), 2)

	sum := 0.0
	for _, r := range result.Results {
		assert.Greater(t, r.Probability, 0.0)
		sum += r.Probability
	}
	assert.InDelta(t, 100.0, sum, 1e-6)

	// Descending order
	for i := 1; i < len(result.Results); i++ {
		assert.GreaterOrEqual(t,
			result.Results[i-1].Probability, result.Results[i].Probability)
	}
}

func TestEmptyAndErrorResults(t *testing.T) {
	ts := startTestServer(t)

	// A single symptom yields an empty but successful result
	resp, result := postDiagnose(t, ts.URL, []string{"itching"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, result.Results)

	// Disconnected symptom pairs yield an empty result too
	resp, result = postDiagnose(t, ts.URL, []string{"itching", "shivering"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, result.Results)

	// An unknown symptom is a 422
	resp, _ = postDiagnose(t, ts.URL, []string{"itching", "dragon_pox"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGraphQLEndpoint(t *testing.T) {
	ts := startTestServer(t)

	query := map[string]string{
		"query": `{ diagnose(symptoms: ["itching", "skin_rash"]) { disease probability } }`,
	}
	body, err := json.Marshal(query)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/graphql", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		Data struct {
			Diagnose []struct {
				Disease     string  `json:"disease"`
				Probability float64 `json:"probability"`
			} `json:"diagnose"`
		} `json:"data"`
		Errors []any `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.Empty(t, decoded.Errors)
	require.Len(t, decoded.Data.Diagnose, 1)
	assert.Equal(t, "fungal_infection", decoded.Data.Diagnose[0].Disease)
}

func TestConcurrentDiagnoses(t *testing.T) {
	ts := startTestServer(t)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body, _ := json.Marshal(api.DiagnoseRequest{
				Symptoms: []string{"itching", "skin_rash"},
			})
			resp, err := http.Post(ts.URL+"/diagnose", "application/json", bytes.NewReader(body))
			if err != nil {
				errs <- err
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				errs <- fmt.Errorf("unexpected status %d", resp.StatusCode)
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
