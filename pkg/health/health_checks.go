package health

import "time"

// SimpleCheck creates a simple health check that always returns healthy
func SimpleCheck(name string) Check {
	return Check{
		Name:        name,
		Status:      StatusHealthy,
		LastChecked: time.Now(),
	}
}

// Domain health check constructors

// GraphCheck verifies the symptom-disease graph is loaded and non-trivial.
func GraphCheck(stats func() (symptoms, diseases, edges int)) CheckFunc {
	return func() Check {
		check := Check{
			Name:    "graph",
			Details: make(map[string]any),
		}

		symptoms, diseases, edges := stats()
		check.Details["symptoms"] = symptoms
		check.Details["diseases"] = diseases
		check.Details["edges"] = edges

		switch {
		case symptoms == 0 || diseases == 0:
			check.Status = StatusUnhealthy
			check.Message = "Graph is empty"
		case edges == 0:
			check.Status = StatusDegraded
			check.Message = "Graph has vertices but no edges"
		default:
			check.Status = StatusHealthy
			check.Message = "Graph loaded"
		}

		return check
	}
}

// CatalogCheck verifies every disease vertex has a catalog entry. Missing
// entries degrade health: diagnosis still works until one of those diseases
// is actually scored.
func CatalogCheck(uncataloged func() []string) CheckFunc {
	return func() Check {
		check := Check{
			Name:    "catalog",
			Details: make(map[string]any),
		}

		missing := uncataloged()
		check.Details["uncataloged"] = len(missing)

		if len(missing) > 0 {
			check.Status = StatusDegraded
			check.Message = "Disease vertices without catalog entries"
			check.Details["names"] = missing
		} else {
			check.Status = StatusHealthy
			check.Message = "Catalog consistent with graph"
		}

		return check
	}
}
