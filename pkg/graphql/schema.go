// Package graphql exposes the diagnosis engine over a GraphQL schema:
// symptom and disease lookups plus the diagnose query.
package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/medigraph/symptomgraph/pkg/diagnosis"
	"github.com/medigraph/symptomgraph/pkg/graph"
)

// GenerateSchema builds the GraphQL schema over the given engine.
func GenerateSchema(engine *diagnosis.Engine) (graphql.Schema, error) {
	diseaseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Disease",
		Fields: graphql.Fields{
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.String},
			"precautions": &graphql.Field{Type: graphql.NewList(graphql.String)},
			"symptoms":    &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	resultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "DiagnosisResult",
		Fields: graphql.Fields{
			"disease":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"probability": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"description": &graphql.Field{Type: graphql.String},
			"precautions": &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return "ok", nil
				},
			},
			"symptoms": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return engine.Graph().VertexNames(graph.KindSymptom), nil
				},
			},
			"diseases": &graphql.Field{
				Type: graphql.NewList(diseaseType),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					names := engine.Catalog().Names()
					records := make([]map[string]any, 0, len(names))
					for _, name := range names {
						record, err := engine.Catalog().Describe(name)
						if err != nil {
							return nil, err
						}
						records = append(records, recordToMap(record.Name, record.Description,
							record.Precautions, record.Symptoms))
					}
					return records, nil
				},
			},
			"disease": &graphql.Field{
				Type: diseaseType,
				Args: graphql.FieldConfigArgument{
					"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					name, _ := p.Args["name"].(string)
					record, err := engine.Catalog().Describe(name)
					if err != nil {
						return nil, err
					}
					return recordToMap(record.Name, record.Description,
						record.Precautions, record.Symptoms), nil
				},
			},
			"diagnose": &graphql.Field{
				Type: graphql.NewList(resultType),
				Args: graphql.FieldConfigArgument{
					"symptoms": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String))),
					},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					raw, _ := p.Args["symptoms"].([]any)
					symptoms := make([]string, 0, len(raw))
					for _, item := range raw {
						name, ok := item.(string)
						if !ok {
							return nil, fmt.Errorf("symptoms must be strings, got %T", item)
						}
						symptoms = append(symptoms, name)
					}

					results, err := engine.Diagnose(symptoms)
					if err != nil {
						return nil, err
					}

					out := make([]map[string]any, 0, len(results))
					for _, r := range results {
						out = append(out, map[string]any{
							"disease":     r.Disease,
							"probability": r.Probability,
							"description": r.Description,
							"precautions": r.Precautions,
						})
					}
					return out, nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}
	return schema, nil
}

func recordToMap(name, description string, precautions, symptoms []string) map[string]any {
	return map[string]any{
		"name":        name,
		"description": description,
		"precautions": precautions,
		"symptoms":    symptoms,
	}
}

// ExecuteQuery runs a GraphQL query against the schema.
func ExecuteQuery(query string, schema graphql.Schema) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: query,
	})
}

// ExecuteQueryWithVariables runs a GraphQL query with variables.
func ExecuteQueryWithVariables(query string, schema graphql.Schema, variables map[string]any) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
	})
}
