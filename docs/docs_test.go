package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"cattery/docs"
)

type openAPI struct {
	BasePath    string                                `json:"basePath"`
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func readDoc(t *testing.T) openAPI {
	t.Helper()
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc openAPI
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), "template must render valid JSON")
	return doc
}

func TestSwagger_DocumentsRoutes(t *testing.T) {
	doc := readDoc(t)

	assert.Equal(t, "/api/v1", doc.BasePath)

	routes := map[string][]string{
		"/auth/login":                    {"post"},
		"/auth/refresh":                  {"post"},
		"/auth/me":                       {"get"},
		"/ai/form/fill":                  {"post"},
		"/ai/providers":                  {"get"},
		"/admin/cats":                    {"get", "post"},
		"/admin/cats/{id}":               {"get", "put", "delete"},
		"/admin/cats/bulk":               {"delete"},
		"/admin/cats/export":             {"get"},
		"/admin/cat-drafts":              {"post"},
		"/admin/cat-drafts/{id}":         {"get", "patch", "delete"},
		"/admin/cat-drafts/{id}/ai-fill": {"post"},
		"/admin/cat-drafts/{id}/reset":   {"post"},
		"/admin/cat-drafts/{id}/commit":  {"post"},
		"/admin/cat-breeds":              {"get", "post"},
		"/admin/cat-breeds/{id}":         {"put", "delete"},
		"/admin/cat-statuses":            {"get", "post"},
		"/admin/cat-statuses/{id}":       {"put", "delete"},
		"/admin/stores":                  {"get", "post"},
		"/admin/stores/{id}":             {"get", "put", "delete"},
		"/admin/stores/bulk":             {"delete"},
		"/admin/configs":                 {"get"},
		"/admin/configs/{key}":           {"get", "put"},
		"/admin/uploads/batch":           {"post"},
	}
	for path, methods := range routes {
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "missing path %s", path) {
			continue
		}
		for _, m := range methods {
			assert.Contains(t, ops, m, "missing %s %s", m, path)
		}
	}
}

func TestSwagger_DefinitionsResolve(t *testing.T) {
	doc := readDoc(t)

	for _, name := range []string{"aifill.Output", "service.DraftView", "domain.Cat", "domain.CatStatus", "handler.ErrorResponseBody"} {
		assert.Contains(t, doc.Definitions, name)
	}

	var status struct {
		Properties map[string]json.RawMessage `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(doc.Definitions["domain.CatStatus"], &status))
	assert.Contains(t, status.Properties, "hint")
}
