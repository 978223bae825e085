package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerDoc_ListsAllRoutes(t *testing.T) {
	var doc struct {
		Info struct {
			Description string `json:"description"`
			Title       string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger doc is not valid json: %v", err)
	}

	if doc.Info.Title != "Pet Adoption API" {
		t.Fatalf("unexpected title %q", doc.Info.Title)
	}
	if doc.Info.Description != "Publicación de mascotas en adopción, listado y solicitudes de adopción." {
		t.Fatalf("unexpected description %q", doc.Info.Description)
	}

	want := map[string][]string{
		"/api/pets":                {"get", "post"},
		"/api/pets/{petID}":        {"get"},
		"/api/pets/{petID}/status": {"patch"},
		"/api/adoption-pets":       {"get"},
		"/api/adoptions":           {"get", "post"},
	}
	for path, methods := range want {
		ops, ok := doc.Paths[path]
		if !ok {
			t.Fatalf("missing path %s", path)
		}
		for _, m := range methods {
			if _, ok := ops[m]; !ok {
				t.Fatalf("missing %s %s", m, path)
			}
		}
	}
}
