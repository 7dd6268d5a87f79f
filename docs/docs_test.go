package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestTemplateRendersAsJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var spec struct {
		Swagger string         `json:"swagger"`
		Info    map[string]any `json:"info"`
		Paths   map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		t.Fatalf("rendered spec is not valid JSON: %v", err)
	}
	if spec.Swagger != "2.0" {
		t.Fatalf("unexpected swagger version: %q", spec.Swagger)
	}
	if spec.Info["title"] != "Todo API" {
		t.Fatalf("unexpected title: %v", spec.Info["title"])
	}
	if len(spec.Paths) == 0 {
		t.Fatal("expected documented paths")
	}
}
