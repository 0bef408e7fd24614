package builders

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/rasakit/config"
	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/pipeline"
)

const pipelineYAML = `
pipeline:
  name: warung-feed
  nodes:
    - type: recall.catalog
      config:
        version: v1
        items:
          - name: Surabi Enhaii
            category: Snack
            price: 8000
            rating: 4.5
            location: Riau
          - name: Batagor Kingsley
            category: Snack
            price: 20000
            rating: 4.6
            location: Kebon Kawung
          - name: Kedai Kopi Aroma
            category: Minuman
            price: 25000
            rating: 4.1
            location: Braga
    - type: filter
      config:
        filters:
          - type: constraint
    - type: rerank.sort
      config:
        by: rating
    - type: rerank.topn
      config:
        n: 2
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestBuildPipelineFromYAML(t *testing.T) {
	cfg, err := pipeline.LoadFromYAML(writeConfig(t, pipelineYAML))
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if err := config.ValidatePipelineConfig(cfg); err != nil {
		t.Fatalf("ValidatePipelineConfig() error = %v", err)
	}

	p, err := cfg.BuildPipeline(config.DefaultFactory())
	if err != nil {
		t.Fatalf("BuildPipeline() error = %v", err)
	}
	if len(p.Nodes) != 4 {
		t.Fatalf("len(Nodes) = %d, want 4", len(p.Nodes))
	}

	rctx := &core.RecommendContext{
		Preference: &core.Preference{Categories: []string{"Snack"}},
	}
	out, err := p.Run(context.Background(), rctx, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// two Snack items left, rating desc
	wantNames := []string{"Batagor Kingsley", "Surabi Enhaii"}
	if len(out) != len(wantNames) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(wantNames))
	}
	for i, want := range wantNames {
		if out[i].Item.Name != want {
			t.Errorf("out[%d] = %s, want %s", i, out[i].Item.Name, want)
		}
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	cfg, err := pipeline.LoadFromYAML(writeConfig(t, `
pipeline:
  name: broken
  nodes:
    - type: rank.xgboost
`))
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if err := config.ValidatePipelineConfig(cfg); err == nil {
		t.Error("ValidatePipelineConfig() should reject unregistered node type")
	}
}

func TestBuildCosineNodeIsProgrammaticOnly(t *testing.T) {
	if _, err := BuildCosineNode(nil); err == nil {
		t.Error("BuildCosineNode() should refuse config-driven construction")
	}
}

func TestBuildFilterNodeDefaultsToConstraint(t *testing.T) {
	node, err := BuildFilterNode(map[string]interface{}{})
	if err != nil {
		t.Fatalf("BuildFilterNode() error = %v", err)
	}
	if node == nil {
		t.Fatal("BuildFilterNode() returned nil node")
	}
}
