package rank

import (
	"context"
	"math"
	"testing"

	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/feature"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{name: "identical direction", a: []float64{1, 0, 1}, b: []float64{2, 0, 2}, want: 1},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, want: 0},
		{name: "opposite", a: []float64{1, 0}, b: []float64{-1, 0}, want: -1},
		{name: "zero norm a", a: []float64{0, 0}, b: []float64{1, 1}, want: 0},
		{name: "zero norm b", a: []float64{1, 1}, b: []float64{0, 0}, want: 0},
		{name: "both zero", a: []float64{0, 0}, b: []float64{0, 0}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cosine(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	// [-1, 1] -> [0, 1]
	if got := Score([]float64{1, 0}, []float64{1, 0}); math.Abs(got-1) > 1e-9 {
		t.Errorf("Score(identical) = %v, want 1", got)
	}
	if got := Score([]float64{1, 0}, []float64{-1, 0}); math.Abs(got) > 1e-9 {
		t.Errorf("Score(opposite) = %v, want 0", got)
	}
	// zero-norm raw cosine is defined as 0, presented as 0.5
	if got := Score([]float64{0, 0}, []float64{1, 0}); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Score(zero norm) = %v, want 0.5", got)
	}
}

func rankTestCatalog() *core.Catalog {
	return core.NewCatalog("v1", []core.Item{
		{Name: "Surabi Enhaii", Category: "Snack", Price: 8000, Rating: 4.5, Location: "Riau"},
		{Name: "Batagor Kingsley", Category: "Snack", Price: 20000, Rating: 4.0, Location: "Braga"},
		{Name: "Kedai Kopi Aroma", Category: "Minuman", Price: 25000, Rating: 4.1, Location: "Braga"},
	})
}

func TestCosineNode_ScoresAllPreservingOrder(t *testing.T) {
	catalog := rankTestCatalog()
	space, err := feature.BuildSpace(catalog)
	if err != nil {
		t.Fatalf("BuildSpace() error = %v", err)
	}
	pref := &core.Preference{Categories: []string{"Snack"}, MaxPrice: 15000, MinRating: 4.0}

	node := &CosineNode{Space: space, PreferenceVector: space.PreferenceVector(pref)}
	candidates := core.Candidates(catalog)
	out, err := node.Process(context.Background(), &core.RecommendContext{Preference: pref}, candidates)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(out) != catalog.Len() {
		t.Fatalf("len(out) = %d, want %d (rank must not drop candidates)", len(out), catalog.Len())
	}
	for i, c := range out {
		if c.Item.Name != catalog.Items[i].Name {
			t.Errorf("out[%d] = %s, rank must preserve input order", i, c.Item.Name)
		}
		if c.Score < 0 || c.Score > 1 {
			t.Errorf("score of %s = %v, want within [0, 1]", c.Item.Name, c.Score)
		}
		if lbl, ok := c.Labels["rank_metric"]; !ok || lbl.Value != "cosine" {
			t.Errorf("rank_metric label = %+v, want cosine", lbl)
		}
	}

	// the snack matching category, budget and location profile should outscore the rest
	if out[0].Score <= out[2].Score {
		t.Errorf("Surabi (%v) should outscore Kopi Aroma (%v)", out[0].Score, out[2].Score)
	}
}

func TestCosineNode_EmptyPreferenceNeutralScores(t *testing.T) {
	catalog := rankTestCatalog()
	space, err := feature.BuildSpace(catalog)
	if err != nil {
		t.Fatalf("BuildSpace() error = %v", err)
	}

	node := &CosineNode{Space: space}
	out, err := node.Process(context.Background(), &core.RecommendContext{}, core.Candidates(catalog))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	for _, c := range out {
		if math.Abs(c.Score-0.5) > 1e-9 {
			t.Errorf("score of %s = %v, want neutral 0.5 for empty preference", c.Item.Name, c.Score)
		}
	}
}
