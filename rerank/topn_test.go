package rerank

import (
	"context"
	"testing"

	"github.com/rushteam/rasakit/core"
)

func scoredCandidates() []*core.Candidate {
	mk := func(name string, idx int, score float64) *core.Candidate {
		c := core.NewCandidate(core.Item{Name: name}, idx)
		c.Score = score
		return c
	}
	return []*core.Candidate{
		mk("A", 0, 0.6),
		mk("B", 1, 0.9),
		mk("C", 2, 0.6),
		mk("D", 3, 0.7),
	}
}

func TestTopN_SortsAndTruncates(t *testing.T) {
	node := &TopN{N: 3}
	out, err := node.Process(context.Background(), &core.RecommendContext{}, scoredCandidates())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	wantNames := []string{"B", "D", "A"}
	if len(out) != len(wantNames) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(wantNames))
	}
	for i, want := range wantNames {
		if out[i].Item.Name != want {
			t.Errorf("out[%d] = %s, want %s", i, out[i].Item.Name, want)
		}
	}
}

func TestTopN_TieKeepsCatalogOrder(t *testing.T) {
	node := &TopN{N: 4}
	out, err := node.Process(context.Background(), &core.RecommendContext{}, scoredCandidates())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// A and C share 0.6; A has the lower catalog index and must come first
	wantNames := []string{"B", "D", "A", "C"}
	for i, want := range wantNames {
		if out[i].Item.Name != want {
			t.Errorf("out[%d] = %s, want %s", i, out[i].Item.Name, want)
		}
	}
}

func TestTopN_NLargerThanInput(t *testing.T) {
	node := &TopN{N: 10}
	out, err := node.Process(context.Background(), &core.RecommendContext{}, scoredCandidates())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 4 {
		t.Errorf("len(out) = %d, want 4", len(out))
	}
}

func TestTopN_ZeroOnlySorts(t *testing.T) {
	node := &TopN{}
	out, err := node.Process(context.Background(), &core.RecommendContext{}, scoredCandidates())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 4 {
		t.Errorf("len(out) = %d, want 4 (no truncation)", len(out))
	}
	if out[0].Item.Name != "B" {
		t.Errorf("out[0] = %s, want B", out[0].Item.Name)
	}
}

func TestSort_ByRatingDesc(t *testing.T) {
	candidates := []*core.Candidate{
		core.NewCandidate(core.Item{Name: "A", Rating: 4.2, Price: 10000}, 0),
		core.NewCandidate(core.Item{Name: "B", Rating: 4.6, Price: 25000}, 1),
		core.NewCandidate(core.Item{Name: "C", Rating: 4.2, Price: 8000}, 2),
	}

	node := &Sort{By: ByRating}
	out, err := node.Process(context.Background(), &core.RecommendContext{}, candidates)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// B first, then the 4.2 tie in original order
	wantNames := []string{"B", "A", "C"}
	for i, want := range wantNames {
		if out[i].Item.Name != want {
			t.Errorf("out[%d] = %s, want %s", i, out[i].Item.Name, want)
		}
	}
}

func TestSort_ByPriceAsc(t *testing.T) {
	candidates := []*core.Candidate{
		core.NewCandidate(core.Item{Name: "A", Price: 10000}, 0),
		core.NewCandidate(core.Item{Name: "B", Price: 25000}, 1),
		core.NewCandidate(core.Item{Name: "C", Price: 8000}, 2),
	}

	node := &Sort{By: ByPrice, Asc: true}
	out, err := node.Process(context.Background(), &core.RecommendContext{}, candidates)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	wantNames := []string{"C", "A", "B"}
	for i, want := range wantNames {
		if out[i].Item.Name != want {
			t.Errorf("out[%d] = %s, want %s", i, out[i].Item.Name, want)
		}
	}
}
