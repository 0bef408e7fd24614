package filter

import (
	"context"
	"testing"

	"github.com/rushteam/rasakit/core"
)

func TestRule_ShouldFilter(t *testing.T) {
	item := core.Item{Name: "Surabi Enhaii", Category: "Snack", Price: 8000, Rating: 4.5, Location: "Riau"}

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{name: "empty expr keeps everything", expr: "", want: false},
		{name: "price rule keeps cheap item", expr: "item.price <= 15000.0", want: false},
		{name: "price rule drops cheap item", expr: "item.price > 15000.0", want: true},
		{name: "category equality", expr: `item.category == "Snack"`, want: false},
		{name: "location membership", expr: `item.location in ["Riau", "Braga"]`, want: false},
		{name: "combined rule", expr: `item.category == "Snack" && item.rating >= 4.0`, want: false},
		{name: "combined rule fails", expr: `item.category == "Dessert" && item.rating >= 4.0`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Rule{Expr: tt.expr}
			rctx := &core.RecommendContext{}
			got, err := f.ShouldFilter(context.Background(), rctx, core.NewCandidate(item, 0))
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestRule_StrictInvalidExpr(t *testing.T) {
	item := core.Item{Name: "A", Category: "Snack"}
	f := &Rule{Expr: "item.price +", Strict: true}
	if _, err := f.ShouldFilter(context.Background(), &core.RecommendContext{}, core.NewCandidate(item, 0)); err == nil {
		t.Error("strict mode should surface compile errors")
	}
}

func TestNode_PropagatesStrictRuleError(t *testing.T) {
	catalog := core.NewCatalog("v1", []core.Item{
		{Name: "A", Category: "Snack", Price: 8000, Rating: 4.5, Location: "Riau"},
	})
	node := &Node{Filters: []Filter{&Rule{Expr: "item.price +", Strict: true}}}
	if _, err := node.Process(context.Background(), &core.RecommendContext{}, core.Candidates(catalog)); err == nil {
		t.Error("Process() should surface a strict rule error")
	}
}

func TestNode_LenientRuleErrorKeepsCandidates(t *testing.T) {
	catalog := core.NewCatalog("v1", []core.Item{
		{Name: "A", Category: "Snack", Price: 8000, Rating: 4.5, Location: "Riau"},
	})
	node := &Node{Filters: []Filter{&Rule{Expr: "item.price +"}}}
	out, err := node.Process(context.Background(), &core.RecommendContext{}, core.Candidates(catalog))
	if err != nil {
		t.Fatalf("Process() error = %v, lenient rule must not break the chain", err)
	}
	if len(out) != 1 {
		t.Errorf("len(out) = %d, want 1 (candidate kept on eval failure)", len(out))
	}
}

func TestRule_LenientInvalidExpr(t *testing.T) {
	item := core.Item{Name: "A", Category: "Snack"}
	f := &Rule{Expr: "item.price +"}
	got, err := f.ShouldFilter(context.Background(), &core.RecommendContext{}, core.NewCandidate(item, 0))
	if err != nil {
		t.Fatalf("lenient mode should not return error, got %v", err)
	}
	if got {
		t.Error("lenient mode keeps candidates on eval failure")
	}
}
