package filter

import (
	"context"
	"testing"

	"github.com/rushteam/rasakit/core"
)

func TestConstraint_ShouldFilter(t *testing.T) {
	item := core.Item{Name: "Surabi Enhaii", Category: "Snack", Price: 8000, Rating: 4.5, Location: "Riau"}

	tests := []struct {
		name string
		pref *core.Preference
		want bool
	}{
		{
			name: "all constraints satisfied",
			pref: &core.Preference{
				Categories: []string{"Snack"},
				Locations:  []string{"Riau", "Braga"},
				MaxPrice:   15000,
				MinRating:  4.0,
			},
			want: false,
		},
		{
			name: "category mismatch",
			pref: &core.Preference{Categories: []string{"Minuman"}},
			want: true,
		},
		{
			name: "location mismatch",
			pref: &core.Preference{Locations: []string{"Braga"}},
			want: true,
		},
		{
			name: "price above budget",
			pref: &core.Preference{MaxPrice: 5000},
			want: true,
		},
		{
			name: "rating below minimum",
			pref: &core.Preference{MinRating: 4.6},
			want: true,
		},
		{
			name: "price exactly at budget passes",
			pref: &core.Preference{MaxPrice: 8000},
			want: false,
		},
		{
			name: "rating exactly at minimum passes",
			pref: &core.Preference{MinRating: 4.5},
			want: false,
		},
		{
			name: "empty preference applies nothing",
			pref: &core.Preference{},
			want: false,
		},
		{
			name: "wildcard category and location",
			pref: &core.Preference{Categories: []string{"all"}, Locations: []string{"Semua"}},
			want: false,
		},
		{
			name: "unset bounds are not applied",
			pref: &core.Preference{Categories: []string{"Snack"}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Constraint{}
			rctx := &core.RecommendContext{Preference: tt.pref}
			got, err := f.ShouldFilter(context.Background(), rctx, core.NewCandidate(item, 0))
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNode_FiltersAndKeepsOrder(t *testing.T) {
	catalog := core.NewCatalog("v1", []core.Item{
		{Name: "A", Category: "Snack", Price: 8000, Rating: 4.5, Location: "Riau"},
		{Name: "B", Category: "Snack", Price: 20000, Rating: 4.0, Location: "Braga"},
		{Name: "C", Category: "Minuman", Price: 25000, Rating: 4.1, Location: "Braga"},
		{Name: "D", Category: "Snack", Price: 10000, Rating: 4.2, Location: "Riau"},
	})
	pref := &core.Preference{Categories: []string{"Snack"}, MaxPrice: 15000}

	node := &Node{Filters: []Filter{&Constraint{}}}
	out, err := node.Process(context.Background(), &core.RecommendContext{Preference: pref}, core.Candidates(catalog))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	wantNames := []string{"A", "D"}
	if len(out) != len(wantNames) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(wantNames))
	}
	for i, want := range wantNames {
		if out[i].Item.Name != want {
			t.Errorf("out[%d] = %s, want %s (relative order must be preserved)", i, out[i].Item.Name, want)
		}
	}

	// kept candidates must not carry the filtered label
	for _, c := range out {
		if _, ok := c.Labels["filtered"]; ok {
			t.Errorf("%s kept but labeled filtered", c.Item.Name)
		}
	}
}

func TestNode_NoFiltersPassThrough(t *testing.T) {
	catalog := core.NewCatalog("v1", []core.Item{
		{Name: "A", Category: "Snack", Price: 8000, Rating: 4.5, Location: "Riau"},
	})
	node := &Node{}
	in := core.Candidates(catalog)
	out, err := node.Process(context.Background(), &core.RecommendContext{}, in)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != len(in) {
		t.Errorf("len(out) = %d, want %d", len(out), len(in))
	}
}
