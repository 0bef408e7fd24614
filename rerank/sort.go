package rerank

import (
	"context"
	"sort"

	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/pipeline"
)

// 排序键取值。
const (
	ByScore  = "score"
	ByRating = "rating"
	ByPrice  = "price"
)

// Sort 是通用排序节点：按指定键稳定排序候选。
// 浏览（browse）场景用它做"评分降序"列表，不依赖相似度分数。
type Sort struct {
	// By 排序键：score / rating / price，默认 score
	By string

	// Asc 为 true 时升序（例如价格从低到高），默认降序
	Asc bool
}

func (n *Sort) Name() string {
	return "rerank.sort"
}

func (n *Sort) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *Sort) Process(
	_ context.Context,
	_ *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	key := n.keyFunc()
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i] == nil {
			return false
		}
		if candidates[j] == nil {
			return true
		}
		a, b := key(candidates[i]), key(candidates[j])
		if n.Asc {
			return a < b
		}
		return a > b
	})
	return candidates, nil
}

func (n *Sort) keyFunc() func(*core.Candidate) float64 {
	switch n.By {
	case ByRating:
		return func(c *core.Candidate) float64 { return c.Item.Rating }
	case ByPrice:
		return func(c *core.Candidate) float64 { return c.Item.Price }
	default:
		return func(c *core.Candidate) float64 { return c.Score }
	}
}
