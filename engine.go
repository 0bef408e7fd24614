package rasakit

import (
	"context"

	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/feature"
	"github.com/rushteam/rasakit/filter"
	"github.com/rushteam/rasakit/pipeline"
	"github.com/rushteam/rasakit/rank"
	"github.com/rushteam/rasakit/rerank"
)

// Engine 是推荐引擎入口，封装默认的推荐/浏览两条 Pipeline。
// 引擎本身无共享可变状态（特征空间缓存除外），每次调用都是
// (目录快照, 偏好, n) 的纯函数，可并发使用。
type Engine struct {
	cache *feature.SpaceCache
}

// Option 配置 Engine。
type Option func(*Engine)

// WithSpaceCache 启用特征空间缓存（按目录 Version 失效）。
// 目录带稳定 Version 且重复查询同一快照时建议开启。
func WithSpaceCache(maxSize int) Option {
	return func(e *Engine) {
		e.cache = feature.NewSpaceCache(maxSize)
	}
}

// NewEngine 创建推荐引擎。
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend 返回与用户偏好最相似、且满足全部硬约束的前 n 个候选，
// 按相似度降序排列，每个候选带 [0, 1] 的 Score。
//
// 算法（顺序不可调换）：
//  1. 对完整目录构建词表并编码一次（特征空间与过滤无关）
//  2. 编码偏好向量
//  3. 对全目录候选打余弦相似度分
//  4. 硬约束过滤
//  5. 按分数稳定降序排序，相同分数保持目录原始顺序，截取前 n
//
// 结果长度恒等于 min(n, 合格候选数)：无候选通过过滤或 n <= 0 时返回
// 空列表，不是错误；n 超过合格候选数时返回全部。
func (e *Engine) Recommend(
	ctx context.Context,
	catalog *core.Catalog,
	pref *core.Preference,
	n int,
) ([]*core.Candidate, error) {
	space, err := e.resolveSpace(catalog)
	if err != nil {
		return nil, err
	}

	// n <= 0 意味着不要任何结果：返回空列表（长度恒等于 min(n, 合格候选数)）
	if n <= 0 {
		return []*core.Candidate{}, nil
	}

	rctx := &core.RecommendContext{Preference: pref, Scene: "recommend"}
	p := &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&rank.CosineNode{
				Space:            space,
				PreferenceVector: space.PreferenceVector(pref),
			},
			&filter.Node{Filters: []filter.Filter{&filter.Constraint{}}},
			&rerank.TopN{N: n},
		},
	}

	out, err := p.Run(ctx, rctx, core.Candidates(catalog))
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []*core.Candidate{}
	}
	return out, nil
}

// FilterAndSort 是浏览列表：硬约束过滤后按评分降序返回条目，
// 不计算相似度。相同评分的条目保持目录原始顺序。
func (e *Engine) FilterAndSort(
	ctx context.Context,
	catalog *core.Catalog,
	pref *core.Preference,
) ([]core.Item, error) {
	if catalog.IsEmpty() {
		return []core.Item{}, nil
	}

	rctx := &core.RecommendContext{Preference: pref, Scene: "browse"}
	p := &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&filter.Node{Filters: []filter.Filter{&filter.Constraint{}}},
			&rerank.Sort{By: rerank.ByRating},
		},
	}

	out, err := p.Run(ctx, rctx, core.Candidates(catalog))
	if err != nil {
		return nil, err
	}

	items := make([]core.Item, 0, len(out))
	for _, c := range out {
		items = append(items, c.Item)
	}
	return items, nil
}

// Stats 返回目录概览统计（均价、平均评分、预算内条目数等）。
func (e *Engine) Stats(catalog *core.Catalog, budgetThreshold float64) *feature.Stats {
	return feature.ComputeStats(catalog, budgetThreshold)
}

// resolveSpace 获取目录对应的特征空间，优先走缓存。
func (e *Engine) resolveSpace(catalog *core.Catalog) (*feature.Space, error) {
	if e.cache != nil {
		return e.cache.Resolve(catalog)
	}
	return feature.BuildSpace(catalog)
}

// Recommend 是包级便捷入口，等价于 NewEngine().Recommend。
func Recommend(
	ctx context.Context,
	catalog *core.Catalog,
	pref *core.Preference,
	n int,
) ([]*core.Candidate, error) {
	return NewEngine().Recommend(ctx, catalog, pref, n)
}

// FilterAndSort 是包级便捷入口，等价于 NewEngine().FilterAndSort。
func FilterAndSort(
	ctx context.Context,
	catalog *core.Catalog,
	pref *core.Preference,
) ([]core.Item, error) {
	return NewEngine().FilterAndSort(ctx, catalog, pref)
}
