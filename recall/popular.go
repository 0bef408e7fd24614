package recall

import (
	"context"

	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/feature"
	"github.com/rushteam/rasakit/pipeline"
	"github.com/rushteam/rasakit/pkg/utils"
)

// Popular 是热门候选源，用于"评分最高"之类的快捷榜单。
// - 如果 Store 实现了 KeyValueStore，优先用 ZRange 读取榜单（有序集合，按分数降序）
// - 否则直接对目录按评分排序取 TopK 作为 fallback
// Popular 同时实现了 Source 和 Node 接口，可以直接在 Pipeline 中使用。
type Popular struct {
	Store core.KeyValueStore
	Key   string // 榜单 key，例如 "popular:top_rated"，成员为条目 Name

	// Catalog 用于把榜单成员还原为完整条目，也是 Store 缺失时的 fallback 数据源
	Catalog *core.Catalog

	// TopK 返回条目数，<= 0 时默认 3（对齐快捷榜单的展示位）
	TopK int
}

func (r *Popular) Name() string        { return "recall.popular" }
func (r *Popular) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall
func (r *Popular) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口
func (r *Popular) Recall(
	ctx context.Context,
	_ *core.RecommendContext,
) ([]*core.Candidate, error) {
	if r.Catalog.IsEmpty() {
		return nil, nil
	}

	topK := r.TopK
	if topK <= 0 {
		topK = 3
	}

	// 目录内按名称定位，保留原始序号
	indexByName := make(map[string]int, len(r.Catalog.Items))
	for i, it := range r.Catalog.Items {
		indexByName[it.Name] = i
	}

	var out []*core.Candidate

	// 优先从 Store 的有序集合读取榜单
	if r.Store != nil && r.Key != "" {
		members, err := r.Store.ZRange(ctx, r.Key, 0, int64(topK-1))
		if err == nil && len(members) > 0 {
			for _, name := range members {
				idx, ok := indexByName[name]
				if !ok {
					// 榜单里已经不在目录中的条目直接跳过
					continue
				}
				out = append(out, core.NewCandidate(r.Catalog.Items[idx], idx))
			}
		}
	}

	// Fallback：按评分排序取 TopK
	if len(out) == 0 {
		for _, it := range feature.TopRated(r.Catalog, topK) {
			out = append(out, core.NewCandidate(it, indexByName[it.Name]))
		}
	}

	for _, c := range out {
		c.PutLabel("recall_source", utils.Label{Value: r.Name(), Source: "recall"})
	}
	return out, nil
}
