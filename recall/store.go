package recall

import (
	"context"
	"encoding/json"

	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/pipeline"
	"github.com/rushteam/rasakit/pkg/utils"
)

// StoreSource 从 Store 加载目录快照（JSON 编码的 core.Catalog）并展开为候选集。
// 目录摄入由外部协作方完成并写入 Store；这里只消费已解析好的快照。
//
// key 不存在或数据不可解析视为目录不可用：当前请求快速失败，
// 绝不在部分数据上继续排序（重试策略属于摄入方，不在这里做）。
type StoreSource struct {
	Store core.Store
	Key   string
}

func (r *StoreSource) Name() string        { return "recall.store" }
func (r *StoreSource) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall
func (r *StoreSource) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口
func (r *StoreSource) Recall(
	ctx context.Context,
	_ *core.RecommendContext,
) ([]*core.Candidate, error) {
	catalog, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := core.Candidates(catalog)
	for _, c := range out {
		c.PutLabel("recall_source", utils.Label{Value: r.Name(), Source: "recall"})
	}
	return out, nil
}

// Load 加载并解析目录快照。
func (r *StoreSource) Load(ctx context.Context) (*core.Catalog, error) {
	if r.Store == nil || r.Key == "" {
		return nil, core.ErrCatalogUnavailable
	}

	data, err := r.Store.Get(ctx, r.Key)
	if err != nil {
		return nil, core.ErrCatalogUnavailable
	}

	var catalog core.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, core.ErrCatalogUnavailable
	}
	if catalog.IsEmpty() {
		return nil, core.ErrCatalogEmpty
	}
	return &catalog, nil
}
