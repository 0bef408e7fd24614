package recall

import (
	"context"

	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/pipeline"
	"github.com/rushteam/rasakit/pkg/utils"
)

// CatalogSource 把内存目录快照展开为候选集，保持目录原始顺序。
// 推荐核心是目录的纯函数，所以默认链路用它作为唯一候选源。
// CatalogSource 同时实现了 Source 和 Node 接口，可以直接在 Pipeline 中使用。
type CatalogSource struct {
	Catalog *core.Catalog
}

func (r *CatalogSource) Name() string        { return "recall.catalog" }
func (r *CatalogSource) Kind() pipeline.Kind { return pipeline.KindRecall }

// Process 实现 Node 接口，直接调用 Recall
func (r *CatalogSource) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口
func (r *CatalogSource) Recall(
	_ context.Context,
	_ *core.RecommendContext,
) ([]*core.Candidate, error) {
	if r.Catalog.IsEmpty() {
		return nil, core.ErrCatalogUnavailable
	}
	out := core.Candidates(r.Catalog)
	for _, c := range out {
		c.PutLabel("recall_source", utils.Label{Value: r.Name(), Source: "recall"})
	}
	return out, nil
}
