package recall

import (
	"context"

	"github.com/rushteam/rasakit/core"
)

// Source 是候选源接口：为一次请求生成初始候选集。
// 与 pipeline.Node 的区别：Source 不接收上游候选，只负责生成。
type Source interface {
	// Name 返回召回源名称
	Name() string

	// Recall 生成候选集
	Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Candidate, error)
}
