package pipeline

import (
	"context"

	"github.com/rushteam/rasakit/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindRecall      Kind = "recall"      // 召回阶段：生成候选集
	KindFilter      Kind = "filter"      // 过滤阶段：剔除不满足硬约束的候选
	KindRank        Kind = "rank"        // 排序阶段：对候选打分
	KindReRank      Kind = "rerank"      // 重排阶段：在打分结果上排序/截断
	KindPostProcess Kind = "postprocess" // 后处理阶段：补充信息或最终结果修饰
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用“输入 candidates -> 输出 candidates”的形态，
// 方便 Recall 生成、Filter 剔除、Rank 打分、ReRank 重排等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		candidates []*core.Candidate,
	) ([]*core.Candidate, error)
}
