package rank

import (
	"context"
	"math"

	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/feature"
	"github.com/rushteam/rasakit/pipeline"
	"github.com/rushteam/rasakit/pkg/utils"
)

// CosineNode 是基于内容的相似度排序 Node：
// 把每个候选的特征向量与偏好向量做余弦相似度，并缩放到 [0, 1] 写入 Score。
//
// 约定：
//   - 打分必须覆盖过滤前的完整候选集，分数只取决于特征空间，
//     与后续过滤多严格无关（跨请求可比）
//   - 不改变候选顺序；排序/截断交给 rerank 阶段
//   - 写入 labels：rank_metric
type CosineNode struct {
	// Space 是本次请求的特征空间（全目录编码结果）
	Space *feature.Space

	// PreferenceVector 是已编码的偏好向量；为空时从 rctx 的偏好现场编码
	PreferenceVector []float64
}

func (n *CosineNode) Name() string        { return "rank.cosine" }
func (n *CosineNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *CosineNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.Space == nil || len(candidates) == 0 {
		return candidates, nil
	}

	prefVec := n.PreferenceVector
	if prefVec == nil {
		prefVec = n.Space.PreferenceVector(rctx.GetPreference())
	}

	for _, c := range candidates {
		if c == nil {
			continue
		}
		var itemVec []float64
		if c.Index >= 0 && c.Index < len(n.Space.Vectors) {
			itemVec = n.Space.Vectors[c.Index]
		} else {
			// 候选不来自编码过的目录快照时现场编码
			itemVec = feature.NewEncoder(n.Space.Vocab).EncodeItem(c.Item)
		}
		c.Score = Score(itemVec, prefVec)
		c.PutLabel("rank_metric", utils.Label{Value: "cosine", Source: "rank"})
	}
	return candidates, nil
}

// Cosine 计算两个向量的余弦相似度（点积除以模长之积）。
// 任一向量模长为零时定义为 0，避免除零。
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Score 把原始余弦相似度从 [-1, 1] 线性映射到 [0, 1]，便于按百分比展示。
func Score(a, b []float64) float64 {
	return (Cosine(a, b) + 1) / 2
}
