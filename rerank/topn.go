package rerank

import (
	"context"
	"sort"

	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/pipeline"
)

// TopN 是 Top-N 选择节点：按分数降序稳定排序后截取前 N 个候选。
// 通常在打分（Rank）与过滤（Filter）节点之后使用。
//
// 稳定排序保证相同分数的候选保持目录原始顺序，
// 相同输入重复调用得到完全一致的结果。
//
// 示例：
//
//	pipeline := &pipeline.Pipeline{
//	    Nodes: []pipeline.Node{
//	        &rank.CosineNode{...},       // 打分
//	        &filter.Node{...},           // 硬约束过滤
//	        &rerank.TopN{N: 10},         // 按分取前 10
//	    },
//	}
type TopN struct {
	// N 要保留的候选数量（Top N）
	// 如果 N <= 0，则只排序不截断
	// 如果 N > len(candidates)，则返回所有候选
	N int
}

func (n *TopN) Name() string {
	return "rerank.topn"
}

func (n *TopN) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopN) Process(
	_ context.Context,
	_ *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i] == nil {
			return false
		}
		if candidates[j] == nil {
			return true
		}
		return candidates[i].Score > candidates[j].Score
	})

	if n.N > 0 && len(candidates) > n.N {
		candidates = candidates[:n.N]
	}
	return candidates, nil
}
