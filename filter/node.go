package filter

import (
	"context"

	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/pipeline"
	"github.com/rushteam/rasakit/pkg/utils"
)

// Node 是过滤 Node，可以组合多个过滤器进行过滤。
// 如果任何一个过滤器返回 true，该候选就会被过滤掉。
// 候选的相对顺序保持不变；过滤器返回的错误会向上传播。
type Node struct {
	Filters []Filter
}

func (n *Node) Name() string {
	return "filter.node"
}

func (n *Node) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *Node) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(n.Filters) == 0 || len(candidates) == 0 {
		return candidates, nil
	}

	out := make([]*core.Candidate, 0, len(candidates))

	for _, c := range candidates {
		if c == nil {
			continue
		}

		shouldFilter := false
		filterReason := ""

		// 依次检查每个过滤器
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, rctx, c)
			if err != nil {
				// 过滤器显式报错时中断整条链路（例如 Rule 严格模式）；
				// 宽松的过滤器应自行吞掉求值错误并返回保留
				return nil, err
			}
			if ok {
				shouldFilter = true
				filterReason = f.Name()
				break
			}
		}

		if shouldFilter {
			// 记录过滤原因（用于调试/观测）
			c.PutLabel("filtered", utils.Label{
				Value:  "true",
				Source: filterReason,
			})
			continue
		}

		out = append(out, c)
	}

	return out, nil
}
