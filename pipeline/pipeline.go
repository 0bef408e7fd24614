package pipeline

import (
	"context"

	"github.com/rushteam/rasakit/core"
)

// Pipeline 是 rasakit 的核心抽象：把推荐逻辑拆成可组合的 Node 链。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	cur := candidates
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
