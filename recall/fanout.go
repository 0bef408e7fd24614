package recall

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/pipeline"
	"github.com/rushteam/rasakit/pkg/utils"
)

// Fanout 是一个 Recall Node：并发执行多个候选源，并合并结果。
// 支持超时、限流、优先级合并策略。
//
// 多目录源（例如内存快照 + Store 快照）合并时用它；
// 单目录默认链路直接用 CatalogSource 即可。
type Fanout struct {
	Sources       []Source
	Dedup         bool
	Timeout       time.Duration // 每个候选源的超时时间
	MaxConcurrent int           // 最大并发数（0 表示无限制）
	MergeStrategy string        // 合并策略：first / union / priority（优先级按 Sources 顺序）
}

func (n *Fanout) Name() string        { return "recall.fanout" }
func (n *Fanout) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *Fanout) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(n.Sources) == 0 {
		return nil, nil
	}

	var (
		mu      sync.Mutex
		results = make([][]*core.Candidate, len(n.Sources))
		eg, _   = errgroup.WithContext(ctx)
	)

	// 限流：使用 semaphore 控制并发数
	var sem chan struct{}
	if n.MaxConcurrent > 0 {
		sem = make(chan struct{}, n.MaxConcurrent)
	}

	for i, src := range n.Sources {
		s := src
		slot := i

		eg.Go(func() error {
			// 限流
			if n.MaxConcurrent > 0 {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			// 超时控制
			recallCtx := ctx
			if n.Timeout > 0 {
				var cancel context.CancelFunc
				recallCtx, cancel = context.WithTimeout(ctx, n.Timeout)
				defer cancel()
			}

			candidates, err := s.Recall(recallCtx, rctx)
			if err != nil {
				// 超时或错误时返回空结果，不中断其他候选源
				return nil
			}

			// 记录召回来源 label，方便 explain / 观测
			for _, c := range candidates {
				c.PutLabel("recall_source", utils.Label{Value: s.Name(), Source: "recall"})
			}

			mu.Lock()
			results[slot] = candidates
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 按 Sources 顺序拼接，保证合并结果与并发调度顺序无关（确定性）
	all := make([]*core.Candidate, 0)
	for _, r := range results {
		all = append(all, r...)
	}

	// 合并策略
	switch n.MergeStrategy {
	case "union":
		return all, nil
	case "priority":
		fallthrough
	default: // "first" 与 "priority" 等价：Sources 顺序即优先级，保留先出现的
		return n.mergeFirst(all), nil
	}
}

// mergeFirst 按条目 Name 去重，保留第一个出现的。
func (n *Fanout) mergeFirst(all []*core.Candidate) []*core.Candidate {
	if !n.Dedup {
		return all
	}
	seen := make(map[string]*core.Candidate, len(all))
	out := make([]*core.Candidate, 0, len(all))
	for _, c := range all {
		if c == nil {
			continue
		}
		if old, ok := seen[c.Item.Name]; ok {
			for k, v := range c.Labels {
				old.PutLabel(k, v)
			}
			continue
		}
		seen[c.Item.Name] = c
		out = append(out, c)
	}
	return out
}
