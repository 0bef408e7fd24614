package core

import "github.com/rushteam/rasakit/pkg/utils"

// Candidate 是推荐链路中的统一承载结构：条目、分数、原始序号、标签。
// 每次请求都持有自己的 Candidate 副本，打分不会污染源目录快照。
// Index 记录条目在目录中的原始位置，用于相同分数时的稳定排序。
type Candidate struct {
	Item   Item
	Score  float64
	Index  int
	Labels map[string]utils.Label
}

// NewCandidate 创建一个候选，保留目录中的原始序号。
func NewCandidate(item Item, index int) *Candidate {
	return &Candidate{
		Item:   item,
		Score:  0,
		Index:  index,
		Labels: make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}

// Candidates 将目录快照展开为候选列表，保持目录原始顺序。
func Candidates(catalog *Catalog) []*Candidate {
	if catalog == nil {
		return nil
	}
	out := make([]*Candidate, 0, len(catalog.Items))
	for i, it := range catalog.Items {
		out = append(out, NewCandidate(it, i))
	}
	return out
}
