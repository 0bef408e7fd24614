package filter

import (
	"context"

	"github.com/rushteam/rasakit/core"
)

// Constraint 是硬约束过滤器：按用户偏好剔除不可妥协的候选。
//
// 约束条件（逻辑与）：
//   - 类目属于偏好类目集合（不限类目时跳过）
//   - 地点属于偏好地点集合（不限地点时跳过）
//   - 价格 <= 预算上限（未设上限时跳过）
//   - 评分 >= 评分下限（未设下限时跳过）
//
// 偏好中缺失的条件等于"不应用该条件"，而不是"全部不匹配"。
// 过滤只看条目字段，不读取也不修改相似度分数。
type Constraint struct {
	// Preference 为空时使用 rctx 中的偏好
	Preference *core.Preference
}

func (f *Constraint) Name() string {
	return "filter.constraint"
}

func (f *Constraint) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	c *core.Candidate,
) (bool, error) {
	if c == nil {
		return true, nil
	}

	pref := f.Preference
	if pref == nil {
		pref = rctx.GetPreference()
	}

	if !pref.MatchCategory(c.Item.Category) {
		return true, nil
	}
	if !pref.MatchLocation(c.Item.Location) {
		return true, nil
	}
	if pref.HasMaxPrice() && c.Item.Price > pref.MaxPrice {
		return true, nil
	}
	if pref.HasMinRating() && c.Item.Rating < pref.MinRating {
		return true, nil
	}
	return false, nil
}
