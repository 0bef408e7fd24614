package filter

import (
	"context"

	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/pkg/dsl"
)

// Rule 是规则过滤器：用 CEL 表达式声明候选的保留条件。
// 适合运营侧临时规则（例如只保留某商圈、限价等），无需改代码。
//
// Expr 对"保留"的候选求值为 true；求值为 false 的候选被过滤。
// 表达式语法见 pkg/dsl。
//
// 示例：
//   - `item.price <= 15000.0`
//   - `item.category == "Snack" && item.rating >= 4.0`
//   - `item.location in ["Riau", "Braga"]`
type Rule struct {
	Expr string

	// Strict 为 true 时表达式求值出错会返回错误并中断整条过滤链；
	// 默认宽松模式：出错的候选按保留处理。
	Strict bool
}

func (f *Rule) Name() string {
	return "filter.rule"
}

func (f *Rule) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	c *core.Candidate,
) (bool, error) {
	if f.Expr == "" || c == nil {
		return false, nil
	}

	keep, err := dsl.NewEval(c, rctx).Evaluate(f.Expr)
	if err != nil {
		if f.Strict {
			return false, err
		}
		return false, nil
	}
	return !keep, nil
}
