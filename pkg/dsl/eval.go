package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/rushteam/rasakit/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量和函数
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		// 定义变量类型
		cel.Variable("item", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("pref", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是规则 DSL 解释器，使用 CEL (Common Expression Language) 实现。
// CEL 是 Google 开发的表达式语言，具有类型安全、高性能、线程安全等特性。
//
// 表达式语法（CEL 标准语法）：
//   - 条目字段：item.price <= 15000.0 / item.rating >= 4.0
//   - 类目/地点：item.category == "Snack" / item.location in ["Riau", "Braga"]
//   - 偏好字段：pref.max_price > 0.0 && item.price <= pref.max_price
//   - 标签：label.rank_metric == "cosine"
//   - 逻辑组合：item.category == "Dessert" && item.price <= 20000.0
type Eval struct {
	candidate *core.Candidate
	rctx      *core.RecommendContext
	env       *cel.Env
}

// NewEval 创建一个新的 DSL 解释器。
func NewEval(candidate *core.Candidate, rctx *core.RecommendContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		candidate: candidate,
		rctx:      rctx,
		env:       env,
	}
}

// Evaluate 解析并执行 DSL 表达式，返回布尔结果。
// 空表达式视为恒真。
//
// 注意：CEL 访问不存在的 key 会报错，检查存在性请使用 label.key != null。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}

	// 编译表达式
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	// 创建程序
	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	// 执行表达式
	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		return false, fmt.Errorf("eval error: %v", err)
	}

	// 转换为布尔值
	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]interface{} {
	it := e.candidate.Item
	item := map[string]interface{}{
		"name":     it.Name,
		"category": it.Category,
		"type":     it.Type,
		"price":    it.Price,
		"rating":   it.Rating,
		"location": it.Location,
		"score":    e.candidate.Score,
	}

	// label.rank_metric 直接取 Label.Value
	labelAccessor := make(map[string]interface{}, len(e.candidate.Labels))
	for k, v := range e.candidate.Labels {
		labelAccessor[k] = v.Value
	}

	p := e.rctx.GetPreference()
	pref := map[string]interface{}{
		"categories": p.Categories,
		"locations":  p.Locations,
		"max_price":  p.MaxPrice,
		"min_rating": p.MinRating,
	}

	return map[string]interface{}{
		"item":  item,
		"label": labelAccessor,
		"pref":  pref,
	}
}
