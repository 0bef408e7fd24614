// Package rasakit 是一个餐饮目录的偏好推荐引擎（Taste Recommender Kit）。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Recall → Rank → Filter → ReRank）
// - 软硬分离: 相似度排序（软偏好）与硬约束过滤相互独立，过滤不改变分数
// - 词表驱动: 特征空间每次请求从完整目录派生一次，条目与偏好共享同一布局
// - Labels-first: labels 全链路透传，支持 explain / 观测 / 策略驱动
package rasakit

import (
	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/pipeline"
)

// 轻量 facade：便于用户直接 import "rasakit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

type Item = core.Item
type Catalog = core.Catalog
type Preference = core.Preference
type Candidate = core.Candidate

const (
	KindRecall      = pipeline.KindRecall
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
