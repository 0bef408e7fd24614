package core

import "github.com/rushteam/rasakit/pkg/utils"

// RecommendContext 承载一次请求的偏好/场景信息，贯穿整个 Pipeline 透传。
type RecommendContext struct {
	// Preference 是本次查询的用户偏好
	Preference *Preference

	// Scene 标识请求场景，例如 "recommend" / "browse"
	Scene string

	// Labels 是请求级标签，可驱动整个 Pipeline 行为
	Labels map[string]utils.Label

	// Params 请求级上下文参数（会话、实验分组等），核心排序不读取
	Params map[string]any
}

// GetPreference 获取偏好；未设置时返回空偏好（全部约束不生效）。
func (rctx *RecommendContext) GetPreference() *Preference {
	if rctx == nil || rctx.Preference == nil {
		return &Preference{}
	}
	return rctx.Preference
}

// PutLabel 写入请求级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}
