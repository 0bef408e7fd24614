package core

import "strings"

// Any 是类目/地点偏好的通配值，等价于不设该维约束。
// 兼容数据源的印尼语写法 "Semua"。
const Any = "all"

// Preference 是一次推荐查询的用户偏好。
//
// 语义约定：
//   - Categories/Locations 为空或包含通配值时，表示不限类目/地点
//   - MaxPrice <= 0 表示未设预算上限
//   - MinRating <= 0 表示未设评分下限
//
// MaxPrice/MinRating 同时是软信号（影响相似度）与硬约束（过滤边界）。
type Preference struct {
	Categories []string `json:"categories,omitempty"`
	Locations  []string `json:"locations,omitempty"`
	MaxPrice   float64  `json:"max_price,omitempty"`
	MinRating  float64  `json:"min_rating,omitempty"`
}

// isAny 判断单个偏好值是否为通配值。
func isAny(v string) bool {
	return strings.EqualFold(v, Any) || strings.EqualFold(v, "semua")
}

// anyOf 判断一组偏好值是否等价于"不限"。
func anyOf(values []string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if isAny(v) {
			return true
		}
	}
	return false
}

// AnyCategory 判断偏好是否不限类目。
func (p *Preference) AnyCategory() bool {
	return p == nil || anyOf(p.Categories)
}

// AnyLocation 判断偏好是否不限地点。
func (p *Preference) AnyLocation() bool {
	return p == nil || anyOf(p.Locations)
}

// HasMaxPrice 判断是否设置了预算上限。
func (p *Preference) HasMaxPrice() bool {
	return p != nil && p.MaxPrice > 0
}

// HasMinRating 判断是否设置了评分下限。
func (p *Preference) HasMinRating() bool {
	return p != nil && p.MinRating > 0
}

// MatchCategory 判断条目类目是否满足偏好。
func (p *Preference) MatchCategory(category string) bool {
	if p.AnyCategory() {
		return true
	}
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MatchLocation 判断条目地点是否满足偏好。
func (p *Preference) MatchLocation(location string) bool {
	if p.AnyLocation() {
		return true
	}
	for _, l := range p.Locations {
		if l == location {
			return true
		}
	}
	return false
}
