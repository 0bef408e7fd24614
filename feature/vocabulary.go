package feature

import (
	"sort"

	"github.com/rushteam/rasakit/core"
)

// Range 是数值特征的观测区间，用于 Min-Max 归一化。
type Range struct {
	Min float64
	Max float64
}

// Normalize 将值线性缩放到 [0, 1]。
// 公式: x' = (x - min) / (max - min)
// 退化区间（max == min，例如目录里所有条目同价）除法无定义，
// 此时固定返回中性值 0.0，保证单条目/同质目录仍可编码。
func (r Range) Normalize(x float64) float64 {
	if r.Max > r.Min {
		return (x - r.Min) / (r.Max - r.Min)
	}
	return 0
}

// Degenerate 判断区间是否退化（无分布宽度）。
func (r Range) Degenerate() bool {
	return r.Max <= r.Min
}

// Vocabulary 是从当前目录快照派生的有限特征词表：
// 类目/地点的取值集合，加上价格/评分的观测区间。
//
// 不变式：词表必须基于完整的、未过滤的目录构建一次，
// 条目向量与偏好向量共享同一词表，特征空间布局与后续过滤无关。
//
// 向量布局固定为: [类目 one-hot...][地点 one-hot...][价格][评分]，
// 类目/地点槽位按字典序排列，保证同一目录下布局确定。
type Vocabulary struct {
	Categories  []string
	Locations   []string
	PriceRange  Range
	RatingRange Range

	catSlots map[string]int
	locSlots map[string]int
}

// BuildVocabulary 从完整目录快照构建词表。
// 空目录无法构造合法特征空间，返回 core.ErrCatalogEmpty。
func BuildVocabulary(catalog *core.Catalog) (*Vocabulary, error) {
	if catalog.IsEmpty() {
		return nil, core.ErrCatalogEmpty
	}

	catSet := make(map[string]struct{})
	locSet := make(map[string]struct{})
	v := &Vocabulary{}

	for i, it := range catalog.Items {
		catSet[it.Category] = struct{}{}
		locSet[it.Location] = struct{}{}
		if i == 0 {
			v.PriceRange = Range{Min: it.Price, Max: it.Price}
			v.RatingRange = Range{Min: it.Rating, Max: it.Rating}
			continue
		}
		if it.Price < v.PriceRange.Min {
			v.PriceRange.Min = it.Price
		}
		if it.Price > v.PriceRange.Max {
			v.PriceRange.Max = it.Price
		}
		if it.Rating < v.RatingRange.Min {
			v.RatingRange.Min = it.Rating
		}
		if it.Rating > v.RatingRange.Max {
			v.RatingRange.Max = it.Rating
		}
	}

	v.Categories = sortedKeys(catSet)
	v.Locations = sortedKeys(locSet)

	v.catSlots = make(map[string]int, len(v.Categories))
	for i, c := range v.Categories {
		v.catSlots[c] = i
	}
	v.locSlots = make(map[string]int, len(v.Locations))
	for i, l := range v.Locations {
		v.locSlots[l] = len(v.Categories) + i
	}
	return v, nil
}

// Dim 返回特征向量维度: 类目数 + 地点数 + 价格 + 评分。
func (v *Vocabulary) Dim() int {
	return len(v.Categories) + len(v.Locations) + 2
}

// CategorySlot 返回类目对应的槽位；词表外的类目返回 (0, false)。
func (v *Vocabulary) CategorySlot(category string) (int, bool) {
	slot, ok := v.catSlots[category]
	return slot, ok
}

// LocationSlot 返回地点对应的槽位；词表外的地点返回 (0, false)。
func (v *Vocabulary) LocationSlot(location string) (int, bool) {
	slot, ok := v.locSlots[location]
	return slot, ok
}

// PriceSlot 返回归一化价格的槽位。
func (v *Vocabulary) PriceSlot() int {
	return len(v.Categories) + len(v.Locations)
}

// RatingSlot 返回归一化评分的槽位。
func (v *Vocabulary) RatingSlot() int {
	return len(v.Categories) + len(v.Locations) + 1
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
