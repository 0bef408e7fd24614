package feature

import "github.com/rushteam/rasakit/core"

// Encoder 将条目与用户偏好投影到同一词表定义的特征空间。
// 编码是纯函数：不修改目录，也不持有请求间状态。
type Encoder struct {
	Vocab *Vocabulary
}

// NewEncoder 创建绑定到指定词表的编码器。
func NewEncoder(vocab *Vocabulary) *Encoder {
	return &Encoder{Vocab: vocab}
}

// EncodeItem 将单个条目编码为特征向量。
// 类目/地点各恰好命中一个 one-hot 槽位；价格/评分做 Min-Max 归一化。
func (e *Encoder) EncodeItem(item core.Item) []float64 {
	vec := make([]float64, e.Vocab.Dim())
	if slot, ok := e.Vocab.CategorySlot(item.Category); ok {
		vec[slot] = 1
	}
	if slot, ok := e.Vocab.LocationSlot(item.Location); ok {
		vec[slot] = 1
	}
	vec[e.Vocab.PriceSlot()] = e.Vocab.PriceRange.Normalize(item.Price)
	vec[e.Vocab.RatingSlot()] = e.Vocab.RatingRange.Normalize(item.Rating)
	return vec
}

// EncodePreference 将用户偏好编码为与条目同布局的特征向量。
//
// 编码规则：
//   - 偏好中的每个类目/地点点亮对应槽位；词表外的值静默忽略
//   - 价格槽取反: 1 - norm(maxPrice)，"偏好便宜"编码为更高的特征值，
//     与低价条目的归一化价格方向一致
//   - 评分槽直接取 norm(minRating)，"要求高分"与高分条目方向一致
//   - 未设置的偏好维度保持 0，表示无软偏好
//
// 注意：通配类目/地点（"all"/"Semua"）不点亮任何槽位。
func (e *Encoder) EncodePreference(pref *core.Preference) []float64 {
	vec := make([]float64, e.Vocab.Dim())
	if pref == nil {
		return vec
	}

	if !pref.AnyCategory() {
		for _, c := range pref.Categories {
			if slot, ok := e.Vocab.CategorySlot(c); ok {
				vec[slot] = 1
			}
		}
	}
	if !pref.AnyLocation() {
		for _, l := range pref.Locations {
			if slot, ok := e.Vocab.LocationSlot(l); ok {
				vec[slot] = 1
			}
		}
	}
	if pref.HasMaxPrice() {
		vec[e.Vocab.PriceSlot()] = 1 - e.Vocab.PriceRange.Normalize(pref.MaxPrice)
	}
	if pref.HasMinRating() {
		vec[e.Vocab.RatingSlot()] = e.Vocab.RatingRange.Normalize(pref.MinRating)
	}
	return vec
}
