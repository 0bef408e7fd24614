package feature

import "github.com/rushteam/rasakit/core"

// Space 是一次请求的完整特征空间：词表加上全目录的条目向量矩阵。
// Vectors[i] 与 catalog.Items[i] 一一对应。
type Space struct {
	Vocab   *Vocabulary
	Vectors [][]float64
}

// BuildSpace 对完整目录做一次性编码。
// 必须在任何过滤之前调用，保证所有条目的分数在同一空间内可比。
func BuildSpace(catalog *core.Catalog) (*Space, error) {
	vocab, err := BuildVocabulary(catalog)
	if err != nil {
		return nil, err
	}
	enc := NewEncoder(vocab)
	vectors := make([][]float64, 0, len(catalog.Items))
	for _, it := range catalog.Items {
		vectors = append(vectors, enc.EncodeItem(it))
	}
	return &Space{Vocab: vocab, Vectors: vectors}, nil
}

// PreferenceVector 在本空间内编码用户偏好。
func (s *Space) PreferenceVector(pref *core.Preference) []float64 {
	return NewEncoder(s.Vocab).EncodePreference(pref)
}
