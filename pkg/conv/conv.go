// Package conv 提供类型转换、配置 map 读取等工具，用于简化各模块中的重复逻辑。
package conv

// ToFloat64 将 any 转为 float64。
// 支持 float64、float32、int、int64、int32；bool 视为 1.0/0.0。
func ToFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case bool:
		if val {
			return 1.0, true
		}
		return 0.0, true
	default:
		return 0, false
	}
}

// ToInt 将 any 转为 int。
// 支持 int、int64、int32、float64、float32。
func ToInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case int32:
		return int(val), true
	case float64:
		return int(val), true
	case float32:
		return int(val), true
	default:
		return 0, false
	}
}

// ToString 将 any 转为 string。
// 仅支持 string 类型，否则返回 ("", false)。
func ToString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return "", false
}

// ConfigGet 从配置 map 中读取指定类型的值，不存在或类型不匹配时返回默认值。
func ConfigGet[T any](cfg map[string]interface{}, key string, def T) T {
	if cfg == nil {
		return def
	}
	v, ok := cfg[key]
	if !ok {
		return def
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return def
}

// ConfigGetFloat64 从配置 map 中读取数值，兼容 YAML/JSON 解析出的 int/float。
func ConfigGetFloat64(cfg map[string]interface{}, key string, def float64) float64 {
	if cfg == nil {
		return def
	}
	if f, ok := ToFloat64(cfg[key]); ok {
		return f
	}
	return def
}

// ConfigGetInt64 从配置 map 中读取整数，兼容 YAML/JSON 解析出的 int/float。
func ConfigGetInt64(cfg map[string]interface{}, key string, def int64) int64 {
	if cfg == nil {
		return def
	}
	if n, ok := ToInt(cfg[key]); ok {
		return int64(n)
	}
	return def
}

// SliceAnyToString 将 []interface{} 转为 []string，忽略非 string 元素。
func SliceAnyToString(v any) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// MapToFloat64 将 map[string]interface{} 转为 map[string]float64，忽略不可转换的值。
func MapToFloat64(m map[string]interface{}) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		if f, ok := ToFloat64(v); ok {
			out[k] = f
		}
	}
	return out
}
