package core

// Item 是目录中的一条餐饮商户/菜品记录。
// Hours、Description、SuitableFor 仅用于展示，不参与排序。
type Item struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Location    string  `json:"location"`
	Hours       string  `json:"hours,omitempty"`
	Description string  `json:"description,omitempty"`
	SuitableFor string  `json:"suitable_for,omitempty"`
}

// Catalog 是一次推荐请求中不可变的条目集合快照。
// Version 标识快照身份，用于特征空间缓存的失效判断：
// 目录内容变化时 Version 必须变化，过期缓存绝不能被继续使用。
type Catalog struct {
	Version string `json:"version,omitempty"`
	Items   []Item `json:"items"`
}

// NewCatalog 创建一个目录快照。
func NewCatalog(version string, items []Item) *Catalog {
	return &Catalog{Version: version, Items: items}
}

// Len 返回目录条目数。
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Items)
}

// IsEmpty 判断目录是否为空（nil 或无条目）。
func (c *Catalog) IsEmpty() bool {
	return c.Len() == 0
}
