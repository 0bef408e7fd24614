package builders

import (
	"fmt"
	"time"

	"github.com/rushteam/rasakit/config"
	"github.com/rushteam/rasakit/core"
	"github.com/rushteam/rasakit/filter"
	"github.com/rushteam/rasakit/pipeline"
	"github.com/rushteam/rasakit/pkg/conv"
	"github.com/rushteam/rasakit/recall"
	"github.com/rushteam/rasakit/rerank"
)

func init() {
	config.Register("recall.catalog", BuildCatalogNode)
	config.Register("recall.popular", BuildPopularNode)
	config.Register("recall.fanout", BuildFanoutNode)
	config.Register("filter", BuildFilterNode)
	config.Register("rank.cosine", BuildCosineNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("rerank.sort", BuildSortNode)
}

// BuildCatalogNode 从配置内联的 items 列表构建 CatalogSource。
func BuildCatalogNode(cfg map[string]interface{}) (pipeline.Node, error) {
	items, err := parseItems(cfg["items"])
	if err != nil {
		return nil, err
	}
	version := conv.ConfigGet(cfg, "version", "")
	return &recall.CatalogSource{Catalog: core.NewCatalog(version, items)}, nil
}

// BuildPopularNode 构建热门榜单源（Store 需程序化注入，配置只提供 fallback 数据）。
func BuildPopularNode(cfg map[string]interface{}) (pipeline.Node, error) {
	items, err := parseItems(cfg["items"])
	if err != nil {
		return nil, err
	}
	version := conv.ConfigGet(cfg, "version", "")
	return &recall.Popular{
		Catalog: core.NewCatalog(version, items),
		Key:     conv.ConfigGet(cfg, "key", ""),
		TopK:    int(conv.ConfigGetInt64(cfg, "top_k", 0)),
	}, nil
}

func BuildFanoutNode(cfg map[string]interface{}) (pipeline.Node, error) {
	sourcesConfig, ok := cfg["sources"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("sources not found or invalid")
	}
	sources := make([]recall.Source, 0, len(sourcesConfig))
	for _, sc := range sourcesConfig {
		sourceMap, ok := sc.(map[string]interface{})
		if !ok {
			continue
		}
		sourceType := conv.ConfigGet(sourceMap, "type", "")
		switch sourceType {
		case "catalog":
			items, err := parseItems(sourceMap["items"])
			if err != nil {
				return nil, err
			}
			version := conv.ConfigGet(sourceMap, "version", "")
			sources = append(sources, &recall.CatalogSource{Catalog: core.NewCatalog(version, items)})
		case "popular":
			items, err := parseItems(sourceMap["items"])
			if err != nil {
				return nil, err
			}
			sources = append(sources, &recall.Popular{
				Catalog: core.NewCatalog("", items),
				TopK:    int(conv.ConfigGetInt64(sourceMap, "top_k", 0)),
			})
		default:
			return nil, fmt.Errorf("unknown source type: %s", sourceType)
		}
	}
	fanout := &recall.Fanout{
		Sources:       sources,
		Dedup:         conv.ConfigGet(cfg, "dedup", true),
		MergeStrategy: conv.ConfigGet(cfg, "merge_strategy", ""),
	}
	if sec := conv.ConfigGetInt64(cfg, "timeout", 0); sec > 0 {
		fanout.Timeout = time.Duration(sec) * time.Second
	}
	if n := conv.ConfigGetInt64(cfg, "max_concurrent", 0); n > 0 {
		fanout.MaxConcurrent = int(n)
	}
	return fanout, nil
}

// BuildFilterNode 构建过滤 Node，filters 列表支持 constraint / rule 两种过滤器。
func BuildFilterNode(cfg map[string]interface{}) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]interface{})
	if !ok {
		// 无 filters 配置时默认只挂硬约束过滤器
		return &filter.Node{Filters: []filter.Filter{&filter.Constraint{}}}, nil
	}
	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]interface{})
		if !ok {
			continue
		}
		switch filterType := conv.ConfigGet(filterMap, "type", ""); filterType {
		case "constraint":
			filters = append(filters, &filter.Constraint{})
		case "rule":
			expr := conv.ConfigGet(filterMap, "expr", "")
			if expr == "" {
				return nil, fmt.Errorf("rule filter requires expr")
			}
			filters = append(filters, &filter.Rule{Expr: expr})
		default:
			return nil, fmt.Errorf("unknown filter type: %s", filterType)
		}
	}
	return &filter.Node{Filters: filters}, nil
}

// BuildCosineNode 暂不支持配置驱动：特征空间必须由当前请求的目录快照派生，
// 无法在静态配置中表达。请程序化构建 rank.CosineNode（参见 Engine.Recommend）。
func BuildCosineNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return nil, fmt.Errorf("rank.cosine requires a per-request feature space; construct it programmatically")
}

func BuildTopNNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.TopN{N: int(conv.ConfigGetInt64(cfg, "n", 0))}, nil
}

func BuildSortNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.Sort{
		By:  conv.ConfigGet(cfg, "by", rerank.ByScore),
		Asc: conv.ConfigGet(cfg, "asc", false),
	}, nil
}

// parseItems 解析配置中内联的目录条目列表。
func parseItems(v interface{}) ([]core.Item, error) {
	raw, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("items not found or invalid")
	}
	items := make([]core.Item, 0, len(raw))
	for _, e := range raw {
		m, ok := e.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("item entry must be a map")
		}
		items = append(items, core.Item{
			Name:        conv.ConfigGet(m, "name", ""),
			Category:    conv.ConfigGet(m, "category", ""),
			Type:        conv.ConfigGet(m, "type", ""),
			Price:       conv.ConfigGetFloat64(m, "price", 0),
			Rating:      conv.ConfigGetFloat64(m, "rating", 0),
			Location:    conv.ConfigGet(m, "location", ""),
			Hours:       conv.ConfigGet(m, "hours", ""),
			Description: conv.ConfigGet(m, "description", ""),
			SuitableFor: conv.ConfigGet(m, "suitable_for", ""),
		})
	}
	return items, nil
}
