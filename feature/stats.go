package feature

import (
	"math"
	"sort"

	"github.com/rushteam/rasakit/core"
)

// Stats 是目录的概览统计，供展示层的统计面板/快捷榜单使用。
type Stats struct {
	Count          int
	MeanPrice      float64
	MeanRating     float64
	PriceRange     Range
	RatingRange    Range
	BudgetFriendly int // 价格不超过预算阈值的条目数
}

// ComputeStats 计算目录统计。budgetThreshold <= 0 时不统计 BudgetFriendly。
func ComputeStats(catalog *core.Catalog, budgetThreshold float64) *Stats {
	stats := &Stats{Count: catalog.Len()}
	if catalog.IsEmpty() {
		return stats
	}

	var priceSum, ratingSum float64
	stats.PriceRange = Range{Min: math.Inf(1), Max: math.Inf(-1)}
	stats.RatingRange = Range{Min: math.Inf(1), Max: math.Inf(-1)}

	for _, it := range catalog.Items {
		priceSum += it.Price
		ratingSum += it.Rating
		if it.Price < stats.PriceRange.Min {
			stats.PriceRange.Min = it.Price
		}
		if it.Price > stats.PriceRange.Max {
			stats.PriceRange.Max = it.Price
		}
		if it.Rating < stats.RatingRange.Min {
			stats.RatingRange.Min = it.Rating
		}
		if it.Rating > stats.RatingRange.Max {
			stats.RatingRange.Max = it.Rating
		}
		if budgetThreshold > 0 && it.Price <= budgetThreshold {
			stats.BudgetFriendly++
		}
	}

	stats.MeanPrice = priceSum / float64(stats.Count)
	stats.MeanRating = ratingSum / float64(stats.Count)
	return stats
}

// TopRated 返回评分最高的前 n 个条目，相同评分保持目录原始顺序。
func TopRated(catalog *core.Catalog, n int) []core.Item {
	return topBy(catalog, n, func(a, b core.Item) bool {
		return a.Rating > b.Rating
	})
}

// Cheapest 返回价格最低的前 n 个条目，相同价格保持目录原始顺序。
func Cheapest(catalog *core.Catalog, n int) []core.Item {
	return topBy(catalog, n, func(a, b core.Item) bool {
		return a.Price < b.Price
	})
}

func topBy(catalog *core.Catalog, n int, less func(a, b core.Item) bool) []core.Item {
	if catalog.IsEmpty() || n <= 0 {
		return nil
	}
	items := make([]core.Item, len(catalog.Items))
	copy(items, catalog.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
	if len(items) > n {
		items = items[:n]
	}
	return items
}
