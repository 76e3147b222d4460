package aggregator

import (
	"math"
	"sort"
	"strings"

	"github.com/crebi6/passport2/internal/dataset"
	"github.com/crebi6/passport2/internal/model"
)

// 护照实力评分权重
// 来自原始口径，按该口径做数值回归验证，不做"改进"
const (
	weightVisaOnArrival = 0.7
	weightElectronic    = 0.5
)

// MapRow 地图渲染行：一个目的地一行
type MapRow struct {
	Destination string                    `json:"destination"`
	Requirement model.RequirementCategory `json:"requirement"`
}

// CategoryCount 某一类别的目的地数量
type CategoryCount struct {
	Requirement model.RequirementCategory `json:"requirement"`
	Count       int                       `json:"count"`
}

// Stats 护照实力统计
// 百分比已按展示口径保留一位小数；total 为 0 时全部为 0
type Stats struct {
	Total              int     `json:"total"`
	VisaFreeCount      int     `json:"visaFreeCount"`
	VisaFreePct        float64 `json:"visaFreePct"`
	VisaOnArrivalCount int     `json:"visaOnArrivalCount"`
	VisaOnArrivalPct   float64 `json:"visaOnArrivalPct"`
	EVisaCount         int     `json:"eVisaCount"`
	EVisaPct           float64 `json:"eVisaPct"`
	VisaRequiredCount  int     `json:"visaRequiredCount"`
	VisaRequiredPct    float64 `json:"visaRequiredPct"`
	PowerScore         float64 `json:"powerScore"`
}

// Result 一次选择对应的全部派生视图
type Result struct {
	Origin       string                                 `json:"origin"`
	MapRows      []MapRow                               `json:"mapRows"`
	Distribution []CategoryCount                        `json:"distribution"`
	Stats        Stats                                  `json:"stats"`
	Groups       map[model.RequirementCategory][]string `json:"groups"`
}

// Compute 计算选定签发国的聚合结果
// 纯函数：同一 table 与 origin 的重复调用产出结构相同的结果，
// 不持有状态，可被任意请求并发调用
func Compute(table *dataset.Table, origin string) Result {
	filtered := table.ByOrigin(origin)

	res := Result{
		Origin:       origin,
		MapRows:      make([]MapRow, 0, len(filtered)),
		Distribution: make([]CategoryCount, 0, 4),
		Groups:       make(map[model.RequirementCategory][]string),
	}

	counts := make(map[model.RequirementCategory]int)
	for _, rec := range filtered {
		res.MapRows = append(res.MapRows, MapRow{
			Destination: rec.Destination,
			Requirement: rec.Requirement,
		})
		counts[rec.Requirement]++
		res.Groups[rec.Requirement] = append(res.Groups[rec.Requirement], rec.Destination)
	}

	for cat, n := range counts {
		res.Distribution = append(res.Distribution, CategoryCount{Requirement: cat, Count: n})
	}
	// 数量降序、同数量按类别名，保证输出顺序稳定
	sort.Slice(res.Distribution, func(i, j int) bool {
		if res.Distribution[i].Count != res.Distribution[j].Count {
			return res.Distribution[i].Count > res.Distribution[j].Count
		}
		return res.Distribution[i].Requirement < res.Distribution[j].Requirement
	})

	for cat := range res.Groups {
		sort.Strings(res.Groups[cat])
	}

	res.Stats = computeStats(filtered)
	return res
}

// computeStats 计算统计面板数据
func computeStats(filtered []model.Record) Stats {
	s := Stats{Total: len(filtered)}

	for _, rec := range filtered {
		switch rec.Requirement {
		case model.RequirementVisaFree:
			s.VisaFreeCount++
		case model.RequirementVisaOnArrival:
			s.VisaOnArrivalCount++
		case model.RequirementVisaRequired:
			s.VisaRequiredCount++
		}
		// 电子签按子串匹配统计，与 electronic_visa 的精确计数相互独立
		if strings.Contains(strings.ToLower(string(rec.Requirement)), "electronic") {
			s.EVisaCount++
		}
	}

	s.PowerScore = float64(s.VisaFreeCount) +
		weightVisaOnArrival*float64(s.VisaOnArrivalCount) +
		weightElectronic*float64(s.EVisaCount)

	s.VisaFreePct = percentage(s.VisaFreeCount, s.Total)
	s.VisaOnArrivalPct = percentage(s.VisaOnArrivalCount, s.Total)
	s.EVisaPct = percentage(s.EVisaCount, s.Total)
	s.VisaRequiredPct = percentage(s.VisaRequiredCount, s.Total)

	return s
}

// percentage 百分比，保留一位小数
// total 为 0 时返回 0，未知签发国不能因除零出错
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
