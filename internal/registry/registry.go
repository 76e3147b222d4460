package registry

import (
	"github.com/crebi6/passport2/internal/model"
)

// DefaultColor 固定四类之外的类别统一使用的颜色
const DefaultColor = "#808080"

// 固定类别的展示颜色
var fixedColors = map[model.RequirementCategory]string{
	model.RequirementVisaFree:       "#2ca25f", // 绿 - 通行最容易
	model.RequirementVisaOnArrival:  "#99d8c9", // 浅绿
	model.RequirementElectronicVisa: "#f1b6da", // 粉
	model.RequirementVisaRequired:   "#d73027", // 红 - 限制最严
}

// Registry 类别颜色注册表
// 启动时根据数据集中实际出现的类别构建一次，之后只读
type Registry struct {
	colors map[model.RequirementCategory]string
}

// New 构建注册表
// 固定类别使用指定颜色；observed 中其余类别统一分配默认灰
func New(observed []model.RequirementCategory) *Registry {
	colors := make(map[model.RequirementCategory]string, len(fixedColors)+len(observed))
	for cat, color := range fixedColors {
		colors[cat] = color
	}
	for _, cat := range observed {
		if _, ok := colors[cat]; !ok {
			colors[cat] = DefaultColor
		}
	}
	return &Registry{colors: colors}
}

// Color 查询类别颜色
// 未注册的类别也返回默认灰，保证任何聚合结果里的类别都有颜色可用
func (r *Registry) Color(cat model.RequirementCategory) string {
	if color, ok := r.colors[cat]; ok {
		return color
	}
	return DefaultColor
}

// Colors 全量映射的副本
func (r *Registry) Colors() map[model.RequirementCategory]string {
	out := make(map[model.RequirementCategory]string, len(r.colors))
	for cat, color := range r.colors {
		out[cat] = color
	}
	return out
}
