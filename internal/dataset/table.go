package dataset

import (
	"sort"
	"time"

	"github.com/crebi6/passport2/internal/model"
)

// Table 内存数据表
// 启动时构建一次，之后只读，可被任意多个请求并发查询
type Table struct {
	records  []model.Record
	byOrigin map[string][]model.Record
	origins  []string // 去重后按字典序排列

	categories []model.RequirementCategory // 数据中实际出现的类别
	source     string
	loadedAt   time.Time
}

// New 构建数据表
// source 仅用于状态展示（remote 地址 / file 路径 / snapshot）
func New(records []model.Record, source string) *Table {
	t := &Table{
		records:  records,
		byOrigin: make(map[string][]model.Record),
		source:   source,
		loadedAt: time.Now(),
	}

	catSet := make(map[model.RequirementCategory]struct{})
	for _, rec := range records {
		t.byOrigin[rec.Origin] = append(t.byOrigin[rec.Origin], rec)
		catSet[rec.Requirement] = struct{}{}
	}

	t.origins = make([]string, 0, len(t.byOrigin))
	for origin := range t.byOrigin {
		t.origins = append(t.origins, origin)
	}
	sort.Strings(t.origins)

	t.categories = make([]model.RequirementCategory, 0, len(catSet))
	for cat := range catSet {
		t.categories = append(t.categories, cat)
	}
	sort.Slice(t.categories, func(i, j int) bool { return t.categories[i] < t.categories[j] })

	return t
}

// Len 记录总数
func (t *Table) Len() int {
	return len(t.records)
}

// Origins 全部护照签发国，字典序
func (t *Table) Origins() []string {
	out := make([]string, len(t.origins))
	copy(out, t.origins)
	return out
}

// HasOrigin 判断签发国是否存在于数据集中
func (t *Table) HasOrigin(origin string) bool {
	_, ok := t.byOrigin[origin]
	return ok
}

// ByOrigin 按签发国过滤
// 返回内部切片，调用方只读；不存在的签发国返回空切片
func (t *Table) ByOrigin(origin string) []model.Record {
	return t.byOrigin[origin]
}

// Categories 数据中实际出现的签证要求类别，字典序
func (t *Table) Categories() []model.RequirementCategory {
	out := make([]model.RequirementCategory, len(t.categories))
	copy(out, t.categories)
	return out
}

// Records 全部记录（只读）
func (t *Table) Records() []model.Record {
	return t.records
}

// Source 数据来源描述
func (t *Table) Source() string {
	return t.source
}

// LoadedAt 加载时间
func (t *Table) LoadedAt() time.Time {
	return t.loadedAt
}
