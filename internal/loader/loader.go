package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/crebi6/passport2/internal/model"
)

// 数据集必备列，按列名定位，与列顺序无关
var requiredColumns = []string{"origin", "destination", "requirement"}

// Fetch 从远程地址拉取数据集
// 启动时调用一次；失败由调用方按致命错误处理，这里不做重试
func Fetch(ctx context.Context, url string, timeout time.Duration) ([]model.Record, error) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("构造请求失败: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("拉取数据集失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("拉取数据集失败: HTTP %d", resp.StatusCode)
	}

	records, err := Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("解析数据集失败 (%s): %w", url, err)
	}
	return records, nil
}

// LoadFile 从本地 CSV 文件加载数据集
func LoadFile(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开数据文件失败: %w", err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("解析数据文件失败 (%s): %w", path, err)
	}
	return records, nil
}

// Parse 解析 CSV 数据集
// 首行为表头；必备列缺失或表体为空视为数据源损坏
func Parse(r io.Reader) ([]model.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // 行尾可能带多余列，长度校验放在取值处

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("读取表头失败: %w", err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var records []model.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取数据行失败: %w", err)
		}

		rec, ok := buildRecord(row, cols)
		if !ok {
			// 残缺行直接跳过，不让个别脏行拖垮整次加载
			continue
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("数据集为空")
	}
	return records, nil
}

// locateColumns 按表头定位必备列下标
func locateColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF")))
		if _, exists := cols[key]; !exists {
			cols[key] = i
		}
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("缺少必备列: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func buildRecord(row []string, cols map[string]int) (model.Record, bool) {
	get := func(name string) (string, bool) {
		i := cols[name]
		if i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	origin, ok := get("origin")
	if !ok || origin == "" {
		return model.Record{}, false
	}
	destination, ok := get("destination")
	if !ok || destination == "" {
		return model.Record{}, false
	}
	requirement, ok := get("requirement")
	if !ok || requirement == "" {
		return model.Record{}, false
	}

	return model.Record{
		Origin:      origin,
		Destination: destination,
		Requirement: model.RequirementCategory(requirement),
	}, true
}
