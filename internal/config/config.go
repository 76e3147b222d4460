package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// 数据源类型
const (
	SourceRemote   = "remote"   // 远程 CSV（默认）
	SourceFile     = "file"     // 本地 CSV 文件
	SourceSnapshot = "snapshot" // SQLite 快照（离线启动）
)

// DefaultSourceURL 默认数据集地址
const DefaultSourceURL = "https://raw.githubusercontent.com/crebi6/passport-index/refs/heads/main/encoded-passport-power1.csv"

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	Source           string `toml:"source"`             // remote / file / snapshot
	SourceURL        string `toml:"source_url"`         // remote 模式的 CSV 地址
	FilePath         string `toml:"file_path"`          // file 模式的本地路径
	DataDir          string `toml:"data_dir"`           // 数据目录（exports、快照库）
	FetchTimeoutSecs int    `toml:"fetch_timeout_secs"` // 远程拉取超时
	KeepSnapshots    int    `toml:"keep_snapshots"`     // 保留的快照数量，0 表示不保存
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			Source:           SourceRemote,
			SourceURL:        DefaultSourceURL,
			DataDir:          "data",
			FetchTimeoutSecs: 30,
			KeepSnapshots:    3,
		},
	}
}

// Validate 校验数据源配置
func (c *AppConfig) Validate() error {
	switch c.Data.Source {
	case SourceRemote:
		if c.Data.SourceURL == "" {
			return fmt.Errorf("remote 模式需要配置 source_url")
		}
	case SourceFile:
		if c.Data.FilePath == "" {
			return fmt.Errorf("file 模式需要配置 file_path")
		}
	case SourceSnapshot:
		// 快照库位于数据目录下，无需额外配置
	default:
		return fmt.Errorf("未知数据源类型: %s", c.Data.Source)
	}
	return nil
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 从 config.toml 加载配置
// 配置文件位于可执行文件同目录下；不存在时使用默认配置
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	// 环境变量覆盖（用于 E2E / 本地运行）
	if v := os.Getenv("PASSPORT2_SOURCE_URL"); v != "" {
		config.Data.SourceURL = v
	}

	return config, nil
}

// SaveConfig 保存配置到 config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir 确保数据目录存在
// 数据目录位于可执行文件同目录下
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	// 创建子目录
	if err := os.MkdirAll(filepath.Join(dataDir, "exports"), 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}
