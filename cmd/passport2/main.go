package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/crebi6/passport2/internal/config"
	"github.com/crebi6/passport2/internal/dataset"
	"github.com/crebi6/passport2/internal/loader"
	"github.com/crebi6/passport2/internal/model"
	"github.com/crebi6/passport2/internal/registry"
	"github.com/crebi6/passport2/internal/server"
	"github.com/crebi6/passport2/internal/store"
	"github.com/crebi6/passport2/internal/util"
)

var (
	port     = flag.Int("port", 0, "服务端口 (覆盖配置文件)")
	devMode  = flag.Bool("dev", false, "开发模式")
	source   = flag.String("source", "", "数据源类型 remote/file/snapshot (覆盖配置文件)")
	dataFile = flag.String("dataFile", "", "本地 CSV 路径 (隐含 -source=file)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Passport Power Index - 护照签证数据看板")
	fmt.Println("==========================================")

	// 加载配置
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	// 命令行参数覆盖配置
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *source != "" {
		cfg.Data.Source = *source
	}
	if *dataFile != "" {
		cfg.Data.Source = config.SourceFile
		cfg.Data.FilePath = *dataFile
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	// 确保数据目录存在
	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Fatalf("创建数据目录失败: %v", err)
	}
	fmt.Printf("数据目录: %s\n", dataDir)

	// 打开快照库（保存快照 / snapshot 模式读取）
	snapshotStore, err := store.New(filepath.Join(dataDir, "passport2.db"))
	if err != nil {
		log.Fatalf("初始化快照库失败: %v", err)
	}
	defer snapshotStore.Close()

	// 加载数据集（进程生命周期内仅此一次，任何失败直接终止启动）
	records, sourceDesc := loadDataset(cfg, snapshotStore)
	table := dataset.New(records, sourceDesc)
	fmt.Printf("数据集已加载: %d 条记录, %d 个签发国, 来源 %s\n",
		table.Len(), len(table.Origins()), sourceDesc)

	// 远程/文件来源加载成功后保存快照，供离线启动使用
	if cfg.Data.Source != config.SourceSnapshot && cfg.Data.KeepSnapshots > 0 {
		if _, err := snapshotStore.SaveSnapshot(sourceDesc, records, cfg.Data.KeepSnapshots); err != nil {
			log.Printf("保存数据集快照失败: %v", err)
		}
	}

	// 颜色注册表：固定类别 + 数据中观测到的其他类别
	colors := registry.New(table.Categories())

	// 创建服务器
	srv := server.NewServer(cfg, table, colors, filepath.Join(dataDir, "exports"))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	// 启动服务器
	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 打开浏览器
	if !cfg.Server.DevMode {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowser(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("开发模式: 请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	// 等待信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
}

// loadDataset 按配置的数据源加载数据集
// 加载失败是启动错误，这里直接 Fatalf，不做降级或重试
func loadDataset(cfg *config.AppConfig, snapshotStore *store.Store) ([]model.Record, string) {
	switch cfg.Data.Source {
	case config.SourceRemote:
		timeout := time.Duration(cfg.Data.FetchTimeoutSecs) * time.Second
		records, err := loader.Fetch(context.Background(), cfg.Data.SourceURL, timeout)
		if err != nil {
			log.Fatalf("加载数据集失败: %v", err)
		}
		return records, cfg.Data.SourceURL

	case config.SourceFile:
		records, err := loader.LoadFile(cfg.Data.FilePath)
		if err != nil {
			log.Fatalf("加载数据集失败: %v", err)
		}
		return records, cfg.Data.FilePath

	case config.SourceSnapshot:
		snap, records, err := snapshotStore.LatestSnapshot()
		if err != nil {
			log.Fatalf("加载数据集失败: %v", err)
		}
		fmt.Printf("使用快照 #%d (拉取于 %s)\n", snap.ID, snap.FetchedAt.Format("2006-01-02 15:04:05"))
		return records, "snapshot"

	default:
		log.Fatalf("未知数据源类型: %s", cfg.Data.Source)
		return nil, ""
	}
}
