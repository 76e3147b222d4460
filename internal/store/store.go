package store

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/crebi6/passport2/internal/model"
)

//go:embed schema.sql
var schemaFS embed.FS

// Store 数据集快照存储
// 仅在启动阶段读写：成功拉取后保存快照，snapshot 模式下读取最新快照
type Store struct {
	db *sql.DB
}

// Snapshot 快照元信息
type Snapshot struct {
	ID          int64     `json:"id"`
	Source      string    `json:"source"`
	RecordCount int       `json:"recordCount"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// New 创建 Store 实例
func New(dbPath string) (*Store, error) {
	// 确保目录存在
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("创建数据目录失败: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接失败: %w", err)
	}

	// SQLite 建议单连接
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("初始化数据库结构失败: %w", err)
	}

	return store, nil
}

// initSchema 初始化数据库结构
func (s *Store) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("读取 schema.sql 失败: %w", err)
	}

	if _, err := s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("执行建表语句失败: %w", err)
	}

	return nil
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSnapshot 保存一份数据集快照，并按 keep 清理旧快照
func (s *Store) SaveSnapshot(source string, records []model.Record, keep int) (int64, error) {
	if len(records) == 0 {
		return 0, fmt.Errorf("空数据集不保存快照")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		"INSERT INTO snapshots (source, record_count) VALUES (?, ?)",
		source, len(records),
	)
	if err != nil {
		return 0, fmt.Errorf("写入快照元信息失败: %w", err)
	}
	snapshotID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(
		"INSERT INTO records (snapshot_id, origin, destination, requirement) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(snapshotID, rec.Origin, rec.Destination, string(rec.Requirement)); err != nil {
			return 0, fmt.Errorf("写入快照记录失败: %w", err)
		}
	}

	if keep > 0 {
		if _, err := tx.Exec(`
			DELETE FROM snapshots WHERE id NOT IN (
				SELECT id FROM snapshots ORDER BY id DESC LIMIT ?
			)
		`, keep); err != nil {
			return 0, fmt.Errorf("清理旧快照失败: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return snapshotID, nil
}

// LatestSnapshot 读取最新快照
// 无任何快照时返回明确错误，snapshot 模式下由调用方按致命错误处理
func (s *Store) LatestSnapshot() (Snapshot, []model.Record, error) {
	var snap Snapshot
	err := s.db.QueryRow(
		"SELECT id, source, record_count, fetched_at FROM snapshots ORDER BY id DESC LIMIT 1",
	).Scan(&snap.ID, &snap.Source, &snap.RecordCount, &snap.FetchedAt)
	if err == sql.ErrNoRows {
		return Snapshot{}, nil, fmt.Errorf("快照库为空，请先以 remote/file 模式成功加载一次")
	}
	if err != nil {
		return Snapshot{}, nil, fmt.Errorf("读取快照元信息失败: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT origin, destination, requirement FROM records WHERE snapshot_id = ?",
		snap.ID,
	)
	if err != nil {
		return Snapshot{}, nil, fmt.Errorf("读取快照记录失败: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var rec model.Record
		var requirement string
		if err := rows.Scan(&rec.Origin, &rec.Destination, &requirement); err != nil {
			return Snapshot{}, nil, err
		}
		rec.Requirement = model.RequirementCategory(requirement)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, nil, err
	}

	return snap, records, nil
}

// CountSnapshots 快照数量（用于状态展示）
func (s *Store) CountSnapshots() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
