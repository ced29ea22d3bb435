package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nao1215/podigest/pkg/migration"
	"github.com/nao1215/podigest/pkg/model"
	_ "modernc.org/sqlite"
)

// SQLiteStore はSQLiteデータベースに保存された通知を読み書きするストア。
type SQLiteStore struct {
	// db はSQLiteデータベース接続。
	db *sql.DB
}

// OpenSQLiteStore はSQLiteデータベースを開き、スキーマを適用する。
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if _, err := migration.Run(ctx, db, migrationsFS, migrationsDir); err != nil {
		db.Close()
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// List は全ての通知を挿入順に返す。
func (s *SQLiteStore) List(ctx context.Context) ([]model.NotificationSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, fecha_envio, asunto, remitente, mensaje
		FROM notificaciones
		ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("通知一覧の取得に失敗: %w", err)
	}
	defer func() { _ = rows.Close() }()

	notifications := []model.NotificationSummary{}
	for rows.Next() {
		var n model.NotificationSummary
		if err := rows.Scan(&n.ID, &n.FechaEnvio, &n.Asunto, &n.Remitente, &n.Mensaje); err != nil {
			return nil, fmt.Errorf("通知行の読み取りに失敗: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("通知一覧の走査に失敗: %w", err)
	}
	return notifications, nil
}

// Get は指定されたIDの通知を返す。
func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.NotificationSummary, error) {
	var n model.NotificationSummary
	err := s.db.QueryRowContext(ctx, `
		SELECT id, fecha_envio, asunto, remitente, mensaje
		FROM notificaciones
		WHERE id = ?`, id).Scan(&n.ID, &n.FechaEnvio, &n.Asunto, &n.Remitente, &n.Mensaje)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("通知の取得に失敗: %w", err)
	}
	return &n, nil
}

// Import は通知を1つのトランザクションで登録し、登録した件数を返す。
// 同じIDの通知が既にある場合は内容を上書きする。IDが空の通知にはUUIDを割り当てる。
func (s *SQLiteStore) Import(ctx context.Context, notifications []model.NotificationSummary) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO notificaciones (id, fecha_envio, asunto, remitente, mensaje)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			fecha_envio = excluded.fecha_envio,
			asunto = excluded.asunto,
			remitente = excluded.remitente,
			mensaje = excluded.mensaje`)
	if err != nil {
		return 0, fmt.Errorf("SQLの準備に失敗: %w", err)
	}
	defer stmt.Close()

	for _, n := range notifications {
		if n.ID == "" {
			n.ID = uuid.New().String()
		}
		if _, err := stmt.ExecContext(ctx, n.ID, n.FechaEnvio, n.Asunto, n.Remitente, n.Mensaje); err != nil {
			return 0, fmt.Errorf("通知 %s の登録に失敗: %w", n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("コミットに失敗: %w", err)
	}
	return len(notifications), nil
}

// Close はデータベース接続を閉じる。
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
