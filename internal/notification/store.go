package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/nao1215/podigest/pkg/model"
)

// ErrNotFound は指定されたIDの通知が存在しないことを表す。
var ErrNotFound = errors.New("通知が見つかりません")

// Store は通知データの読み込み元。
type Store interface {
	// List は全ての通知を保存順に返す。
	List(ctx context.Context) ([]model.NotificationSummary, error)
	// Get は指定されたIDの通知を返す。存在しない場合は ErrNotFound を返す。
	Get(ctx context.Context, id string) (*model.NotificationSummary, error)
	// Close はストアが保持するリソースを解放する。
	Close() error
}

// FileStore はJSON配列のファイルから通知を読み込むストア。
// 呼び出しのたびにファイルを読み直すため、ファイルの更新は即座に反映される。
type FileStore struct {
	path string
}

// NewFileStore は新しいFileStoreを生成する。
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// List はファイル内の全ての通知を返す。
// ファイルが存在しない場合や空の場合は空のスライスを返す。
func (s *FileStore) List(_ context.Context) ([]model.NotificationSummary, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.NotificationSummary{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("通知ファイルの読み込みに失敗: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []model.NotificationSummary{}, nil
	}

	var notifications []model.NotificationSummary
	if err := json.Unmarshal(data, &notifications); err != nil {
		return nil, fmt.Errorf("通知ファイルのパースに失敗: %w", err)
	}
	if notifications == nil {
		notifications = []model.NotificationSummary{}
	}
	return notifications, nil
}

// Get はIDが一致する最初の通知を返す。
func (s *FileStore) Get(ctx context.Context, id string) (*model.NotificationSummary, error) {
	notifications, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range notifications {
		if notifications[i].ID == id {
			return &notifications[i], nil
		}
	}
	return nil, ErrNotFound
}

// Close は何もしない。
func (s *FileStore) Close() error {
	return nil
}
