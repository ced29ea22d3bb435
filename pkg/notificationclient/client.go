package notificationclient

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/nao1215/podigest/pkg/httpclient"
	"github.com/nao1215/podigest/pkg/model"
)

// notificationsPath は通知コレクションのリソースパス。
const notificationsPath = "/api/notificaciones"

var (
	// ErrNotFound は指定されたIDの通知が存在しないことを表す。
	ErrNotFound = errors.New("通知が見つかりません")
	// ErrEmptyID は通知IDが空であることを表す。
	ErrEmptyID = errors.New("通知IDが空です")
)

// Logger は診断メッセージの出力先。*log.Logger はこのインターフェースを満たす。
type Logger interface {
	Printf(format string, v ...any)
}

// Client は通知APIのクライアント。
// 状態を持たないため、複数のgoroutineから同時に使用できる。
type Client struct {
	// api は通知サービスへのHTTPクライアント。
	api *httpclient.Client
	// logger は失敗時の診断メッセージの出力先。
	logger Logger
	// httpOpts はhttpclient生成時に渡すオプション。
	httpOpts []httpclient.Option
}

// Option はClientの生成時オプション。
type Option func(*Client)

// WithLogger は診断メッセージの出力先を設定する。
func WithLogger(l Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHTTPClient は内部で使用するHTTPクライアントを設定する。
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpOpts = append(c.httpOpts, httpclient.WithHTTPClient(hc))
	}
}

// New は新しい通知APIクライアントを生成する。
// baseURLには通知サービスのベースURL（例: "http://localhost:8080"）を指定する。
func New(baseURL string, opts ...Option) *Client {
	c := &Client{logger: log.Default()}
	for _, opt := range opts {
		opt(c)
	}
	c.api = httpclient.New(baseURL, c.httpOpts...)
	return c
}

// List は通知の一覧を取得する。
// 2xx以外のステータスは *httpclient.StatusError として返す。
func (c *Client) List(ctx context.Context) ([]model.NotificationSummary, error) {
	var notifications []model.NotificationSummary
	if err := c.api.GetJSON(ctx, notificationsPath, &notifications); err != nil {
		return nil, fmt.Errorf("通知一覧の取得に失敗: %w", err)
	}
	if notifications == nil {
		notifications = []model.NotificationSummary{}
	}
	return notifications, nil
}

// Get は指定されたIDの通知を取得する。
// IDはそのままリソースパスに埋め込む。404の場合は ErrNotFound を返し、
// それ以外の2xx以外のステータスは *httpclient.StatusError として返す。
func (c *Client) Get(ctx context.Context, id string) (*model.NotificationSummary, error) {
	if id == "" {
		return nil, ErrEmptyID
	}

	// nullのボディはnilのまま返す。
	var notification *model.NotificationSummary
	if err := c.api.GetJSON(ctx, notificationsPath+"/"+id, &notification); err != nil {
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("通知 %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("通知 %s の取得に失敗: %w", id, err)
	}
	return notification, nil
}

// FetchNotifications は通知の一覧を取得する。
// 失敗した場合は診断メッセージを1件出力し、空のスライスを返す。
func (c *Client) FetchNotifications(ctx context.Context) []model.NotificationSummary {
	notifications, err := c.List(ctx)
	if err != nil {
		c.logger.Printf("通知一覧を読み込めませんでした: %v", err)
		return []model.NotificationSummary{}
	}
	return notifications
}

// FetchNotificationByID は指定されたIDの通知を取得する。
// サーバーが2xx以外のステータスを返した場合は何も出力せずnilを返す。
// 通信やデシリアライズに失敗した場合は診断メッセージを1件出力してnilを返す。
func (c *Client) FetchNotificationByID(ctx context.Context, id string) *model.NotificationSummary {
	notification, err := c.Get(ctx, id)
	if err != nil {
		var statusErr *httpclient.StatusError
		if errors.Is(err, ErrNotFound) || errors.As(err, &statusErr) {
			return nil
		}
		c.logger.Printf("通知 %s を取得できませんでした: %v", id, err)
		return nil
	}
	return notification
}
