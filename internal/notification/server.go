package notification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/podigest/internal/config"
	"github.com/nao1215/podigest/pkg/middleware"
)

// Server は通知サービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// store は通知データの読み込み元。
	store Store
}

// NewServer は設定に従ってストアを開き、新しい通知サーバーを生成する。
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	store, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	s := &Server{
		router: router,
		port:   cfg.Server.Port,
		store:  store,
	}
	s.setupRoutes()

	return s, nil
}

// OpenStore は設定で指定されたストアを開く。
func OpenStore(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.StoreDriverFile:
		log.Printf("[Store] JSONファイルから通知を読み込みます: %s", cfg.FilePath)
		return NewFileStore(cfg.FilePath), nil
	case config.StoreDriverSQLite:
		log.Printf("[Store] SQLiteから通知を読み込みます: %s", cfg.SQLitePath)
		return OpenSQLiteStore(ctx, cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("未知のストアです: %q", cfg.Driver)
	}
}

// Handler はサーバーのHTTPハンドラーを返す。
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// Close はストアを閉じる。
func (s *Server) Close() error {
	return s.store.Close()
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	notifications := s.router.Group("/api/notificaciones")
	{
		// 通知一覧取得
		notifications.GET("", s.handleList())
		// 通知1件取得
		notifications.GET("/:id", s.handleGet())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "notification"})
	})
}

// handleList は全ての通知を返すハンドラ。
func (s *Server) handleList() gin.HandlerFunc {
	return func(c *gin.Context) {
		notifications, err := s.store.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "通知一覧の取得に失敗しました"})
			log.Printf("通知一覧取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, notifications)
	}
}

// handleGet は指定されたIDの通知を返すハンドラ。
func (s *Server) handleGet() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		notification, err := s.store.Get(c.Request.Context(), id)
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "通知が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "通知の取得に失敗しました"})
			log.Printf("通知取得エラー: id=%s, error=%v", id, err)
			return
		}

		c.JSON(http.StatusOK, notification)
	}
}
