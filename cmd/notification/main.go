// 通知サービスのエントリポイント。
// 通知の一覧と1件取得を読み取り専用のHTTP APIとして公開する。
package main

import (
	"context"
	"log"
	"os"

	"github.com/nao1215/podigest/internal/config"
	"github.com/nao1215/podigest/internal/notification"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	server, err := notification.NewServer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("通知サーバーの初期化に失敗: %v", err)
	}

	log.Printf("通知サービスを起動します: :%s", cfg.Server.Port)
	runErr := server.Run()
	if err := server.Close(); err != nil {
		log.Printf("ストアのクローズに失敗: %v", err)
	}
	if runErr != nil {
		log.Fatalf("通知サービスの起動に失敗: %v", runErr)
	}
}
