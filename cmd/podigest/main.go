// 通知APIのコマンドラインクライアント。
// 通知の一覧表示、1件表示、JSONファイルからSQLiteへの取り込みを行う。
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
