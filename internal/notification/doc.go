// Package notification は通知サービスの内部実装を提供する。
//
// 通知の一覧と1件取得を読み取り専用のHTTP APIとして公開する。
// 通知データはJSONファイルまたはSQLiteデータベースから読み込む。
package notification
