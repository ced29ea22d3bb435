// Package notificationclient は通知APIのクライアントを提供する。
//
// List / Get はエラーを返す。一方 FetchNotifications / FetchNotificationByID は
// 画面側で使うための関数で、失敗を空のスライスまたはnilに畳み込み、
// 呼び出し元にエラーを返さない。そのため「通知がない」と「取得に失敗した」は
// 区別できない。区別が必要な場合は List / Get を使うこと。
package notificationclient
