// Package httpclient はJSON APIを呼び出すための薄いHTTPクライアントを提供する。
//
// ベースURLとパスを組み立ててGETリクエストを送り、レスポンスを
// デシリアライズする。2xx以外のステータスは StatusError として返すため、
// 呼び出し側は通信失敗とHTTPエラーを区別できる。
package httpclient
