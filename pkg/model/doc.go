// Package model はクライアントとサーバーで共有する通知のデータモデルを提供する。
//
// 通知サービスのJSONレスポンスと同じ形をしており、
// 値の検証は行わない。受け取ったJSONをそのまま保持する。
package model
