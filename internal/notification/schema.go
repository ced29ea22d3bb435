package notification

import "embed"

// migrationsFS は通知ストアのスキーマ定義。
// ファイル名形式は pkg/migration の規約に従う。
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationsDir はmigrationsFS内のマイグレーションディレクトリ。
const migrationsDir = "migrations"
