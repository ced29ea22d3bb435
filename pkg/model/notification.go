package model

// NotificationSummary は1件の通知を表す。
// フィールド名はバックエンドのJSON表現に合わせている。
type NotificationSummary struct {
	// ID は通知の一意識別子。
	ID string `json:"id"`
	// FechaEnvio は送信日時。形式はバックエンドに依存し、解析しない。
	FechaEnvio string `json:"fechaEnvio"`
	// Asunto は件名。
	Asunto string `json:"asunto"`
	// Remitente は送信者。
	Remitente string `json:"remitente"`
	// Mensaje は本文。
	Mensaje string `json:"mensaje"`
}
