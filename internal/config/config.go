// Package config は通知サービスとCLIの設定を読み込む。
//
// YAMLファイル（任意）を読み込んだ後、環境変数で上書きする。
// どちらも指定されていない項目には既定値を使用する。
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// StoreDriverFile はJSONファイルを読み込むストアを表す。
	StoreDriverFile = "file"
	// StoreDriverSQLite はSQLiteデータベースのストアを表す。
	StoreDriverSQLite = "sqlite"
)

// ServerConfig は通知サービスのHTTPサーバー設定。
type ServerConfig struct {
	// Port はリッスンポート。
	Port string `yaml:"port"`
	// AllowedOrigins はCORSで許可するフロントエンドのオリジン。
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// StoreConfig は通知データの保存先の設定。
type StoreConfig struct {
	// Driver はストアの種類（"file" または "sqlite"）。
	Driver string `yaml:"driver"`
	// FilePath は通知のJSONファイルのパス。
	FilePath string `yaml:"file_path"`
	// SQLitePath はSQLiteデータベースファイルのパス。
	SQLitePath string `yaml:"sqlite_path"`
}

// ClientConfig は通知APIクライアントの設定。
type ClientConfig struct {
	// BaseURL は通知サービスのベースURL。
	BaseURL string `yaml:"base_url"`
}

// Config は設定全体。
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Client ClientConfig `yaml:"client"`
}

// Default は既定値で埋めた設定を返す。
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Store: StoreConfig{
			Driver:     StoreDriverFile,
			FilePath:   "data/notificaciones.json",
			SQLitePath: "data/notificaciones.db",
		},
		Client: ClientConfig{
			BaseURL: "http://localhost:8080",
		},
	}
}

// Load は設定を読み込む。
// pathが空の場合はYAMLファイルを読まず、既定値と環境変数のみを使用する。
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("設定ファイルのパースに失敗: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv は環境変数で設定を上書きする。
func (c *Config) applyEnv() {
	c.Server.Port = getEnvOr("PORT", c.Server.Port)
	if origins := os.Getenv("FRONTEND_URL"); origins != "" {
		c.Server.AllowedOrigins = splitList(origins)
	}
	c.Store.Driver = getEnvOr("NOTIFICACIONES_STORE", c.Store.Driver)
	c.Store.FilePath = getEnvOr("NOTIFICACIONES_FILE_PATH", c.Store.FilePath)
	c.Store.SQLitePath = getEnvOr("NOTIFICACIONES_SQLITE_PATH", c.Store.SQLitePath)
	c.Client.BaseURL = getEnvOr("NOTIFICACIONES_API_URL", c.Client.BaseURL)
}

// Validate は設定値の整合性を検証する。
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.portが空です"))
	}
	switch c.Store.Driver {
	case StoreDriverFile:
		if c.Store.FilePath == "" {
			errs = append(errs, errors.New("store.file_pathが空です"))
		}
	case StoreDriverSQLite:
		if c.Store.SQLitePath == "" {
			errs = append(errs, errors.New("store.sqlite_pathが空です"))
		}
	default:
		errs = append(errs, fmt.Errorf("未知のstore.driverです: %q", c.Store.Driver))
	}
	if c.Client.BaseURL == "" {
		errs = append(errs, errors.New("client.base_urlが空です"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("設定が不正です: %w", errors.Join(errs...))
	}
	return nil
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// splitList はカンマ区切りの文字列を分割し、空要素を取り除く。
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
