package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/nao1215/podigest/internal/config"
	"github.com/nao1215/podigest/internal/notification"
	"github.com/nao1215/podigest/pkg/notificationclient"
	"github.com/spf13/cobra"
)

// options はサブコマンド共通のオプション。
type options struct {
	// configPath は設定ファイルのパス。
	configPath string
	// baseURL は通知サービスのベースURL。設定ファイルより優先する。
	baseURL string
	// strict はエラーを畳み込まずに終了コードで返すかどうか。
	strict bool
}

// newRootCmd はルートコマンドを生成する。
func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "podigest",
		Short:        "通知APIのクライアント",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("CONFIG_PATH"), "設定ファイルのパス")
	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "通知サービスのベースURL")
	root.PersistentFlags().BoolVar(&opts.strict, "strict", false, "取得に失敗した場合にエラーで終了する")

	root.AddCommand(newListCmd(opts), newGetCmd(opts), newImportCmd(opts))
	return root
}

// loadConfig は設定を読み込み、フラグの値で上書きする。
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.baseURL != "" {
		cfg.Client.BaseURL = o.baseURL
	}
	return cfg, nil
}

// newClient は設定から通知APIクライアントを生成する。
func (o *options) newClient(stderr io.Writer) (*notificationclient.Client, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	logger := log.New(stderr, "[podigest] ", log.LstdFlags)
	return notificationclient.New(cfg.Client.BaseURL, notificationclient.WithLogger(logger)), nil
}

// newListCmd は通知一覧を表示するコマンドを生成する。
func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "通知の一覧をJSONで表示する",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := opts.newClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if !opts.strict {
				return writeJSON(cmd.OutOrStdout(), client.FetchNotifications(cmd.Context()))
			}
			notifications, err := client.List(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), notifications)
		},
	}
}

// newGetCmd は通知を1件表示するコマンドを生成する。
func newGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "指定したIDの通知をJSONで表示する",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.newClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if !opts.strict {
				return writeJSON(cmd.OutOrStdout(), client.FetchNotificationByID(cmd.Context(), args[0]))
			}
			n, err := client.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), n)
		},
	}
}

// newImportCmd はJSONファイルの通知をSQLiteストアに取り込むコマンドを生成する。
func newImportCmd(opts *options) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "JSONファイルの通知をSQLiteデータベースに取り込む",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if dbPath == "" {
				dbPath = cfg.Store.SQLitePath
			}

			notifications, err := notification.NewFileStore(args[0]).List(cmd.Context())
			if err != nil {
				return err
			}

			store, err := notification.OpenSQLiteStore(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Import(cmd.Context(), notifications)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d件の通知を %s に取り込みました\n", n, dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "取り込み先のSQLiteデータベース（省略時は設定値）")
	return cmd
}

// writeJSON は値をインデント付きのJSONで出力する。
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("JSONの出力に失敗: %w", err)
	}
	return nil
}
