package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tablero/internal/api"
	"github.com/thenoetrevino/tablero/internal/config"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/logging"
	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/services/card"
	"github.com/thenoetrevino/tablero/internal/services/column"
)

var (
	serveAddr   string
	serveDBPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Set up signal handling for graceful shutdown
		ctx, cancel := signal.NotifyContext(
			context.Background(),
			os.Interrupt,
			syscall.SIGTERM,
			syscall.SIGQUIT,
		)
		defer cancel()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		if serveDBPath != "" {
			cfg.DBPath = serveDBPath
		}

		logging.Init(cfg.LogLevel)

		db, err := database.InitDB(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := db.Close(); err != nil {
				slog.Error("error closing db", "error", err)
			}
		}()

		repo := database.NewRepository(db)
		server := api.NewServer(cfg, db,
			board.NewService(repo),
			column.NewService(repo),
			card.NewService(repo),
		)

		slog.Info("tablero starting", "addr", cfg.Addr, "db_path", cfg.DBPath, "pid", os.Getpid())

		return server.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "database path (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
