package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tablero",
	Short: "Tablero - a kanban board API server",
	Long:  `Tablero serves a JSON API for managing kanban boards, columns and cards.`,
}

func Execute() error {
	return rootCmd.Execute()
}
