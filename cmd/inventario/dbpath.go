package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/dialog"
)

var dbPathCmd = &cobra.Command{
	Use:   "db-path",
	Short: "Muestra la ruta del archivo de base de datos",
	Args:  cobra.NoArgs,
	RunE:  runDBPath,
}

func init() {
	rootCmd.AddCommand(dbPathCmd)
}

func runDBPath(cmd *cobra.Command, _ []string) error {
	app, err := openApp(dialog.Static{})
	if err != nil {
		return err
	}
	defer app.close()

	fmt.Println(app.items.DatabasePath())
	return nil
}
