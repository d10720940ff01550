package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/dialog"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Elimina un artículo y su imagen guardada",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	app, err := openApp(dialog.NewTerminal(nil, nil))
	if err != nil {
		return err
	}
	defer app.close()

	if err := app.items.Delete(cmd.Context(), id); err != nil {
		return err
	}

	fmt.Printf("Artículo %d eliminado.\n", id)
	return nil
}
