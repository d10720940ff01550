package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/dialog"
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Repara las rutas de imagen guardadas",
	Long: `Reescribe cada referencia de imagen para que apunte al archivo homónimo
dentro del almacén gestionado. Útil si la base de datos viene de otra
instalación y la importación quedó a medias.

El trato a las referencias cuyo archivo no existe depende de
BACKUP_REPAIR_MODE: keep las deja intactas, clear las vacía.`,
	Args: cobra.NoArgs,
	RunE: runRepair,
}

func init() {
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, _ []string) error {
	app, err := openApp(dialog.NewTerminal(nil, nil))
	if err != nil {
		return err
	}
	defer app.close()

	updated, err := app.items.RepairImagePaths(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("%d rutas de imagen actualizadas.\n", updated)
	return nil
}
