package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/dialog"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exporta la base de datos y las imágenes a un respaldo portátil",
	Long: `Exporta la base de datos a un archivo .db y copia las imágenes
referenciadas a una carpeta imagenes_inventario junto al archivo.

Sin --destino se pregunta la ruta de forma interactiva; cancelar el
diálogo aborta sin escribir nada.

Ejemplos:
  inventario export
  inventario export --destino /mnt/usb/inventario_backup_2025-01-15.db`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportDestino string

func init() {
	exportCmd.Flags().StringVar(&exportDestino, "destino", "", "ruta del archivo de respaldo")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	app, err := openApp(dialog.NewTerminal(nil, nil))
	if err != nil {
		return err
	}
	defer app.close()

	result, err := app.exporter.Export(cmd.Context(), dto.ExportRequest{
		DestinationPath: exportDestino,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Message)
	return nil
}
