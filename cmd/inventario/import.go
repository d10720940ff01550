package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/dialog"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Restaura la base de datos y las imágenes desde un respaldo",
	Long: `Restaura la base de datos desde un archivo de respaldo, trae las imágenes
de la carpeta imagenes_inventario contigua al almacén gestionado y repara
las rutas de imagen guardadas para que apunten a él.

Antes de sobrescribir se guarda una copia de seguridad de la base de datos
actual, salvo que se pase --sin-copia-seguridad.

Sin --origen se pregunta la ruta de forma interactiva; cancelar el diálogo
aborta sin tocar nada.`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

var (
	importOrigen   string
	importSinCopia bool
)

func init() {
	importCmd.Flags().StringVar(&importOrigen, "origen", "", "ruta del archivo de respaldo a importar")
	importCmd.Flags().BoolVar(&importSinCopia, "sin-copia-seguridad", false, "no guardar copia de la base de datos actual")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	app, err := openApp(dialog.NewTerminal(nil, nil))
	if err != nil {
		return err
	}
	defer app.close()

	result, err := app.importer.Import(cmd.Context(), dto.ImportRequest{
		SourcePath:        importOrigen,
		DisableSafetyCopy: importSinCopia,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Message)
	if result.SafetyCopyPath != "" {
		fmt.Printf("Copia de seguridad previa: %s\n", result.SafetyCopyPath)
	}
	return nil
}
