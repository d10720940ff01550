// Package main es el punto de entrada de la CLI de inventario.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ileana-Castillo/inventario-servicio/internal/domain"
)

// Version se fija en tiempo de compilación vía ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cancelar un diálogo no es un fallo: se avisa y se sale limpio.
		if errors.Is(err, domain.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Operación cancelada.")
			return
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "inventario",
	Short: "inventario - inventario local con respaldo y restauración",
	Long: `inventario administra un inventario doméstico guardado en un archivo SQLite
local, con imágenes en un almacén gestionado junto a la base de datos.

La base de datos completa puede exportarse a un respaldo portátil (archivo
.db más una carpeta de imágenes) e importarse en otra instalación; al
importar, las rutas de imagen guardadas se reparan para apuntar al almacén
local.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	// Sin subcomando se muestra la ayuda
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.SetVersionTemplate("inventario version {{.Version}}\n")
}
