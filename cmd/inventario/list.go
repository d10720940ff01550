package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/dialog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista los artículos del inventario",
	Long: `Lista los artículos del inventario, del más reciente al más viejo.

Con --faltantes se muestran solo los artículos con menos unidades
disponibles que las necesarias.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFaltantes bool

func init() {
	listCmd.Flags().BoolVar(&listFaltantes, "faltantes", false, "solo artículos con disponible < necesaria")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	app, err := openApp(dialog.NewTerminal(nil, nil))
	if err != nil {
		return err
	}
	defer app.close()

	items, err := app.items.List(cmd.Context())
	if err != nil {
		return err
	}
	if listFaltantes {
		items = soloFaltantes(items)
		if len(items) == 0 {
			fmt.Println("Nada que reponer.")
			return nil
		}
	}
	if len(items) == 0 {
		fmt.Println("Inventario vacío.")
		return nil
	}

	renderItems(os.Stdout, items)
	return nil
}

// soloFaltantes filtra los artículos que hay que reponer.
func soloFaltantes(items []dto.ItemResponse) []dto.ItemResponse {
	faltantes := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		if it.CantidadDisponible < it.CantidadNecesaria {
			faltantes = append(faltantes, it)
		}
	}
	return faltantes
}

// renderItems imprime la tabla de artículos. De la imagen se muestra solo el
// nombre del archivo; la ruta completa la da el comando db-path más el
// almacén gestionado.
func renderItems(w io.Writer, items []dto.ItemResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Nombre", "Necesaria", "Disponible", "Imagen", "Alta"})
	table.SetBorder(false)
	table.SetColumnSeparator(" ")

	for _, it := range items {
		imagen := ""
		if it.ImagePath != nil {
			imagen = filepath.Base(*it.ImagePath)
		}
		table.Append([]string{
			strconv.FormatInt(it.ID, 10),
			it.Name,
			strconv.Itoa(it.CantidadNecesaria),
			strconv.Itoa(it.CantidadDisponible),
			imagen,
			it.CreatedAt,
		})
	}

	table.Render()
}
