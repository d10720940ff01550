package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/dialog"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Agrega un artículo al inventario",
	Long: `Agrega un artículo al inventario.

Ejemplos:
  inventario add --nombre "Tornillos 5mm"
  inventario add --nombre "Tornillos 5mm" --necesaria 20 --disponible 8
  inventario add --nombre "Taladro" --imagen ./taladro.png`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addNombre     string
	addNecesaria  int
	addDisponible int
	addImagen     string
)

func init() {
	addCmd.Flags().StringVar(&addNombre, "nombre", "", "nombre del artículo")
	addCmd.Flags().IntVar(&addNecesaria, "necesaria", 0, "cantidad necesaria")
	addCmd.Flags().IntVar(&addDisponible, "disponible", 0, "cantidad disponible")
	addCmd.Flags().StringVar(&addImagen, "imagen", "", "archivo de imagen a adjuntar")
	_ = addCmd.MarkFlagRequired("nombre")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	app, err := openApp(dialog.NewTerminal(nil, nil))
	if err != nil {
		return err
	}
	defer app.close()

	req := dto.CreateItemRequest{
		Name:               addNombre,
		CantidadNecesaria:  addNecesaria,
		CantidadDisponible: addDisponible,
	}
	if addImagen != "" {
		encoded, err := encodeImageFile(addImagen)
		if err != nil {
			return err
		}
		req.ImageBase64 = &encoded
	}

	item, err := app.items.Create(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Printf("%d %s\n", item.ID, item.Name)
	return nil
}

// encodeImageFile lee el archivo de imagen y lo codifica en base64, que es
// como los casos de uso reciben las imágenes.
func encodeImageFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("leer imagen %s: %w", path, err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
