package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
	"github.com/Ileana-Castillo/inventario-servicio/internal/domain"
	"github.com/Ileana-Castillo/inventario-servicio/internal/infrastructure/dialog"
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Modifica un artículo existente",
	Long: `Modifica un artículo existente. Los campos que no se pasan por flag
conservan su valor actual; la imagen guardada solo cambia si se pasa
--imagen.

Ejemplos:
  inventario update 3 --disponible 12
  inventario update 3 --nombre "Tornillos 6mm" --imagen ./foto.png`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var (
	updateNombre     string
	updateNecesaria  int
	updateDisponible int
	updateImagen     string
)

func init() {
	updateCmd.Flags().StringVar(&updateNombre, "nombre", "", "nuevo nombre del artículo")
	updateCmd.Flags().IntVar(&updateNecesaria, "necesaria", 0, "nueva cantidad necesaria")
	updateCmd.Flags().IntVar(&updateDisponible, "disponible", 0, "nueva cantidad disponible")
	updateCmd.Flags().StringVar(&updateImagen, "imagen", "", "archivo de imagen que reemplaza al actual")

	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	app, err := openApp(dialog.NewTerminal(nil, nil))
	if err != nil {
		return err
	}
	defer app.close()

	current, err := app.items.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	// El caso de uso recibe el estado completo; los flags ausentes se
	// rellenan con lo ya guardado.
	req := dto.UpdateItemRequest{
		Name:               current.Name,
		CantidadNecesaria:  current.CantidadNecesaria,
		CantidadDisponible: current.CantidadDisponible,
	}
	flags := cmd.Flags()
	if flags.Changed("nombre") {
		req.Name = updateNombre
	}
	if flags.Changed("necesaria") {
		req.CantidadNecesaria = updateNecesaria
	}
	if flags.Changed("disponible") {
		req.CantidadDisponible = updateDisponible
	}
	if updateImagen != "" {
		encoded, err := encodeImageFile(updateImagen)
		if err != nil {
			return err
		}
		req.ImageBase64 = &encoded
	}

	item, err := app.items.Update(cmd.Context(), id, req)
	if err != nil {
		return err
	}

	fmt.Printf("%d %s\n", item.ID, item.Name)
	return nil
}

// parseID convierte el argumento posicional en un id numérico.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id inválido: %s", domain.ErrInvalidInput, s)
	}
	return id, nil
}
