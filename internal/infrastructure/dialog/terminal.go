// Package dialog implementa el puerto de diálogos de archivo: la versión
// interactiva por terminal y la versión estática alimentada por flags.
package dialog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/backup"
	"github.com/Ileana-Castillo/inventario-servicio/pkg/fsutil"
)

var _ backup.Dialog = (*Terminal)(nil)

// Terminal pide rutas por la terminal. Si la entrada es un archivo sin TTY
// (stdin por pipe) los diálogos responden como cancelados, igual que cerrar
// la ventana de un diálogo gráfico.
type Terminal struct {
	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner
}

// NewTerminal construye el diálogo interactivo. Con in u out en nil usa
// os.Stdin y os.Stderr (stderr deja stdout libre para datos).
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &Terminal{in: in, out: out, scanner: bufio.NewScanner(in)}
}

// SaveFile pregunta dónde guardar. Una línea vacía acepta el nombre sugerido
// en el directorio actual; escribir un directorio existente guarda el nombre
// sugerido dentro de él.
func (t *Terminal) SaveFile(ctx context.Context, opts backup.SaveOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !t.interactive() {
		return "", nil
	}

	if opts.Title != "" {
		fmt.Fprintln(t.out, opts.Title)
	}
	fmt.Fprintf(t.out, "Guardar como [%s]: ", opts.SuggestedName)

	line, ok := t.readLine()
	if !ok {
		return "", nil // EOF: el usuario cerró la entrada
	}

	switch {
	case line == "":
		return opts.SuggestedName, nil
	case fsutil.DirExists(line):
		return filepath.Join(line, opts.SuggestedName), nil
	}

	if opts.Extension != "" && filepath.Ext(line) == "" {
		line += "." + opts.Extension
	}
	return line, nil
}

// OpenFile pregunta qué archivo abrir. Una línea vacía o el fin de la entrada
// cancelan.
func (t *Terminal) OpenFile(ctx context.Context, opts backup.OpenOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !t.interactive() {
		return "", nil
	}

	if opts.Title != "" {
		fmt.Fprintln(t.out, opts.Title)
	}
	fmt.Fprint(t.out, "Archivo a abrir: ")

	line, ok := t.readLine()
	if !ok {
		return "", nil
	}
	return line, nil
}

// interactive decide si se puede preguntar. Los lectores inyectados (tests,
// scripts) siempre responden; un *os.File exige TTY real.
func (t *Terminal) interactive() bool {
	f, ok := t.in.(*os.File)
	if !ok {
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}

func (t *Terminal) readLine() (string, bool) {
	if !t.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(t.scanner.Text()), true
}
