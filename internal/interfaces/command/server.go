package command

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/Ileana-Castillo/inventario-servicio/internal/application/dto"
)

// Las imágenes viajan como base64 dentro de la línea, así que el tope por
// línea tiene que admitir fotos de varios megas.
const maxLineBytes = 32 << 20

// Request es una invocación entrante del protocolo de línea.
type Request struct {
	ID   int64           `json:"id"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response es la contestación a una invocación.
type Response struct {
	ID     int64              `json:"id"`
	OK     bool               `json:"ok"`
	Result any                `json:"result,omitempty"`
	Error  *dto.ErrorResponse `json:"error,omitempty"`
}

// Server atiende el protocolo línea a línea: una petición JSON por línea de
// entrada, una respuesta JSON por línea de salida. Las peticiones se
// procesan de a una, en orden de llegada.
type Server struct {
	dispatcher *Dispatcher
	in         io.Reader
	out        io.Writer
}

// NewServer construye un servidor sobre el par lector/escritor dado.
func NewServer(d *Dispatcher, in io.Reader, out io.Writer) *Server {
	return &Server{dispatcher: d, in: in, out: out}
}

// Serve procesa peticiones hasta agotar la entrada o cancelar el contexto.
// Una línea que no parsea produce una respuesta de error y el servidor
// sigue; solo un fallo de E/S lo detiene.
func (s *Server) Serve(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	enc := json.NewEncoder(s.out)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		resp := s.handle(ctx, line)
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("escribir respuesta: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("leer petición: %w", err)
	}
	return nil
}

func (s *Server) handle(ctx context.Context, line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Response{
			OK:    false,
			Error: &dto.ErrorResponse{Code: "VALIDATION", Message: "petición malformada"},
		}
	}

	result, err := s.dispatcher.Invoke(ctx, req.Cmd, req.Args)
	if err != nil {
		log.Warn().Int64("id", req.ID).Str("cmd", req.Cmd).Err(err).Msg("comando fallido")
		body := ErrorBody(err)
		return Response{ID: req.ID, OK: false, Error: &body}
	}
	return Response{ID: req.ID, OK: true, Result: result}
}
