package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/raywall/fast-json-api/api"
	"github.com/raywall/fast-json-api/pkg/adapter"
	"github.com/raywall/fast-json-api/pkg/config"
	"github.com/raywall/fast-json-api/pkg/envelope"
	"github.com/rs/zerolog"
)

const (
	HeaderCorrelationID = "x-correlation-id"
	HeaderLatency       = "x-latency-ms"

	shutdownTimeout = 10 * time.Second
)

// StartHTTPServer sobe o servidor e bloqueia até ctx ser cancelado ou o
// listener falhar. O cancelamento de ctx faz um shutdown gracioso.
func StartHTTPServer(ctx context.Context, cfg *config.Config, pipeline api.PipelineInterface, logger zerolog.Logger, opts ...RouterOption) error {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      ObservabilityMiddleware(logger)(NewRouter(cfg, pipeline, opts...)),
		ReadTimeout:  cfg.GetTimeout(),
		WriteTimeout: cfg.GetTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Msgf("Servidor HTTP ouvindo em %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info().Msg("Encerrando servidor HTTP")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// RouterOption acrescenta rotas auxiliares ao roteador.
type RouterOption func(r *mux.Router)

// WithHandler registra h em path para GET, antes das rotas da API e dos
// arquivos estáticos. Usado para o endpoint de scraping do Prometheus.
func WithHandler(path string, h http.Handler) RouterOption {
	return func(r *mux.Router) {
		if h != nil && path != "" {
			r.Handle(path, h).Methods(http.MethodGet)
		}
	}
}

// NewRouter registra as rotas da API sob cfg.APIPrefix e, quando há
// diretório público, o servidor de arquivos estáticos na raiz.
//
// Todas as variações de /api/{model}/{action} aceitam qualquer método: a
// rejeição de métodos é responsabilidade do pipeline.
func NewRouter(cfg *config.Config, pipeline api.PipelineInterface, opts ...RouterOption) *mux.Router {
	router := mux.NewRouter()
	for _, opt := range opts {
		opt(router)
	}

	prefix := strings.TrimRight(cfg.APIPrefix, "/")
	handler := createAPIHandler(pipeline, cfg.MaxBodyBytes)

	router.HandleFunc(prefix, handler)
	router.HandleFunc(prefix+"/", handler)
	router.HandleFunc(prefix+"/{model}", handler)
	router.HandleFunc(prefix+"/{model}/", handler)
	router.HandleFunc(prefix+"/{model}/{action}", handler)
	router.HandleFunc(prefix+"/{model}/{action}/{rest:.*}", handler)

	if cfg.PublicDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.PublicDir)))
	}

	return router
}

func createAPIHandler(pipeline api.PipelineInterface, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, bodyErr := readBody(w, r, maxBody)
		raw := adapter.FromHTTP(r, body)

		var resp api.Response
		if bodyErr != nil {
			resp = pipeline.Reject(r.Context(), raw, bodyErr)
		} else {
			resp = pipeline.Handle(r.Context(), raw)
		}

		writeResponse(w, resp)
	}
}

func readBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, *envelope.Error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, envelope.PayloadTooLarge()
		}
		return nil, envelope.NewError(envelope.KindMalformedPayload, http.StatusBadRequest,
			fmt.Sprintf("Error reading body: %v", err))
	}
	return data, nil
}

func writeResponse(w http.ResponseWriter, resp api.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}

// --- MIDDLEWARE DE OBSERVABILIDADE ---

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	bytes       int
	startTime   time.Time
	wroteHeader bool
}

func (rw *responseWriterWrapper) WriteHeader(code int) {
	if rw.wroteHeader {
		return
	}
	rw.statusCode = code
	rw.Header().Set(HeaderLatency, fmt.Sprintf("%d", time.Since(rw.startTime).Milliseconds()))
	rw.ResponseWriter.WriteHeader(code)
	rw.wroteHeader = true
}

func (rw *responseWriterWrapper) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// ObservabilityMiddleware propaga o correlation id, injeta um logger por
// requisição no contexto e registra o fim de cada requisição, inclusive as
// servidas pelo servidor de arquivos estáticos.
func ObservabilityMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			corrID := r.Header.Get(HeaderCorrelationID)
			if corrID == "" {
				corrID = uuid.NewString()
			}
			w.Header().Set(HeaderCorrelationID, corrID)

			reqLogger := logger.With().Str("correlation_id", corrID).Logger()
			ctx := reqLogger.WithContext(r.Context())

			wrapper := &responseWriterWrapper{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
				startTime:      start,
			}

			next.ServeHTTP(wrapper, r.WithContext(ctx))

			reqLogger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Int("bytes", wrapper.bytes).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Msg("request completed")
		})
	}
}
