package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/karolswdev/scoldme/internal/config"
	"github.com/karolswdev/scoldme/internal/gateway"
	"github.com/karolswdev/scoldme/internal/llm"
	"github.com/karolswdev/scoldme/internal/web"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scolding server (web form + POST /api/scold)",
	Long: `Starts the HTTP server that hosts the web form on / and the scolding
gateway on POST /api/scold. The OpenAI API key is read once at startup;
the server refuses to start without one.

SIGINT or SIGTERM shuts the server down gracefully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, _ := cmd.Flags().GetString("config-dir")
		provider, err := GetProvider(configDir)
		if err != nil {
			return fmt.Errorf("failed to get service provider: %w", err)
		}
		addr, _ := cmd.Flags().GetString("addr")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serveRunE(ctx, provider.Config, provider.LLM, addr, cmd.ErrOrStderr())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr from config)")
	rootCmd.AddCommand(serveCmd)
}

// serveRunE loads the server settings, binds the listener and serves until ctx is done.
func serveRunE(ctx context.Context, cfgProvider ConfigProvider, llmClient llm.Client, addrOverride string, errOut io.Writer) error {
	cfg, err := cfgProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if llmClient == nil {
		fmt.Fprintf(errOut, "No OpenAI API key found. Run 'scold config set-key <key>' or set %s.\n", config.EnvAPIKeyName)
		return ErrLLMUnavailable
	}

	addr := cfg.Server.Addr
	if addrOverride != "" {
		addr = addrOverride
	}

	handler, err := NewServerHandler(llmClient, cfg.Server.AllowedOrigins)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	Log.Info().Str("addr", ln.Addr().String()).Str("model", cfg.LLM.OpenAI.ModelName).Msg("scold server listening")

	return runServer(ctx, &http.Server{Handler: handler, ReadHeaderTimeout: readHeaderTimeout}, ln)
}

// runServer serves on ln until ctx is cancelled or the server fails, then shuts down gracefully.
func runServer(ctx context.Context, srv *http.Server, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		Log.Info().Msg("Shutting down scold server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// NewServerHandler mounts the gateway, the web form and /health on one mux
// behind CORS and access logging.
func NewServerHandler(llmClient llm.Client, allowedOrigins []string) (http.Handler, error) {
	mux := http.NewServeMux()

	gw, err := gateway.New(llmClient)
	if err != nil {
		return nil, err
	}
	gw.Register(mux)

	page, err := web.New()
	if err != nil {
		return nil, err
	}
	page.Register(mux)

	mux.HandleFunc("GET /health", healthHandler)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{gateway.RequestIDHeader},
	})

	return accessLog(log.Logger, c.Handler(mux)), nil
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", Version: version})
}

// accessLog writes one line per request through logger.
func accessLog(logger zerolog.Logger, next http.Handler) http.Handler {
	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Str("remote", r.RemoteAddr).
			Msg("http request")
	})
	return hlog.NewHandler(logger)(access(next))
}
