package observability

import (
	"context"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/addthemup/hoopgeek-sub001/internal/config"
	"github.com/addthemup/hoopgeek-sub001/internal/platform/logging"
)

// StartPprofServer serves the runtime profiling endpoints on a separate
// listener so they never share a port with the public API.
func StartPprofServer(cfg config.Config, logger *logging.Logger) *http.Server {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	server := &http.Server{
		Addr:              cfg.PprofAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("pprof server listening", "addr", cfg.PprofAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("pprof server failed", "error", err)
		}
	}()

	return server
}

// StopPprofServer shuts down the pprof listener started by StartPprofServer.
func StopPprofServer(ctx context.Context, server *http.Server, logger *logging.Logger) {
	if server == nil {
		return
	}
	if logger == nil {
		logger = logging.Default()
	}
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("pprof server shutdown failed", "error", err)
	}
}
