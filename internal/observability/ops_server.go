package observability

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riskibarqy/livematch/internal/platform/logging"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"github.com/valyala/fasthttp/pprofhandler"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// OpsServer serves /metrics, /healthz and /debug/pprof for the live worker.
type OpsServer struct {
	addr    string
	server  *fasthttp.Server
	metrics fasthttp.RequestHandler
	ready   atomic.Bool
	logger  *logging.Logger
}

type healthResponse struct {
	Status string `json:"status"`
}

func NewOpsServer(addr string, metrics *ReconcileMetrics, logger *logging.Logger) *OpsServer {
	if logger == nil {
		logger = logging.Default()
	}

	s := &OpsServer{addr: addr, logger: logger}
	promHandler := promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{Registry: metrics.Registry()})
	s.metrics = fasthttpadaptor.NewFastHTTPHandler(otelhttp.NewHandler(promHandler, "ops.metrics"))
	s.server = &fasthttp.Server{
		Name:    "livematch-ops",
		Handler: s.handle,
	}
	return s
}

// SetReady flips the /healthz answer between 200 and 503.
func (s *OpsServer) SetReady(ready bool) {
	s.ready.Store(ready)
}

func (s *OpsServer) handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch {
	case path == "/metrics":
		s.metrics(ctx)
	case path == "/healthz":
		s.health(ctx)
	case strings.HasPrefix(path, "/debug/pprof"):
		pprofhandler.PprofHandler(ctx)
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
	}
}

func (s *OpsServer) health(ctx *fasthttp.RequestCtx) {
	status, body := fasthttp.StatusOK, healthResponse{Status: "ok"}
	if !s.ready.Load() {
		status, body = fasthttp.StatusServiceUnavailable, healthResponse{Status: "starting"}
	}

	raw, err := sonic.Marshal(body)
	if err != nil {
		ctx.Error("encode health", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(raw)
}

// Start listens in the background; listen errors are logged.
func (s *OpsServer) Start() {
	go func() {
		s.logger.Info("ops server starting", "addr", s.addr)
		if err := s.server.ListenAndServe(s.addr); err != nil {
			s.logger.Error("ops server failed", "error", err)
		}
	}()
}

func (s *OpsServer) Shutdown(ctx context.Context) error {
	if err := s.server.ShutdownWithContext(ctx); err != nil {
		return err
	}
	s.logger.Info("ops server stopped")
	return nil
}
