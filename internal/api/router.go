package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nymtech/nym-explorer-indexer/internal/db/model"
	"github.com/nymtech/nym-explorer-indexer/internal/observability/metrics"
	"github.com/nymtech/nym-explorer-indexer/internal/observability/tracing"
	"github.com/nymtech/nym-explorer-indexer/internal/reconcile"
	"github.com/nymtech/nym-explorer-indexer/internal/services"
	"github.com/nymtech/nym-explorer-indexer/internal/types"
)

// Service is the part of services.Service the handlers use.
type Service interface {
	Ping(ctx context.Context) error
	ListNodes(ctx context.Context) ([]*model.NodeSummaryDocument, *types.Error)
	GetNode(ctx context.Context, nodeID uint32) (*model.NodeSummaryDocument, *types.Error)
	NetworkInfo(ctx context.Context) (*model.NetworkSnapshotDocument, *types.Error)
	NodeDelegations(ctx context.Context, nodeID uint32) ([]types.Delegation, *types.Error)
	AccountOverview(ctx context.Context, address string) (*services.AccountOverview, error)
	AccountDelegations(ctx context.Context, address string) ([]reconcile.Record, *types.Error)
}

func NewRouter(service Service) http.Handler {
	h := &handler{service: service}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(tracing.Middleware)
	r.Use(requestMetrics)

	r.Get("/healthcheck", h.healthcheck)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/network", h.network)
		r.Get("/nodes", h.listNodes)
		r.Get("/nodes/{id}", h.getNode)
		r.Get("/nodes/{id}/delegations", h.nodeDelegations)
		r.Get("/accounts/{address}", h.account)
		r.Get("/accounts/{address}/delegations", h.accountDelegations)
	})

	return r
}

func requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unknown"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		metrics.RecordAPIRequestDuration(time.Since(start), route, ww.Status())
	})
}
