// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"time"

	"github.com/dalemusser/ticketboard/internal/app/store/fetchlog"
	"github.com/dalemusser/ticketboard/internal/app/system/chartboard"
	"go.uber.org/zap"
)

// DefaultAssetsHost serves echarts.min.js when no host is configured.
const DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// FetchLogReader is the read side of the fetch log. *fetchlog.Store satisfies it.
type FetchLogReader interface {
	Recent(ctx context.Context, f fetchlog.Filter) ([]fetchlog.Entry, error)
	ByLoad(ctx context.Context, loadID string) ([]fetchlog.Entry, error)
	CountFailures(ctx context.Context, since time.Time) (int64, error)
}

type Handler struct {
	Board      *chartboard.Board
	FetchLog   FetchLogReader // nil when fetch logging is disabled
	AssetsHost string
	Log        *zap.Logger
}

func NewHandler(board *chartboard.Board, fetchLog FetchLogReader, assetsHost string, logger *zap.Logger) *Handler {
	if assetsHost == "" {
		assetsHost = DefaultAssetsHost
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Board:      board,
		FetchLog:   fetchLog,
		AssetsHost: assetsHost,
		Log:        logger,
	}
}
