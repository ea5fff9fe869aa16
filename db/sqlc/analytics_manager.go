package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager is the hand-written facade over the generated
// queries; the shells talk to this, not to Queries directly.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementGamesStartedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementGamesStartedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementHumanWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementHumanWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementComputerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementComputerWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementRematchesCalledCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementRematchesCalledCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetMatchAnalytics(ctx context.Context, serverIpNet pqtype.Inet) (MatchAnalytic, error) {
	return a.queries.GetMatchAnalytics(ctx, serverIpNet)
}
