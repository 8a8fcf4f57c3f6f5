package players

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/domain"
	"github.com/elevenpool/league-console/internal/domain/matches"
	domainplayers "github.com/elevenpool/league-console/internal/domain/players"
	"github.com/elevenpool/league-console/internal/providers"
	"github.com/elevenpool/league-console/internal/providers/fixture"
)

var creds = auth.Credentials{Token: "admin"}

func newTestService() *Service {
	p := fixture.NewAt(func() time.Time { return time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC) })
	return NewService(p, p, nil, nil)
}

func TestRankingsOrderByPoints(t *testing.T) {
	svc := newTestService()
	ranked, err := svc.Rankings(context.Background(), creds)
	require.NoError(t, err)
	require.Len(t, ranked, 6)
	assert.Equal(t, "Bertin Mugisha", ranked[0].Name)
	assert.Equal(t, 58, ranked[0].WinPercentage)
	assert.Equal(t, 10, ranked[0].GoalDifference)
	assert.Equal(t, 6, ranked[5].Rank)
	assert.Equal(t, 0, ranked[5].WinPercentage)
}

func TestHistoryAllMatchesWithRecord(t *testing.T) {
	svc := newTestService()
	h, err := svc.History(context.Background(), creds, "3", "", "")
	require.NoError(t, err)

	assert.Equal(t, matches.Record{Total: 3, Completed: 2, Pending: 1, Won: 1, Drawn: 1}, h.Record)
	require.Len(t, h.Entries, 3)

	byID := map[domain.ID]Entry{}
	for _, e := range h.Entries {
		byID[e.Match.ID] = e
	}
	assert.Equal(t, matches.OutcomeDraw, byID["12"].Outcome)
	assert.Equal(t, "2 - 2", *byID["12"].Score)
	assert.Equal(t, matches.OutcomeWon, byID["21"].Outcome)
	assert.Equal(t, domain.ID("5"), byID["21"].Opponent.ID)
	assert.Equal(t, matches.OutcomePending, byID["13"].Outcome)
	assert.Nil(t, byID["13"].Score)
}

func TestHistoryFilters(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	pending, err := svc.History(ctx, creds, "3", "Pending", "")
	require.NoError(t, err)
	assert.Equal(t, providers.PlayerMatchesPending, pending.Filter)
	require.Len(t, pending.Entries, 1)
	assert.Equal(t, domain.ID("13"), pending.Entries[0].Match.ID)

	completed, err := svc.History(ctx, creds, "3", "completed", "")
	require.NoError(t, err)
	assert.Len(t, completed.Entries, 2)

	inLeague, err := svc.History(ctx, creds, "3", "completed", "2")
	require.NoError(t, err)
	require.Len(t, inLeague.Entries, 1, "league narrows instead of the filter")
	assert.Equal(t, domain.ID("21"), inLeague.Entries[0].Match.ID)

	_, err = svc.History(ctx, creds, "3", "won", "")
	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "filter", vErr.Field)

	_, err = svc.History(ctx, creds, "", "", "")
	_, ok = domain.AsValidationError(err)
	assert.True(t, ok)
}

func TestCreatePlayer(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, creds, domainplayers.CreateRequest{Name: " Claudine ", Phone: " +250780000009 "})
	require.NoError(t, err)
	assert.Equal(t, "Claudine", p.Name)
	assert.Equal(t, "+250780000009", p.Phone)

	all, err := svc.List(ctx, creds)
	require.NoError(t, err)
	assert.Len(t, all, 7)

	_, err = svc.Create(ctx, creds, domainplayers.CreateRequest{Name: "No Phone"})
	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "phone", vErr.Field)
}
