package matches

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordForUsesOutcomeResolver(t *testing.T) {
	ms := []Match{
		scored(fixture("1", "Round 1"), 3, 1),
		scored(fixture("2", "Round 1"), 0, 0),
		scored(fixture("3", "Round 2"), 1, 2),
		fixture("4", "Round 3"),
	}
	other := fixture("5", "Round 1")
	other.Player1.ID, other.Player2.ID = "30", "40"
	ms = append(ms, other)

	r := RecordFor(ms, "10")
	assert.Equal(t, Record{Total: 4, Completed: 3, Pending: 1, Won: 1, Lost: 1, Drawn: 1}, r)
	assert.Equal(t, 3, GamesPlayed(ms, "10"))
	assert.Equal(t, 0, GamesPlayed(ms, "99"))

	completed, pending := Partition(ms)
	assert.Len(t, completed, 3)
	assert.Len(t, pending, 2)
}

func TestMatchDecodesUpstreamShape(t *testing.T) {
	raw := `{
		"id": 7,
		"player1": {"id": 10, "name": "Bertin", "points": 7},
		"player2": {"id": 20, "name": "Norbert", "points": 6},
		"round": "Round 2",
		"scheduledDate": [2025, 3, 1],
		"deadlineDate": "2025-03-08",
		"scorePlayer1": null,
		"scorePlayer2": null,
		"winner": null
	}`
	var m Match
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	assert.Equal(t, "7", m.ID.String())
	assert.Equal(t, "10", m.Player1.ID.String())
	require.NotNil(t, m.ScheduledDate)
	assert.Equal(t, "2025-03-01", m.ScheduledDate.String())
	assert.Equal(t, "2025-03-08", m.DeadlineDate.String())
	assert.False(t, HasRecordedScore(m))

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"scheduledDate":"2025-03-01"`)
	assert.Contains(t, string(out), `"id":7`)
}
