package event_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midhunrajcharles/SyndicateIQ/internal/domain/event"
	"github.com/midhunrajcharles/SyndicateIQ/pkg/events"
)

func TestHighRiskLoansDetected(t *testing.T) {
	e := event.NewHighRiskLoansDetected([]string{"LN-1", "LN-4"}, 2, 5, 40, 52)

	var de events.DomainEvent = e
	assert.Equal(t, event.EventTypeHighRiskLoansDetected, de.EventType())
	assert.Equal(t, event.PortfolioAggregateID, de.AggregateID())
	assert.False(t, de.OccurredAt().IsZero())

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "portfolio.high_risk.detected", decoded["event_type"])
	assert.Equal(t, []any{"LN-1", "LN-4"}, decoded["loan_ids"])
	assert.EqualValues(t, 40, decoded["concentration_pct"])
	assert.NotEmpty(t, decoded["event_id"])
}
