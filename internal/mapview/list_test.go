package mapview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskmonitor/internal/domain/entity"
)

func TestBuildList(t *testing.T) {
	now := time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
	alerts := []entity.Alert{
		{ID: 1, Title: "Flood Risk", RiskLevel: entity.RiskHigh, Timestamp: now.Add(-3 * time.Hour)},
		{ID: 2, Title: "Fallen tree", RiskLevel: entity.RiskLow, Timestamp: now.Add(-2 * time.Minute)},
	}

	items := BuildList(alerts, time.UTC, now)

	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, BadgeHigh, items[0].BadgeClass)
	assert.Equal(t, "High", items[0].RiskLabel)
	assert.Equal(t, "3 hours ago", items[0].Age)
	assert.Equal(t, "01/05/2024 12:00", items[0].FormattedTimestamp)
	assert.Equal(t, "2 minutes ago", items[1].Age)

	assert.Empty(t, BuildList(nil, time.UTC, now))
	assert.NotNil(t, BuildList(nil, time.UTC, now))
}
