package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"riskmonitor/internal/domain/entity"
)

func TestZoneColor(t *testing.T) {
	assert.Equal(t, "#22c55e", ZoneColor(entity.RiskLow))
	assert.Equal(t, "#eab308", ZoneColor(entity.RiskMedium))
	assert.Equal(t, "#ef4444", ZoneColor(entity.RiskHigh))
	assert.Equal(t, "#ef4444", ZoneColor("HIGH"))
	assert.Equal(t, "#3b82f6", ZoneColor("extreme"))
	assert.Equal(t, "#3b82f6", ZoneColor(""))
}

func TestBadgeClass(t *testing.T) {
	assert.Equal(t, "bg-green-100 text-green-800", BadgeClass(entity.RiskLow))
	assert.Equal(t, "bg-yellow-100 text-yellow-800", BadgeClass(entity.RiskMedium))
	assert.Equal(t, "bg-red-100 text-red-800", BadgeClass(entity.RiskHigh))
	assert.Equal(t, "bg-gray-100 text-gray-800", BadgeClass("unknown"))
}

func TestRiskLabel(t *testing.T) {
	assert.Equal(t, "High", RiskLabel(entity.RiskHigh))
	assert.Equal(t, "Medium", RiskLabel("MEDIUM"))
	assert.Equal(t, "", RiskLabel(""))
}
