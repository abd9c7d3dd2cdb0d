// Package mapview holds the presentation rules shared by the map and list
// views: risk colours, map layers, popups and the reconciler that keeps the
// map in step with storage.
package mapview

import (
	"strings"

	"riskmonitor/internal/domain/entity"
)

// Zone colours by risk level
const (
	ColorLow     = "#22c55e"
	ColorMedium  = "#eab308"
	ColorHigh    = "#ef4444"
	ColorDefault = "#3b82f6"

	ZoneFillOpacity = 0.2
)

// Badge classes used by the alert list
const (
	BadgeLow     = "bg-green-100 text-green-800"
	BadgeMedium  = "bg-yellow-100 text-yellow-800"
	BadgeHigh    = "bg-red-100 text-red-800"
	BadgeDefault = "bg-gray-100 text-gray-800"
)

// ZoneColor maps a risk level to its marker and zone colour. Unknown levels
// are blue.
func ZoneColor(level entity.RiskLevel) string {
	switch entity.RiskLevel(strings.ToLower(string(level))) {
	case entity.RiskLow:
		return ColorLow
	case entity.RiskMedium:
		return ColorMedium
	case entity.RiskHigh:
		return ColorHigh
	default:
		return ColorDefault
	}
}

// BadgeClass maps a risk level to the list badge classes
func BadgeClass(level entity.RiskLevel) string {
	switch entity.RiskLevel(strings.ToLower(string(level))) {
	case entity.RiskLow:
		return BadgeLow
	case entity.RiskMedium:
		return BadgeMedium
	case entity.RiskHigh:
		return BadgeHigh
	default:
		return BadgeDefault
	}
}

// RiskLabel capitalises the level for display
func RiskLabel(level entity.RiskLevel) string {
	s := string(level)
	if s == "" {
		return ""
	}

	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
