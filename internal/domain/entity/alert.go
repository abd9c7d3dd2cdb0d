// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"math"
	"strings"
	"time"
)

// RiskLevel is the severity classification that drives colour-coding.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ParseRiskLevel trims and lower-cases raw input; anything outside the
// known levels becomes medium.
func ParseRiskLevel(raw string) RiskLevel {
	level := RiskLevel(strings.ToLower(strings.TrimSpace(raw)))
	if level.Valid() {
		return level
	}

	return RiskMedium
}

// Valid reports whether the level is one of low, medium or high.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both coordinates are finite and in range.
func (l Location) Valid() bool {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lng) || math.IsInf(l.Lat, 0) || math.IsInf(l.Lng, 0) {
		return false
	}

	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Alert is a georeferenced hazard report. This is also its persisted form.
type Alert struct {
	ID          int64     `json:"id"`          // Creation time in milliseconds, bumped on collision.
	Title       string    `json:"title"`       // Trimmed, never empty.
	Description string    `json:"description"` // Trimmed, never empty.
	RiskLevel   RiskLevel `json:"riskLevel"`   // Always one of the known levels once stored.
	Radius      float64   `json:"radius"`      // Zone radius in metres.
	Location    Location  `json:"location"`    // Set at creation, changed only by repositioning.
	Timestamp   time.Time `json:"timestamp"`   // Creation time, immutable.
}

// AlertDraft is the unvalidated input of a create.
type AlertDraft struct {
	Title       string
	Description string
	RiskLevel   string
}

// AlertPatch is the unvalidated input of an update. Nil pointers leave the
// stored value untouched.
type AlertPatch struct {
	Title       string
	Description string
	RiskLevel   string
	Radius      *float64
	Location    *Location
}

// NormalizeAlertText trims title and description. problem names the empty
// fields ("title must not be empty") and is empty when both are present.
func NormalizeAlertText(title, description string) (string, string, string) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	var missing []string
	if title == "" {
		missing = append(missing, "title")
	}
	if description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return title, description, strings.Join(missing, " and ") + " must not be empty"
	}

	return title, description, ""
}

// ClampRadius bounds requested to [0, maxRadius]. Non-finite values yield
// fallback unchanged.
func ClampRadius(requested, fallback, maxRadius float64) float64 {
	if math.IsNaN(requested) || math.IsInf(requested, 0) {
		return fallback
	}

	return math.Min(math.Max(requested, 0), maxRadius)
}

// Valid reports whether a stored alert can be shown: it has an id, trimmed
// non-empty text, a known risk level, valid coordinates and a finite,
// non-negative radius.
func (a Alert) Valid() bool {
	if a.ID == 0 || !a.RiskLevel.Valid() || !a.Location.Valid() {
		return false
	}
	if math.IsNaN(a.Radius) || math.IsInf(a.Radius, 0) || a.Radius < 0 {
		return false
	}

	title, description, problem := NormalizeAlertText(a.Title, a.Description)

	return problem == "" && title == a.Title && description == a.Description
}
