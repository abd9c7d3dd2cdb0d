package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRiskLevel(t *testing.T) {
	tests := []struct {
		input string
		want  RiskLevel
	}{
		{input: "low", want: RiskLow},
		{input: " HIGH ", want: RiskHigh},
		{input: "HIGH ", want: RiskHigh},
		{input: "Medium", want: RiskMedium},
		{input: "extreme", want: RiskMedium},
		{input: "", want: RiskMedium},
		{input: "\tlow\n", want: RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRiskLevel(tt.input))
		})
	}
}

func TestLocationValid(t *testing.T) {
	assert.True(t, Location{Lat: -27.5969, Lng: -48.5495}.Valid())
	assert.True(t, Location{Lat: 90, Lng: -180}.Valid())
	assert.False(t, Location{Lat: 90.1, Lng: 0}.Valid())
	assert.False(t, Location{Lat: 0, Lng: 180.5}.Valid())
	assert.False(t, Location{Lat: math.NaN(), Lng: 0}.Valid())
	assert.False(t, Location{Lat: 0, Lng: math.Inf(1)}.Valid())
}

func TestNormalizeAlertText(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		wantProblem string
	}{
		{name: "both present", title: "  Flood ", description: " River\n", wantProblem: ""},
		{name: "blank title", title: "   ", description: "d", wantProblem: "title must not be empty"},
		{name: "blank description", title: "t", description: "", wantProblem: "description must not be empty"},
		{name: "both blank", title: "", description: "\t", wantProblem: "title and description must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, description, problem := NormalizeAlertText(tt.title, tt.description)
			assert.Equal(t, tt.wantProblem, problem)
			if problem == "" {
				assert.Equal(t, "Flood", title)
				assert.Equal(t, "River", description)
			}
		})
	}
}

func TestClampRadius(t *testing.T) {
	assert.Equal(t, 30.0, ClampRadius(30, 50, 1000))
	assert.Equal(t, 0.0, ClampRadius(-5, 50, 1000))
	assert.Equal(t, 1000.0, ClampRadius(5000, 50, 1000))
	assert.Equal(t, 50.0, ClampRadius(math.NaN(), 50, 1000))
	assert.Equal(t, 75.0, ClampRadius(math.Inf(-1), 75, 1000))
}

func TestAlertValid(t *testing.T) {
	good := Alert{ID: 1, Title: "Flood", Description: "River", RiskLevel: RiskHigh, Radius: 50}

	tests := []struct {
		name   string
		mutate func(a *Alert)
		want   bool
	}{
		{name: "well formed", mutate: func(*Alert) {}, want: true},
		{name: "zero value", mutate: func(a *Alert) { *a = Alert{} }, want: false},
		{name: "missing id", mutate: func(a *Alert) { a.ID = 0 }, want: false},
		{name: "empty title", mutate: func(a *Alert) { a.Title = "" }, want: false},
		{name: "untrimmed description", mutate: func(a *Alert) { a.Description = " River" }, want: false},
		{name: "unknown risk level", mutate: func(a *Alert) { a.RiskLevel = "extreme" }, want: false},
		{name: "negative radius", mutate: func(a *Alert) { a.Radius = -1 }, want: false},
		{name: "non-finite radius", mutate: func(a *Alert) { a.Radius = math.NaN() }, want: false},
		{name: "coordinates out of range", mutate: func(a *Alert) { a.Location.Lat = 91 }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := good
			tt.mutate(&a)
			assert.Equal(t, tt.want, a.Valid())
		})
	}
}
