package mapview

import (
	"time"

	"riskmonitor/internal/domain/entity"

	"github.com/dustin/go-humanize"
)

// ListItem is one row of the alert list.
type ListItem struct {
	entity.Alert

	BadgeClass         string `json:"badgeClass"`
	RiskLabel          string `json:"riskLabel"`
	Age                string `json:"age"`
	FormattedTimestamp string `json:"formattedTimestamp"`
}

// BuildList renders alerts for the list view, keeping collection order
func BuildList(alerts []entity.Alert, loc *time.Location, now time.Time) []ListItem {
	items := make([]ListItem, 0, len(alerts))
	for _, alert := range alerts {
		items = append(items, ListItem{
			Alert:              alert,
			BadgeClass:         BadgeClass(alert.RiskLevel),
			RiskLabel:          RiskLabel(alert.RiskLevel),
			Age:                humanize.RelTime(alert.Timestamp, now, "ago", "from now"),
			FormattedTimestamp: FormatTimestamp(alert.Timestamp, loc),
		})
	}

	return items
}
