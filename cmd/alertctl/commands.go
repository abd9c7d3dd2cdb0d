package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"riskmonitor/config"
	"riskmonitor/internal/domain/constants"
	"riskmonitor/internal/domain/entity"
	"riskmonitor/internal/domain/repository"

	"github.com/pkg/errors"
)

// problem is one record that failed validation. Index -1 means the whole
// collection.
type problem struct {
	Index  int
	ID     int64
	Reason string
}

// report summarises an import or a check
type report struct {
	Total      int
	Valid      int
	Normalised int
	Problems   []problem
}

type importer struct {
	defaultRadius float64
	maxRadius     float64
	now           func() time.Time
}

func newImporter(cfg *config.Config) *importer {
	imp := &importer{defaultRadius: 50, maxRadius: 1000, now: time.Now}
	if cfg != nil && cfg.Alerts != nil {
		imp.defaultRadius = cfg.Alerts.DefaultRadius
		imp.maxRadius = cfg.Alerts.MaxRadius
	}

	return imp
}

// exportAlerts writes the collection as indented JSON
func exportAlerts(ctx context.Context, store repository.AlertStore, w io.Writer) (int, error) {
	alerts, err := store.LoadAlerts(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load alerts")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(alerts); err != nil {
		return 0, errors.Wrap(err, "failed to write alerts")
	}

	return len(alerts), nil
}

// Import replaces the collection with the valid records of data. Records
// that cannot be repaired are skipped and reported.
func (imp *importer) Import(ctx context.Context, store repository.AlertStore, data []byte, dryRun bool) (*report, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, errors.Wrap(err, "input is not a JSON array")
	}

	rep := &report{Total: len(raws)}
	alerts := make([]entity.Alert, 0, len(raws))
	seen := make(map[int64]bool, len(raws))

	for i, raw := range raws {
		var alert entity.Alert
		if err := json.Unmarshal(raw, &alert); err != nil {
			rep.Problems = append(rep.Problems, problem{Index: i, Reason: "malformed record"})

			continue
		}

		normalised, reason := imp.normalise(alert)
		if reason != "" {
			rep.Problems = append(rep.Problems, problem{Index: i, ID: alert.ID, Reason: reason})

			continue
		}

		if normalised.ID > 0 {
			if seen[normalised.ID] {
				rep.Problems = append(rep.Problems, problem{Index: i, ID: alert.ID, Reason: "duplicate id"})

				continue
			}
			seen[normalised.ID] = true
		}

		if normalised != alert {
			rep.Normalised++
		}
		alerts = append(alerts, normalised)
	}

	imp.assignMissing(alerts)
	rep.Valid = len(alerts)

	if dryRun {
		return rep, nil
	}

	if err := store.SaveAlerts(ctx, alerts); err != nil {
		return nil, errors.Wrap(err, "failed to save alerts")
	}

	return rep, nil
}

// Check reads the raw collection and reports every record that the server
// would not have written as is.
func (imp *importer) Check(ctx context.Context, kv repository.KeyValueStore) (*report, error) {
	data, found, err := kv.Get(ctx, constants.KeyAlerts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read alerts")
	}

	rep := &report{}
	if !found || len(bytes.TrimSpace(data)) == 0 {
		return rep, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		rep.Problems = append(rep.Problems, problem{Index: -1, Reason: "collection is not a JSON array, it reads as empty"})

		return rep, nil
	}

	rep.Total = len(raws)
	seen := make(map[int64]bool, len(raws))

	for i, raw := range raws {
		var alert entity.Alert
		if err := json.Unmarshal(raw, &alert); err != nil {
			rep.Problems = append(rep.Problems, problem{Index: i, Reason: "malformed record"})

			continue
		}

		normalised, reason := imp.normalise(alert)
		switch {
		case reason != "":
		case alert.ID <= 0:
			reason = "missing id"
		case seen[alert.ID]:
			reason = "duplicate id"
		case normalised != alert:
			reason = "not normalised"
		}
		seen[alert.ID] = true

		if reason != "" {
			rep.Problems = append(rep.Problems, problem{Index: i, ID: alert.ID, Reason: reason})

			continue
		}
		rep.Valid++
	}

	return rep, nil
}

// normalise applies the create and update rules to a stored record. A
// non-empty reason means the record cannot be repaired.
func (imp *importer) normalise(alert entity.Alert) (entity.Alert, string) {
	var problem string
	alert.Title, alert.Description, problem = entity.NormalizeAlertText(alert.Title, alert.Description)
	if problem != "" {
		return alert, problem
	}
	if !alert.Location.Valid() {
		return alert, "coordinates out of range"
	}

	alert.RiskLevel = entity.ParseRiskLevel(string(alert.RiskLevel))
	alert.Radius = entity.ClampRadius(alert.Radius, imp.defaultRadius, imp.maxRadius)

	return alert, ""
}

// assignMissing gives records without an id one past the largest id, and
// records without a timestamp the import time.
func (imp *importer) assignMissing(alerts []entity.Alert) {
	now := imp.now()

	next := now.UnixMilli()
	for _, alert := range alerts {
		if alert.ID >= next {
			next = alert.ID + 1
		}
	}

	for i := range alerts {
		if alerts[i].ID <= 0 {
			alerts[i].ID = next
			next++
		}
		if alerts[i].Timestamp.IsZero() {
			alerts[i].Timestamp = now
		}
	}
}

func printReport(w io.Writer, rep *report) {
	fmt.Fprintf(w, "Records: %d, valid: %d, normalised: %d\n", rep.Total, rep.Valid, rep.Normalised)

	for _, p := range rep.Problems {
		switch {
		case p.Index < 0:
			fmt.Fprintf(w, "  collection: %s\n", p.Reason)
		case p.ID > 0:
			fmt.Fprintf(w, "  #%d (id %d): %s\n", p.Index, p.ID, p.Reason)
		default:
			fmt.Fprintf(w, "  #%d: %s\n", p.Index, p.Reason)
		}
	}
}
