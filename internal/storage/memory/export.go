package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/auraxsim/vitality/internal/model/core"
)

// SessionExport is the root JSON structure written on session end.
type SessionExport struct {
	SessionName string               `json:"sessionName"`
	ServerName  string               `json:"serverName"`
	StartTime   string               `json:"startTime"`
	EndTime     string               `json:"endTime"`
	Entities    []EntityJSON         `json:"entities"`
	Damage      []core.DamageOutcome `json:"damage"`
	Kills       []core.KillEvent     `json:"kills"`
}

// EntityJSON represents a registered entity with its damage history.
type EntityJSON struct {
	ID         uint16               `json:"id"`
	Kind       string               `json:"kind"`
	Name       string               `json:"name"`
	Faction    string               `json:"faction"`
	Definition string               `json:"definition,omitempty"`
	JoinFrame  uint                 `json:"joinFrame"`
	Damage     []core.DamageOutcome `json:"damage"`
}

// exportJSON writes the session data to a JSON file, optionally gzipped.
// Caller holds the lock.
func (b *Backend) exportJSON() error {
	export := b.buildExport()

	// Build filename
	sessionName := strings.ReplaceAll(b.session.Name, " ", "_")
	sessionName = strings.ReplaceAll(sessionName, ":", "_")
	timestamp := b.session.StartTime.Format("20060102_150405")

	var filename string
	if b.cfg.CompressOutput {
		filename = fmt.Sprintf("%s_%s.json.gz", sessionName, timestamp)
	} else {
		filename = fmt.Sprintf("%s_%s.json", sessionName, timestamp)
	}

	outputPath := filepath.Join(b.cfg.OutputDir, filename)

	// Ensure output directory exists
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if b.cfg.CompressOutput {
		if err := writeGzipJSON(outputPath, export); err != nil {
			return err
		}
	} else {
		if err := writeJSON(outputPath, export); err != nil {
			return err
		}
	}

	b.lastExportPath = outputPath
	return nil
}

func (b *Backend) buildExport() SessionExport {
	export := SessionExport{
		SessionName: b.session.Name,
		ServerName:  b.session.ServerName,
		StartTime:   b.session.StartTime.UTC().Format("2006-01-02T15:04:05Z"),
		Damage:      b.damage,
		Kills:       b.kills,
	}
	if !b.session.EndTime.IsZero() {
		export.EndTime = b.session.EndTime.UTC().Format("2006-01-02T15:04:05Z")
	}

	for _, rec := range b.entities {
		export.Entities = append(export.Entities, EntityJSON{
			ID:         rec.Entity.ObjectID,
			Kind:       rec.Entity.EntityKind.String(),
			Name:       rec.Entity.Name,
			Faction:    rec.Entity.Faction.String(),
			Definition: rec.Entity.Definition,
			JoinFrame:  rec.Entity.JoinFrame,
			Damage:     rec.Damage,
		})
	}

	return export
}

func writeJSON(path string, export SessionExport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

func writeGzipJSON(path string, export SessionExport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	enc := json.NewEncoder(gz)
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}
