package actions

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/anchor/internal/cli"
	"github.com/julianstephens/anchor/internal/constants"
	"github.com/julianstephens/anchor/internal/mood"
	"github.com/julianstephens/anchor/internal/records"
)

// exportedRecord is one record as stored. Value is kept verbatim; text that
// is not valid JSON is exported as a string.
type exportedRecord struct {
	Key    string          `json:"key"`
	Source string          `json:"source"`
	Value  json.RawMessage `json:"value"`
}

type exportDoc struct {
	Version    string           `json:"version"`
	ExportedAt time.Time        `json:"exportedAt"`
	CheckIn    string           `json:"checkIn,omitempty"`
	Mood       string           `json:"mood"`
	Records    []exportedRecord `json:"records"`
}

type ExportCmd struct {
	Output string `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	doc := exportDoc{
		Version:    constants.Version,
		ExportedAt: ctx.Now(),
		Records:    []exportedRecord{},
	}

	raw, _ := mood.ReadLatest(ctx.Store)
	doc.CheckIn = raw
	doc.Mood = mood.Normalize(raw).String()

	for _, keys := range constants.RecordKeys {
		raw, src := records.ReadRaw(ctx.Store, keys)
		if src == records.SourceNone {
			continue
		}
		key := keys.Current
		if src == records.SourceLegacy {
			key = keys.Legacy
		}
		doc.Records = append(doc.Records, exportedRecord{Key: key, Source: src.String(), Value: asJSON(raw)})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	data = append(data, '\n')

	if c.Output == "" {
		_, err := ctx.Stdout().Write(data)
		return err
	}
	if err := os.WriteFile(c.Output, data, 0600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	ctx.Printf("✓ Exported %d record(s) to %s\n", len(doc.Records), c.Output)
	return nil
}

func asJSON(raw string) json.RawMessage {
	if json.Valid([]byte(raw)) {
		return json.RawMessage(raw)
	}
	quoted, _ := json.Marshal(raw)
	return quoted
}
