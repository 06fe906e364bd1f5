// Package seed reads catalogue datasets from JSON files.
//
// A dataset has the same shape as a catalogue snapshot: top-level
// "stations", "genres", "playerApps" and "exportProfiles" arrays with
// lowerCamelCase record fields. Older datasets store sub-genres as one
// comma-separated string; those are split on load.
package seed

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"stationdeck/internal/ads"
	"stationdeck/internal/catalog"
)

// Load reads and decodes the dataset at path.
func Load(path string) (catalog.Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("open seed: %w", err)
	}
	defer file.Close()

	snap, err := Decode(file)
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("seed %s: %w", path, err)
	}
	return snap, nil
}

// Decode parses a dataset.
func Decode(r io.Reader) (catalog.Snapshot, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("read seed: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return catalog.Snapshot{}, fmt.Errorf("seed is empty")
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return catalog.Snapshot{}, fmt.Errorf("decode seed: %w", err)
	}
	for _, key := range []string{"genres", "stations", "exportProfiles"} {
		fixed, err := splitLegacySubGenres(doc[key])
		if err != nil {
			return catalog.Snapshot{}, fmt.Errorf("decode seed %s: %w", key, err)
		}
		if fixed != nil {
			doc[key] = fixed
		}
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return catalog.Snapshot{}, fmt.Errorf("re-encode seed: %w", err)
	}
	var snap catalog.Snapshot
	if err := json.Unmarshal(normalized, &snap); err != nil {
		return catalog.Snapshot{}, fmt.Errorf("decode seed records: %w", err)
	}
	return snap, nil
}

// splitLegacySubGenres rewrites string-valued "subGenres" fields of the
// records in a JSON array into string arrays. It returns nil when the input
// is absent.
func splitLegacySubGenres(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var records []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	for _, record := range records {
		value, ok := record["subGenres"]
		if !ok {
			continue
		}
		var legacy string
		if err := json.Unmarshal(value, &legacy); err != nil {
			continue
		}
		split, err := json.Marshal(catalog.SplitSubGenres(legacy))
		if err != nil {
			return nil, err
		}
		record["subGenres"] = split
	}
	return json.Marshal(records)
}

// NetworkCode returns the network code shared by every player app of the
// dataset, or "" when the apps disagree or carry none.
func NetworkCode(snap catalog.Snapshot) string {
	return ads.DefaultNetworkCode(snap.PlayerApps)
}
