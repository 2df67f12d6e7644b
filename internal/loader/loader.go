// Package loader reads account snapshots stored as JSON.
//
// Snapshots on disk are captures of a live session. They back the plan
// command and the selector fixtures.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/DrobnyV/ShakesBot/internal/models"
)

// ParseSnapshot decodes one snapshot
func ParseSnapshot(data []byte) (*models.Snapshot, error) {
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	ensureEquipment(&snap)
	return &snap, nil
}

// LoadSnapshot reads the snapshot at path
func LoadSnapshot(path string) (*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	snap, err := ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return snap, nil
}

// LoadSnapshots reads every *.json snapshot in dir, keyed by file name
// without extension. Names are returned sorted.
func LoadSnapshots(dir string) (map[string]*models.Snapshot, []string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read snapshot directory: %w", err)
	}

	snaps := make(map[string]*models.Snapshot)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		snap, err := LoadSnapshot(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, nil, err
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		snaps[name] = snap
		names = append(names, name)
	}
	sort.Strings(names)
	return snaps, names, nil
}

// ensureEquipment replaces a missing equipment object with an empty map
func ensureEquipment(snap *models.Snapshot) {
	if snap.Character.Equipment == nil {
		snap.Character.Equipment = models.Equipment{}
	}
}
