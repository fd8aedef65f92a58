package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const manifestMaxRuns = 20

// Manifest tracks recent pipeline runs under the state directory.
type Manifest struct {
	Version     int        `json:"version"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Runs        []LoadInfo `json:"runs"`
}

func defaultRunManifest() Manifest {
	return Manifest{
		Version: 1,
		Runs:    []LoadInfo{},
	}
}

func manifestPath(stateDir, pipeline string) string {
	return filepath.Join(stateDir, pipeline, "manifest.json")
}

func readRunManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultRunManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultRunManifest(), err
	}
	return m, nil
}

// writeRunManifest appends the run to the pipeline's manifest, pruning to the
// most recent runs, and writes it atomically via tmp+rename.
func writeRunManifest(stateDir string, info LoadInfo) error {
	path := manifestPath(stateDir, info.Pipeline)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	m, _ := readRunManifest(path)
	m.Runs = append(m.Runs, info)
	if len(m.Runs) > manifestMaxRuns {
		m.Runs = m.Runs[len(m.Runs)-manifestMaxRuns:]
	}
	m.GeneratedAt = time.Now().UTC()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
