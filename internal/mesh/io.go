package mesh

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON reads a TriangleMesh from a JSON file matching the kernel toMesh
// contract: {"positions": [...], "indices": [...]}.
func LoadJSON(path string) (TriangleMesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TriangleMesh{}, err
	}
	var m TriangleMesh
	if err := json.Unmarshal(data, &m); err != nil {
		return TriangleMesh{}, fmt.Errorf("failed to parse mesh %s: %w", path, err)
	}
	for _, idx := range m.Indices {
		if idx < 0 || idx >= len(m.Positions) {
			return TriangleMesh{}, fmt.Errorf("mesh %s: index %d out of range (%d positions)", path, idx, len(m.Positions))
		}
	}
	return m, nil
}

// SaveJSON writes a TriangleMesh as indented JSON.
func SaveJSON(path string, m TriangleMesh) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
