package batch

import (
	"encoding/json"
	"os"

	"obj-nmdl/internal/polygon"
)

// ManifestEntry represents one converted file in the output manifest.
type ManifestEntry struct {
	Name      string `json:"name"`
	Input     string `json:"input"`
	Output    string `json:"output,omitempty"`
	Preview   string `json:"preview,omitempty"`
	Triangles int    `json:"triangles"`
	Quads     int    `json:"quads"`
	Bytes     int    `json:"bytes"`
	Error     string `json:"error,omitempty"`
}

// WriteManifest writes the batch results as indented JSON.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{
			Name:  r.Name,
			Input: r.Input,
			Error: r.Error,
		}
		if r.Success {
			e.Output = r.Output
			e.Preview = r.Preview
			e.Triangles = r.Stats.Corners[polygon.Triangle] / polygon.Triangle.Corners()
			e.Quads = r.Stats.Corners[polygon.Quad] / polygon.Quad.Corners()
			e.Bytes = r.Stats.OutputSize
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
