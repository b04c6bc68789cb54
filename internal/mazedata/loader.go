package mazedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// Sample returns the raw text of an embedded sample maze, e.g. "corridor".
func Sample(name string) ([]byte, error) {
	content, err := dataFS.ReadFile(path.Join("samples", name+".txt"))
	if err != nil {
		return nil, fmt.Errorf("unknown sample maze %q: %w", name, err)
	}
	return content, nil
}

// Samples lists the names of the embedded sample mazes.
func Samples() []string {
	entries, err := fs.ReadDir(dataFS, "samples")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}
