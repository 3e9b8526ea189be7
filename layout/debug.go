package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON dumps laid-out pages as indented JSON for inspection or
// visualization.
func WriteDebugJSON(pages []Page, path string) error {
	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
