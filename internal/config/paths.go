package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths centralizes the directories used by the conversion pipelines
// and the dataset API.
type Paths struct {
	DataDir      string
	WorkbooksDir string
	DatasetsDir  string
	LogsDir      string
}

// NewPaths resolves the configured directories into a Paths instance.
func NewPaths(cfg PathsConfig) *Paths {
	return &Paths{
		DataDir:      cfg.DataDir,
		WorkbooksDir: cfg.WorkbooksDir,
		DatasetsDir:  cfg.DatasetsDir,
		LogsDir:      cfg.LogsDir,
	}
}

// EnsureDirectories creates all required directories if missing.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.DataDir, p.WorkbooksDir, p.DatasetsDir, p.LogsDir}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DatasetPath returns the path of a generated dataset file by name.
func (p *Paths) DatasetPath(name string) string {
	return filepath.Join(p.DatasetsDir, name)
}

// WorkbookPath returns the path of an input workbook by name.
func (p *Paths) WorkbookPath(name string) string {
	return filepath.Join(p.WorkbooksDir, name)
}

// GetLogPath returns the path of a log file by name.
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}
