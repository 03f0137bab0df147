package config

import (
	"os"
	"sync"
)

// ExportSettings holds where and under which number plan outputs are written
type ExportSettings struct {
	mu     sync.RWMutex
	dir    string
	number int
}

var globalExportSettings = &ExportSettings{
	dir:    os.TempDir(),
	number: 0,
}

// GetExportDir returns the directory export paths are joined onto
func GetExportDir() string {
	globalExportSettings.mu.RLock()
	defer globalExportSettings.mu.RUnlock()
	return globalExportSettings.dir
}

// SetExportDir sets the export directory. Empty values are ignored.
func SetExportDir(dir string) {
	if dir == "" {
		return
	}
	globalExportSettings.mu.Lock()
	defer globalExportSettings.mu.Unlock()
	globalExportSettings.dir = dir
}

// GetNumber returns the render number used to prefix export files
func GetNumber() int {
	globalExportSettings.mu.RLock()
	defer globalExportSettings.mu.RUnlock()
	return globalExportSettings.number
}

// SetNumber sets the render number
func SetNumber(n int) {
	globalExportSettings.mu.Lock()
	defer globalExportSettings.mu.Unlock()

	if n < 0 {
		n = 0
	}
	globalExportSettings.number = n
}

// Reset restores every setting to its default
func Reset() {
	globalExportSettings.mu.Lock()
	globalExportSettings.dir = os.TempDir()
	globalExportSettings.number = 0
	globalExportSettings.mu.Unlock()

	globalQualitySettings.mu.Lock()
	globalQualitySettings.mapWidth = defaultMapSize
	globalQualitySettings.mapHeight = defaultMapSize
	globalQualitySettings.subdivisionQuality = 10
	globalQualitySettings.decimateRatio = 0.25
	globalQualitySettings.renderLevels = 8
	globalQualitySettings.mu.Unlock()
}
