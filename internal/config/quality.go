package config

import (
	"math"
	"sync"
)

const (
	defaultMapSize = 4096
	minMapSize     = 64
	maxMapSize     = 16384
)

// QualitySettings holds baking and mesh quality configuration
type QualitySettings struct {
	mu                 sync.RWMutex
	mapWidth           int
	mapHeight          int
	subdivisionQuality int
	decimateRatio      float64
	renderLevels       int
}

var globalQualitySettings = &QualitySettings{
	mapWidth:           defaultMapSize,
	mapHeight:          defaultMapSize,
	subdivisionQuality: 10,   // okay quality, up to 12
	decimateRatio:      0.25, // fraction of faces kept
	renderLevels:       8,
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetDisplacementMapSize returns the baked displacement image dimensions
func GetDisplacementMapSize() (width, height int) {
	globalQualitySettings.mu.RLock()
	defer globalQualitySettings.mu.RUnlock()
	return globalQualitySettings.mapWidth, globalQualitySettings.mapHeight
}

// SetDisplacementMapSize sets the baked image dimensions
func SetDisplacementMapSize(width, height int) {
	globalQualitySettings.mu.Lock()
	defer globalQualitySettings.mu.Unlock()
	globalQualitySettings.mapWidth = clampInt(width, minMapSize, maxMapSize)
	globalQualitySettings.mapHeight = clampInt(height, minMapSize, maxMapSize)
}

// GetSubdivisionQuality returns the subdivision level applied to the exported model
func GetSubdivisionQuality() int {
	globalQualitySettings.mu.RLock()
	defer globalQualitySettings.mu.RUnlock()
	return globalQualitySettings.subdivisionQuality
}

// SetSubdivisionQuality sets the model subdivision level
func SetSubdivisionQuality(level int) {
	globalQualitySettings.mu.Lock()
	defer globalQualitySettings.mu.Unlock()
	globalQualitySettings.subdivisionQuality = clampInt(level, 1, 12)
}

// GetDecimateRatio returns the collapse ratio applied before export
func GetDecimateRatio() float64 {
	globalQualitySettings.mu.RLock()
	defer globalQualitySettings.mu.RUnlock()
	return globalQualitySettings.decimateRatio
}

// SetDecimateRatio sets the collapse ratio
func SetDecimateRatio(ratio float64) {
	globalQualitySettings.mu.Lock()
	defer globalQualitySettings.mu.Unlock()

	if ratio < 0.01 || math.IsNaN(ratio) {
		ratio = 0.01
	}
	if ratio > 1 {
		ratio = 1
	}
	globalQualitySettings.decimateRatio = ratio
}

// GetRenderLevels returns the subdivision level used for renders
func GetRenderLevels() int {
	globalQualitySettings.mu.RLock()
	defer globalQualitySettings.mu.RUnlock()
	return globalQualitySettings.renderLevels
}

// SetRenderLevels sets the render subdivision level
func SetRenderLevels(level int) {
	globalQualitySettings.mu.Lock()
	defer globalQualitySettings.mu.Unlock()
	globalQualitySettings.renderLevels = clampInt(level, 1, 12)
}
