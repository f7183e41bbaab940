package config

import "sync"

// WorldSettings holds the compiled-in world and render tunables. There is
// no configuration surface beyond these accessors.
type WorldSettings struct {
	mu               sync.RWMutex
	chunkRange       int
	chunkSize        int
	queryRingDepth   int
	densityThreshold float32
	worldSeed        int64
	fpsLimit         int
}

var globalSettings = &WorldSettings{
	chunkRange:       4,
	chunkSize:        32,
	queryRingDepth:   5,
	densityThreshold: 0,
	worldSeed:        1337,
	fpsLimit:         0, // 0 = uncapped, vsync governs
}

// GetChunkRange returns the half-extent of the chunk lattice; chunks cover
// [-range, range)^3.
func GetChunkRange() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.chunkRange
}

// SetChunkRange sets the lattice half-extent, clamped to sane values.
func SetChunkRange(r int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	if r < 1 {
		r = 1
	}
	if r > 8 {
		r = 8
	}
	globalSettings.chunkRange = r
}

// GetChunkSize returns the chunk edge length in cells.
func GetChunkSize() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.chunkSize
}

// SetChunkSize sets the chunk edge length, clamped to sane values.
func SetChunkSize(s int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	if s < 4 {
		s = 4
	}
	if s > 64 {
		s = 64
	}
	globalSettings.chunkSize = s
}

// GetQueryRingDepth returns the number of timer queries kept in flight.
func GetQueryRingDepth() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.queryRingDepth
}

// GetDensityThreshold returns the solid threshold of the density field.
func GetDensityThreshold() float32 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.densityThreshold
}

// GetWorldSeed returns the seed of the procedural density field.
func GetWorldSeed() int64 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.worldSeed
}

// GetFPSLimit returns the frame rate cap; 0 disables the limiter.
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap; values below 0 disable the limiter.
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	globalSettings.fpsLimit = limit
}
