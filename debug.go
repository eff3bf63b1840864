package stage

import "time"

// debugStats holds per-frame render timing.
// Only populated when World.debug is true.
type debugStats struct {
	sortTime    time.Duration
	drawTime    time.Duration
	renderables int
}

// debugLog reports render timing through the world's logger.
func (w *World) debugLog(stats debugStats) {
	if !w.debug {
		return
	}
	w.log.Debug("render",
		"frame", w.frame,
		"renderables", stats.renderables,
		"sort", stats.sortTime,
		"draw", stats.drawTime,
		"total", stats.sortTime+stats.drawTime,
	)
}
