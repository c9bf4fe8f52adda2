package sprig

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-tick timing and counts.
// Only populated when World.debug is true.
type frameStats struct {
	integrateTime time.Duration
	collideTime   time.Duration
	updateTime    time.Duration
	objectCount   int
	contactCount  int
}

// debugLog prints timing and count stats to stderr.
func (w *World) debugLog(stats frameStats) {
	if !w.debug {
		return
	}
	total := stats.integrateTime + stats.collideTime + stats.updateTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[sprig] frame %d | integrate: %v | collide: %v | update: %v | total: %v\n",
		w.frame, stats.integrateTime, stats.collideTime, stats.updateTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[sprig] objects: %d | contacts: %d\n",
		stats.objectCount, stats.contactCount)
}
