// Package observability tracks process self-metrics surfaced by the ping
// command.
package observability

import (
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// StatusSnapshot aggregates the metrics rendered by ping.
type StatusSnapshot struct {
	RSSMb           uint64
	Goroutines      int
	Uptime          time.Duration
	CommandsHandled uint64
	CommandsFailed  uint64
}

type StatusCollector struct {
	startedAt time.Time
	proc      *process.Process

	commandsHandled uint64
	commandsFailed  uint64
}

func NewStatusCollector() *StatusCollector {
	// Self-stats fall back to zero when the process handle is unavailable.
	proc, _ := process.NewProcess(int32(os.Getpid()))
	return &StatusCollector{startedAt: time.Now(), proc: proc}
}

func (c *StatusCollector) IncrHandled() {
	atomic.AddUint64(&c.commandsHandled, 1)
}

func (c *StatusCollector) IncrFailed() {
	atomic.AddUint64(&c.commandsFailed, 1)
}

// Snapshot collects the current self-stats. Collection errors leave the
// corresponding field at zero rather than failing the caller.
func (c *StatusCollector) Snapshot() StatusSnapshot {
	snapshot := StatusSnapshot{
		Goroutines:      runtime.NumGoroutine(),
		Uptime:          time.Since(c.startedAt),
		CommandsHandled: atomic.LoadUint64(&c.commandsHandled),
		CommandsFailed:  atomic.LoadUint64(&c.commandsFailed),
	}
	if c.proc == nil {
		return snapshot
	}
	if memInfo, err := c.proc.MemoryInfo(); err == nil {
		snapshot.RSSMb = memInfo.RSS / (1 << 20)
	}
	return snapshot
}
