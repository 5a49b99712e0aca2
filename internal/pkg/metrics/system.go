package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

const collectInterval = 15 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "device_cpu_usage_percent",
			Help: "Device CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "device_memory_usage_bytes",
			Help: "Device memory usage in bytes",
		},
	)

	StoreDiskFree = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "device_store_disk_free_bytes",
			Help: "Free space on the volume holding the local store",
		},
	)

	AgentHeapUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "agent_heap_alloc_bytes",
			Help: "Agent Go heap allocation in bytes",
		},
	)

	AgentGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "agent_goroutines",
			Help: "Number of live goroutines in the agent",
		},
	)
)

// StartSystemMetricsCollector samples device metrics until ctx is done.
// storeDir is the directory of the local store file.
func StartSystemMetricsCollector(ctx context.Context, storeDir string) {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for {
			collectSystemMetrics(ctx, storeDir)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func collectSystemMetrics(ctx context.Context, storeDir string) {
	cpuPercent, err := cpu.PercentWithContext(ctx, time.Second, false)
	if err == nil && len(cpuPercent) > 0 {
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err == nil {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	usage, err := disk.UsageWithContext(ctx, storeDir)
	if err == nil {
		StoreDiskFree.Set(float64(usage.Free))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	AgentHeapUsage.Set(float64(m.Alloc))
	AgentGoroutines.Set(float64(runtime.NumGoroutine()))
}
