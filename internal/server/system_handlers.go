package server

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/aristath/energyintel/internal/clientdata"
	"github.com/aristath/energyintel/internal/di"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemHandlers handles system monitoring endpoints
type SystemHandlers struct {
	container *di.Container
	startedAt time.Time
	log       zerolog.Logger
}

// NewSystemHandlers creates a new system handlers instance
func NewSystemHandlers(container *di.Container, log zerolog.Logger) *SystemHandlers {
	return &SystemHandlers{
		container: container,
		startedAt: time.Now(),
		log:       log.With().Str("handler", "system").Logger(),
	}
}

// SystemStatusResponse represents the system status response
type SystemStatusResponse struct {
	Status           string                  `json:"status"` // "healthy" or "degraded"
	UptimeSeconds    int64                   `json:"uptime_seconds"`
	CPUPercent       float64                 `json:"cpu_percent"`
	MemoryPercent    float64                 `json:"memory_percent"`
	Goroutines       int                     `json:"goroutines"`
	CacheDB          string                  `json:"cache_db"`
	CacheTables      []clientdata.TableStats `json:"cache_tables,omitempty"`
	SnapshotAge      *float64                `json:"snapshot_age_seconds"`   // nil before the first refresh
	NewsCacheAge     *float64                `json:"news_cache_age_seconds"` // nil when nothing is cached
	LastMarketUpdate string                  `json:"last_market_update"`
}

// HandleSystemStatus handles GET /api/system/status
func (h *SystemHandlers) HandleSystemStatus(w http.ResponseWriter, r *http.Request) {
	h.log.Debug().Msg("Getting system status")

	cpuPercent, memPercent := h.getSystemStats()

	response := SystemStatusResponse{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(h.startedAt).Seconds()),
		CPUPercent:    cpuPercent,
		MemoryPercent: memPercent,
		Goroutines:    runtime.NumGoroutine(),
		CacheDB:       "ok",
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.container.CacheDB.HealthCheck(ctx); err != nil {
		h.log.Warn().Err(err).Msg("Cache database health check failed")
		response.Status = "degraded"
		response.CacheDB = err.Error()
	} else if stats, err := h.container.ClientDataRepo.Stats(); err != nil {
		h.log.Warn().Err(err).Msg("Failed to count cache entries")
	} else {
		response.CacheTables = stats
	}

	if age, ok := h.container.MarketSnapshot.Age(); ok {
		seconds := age.Seconds()
		response.SnapshotAge = &seconds
	}
	if age, ok := h.container.NewsEngine.CacheAge(); ok {
		seconds := age.Seconds()
		response.NewsCacheAge = &seconds
	}
	response.LastMarketUpdate = h.container.MarketSnapshot.LastUpdate()

	h.writeJSON(w, http.StatusOK, response)
}

// HandleJobs handles GET /api/system/jobs
func (h *SystemHandlers) HandleJobs(w http.ResponseWriter, r *http.Request) {
	jobs := h.container.Scheduler.Jobs()
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// getSystemStats returns CPU and RAM usage percentages.
// CPU is sampled over 100ms so the call stays fast.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}

// writeJSON writes a JSON response
func (h *SystemHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
