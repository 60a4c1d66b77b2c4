package stats

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"
)

// Report holds everything collected during one map build.
type Report struct {
	StartTime    time.Time
	EndTime      time.Time
	TotalElapsed time.Duration
	Samples      []Sample
	Phases       []Phase
	Map          []Field
	Summary      Summary
}

// Sample is a single reading of runtime and process stats.
type Sample struct {
	Timestamp      time.Time
	ElapsedSeconds float64

	HeapAlloc       uint64
	HeapSys         uint64
	Sys             uint64
	NumGC           uint32
	ProcessRSSBytes uint64

	CPUPercent   float64
	SystemCPU    []float64
	NumGoroutine int
}

// Phase marks the end of a build step.
type Phase struct {
	Name      string
	Elapsed   time.Duration
	HeapAlloc uint64
}

// Field is a free-form line of the MAP section, such as a node count.
type Field struct {
	Key   string
	Value string
}

type Summary struct {
	PeakHeapAlloc  uint64
	PeakSys        uint64
	PeakProcessRSS uint64
	PeakCPUPercent float64
	AvgCPUPercent  float64
	PeakGoroutines int
	TotalGCCycles  uint32
	SampleCount    int
	SampleInterval time.Duration
}

// Collector samples the process in the background while a map is built.
type Collector struct {
	mu        sync.Mutex
	report    Report
	startTime time.Time
	stopChan  chan struct{}
	doneChan  chan struct{}
	interval  time.Duration
	proc      *process.Process
}

func NewCollector(interval time.Duration) (*Collector, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to get process info: %w", err)
	}

	return &Collector{
		report: Report{
			Samples: make([]Sample, 0, 256),
		},
		interval: interval,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
		proc:     proc,
	}, nil
}

func (c *Collector) Start() {
	c.startTime = time.Now()
	c.report.StartTime = c.startTime

	go c.collect()
}

func (c *Collector) collect() {
	defer close(c.doneChan)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.sample()
	for {
		select {
		case <-c.stopChan:
			c.sample()
			return
		case <-ticker.C:
			c.sample()
		}
	}
}

func (c *Collector) sample() {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	point := Sample{
		Timestamp:      time.Now(),
		ElapsedSeconds: time.Since(c.startTime).Seconds(),
		HeapAlloc:      memStats.HeapAlloc,
		HeapSys:        memStats.HeapSys,
		Sys:            memStats.Sys,
		NumGC:          memStats.NumGC,
		NumGoroutine:   runtime.NumGoroutine(),
	}

	if memInfo, err := c.proc.MemoryInfo(); err == nil && memInfo != nil {
		point.ProcessRSSBytes = memInfo.RSS
	}
	if cpuPercent, err := c.proc.CPUPercent(); err == nil {
		point.CPUPercent = cpuPercent
	}
	if systemCPU, err := cpu.Percent(0, true); err == nil {
		point.SystemCPU = systemCPU
	}

	c.mu.Lock()
	c.report.Samples = append(c.report.Samples, point)
	c.mu.Unlock()
}

// Mark records the end of a named build phase.
func (c *Collector) Mark(name string) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.report.Phases = append(c.report.Phases, Phase{
		Name:      name,
		Elapsed:   time.Since(c.startTime),
		HeapAlloc: memStats.HeapAlloc,
	})
}

// Annotate adds a line to the MAP section of the report.
func (c *Collector) Annotate(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.report.Map = append(c.report.Map, Field{Key: key, Value: fmt.Sprint(value)})
}

// Stop ends sampling and returns the final report.
func (c *Collector) Stop() Report {
	close(c.stopChan)
	<-c.doneChan

	c.mu.Lock()
	defer c.mu.Unlock()

	c.report.EndTime = time.Now()
	c.report.TotalElapsed = c.report.EndTime.Sub(c.report.StartTime)
	c.report.Summary = summarize(c.report.Samples, c.interval)

	return c.report
}

func summarize(samples []Sample, interval time.Duration) Summary {
	sum := Summary{
		SampleCount:    len(samples),
		SampleInterval: interval,
	}
	if len(samples) == 0 {
		return sum
	}

	var totalCPU float64
	for _, s := range samples {
		sum.PeakHeapAlloc = max(sum.PeakHeapAlloc, s.HeapAlloc)
		sum.PeakSys = max(sum.PeakSys, s.Sys)
		sum.PeakProcessRSS = max(sum.PeakProcessRSS, s.ProcessRSSBytes)
		sum.PeakCPUPercent = max(sum.PeakCPUPercent, s.CPUPercent)
		sum.PeakGoroutines = max(sum.PeakGoroutines, s.NumGoroutine)
		sum.TotalGCCycles = max(sum.TotalGCCycles, s.NumGC)
		totalCPU += s.CPUPercent
	}
	sum.AvgCPUPercent = totalCPU / float64(len(samples))
	return sum
}

// LogValue lets a report be logged as a single slog attribute.
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("elapsed", r.TotalElapsed),
		slog.String("peak_heap", formatBytes(r.Summary.PeakHeapAlloc)),
		slog.String("peak_rss", formatBytes(r.Summary.PeakProcessRSS)),
		slog.Float64("avg_cpu", r.Summary.AvgCPUPercent),
		slog.Int("samples", r.Summary.SampleCount),
	)
}

const rule = "--------------------------------------------------------------------------------\n"

// SaveToFile writes the report as plain text.
func (r *Report) SaveToFile(filename string) error {
	var sb strings.Builder

	sb.WriteString("MAP BUILD REPORT\n")
	sb.WriteString(rule)
	fmt.Fprintf(&sb, "  Start Time:      %s\n", r.StartTime.Format(time.RFC3339))
	fmt.Fprintf(&sb, "  End Time:        %s\n", r.EndTime.Format(time.RFC3339))
	fmt.Fprintf(&sb, "  Total Duration:  %s\n\n", r.TotalElapsed)

	if len(r.Map) > 0 {
		sb.WriteString("MAP\n")
		sb.WriteString(rule)
		for _, f := range r.Map {
			fmt.Fprintf(&sb, "  %-20s %s\n", f.Key+":", f.Value)
		}
		sb.WriteString("\n")
	}

	if len(r.Phases) > 0 {
		sb.WriteString("PHASES\n")
		sb.WriteString(rule)
		for _, p := range r.Phases {
			fmt.Fprintf(&sb, "  %-20s %-14s heap %s\n", p.Name, p.Elapsed.Round(time.Millisecond), formatBytes(p.HeapAlloc))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("SUMMARY\n")
	sb.WriteString(rule)
	fmt.Fprintf(&sb, "  Samples:             %d every %s\n", r.Summary.SampleCount, r.Summary.SampleInterval)
	fmt.Fprintf(&sb, "  Peak Heap:           %s\n", formatBytes(r.Summary.PeakHeapAlloc))
	fmt.Fprintf(&sb, "  Peak System:         %s\n", formatBytes(r.Summary.PeakSys))
	fmt.Fprintf(&sb, "  Peak RSS:            %s\n", formatBytes(r.Summary.PeakProcessRSS))
	fmt.Fprintf(&sb, "  Peak CPU:            %.2f%%\n", r.Summary.PeakCPUPercent)
	fmt.Fprintf(&sb, "  Average CPU:         %.2f%%\n", r.Summary.AvgCPUPercent)
	fmt.Fprintf(&sb, "  Peak Goroutines:     %d\n", r.Summary.PeakGoroutines)
	fmt.Fprintf(&sb, "  GC Cycles:           %d\n\n", r.Summary.TotalGCCycles)

	const maxSamples = 50
	samples := r.Samples
	if len(samples) > maxSamples {
		samples = make([]Sample, 0, maxSamples)
		step := float64(len(r.Samples)-1) / float64(maxSamples-1)
		for i := 0; i < maxSamples; i++ {
			samples = append(samples, r.Samples[int(float64(i)*step)])
		}
	}

	sb.WriteString("SAMPLES\n")
	sb.WriteString(rule)
	fmt.Fprintf(&sb, "%-12s %-14s %-14s %-10s %-10s\n", "Elapsed(s)", "Heap Alloc", "Process RSS", "CPU %", "Goroutines")
	for _, s := range samples {
		fmt.Fprintf(&sb, "%-12.1f %-14s %-14s %-10.1f %-10d\n",
			s.ElapsedSeconds,
			formatBytes(s.HeapAlloc),
			formatBytes(s.ProcessRSSBytes),
			s.CPUPercent,
			s.NumGoroutine)
	}

	if err := os.WriteFile(filename, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}
	return nil
}

func formatBytes(bytes uint64) string {
	return humanize.IBytes(bytes)
}
