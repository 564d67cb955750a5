package client

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures a CPU profile and an execution trace when the update
// rate stays below target for a while.
type Profiler struct {
	mu          sync.Mutex
	capturing   bool
	lastCapture time.Time
	slowSince   time.Time
	started     time.Time

	dir      string
	cooldown time.Duration
	duration time.Duration
	grace    time.Duration
	patience time.Duration

	// threshold is the share of the target rate below which a frame counts as slow
	threshold float64
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &Profiler{
		dir:       dir,
		started:   time.Now(),
		cooldown:  30 * time.Second,
		duration:  5 * time.Second,
		grace:     3 * time.Second,
		patience:  2 * time.Second,
		threshold: 0.75,
	}, nil
}

// Observe feeds one measurement of the actual rate against the target.
// It reports whether a capture was started.
func (p *Profiler) Observe(actual float64, target int, now time.Time, reason string) bool {
	if now.Sub(p.started) < p.grace {
		return false
	}
	if actual >= float64(target)*p.threshold {
		p.slowSince = time.Time{}
		return false
	}
	if p.slowSince.IsZero() {
		p.slowSince = now
		return false
	}
	if now.Sub(p.slowSince) < p.patience {
		return false
	}

	p.slowSince = time.Time{}
	if err := p.Capture(now, fmt.Sprintf("tps%.0f-%s", actual, reason)); err != nil {
		log.Printf("profiler: %v", err)
		return false
	}
	return true
}

// Capture starts a background CPU profile and trace
func (p *Profiler) Capture(now time.Time, reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.capturing {
		return fmt.Errorf("already capturing")
	}
	if !p.lastCapture.IsZero() && now.Sub(p.lastCapture) < p.cooldown {
		return fmt.Errorf("capture on cooldown (last was %v ago)", now.Sub(p.lastCapture).Round(time.Second))
	}
	p.capturing = true
	p.lastCapture = now

	base := fmt.Sprintf("slow-%s-%s", now.Format("20060102-150405"), reason)
	log.Printf("profiler: frame rate dropped, capturing %s", base)

	go func() {
		defer func() {
			p.mu.Lock()
			p.capturing = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPU(base); err != nil {
				log.Printf("profiler: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(base); err != nil {
				log.Printf("profiler: %v", err)
			}
		}()
		wg.Wait()

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		log.Printf("profiler: %s done (heap %d KB, %d GCs); inspect with go tool pprof -http=:8080 %s",
			base, m.HeapAlloc/1024, m.NumGC, filepath.Join(p.dir, base+".cpu.prof"))
	}()
	return nil
}

// Capturing reports whether a capture is in progress
func (p *Profiler) Capturing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capturing
}

func (p *Profiler) captureCPU(base string) error {
	f, err := os.Create(filepath.Join(p.dir, base+".cpu.prof"))
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.duration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(base string) error {
	f, err := os.Create(filepath.Join(p.dir, base+".trace"))
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.duration)
	trace.Stop()
	return nil
}
