package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/google/pprof/profile"
	"github.com/shirou/gopsutil/process"
)

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.barsMu.Lock()
	statuses := make([]ProgressStatus, len(m.bars))
	for i, b := range m.bars {
		statuses[i] = b.Status()
	}
	m.barsMu.Unlock()

	writeJSON(w, statuses)
}

type resourceRsp struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemorySize    uint64  `json:"memory_size"`
	NumGoroutines int     `json:"num_goroutines"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	dieOnErr(err)

	cpu, err := proc.CPUPercent()
	dieOnErr(err)

	mem, err := proc.MemoryInfo()
	dieOnErr(err)

	writeJSON(w, resourceRsp{
		CPUPercent:    cpu,
		MemorySize:    mem.RSS,
		NumGoroutines: runtime.NumGoroutine(),
	})
}

// collectProfile samples the CPU for one second and returns the parsed
// profile.
func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := new(bytes.Buffer)

	dieOnErr(pprof.StartCPUProfile(buf))
	time.Sleep(time.Second)
	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	writeJSON(w, prof)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	dieOnErr(json.NewEncoder(w).Encode(v))
}

func httpError(w http.ResponseWriter, code int, format string, args ...any) {
	w.WriteHeader(code)
	fmt.Fprintf(w, format, args...)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
