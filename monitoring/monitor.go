// Package monitoring turns a running simulation into a web server that can be
// inspected and controlled.
package monitoring

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sarchlab/radiosim/sim"
)

// Monitor serves the state of a simulation over HTTP. It can also pause and
// resume the engine.
type Monitor struct {
	engine     sim.Engine
	components []sim.Component
	buffers    []sim.Buffer
	gatherer   prometheus.Gatherer
	portNumber int

	barsMu sync.Mutex
	bars   []*ProgressBar
}

// NewMonitor creates a Monitor that listens on a random port.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber fixes the port. Privileged ports are replaced by a random
// one.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		log.Printf("monitor cannot use port %d, using a random port", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterEngine sets the engine that the monitor controls.
func (m *Monitor) RegisterEngine(e sim.Engine) {
	m.engine = e
}

// RegisterGatherer sets the Prometheus gatherer served at /metrics.
func (m *Monitor) RegisterGatherer(g prometheus.Gatherer) {
	m.gatherer = g
}

// RegisterComponent makes a component and its queues visible.
func (m *Monitor) RegisterComponent(c sim.Component) {
	m.components = append(m.components, c)

	if owner, ok := c.(queueOwner); ok {
		m.buffers = append(m.buffers, owner.Queues()...)
	}
}

// CreateProgressBar adds a bar to the progress page.
func (m *Monitor) CreateProgressBar(name string, total uint64) *ProgressBar {
	bar := &ProgressBar{
		id:        sim.GetIDGenerator().Generate(),
		name:      name,
		startTime: time.Now(),
		total:     total,
	}

	m.barsMu.Lock()
	m.bars = append(m.bars, bar)
	m.barsMu.Unlock()

	return bar
}

// CompleteProgressBar removes a bar from the progress page.
func (m *Monitor) CompleteProgressBar(pb *ProgressBar) {
	m.barsMu.Lock()
	defer m.barsMu.Unlock()

	m.bars = slices.DeleteFunc(m.bars, func(b *ProgressBar) bool {
		return b == pb
	})
}

func (m *Monitor) createRouter() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/pause", m.pauseEngine)
	api.HandleFunc("/continue", m.continueEngine)
	api.HandleFunc("/now", m.now)
	api.HandleFunc("/run", m.run)
	api.HandleFunc("/run_until/{time}", m.runUntil)

	api.HandleFunc("/list_components", m.listComponents)
	api.HandleFunc("/component/{name}", m.listComponentDetails)
	api.HandleFunc("/field/{json}", m.listFieldValue)
	api.HandleFunc("/radio/{name}", m.radioStatus)
	api.HandleFunc("/queues", m.listQueues)

	api.HandleFunc("/progress", m.listProgressBars)
	api.HandleFunc("/resource", m.listResources)
	api.HandleFunc("/profile", m.collectProfile)

	if m.gatherer != nil {
		r.Handle("/metrics",
			promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// StartServer serves the monitor in the background and returns its address.
func (m *Monitor) StartServer() string {
	listener, err := net.Listen("tcp", ":"+strconv.Itoa(m.portNumber))
	dieOnErr(err)

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)

	server := &http.Server{
		Handler:           m.createRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		dieOnErr(server.Serve(listener))
	}()

	return url
}
