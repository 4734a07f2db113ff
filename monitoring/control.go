package monitoring

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sarchlab/radiosim/sim"
)

type handledCounter interface {
	NumHandled() uint64
}

func (m *Monitor) pauseEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Pause()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) continueEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Continue()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	now := m.engine.CurrentTime()

	counter, ok := m.engine.(handledCounter)
	if !ok {
		fmt.Fprintf(w, `{"now":%.10f}`, now)
		return
	}

	fmt.Fprintf(w, `{"now":%.10f,"events":%d}`, now, counter.NumHandled())
}

func (m *Monitor) run(_ http.ResponseWriter, _ *http.Request) {
	go logStop(m.engine.Run)
}

// runUntil advances the simulation to a time given in seconds.
func (m *Monitor) runUntil(w http.ResponseWriter, r *http.Request) {
	arg := mux.Vars(r)["time"]

	deadline, err := strconv.ParseFloat(arg, 64)
	if err != nil || deadline < 0 {
		httpError(w, http.StatusBadRequest, "invalid time %q", arg)
		return
	}

	go logStop(func() error {
		return m.engine.RunUntil(sim.VTimeInSec(deadline))
	})
}

func logStop(run func() error) {
	err := run()
	if err != nil {
		log.Printf("simulation stopped: %v", err)
	}
}
