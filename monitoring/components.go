package monitoring

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sarchlab/radiosim/phy/medium"
	"github.com/sarchlab/radiosim/sim"
	"github.com/syifan/goseth"
)

func (m *Monitor) listComponents(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, len(m.components))
	for i, c := range m.components {
		names[i] = c.Name()
	}

	writeJSON(w, names)
}

func (m *Monitor) listComponentDetails(w http.ResponseWriter, r *http.Request) {
	component := m.findComponentOr404(w, mux.Vars(r)["name"])
	if component == nil {
		return
	}

	serialize(w, component, nil)
}

// fieldReq selects a field of a component with a dotted path, such as
// "transmitter.power".
type fieldReq struct {
	CompName  string `json:"comp_name,omitempty"`
	FieldName string `json:"field_name,omitempty"`
}

func (m *Monitor) listFieldValue(w http.ResponseWriter, r *http.Request) {
	req := fieldReq{}

	err := json.Unmarshal([]byte(mux.Vars(r)["json"]), &req)
	if err != nil {
		httpError(w, http.StatusBadRequest, "Error: %s", err)
		return
	}

	component := m.findComponentOr404(w, req.CompName)
	if component == nil {
		return
	}

	serialize(w, component, strings.Split(req.FieldName, "."))
}

// serialize writes one level of a component, starting from a field when a
// path is given.
func serialize(w http.ResponseWriter, root any, path []string) {
	s := goseth.NewSerializer()
	s.SetRoot(root)
	s.SetMaxDepth(1)

	if path != nil {
		dieOnErr(s.SetEntryPoint(path))
	}

	dieOnErr(s.Serialize(w))
}

type radioRsp struct {
	Name        string     `json:"name"`
	NumSent     uint64     `json:"num_sent"`
	NumReceived uint64     `json:"num_received"`
	NumAntennas int        `json:"num_antennas"`
	PowerDBm    float64    `json:"power_dbm"`
	Queues      []queueRsp `json:"queues"`
}

func (m *Monitor) radioStatus(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	component := m.findComponentOr404(w, name)
	if component == nil {
		return
	}

	radio, ok := component.(*medium.Radio)
	if !ok {
		httpError(w, http.StatusBadRequest, "Component %s is not a radio", name)
		return
	}

	writeJSON(w, radioRsp{
		Name:        radio.Name(),
		NumSent:     radio.NumSent(),
		NumReceived: radio.NumReceived(),
		NumAntennas: radio.Antenna().NumAntennas(),
		PowerDBm:    radio.Transmitter().Power().DBm(),
		Queues:      describeQueues(radio.Queues()),
	})
}

func (m *Monitor) findComponentOr404(
	w http.ResponseWriter,
	name string,
) sim.Component {
	for _, c := range m.components {
		if c.Name() == name {
			return c
		}
	}

	httpError(w, http.StatusNotFound, "Component %s not found", name)

	return nil
}
