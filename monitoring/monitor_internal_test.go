package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sarchlab/radiosim/phy/antenna"
	"github.com/sarchlab/radiosim/phy/geometry"
	"github.com/sarchlab/radiosim/phy/ieee80211"
	"github.com/sarchlab/radiosim/phy/medium"
	"github.com/sarchlab/radiosim/phy/mobility"
	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/sim"
)

type sampleComponent struct {
	*sim.ComponentBase

	buffer sim.Buffer
	queues []sim.Buffer
}

func (c *sampleComponent) Handle(_ sim.Event) error {
	return nil
}

func (c *sampleComponent) Queues() []sim.Buffer {
	return append([]sim.Buffer{c.buffer}, c.queues...)
}

func newSampleComponent() *sampleComponent {
	c := &sampleComponent{
		ComponentBase: sim.NewComponentBase("Comp"),
		buffer:        sim.NewBuffer("Comp.Buf", 10),
	}

	for i := 0; i < 2; i++ {
		c.queues = append(c.queues,
			sim.NewBuffer(sim.BuildNameWithIndex("Comp", "Queue", i), 4))
	}

	return c
}

var _ = Describe("Monitor", func() {
	var (
		m      *Monitor
		engine *sim.SerialEngine
		air    *medium.Medium
		radio  *medium.Radio
		router http.Handler
	)

	get := func(url string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

		return rec
	}

	BeforeEach(func() {
		engine = sim.NewSerialEngine()
		air = medium.MakeBuilder().WithEngine(engine).Build("Medium")
		radio = medium.MakeRadioBuilder().
			WithEngine(engine).
			WithMedium(air).
			WithAntenna(antenna.NewArray(mobility.NewStationary(
				geometry.Coord{}, geometry.Identity()), 2)).
			WithTransmitter(ieee80211.MakeBuilder().Build("Transmitter")).
			WithNumQueues(2).
			WithQueueCapacity(8).
			Build("RadioA")

		m = NewMonitor()
		m.RegisterEngine(engine)
		m.RegisterComponent(air)
		m.RegisterComponent(radio)
		router = m.createRouter()
	})

	It("should register components and their queues", func() {
		c := newSampleComponent()
		m = NewMonitor()
		m.RegisterComponent(c)

		Expect(m.components).To(HaveLen(1))
		Expect(m.buffers).To(HaveLen(3))
	})

	It("should find the radio queues", func() {
		Expect(m.buffers).To(HaveLen(2))
		Expect(m.buffers[0].Name()).To(Equal("RadioA.Queue[0]"))
	})

	It("should use a random port below 1000", func() {
		Expect(m.WithPortNumber(80).portNumber).To(Equal(0))
		Expect(m.WithPortNumber(8080).portNumber).To(Equal(8080))
	})

	It("should list components", func() {
		rec := get("/api/list_components")

		var names []string
		Expect(json.Unmarshal(rec.Body.Bytes(), &names)).To(Succeed())
		Expect(names).To(Equal([]string{"Medium", "RadioA"}))
	})

	It("should report the current time", func() {
		Expect(get("/api/now").Body.String()).
			To(Equal(`{"now":0.0000000000,"events":0}`))
	})

	It("should reject an invalid run deadline", func() {
		Expect(get("/api/run_until/soon").Code).To(Equal(http.StatusBadRequest))
		Expect(get("/api/run_until/-1").Code).To(Equal(http.StatusBadRequest))
	})

	It("should report a radio", func() {
		Expect(radio.Send(
			packet.NewPacket("Data", packet.PhyHeader{Length: 100}), 0)).
			To(Succeed())

		rec := get("/api/radio/RadioA")
		Expect(rec.Code).To(Equal(http.StatusOK))

		rsp := radioRsp{}
		Expect(json.Unmarshal(rec.Body.Bytes(), &rsp)).To(Succeed())
		Expect(rsp.Name).To(Equal("RadioA"))
		Expect(rsp.NumAntennas).To(Equal(2))
		Expect(rsp.PowerDBm).To(BeNumerically("~", 20, 1e-9))
		Expect(rsp.Queues).To(HaveLen(2))
		Expect(rsp.Queues[0].Level).To(Equal(1))
		Expect(rsp.Queues[0].Capacity).To(Equal(8))
	})

	It("should reject non-radio components", func() {
		Expect(get("/api/radio/Medium").Code).To(Equal(http.StatusBadRequest))
	})

	It("should return 404 for unknown components", func() {
		Expect(get("/api/radio/Nobody").Code).To(Equal(http.StatusNotFound))
		Expect(get("/api/component/Nobody").Code).
			To(Equal(http.StatusNotFound))
	})

	It("should list the fullest buffers first", func() {
		c := newSampleComponent()
		c.queues[1].Push(1)
		c.queues[1].Push(2)
		c.buffer.Push(1)
		c.buffer.Push(2)
		c.buffer.Push(3)
		m.RegisterComponent(c)

		var rsp []queueRsp
		Expect(json.Unmarshal(
			get("/api/queues?limit=2").Body.Bytes(), &rsp)).
			To(Succeed())
		Expect(rsp).To(HaveLen(2))
		Expect(rsp[0].Name).To(Equal("Comp.Queue[1]"))
		Expect(rsp[1].Name).To(Equal("Comp.Buf"))

		rsp = nil
		Expect(json.Unmarshal(
			get("/api/queues?sort=level&offset=1").Body.Bytes(),
			&rsp)).
			To(Succeed())
		Expect(rsp).To(HaveLen(4))
		Expect(rsp[0].Name).To(Equal("Comp.Queue[1]"))
	})

	It("should reject invalid buffer queries", func() {
		Expect(get("/api/queues?sort=name").Code).
			To(Equal(http.StatusBadRequest))
		Expect(get("/api/queues?limit=x").Code).
			To(Equal(http.StatusBadRequest))
		Expect(get("/api/queues?offset=-1").Code).
			To(Equal(http.StatusBadRequest))
	})

	It("should list progress bars", func() {
		bar := m.CreateProgressBar("Packets", 10)
		bar.IncrementInProgress(3)
		bar.MoveInProgressToFinished(2)

		var rsp []ProgressStatus
		Expect(json.Unmarshal(get("/api/progress").Body.Bytes(), &rsp)).
			To(Succeed())
		Expect(rsp).To(HaveLen(1))
		Expect(rsp[0].Name).To(Equal("Packets"))
		Expect(rsp[0].Finished).To(Equal(uint64(2)))
		Expect(rsp[0].InProgress).To(Equal(uint64(1)))

		m.CompleteProgressBar(bar)
		Expect(get("/api/progress").Body.String()).To(MatchJSON("[]"))
	})

	It("should serve metrics when a gatherer is registered", func() {
		Expect(get("/metrics").Code).To(Equal(http.StatusNotFound))

		reg := prometheus.NewRegistry()
		hook, err := NewMetricsHook(reg)
		Expect(err).NotTo(HaveOccurred())
		hook.Failures.Inc()

		m.RegisterGatherer(hook.Gatherer())
		router = m.createRouter()

		rec := get("/metrics")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).
			To(ContainSubstring("radiosim_transmission_failures_total 1"))
	})
})

var _ = Describe("ProgressBar", func() {
	It("should not move more than in progress", func() {
		bar := &ProgressBar{total: 5}
		bar.IncrementInProgress(1)
		bar.MoveInProgressToFinished(3)
		bar.IncrementFinished(1)

		status := bar.Status()
		Expect(status.InProgress).To(Equal(uint64(0)))
		Expect(status.Finished).To(Equal(uint64(2)))
		Expect(status.Total).To(Equal(uint64(5)))
	})
})
