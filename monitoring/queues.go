package monitoring

import (
	"cmp"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/sarchlab/radiosim/sim"
)

// A queueOwner exposes the queues that the monitor watches for congestion.
type queueOwner interface {
	Queues() []sim.Buffer
}

type queueRsp struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Capacity int    `json:"cap"`
}

func describeQueues(queues []sim.Buffer) []queueRsp {
	rsp := make([]queueRsp, 0, len(queues))
	for _, q := range queues {
		rsp = append(rsp, queueRsp{
			Name:     q.Name(),
			Level:    q.Size(),
			Capacity: q.Capacity(),
		})
	}

	return rsp
}

// listQueues lists the fullest queues first. The sort parameter picks whether
// "percent" (the default) or "level" decides. The limit and offset parameters
// page through the list.
func (m *Monitor) listQueues(w http.ResponseWriter, r *http.Request) {
	q, err := parseQueueQuery(r.URL.Query())
	if err != nil {
		httpError(w, http.StatusBadRequest, "Error: %s", err)
		return
	}

	writeJSON(w, describeQueues(q.selectFrom(m.buffers)))
}

type queueQuery struct {
	byLevel       bool
	limit, offset int
}

func parseQueueQuery(values url.Values) (queueQuery, error) {
	q := queueQuery{}

	switch s := values.Get("sort"); s {
	case "", "percent":
	case "level":
		q.byLevel = true
	default:
		return q, fmt.Errorf(
			"invalid sort method: %s, allowed values are level and percent", s)
	}

	var err error

	q.limit, err = atoiOrZero(values.Get("limit"))
	if err != nil {
		return q, err
	}

	q.offset, err = atoiOrZero(values.Get("offset"))
	if err != nil {
		return q, err
	}

	if q.limit < 0 || q.offset < 0 {
		return q, errors.New("limit and offset must not be negative")
	}

	return q, nil
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	return strconv.Atoi(s)
}

func fillRatio(b sim.Buffer) float64 {
	if b.Capacity() == 0 {
		return 0
	}

	return float64(b.Size()) / float64(b.Capacity())
}

// selectFrom sorts a copy of the buffers, fullest first, and returns a page of
// it. A zero limit returns everything after the offset.
func (q queueQuery) selectFrom(buffers []sim.Buffer) []sim.Buffer {
	sorted := slices.Clone(buffers)

	byLevel := func(a, b sim.Buffer) int { return cmp.Compare(b.Size(), a.Size()) }
	byRatio := func(a, b sim.Buffer) int {
		return cmp.Compare(fillRatio(b), fillRatio(a))
	}

	first, second := byRatio, byLevel
	if q.byLevel {
		first, second = byLevel, byRatio
	}

	slices.SortStableFunc(sorted, func(a, b sim.Buffer) int {
		return cmp.Or(first(a, b), second(a, b))
	})

	start := min(q.offset, len(sorted))
	end := len(sorted)

	if q.limit > 0 {
		end = min(start+q.limit, end)
	}

	return sorted[start:end]
}
