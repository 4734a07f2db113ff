package medium

import (
	"log"
	"strings"

	"github.com/sarchlab/radiosim/phy/packet"
	"github.com/sarchlab/radiosim/phy/signal"
	"github.com/sarchlab/radiosim/sim"
)

// TransmissionLogger is a hook that prints the transmissions and receptions
// of a medium.
type TransmissionLogger struct {
	sim.LogHookBase

	level int
}

// NewTransmissionLogger creates a TransmissionLogger. The level is passed to
// the Print method of the descriptors.
func NewTransmissionLogger(logger *log.Logger, level int) *TransmissionLogger {
	h := new(TransmissionLogger)
	h.Logger = logger
	h.level = level

	return h
}

// Func prints the descriptor carried by the hook context.
func (h *TransmissionLogger) Func(ctx sim.HookCtx) {
	sb := new(strings.Builder)

	switch ctx.Pos {
	case HookPosTransmissionCreated:
		tx := ctx.Item.(*signal.Transmission)
		tx.Print(sb, h.level)
		h.Printf("%.10f, %s", tx.StartTime(), sb.String())
	case HookPosReceptionComputed:
		r := ctx.Item.(signal.Reception)
		r.Print(sb, h.level)
		h.Printf("%.10f, %s", r.StartTime(), sb.String())
	case HookPosTransmissionFailed:
		p := ctx.Item.(*packet.Packet)
		h.Printf("packet %s (%s) failed: %v", p.Name, p.ID, ctx.Detail)
	}
}
