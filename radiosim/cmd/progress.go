package cmd

import (
	"github.com/sarchlab/radiosim/monitoring"
	"github.com/sarchlab/radiosim/sim"
	"github.com/sarchlab/radiosim/traffic"
)

// progressHook advances a progress bar for every packet a generator handles.
type progressHook struct {
	bar *monitoring.ProgressBar
}

func (h *progressHook) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case traffic.HookPosPacketGenerated, traffic.HookPosPacketDropped:
		h.bar.IncrementFinished(1)
	}
}
