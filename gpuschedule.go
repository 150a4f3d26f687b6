package maplabel

import "github.com/gogpu/maplabel/gpubuf"

// gpuSchedulerHandle adapts gpubuf.Scheduler's BufferID type to the
// plain uint64 handles Bucket.GPUBufferIDs carries (spec.md §4.6 step 7
// "If the bucket owns GPU buffers for any of these arrays, schedule a
// data update").
type gpuSchedulerHandle struct {
	inner *gpubuf.Scheduler
}

func newGPUSchedulerHandle() *gpuSchedulerHandle {
	return &gpuSchedulerHandle{inner: gpubuf.NewScheduler()}
}

func (h *gpuSchedulerHandle) ScheduleUpdate(id uint64) {
	h.inner.ScheduleUpdate(gpubuf.BufferID(id))
}

func (h *gpuSchedulerHandle) Pending() []uint64 {
	pending := h.inner.Pending()
	ids := make([]uint64, len(pending))
	for i, id := range pending {
		ids[i] = uint64(id)
	}
	return ids
}

func (h *gpuSchedulerHandle) Clear() {
	h.inner.Clear()
}

// ScheduledBufferUpdates returns the GPU buffer IDs this Placement has
// asked the host to re-upload since the last Clear, for the host's
// upload step to drain.
func (p *Placement) ScheduledBufferUpdates() []uint64 {
	return p.gpuScheduler().Pending()
}

// ClearScheduledBufferUpdates drops the pending set, called by the host
// once it has issued the actual uploads for ScheduledBufferUpdates.
func (p *Placement) ClearScheduledBufferUpdates() {
	p.gpuScheduler().Clear()
}
