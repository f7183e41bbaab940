package graphics

import (
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// OcclusionQuery wraps a boolean "any samples passed" GPU query. The handle
// is rebound every frame the owning chunk participates in occlusion
// testing; only the most recently issued query is meaningful.
type OcclusionQuery struct {
	id uint32
}

// NewOcclusionQuery allocates a query object.
func NewOcclusionQuery() OcclusionQuery {
	var id uint32
	gl.GenQueries(1, &id)
	return OcclusionQuery{id: id}
}

// Begin starts sampling; any fragment passing depth/stencil while active
// flips the query result to true.
func (q OcclusionQuery) Begin() {
	gl.BeginQuery(gl.ANY_SAMPLES_PASSED, q.id)
}

// End stops sampling.
func (q OcclusionQuery) End() {
	gl.EndQuery(gl.ANY_SAMPLES_PASSED)
}

// BeginConditional opens a conditional-render scope gated on this query's
// result. Region-wait mode: if the result is not known yet the GPU waits
// for it instead of guessing.
func (q OcclusionQuery) BeginConditional() {
	gl.BeginConditionalRender(q.id, gl.QUERY_BY_REGION_WAIT)
}

// EndConditional closes the conditional-render scope.
func (q OcclusionQuery) EndConditional() {
	gl.EndConditionalRender()
}

// Delete releases the query object.
func (q OcclusionQuery) Delete() {
	gl.DeleteQueries(1, &q.id)
}

// timerQueries abstracts the handful of GL calls the timer ring needs, so
// the ring arithmetic is testable without a live context.
type timerQueries interface {
	gen(n int) []uint32
	begin(id uint32)
	end()
	isQuery(id uint32) bool
	// result blocks until the query result is available and returns
	// elapsed nanoseconds.
	result(id uint32) uint64
	deleteAll(ids []uint32)
}

type glTimerQueries struct{}

func (glTimerQueries) gen(n int) []uint32 {
	ids := make([]uint32, n)
	gl.GenQueries(int32(n), &ids[0])
	return ids
}

func (glTimerQueries) begin(id uint32) { gl.BeginQuery(gl.TIME_ELAPSED, id) }
func (glTimerQueries) end()            { gl.EndQuery(gl.TIME_ELAPSED) }

func (glTimerQueries) isQuery(id uint32) bool { return gl.IsQuery(id) }

func (glTimerQueries) result(id uint32) uint64 {
	var v uint64
	gl.GetQueryObjectui64v(id, gl.QUERY_RESULT, &v)
	return v
}

func (glTimerQueries) deleteAll(ids []uint32) {
	gl.DeleteQueries(int32(len(ids)), &ids[0])
}

// TimerRing measures GPU frame time with a fixed ring of elapsed-time
// queries. Each frame issues into one slot and polls the slot that is about
// to be reused, which was issued depth-1 frames earlier — old enough that
// the fetch almost never stalls the pipeline. During the first depth-1
// frames the polled slot has never been issued and the fetch is skipped.
type TimerRing struct {
	backend  timerQueries
	ids      []uint32
	issuedAt []int64 // frame index of the slot's last issue, -1 = never
	current  int
	frame    int64
}

// NewTimerRing allocates a ring of depth GPU timer queries.
func NewTimerRing(depth int) *TimerRing {
	return newTimerRing(depth, glTimerQueries{})
}

func newTimerRing(depth int, backend timerQueries) *TimerRing {
	if depth < 2 {
		depth = 2
	}
	r := &TimerRing{
		backend:  backend,
		ids:      backend.gen(depth),
		issuedAt: make([]int64, depth),
	}
	for i := range r.issuedAt {
		r.issuedAt[i] = -1
	}
	return r
}

// Begin opens the elapsed-time query in the current ring slot.
func (r *TimerRing) Begin() {
	r.backend.begin(r.ids[r.current])
}

// End closes the current slot's query, polls the oldest slot in the ring
// and advances. ok is false while the polled slot has no prior issue (the
// first depth-1 frames) or the driver does not consider it a live query yet.
func (r *TimerRing) End() (elapsed time.Duration, ok bool) {
	r.backend.end()
	r.issuedAt[r.current] = r.frame

	next := (r.current + 1) % len(r.ids)
	if r.issuedAt[next] >= 0 && r.backend.isQuery(r.ids[next]) {
		elapsed = time.Duration(r.backend.result(r.ids[next]))
		ok = true
	}

	r.current = next
	r.frame++
	return elapsed, ok
}

// Depth returns the ring size.
func (r *TimerRing) Depth() int {
	return len(r.ids)
}

// Delete releases all query objects in the ring.
func (r *TimerRing) Delete() {
	if len(r.ids) > 0 {
		r.backend.deleteAll(r.ids)
		r.ids = nil
	}
}
