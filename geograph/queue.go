package geograph

import (
	"container/heap"
	"math"
)

// Queue orders point ids by a priority that lives in the queue itself, so
// separate searches over the same graph never share state. Equal priorities
// pop the smaller id first.
type Queue struct {
	h queueHeap
}

func NewQueue() *Queue {
	return &Queue{
		h: queueHeap{
			index:    map[int64]int{},
			priority: map[int64]float64{},
		},
	}
}

// Push adds id with the given priority, or updates it if already queued.
func (q *Queue) Push(id int64, priority float64) {
	if i, ok := q.h.index[id]; ok {
		q.h.priority[id] = priority
		heap.Fix(&q.h, i)
		return
	}
	q.h.priority[id] = priority
	heap.Push(&q.h, id)
}

// Update changes the priority of a queued id. It reports false if id is not queued.
func (q *Queue) Update(id int64, priority float64) bool {
	i, ok := q.h.index[id]
	if !ok {
		return false
	}
	q.h.priority[id] = priority
	heap.Fix(&q.h, i)
	return true
}

// Pop removes the id with the lowest priority.
func (q *Queue) Pop() (id int64, priority float64, ok bool) {
	if q.h.Len() == 0 {
		return 0, math.Inf(1), false
	}
	id = heap.Pop(&q.h).(int64)
	return id, q.h.priority[id], true
}

func (q *Queue) Peek() (id int64, priority float64, ok bool) {
	if q.h.Len() == 0 {
		return 0, math.Inf(1), false
	}
	id = q.h.ids[0]
	return id, q.h.priority[id], true
}

// Priority returns the last priority assigned to id, +Inf if it was never pushed.
func (q *Queue) Priority(id int64) float64 {
	p, ok := q.h.priority[id]
	if !ok {
		return math.Inf(1)
	}
	return p
}

func (q *Queue) Contains(id int64) bool {
	_, ok := q.h.index[id]
	return ok
}

func (q *Queue) Len() int {
	return q.h.Len()
}

type queueHeap struct {
	ids      []int64
	index    map[int64]int
	priority map[int64]float64
}

var _ heap.Interface = (*queueHeap)(nil)

func (h *queueHeap) Len() int { return len(h.ids) }

func (h *queueHeap) Less(i, j int) bool {
	pi, pj := h.priority[h.ids[i]], h.priority[h.ids[j]]
	if pi != pj {
		return pi < pj
	}
	return h.ids[i] < h.ids[j]
}

func (h *queueHeap) Swap(i, j int) {
	h.ids[i], h.ids[j] = h.ids[j], h.ids[i]
	h.index[h.ids[i]] = i
	h.index[h.ids[j]] = j
}

func (h *queueHeap) Push(x any) {
	id := x.(int64)
	h.index[id] = len(h.ids)
	h.ids = append(h.ids, id)
}

func (h *queueHeap) Pop() any {
	n := len(h.ids)
	id := h.ids[n-1]
	h.ids = h.ids[:n-1]
	delete(h.index, id)
	return id
}
