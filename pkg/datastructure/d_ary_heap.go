package datastructure

import (
	"errors"
)

var ErrHeapEmpty = errors.New("heap is empty")

// PriorityKey orders frontier entries: by cost, then by vertex id, then by insertion order.
type PriorityKey struct {
	Cost uint64
	Node Index
	Seq  uint64
}

func NewPriorityKey(cost uint64, node Index, seq uint64) PriorityKey {
	return PriorityKey{Cost: cost, Node: node, Seq: seq}
}

func (k PriorityKey) Less(o PriorityKey) bool {
	if k.Cost != o.Cost {
		return k.Cost < o.Cost
	}
	if k.Node != o.Node {
		return k.Node < o.Node
	}
	return k.Seq < o.Seq
}

type PriorityQueueNode[T any] struct {
	rank PriorityKey
	item T
}

func (p PriorityQueueNode[T]) GetItem() T {
	return p.item
}

func (p PriorityQueueNode[T]) GetRank() PriorityKey {
	return p.rank
}

func NewPriorityQueueNode[T any](rank PriorityKey, item T) PriorityQueueNode[T] {
	return PriorityQueueNode[T]{rank: rank, item: item}
}

// MinHeap d-ary heap priorityqueue. holds copies of its items.
type MinHeap[T any] struct {
	heap []PriorityQueueNode[T]
	d    int
}

func NewdAryHeap[T any](d int) *MinHeap[T] {
	if d < 2 {
		d = 2
	}
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		d:    d,
	}
}

func (h *MinHeap[T]) Preallocate(maxSearchSize int) {
	h.heap = make([]PriorityQueueNode[T], 0, maxSearchSize)
}

func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / h.d
}

// heapifyUp swaps the item at index with its parent while it ranks lower. O(log n).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].rank.Less(h.heap[h.parent(index)].rank) {
		h.Swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown swaps the item at index with its smallest child while that child ranks lower. O(d log n).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		leftMostChild := index*h.d + 1
		if leftMostChild >= len(h.heap) {
			return
		}

		sentinel := leftMostChild + h.d
		if sentinel > len(h.heap) {
			sentinel = len(h.heap)
		}

		smallest := leftMostChild
		for i := leftMostChild + 1; i < sentinel; i++ {
			if h.heap[i].rank.Less(h.heap[smallest].rank) {
				smallest = i
			}
		}

		if !h.heap[smallest].rank.Less(h.heap[index].rank) {
			return
		}
		h.Swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) Swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T]) Clear() {
	h.heap = h.heap[:0]
}

// GetMin returns the root without removing it.
func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return PriorityQueueNode[T]{}, ErrHeapEmpty
	}
	return h.heap[0], nil
}

func (h *MinHeap[T]) Insert(key PriorityQueueNode[T]) {
	h.heap = append(h.heap, key)
	h.heapifyUp(h.Size() - 1)
}

// ExtractMin removes and returns the root. O(d log n).
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return PriorityQueueNode[T]{}, ErrHeapEmpty
	}
	root := h.heap[0]

	last := h.Size() - 1
	h.Swap(0, last)
	var zero PriorityQueueNode[T]
	h.heap[last] = zero
	h.heap = h.heap[:last]
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}

	return root, nil
}
