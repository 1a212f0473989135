package graph

// handle addresses a slot in an arena. gen starts at 1 so the zero handle
// never resolves.
type handle struct {
	index uint32
	gen   uint32
}

type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// arena is a generational slot map. Removing an entry frees its slot and
// bumps the generation, so handles taken before the removal stop resolving
// even after the slot is reused. order keeps live handles in insertion order.
type arena[T any] struct {
	slots []slot[T]
	free  []uint32
	order []handle
}

func (a *arena[T]) insert(v T) handle {
	var h handle
	if n := len(a.free); n > 0 {
		h.index = a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[h.index]
		s.live = true
		s.val = v
		h.gen = s.gen
	} else {
		h = handle{index: uint32(len(a.slots)), gen: 1}
		a.slots = append(a.slots, slot[T]{gen: 1, live: true, val: v})
	}
	a.order = append(a.order, h)
	return h
}

func (a *arena[T]) get(h handle) (*T, bool) {
	if int(h.index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil, false
	}
	return &s.val, true
}

func (a *arena[T]) remove(h handle) bool {
	if _, ok := a.get(h); !ok {
		return false
	}
	s := &a.slots[h.index]
	var zero T
	s.val = zero
	s.live = false
	s.gen++
	a.free = append(a.free, h.index)

	for i, o := range a.order {
		if o == h {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return true
}

func (a *arena[T]) len() int {
	return len(a.order)
}

// each visits live entries in insertion order until fn returns false.
func (a *arena[T]) each(fn func(h handle, v *T) bool) {
	for _, h := range a.order {
		if !fn(h, &a.slots[h.index].val) {
			return
		}
	}
}
