package stage

// Collection is an insertion-ordered list used for the live and staging sets
// of a World. Removal erases the first equal element and is a no-op when the
// element is absent. Not safe for concurrent use.
type Collection[T comparable] struct {
	items   []T
	sortBuf []T
}

// NewCollection creates an empty collection with the given initial capacity.
func NewCollection[T comparable](capacity int) *Collection[T] {
	return &Collection[T]{items: make([]T, 0, capacity)}
}

// Add appends item, preserving insertion order.
func (c *Collection[T]) Add(item T) {
	c.items = append(c.items, item)
}

// Remove erases the first element equal to item. Reports whether an element
// was removed.
func (c *Collection[T]) Remove(item T) bool {
	for i := range c.items {
		if c.items[i] == item {
			copy(c.items[i:], c.items[i+1:])
			var zero T
			c.items[len(c.items)-1] = zero
			c.items = c.items[:len(c.items)-1]
			return true
		}
	}
	return false
}

// Contains reports whether an element equal to item is present.
func (c *Collection[T]) Contains(item T) bool {
	for i := range c.items {
		if c.items[i] == item {
			return true
		}
	}
	return false
}

// Len returns the number of elements.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns the element at index i. Out-of-range indices return the zero
// value and false.
func (c *Collection[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(c.items) {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// Items returns the backing slice. The returned slice MUST NOT be mutated and
// is only valid until the next Add, Remove, Clear, or Sort.
func (c *Collection[T]) Items() []T {
	return c.items
}

// Each calls fn for every element in order.
func (c *Collection[T]) Each(fn func(T)) {
	for _, item := range c.items {
		fn(item)
	}
}

// Clear removes all elements, keeping the allocated capacity.
func (c *Collection[T]) Clear() {
	var zero T
	for i := range c.items {
		c.items[i] = zero
	}
	c.items = c.items[:0]
}

// Sort reorders the elements using less, a strict weak ordering. The sort is
// stable: elements that compare equal keep their relative order.
//
// Bottom-up merge sort: zero allocations after the scratch buffer reaches its
// high-water mark.
func (c *Collection[T]) Sort(less func(a, b T) bool) {
	n := len(c.items)
	if n <= 1 {
		return
	}
	if cap(c.sortBuf) < n {
		c.sortBuf = make([]T, n)
	}
	c.sortBuf = c.sortBuf[:n]

	a := c.items
	b := c.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi, less)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(c.items, c.sortBuf)
	}
	var zero T
	for i := range c.sortBuf {
		c.sortBuf[i] = zero
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
// Taking from the left run unless the right element is strictly less keeps
// the merge stable.
func mergeRun[T any](src, dst []T, lo, mid, hi int, less func(a, b T) bool) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if !less(src[j], src[i]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
