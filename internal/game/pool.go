package game

// Entity is a pool member addressed through a pointer to its slot.
type Entity[T any] interface {
	*T
	IsAlive() bool
	Kill()
	Rect() RectF
}

// Pool is an ordered collection of same-kind entities. Kill only marks a slot;
// Compact drops dead slots once per tick so indices stay stable while the
// collision passes run.
type Pool[T any, P Entity[T]] struct {
	Items []T
}

func (p *Pool[T, P]) Add(v T) {
	p.Items = append(p.Items, v)
}

func (p *Pool[T, P]) Len() int { return len(p.Items) }

// At returns a pointer to slot i.
func (p *Pool[T, P]) At(i int) P { return P(&p.Items[i]) }

// Kill marks slot i dead. Killing a dead slot is a no-op; it reports whether
// the slot was alive.
func (p *Pool[T, P]) Kill(i int) bool {
	e := P(&p.Items[i])
	if !e.IsAlive() {
		return false
	}
	e.Kill()
	return true
}

// Alive counts live slots.
func (p *Pool[T, P]) Alive() int {
	n := 0
	for i := range p.Items {
		if P(&p.Items[i]).IsAlive() {
			n++
		}
	}
	return n
}

// Retain kills every live slot for which keep returns false.
func (p *Pool[T, P]) Retain(keep func(P) bool) {
	for i := range p.Items {
		e := P(&p.Items[i])
		if e.IsAlive() && !keep(e) {
			e.Kill()
		}
	}
}

// Compact removes dead slots, preserving the order of survivors.
func (p *Pool[T, P]) Compact() {
	kept := p.Items[:0]
	for i := range p.Items {
		if P(&p.Items[i]).IsAlive() {
			kept = append(kept, p.Items[i])
		}
	}
	var zero T
	for i := len(kept); i < len(p.Items); i++ {
		p.Items[i] = zero
	}
	p.Items = kept
}

func (p *Pool[T, P]) Clear() {
	p.Items = p.Items[:0]
}

// Each visits live slots in order.
func (p *Pool[T, P]) Each(fn func(i int, e P)) {
	for i := range p.Items {
		e := P(&p.Items[i])
		if e.IsAlive() {
			fn(i, e)
		}
	}
}
