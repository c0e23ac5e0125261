package snake

// body is a ring-buffer deque of positions, head at the front.
type body struct {
	buf   []Position
	start int
	n     int
}

func newBody(capacity int) body {
	if capacity < 1 {
		capacity = 1
	}
	return body{buf: make([]Position, capacity)}
}

func (b *body) len() int { return b.n }

func (b *body) pushFront(p Position) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.start = (b.start - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.start] = p
	b.n++
}

func (b *body) popBack() Position {
	if b.n == 0 {
		panic("snake: pop from empty body")
	}
	b.n--
	return b.buf[(b.start+b.n)%len(b.buf)]
}

func (b *body) front() Position {
	if b.n == 0 {
		panic("snake: empty body has no head")
	}
	return b.buf[b.start]
}

func (b *body) back() Position {
	if b.n == 0 {
		panic("snake: empty body has no tail")
	}
	return b.buf[(b.start+b.n-1)%len(b.buf)]
}

// at returns the i-th position counting from the head.
func (b *body) at(i int) Position {
	return b.buf[(b.start+i)%len(b.buf)]
}

func (b *body) grow() {
	next := make([]Position, 2*len(b.buf))
	for i := range b.n {
		next[i] = b.at(i)
	}
	b.buf = next
	b.start = 0
}

// turnQueue buffers at most two pending direction changes.
type turnQueue struct {
	items [2]Direction
	start int
	n     int
}

func (q *turnQueue) len() int { return q.n }

func (q *turnQueue) full() bool { return q.n == len(q.items) }

func (q *turnQueue) push(d Direction) {
	q.items[(q.start+q.n)%len(q.items)] = d
	q.n++
}

func (q *turnQueue) pop() Direction {
	d := q.items[q.start]
	q.start = (q.start + 1) % len(q.items)
	q.n--
	return d
}

func (q *turnQueue) last() Direction {
	return q.items[(q.start+q.n-1)%len(q.items)]
}

func (q *turnQueue) slice() []Direction {
	out := make([]Direction, q.n)
	for i := range q.n {
		out[i] = q.items[(q.start+i)%len(q.items)]
	}
	return out
}
