package common

import (
	"sync"
	"time"
)

// Qos hands out at most limit tokens per second through Bucket.
type Qos struct {
	Bucket chan struct{}

	limit  int
	closed chan struct{}
	once   sync.Once
}

func StartQoS(limit int) *Qos {
	q := &Qos{
		Bucket: make(chan struct{}, limit),
		limit:  limit,
		closed: make(chan struct{}),
	}
	q.fill()

	go q.timer()
	return q
}

func (q *Qos) timer() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-q.closed:
			return
		case <-ticker.C:
			q.fill()
		}
	}
}

func (q *Qos) fill() {
	for i := 0; i < q.limit; i++ {
		select {
		case q.Bucket <- struct{}{}:
		default:
			// bucket is full
			return
		}
	}
}

func (q *Qos) Close() {
	q.once.Do(func() {
		close(q.closed)
	})
}
