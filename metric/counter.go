package metric

import (
	"fmt"
	"sync/atomic"

	"word_dict/common"
)

type CounterStat struct {
	Total int64 `json:"total"`
	Speed int64 `json:"speed"`
}

// AtomicSpeedCounter keeps a running total and the per-second rate of the last interval.
type AtomicSpeedCounter struct {
	total       int64
	intervalSum int64
	lastSpeed   int64
}

func (p *AtomicSpeedCounter) Inc(i int) {
	atomic.AddInt64(&p.total, int64(i))
	atomic.AddInt64(&p.intervalSum, int64(i))
}

func (p *AtomicSpeedCounter) Rotate() {
	old := atomic.SwapInt64(&p.intervalSum, 0)
	atomic.StoreInt64(&p.lastSpeed, (old+common.StatRollFrequency-1)/common.StatRollFrequency)
}

func (p *AtomicSpeedCounter) Reset() {
	atomic.StoreInt64(&p.total, 0)
	atomic.StoreInt64(&p.intervalSum, 0)
	atomic.StoreInt64(&p.lastSpeed, 0)
}

func (p *AtomicSpeedCounter) Total() int64 {
	return atomic.LoadInt64(&p.total)
}

func (p *AtomicSpeedCounter) Speed() int64 {
	return atomic.LoadInt64(&p.lastSpeed)
}

func (p *AtomicSpeedCounter) String() string {
	return fmt.Sprintf("total:%d,speed:%d", p.Total(), p.Speed())
}

func (p *AtomicSpeedCounter) Json() *CounterStat {
	return &CounterStat{Total: p.Total(), Speed: p.Speed()}
}
