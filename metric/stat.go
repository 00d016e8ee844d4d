package metric

import (
	"word_dict/common"
)

type Stat struct {
	WordLoaded     AtomicSpeedCounter
	WordDuplicated AtomicSpeedCounter
	WordFiltered   AtomicSpeedCounter
	WordRejected   AtomicSpeedCounter

	Search [common.EndSearchKind]AtomicSpeedCounter
	Hit    [common.EndSearchKind]AtomicSpeedCounter
}

func (p *Stat) counters() []*AtomicSpeedCounter {
	list := []*AtomicSpeedCounter{&p.WordLoaded, &p.WordDuplicated, &p.WordFiltered, &p.WordRejected}
	for kind := common.SearchKind(0); kind < common.EndSearchKind; kind++ {
		list = append(list, &p.Search[kind], &p.Hit[kind])
	}
	return list
}

func (p *Stat) Rotate() {
	for _, counter := range p.counters() {
		counter.Rotate()
	}
}

func (p *Stat) Reset() {
	for _, counter := range p.counters() {
		counter.Reset()
	}
}

func (p *Stat) IncrSearch(result *common.Result) {
	p.Search[result.Kind].Inc(1)
	if result.Matched {
		p.Hit[result.Kind].Inc(1)
	}
}

func (p *Stat) TotalSearch() int64 {
	var total int64
	for kind := common.SearchKind(0); kind < common.EndSearchKind; kind++ {
		total += p.Search[kind].Total()
	}
	return total
}

func (p *Stat) TotalHit() int64 {
	var total int64
	for kind := common.SearchKind(0); kind < common.EndSearchKind; kind++ {
		total += p.Hit[kind].Total()
	}
	return total
}
