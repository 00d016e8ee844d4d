package metric

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"word_dict/common"
)

type Metric struct {
	DateTime    string                  `json:"datetime"`
	Timestamp   int64                   `json:"timestamp"`
	Stage       string                  `json:"stage"`
	Finished    bool                    `json:"finished"`
	Words       int                     `json:"words"`
	Loaded      *CounterStat            `json:"loaded"`
	Duplicated  *CounterStat            `json:"duplicated"`
	Filtered    *CounterStat            `json:"filtered"`
	Rejected    *CounterStat            `json:"rejected"`
	TotalSearch int64                   `json:"total_search"`
	TotalHit    int64                   `json:"total_hit"`
	SearchStat  map[string]*CounterStat `json:"search_stat"`
	HitStat     map[string]*CounterStat `json:"hit_stat"`
}

func NewMetric(stat *Stat, stage string, words int, finished bool) *Metric {
	now := time.Now()
	m := &Metric{
		DateTime:    now.Format("2006-01-02T15:04:05Z"),
		Timestamp:   now.Unix(),
		Stage:       stage,
		Finished:    finished,
		Words:       words,
		Loaded:      stat.WordLoaded.Json(),
		Duplicated:  stat.WordDuplicated.Json(),
		Filtered:    stat.WordFiltered.Json(),
		Rejected:    stat.WordRejected.Json(),
		TotalSearch: stat.TotalSearch(),
		TotalHit:    stat.TotalHit(),
		SearchStat:  make(map[string]*CounterStat),
		HitStat:     make(map[string]*CounterStat),
	}
	for kind := common.SearchKind(0); kind < common.EndSearchKind; kind++ {
		m.SearchStat[kind.String()] = stat.Search[kind].Json()
		m.HitStat[kind.String()] = stat.Hit[kind].Json()
	}
	return m
}

func (p *Metric) Json() string {
	metricstr, _ := json.Marshal(p)
	return string(metricstr)
}

func (p *Metric) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "stage:%s,words:%d,finished:%v\n", p.Stage, p.Words, p.Finished)
	fmt.Fprintf(&buf, "WordLoaded|%s\n", counterString(p.Loaded))
	fmt.Fprintf(&buf, "WordDuplicated|%s\n", counterString(p.Duplicated))
	fmt.Fprintf(&buf, "WordFiltered|%s\n", counterString(p.Filtered))
	fmt.Fprintf(&buf, "WordRejected|%s\n", counterString(p.Rejected))
	for kind := common.SearchKind(0); kind < common.EndSearchKind; kind++ {
		search := p.SearchStat[kind.String()]
		if search.Total == 0 {
			continue
		}
		fmt.Fprintf(&buf, "Search|%s|%s\n", kind, counterString(search))
		fmt.Fprintf(&buf, "Hit|%s|%s\n", kind, counterString(p.HitStat[kind.String()]))
	}
	return buf.String()
}

func counterString(c *CounterStat) string {
	return fmt.Sprintf("total:%d,speed:%d", c.Total, c.Speed)
}
