package runner

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"word_dict/client"
	"word_dict/common"
	"word_dict/dictionary"
	"word_dict/metric"

	"golang.org/x/sync/errgroup"
)

const (
	StageLoad   = "load"
	StageSearch = "search"
)

type Parameter struct {
	WordFiles    []string
	PatternFiles []string
	SourceHost   client.RedisHost // no source when Addr is empty
	SourceDB     int32
	BatchCount   int
	Qps          int
	Filter       *common.KeyFilter
	Wildcard     rune
	Strict       bool
	ResultDBFile string
	ResultFile   string
	Interval     int // seconds, 0 disables the periodic stat
	MetricPrint  bool
}

/*
 * Runner loads every word source into one dictionary and then searches every
 * pattern. The dictionary is only touched by the goroutine running Start,
 * producers and the result writer talk to it through channels.
 */
type Runner struct {
	Parameter

	dict  *dictionary.WordDictionary
	stat  metric.Stat
	words int64 // dict.Len() published for the stat goroutine
	seq   int64
	stage atomic.Value
}

func NewRunner(param Parameter) *Runner {
	if param.Wildcard == 0 {
		param.Wildcard = dictionary.DefaultWildcard
	}
	if param.BatchCount <= 0 {
		param.BatchCount = 256
	}
	p := &Runner{
		Parameter: param,
		dict:      dictionary.NewWordDictionaryWithWildcard(param.Wildcard),
	}
	p.stage.Store(StageLoad)
	return p
}

func (p *Runner) Dictionary() *dictionary.WordDictionary {
	return p.dict
}

func (p *Runner) Stat() *metric.Stat {
	return &p.stat
}

func (p *Runner) Start() error {
	writer, err := NewResultWriter(p.ResultDBFile, p.ResultFile)
	if err != nil {
		return err
	}
	defer writer.Close()

	stopStat := p.startStat()
	defer stopStat()

	common.Logger.Infof("start loading words")
	if err := p.load(); err != nil {
		return err
	}
	common.Logger.Infof("load finished, %d words in dictionary", p.dict.Len())
	p.PrintStat(false)

	p.stage.Store(StageSearch)
	common.Logger.Infof("start searching patterns")
	if err := p.search(writer); err != nil {
		return err
	}

	stopStat()
	p.PrintStat(true)
	common.Logger.Infof("all finish successfully, %d of %d patterns matched",
		p.stat.TotalHit(), p.stat.TotalSearch())
	return nil
}

func (p *Runner) load() error {
	words := make(chan []string, 1024)
	group, ctx := errgroup.WithContext(context.Background())
	for _, file := range p.WordFiles {
		file := file
		group.Go(func() error {
			return readLines(ctx, file, p.BatchCount, words)
		})
	}
	if len(p.SourceHost.Addr) != 0 {
		group.Go(func() error {
			return p.ScanFromSourceRedis(ctx, words)
		})
	}

	done := make(chan error, 1)
	go func() {
		err := group.Wait()
		close(words)
		done <- err
	}()

	for batch := range words {
		p.addWords(batch)
	}
	return <-done
}

func (p *Runner) addWords(batch []string) {
	for _, word := range batch {
		if !p.Filter.Pass(word) {
			p.stat.WordFiltered.Inc(1)
			continue
		}
		if p.Strict && !common.IsLowercase(word) {
			common.Logger.Warnf("reject word[%v]: not lowercase a-z", word)
			p.stat.WordRejected.Inc(1)
			continue
		}

		before := p.dict.Len()
		p.dict.AddWord(word)
		if p.dict.Len() == before {
			p.stat.WordDuplicated.Inc(1)
		} else {
			p.stat.WordLoaded.Inc(1)
		}
	}
	atomic.StoreInt64(&p.words, int64(p.dict.Len()))
}

func (p *Runner) search(writer *ResultWriter) error {
	patterns := make(chan []string, 1024)
	results := make(chan *common.Result, 1024)

	group, ctx := errgroup.WithContext(context.Background())
	group.Go(func() error {
		defer close(patterns)
		for _, file := range p.PatternFiles {
			if err := readLines(ctx, file, p.BatchCount, patterns); err != nil {
				return err
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	var writeErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		writeErr = writer.WriteResults(results)
	}()

	for batch := range patterns {
		for _, pattern := range batch {
			results <- p.SearchOne(pattern)
		}
	}
	close(results)
	wg.Wait()

	if err := group.Wait(); err != nil {
		return err
	}
	return writeErr
}

// SearchOne runs a single pattern against the dictionary and records it in the stat.
func (p *Runner) SearchOne(pattern string) *common.Result {
	p.seq++
	result := &common.Result{
		Seq:     p.seq,
		Pattern: pattern,
		Kind:    common.LiteralSearch,
		Matched: p.dict.Search(pattern),
	}
	if strings.ContainsRune(pattern, p.Wildcard) {
		result.Kind = common.WildcardSearch
	}
	p.stat.IncrSearch(result)
	common.Logger.Debugf("search %s pattern[%v] matched[%v]", result.Kind, pattern, result.Matched)
	return result
}

// startStat prints the stat every Interval seconds until the returned func is called.
func (p *Runner) startStat() func() {
	if p.Interval <= 0 {
		return func() {}
	}

	ticker := time.NewTicker(time.Second * time.Duration(p.Interval))
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.stat.Rotate()
				p.PrintStat(false)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}
}

func (p *Runner) PrintStat(finished bool) {
	m := metric.NewMetric(&p.stat, p.stage.Load().(string), int(atomic.LoadInt64(&p.words)), finished)
	if p.MetricPrint {
		common.Logger.Info(m.Json())
	} else {
		common.Logger.Infof("stat:\n%s", m.String())
	}
}
