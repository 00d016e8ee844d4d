package metric

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"word_dict/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicSpeedCounter(t *testing.T) {
	var nr int
	{
		nr++
		fmt.Printf("TestAtomicSpeedCounter case %d.\n", nr)

		var counter AtomicSpeedCounter
		counter.Inc(3)
		counter.Inc(2)
		assert.Equal(t, int64(5), counter.Total(), "should be equal")
		assert.Equal(t, int64(0), counter.Speed(), "should be equal")

		counter.Rotate()
		assert.Equal(t, int64(5), counter.Speed(), "should be equal")
		assert.Equal(t, "total:5,speed:5", counter.String(), "should be equal")

		counter.Rotate()
		assert.Equal(t, int64(0), counter.Speed(), "should be equal")
		assert.Equal(t, int64(5), counter.Total(), "should be equal")
	}

	{
		nr++
		fmt.Printf("TestAtomicSpeedCounter case %d.\n", nr)

		var counter AtomicSpeedCounter
		counter.Inc(7)
		counter.Rotate()
		counter.Reset()
		assert.Equal(t, &CounterStat{Total: 0, Speed: 0}, counter.Json(), "should be equal")
	}
}

func TestStat(t *testing.T) {
	var stat Stat
	stat.WordLoaded.Inc(4)
	stat.IncrSearch(&common.Result{Pattern: "bad", Kind: common.LiteralSearch, Matched: true})
	stat.IncrSearch(&common.Result{Pattern: "pad", Kind: common.LiteralSearch, Matched: false})
	stat.IncrSearch(&common.Result{Pattern: ".ad", Kind: common.WildcardSearch, Matched: true})

	assert.Equal(t, int64(3), stat.TotalSearch())
	assert.Equal(t, int64(2), stat.TotalHit())
	assert.Equal(t, int64(2), stat.Search[common.LiteralSearch].Total())
	assert.Equal(t, int64(1), stat.Hit[common.WildcardSearch].Total())

	m := NewMetric(&stat, "search", 4, true)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(m.Json()), &decoded))
	assert.Equal(t, "search", decoded["stage"])
	assert.Equal(t, float64(3), decoded["total_search"])

	text := m.String()
	assert.True(t, strings.Contains(text, "Search|literal|total:2"), text)
	assert.True(t, strings.Contains(text, "Hit|wildcard|total:1"), text)

	stat.Reset()
	assert.Equal(t, int64(0), stat.TotalSearch())
	assert.Equal(t, int64(0), stat.WordLoaded.Total())
}
