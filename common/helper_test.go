package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWildcard(t *testing.T) {
	r, err := ParseWildcard(".")
	require.NoError(t, err)
	assert.Equal(t, '.', r)

	r, err = ParseWildcard("？")
	require.NoError(t, err)
	assert.Equal(t, '？', r)

	_, err = ParseWildcard("")
	assert.Error(t, err)
	_, err = ParseWildcard("..")
	assert.Error(t, err)
	_, err = ParseWildcard("\xff")
	assert.Error(t, err)
}

func TestIsLowercase(t *testing.T) {
	assert.True(t, IsLowercase("bad"))
	assert.True(t, IsLowercase(""))
	assert.False(t, IsLowercase("b.d"))
	assert.False(t, IsLowercase("Bad"))
	assert.False(t, IsLowercase("bäd"))
}

func TestQos(t *testing.T) {
	qos := StartQoS(3)
	defer qos.Close()

	for i := 0; i < 3; i++ {
		select {
		case <-qos.Bucket:
		case <-time.After(time.Second):
			t.Fatalf("token %d not available", i)
		}
	}

	select {
	case <-qos.Bucket:
		t.Fatal("bucket should be empty before the next tick")
	default:
	}

	qos.Close()
	qos.Close()
}

func TestInitLog(t *testing.T) {
	logger, err := InitLog("", "debug")
	require.NoError(t, err)
	logger.Debugf("init log %v", "ok")
	logger.Flush()

	_, err = InitLog("", "verbose")
	assert.Error(t, err)
}
