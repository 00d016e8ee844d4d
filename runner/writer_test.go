package runner

import (
	"os"
	"path/filepath"
	"testing"

	"word_dict/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultWriterNoOutput(t *testing.T) {
	writer, err := NewResultWriter("", "")
	require.NoError(t, err)
	defer writer.Close()

	results := make(chan *common.Result, 3)
	results <- &common.Result{Seq: 1, Pattern: "a"}
	results <- &common.Result{Seq: 2, Pattern: "b"}
	close(results)
	assert.NoError(t, writer.WriteResults(results))
}

func TestResultWriterRecreatesDB(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "result.db")
	require.NoError(t, os.WriteFile(dbFile, []byte("stale"), 0644))

	writer, err := NewResultWriter(dbFile, "")
	require.NoError(t, err)
	writer.Close()
	writer.Close()
}

func TestResultWriterBadFile(t *testing.T) {
	_, err := NewResultWriter("", filepath.Join(t.TempDir(), "missing", "result.txt"))
	assert.Error(t, err)
}
