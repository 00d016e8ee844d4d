package runner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendLines(t *testing.T) {
	out := make(chan []string, 10)
	err := sendLines(context.Background(), strings.NewReader("bad\r\ndad\n\nmad\nand\nadd"), 2, out)
	require.NoError(t, err)
	close(out)

	var batches [][]string
	for batch := range out {
		batches = append(batches, batch)
	}
	assert.Equal(t, [][]string{{"bad", "dad"}, {"mad", "and"}, {"add"}}, batches)
}

func TestSendLinesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := make(chan []string)
	err := sendLines(ctx, strings.NewReader("a\nb\n"), 1, out)
	assert.Equal(t, context.Canceled, err)
}

func TestReadLines(t *testing.T) {
	file := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(file, []byte("bad\ndad\n"), 0644))

	out := make(chan []string, 1)
	require.NoError(t, readLines(context.Background(), file, 10, out))
	assert.Equal(t, []string{"bad", "dad"}, <-out)

	err := readLines(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), 10, out)
	assert.Error(t, err)
}
