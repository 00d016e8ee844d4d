package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// readLines sends the non-empty lines of file in batches of batchCount.
func readLines(ctx context.Context, file string, batchCount int, out chan<- []string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open input file[%v] failed[%v]", file, err)
	}
	defer f.Close()

	if err := sendLines(ctx, f, batchCount, out); err != nil {
		return fmt.Errorf("read input file[%v] failed[%v]", file, err)
	}
	return nil
}

func sendLines(ctx context.Context, r io.Reader, batchCount int, out chan<- []string) error {
	scanner := bufio.NewScanner(r)
	batch := make([]string, 0, batchCount)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		batch = append(batch, line)
		if len(batch) == batchCount {
			if err := send(ctx, out, batch); err != nil {
				return err
			}
			batch = make([]string, 0, batchCount)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(batch) != 0 {
		return send(ctx, out, batch)
	}
	return nil
}

func send(ctx context.Context, out chan<- []string, batch []string) error {
	select {
	case out <- batch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
