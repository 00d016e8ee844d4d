package runner

import (
	"context"

	"word_dict/client"
	"word_dict/common"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

// ScanFromSourceRedis scans the keys of every source node, each node in its own goroutine.
func (p *Runner) ScanFromSourceRedis(ctx context.Context, allWords chan<- []string) error {
	qps := p.Qps
	if qps <= 0 {
		qps = 15000
	}
	qos := common.StartQoS(qps)
	defer qos.Close()

	if p.SourceHost.IsMultiNode() {
		common.Logger.Infof("scan %d source nodes concurrently", len(p.SourceHost.Addr))
	}

	group, ctx := errgroup.WithContext(ctx)
	for idx := range p.SourceHost.Addr {
		var singleHost client.RedisHost
		if err := copier.Copy(&singleHost, &p.SourceHost); err != nil {
			return err
		}
		singleHost.Addr = []string{p.SourceHost.Addr[idx]}

		group.Go(func() error {
			return p.scanNode(ctx, singleHost, qos, allWords)
		})
	}
	return group.Wait()
}

func (p *Runner) scanNode(ctx context.Context, host client.RedisHost, qos *common.Qos, allWords chan<- []string) error {
	sourceClient, err := client.NewRedisClient(host, p.SourceDB)
	if err != nil {
		return common.Logger.Errorf("create redis client with host[%v] db[%v] error[%v]",
			host, p.SourceDB, err)
	}
	defer sourceClient.Close()
	common.Logger.Infof("build connection[%v]", sourceClient.String())

	var cursor int64
	for {
		select {
		case <-qos.Bucket:
		case <-ctx.Done():
			return ctx.Err()
		}

		next, keys, err := sourceClient.ScanKeys(cursor, p.BatchCount)
		if err != nil {
			return common.Logger.Errorf("scan %v with cursor %d failed[%v]", host, cursor, err)
		}
		cursor = next
		if len(keys) != 0 {
			if err := send(ctx, allWords, keys); err != nil {
				return err
			}
		}

		if cursor == 0 {
			return nil
		}
	}
}
