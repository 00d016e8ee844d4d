package client

import (
	"fmt"
	"strconv"

	"github.com/garyburd/redigo/redis"
)

// ScanKeys runs one SCAN step and returns the next cursor, 0 when the scan is complete.
func (p *RedisClient) ScanKeys(cursor int64, count int) (int64, []string, error) {
	reply, err := p.Do("scan", cursor, "count", count)
	if err != nil {
		return 0, nil, err
	}
	return ParseScanReply(reply)
}

func ParseScanReply(reply interface{}) (int64, []string, error) {
	replyList, err := redis.Values(reply, nil)
	if err != nil || len(replyList) != 2 {
		return 0, nil, fmt.Errorf("scan result invalid[%+v]", reply)
	}

	cursorBytes, ok := replyList[0].([]byte)
	if !ok {
		return 0, nil, fmt.Errorf("scan cursor invalid[%+v]", replyList[0])
	}
	next, err := strconv.ParseInt(string(cursorBytes), 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("parse scan cursor failed[%v]", err)
	}

	keys, err := redis.Strings(replyList[1], nil)
	if err != nil {
		return 0, nil, fmt.Errorf("scan keys invalid[%v]", err)
	}
	return next, keys, nil
}
