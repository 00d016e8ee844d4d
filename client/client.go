package client

import (
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"word_dict/common"

	"github.com/garyburd/redigo/redis"
)

type RedisHost struct {
	Addr      []string
	Password  string
	TimeoutMs uint64
	Role      string // "source"
	Authtype  string // "auth" or "adminauth"
}

func (p RedisHost) String() string {
	return fmt.Sprintf("%s redis addr: %s", p.Role, strings.Join(p.Addr, common.Splitter))
}

func (p RedisHost) IsMultiNode() bool {
	return len(p.Addr) > 1
}

type RedisClient struct {
	redisHost RedisHost
	db        int32
	conn      redis.Conn
}

func (p RedisClient) String() string {
	return p.redisHost.String()
}

// NewRedisClient connects to the first address of redisHost and selects db.
func NewRedisClient(redisHost RedisHost, db int32) (RedisClient, error) {
	if len(redisHost.Addr) == 0 {
		return RedisClient{}, fmt.Errorf("%s redis address is empty", redisHost.Role)
	}
	rc := RedisClient{
		redisHost: redisHost,
		db:        db,
	}

	// send ping command first
	ret, err := redis.String(rc.Do("ping"))
	if err != nil {
		return RedisClient{}, err
	}
	if ret != "PONG" {
		return RedisClient{}, fmt.Errorf("ping return invaild[%v]", ret)
	}
	return rc, nil
}

func (p *RedisClient) CheckHandleNetError(err error) bool {
	if err == io.EOF {
		p.reset()
		return true
	} else if _, ok := err.(net.Error); ok {
		p.reset()
		return true
	}
	return false
}

func (p *RedisClient) reset() {
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
		// retry network errors after 1 second
		time.Sleep(time.Second)
	}
}

func (p *RedisClient) Connect() error {
	var err error
	if p.conn != nil {
		return nil
	}

	addr := p.redisHost.Addr[0]
	if p.redisHost.TimeoutMs == 0 {
		p.conn, err = redis.Dial("tcp", addr)
	} else {
		timeout := time.Millisecond * time.Duration(p.redisHost.TimeoutMs)
		p.conn, err = redis.Dial("tcp", addr, redis.DialConnectTimeout(timeout),
			redis.DialReadTimeout(timeout), redis.DialWriteTimeout(timeout))
	}
	if err != nil {
		return err
	}
	if len(p.redisHost.Password) != 0 {
		authtype := p.redisHost.Authtype
		if authtype == "" {
			authtype = "auth"
		}
		if _, err = p.conn.Do(authtype, p.redisHost.Password); err != nil {
			p.conn.Close()
			p.conn = nil
			return err
		}
	}
	if _, err = p.conn.Do("select", p.db); err != nil {
		p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

func (p *RedisClient) Do(commandName string, args ...interface{}) (interface{}, error) {
	var err error
	var result interface{}
	for tryCount := 0; tryCount <= common.MaxRetryCount; tryCount++ {
		if p.conn == nil {
			if err = p.Connect(); err != nil {
				if p.CheckHandleNetError(err) {
					continue
				}
				return nil, err
			}
		}

		result, err = p.conn.Do(commandName, args...)
		if err != nil {
			if p.CheckHandleNetError(err) {
				continue
			}
			return nil, err
		}
		return result, nil
	}
	return nil, fmt.Errorf("%s retry %d times failed[%v]", commandName, common.MaxRetryCount, err)
}

func (p *RedisClient) Close() {
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
}
