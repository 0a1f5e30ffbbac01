// Package journal keeps a per-connection record of wire traffic in Redis,
// so a misbehaving game session can be replayed after the fact. Journaling
// is best effort: it must never slow down or fail the connection it records.
package journal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hexhaven/hexhaven/internal/logger"
)

// Direction of a journaled line.
const (
	Inbound  = "<-"
	Outbound = "->"
)

// retention bounds how long a connection's journal survives.
const retention = 24 * time.Hour

// writeBuffer is the number of lines that may queue before drops begin.
const writeBuffer = 1024

// Journal records the raw message lines of one connection under a unique
// Redis list key. A nil Journal is valid and records nothing.
type Journal struct {
	rdb *redis.Client
	key string

	lines chan string
	done  chan struct{}
}

// New opens a journal against the Redis server at addr. The connection is
// verified before use; on failure the error is returned and the caller
// should continue without journaling.
func New(addr string) (*Journal, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("journal: connect %s: %w", addr, err)
	}

	j := &Journal{
		rdb:   rdb,
		key:   "journal:" + uuid.NewString(),
		lines: make(chan string, writeBuffer),
		done:  make(chan struct{}),
	}
	go j.writer()
	return j, nil
}

// Key returns the Redis key this connection's lines are stored under.
func (j *Journal) Key() string {
	if j == nil {
		return ""
	}
	return j.key
}

// Record queues one line for journaling. It never blocks; lines are dropped
// when the writer cannot keep up.
func (j *Journal) Record(direction, line string) {
	if j == nil {
		return
	}
	entry := fmt.Sprintf("%s %s %s", time.Now().UTC().Format(time.RFC3339Nano), direction, line)
	select {
	case j.lines <- entry:
	default:
		logger.LogError("journal buffer full, dropping line")
	}
}

// Replay returns every line recorded so far, oldest first.
func (j *Journal) Replay(ctx context.Context) ([]string, error) {
	if j == nil {
		return nil, nil
	}
	return j.rdb.LRange(ctx, j.key, 0, -1).Result()
}

// Close flushes queued lines and releases the Redis connection.
func (j *Journal) Close() {
	if j == nil {
		return
	}
	close(j.lines)
	<-j.done
	j.rdb.Close()
}

func (j *Journal) writer() {
	defer close(j.done)
	ctx := context.Background()
	for line := range j.lines {
		pipe := j.rdb.Pipeline()
		pipe.RPush(ctx, j.key, line)
		pipe.Expire(ctx, j.key, retention)
		if _, err := pipe.Exec(ctx); err != nil {
			logger.LogError("journal write: %v", err)
		}
	}
}
