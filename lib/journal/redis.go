package journal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// DefaultRetention bounds how long a finished or abandoned batch stays resumable.
const DefaultRetention = 7 * 24 * time.Hour

var _ IStepJournal = &RedisStepJournal{}

// RedisStepJournal stores each batch as a hash keyed by step name with a JSON
// encoded StepRecord as the value.
type RedisStepJournal struct {
	client    *redis.Client
	retention time.Duration
}

func NewRedisStepJournal(client *redis.Client, retention time.Duration) *RedisStepJournal {
	return &RedisStepJournal{
		client:    client,
		retention: retention,
	}
}

// NewRedisStepJournalFromURL connects to the redis instance addressed by a redis:// url.
func NewRedisStepJournalFromURL(url string) (*RedisStepJournal, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis url")
	}
	return NewRedisStepJournal(redis.NewClient(opts), DefaultRetention), nil
}

func (j *RedisStepJournal) Load(ctx context.Context, key string) (map[string]StepRecord, error) {
	values, err := j.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed call to HGETALL %s", key)
	}

	records := make(map[string]StepRecord, len(values))
	for step, value := range values {
		var record StepRecord
		if err := json.Unmarshal([]byte(value), &record); err != nil {
			return nil, errors.Wrapf(err, "corrupt journal entry %s/%s", key, step)
		}
		records[step] = record
	}
	return records, nil
}

func (j *RedisStepJournal) Record(ctx context.Context, key string, record StepRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to encode journal entry")
	}
	if err := j.client.HSet(ctx, key, record.Step, string(data)).Err(); err != nil {
		return errors.Wrapf(err, "failed call to HSET %s", key)
	}
	if j.retention > 0 {
		if err := j.client.Expire(ctx, key, j.retention).Err(); err != nil {
			return errors.Wrapf(err, "failed call to EXPIRE %s", key)
		}
	}
	return nil
}

func (j *RedisStepJournal) Close() error {
	return j.client.Close()
}
