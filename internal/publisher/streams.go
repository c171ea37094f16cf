package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// publishJSONToStream serializes data as JSON and appends it to a Redis
// stream via XADD. The payload travels in a "data" field next to a
// publication timestamp, so stream consumers can decode without knowing
// the concrete type.
func publishJSONToStream(ctx context.Context, client *redis.Client, stream string, data interface{}) (string, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	return client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"data":      string(jsonBytes),
			"timestamp": time.Now().Unix(),
		},
	}).Result()
}
