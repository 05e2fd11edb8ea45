package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Just enough of the record shape to read the expiry
type recordData struct {
	ID        string    `json:"ID"`
	ExpiresAt time.Time `json:"ExpiresAt"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning history indexes for stale entries...")

	var cursor uint64
	pruned := 0
	scanned := 0

	for {
		keys, nextCursor, err := client.Scan(ctx, cursor, "analysis_history:*", 100).Result()
		if err != nil {
			log.Fatal("Scan failed:", err)
		}

		for _, indexKey := range keys {
			scanned++
			entityID := strings.TrimPrefix(indexKey, "analysis_history:")

			ids, err := client.ZRange(ctx, indexKey, 0, -1).Result()
			if err != nil {
				log.Printf("Failed to read index %s: %v", indexKey, err)
				continue
			}

			for _, id := range ids {
				raw, err := client.Get(ctx, "analysis:"+id).Result()
				if err == redis.Nil {
					// Record evicted but the index entry lingers
					if err := client.ZRem(ctx, indexKey, id).Err(); err != nil {
						log.Printf("Failed to prune %s from %s: %v", id, indexKey, err)
						continue
					}
					fmt.Printf("Pruned %s from entity %s (record evicted)\n", id, entityID)
					pruned++
					continue
				}
				if err != nil {
					log.Printf("Failed to read record %s: %v", id, err)
					continue
				}

				var rec recordData
				if err := json.Unmarshal([]byte(raw), &rec); err != nil {
					log.Printf("Failed to parse record %s: %v", id, err)
					continue
				}

				if time.Now().After(rec.ExpiresAt) {
					if err := client.Del(ctx, "analysis:"+id).Err(); err != nil {
						log.Printf("Failed to delete expired record %s: %v", id, err)
						continue
					}
					if err := client.ZRem(ctx, indexKey, id).Err(); err != nil {
						log.Printf("Failed to prune %s from %s: %v", id, indexKey, err)
						continue
					}
					fmt.Printf("Pruned %s from entity %s (expired %s)\n", id, entityID, rec.ExpiresAt.Format(time.RFC3339))
					pruned++
				}
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	fmt.Printf("Done. Scanned %d indexes, pruned %d entries.\n", scanned, pruned)
}
