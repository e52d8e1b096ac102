package report

import (
	"encoding/json"
	"time"

	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

const (
	// CacheKey is a Redis String holding the serialized results report.
	CacheKey = "report:results"

	// CacheTTL bounds staleness when version bumps are lost (e.g. Redis restart).
	CacheTTL = 1 * time.Minute
)

// cachedReport is the envelope stored in Redis. The data version recorded
// at compute time lets readers detect reports that predate newer writes.
type cachedReport struct {
	DataVersion int64         `json:"dataVersion"`
	Report      ResultsReport `json:"report"`
}

// GetResultsCache returns the cached report if it is present and was built
// at the given data version. A miss or a stale entry returns (nil, nil).
func GetResultsCache(version int64) (*ResultsReport, error) {
	result, err := database.RDB.Get(database.Ctx, CacheKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cached cachedReport
	if err := json.Unmarshal([]byte(result), &cached); err != nil {
		return nil, err
	}
	if cached.DataVersion != version {
		return nil, nil
	}
	return &cached.Report, nil
}

// SetResultsCache stores the report together with the data version it was
// computed at.
func SetResultsCache(report *ResultsReport, version int64) error {
	data, err := json.Marshal(cachedReport{DataVersion: version, Report: *report})
	if err != nil {
		return err
	}
	return database.RDB.Set(database.Ctx, CacheKey, data, CacheTTL).Err()
}

// InvalidateCache drops the cached report outright. The admin reset uses it;
// normal writes rely on the data version instead.
func InvalidateCache() {
	if !database.IsRedisHealthy() {
		return
	}
	_ = database.RDB.Del(database.Ctx, CacheKey).Err()
}
