package database

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// DataVersionKey 是一个 Redis String (计数器)，记录投票台账和目录的数据版本。
// 每次成功的写入（投票提交、游戏提交、管理清空）都会使它递增，
// 结果报告的缓存用它来判断自己是否过期。
const DataVersionKey = "data:version"

// BumpDataVersion 在一次成功写入后递增数据版本。
// Redis不可用时递增失败不影响写入本身，缓存会退化为按TTL过期。
func BumpDataVersion() {
	if !IsRedisHealthy() {
		return
	}
	if err := RDB.Incr(Ctx, DataVersionKey).Err(); err != nil {
		fmt.Printf("警告: 无法递增数据版本: %v\n", err)
	}
}

// GetDataVersion 返回当前数据版本，键不存在时为0。
func GetDataVersion() (int64, error) {
	version, err := RDB.Get(Ctx, DataVersionKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return version, nil
}
