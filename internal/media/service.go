package media

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/SlpAus/game-night-vote-backend/internal/platform/config"
	"github.com/SlpAus/game-night-vote-backend/internal/platform/database"
	"github.com/redis/go-redis/v9"
)

// CacheKeyPrefix 是缓存单个媒体资料的Redis键前缀，后接视频Ref
const CacheKeyPrefix = "media:info:"

// ErrNoMedia 表示目录条目没有携带媒体引用
var ErrNoMedia = errors.New("该游戏没有关联的媒体资料")

// 模块级配置，由 Configure 在启动时注入
var (
	moduleCfg  config.MediaConfig
	httpClient *http.Client
)

// Configure 注入媒体模块的配置并创建带超时的HTTP客户端。
// 媒体代理是纯外部旁路：它的任何失败都不影响投票和聚合。
func Configure(cfg config.MediaConfig) {
	moduleCfg = cfg
	httpClient = &http.Client{Timeout: cfg.FetchTimeout}
}

// GetInfoByRef 返回一个媒体引用的资料，优先走Redis缓存。
func GetInfoByRef(ref string) (*Info, error) {
	if ref == "" {
		return nil, ErrNoMedia
	}

	// 1. 尝试缓存
	if database.IsRedisHealthy() {
		cached, err := database.RDB.Get(database.Ctx, CacheKeyPrefix+ref).Result()
		if err == nil {
			var info Info
			if err := json.Unmarshal([]byte(cached), &info); err == nil {
				return &info, nil
			}
		} else if err != redis.Nil {
			fmt.Printf("警告: 读取媒体缓存失败: %v\n", err)
		}
	}

	// 2. 缓存未命中，请求oEmbed接口
	info, err := fetchFromOEmbed(ref)
	if err != nil {
		return nil, err
	}

	// 3. 回填缓存
	if database.IsRedisHealthy() {
		if data, err := json.Marshal(info); err == nil {
			_ = database.RDB.Set(database.Ctx, CacheKeyPrefix+ref, data, moduleCfg.CacheTTL).Err()
		}
	}
	return info, nil
}

// IsCached 检查一个媒体引用是否已有缓存，供预取器跳过已完成的条目。
func IsCached(ref string) bool {
	exists, err := database.RDB.Exists(database.Ctx, CacheKeyPrefix+ref).Result()
	return err == nil && exists > 0
}

// fetchFromOEmbed 向YouTube oEmbed接口请求一个视频的元数据
func fetchFromOEmbed(ref string) (*Info, error) {
	watchURL := "https://www.youtube.com/watch?v=" + ref
	endpoint := fmt.Sprintf("%s?url=%s&format=json", moduleCfg.OEmbedEndpoint, url.QueryEscape(watchURL))

	resp, err := httpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("请求oEmbed接口失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oEmbed接口返回异常状态: %s", resp.Status)
	}

	var body oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("解析oEmbed响应失败: %w", err)
	}

	return &Info{
		Ref:          ref,
		VideoURL:     watchURL,
		Title:        body.Title,
		AuthorName:   body.AuthorName,
		ThumbnailURL: body.ThumbnailURL,
	}, nil
}

// 预取器的节流间隔，避免对外部服务造成突发请求
const prefetchInterval = 200 * time.Millisecond
