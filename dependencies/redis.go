// dependencies/redis.go
package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/community_service/config"
)

// InitRedis 初始化 Redis 客户端并用 Ping 验证连通性。
// - Redis 在本服务中只承载趋势标签榜单缓存，连接失败时上层可以选择降级运行。
func InitRedis(cfg *appConfig.RedisConfig, logger *core.ZapLogger) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis 地址 (redis.address) 未配置")
	}

	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 10 // go-redis 的默认值级别，显式写出便于配置审查
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: poolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Ping Redis 失败", zap.String("address", cfg.Address), zap.Error(err))
		return nil, fmt.Errorf("无法连接到 Redis (%s): %w", cfg.Address, err)
	}

	logger.Info("成功初始化 Redis 连接", zap.String("address", cfg.Address), zap.Int("db", cfg.DB))
	return client, nil
}
