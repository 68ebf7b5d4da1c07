package utils

import (
	"context"
	"log"
	"time"

	"fitbook/config"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// OTPCacheClient is the dedicated client for OTP storage.
var OTPCacheClient *redis.Client

// InitOTPCache initializes the Redis client used for short-lived OTPs.
func InitOTPCache() {
	OTPCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOTPDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := OTPCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (OTP): %v", err)
	}
}

// GetOTPCacheClient returns the Redis client for OTP storage.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		InitOTPCache()
	}
	return OTPCacheClient
}

// NotifyQueueRedisOpt returns the asynq connection options for the
// notification queue.
func NotifyQueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}
}
