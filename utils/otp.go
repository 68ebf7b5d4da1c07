package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// otpTTL is how long a registration OTP stays valid.
const otpTTL = time.Minute

// GenerateSecureOTP generates a secure random numeric OTP of the given length.
func GenerateSecureOTP(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

// StoreOTP caches an OTP for the given email.
func StoreOTP(ctx context.Context, email, otp string) error {
	client := GetOTPCacheClient()
	if err := client.Set(ctx, otpKey(email), otp, otpTTL).Err(); err != nil {
		GetLogger().Error("Failed to cache OTP", zap.Error(err))
		return fmt.Errorf("failed to store OTP")
	}
	return nil
}

// VerifyOTPRecord compares the provided OTP against the cached one and deletes
// it on success.
func VerifyOTPRecord(ctx context.Context, email, providedOTP string) error {
	client := GetOTPCacheClient()

	stored, err := client.Get(ctx, otpKey(email)).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("OTP not found or expired")
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}
	if stored != providedOTP {
		return fmt.Errorf("OTP does not match")
	}

	if err := client.Del(ctx, otpKey(email)).Err(); err != nil {
		GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	return nil
}

func otpKey(email string) string {
	return fmt.Sprintf("otp:%s", email)
}
