package wire

import (
	"strings"

	"salon-booking/internal/notification"
	"salon-booking/internal/scheduling"
	"salon-booking/pkg/redislock"
	"salon-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// metricsNamespace turns the app name into a valid prometheus namespace.
func metricsNamespace(name string) string {
	if name == "" {
		return "salon_booking"
	}
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(name)
}

// NewLocker picks the slot lock backend. The returned redis client is nil
// for the local backend.
func NewLocker(config *utils.Config, logger *zap.Logger) (scheduling.Locker, *redis.Client, error) {
	if config.Lock.Backend != "redis" {
		logger.Info("Using in-process slot lock")
		return scheduling.NewLocalLocker(), nil, nil
	}

	client, err := redislock.NewClient(config.Redis)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Using redis slot lock", zap.String("addr", config.Redis.Addr))
	return redislock.New(client, config.Lock.TTL, config.Lock.Wait), client, nil
}

// NewNotifier sends real email over SMTP when enabled and logs it otherwise.
func NewNotifier(config *utils.Config, logger *zap.Logger) notification.Notifier {
	var sender notification.Sender = notification.NewLogSender(logger)
	if config.Email.Enabled {
		sender = notification.NewSMTPSender(config.Email)
	}
	return notification.NewEmailNotifier(sender, config.App.BusinessName, logger)
}
