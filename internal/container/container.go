package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/kudoswall/kudos-wall-backend/config"
	"github.com/kudoswall/kudos-wall-backend/internal/domain/service"
	"github.com/kudoswall/kudos-wall-backend/internal/infrastructure/memory"
	"github.com/kudoswall/kudos-wall-backend/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire themselves from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	tokenManager *helpers.TokenManager
	rabbitPub    *helpers.RabbitPublisher

	emailService service.EmailService
	emailCapture *memory.EmailCapture
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }
func SetPGPool(p *pgxpool.Pool)  { pgPool = p }
func GetPGPool() *pgxpool.Pool   { return pgPool }
func SetRedis(r *redis.Client)   { redisClient = r }
func GetRedis() *redis.Client    { return redisClient }

func SetTokens(m *helpers.TokenManager) { tokenManager = m }
func GetTokens() *helpers.TokenManager {
	if tokenManager != nil {
		return tokenManager
	}
	return helpers.NewTokenManager(0)
}

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }

func SetEmailService(s service.EmailService) { emailService = s }
func GetEmailService() service.EmailService  { return emailService }

// Email capture is only set under uat/test, alongside the email service.
func SetEmailCapture(c *memory.EmailCapture) { emailCapture = c }
func GetEmailCapture() *memory.EmailCapture  { return emailCapture }
