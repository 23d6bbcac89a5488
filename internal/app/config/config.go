package config

import (
	"clinicbook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "clinicbook"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "smtp_host"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                 utils.GetEnvString("APP_ENV", "development"),
			Port:                utils.GetEnvString("APP_PORT", ":8080"),
			Version:             utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:            utils.GetEnvString("APP_TIMEZONE", "Asia/Colombo"),
			EndpointPrefix:      utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			BaseUrl:             utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			MailerEmailSender:   utils.GetEnvString("APP_MAILER_EMAIL_SENDER", ""),
			RabbitMQMailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "mailer"),
			MaxRequests:         utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		PaymentGateway: PaymentGateway{
			CheckoutUrl:    utils.GetEnvString("PAYMENT_GATEWAY_CHECKOUT_URL", "https://sandbox.gateway.example/pay/checkout"),
			MerchantID:     utils.GetEnvString("PAYMENT_GATEWAY_MERCHANT_ID", ""),
			MerchantSecret: utils.GetEnvString("PAYMENT_GATEWAY_MERCHANT_SECRET", ""),
			Currency:       utils.GetEnvString("PAYMENT_GATEWAY_CURRENCY", "LKR"),
			ReturnUrl:      utils.GetEnvString("PAYMENT_GATEWAY_RETURN_URL", "http://localhost:8080/api/v1/bookings/confirm"),
			CancelUrl:      utils.GetEnvString("PAYMENT_GATEWAY_CANCEL_URL", "http://localhost:8080/payment-cancelled"),
			NotifyUrl:      utils.GetEnvString("PAYMENT_GATEWAY_NOTIFY_URL", "http://localhost:8080/api/v1/webhooks/payment"),
		},
		Video: Video{
			ApiKey:               utils.GetEnvString("VIDEO_API_KEY", ""),
			ApiSecret:            utils.GetEnvString("VIDEO_API_SECRET", ""),
			CredentialTTLInHours: utils.GetEnvInt("VIDEO_CREDENTIAL_TTL_IN_HOURS", 720),
		},
		Booking: Booking{
			StagingTTLInMinutes:    utils.GetEnvInt("BOOKING_STAGING_TTL_IN_MINUTES", 30),
			ConfirmMaxAttempts:     utils.GetEnvInt("BOOKING_CONFIRM_MAX_ATTEMPTS", 3),
			ConfirmBackoffBaseInMs: utils.GetEnvInt("BOOKING_CONFIRM_BACKOFF_BASE_IN_MS", 100),
			WebhookRatePerSecond:   utils.GetEnvFloat("BOOKING_WEBHOOK_RATE_PER_SECOND", 5),
			WebhookRateBurst:       utils.GetEnvInt("BOOKING_WEBHOOK_RATE_BURST", 10),
		},
	}
}
