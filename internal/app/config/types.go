package config

type (
	InternalConfig struct {
		App            App
		JWT            JWT
		PaymentGateway PaymentGateway
		Video          Video
		Booking        Booking
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		SMTP     SMTP
	}

	App struct {
		Env                 string
		Port                string
		Version             string
		Timezone            string
		EndpointPrefix      string
		BaseUrl             string
		MailerEmailSender   string
		RabbitMQMailerQueue string
		MaxRequests         int
		ShutdownTimeout     int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	SMTP struct {
		Host        string
		Username    string
		Password    string
		EmailSender string
		Port        int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	PaymentGateway struct {
		CheckoutUrl    string
		MerchantID     string
		MerchantSecret string
		Currency       string
		ReturnUrl      string
		CancelUrl      string
		NotifyUrl      string
	}

	Video struct {
		ApiKey                string
		ApiSecret             string
		CredentialTTLInHours  int
	}

	Booking struct {
		StagingTTLInMinutes      int
		ConfirmMaxAttempts       int
		ConfirmBackoffBaseInMs   int
		WebhookRatePerSecond     float64
		WebhookRateBurst         int
	}
)
