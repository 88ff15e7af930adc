package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	TransactionLog string `env:"TRANSACTION_LOG" envDefault:"transactions.log"`
	DatabaseURL    string `env:"DATABASE_URL" envDefault:"checkout.db"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
