package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Upload          Upload          `mapstructure:",squash"`
	RatioRecalcSync RatioRecalcSync `mapstructure:",squash"`
	Seed            Seed            `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	TrustedProxies     []string `mapstructure:"trusted_proxies"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	AccessTokenTTL     time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL    time.Duration `mapstructure:"refresh_token_ttl"`
	LoginRatePerMinute int           `mapstructure:"login_rate_per_minute"`
	LoginRateBurst     int           `mapstructure:"login_rate_burst"`
}

type Upload struct {
	Dir       string `mapstructure:"upload_dir"`
	MaxSizeMB int64  `mapstructure:"upload_max_size_mb"`
}

type RatioRecalcSync struct {
	CronSchedule      string `mapstructure:"ratio_recalc_cron"`
	MaxConcurrentJobs int    `mapstructure:"ratio_recalc_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"ratio_recalc_enabled"`
}

type Seed struct {
	MasterUsername string `mapstructure:"seed_master_username"`
	MasterPassword string `mapstructure:"seed_master_password"`
	MasterEmail    string `mapstructure:"seed_master_email"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("TRUSTED_PROXIES", "") // IPs ou CIDRs cujo X-Forwarded-For é aceito

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/coop_ratios?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("ACCESS_TOKEN_TTL", "60m")
	viper.SetDefault("REFRESH_TOKEN_TTL", "168h")
	viper.SetDefault("LOGIN_RATE_PER_MINUTE", 10) // tentativas de login por minuto por cliente
	viper.SetDefault("LOGIN_RATE_BURST", 5)

	viper.SetDefault("UPLOAD_DIR", "uploads/company_financials")
	viper.SetDefault("UPLOAD_MAX_SIZE_MB", 10)

	viper.SetDefault("RATIO_RECALC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RATIO_RECALC_MAX_CONCURRENT_JOBS", 4)
	viper.SetDefault("RATIO_RECALC_ENABLED", false)

	viper.SetDefault("SEED_MASTER_USERNAME", "master")
	viper.SetDefault("SEED_MASTER_PASSWORD", "")
	viper.SetDefault("SEED_MASTER_EMAIL", "master@localhost")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY não pode ser vazio")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile tenta carregar o .env do diretório atual e dos diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
