package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	FinMind          FinMind          `mapstructure:",squash"`
	Revenue          Revenue          `mapstructure:",squash"`
	Theme            Theme            `mapstructure:",squash"`
	Viewer           Viewer           `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	StockCatalogSync StockCatalogSync `mapstructure:",squash"`
	FetchStatePrune  FetchStatePrune  `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type FinMind struct {
	URL              string        `mapstructure:"finmind_url"`
	Token            string        `mapstructure:"finmind_token"`
	Dataset          string        `mapstructure:"finmind_dataset"`
	StockInfoDataset string        `mapstructure:"finmind_stock_info_dataset"`
	Timeout          time.Duration `mapstructure:"finmind_timeout"`
}

type Revenue struct {
	DefaultStockID   string `mapstructure:"revenue_default_stock_id"`
	DefaultStartDate string `mapstructure:"revenue_default_start_date"`
	DefaultPeriod    int    `mapstructure:"revenue_default_period"`
	YearlyWindow     int    `mapstructure:"revenue_yearly_window"`
}

type Theme struct {
	CookieMaxAge int  `mapstructure:"theme_cookie_max_age"` // Segundos
	CookieSecure bool `mapstructure:"theme_cookie_secure"`
}

type Viewer struct {
	CookieMaxAge int `mapstructure:"viewer_cookie_max_age"` // Segundos
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type StockCatalogSync struct {
	CronSchedule string `mapstructure:"stock_catalog_sync_cron"`
	Enabled      bool   `mapstructure:"stock_catalog_sync_enabled"`
	SyncOnStart  bool   `mapstructure:"stock_catalog_sync_on_start"`
}

type FetchStatePrune struct {
	CronSchedule string        `mapstructure:"fetch_state_prune_cron"`
	MaxIdle      time.Duration `mapstructure:"fetch_state_max_idle"`
	Enabled      bool          `mapstructure:"fetch_state_prune_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("FINMIND_URL", "https://api.finmindtrade.com/api/v4/data")
	viper.SetDefault("FINMIND_TOKEN", "") // Opcional, aumenta o limite de uso
	viper.SetDefault("FINMIND_DATASET", "TaiwanStockMonthRevenue")
	viper.SetDefault("FINMIND_STOCK_INFO_DATASET", "TaiwanStockInfo")
	viper.SetDefault("FINMIND_TIMEOUT", "30s")

	// Valores iniciais da página de dados financeiros
	viper.SetDefault("REVENUE_DEFAULT_STOCK_ID", "2867")
	viper.SetDefault("REVENUE_DEFAULT_START_DATE", "2015-01-01")
	viper.SetDefault("REVENUE_DEFAULT_PERIOD", 60) // Últimos 5 anos de meses
	viper.SetDefault("REVENUE_YEARLY_WINDOW", 5)

	viper.SetDefault("THEME_COOKIE_MAX_AGE", 365*24*60*60)
	viper.SetDefault("THEME_COOKIE_SECURE", false)
	viper.SetDefault("VIEWER_COOKIE_MAX_AGE", 30*24*60*60)

	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8000")

	viper.SetDefault("STOCK_CATALOG_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("STOCK_CATALOG_SYNC_ENABLED", true)
	viper.SetDefault("STOCK_CATALOG_SYNC_ON_START", true)

	viper.SetDefault("FETCH_STATE_PRUNE_CRON", "*/10 * * * *") // A cada 10 minutos
	viper.SetDefault("FETCH_STATE_MAX_IDLE", "30m")
	viper.SetDefault("FETCH_STATE_PRUNE_ENABLED", true)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.FinMind.URL = strings.TrimRight(config.FinMind.URL, "/")

	for i, origin := range config.Cors.AllowedOrigins {
		config.Cors.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
