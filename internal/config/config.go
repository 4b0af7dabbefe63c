// internal/config/config.go
package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App struct {
		// PublicBaseURL is the absolute base used to build verification links
		// embedded in QR codes, e.g. "https://akreditace.example.com".
		PublicBaseURL string `mapstructure:"public_base_url"`
	} `mapstructure:"app"`
	Storage struct {
		Root              string   `mapstructure:"root"`
		AllowedExtensions []string `mapstructure:"allowed_extensions"`
	} `mapstructure:"storage"`
	Admin struct {
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
	} `mapstructure:"admin"`
	JWT struct {
		SecretKey     string `mapstructure:"secret_key"`
		ExpireMinutes int    `mapstructure:"expire_minutes"`
	} `mapstructure:"jwt"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("admin.username", "ADMIN_USERNAME")
	viper.BindEnv("admin.password", "ADMIN_PASSWORD")
	viper.BindEnv("app.public_base_url", "BASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- defaults ---
	if Cfg.Server.Port == "" {
		log.Println("Server port not set, using default ':8080'")
		Cfg.Server.Port = ":8080"
	}
	if Cfg.Storage.Root == "" {
		log.Println("Storage root not set, using default './data/uploads'")
		Cfg.Storage.Root = "./data/uploads"
	}
	if len(Cfg.Storage.AllowedExtensions) == 0 {
		Cfg.Storage.AllowedExtensions = []string{"png", "jpg", "jpeg", "webp", "pdf"}
	}
	if Cfg.Admin.Username == "" {
		Cfg.Admin.Username = "admin"
	}
	if Cfg.JWT.ExpireMinutes <= 0 {
		Cfg.JWT.ExpireMinutes = 60
	}
	if Cfg.App.PublicBaseURL == "" {
		log.Println("Warning: Public base URL is not set; QR codes will embed a relative URL.")
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if !viper.IsSet("auth.enabled") {
		log.Println("Auth enabled flag not set, defaulting to true (enabled)")
		Cfg.Auth.Enabled = true
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Storage Root: %s", Cfg.Storage.Root)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)

	return nil
}
