package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	RedisAddr     string
	RedisPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool

	// Blob storage account used by the SAS signer. The key is the
	// base64-encoded account key, exactly as issued by the provider.
	StorageAccountName string
	StorageAccountKey  string
	StorageBaseURL     string
	MediaBaseURL       string

	TranscoderBaseURL   string
	TranscoderProject   string
	TranscoderTransform string
	TranscoderToken     string

	CdnTenantID       string
	CdnClientID       string
	CdnClientSecret   string
	CdnSubscriptionID string
	CdnResourceGroup  string
	CdnProfileName    string
	CdnEndpointName   string

	DocumentsContainer string
	FfmpegPath         string
	JWTPublicKey       string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	required := []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"STORAGE_ACCOUNT_NAME",
		"STORAGE_ACCOUNT_KEY",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"TRANSCODER_BASE_URL",
		"TRANSCODER_PROJECT",
		"TRANSCODER_TRANSFORM",
		"TRANSCODER_TOKEN",
	}
	for _, key := range required {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("STORAGE_BASE_URL", fmt.Sprintf("https://%s.blob.core.windows.net/", viper.GetString("STORAGE_ACCOUNT_NAME")))
	viper.SetDefault("DOCUMENTS_CONTAINER", "documents")
	viper.SetDefault("FFMPEG_PATH", "ffmpeg")

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),

		StorageAccountName: viper.GetString("STORAGE_ACCOUNT_NAME"),
		StorageAccountKey:  viper.GetString("STORAGE_ACCOUNT_KEY"),
		StorageBaseURL:     viper.GetString("STORAGE_BASE_URL"),
		MediaBaseURL:       viper.GetString("MEDIA_BASE_URL"),

		TranscoderBaseURL:   viper.GetString("TRANSCODER_BASE_URL"),
		TranscoderProject:   viper.GetString("TRANSCODER_PROJECT"),
		TranscoderTransform: viper.GetString("TRANSCODER_TRANSFORM"),
		TranscoderToken:     viper.GetString("TRANSCODER_TOKEN"),

		CdnTenantID:       viper.GetString("CDN_TENANT_ID"),
		CdnClientID:       viper.GetString("CDN_CLIENT_ID"),
		CdnClientSecret:   viper.GetString("CDN_CLIENT_SECRET"),
		CdnSubscriptionID: viper.GetString("CDN_SUBSCRIPTION_ID"),
		CdnResourceGroup:  viper.GetString("CDN_RESOURCE_GROUP"),
		CdnProfileName:    viper.GetString("CDN_PROFILE_NAME"),
		CdnEndpointName:   viper.GetString("CDN_ENDPOINT_NAME"),

		DocumentsContainer: viper.GetString("DOCUMENTS_CONTAINER"),
		FfmpegPath:         viper.GetString("FFMPEG_PATH"),
		JWTPublicKey:       viper.GetString("JWT_PUBLIC_KEY"),
	}, nil
}
