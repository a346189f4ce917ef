package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// RedisURL is the connection URL for the Redis instance backing the
	// transaction ledger and the validated-address cache.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`

	// TaxCloud holds the tax provider API configuration.
	TaxCloud TaxCloudConfig `mapstructure:",squash"`

	// Tax holds merchant-facing tax calculation options.
	Tax TaxOptions `mapstructure:",squash"`

	// WooCommerce holds the WooCommerce API configuration.
	WooCommerce WooCommerceConfig `mapstructure:",squash"`

	// Origin is the default shipping origin used when a product has no
	// configured origin location.
	Origin OriginConfig `mapstructure:",squash"`
}

// TaxCloudConfig holds the credentials and endpoints for the TaxCloud API.
type TaxCloudConfig struct {
	// APIKey is the X-API-KEY credential for the v3 API.
	APIKey string `mapstructure:"TAXCLOUD_API_KEY" required:"true"`
	// ConnectionID is the store's connection identifier, embedded in v3 URLs.
	ConnectionID string `mapstructure:"TAXCLOUD_CONNECTION_ID" required:"true"`
	// APIURL is the base URL of the v3 API.
	APIURL string `mapstructure:"TAXCLOUD_API_URL" default:"https://api.v3.taxcloud.com/tax"`
	// LegacyAPIURL is the base URL of the legacy v1 API, still used for the
	// locations and offline transaction endpoints.
	LegacyAPIURL string `mapstructure:"TAXCLOUD_LEGACY_API_URL" default:"https://api.taxcloud.net/1.0/TaxCloud"`
	// APILoginID is the legacy v1 login identifier.
	APILoginID string `mapstructure:"TAXCLOUD_API_LOGIN_ID"`
	// TimeoutSeconds is the request timeout for provider calls.
	TimeoutSeconds int `mapstructure:"TAXCLOUD_TIMEOUT_SECONDS" default:"30"`
}

// TaxOptions holds merchant-configurable tax behavior.
type TaxOptions struct {
	// BasedOn selects how item prices are submitted: item-price or line-price.
	BasedOn string `mapstructure:"TAX_BASED_ON" default:"item-price"`
	// CaptureImmediately captures orders as soon as payment completes instead
	// of waiting for order completion.
	CaptureImmediately bool `mapstructure:"TAX_CAPTURE_IMMEDIATELY" default:"false"`
	// SessionAddressTTLSeconds bounds how long pre-checkout validated
	// addresses stay cached.
	SessionAddressTTLSeconds int `mapstructure:"TAX_SESSION_ADDRESS_TTL_SECONDS" default:"1800"`
}

// WooCommerceConfig holds the credentials for the WooCommerce Store.
type WooCommerceConfig struct {
	// URL is the base URL of the WooCommerce store.
	URL string `mapstructure:"WC_URL" required:"true"`
	// ConsumerKey is the public key for API access.
	ConsumerKey string `mapstructure:"WC_CONSUMER_KEY" required:"true"`
	// ConsumerSecret is the secret key for API access.
	ConsumerSecret string `mapstructure:"WC_CONSUMER_SECRET" required:"true"`
}

// OriginConfig holds the default shipping origin address.
type OriginConfig struct {
	// Line1 is the street address of the default origin.
	Line1 string `mapstructure:"ORIGIN_LINE1" required:"true"`
	// Line2 is the optional secondary address line.
	Line2 string `mapstructure:"ORIGIN_LINE2"`
	// City is the origin city.
	City string `mapstructure:"ORIGIN_CITY" required:"true"`
	// State is the origin state abbreviation.
	State string `mapstructure:"ORIGIN_STATE" required:"true"`
	// Zip5 is the 5-digit origin ZIP code.
	Zip5 string `mapstructure:"ORIGIN_ZIP5" required:"true"`
	// Zip4 is the optional 4-digit ZIP extension.
	Zip4 string `mapstructure:"ORIGIN_ZIP4"`
	// Country is the origin country.
	Country string `mapstructure:"ORIGIN_COUNTRY" default:"US"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
