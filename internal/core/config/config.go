package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// CarrierCode is the fixed carrier code this gateway registers with the
// host checkout. Every shipping method and tracking status carries it.
const CarrierCode = "frenetshipping"

// AppConfig holds the configuration for the gateway.
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

	// RedisURL is the connection URL for the quote cache backend.
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379"`

	// Carrier holds the carrier presentation and quote post-processing settings.
	Carrier CarrierConfig `mapstructure:",squash"`

	// Frenet holds the Frenet API connection settings.
	Frenet FrenetConfig `mapstructure:",squash"`

	// Store holds the e-commerce store API settings used for tracking lookups.
	Store StoreConfig `mapstructure:",squash"`
}

// CarrierConfig holds how the carrier presents itself to the checkout and
// how quotes are post-processed before display.
//
// Token and OriginPostcode are deliberately not marked required: their
// absence means "carrier not configured" and is handled by the rate
// collection gate, not by a boot failure.
type CarrierConfig struct {
	// Active toggles the carrier on or off for the whole store.
	Active bool `mapstructure:"CARRIER_ACTIVE" default:"true"`
	// Title is the carrier title shown next to every shipping method.
	Title string `mapstructure:"CARRIER_TITLE" default:"Frenet"`
	// Name is the label returned by the allowed-methods listing.
	Name string `mapstructure:"CARRIER_NAME" default:"Frenet Shipping"`
	// OriginPostcode is the shipping origin CEP (Brazilian postal code).
	OriginPostcode string `mapstructure:"ORIGIN_POSTCODE"`
	// AdditionalLeadTime is added, in days, to every quoted delivery time.
	AdditionalLeadTime int `mapstructure:"ADDITIONAL_LEAD_TIME" default:"0"`
	// ShowShippingForecast appends a delivery forecast to method titles.
	ShowShippingForecast bool `mapstructure:"SHOW_SHIPPING_FORECAST" default:"true"`
	// ShippingForecast is the forecast template; {{d}} is replaced by the
	// effective delivery time in days.
	ShippingForecast string `mapstructure:"SHIPPING_FORECAST" default:"Delivery in up to {{d}} business day(s)"`
	// QuoteCacheTTLSeconds bounds how long a quote result stays cached.
	// Zero means no expiration.
	QuoteCacheTTLSeconds int `mapstructure:"QUOTE_CACHE_TTL_SECONDS" default:"3600"`
	// DefaultItemWeight is the fallback unit weight in kg for products
	// without a weight attribute.
	DefaultItemWeight float64 `mapstructure:"DEFAULT_ITEM_WEIGHT" default:"0.5"`
}

// FrenetConfig holds the credentials for the Frenet API.
type FrenetConfig struct {
	// APIURL is the base URL of the Frenet REST API.
	APIURL string `mapstructure:"FRENET_API_URL" default:"https://api.frenet.com.br"`
	// Token is the API access token sent on every request.
	Token string `mapstructure:"FRENET_TOKEN"`
}

// StoreConfig holds the credentials for the store's order API, used to
// resolve tracking numbers back to shipping service codes.
type StoreConfig struct {
	// URL is the base URL of the store.
	URL string `mapstructure:"STORE_URL"`
	// ConsumerKey is the public key for API access.
	ConsumerKey string `mapstructure:"STORE_CONSUMER_KEY"`
	// ConsumerSecret is the secret key for API access.
	ConsumerSecret string `mapstructure:"STORE_CONSUMER_SECRET"`
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
