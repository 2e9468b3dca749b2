// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	DBDriver            string          `mapstructure:"DB_DRIVER"`
	DBSource            string          `mapstructure:"DB_SOURCE"`
	ServerAddress       string          `mapstructure:"SERVER_ADDRESS"`
	TokenKind           string          `mapstructure:"TOKEN_KIND"`
	TokenSymmetricKey   string          `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration   `mapstructure:"ACCESS_TOKEN_DURATION"`
	AdminPasswordHash   string          `mapstructure:"ADMIN_PASSWORD_HASH"`
	SavingsInterestRate decimal.Decimal `mapstructure:"SAVINGS_INTEREST_RATE"`
	CheckingMonthlyFee  decimal.Decimal `mapstructure:"CHECKING_MONTHLY_FEE"`
	Environement        string          `mapstructure:"GO_ENV"`
}

// Terms returns the account terms applied to newly opened accounts.
func (c Config) Terms() domain.Terms {
	return domain.Terms{
		InterestRate: c.SavingsInterestRate,
		MonthlyFee:   c.CheckingMonthlyFee,
	}
}

var defaults = map[string]any{
	"DB_DRIVER":             "postgres",
	"SERVER_ADDRESS":        "0.0.0.0:8080",
	"TOKEN_KIND":            "paseto",
	"ACCESS_TOKEN_DURATION": "15m",
	"SAVINGS_INTEREST_RATE": "0.02",
	"CHECKING_MONTHLY_FEE":  "10.00",
	"GO_ENV":                "production",
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	hooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToDecimalHookFunc(),
	)

	err = v.Unmarshal(&c, viper.DecodeHook(hooks))
	if err != nil {
		return c, err
	}

	return c, nil
}

func stringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(decimal.Decimal{}) {
			return data, nil
		}

		return decimal.NewFromString(data.(string))
	}
}
