package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from a .env file in the current directory
// into the process environment. Variables that are already set win.
// A missing file is not an error.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// LoadFromEnv overlays environment variables onto the configuration.
// Unset variables leave the current value untouched.
func (c *Config) LoadFromEnv() {
	loadEnvString(EnvToken, &c.Token)
	loadEnvString(EnvAPIURL, &c.APIURL)
	loadEnvString(EnvAPIKey, &c.APIKey)
	loadEnvString(EnvPrefix, &c.Prefix)
	loadEnvString(EnvProxy, &c.ProxyAddress)
}

func loadEnvString(key string, result *string) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return
	}
	*result = s
}
