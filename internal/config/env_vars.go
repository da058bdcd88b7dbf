package config

import "os"

const (
	baseAuthURLVar  = "AUTH_BASE_URL"
	appNameVar      = "APP_NAME"
	listenAddrVar   = "CALLBACK_LISTEN_ADDR"
	callbackPathVar = "CALLBACK_PATH"
)

type EnvConfig interface {
	GetAppName() string
	GetBaseAuthURL() string
	GetListenAddr() string
	GetCallbackPath() string
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Auth Client")
}

// GetBaseAuthURL returns the base authentication host. Overridable for
// sovereign clouds and for tests.
func (EnvVars) GetBaseAuthURL() string {
	return GetEnv(baseAuthURLVar, "https://login.microsoftonline.com")
}

func (EnvVars) GetListenAddr() string {
	return GetEnv(listenAddrVar, "127.0.0.1:8400")
}

func (EnvVars) GetCallbackPath() string {
	return GetEnv(callbackPathVar, "/callback")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
