package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var configed bool = false

func InitConfig() error {
	if configed {
		return nil
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.pfolio")
	viper.AddConfigPath("/etc/pfolio")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	configed = true
	return err
}

func NewConfig(name string) error {
	viper.SetConfigName(name)
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.pfolio")
	viper.AddConfigPath("/etc/pfolio")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../..")
	err := viper.ReadInConfig()
	configed = true
	return err
}

func testConfig() error {
	viper.SetConfigName("config_example")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../..")
	err := viper.ReadInConfig()
	configed = true
	return err
}

func ApiUrl() string {
	return viper.GetString("api.url")
}

// ApiTimeout in seconds. 0 means transport default
func ApiTimeout() int {
	return viper.GetInt("api.timeout")
}

func ServerPort() int {
	return viper.GetInt("server.port")
}

func ServerHost() string {
	return viper.GetString("server.host")
}

func ServerAddr() string {
	return fmt.Sprintf("%s:%d", ServerHost(), ServerPort())
}

func ServerPrefix() string {
	return viper.GetString("server.prefix")
}

func ServiceRoot() string {
	return viper.GetString("service.root")
}

func ServicePath(fileName string) string {
	return filepath.Join(ServiceRoot(), fileName)
}

// TokenFile is where the backend bearer token is persisted. Falls back
// to service.root and lastly to ~/.pfolio
func TokenFile() string {
	if f := viper.GetString("service.tokenFile"); f != "" {
		return f
	}
	if ServiceRoot() != "" {
		return ServicePath("token.json")
	}
	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".pfolio", "token.json")
	}
	return filepath.Join(home, ".pfolio", "token.json")
}

func TemplateGlob() string {
	if g := viper.GetString("server.templates"); g != "" {
		return g
	}
	return "tmpl/*.html"
}

func SessionAuthcKey() string {
	return viper.GetString("session.authKey")
}

func SessionCookieName() string {
	return viper.GetString("session.cookieName")
}

func SessionEncKey() string {
	return viper.GetString("session.encKey")
}
