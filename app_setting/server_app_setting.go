package app_setting

import (
	"io/ioutil"
	"log"

	"gopkg.in/yaml.v2"
)

// This is the app setting for the API server process.
type ServerAppSetting struct {
	// Listen address passed to the HTTP server, for example ":8080".
	SERVER_ADDR string `yaml:"SERVER_ADDR"`
	// Local directory holding the static frontend bundle.
	STATIC_DIR string `yaml:"STATIC_DIR"`
	// Mount path the static bundle is served under.
	STATIC_MOUNT_PATH string `yaml:"STATIC_MOUNT_PATH"`
}

// DefaultServerAppSetting is used when no setting file is provided.
func DefaultServerAppSetting() ServerAppSetting {
	return ServerAppSetting{
		SERVER_ADDR:       ":8080",
		STATIC_DIR:        "./frontend",
		STATIC_MOUNT_PATH: "/workbench",
	}
}

func ParseServerAppSetting(path string) ServerAppSetting {
	c := ServerAppSetting{}
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatal("yamlFile. get err: ", err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		log.Fatal("Unmarshal: ", err)
	}
	return c
}
