package cmd

import (
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Config carries listing defaults read from gotiny.yaml in the source
// file's directory. Unset fields keep the built-in default (both on);
// command-line flags override either.
type Config struct {
	Echo  *bool `yaml:"echo"`
	Trace *bool `yaml:"trace"`
}

// LoadConfig reads gotiny.yaml from dir. A missing file is not an error.
func LoadConfig(dir string) (Config, error) {
	var result Config

	configFilename := path.Join(dir, "gotiny.yaml")
	yamlFile, err := os.ReadFile(configFilename)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(yamlFile, &result)
	if err != nil {
		return Config{}, err
	}
	return result, nil
}
