package config

import (
	"errors"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Export names optional finding export targets, empty means skip.
type Export struct {
	CSV  string
	JSON string
}

type Config struct {
	// Root is the directory tree of rendered HTML files to verify.
	Root string
	// Extensions selects the files to scan.
	Extensions []string
	// Concurrency is the number of parallel file scans, 1 scans
	// sequentially.
	Concurrency int
	// IgnorePrefixes skips files whose root relative path starts with one
	// of the given prefixes.
	IgnorePrefixes []string
	LogLevel       string `yaml:"loglevel"`
	Pretty         bool
	Export         Export
}

func defaults() *Config {
	return &Config{
		Extensions:  []string{".html"},
		Concurrency: 4,
		LogLevel:    "info",
	}
}

func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = defaults()
	errUnmarshal := yaml.Unmarshal(yamlBytes, conf)
	if errUnmarshal != nil {
		err = errUnmarshal
		return
	}
	if conf.Root == "" {
		err = errors.New("config needs a root directory")
		return
	}
	if conf.Concurrency < 1 {
		conf.Concurrency = 1
	}
	return
}

func Get(filename string) (conf *Config, err error) {
	yamlBytes, errRead := os.ReadFile(filename)
	if errRead != nil {
		err = errRead
		return
	}
	return Load(yamlBytes)
}
