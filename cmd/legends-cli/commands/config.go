package commands

import (
	"github.com/rinebergc/tesl-card-data-scraper/lib/configutil"
	"github.com/rinebergc/tesl-card-data-scraper/services/legends"
)

type WikiConfig struct {
	// hostname only, e.g. "en.uesp.net"
	Host     string `json:"host"`
	Category string `json:"category"`
	// user agent pieces required by the Wikimedia User-Agent policy
	ToolName    string `json:"tool_name"`
	ToolVersion string `json:"tool_version"`
	Contact     string `json:"contact"`
}

type Config struct {
	Wiki    WikiConfig `json:"wiki"`
	CsvPath string     `json:"csv_path"`
	// when set, raw wikitext of every fetched page is dumped here
	PageDumpDir string `json:"page_dump_dir"`
	// overrides the built-in recognized field lists
	Fields *legends.Fields `json:"fields"`
}

func readConfig() (Config, error) {
	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) fields() legends.Fields {
	if c.Fields != nil {
		return *c.Fields
	}
	return legends.DefaultFields()
}
