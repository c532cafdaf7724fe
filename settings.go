package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

var (
	settings Settings
)

type Settings struct {
	Version string
	Log     LogSettings    `toml:"log"`
	Search  SearchSettings `toml:"search"`
}

type LogSettings struct {
	Stdout bool
	File   string
	Level  string
}

type SearchSettings struct {
	MinLength int `toml:"min-length"`
}

func loadSettings(configFile string) {
	settings = Settings{
		Version: version,
		Log:     LogSettings{Stdout: true, Level: "info"},
		Search:  SearchSettings{MinLength: 2},
	}

	if configFile == "" {
		return
	}

	if _, err := toml.DecodeFile(configFile, &settings); err != nil {
		fmt.Printf("%s is not a valid toml config file\n", configFile)
		fmt.Println(err)
		os.Exit(1)
	}
}
