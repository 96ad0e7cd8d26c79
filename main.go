package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/xgzlucario/mapbench/internal/mapx"
)

var debugMode bool

func main() {
	var (
		configFile string
		benchName  string
		mapNames   string
	)
	flag.StringVar(&configFile, "config", defaultConfigFileName, "config file path.")
	flag.StringVar(&benchName, "bench", "all", "workload to run: histogram, access or all.")
	flag.StringVar(&mapNames, "maps", "", "comma separated backends, empty runs all of them.")
	flag.BoolVar(&debugMode, "debug", false, "enable debug logging.")
	flag.Parse()

	initLogger(debugMode)

	if err := initConfig(configFile); err != nil {
		log.Fatal().Msgf("load config error: %v", err)
	}
	log.Debug().Msgf("config loaded from %s", configFile)

	factories, err := selectFactories(mapNames)
	if err != nil {
		log.Fatal().Msgf("%v", err)
	}

	switch benchName {
	case "histogram":
		runHistogram(factories)
	case "access":
		runAccess(factories)
	case "all":
		runHistogram(factories)
		runAccess(factories)
	default:
		log.Fatal().Msgf("unknown bench: %s", benchName)
	}
}

func selectFactories(names string) ([]mapx.Factory, error) {
	if names == "" {
		return mapx.Factories(), nil
	}
	var selected []mapx.Factory
	for _, name := range strings.Split(names, ",") {
		f, ok := mapx.Lookup(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown map: %s", name)
		}
		selected = append(selected, f)
	}
	return selected, nil
}
