package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

const (
	defaultConfigFileName = "mapbench.toml"
)

func initConfig(fileName string) error {
	viper.SetDefault("bench.rounds", 100)
	viper.SetDefault("bench.verify", true)
	viper.SetDefault("histogram.min", 256)
	viper.SetDefault("histogram.max", 1<<16)
	viper.SetDefault("access.min", 256)
	viper.SetDefault("access.max", 1<<20)
	viper.SetDefault("access.lookups", 1<<20)

	viper.SetConfigFile(fileName)
	err := viper.ReadInConfig()
	// a missing file is fine, defaults cover everything
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	for _, key := range []string{
		"bench.rounds",
		"histogram.min", "histogram.max",
		"access.min", "access.max", "access.lookups",
	} {
		if v := configGetInt(key); v <= 0 {
			return fmt.Errorf("config %s must be positive, got %d", key, v)
		}
	}
	return nil
}

func configGetInt(key string) int { return viper.GetInt(key) }

func configGetBool(key string) bool { return viper.GetBool(key) }

func configGetRounds() int {
	return configGetInt("bench.rounds")
}

func configGetVerify() bool {
	return configGetBool("bench.verify")
}

func configGetHistogramMin() int {
	return configGetInt("histogram.min")
}

func configGetHistogramMax() int {
	return configGetInt("histogram.max")
}

func configGetAccessMin() int {
	return configGetInt("access.min")
}

func configGetAccessMax() int {
	return configGetInt("access.max")
}

func configGetAccessLookups() int {
	return configGetInt("access.lookups")
}
