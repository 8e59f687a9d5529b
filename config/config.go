package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// SchedulerConfig holds the server-wide defaults. Per-request overrides
// (quantum, overhead) take precedence over these values.
type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	LogFormat             string
	DBPath                string
	ContextSwitchOverhead int
	RoundRobinTimeQuantum int
	LiveSampleInterval    time.Duration
	LiveBurstScale        float64
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once
// and returns the shared configuration. A missing file falls back to the
// defaults below.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath("./")

		viper.SetDefault("port", 9095)
		viper.SetDefault("log.level", "info")
		viper.SetDefault("log.format", "text")
		viper.SetDefault("db.path", "cpusim.db")
		viper.SetDefault("scheduler.context_switch_overhead", 0)
		viper.SetDefault("scheduler.round_robin.time_quantum", 2)
		viper.SetDefault("live.sample_interval", "2s")
		viper.SetDefault("live.burst_scale", 8.0)

		// The file is optional; defaults cover everything.
		_ = viper.ReadInConfig()

		config = &SchedulerConfig{
			Port:                  viper.GetInt("port"),
			LogLevel:              viper.GetString("log.level"),
			LogFormat:             viper.GetString("log.format"),
			DBPath:                viper.GetString("db.path"),
			ContextSwitchOverhead: viper.GetInt("scheduler.context_switch_overhead"),
			RoundRobinTimeQuantum: viper.GetInt("scheduler.round_robin.time_quantum"),
			LiveSampleInterval:    viper.GetDuration("live.sample_interval"),
			LiveBurstScale:        viper.GetFloat64("live.burst_scale"),
		}
	})

	return config
}
