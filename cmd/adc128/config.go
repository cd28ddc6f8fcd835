package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultDevice   = "/dev/spidev1.1"
	defaultSpeedHz  = 400000
	defaultChannels = "01234567"
	defaultSamples  = 1
	defaultBits     = 8
	defaultMode     = 0

	envPrefix = "ADC128"
)

// Config carries everything one invocation needs. It is built once at
// startup and passed into the pipeline; nothing mutates it afterwards.
type Config struct {
	Device   string
	SpeedHz  uint32
	Channels string
	Samples  int
	Bits     int
	Mode     uint8
	Output   string
	Debug    bool
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("adc128", pflag.ContinueOnError)
	fs.StringP("device", "D", defaultDevice, "spidev device to use")
	fs.Uint32P("speed", "s", defaultSpeedHz, "max clock speed (Hz)")
	fs.StringP("channels", "C", defaultChannels, "ADC channels to sample (e.g. \"012345\" means channels 0 to 5)")
	fs.IntP("samples", "S", defaultSamples, "number of sample passes over the channel list")
	fs.StringP("output", "o", "", "write captured data to a file (e.g. \"results.bin\")")
	fs.Int("bits", defaultBits, "SPI word size in bits")
	fs.Uint8("mode", defaultMode, "SPI mode (0-3)")
	fs.String("config", "", "path to an optional config file")
	fs.Bool("debug", false, "verbose logging and value dumps")
	return fs
}

// loadConfig resolves flags, environment (ADC128_*) and an optional
// config file, in that precedence order, then validates the result.
func loadConfig(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{
		Device:   v.GetString("device"),
		SpeedHz:  v.GetUint32("speed"),
		Channels: v.GetString("channels"),
		Samples:  v.GetInt("samples"),
		Bits:     v.GetInt("bits"),
		Mode:     uint8(v.GetUint("mode")),
		Output:   v.GetString("output"),
		Debug:    v.GetBool("debug"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Device == "" {
		return fmt.Errorf("device must not be empty")
	}
	if c.SpeedHz == 0 {
		return fmt.Errorf("speed must be positive")
	}
	if c.Bits < 1 || c.Bits > 32 {
		return fmt.Errorf("bits per word must be in 1..32, got %d", c.Bits)
	}
	if c.Mode > 3 {
		return fmt.Errorf("spi mode must be in 0..3, got %d", c.Mode)
	}
	return nil
}
