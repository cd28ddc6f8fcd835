package main

import (
	"os"

	"github.com/l0nax/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/fabmicro/adc128-go/pkg/adc128"
	"github.com/fabmicro/adc128-go/pkg/spidev"
)

var log zerolog.Logger

var pprint = spew.ConfigState{
	Indent:           "\t",
	ContinueOnMethod: true,
	SortKeys:         true,
	SpewKeys:         true,
	HighlightValues:  true,
	HighlightHex:     true,
}

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		pprint.Dump(cfg)
	}

	plan, err := adc128.ParsePlan(cfg.Channels, cfg.Samples)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid acquisition plan")
	}

	if err = spidev.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load host drivers")
	}

	port, err := spidev.Open(cfg.Device)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open spi device")
	}
	defer func() {
		if cerr := port.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("failed to close spi device")
		}
	}()

	conn, err := port.Connect(cfg.SpeedHz, cfg.Mode, cfg.Bits)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure spi device")
	}

	log.Info().
		Str("device", port.Name()).
		Stringer("max_speed", port.Speed()).
		Uint8("mode", cfg.Mode).
		Int("bits_per_word", cfg.Bits).
		Msg("spi port configured")

	log.Info().
		Int("bytes", plan.BlockLen()).
		Int("channels", len(plan.Channels())).
		Int("samples", plan.Samples()).
		Msg("starting spi transfer block")

	res, err := adc128.Capture(conn, plan)
	if err != nil {
		log.Fatal().Err(err).Msg("capture failed")
	}

	log.Info().
		Dur("elapsed", res.Timing.Elapsed).
		Float64("kbps", res.Timing.Kbps()).
		Float64("ksamples_per_sec", res.Timing.KSamplesPerSecond(plan.Samples())).
		Msg("effective transfer rate")

	for _, st := range res.Stats {
		log.Info().
			Int("ch", st.Channel).
			Uint16("min", st.Min).
			Uint64("avg", st.Average).
			Uint16("max", st.Max).
			Int64("dmin", st.DeltaMin).
			Int64("dmax", st.DeltaMax).
			Msg("channel statistics")
	}

	if cfg.Debug {
		pprint.Dump(res.Stats)
	}

	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Output).Msg("could not open output file")
		}
		if err = res.WriteRaw(f); err != nil {
			_ = f.Close()
			log.Fatal().Err(err).Str("path", cfg.Output).Msg("failed to write captured data")
		}
		if err = f.Close(); err != nil {
			log.Fatal().Err(err).Str("path", cfg.Output).Msg("failed to close output file")
		}
		log.Info().Str("path", cfg.Output).Int("bytes", len(res.Raw)).Msg("data written to file")
	}
}
