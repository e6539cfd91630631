package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/edwincroissant/simplehx711/pkg/config"
	"github.com/edwincroissant/simplehx711/pkg/ft232h"
	"github.com/edwincroissant/simplehx711/pkg/gpiocdev"
	"github.com/edwincroissant/simplehx711/pkg/hx711"
)

var log zerolog.Logger

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	log = zerolog.New(cw).With().Timestamp().Logger()
}

func flags() (cfgPath string, doTare bool, count int) {
	cfp := flag.String("config", "weigh.yaml", "path to YAML config")
	tare := flag.Bool("tare", false, "tare once the reading becomes valid")
	n := flag.Int("n", 0, "number of valid samples to read (0 = forever)")
	flag.Parse()
	return *cfp, *tare, *n
}

func open(cfg *config.Config) (hx711.Conn, func() error, error) {
	dev := cfg.Device
	switch dev.Backend {
	case config.BackendFT232H:
		ft, err := ft232h.Connect(ft232h.ByIndex(dev.Index))
		if err != nil {
			return nil, nil, err
		}
		if err = ft.SetClockPin(dev.ClockPin); err != nil {
			return nil, nil, err
		}
		if err = ft.SetDataPin(dev.DataPin); err != nil {
			return nil, nil, err
		}
		log.Info().Any("info", ft.Info()).Msgf("connected to FT232H: %s", ft)
		return ft, ft.Close, nil
	default:
		pins, err := gpiocdev.Open(dev.Chip, int(dev.ClockPin), int(dev.DataPin))
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("chip", dev.Chip).
			Uint("clock", dev.ClockPin).Uint("data", dev.DataPin).
			Msg("requested GPIO lines")
		return pins, pins.Close, nil
	}
}

func main() {
	cfgPath, doTare, count := flags()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	conn, closeConn, err := open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open device")
	}
	defer func() {
		if err := closeConn(); err != nil {
			log.Error().Err(err).Msg("failed to close device")
		}
	}()

	d := hx711.New(conn, cfg.DriverConfig())
	d.SetTare(cfg.Scale.Tare)
	d.SetAdjuster(cfg.Scale.Adjuster)

	log.Info().
		Stringer("gain", d.Gain()).
		Uint8("reads_until_valid", d.ReadsUntilValid()).
		Uint8("alpha", d.Alpha()).
		Msg("polling")

	var (
		read   int
		status = hx711.StatusInit
		tick   = time.NewTicker(cfg.Driver.PollInterval)
	)
	defer tick.Stop()

	for range tick.C {
		done, err := d.Poll()
		if err != nil {
			log.Fatal().Err(err).Msg("poll failed")
		}

		if s := d.Status(); s != status {
			log.Info().Stringer("from", status).Stringer("to", s).Msg("status changed")
			status = s
		}

		if !done {
			continue
		}

		switch status {
		case hx711.StatusPoweredDown:
			log.Warn().Msg("chip is powered down, powering up")
			if err = d.PowerUp(); err != nil {
				log.Fatal().Err(err).Msg("failed to power up")
			}
		case hx711.StatusTimedOut:
			log.Warn().Msg("conversion timed out, is the chip connected?")
		case hx711.StatusValid:
			if doTare {
				d.Tare(true)
				doTare = false
				log.Info().Int32("tare", d.TareOffset()).Msg("tared")
			}
			log.Info().
				Uint32("timestamp", d.Timestamp()).
				Int32("raw", d.Raw(false)).
				Int32("smoothed", d.Raw(true)).
				Int32("adjusted", d.Adjusted(true)).
				Msg("sample")
			read++
			if count > 0 && read >= count {
				return
			}
		}
	}
}
