package main

import (
	"fmt"
	"strconv"
	"time"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/Ko-stant/spider-field/internal/game"
)

// ServerConfig is everything main needs to start the process.
type ServerConfig struct {
	Addr      string
	Tick      time.Duration
	ArenaFile string
	Game      game.Config
}

const (
	defaultAddr = ":8080"
	defaultTick = time.Second
)

// LoadConfig builds the configuration from an optional arena file, the
// environment and the command line, in increasing order of precedence.
//
//	-l addr     listen address
//	-w width    field width
//	-h height   field height
//	-t ms       tick interval in milliseconds
//	-c percent  claim target
//	-s seed     snake seed
//	-a file     arena definition
func LoadConfig(args []string, getenv func(string) string) (ServerConfig, error) {
	cfg := ServerConfig{
		Addr: defaultAddr,
		Tick: defaultTick,
		Game: game.DefaultConfig(),
	}

	opts, _, err := getopt.Getopts(args, "l:w:h:t:c:s:a:")
	if err != nil {
		return cfg, err
	}

	overrides := map[rune]string{}
	if port := getenv("APP_PORT"); port != "" {
		overrides['l'] = ":" + port
	}
	for env, opt := range map[string]rune{
		"FIELD_WIDTH":  'w',
		"FIELD_HEIGHT": 'h',
		"TICK_MS":      't',
		"CLAIM_TARGET": 'c',
		"SEED":         's',
		"ARENA_FILE":   'a',
	} {
		if v := getenv(env); v != "" {
			overrides[opt] = v
		}
	}
	for _, opt := range opts {
		overrides[opt.Option] = opt.Value
	}

	if file, ok := overrides['a']; ok {
		arena, err := game.LoadArenaFromFile(file)
		if err != nil {
			return cfg, err
		}
		if cfg.Game, err = arena.Apply(cfg.Game); err != nil {
			return cfg, fmt.Errorf("arena %s: %w", file, err)
		}
		cfg.ArenaFile = file
	}

	if v, ok := overrides['l']; ok {
		cfg.Addr = v
	}
	if v, ok := overrides['w']; ok {
		if cfg.Game.Width, err = parseInt32("width", v); err != nil {
			return cfg, err
		}
	}
	if v, ok := overrides['h']; ok {
		if cfg.Game.Height, err = parseInt32("height", v); err != nil {
			return cfg, err
		}
	}
	if v, ok := overrides['t']; ok {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return cfg, fmt.Errorf("tick interval %q: must be a positive number of milliseconds", v)
		}
		cfg.Tick = time.Duration(ms) * time.Millisecond
	}
	if v, ok := overrides['c']; ok {
		if cfg.Game.ClaimTarget, err = strconv.ParseFloat(v, 64); err != nil {
			return cfg, fmt.Errorf("claim target %q: %w", v, err)
		}
	}
	if v, ok := overrides['s']; ok {
		if cfg.Game.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return cfg, fmt.Errorf("seed %q: %w", v, err)
		}
	}

	if err := cfg.Game.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseInt32(name, v string) (int32, error) {
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, v, err)
	}
	return int32(n), nil
}
