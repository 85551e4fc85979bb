package env

import (
	"baccarat_backend/internal/config"
	"baccarat_backend/internal/model"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Верхние границы прогрессий, дальше ставка переполняет int
const (
	maxMartingaleMultiplier = 1 << 30
	maxParoliStreak         = 30
)

type settingsYAML struct {
	BetType            string  `yaml:"bet_type"`
	Strategy           string  `yaml:"strategy"`
	BaseUnit           int64   `yaml:"base_unit"`
	TargetProfit       int64   `yaml:"target_profit"`
	StopLoss           int64   `yaml:"stop_loss"`
	LabouchereSequence []int64 `yaml:"labouchere_sequence"`
	InitialBankroll    int64   `yaml:"initial_bankroll"`
	AutoPlaySpeed      int     `yaml:"autoplay_speed_ms"`
}

type gameYAML struct {
	Game struct {
		Defaults        settingsYAML `yaml:"defaults"`
		MaxMultiplier   int          `yaml:"martingale_max_multiplier"`
		MaxWinStreak    int          `yaml:"paroli_max_streak"`
		MinBankroll     int64        `yaml:"min_bankroll"`
		AutoPlaySpeeds  []int        `yaml:"autoplay_speeds_ms"`
		StatsWindow     int          `yaml:"stats_window"`
		StreamPingEvery string       `yaml:"stream_ping_interval"`
		Shoe            struct {
			Decks        int `yaml:"decks"`
			DefaultHands int `yaml:"default_hands"`
			MinHands     int `yaml:"min_hands"`
			MaxHands     int `yaml:"max_hands"`
		} `yaml:"shoe"`
	} `yaml:"game"`
}

type gameConfig struct {
	defaults      model.Settings
	maxMultiplier int
	maxWinStreak  int
	decks         int
	defaultHands  int
	minHands      int
	maxHands      int
	minBankroll   int64
	speeds        []int
	statsWindow   int
	pingInterval  time.Duration
}

// NewGameConfigFromYAML Читает правила игры из yaml. Отсутствующий файл или ключ - значение по умолчанию
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	var raw gameYAML

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read game config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse game config: %w", err)
		}
	}

	g := raw.Game
	d := g.Defaults
	cfg := &gameConfig{
		defaults: model.Settings{
			BetType:            model.BetType(orDefault(d.BetType, string(model.BetPlayer))),
			StrategyType:       model.StrategyType(orDefault(d.Strategy, string(model.StrategyLabouchere))),
			BaseUnit:           orDefault(d.BaseUnit, 25),
			TargetProfit:       orDefault(d.TargetProfit, 1500),
			StopLoss:           orDefault(d.StopLoss, 1000),
			LabouchereSequence: d.LabouchereSequence,
			InitialBankroll:    orDefault(d.InitialBankroll, 6000),
			AutoPlaySpeed:      orDefault(d.AutoPlaySpeed, 500),
		},
		maxMultiplier: orDefault(g.MaxMultiplier, 64),
		maxWinStreak:  orDefault(g.MaxWinStreak, 3),
		decks:         orDefault(g.Shoe.Decks, 8),
		defaultHands:  orDefault(g.Shoe.DefaultHands, 80),
		minHands:      orDefault(g.Shoe.MinHands, 1),
		maxHands:      orDefault(g.Shoe.MaxHands, 200),
		minBankroll:   orDefault(g.MinBankroll, 100),
		speeds:        g.AutoPlaySpeeds,
		statsWindow:   orDefault(g.StatsWindow, 500),
		pingInterval:  30 * time.Second,
	}
	if len(cfg.defaults.LabouchereSequence) == 0 {
		cfg.defaults.LabouchereSequence = []int64{25, 50, 25, 50}
	}
	if len(cfg.speeds) == 0 {
		cfg.speeds = []int{1000, 500, 200, 50}
	}
	if g.StreamPingEvery != "" {
		cfg.pingInterval, err = time.ParseDuration(g.StreamPingEvery)
		if err != nil {
			return nil, fmt.Errorf("invalid stream ping interval: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *gameConfig) validate() error {
	if _, err := model.ParseBetType(string(c.defaults.BetType)); err != nil {
		return fmt.Errorf("default bet type: %w", err)
	}
	if _, err := model.ParseStrategyType(string(c.defaults.StrategyType)); err != nil {
		return fmt.Errorf("default strategy: %w", err)
	}
	if c.maxMultiplier < 1 || c.maxMultiplier > maxMartingaleMultiplier {
		return fmt.Errorf("martingale max multiplier %d outside [1, %d]", c.maxMultiplier, maxMartingaleMultiplier)
	}
	if c.maxWinStreak < 1 || c.maxWinStreak > maxParoliStreak {
		return fmt.Errorf("paroli max streak %d outside [1, %d]", c.maxWinStreak, maxParoliStreak)
	}
	if c.minHands < 1 || c.minHands > c.maxHands {
		return fmt.Errorf("invalid hand bounds [%d, %d]", c.minHands, c.maxHands)
	}
	if c.defaultHands < c.minHands || c.defaultHands > c.maxHands {
		return fmt.Errorf("default hands %d outside [%d, %d]", c.defaultHands, c.minHands, c.maxHands)
	}
	for _, s := range c.speeds {
		if s <= 0 {
			return fmt.Errorf("auto-play speed must be positive, got %d", s)
		}
	}
	if !slices.Contains(c.speeds, c.defaults.AutoPlaySpeed) {
		return fmt.Errorf("default auto-play speed %d is not in %v", c.defaults.AutoPlaySpeed, c.speeds)
	}
	if c.pingInterval <= 0 {
		return fmt.Errorf("stream ping interval must be positive")
	}
	return nil
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func (c *gameConfig) DefaultSettings() model.Settings {
	s := c.defaults
	s.LabouchereSequence = slices.Clone(c.defaults.LabouchereSequence)
	return s
}

func (c *gameConfig) MaxMultiplier() int { return c.maxMultiplier }

func (c *gameConfig) MaxWinStreak() int { return c.maxWinStreak }

func (c *gameConfig) Decks() int { return c.decks }

func (c *gameConfig) DefaultHands() int { return c.defaultHands }

func (c *gameConfig) MinHands() int { return c.minHands }

func (c *gameConfig) MaxHands() int { return c.maxHands }

func (c *gameConfig) MinBankroll() int64 { return c.minBankroll }

func (c *gameConfig) Speeds() []int { return slices.Clone(c.speeds) }

func (c *gameConfig) StatsWindow() int { return c.statsWindow }

func (c *gameConfig) StreamPingInterval() time.Duration { return c.pingInterval }
