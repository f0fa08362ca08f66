package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-survival/internal/driver"
	"github.com/pixil98/go-survival/internal/rules"
)

type Config struct {
	TickInterval string         `json:"tick_interval"`
	DayInterval  string         `json:"day_interval"`
	Seed         int64          `json:"seed"`
	RulesPath    string         `json:"rules_path"`
	Catalog      CatalogConfig  `json:"catalog"`
	Listener     ListenerConfig `json:"listener"`
	Nats         NatsConfig     `json:"nats"`
	Accounts     AccountsConfig `json:"accounts"`
	Journal      JournalConfig  `json:"journal"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	tick, err := parseDuration(c.TickInterval, driver.DefaultTickLength)
	if err != nil {
		el.Add(fmt.Errorf("parsing tick_interval: %w", err))
	}
	day, err := parseDuration(c.DayInterval, driver.DefaultDayLength)
	if err != nil {
		el.Add(fmt.Errorf("parsing day_interval: %w", err))
	}
	if tick <= 0 {
		el.Add(fmt.Errorf("tick_interval must be positive"))
	}
	if day <= 0 {
		el.Add(fmt.Errorf("day_interval must be positive"))
	}
	if tick > 0 && day > 0 && tick >= day {
		el.Add(fmt.Errorf("tick_interval must be shorter than day_interval"))
	}

	if _, err := rules.Load(c.RulesPath); err != nil {
		el.Add(err)
	}

	el.Add(c.Catalog.validate())
	el.Add(c.Listener.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Accounts.validate())

	return el.Err()
}

// parseDuration parses s, falling back to def when s is empty.
func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
