package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-survival/internal/listener"
	"github.com/pixil98/go-survival/internal/player"
)

type ListenerConfig struct {
	Port             uint16  `json:"port"`
	StaticPath       string  `json:"static_path,omitempty"`
	ActionsPerSecond float64 `json:"actions_per_second,omitempty"`
	ActionBurst      int     `json:"action_burst,omitempty"`
	MaxMessageBytes  int64   `json:"max_message_bytes,omitempty"`
}

func (cl *ListenerConfig) validate() error {
	el := errors.NewErrorList()

	if cl.Port == 0 {
		el.Add(fmt.Errorf("listener: port must be set to a positive integer"))
	}
	if cl.ActionsPerSecond < 0 {
		el.Add(fmt.Errorf("listener: actions_per_second must not be negative"))
	}
	if cl.ActionBurst < 0 {
		el.Add(fmt.Errorf("listener: action_burst must not be negative"))
	}
	if cl.MaxMessageBytes < 0 {
		el.Add(fmt.Errorf("listener: max_message_bytes must not be negative"))
	}

	return el.Err()
}

func (cl *ListenerConfig) playerManagerOpts() []player.PlayerManagerOpt {
	var opts []player.PlayerManagerOpt
	if cl.ActionsPerSecond > 0 {
		burst := cl.ActionBurst
		if burst == 0 {
			burst = player.DefaultActionBurst
		}
		opts = append(opts, player.WithActionRate(cl.ActionsPerSecond, burst))
	}
	return opts
}

func (cl *ListenerConfig) BuildListener(cm *listener.ConnectionManager, opts ...listener.WebListenerOpt) *listener.WebListener {
	if cl.StaticPath != "" {
		opts = append(opts, listener.WithStaticDir(cl.StaticPath))
	}
	if cl.MaxMessageBytes > 0 {
		opts = append(opts, listener.WithReadLimit(cl.MaxMessageBytes))
	}
	return listener.NewWebListener(cl.Port, cm, opts...)
}
