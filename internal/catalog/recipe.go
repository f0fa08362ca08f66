package catalog

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Recipe turns a set of ingredients into Yield units of Output.
type Recipe struct {
	Name   string         `json:"name"`
	Output string         `json:"output"`
	Yield  int            `json:"yield"`
	Costs  map[string]int `json:"costs"`
}

func (r *Recipe) Validate() error {
	if r == nil {
		return fmt.Errorf("recipe spec is required")
	}

	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if r.Output == "" {
		el.Add(fmt.Errorf("output is required"))
	}
	if r.Yield <= 0 {
		el.Add(fmt.Errorf("yield must be positive"))
	}
	if len(r.Costs) == 0 {
		el.Add(fmt.Errorf("at least one cost is required"))
	}
	for item, n := range r.Costs {
		if n <= 0 {
			el.Add(fmt.Errorf("cost of %q must be positive", item))
		}
	}

	return el.Err()
}
