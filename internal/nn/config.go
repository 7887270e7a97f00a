package nn

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Config describes an MLP architecture.
type Config struct {
	InputSize  int   // Number of network inputs
	LayerSizes []int // Neurons per layer; the last entry is the output size
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.InputSize < 1 {
		result = multierror.Append(result, fmt.Errorf("input size must be positive, got %d", c.InputSize))
	}
	if len(c.LayerSizes) == 0 {
		result = multierror.Append(result, errors.New("at least one layer size is required"))
	}
	for i, size := range c.LayerSizes {
		if size < 1 {
			result = multierror.Append(result, fmt.Errorf("layer %d: size must be positive, got %d", i, size))
		}
	}

	return result.ErrorOrNil()
}

// NumParameters returns the number of trainable parameters the
// configuration yields: Σ (inᵢ + 1) · outᵢ.
func (c Config) NumParameters() int {
	total := 0
	in := c.InputSize
	for _, out := range c.LayerSizes {
		total += (in + 1) * out
		in = out
	}
	return total
}
