package transmute

import (
	"fmt"
	"strings"
)

const (
	DefaultGuard    = AllOrNothing
	DefaultSizeHint = 0
)

// The DecodeConfig type carries configuration options for decoding compressed
// payloads into typed slices.
//
// DecodeConfig implements the DecodeOption interface so it can be used directly
// as argument to the Decode functions when needed, for example:
//
//	values, err := transmute.Decode[float64](codec, payload, &transmute.DecodeConfig{
//		Guard:    transmute.Pedantic,
//		SizeHint: 8 * 1024,
//	})
type DecodeConfig struct {
	Guard     Guard
	Allocator Allocator
	SizeHint  int
}

// DefaultDecodeConfig returns a new DecodeConfig value initialized with the
// default decode configuration.
func DefaultDecodeConfig() *DecodeConfig {
	return &DecodeConfig{
		Guard:     DefaultGuard,
		Allocator: DefaultAllocator,
		SizeHint:  DefaultSizeHint,
	}
}

// NewDecodeConfig constructs a new decode configuration applying the options
// passed as arguments.
//
// The function returns an non-nil error if some of the options carried invalid
// configuration values.
func NewDecodeConfig(options ...DecodeOption) (*DecodeConfig, error) {
	config := DefaultDecodeConfig()
	config.Apply(options...)
	return config, config.Validate()
}

// Apply applies the given list of options to c.
func (c *DecodeConfig) Apply(options ...DecodeOption) {
	for _, opt := range options {
		opt.ConfigureDecode(c)
	}
}

// ConfigureDecode applies configuration options from c to config. The guard
// of c always overrides the one of config, since the zero value of Guard is
// the Permissive guard.
func (c *DecodeConfig) ConfigureDecode(config *DecodeConfig) {
	*config = DecodeConfig{
		Guard:     c.Guard,
		Allocator: coalesceAllocator(c.Allocator, config.Allocator),
		SizeHint:  coalesceInt(c.SizeHint, config.SizeHint),
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *DecodeConfig) Validate() error {
	const baseName = "transmute.(*DecodeConfig)."
	return errorInvalidConfiguration(
		validateGuard(baseName+"Guard", c.Guard),
		validateNotNil(baseName+"Allocator", c.Allocator),
		validateNonNegativeInt(baseName+"SizeHint", c.SizeHint),
	)
}

// DecodeOption is an interface implemented by types that carry configuration
// options for decoding payloads.
type DecodeOption interface {
	ConfigureDecode(*DecodeConfig)
}

// SizeHint configures the expected size of decoded payloads, in bytes. The
// decoder allocates an aligned buffer of that size up front, which avoids
// copying the result when the payload fits in it.
//
// Defaults to zero, letting the buffer grow with the payload.
type SizeHint int

func (size SizeHint) ConfigureDecode(config *DecodeConfig) { config.SizeHint = int(size) }

// UseAllocator creates a configuration option which sets the allocator used to
// obtain aligned buffers for decoded payloads.
//
// Defaults to DefaultAllocator.
func UseAllocator(allocator Allocator) DecodeOption {
	return decodeOption(func(config *DecodeConfig) { config.Allocator = allocator })
}

type decodeOption func(*DecodeConfig)

func (opt decodeOption) ConfigureDecode(config *DecodeConfig) { opt(config) }

func coalesceInt(i1, i2 int) int {
	if i1 != 0 {
		return i1
	}
	return i2
}

func coalesceAllocator(a1, a2 Allocator) Allocator {
	if a1 != nil {
		return a1
	}
	return a2
}

func validateGuard(optionName string, optionValue Guard) error {
	if optionValue.Valid() {
		return nil
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

func validateNonNegativeInt(optionName string, optionValue int) error {
	if optionValue >= 0 {
		return nil
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

func validateNotNil(optionName string, optionValue interface{}) error {
	if optionValue != nil {
		return nil
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

func errorInvalidOptionValue(optionName string, optionValue interface{}) error {
	return fmt.Errorf("invalid option value: %s: %v", optionName, optionValue)
}

func errorInvalidConfiguration(reasons ...error) error {
	var err *invalidConfiguration

	for _, reason := range reasons {
		if reason != nil {
			if err == nil {
				err = new(invalidConfiguration)
			}
			err.reasons = append(err.reasons, reason)
		}
	}

	if err != nil {
		return err
	}

	return nil
}

type invalidConfiguration struct {
	reasons []error
}

func (err *invalidConfiguration) Error() string {
	errorMessage := new(strings.Builder)
	for _, reason := range err.reasons {
		errorMessage.WriteString(reason.Error())
		errorMessage.WriteString("\n")
	}
	errorString := errorMessage.String()
	if errorString != "" {
		errorString = errorString[:len(errorString)-1]
	}
	return errorString
}
