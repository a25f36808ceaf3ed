package config

import (
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/philipp01105/nlogwire/core"
	"github.com/philipp01105/nlogwire/handler"
)

var (
	once sync.Once
	v    *validator.Validate
)

func validateLevel(fl validator.FieldLevel) bool {
	return core.IsLevelName(fl.Field().String())
}

func validateOverflow(fl validator.FieldLevel) bool {
	_, ok := handler.ParseOverflowPolicy(fl.Field().String())
	return ok
}

// validate returns the shared validator with the config rules registered
func validate() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())

		if err := v.RegisterValidation("loglevel", validateLevel); err != nil {
			panic("failed to register validation: " + err.Error())
		}
		if err := v.RegisterValidation("overflow", validateOverflow); err != nil {
			panic("failed to register validation: " + err.Error())
		}
	})
	return v
}

// Validate checks field rules and the directive types.
func (c *Config) Validate() error {
	if err := validate().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fe.Namespace()+" failed on "+fe.Tag())
			}
			return errors.Wrap(ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	for _, d := range c.Handlers {
		if !slices.Contains(HandlerTypes, d.Type) {
			return errors.Wrapf(ErrUnknownDirective, "handler %q has type %q", d.Name, d.Type)
		}
	}
	for _, d := range c.Processors {
		if !slices.Contains(ProcessorTypes, d.Type) {
			return errors.Wrapf(ErrUnknownDirective, "processor %q has type %q", d.Name, d.Type)
		}
	}
	return nil
}
