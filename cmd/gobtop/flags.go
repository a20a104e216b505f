package gobtop

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/arthur-debert/gobtop/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// noPreset is the --preset value meaning "keep the configured layout"
const noPreset = -1

// rootFlags holds the global command line flags
type rootFlags struct {
	Verbosity  int    `flag:"verbose" validate:"gte=0,lte=3"`
	Output     string `flag:"output" validate:"oneof=auto term terminal text plain json"`
	ConfigFile string `flag:"config"`
	LowColor   bool   `flag:"low-color"`
	TTYOn      bool   `flag:"tty_on" validate:"excluded_with=TTYOff"`
	TTYOff     bool   `flag:"tty_off"`
	Preset     int    `flag:"preset" validate:"gte=-1,lte=9"`
	UTFForce   bool   `flag:"utf-force"`
	Debug      bool   `flag:"debug"`
}

func newFlagValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("flag")
	})
	return v
}

// validate checks flag values and combinations
func (f *rootFlags) validate() error {
	err := newFlagValidator().Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Wrap(err, errors.ErrInvalidInput, "failed to validate flags")
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, describeFlagError(fe))
	}
	return errors.Newf(errors.ErrInvalidInput, MsgErrFlags, strings.Join(problems, "; ")).
		WithDetail("flags", problems)
}

func describeFlagError(fe validator.FieldError) string {
	name := "--" + fe.Field()
	switch fe.Tag() {
	case "excluded_with":
		return name + " cannot be combined with --tty_off"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s value %v is out of range", name, fe.Value())
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}
