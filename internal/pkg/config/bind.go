package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/umisama/go-regexpcache"

	"github.com/keboola/remote-files/internal/pkg/env"
	"github.com/keboola/remote-files/internal/pkg/utils/errors"
)

const EnvPrefix = "REMOTE_FILES_"

// Bind config from flags and ENVs.
// Precedence: flags, ENVs, default values.
// The result is normalized and validated.
func Bind(args []string, envs env.Provider) (Config, error) {
	cfg, _, err := BindArgs(args, envs)
	return cfg, err
}

// BindArgs is Bind which also returns positional arguments, left after the flags.
func BindArgs(args []string, envs env.Provider) (Config, []string, error) {
	cfg := New()

	fs := pflag.NewFlagSet("remote-files", pflag.ContinueOnError)
	if err := GenerateFlags(&cfg, fs); err != nil {
		return Config{}, nil, err
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, nil, err
		}
		return Config{}, nil, errors.PrefixError(err, "invalid flags")
	}

	// Use ENV value if the flag has not been set
	naming := env.NewNamingConvention(EnvPrefix)
	errs := errors.NewMultiError()
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		envName := naming.FlagToEnv(f.Name)
		if value, found := envs.Lookup(envName); found && value != "" {
			if err := f.Value.Set(value); err != nil {
				errs.Append(errors.Errorf(`invalid value of the ENV "%s": %w`, envName, err))
			}
		}
	})
	if err := errs.ErrorOrNil(); err != nil {
		return Config{}, nil, err
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}

	return cfg, fs.Args(), nil
}

// GenerateFlags binds each field tagged by "configKey" to a flag.
// The current field value is used as the default value.
func GenerateFlags(config any, fs *pflag.FlagSet) error {
	return flagsFromStruct(config, fs, nil)
}

func flagsFromStruct(config any, fs *pflag.FlagSet, parents []string) error {
	ptr := reflect.ValueOf(config)
	if ptr.Kind() != reflect.Pointer || ptr.Elem().Kind() != reflect.Struct {
		return errors.Errorf(`type "%s" is not a pointer to a struct, it cannot be mapped to the FlagSet`, ptr.Type().String())
	}

	structValue := ptr.Elem()
	structType := structValue.Type()
	for i := 0; i < structType.NumField(); i++ {
		fieldType := structType.Field(i)
		fieldValue := structValue.Field(i)

		key, found := fieldType.Tag.Lookup("configKey")
		if !found || key == "-" {
			continue
		}

		fieldPath := append(append([]string{}, parents...), fieldToFlagName(key))
		flagName := strings.Join(fieldPath, ".")
		usage := fieldType.Tag.Get("configUsage")

		switch p := fieldValue.Addr().Interface().(type) {
		case *string:
			fs.StringVar(p, flagName, *p, usage)
		case *int:
			fs.IntVar(p, flagName, *p, usage)
		case *bool:
			fs.BoolVar(p, flagName, *p, usage)
		case *time.Duration:
			fs.DurationVar(p, flagName, *p, usage)
		default:
			if fieldValue.Kind() != reflect.Struct {
				return errors.Errorf(`field "%s" of type "%s" cannot be mapped to a flag`, fieldType.Name, fieldValue.Type().String())
			}
			if err := flagsFromStruct(p, fs, fieldPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// fieldToFlagName converts camel case config key to a flag name, for example "baseUrl" -> "base-url".
func fieldToFlagName(key string) string {
	key = regexpcache.MustCompile(`([a-z0-9])([A-Z])`).ReplaceAllString(key, "$1-$2")
	return strings.ToLower(key)
}
