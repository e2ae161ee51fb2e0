package configparser

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

var ErrNotStructPointer = errors.New("config destination must be a pointer to a struct")

// Load fills dst from, in increasing priority, `default` struct tags, the YAML file at
// filepath and environment variables. Keys follow `mapstructure` tags; the environment
// name of a key is its dotted path upper-cased with dots replaced by underscores
// (server.port -> SERVER_PORT). A missing file is not an error.
func Load(filepath string, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	v := viper.New()
	v.SetConfigType("yaml")
	registerDefaults(v, rv.Elem().Type(), "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if filepath != "" {
		v.SetConfigFile(filepath)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("could not read config file %s: %w", filepath, err)
		}
	}

	if err := v.Unmarshal(dst); err != nil {
		return fmt.Errorf("could not decode config: %w", err)
	}

	return nil
}

// EnvName returns the environment variable that overrides a dotted key.
func EnvName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Keys lists every leaf key of a config struct type, in declaration order.
func Keys(t reflect.Type) []string {
	var keys []string
	walk(t, "", func(key string, _ reflect.StructField) {
		keys = append(keys, key)
	})
	return keys
}

func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	walk(t, prefix, func(key string, f reflect.StructField) {
		// every leaf is registered so AutomaticEnv can see it during Unmarshal
		v.SetDefault(key, f.Tag.Get("default"))
	})
}

func walk(t reflect.Type, prefix string, fn func(key string, f reflect.StructField)) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := f.Tag.Lookup("mapstructure")
		if !ok || name == "-" || !f.IsExported() {
			continue
		}

		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if f.Type.Kind() == reflect.Struct && f.Type.PkgPath() != "time" {
			walk(f.Type, key, fn)
			continue
		}
		fn(key, f)
	}
}
