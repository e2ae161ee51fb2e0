package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Temutjin2k/wtl-cabs/pkg/configparser"
)

const masked = "******"

// secretKeys are printed masked.
var secretKeys = map[string]struct{}{
	"booking.token_secret": {},
	"rabbitmq.password":    {},
}

// Lines renders the effective configuration as "KEY=value" lines with secrets masked.
func Lines(cfg *Config) []string {
	lines := []string{"MODE=" + string(cfg.Mode)}

	root := reflect.ValueOf(cfg).Elem()
	for _, key := range configparser.Keys(root.Type()) {
		value := fieldByKey(root, key)
		if _, secret := secretKeys[key]; secret && value != "" {
			value = masked
		}
		lines = append(lines, configparser.EnvName(key)+"="+value)
	}

	return lines
}

// PrintConfig writes the effective configuration to stdout.
func PrintConfig(cfg *Config) {
	fmt.Println("Configuration:")
	for _, line := range Lines(cfg) {
		fmt.Println("  " + line)
	}
}

func fieldByKey(v reflect.Value, key string) string {
	for _, part := range strings.Split(key, ".") {
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).Tag.Get("mapstructure") == part {
				v = v.Field(i)
				break
			}
		}
	}
	return fmt.Sprint(v.Interface())
}
