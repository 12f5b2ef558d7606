package config

import (
	"reflect"
	"strings"
)

// SettingMeta describes one config.toml key for `breakwise settings meta`
type SettingMeta struct {
	Example any
	Key     string
	Type    string
}

// GetSettingsMeta uses reflection to describe every config.toml key.
// It stays in sync when new fields are added to Settings.
func GetSettingsMeta() []SettingMeta {
	t := reflect.TypeOf(Settings{})
	meta := make([]SettingMeta, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("toml")
		if tag == "" {
			continue
		}

		name := strings.Split(tag, ",")[0]
		meta = append(meta, SettingMeta{
			Example: exampleValue(field.Type, name),
			Key:     name,
			Type:    typeName(field.Type),
		})
	}

	return meta
}

// GetSettingsExample returns a key to example value map, ready for toml.Marshal
func GetSettingsExample() map[string]any {
	example := make(map[string]any)
	for _, m := range GetSettingsMeta() {
		example[m.Key] = m.Example
	}
	return example
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int:
		return "int"
	case reflect.Map:
		return "table"
	default:
		return "string"
	}
}

// exampleValue creates example values based on type and field name
func exampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return true
		case reflect.Int:
			if fieldName == "ssh_port" {
				return DefaultSSHPort
			}
			return 100
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "db_path":
			return "~/.breakwise/breakwise.db"
		case "ssh_host":
			return DefaultSSHHost
		default:
			return "example"
		}
	case reflect.Map:
		return map[string][]string{
			"work":  {"w"},
			"break": {"b", "p"},
		}
	}

	return nil
}
