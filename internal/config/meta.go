package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	return exampleFor(reflect.TypeOf(Settings{}))
}

func exampleFor(t reflect.Type) map[string]any {
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return exampleFor(t)
	case reflect.Bool:
		return fieldName == "debug"
	case reflect.Int:
		if fieldName == "max_log_files" {
			return DefaultMaxLogFiles
		}
		return 10
	case reflect.String:
		switch fieldName {
		case "currentScheme":
			return "Default"
		default:
			return "example"
		}
	}

	return nil
}
