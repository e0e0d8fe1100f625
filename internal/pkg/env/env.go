// Package env maps environment variables onto configuration structs.
package env

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
)

// OverrideStruct populates the struct fields with values from environment variables
// based on the 'env' custom tag, recursively handling nested structs.
// Unset variables leave the field untouched.
func OverrideStruct(v any) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("override struct: expects a non-nil pointer to a struct, got %T", v)
	}

	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("override struct: expects a pointer to a struct, got %T (%s)", v, val.Kind())
	}

	typ := val.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)
		fieldValue := val.Field(i)

		if !field.IsExported() {
			continue
		}

		if fieldValue.Kind() == reflect.Struct {
			if err := OverrideStruct(fieldValue.Addr().Interface()); err != nil {
				return fmt.Errorf("override nested struct %s: %w", field.Name, err)
			}
			continue
		}

		if fieldValue.Kind() == reflect.Ptr && fieldValue.Type().Elem().Kind() == reflect.Struct {
			if fieldValue.IsNil() {
				fieldValue.Set(reflect.New(fieldValue.Type().Elem()))
			}
			if err := OverrideStruct(fieldValue.Interface()); err != nil {
				return fmt.Errorf("override nested pointer struct %s: %w", field.Name, err)
			}
			continue
		}

		envVarName := field.Tag.Get("env")
		if envVarName == "" {
			continue
		}

		envVarValue, ok := os.LookupEnv(envVarName)
		if !ok || envVarValue == "" {
			slog.Debug("Environment variable not set for field", "env", envVarName, "field", field.Name)
			continue
		}

		if err := setField(fieldValue, envVarValue); err != nil {
			return fmt.Errorf("field %s from env var %s: %w", field.Name, envVarName, err)
		}
	}
	return nil
}

func setField(fieldValue reflect.Value, raw string) error {
	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		intValue, err := strconv.ParseInt(raw, 10, fieldValue.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse int: %w", err)
		}
		fieldValue.SetInt(intValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		uintValue, err := strconv.ParseUint(raw, 10, fieldValue.Type().Bits())
		if err != nil {
			return fmt.Errorf("parse uint: %w", err)
		}
		fieldValue.SetUint(uintValue)
	case reflect.Bool:
		boolValue, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("parse bool: %w", err)
		}
		fieldValue.SetBool(boolValue)
	default:
		return fmt.Errorf("unsupported field type %s", fieldValue.Kind())
	}
	return nil
}

// Env returns the value of the environment variable named by the key.
// If the variable is not present in the environment, it returns the provided fallback value.
func Env(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
