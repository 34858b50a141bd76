package env

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	pkgstrings "github.com/billup/billup-web/pkg/strings"
)

var ErrNotFound = errors.New("env not found")

func Must[T any](val T, err error) T {
	if err != nil {
		panic(fmt.Errorf("failed to parse environment: %w", err))
	}
	return val
}

// LoadFile merges variables from dotenv files into the process environment.
// Variables already set in the environment win, missing files are skipped.
func LoadFile(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}

		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	return nil
}

func Parse[T pkgstrings.SupportedValueParsingTypes](key string) (T, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		var blank T
		return blank, fmt.Errorf("%w: %s with type %T", ErrNotFound, key, blank)
	}

	v, err := pkgstrings.ParseTypedValue[T](strings.TrimSpace(str))
	if err != nil {
		return v, fmt.Errorf("env %s has invalid value: %w", key, err)
	}

	return v, nil
}

func ParseOptional[T pkgstrings.SupportedValueParsingTypes](key string) (*T, error) {
	v, err := Parse[T](key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func ParseWithDefault[T pkgstrings.SupportedValueParsingTypes](key string, defaultValue T) (T, error) {
	v, err := ParseOptional[T](key)
	if err != nil {
		return defaultValue, err
	}
	if v == nil {
		return defaultValue, nil
	}

	return *v, nil
}
