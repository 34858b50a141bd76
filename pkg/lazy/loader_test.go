package lazy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/billup/billup-web/pkg/lazy"
)

func TestLoader_Load_CallsProviderOnce(t *testing.T) {
	calls := 0
	loader := lazy.New(func() (int, error) {
		calls++
		return 42, nil
	})

	assert.Equal(t, 42, loader.MustLoad())
	assert.Equal(t, 42, loader.MustLoad())
	assert.Equal(t, 1, calls)
}

func TestLoader_MustLoad_PanicsOnError(t *testing.T) {
	loader := lazy.New(func() (string, error) {
		return "", errors.New("no config")
	})

	assert.Panics(t, func() { loader.MustLoad() })
}

func TestLoader_Load_KeepsError(t *testing.T) {
	calls := 0
	expectedErr := errors.New("no config")
	loader := lazy.New(func() (string, error) {
		calls++
		return "", expectedErr
	})

	_, err := loader.Load()
	assert.ErrorIs(t, err, expectedErr)
	_, err = loader.Load()
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 1, calls)
}

func TestValue(t *testing.T) {
	assert.Equal(t, "api", lazy.Value("api").MustLoad())
}
