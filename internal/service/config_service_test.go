package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cattery/internal/domain"
	"cattery/internal/service"
	"cattery/mocks"
)

func newConfigService(t *testing.T) (service.ConfigService, *mocks.MockConfigRepo) {
	t.Helper()
	repo := new(mocks.MockConfigRepo)
	svc, err := service.NewConfigService(repo)
	require.NoError(t, err)
	return svc, repo
}

func TestConfigService_Set_KnownKeys(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"name ok", service.ConfigKeyCatteryName, `"猫舍"`, false},
		{"name empty", service.ConfigKeyCatteryName, `""`, true},
		{"name wrong type", service.ConfigKeyCatteryName, `42`, true},
		{"visible ok", service.ConfigKeyDefaultVisible, `false`, false},
		{"visible string", service.ConfigKeyDefaultVisible, `"no"`, true},
		{"price range ok", service.ConfigKeyPriceRange, `{"min": 0, "max": 50000}`, false},
		{"price range missing max", service.ConfigKeyPriceRange, `{"min": 0}`, true},
		{"price range negative min", service.ConfigKeyPriceRange, `{"min": -1, "max": 10}`, true},
		{"contact ok", service.ConfigKeyCatteryContact, `{"phone": "123", "wechat": "cattery"}`, false},
		{"contact extra field", service.ConfigKeyCatteryContact, `{"email": "x@y.z"}`, true},
		{"unknown key accepts any JSON", "ui.theme", `{"dark": true, "accent": [1, 2]}`, false},
		{"malformed JSON", "ui.theme", `{"dark":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newConfigService(t)
			repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.ConfigEntry")).Return(nil).Maybe()

			entry, err := svc.Set(context.Background(), tt.key, service.SetConfigInput{Value: json.RawMessage(tt.value)})

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidConfigValue)
				repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, entry.Key)
			assert.JSONEq(t, tt.value, string(entry.Value))
		})
	}
}

func TestConfigService_Set_ErrorNamesLocation(t *testing.T) {
	svc, _ := newConfigService(t)

	_, err := svc.Set(context.Background(), service.ConfigKeyPriceRange,
		service.SetConfigInput{Value: json.RawMessage(`{"min": -1, "max": 10}`)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "/min")
}

func TestConfigService_Set_BlankKey(t *testing.T) {
	svc, _ := newConfigService(t)

	_, err := svc.Set(context.Background(), "  ", service.SetConfigInput{Value: json.RawMessage(`1`)})

	assert.ErrorIs(t, err, domain.ErrInvalidConfigValue)
}

func TestConfigService_DefaultVisible(t *testing.T) {
	t.Run("unset defaults to true", func(t *testing.T) {
		svc, repo := newConfigService(t)
		repo.On("GetByKey", mock.Anything, service.ConfigKeyDefaultVisible).Return(nil, domain.ErrNotFound)

		assert.True(t, svc.DefaultVisible(context.Background()))
	})

	t.Run("stored false", func(t *testing.T) {
		svc, repo := newConfigService(t)
		repo.On("GetByKey", mock.Anything, service.ConfigKeyDefaultVisible).
			Return(&domain.ConfigEntry{Key: service.ConfigKeyDefaultVisible, Value: json.RawMessage(`false`)}, nil)

		assert.False(t, svc.DefaultVisible(context.Background()))
	})

	t.Run("garbage value defaults to true", func(t *testing.T) {
		svc, repo := newConfigService(t)
		repo.On("GetByKey", mock.Anything, service.ConfigKeyDefaultVisible).
			Return(&domain.ConfigEntry{Key: service.ConfigKeyDefaultVisible, Value: json.RawMessage(`"maybe"`)}, nil)

		assert.True(t, svc.DefaultVisible(context.Background()))
	})
}
