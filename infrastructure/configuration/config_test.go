package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, 10002, C.App.Port)
	assert.NotEmpty(t, C.App.BaseURL)
	assert.Equal(t, "gpt-4-turbo-preview", C.OpenAI.Model)
	assert.Equal(t, "gpt-4o-mini", C.OpenAI.ChatModel)
	assert.Equal(t, 50, C.Sync.PageSize)
	assert.Equal(t, "leads@granitereply.com", C.Resend.NotificationEmail)
}

func TestGetConfig(t *testing.T) {
	t.Setenv("ENV", "")
	assert.Equal(t, "config", getConfig())

	t.Setenv("ENV", "production")
	assert.Equal(t, "config-production", getConfig())
}
