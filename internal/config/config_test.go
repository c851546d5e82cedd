package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SALT_ROUNDS", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("ES_INDEX", "")
	t.Setenv("KAFKA_BROKERS", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSaltRounds, cfg.SaltRounds)
	assert.Equal(t, DefaultServerPort, cfg.ServerPort)
	assert.Equal(t, DefaultESIndex, cfg.ESIndex)
	assert.Nil(t, cfg.KafkaBrokers)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_ReadsEnv(t *testing.T) {
	t.Setenv("SALT_ROUNDS", "4")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("TOKEN_SECRET", "secret")
	t.Setenv("BCRYPT_PASSWORD", "pepper")
	t.Setenv("KAFKA_BROKERS", "kafka:9092, kafka2:9092,")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.SaltRounds)
	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, []byte("secret"), cfg.TokenSecret)
	assert.Equal(t, "pepper", cfg.PasswordPepper)
	assert.Equal(t, []string{"kafka:9092", "kafka2:9092"}, cfg.KafkaBrokers)
}

func TestLoad_MalformedSaltRoundsIsFatal(t *testing.T) {
	t.Setenv("SALT_ROUNDS", "ten")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SALT_ROUNDS")
}

func TestValidate(t *testing.T) {
	err := Config{}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "TOKEN_SECRET")
	assert.Contains(t, err.Error(), "BCRYPT_PASSWORD")

	ok := Config{DatabaseURL: "sqlite:file::memory:", TokenSecret: []byte("s"), PasswordPepper: "p"}
	assert.NoError(t, ok.Validate())
}
