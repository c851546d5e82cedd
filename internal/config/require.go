package config

import (
	"errors"
	"fmt"
)

func NonEmpty(value, envName string) error {
	if value == "" {
		return fmt.Errorf("missing required env %s", envName)
	}
	return nil
}

func NonEmptyBytes(value []byte, envName string) error {
	if len(value) == 0 {
		return fmt.Errorf("missing required env %s", envName)
	}
	return nil
}

func (c Config) Validate() error {
	return errors.Join(
		NonEmpty(c.DatabaseURL, "DATABASE_URL"),
		NonEmptyBytes(c.TokenSecret, "TOKEN_SECRET"),
		NonEmpty(c.PasswordPepper, "BCRYPT_PASSWORD"),
	)
}
