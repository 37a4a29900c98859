package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/letteragent/letteragent/pkg/account"
)

func TestProfile_Validate(t *testing.T) {
	t.Run("NameAndEmailSuffice", func(t *testing.T) {
		p := account.Profile{FullName: "Dana Smith", Email: "dana@example.com"}
		assert.NoError(t, p.Validate())
	})

	t.Run("MissingName", func(t *testing.T) {
		p := account.Profile{Email: "dana@example.com"}
		err := p.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "full name and email are required")
	})

	t.Run("MissingEmail", func(t *testing.T) {
		p := account.Profile{FullName: "Dana Smith"}
		assert.Error(t, p.Validate())
	})

	t.Run("EmptyProfile", func(t *testing.T) {
		assert.Error(t, account.Profile{}.Validate())
	})
}
