package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devnetwork/devnetwork-service/pkg/util"
)

type loginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestCheckValidPayload(t *testing.T) {
	v := New()
	err := Check(v, loginPayload{Email: "jane@example.com", Password: "secret6"})
	assert.NoError(t, err)
}

func TestCheckReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := Check(v, loginPayload{Email: "not-an-email", Password: ""})
	require.Error(t, err)

	domainErr := util.ToDomainError(err)
	assert.Equal(t, 400, domainErr.HTTPStatus)
	require.Len(t, domainErr.Fields, 2)

	params := []string{domainErr.Fields[0].Param, domainErr.Fields[1].Param}
	assert.Contains(t, params, "email")
	assert.Contains(t, params, "password")
}

func TestCheckMinMessage(t *testing.T) {
	v := New()
	err := Check(v, loginPayload{Email: "jane@example.com", Password: "123"})
	require.Error(t, err)

	domainErr := util.ToDomainError(err)
	require.Len(t, domainErr.Fields, 1)
	assert.Equal(t, "password must be at least 6 characters", domainErr.Fields[0].Msg)
}
