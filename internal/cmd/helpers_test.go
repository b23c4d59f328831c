package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	poserrors "github.com/shopipy/posctl/internal/errors"
)

func TestValidateID(t *testing.T) {
	assert.NoError(t, validateID("merchant", "0d4f3c5e-8a3b-4f43-9a95-1f8d14c2ab01"))

	err := validateID("merchant", "not-a-uuid")
	require.Error(t, err)

	var posErr *poserrors.PosError
	require.ErrorAs(t, err, &posErr)
	assert.Equal(t, poserrors.ErrCodeInvalidID, posErr.Code)
}

func TestUUIDArgs(t *testing.T) {
	validate := uuidArgs("order", "item")

	ok := []string{
		"0d4f3c5e-8a3b-4f43-9a95-1f8d14c2ab01",
		"7b8e1a40-6d2f-4f9c-9a56-0c3a2d1e4f85",
	}
	assert.NoError(t, validate(nil, ok))
	assert.Error(t, validate(nil, ok[:1]))
	assert.Error(t, validate(nil, []string{ok[0], "nope"}))
}

func TestValidateSlotDate(t *testing.T) {
	assert.Error(t, validateSlotDate("not-a-date"))
	assert.Error(t, validateSlotDate("2020-01-01"))

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	assert.NoError(t, validateSlotDate(tomorrow))

	today := time.Now().Format("2006-01-02")
	assert.NoError(t, validateSlotDate(today))
}
