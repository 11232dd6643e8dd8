package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	WorkerID string `validate:"required,uuid4"`
	Method   string `validate:"required,oneof=geofence qrcode manual"`
	Code     string `validate:"required_if=Method qrcode"`
}

func TestValidate_Passes(t *testing.T) {
	err := Validate(sampleRequest{
		WorkerID: "7f9c24e5-2b3a-4d4e-9c1a-8f6d2e5b3a7c",
		Method:   "geofence",
	})
	assert.NoError(t, err)
}

func TestValidate_CollectsFieldErrors(t *testing.T) {
	err := Validate(sampleRequest{Method: "carrier-pigeon"})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)

	m := verrs.ToMap()
	assert.Contains(t, m, "workerid")
	assert.Contains(t, m, "method")
}

func TestValidate_RequiredIf(t *testing.T) {
	err := Validate(sampleRequest{
		WorkerID: "7f9c24e5-2b3a-4d4e-9c1a-8f6d2e5b3a7c",
		Method:   "qrcode",
	})
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "code")
}
