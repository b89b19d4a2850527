package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsedResume_Validate(t *testing.T) {
	valid := &ParsedResume{
		Skills: []string{"Go"},
		Contact: &Contact{
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
	}
	assert.NoError(t, valid.Validate())

	noContact := &ParsedResume{Skills: []string{"Go"}}
	assert.NoError(t, noContact.Validate())

	badEmail := &ParsedResume{Contact: &Contact{Name: "Jane", Email: "not-an-email"}}
	assert.Error(t, badEmail.Validate())
}

func TestResume_UnmarshalNullParsedData(t *testing.T) {
	raw := `{
		"id": "7d4b7b1e-6a55-4b0a-9a57-0f0b4a4e9b11",
		"user_id": "0f5c2a40-2f43-4b7e-9f55-3b1f77a1b2c3",
		"file_name": "cv.pdf",
		"is_active": true,
		"parsed_data": null
	}`

	var r Resume
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	assert.True(t, r.IsActive)
	assert.Nil(t, r.ParsedData)
	assert.Equal(t, "cv.pdf", r.FileName)
}
