package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserProfile(t *testing.T) {
	profile := NewUserProfile(map[string]interface{}{
		"name":      "Jane",
		"phone":     5550100,
		"image":     nil,
		"company":   "Acme",
		"email":     "other@example.com",
		"role":      "admin",
		"_id":       "forged",
		"createdAt": "yesterday",
	})

	assert.Equal(t, UserProfile{
		"name":    "Jane",
		"phone":   "5550100",
		"image":   "",
		"company": "Acme",
	}, profile)

	columns, extras := profile.Split()
	assert.Equal(t, map[string]interface{}{"name": "Jane", "phone": "5550100", "image": ""}, columns)
	assert.Equal(t, map[string]interface{}{"company": "Acme"}, extras)
}

func TestUserJSONFlattensExtras(t *testing.T) {
	user := User{ID: "abc", Email: "jane@example.com", Name: "Jane", Extras: map[string]interface{}{"company": "Acme"}}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Acme", doc["company"])
	assert.Equal(t, "Jane", doc["name"])
	assert.NotContains(t, doc, "Extras")

	var decoded User
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "jane@example.com", decoded.Email)
	assert.Equal(t, "Acme", decoded.Extras["company"])
	assert.NotContains(t, decoded.Extras, "email")
}
