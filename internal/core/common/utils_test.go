package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestParseJSON_Plain(t *testing.T) {
	result, err := ParseJSON[payload](`{"name": "web", "count": 2}`)
	assert.NoError(t, err)
	assert.Equal(t, "web", result.Name)
	assert.Equal(t, 2, result.Count)
}

func TestParseJSON_MarkdownFence(t *testing.T) {
	response := "Here is the categorization:\n```json\n{\"name\": \"ai\", \"count\": 7}\n```\nLet me know if you need more."
	result, err := ParseJSON[payload](response)
	assert.NoError(t, err)
	assert.Equal(t, "ai", result.Name)
	assert.Equal(t, 7, result.Count)
}

func TestParseJSON_BareFence(t *testing.T) {
	response := "```\n{\"name\": \"iot\", \"count\": 1}\n```"
	result, err := ParseJSON[payload](response)
	assert.NoError(t, err)
	assert.Equal(t, "iot", result.Name)
}

func TestParseJSON_SurroundingProse(t *testing.T) {
	response := `Sure! {"name": "cloud", "count": 3} Hope that helps.`
	result, err := ParseJSON[payload](response)
	assert.NoError(t, err)
	assert.Equal(t, "cloud", result.Name)
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := ParseJSON[payload](`{"name": "broken`)
	assert.Error(t, err)

	_, err = ParseJSON[payload]("no json here at all")
	assert.Error(t, err)
}
