package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		content string
		want    error
	}{
		{"empty topic", "", "this is a tweet", nil},
		{"boundary", strings.Repeat("x", 50), strings.Repeat("x", 280), nil},
		{"topic 51", strings.Repeat("x", 51), "Bikes bikes bikes", ErrTopicTooLong},
		{"content 281", "bikes", strings.Repeat("x", 281), ErrContentTooLong},
		{"both too long", strings.Repeat("x", 51), strings.Repeat("x", 281), ErrTopicTooLong},
		{"multibyte topic 50", strings.Repeat("é", 50), "gm", nil},
		{"multibyte topic 51", strings.Repeat("é", 51), "gm", ErrTopicTooLong},
		{"emoji content 280", "gm", strings.Repeat("🚲", 280), nil},
		{"emoji content 281", "gm", strings.Repeat("🚲", 281), ErrContentTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.topic, tt.content)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, uint32(6000), ErrTopicTooLong.Code())
	assert.Equal(t, uint32(6001), ErrContentTooLong.Code())
	assert.Equal(t, uint32(6002), ErrUnauthorized.Code())

	assert.Equal(t, "The provided topic should be 50 characters long maximum.", ErrTopicTooLong.Error())
	assert.Equal(t, "The provided content should be 280 characters long maximum.", ErrContentTooLong.Error())
	assert.Equal(t, "Unauthorized", ErrUnauthorized.Name())
	assert.Equal(t, "Unknown", ErrorCode(1).Name())
}
