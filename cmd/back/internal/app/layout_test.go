package app

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetchain/internal/account"
)

func TestTweetLen(t *testing.T) {
	assert.Equal(t, 1376, TweetLen)
	assert.Equal(t, 8, AuthorOffset)
	assert.Equal(t, 40, TimestampOffset)
	assert.Equal(t, 52, TopicOffset)
}

func TestMarshalLayout(t *testing.T) {
	kp, err := account.NewKeypair()
	require.NoError(t, err)

	tweet := Tweet{
		Author:    kp.PublicKey(),
		Timestamp: 1640995200,
		Topic:     "solana",
		Content:   "gm",
	}
	data, err := tweet.Marshal()
	require.NoError(t, err)
	require.Len(t, data, TweetLen)

	assert.Equal(t, TweetDiscriminator[:], data[:DiscriminatorLength])
	assert.Equal(t, tweet.Author[:], data[AuthorOffset:AuthorOffset+PublicKeyLength])
	assert.Equal(t, []byte{6, 0, 0, 0}, data[TopicOffset-StringLengthPrefix:TopicOffset])
	assert.Equal(t, "solana", string(data[TopicOffset:TopicOffset+6]))
	assert.Equal(t, []byte{2, 0, 0, 0}, data[TopicOffset+6:TopicOffset+10])
	assert.Equal(t, "gm", string(data[TopicOffset+10:TopicOffset+12]))

	for _, b := range data[TopicOffset+12:] {
		require.Zero(t, b)
	}

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, tweet, got)
}

func TestMarshalWorstCaseEncoding(t *testing.T) {
	tweet := Tweet{
		Topic:   strings.Repeat("🚲", MaxTopicChars),
		Content: strings.Repeat("🚲", MaxContentChars),
	}
	require.NoError(t, Validate(tweet.Topic, tweet.Content))

	data, err := tweet.Marshal()
	require.NoError(t, err)
	assert.Len(t, data, TweetLen)
}

func TestMarshalOverCapacity(t *testing.T) {
	_, err := Tweet{Topic: strings.Repeat("x", MaxTopicLength+1)}.Marshal()
	assert.ErrorIs(t, err, ErrTopicTooLong)

	_, err = Tweet{Content: strings.Repeat("x", MaxContentLength+1)}.Marshal()
	assert.ErrorIs(t, err, ErrContentTooLong)
}

func TestUnmarshalErrors(t *testing.T) {
	data, err := Tweet{Topic: "bikes", Content: "team Cannondale"}.Marshal()
	require.NoError(t, err)

	_, err = Unmarshal(data[:4])
	assert.ErrorIs(t, err, ErrAccountDidNotDeserialize)

	wrong := append([]byte{}, data...)
	wrong[0] ^= 0xff
	_, err = Unmarshal(wrong)
	assert.ErrorIs(t, err, ErrAccountDiscriminatorMismatch)

	_, err = Unmarshal(data[:TopicOffset+2])
	assert.ErrorIs(t, err, ErrAccountDidNotDeserialize)

	corrupt := append([]byte{}, data...)
	corrupt[TopicOffset-4] = 0xff
	corrupt[TopicOffset-1] = 0xff
	_, err = Unmarshal(corrupt)
	assert.ErrorIs(t, err, ErrAccountDidNotDeserialize)
}

func TestProperty_ValidTweetsRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("tweets within limits validate and survive the account layout", prop.ForAll(
		func(topic, content string, ts int64) bool {
			if utf8.RuneCountInString(topic) > MaxTopicChars {
				topic = string([]rune(topic)[:MaxTopicChars])
			}
			if utf8.RuneCountInString(content) > MaxContentChars {
				content = string([]rune(content)[:MaxContentChars])
			}
			if Validate(topic, content) != nil {
				return false
			}

			tweet := Tweet{Timestamp: ts, Topic: topic, Content: content}
			data, err := tweet.Marshal()
			if err != nil || len(data) != TweetLen {
				return false
			}
			got, err := Unmarshal(data)
			return err == nil && got == tweet
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.Int64(),
	))

	properties.Property("one character over the limit is rejected", prop.ForAll(
		func(n int) bool {
			topic := strings.Repeat("x", MaxTopicChars+n)
			content := strings.Repeat("y", MaxContentChars+n)
			return Validate(topic, "") == ErrTopicTooLong &&
				Validate("", content) == ErrContentTooLong
		},
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}
