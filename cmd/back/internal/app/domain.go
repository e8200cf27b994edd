package app

import (
	"unicode/utf8"

	"tweetchain/internal/account"
)

// Лимиты считаются в символах (unicode scalar values), а не в байтах
const (
	MaxTopicChars   = 50
	MaxContentChars = 280
)

type Tweet struct {
	Author    account.PublicKey `json:"author"`
	Timestamp int64             `json:"timestamp"`
	Topic     string            `json:"topic"`
	Content   string            `json:"content"`
}

// Validate проверяет длины topic и content. Topic проверяется первым.
func Validate(topic, content string) error {
	if utf8.RuneCountInString(topic) > MaxTopicChars {
		return ErrTopicTooLong
	}
	if utf8.RuneCountInString(content) > MaxContentChars {
		return ErrContentTooLong
	}
	return nil
}
