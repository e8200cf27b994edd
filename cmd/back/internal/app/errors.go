package app

import "fmt"

// ErrorCode ошибки программы, номера стабильные (начинаются с 6000)
type ErrorCode uint32

const (
	ErrTopicTooLong ErrorCode = 6000 + iota
	ErrContentTooLong
	ErrUnauthorized
)

var errorNames = map[ErrorCode]string{
	ErrTopicTooLong:   "TopicTooLong",
	ErrContentTooLong: "ContentTooLong",
	ErrUnauthorized:   "Unauthorized",
}

var errorMessages = map[ErrorCode]string{
	ErrTopicTooLong:   "The provided topic should be 50 characters long maximum.",
	ErrContentTooLong: "The provided content should be 280 characters long maximum.",
	ErrUnauthorized:   "You have to be the author to update a tweet.",
}

func (e ErrorCode) Error() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error code %d", uint32(e))
}

func (e ErrorCode) Name() string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	return "Unknown"
}

func (e ErrorCode) Code() uint32 {
	return uint32(e)
}
