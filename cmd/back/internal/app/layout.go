package app

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"tweetchain/internal/account"
)

// Раскладка аккаунта твита в байтах
const (
	DiscriminatorLength = 8
	PublicKeyLength     = account.PublicKeyLength
	TimestampLength     = 8
	StringLengthPrefix  = 4                   // длина строки (u32 LE)
	MaxTopicLength      = MaxTopicChars * 4   // 50 символов по 4 байта в худшем случае
	MaxContentLength    = MaxContentChars * 4 // 280 символов по 4 байта

	TweetLen = DiscriminatorLength +
		PublicKeyLength + // author
		TimestampLength + // timestamp
		StringLengthPrefix + MaxTopicLength + // topic
		StringLengthPrefix + MaxContentLength // content
)

// Смещения для фильтрации по сырым данным аккаунта
const (
	AuthorOffset    = DiscriminatorLength
	TimestampOffset = AuthorOffset + PublicKeyLength
	TopicOffset     = TimestampOffset + TimestampLength + StringLengthPrefix
)

var ErrAccountDidNotDeserialize = errors.New("failed to deserialize the account")
var ErrAccountDiscriminatorMismatch = errors.New("account discriminator did not match")

// TweetDiscriminator первые 8 байт sha256("account:Tweet")
var TweetDiscriminator = func() [DiscriminatorLength]byte {
	sum := sha256.Sum256([]byte("account:Tweet"))
	var d [DiscriminatorLength]byte
	copy(d[:], sum[:DiscriminatorLength])
	return d
}()

// Marshal пишет твит в буфер ровно TweetLen байт, хвост заполнен нулями
func (t Tweet) Marshal() ([]byte, error) {
	if len(t.Topic) > MaxTopicLength {
		return nil, fmt.Errorf("topic is %d bytes, capacity %d: %w", len(t.Topic), MaxTopicLength, ErrTopicTooLong)
	}
	if len(t.Content) > MaxContentLength {
		return nil, fmt.Errorf("content is %d bytes, capacity %d: %w", len(t.Content), MaxContentLength, ErrContentTooLong)
	}

	buf := make([]byte, 0, TweetLen)
	buf = append(buf, TweetDiscriminator[:]...)
	buf = append(buf, t.Author[:]...)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(t.Timestamp))
	buf = appendString(buf, t.Topic)
	buf = appendString(buf, t.Content)

	return buf[:TweetLen], nil
}

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

// Unmarshal читает твит из данных аккаунта
func Unmarshal(data []byte) (Tweet, error) {
	var t Tweet
	if len(data) < DiscriminatorLength {
		return t, ErrAccountDidNotDeserialize
	}
	if !bytes.Equal(data[:DiscriminatorLength], TweetDiscriminator[:]) {
		return t, ErrAccountDiscriminatorMismatch
	}

	r := reader{data: data, off: DiscriminatorLength}
	author, err := r.next(PublicKeyLength)
	if err != nil {
		return t, err
	}
	copy(t.Author[:], author)

	ts, err := r.next(TimestampLength)
	if err != nil {
		return t, err
	}
	t.Timestamp = int64(binary.LittleEndian.Uint64(ts))

	if t.Topic, err = r.string(); err != nil {
		return t, err
	}
	if t.Content, err = r.string(); err != nil {
		return t, err
	}
	return t, nil
}

type reader struct {
	data []byte
	off  int
}

func (r *reader) next(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.data) {
		return nil, ErrAccountDidNotDeserialize
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) string() (string, error) {
	prefix, err := r.next(StringLengthPrefix)
	if err != nil {
		return "", err
	}
	n := binary.LittleEndian.Uint32(prefix)
	if n > uint32(len(r.data)) {
		return "", ErrAccountDidNotDeserialize
	}
	b, err := r.next(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
