package program

import (
	"bytes"
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetchain/cmd/back/internal/app"
	"tweetchain/cmd/back/internal/ledger"
	"tweetchain/internal/account"
)

const airdrop = 1_000_000_000

var testNow = time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)

type env struct {
	ctx     context.Context
	program *Program
	store   *ledger.Memory
	author  account.PublicKey
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := ledger.NewMemory()
	p := New(newKey(t), store, ledger.DefaultRent())
	p.Now = func() time.Time { return testNow }

	e := &env{ctx: context.Background(), program: p, store: store, author: newKey(t)}
	e.fund(t, e.author)
	return e
}

func newKey(t *testing.T) account.PublicKey {
	t.Helper()
	kp, err := account.NewKeypair()
	require.NoError(t, err)
	return kp.PublicKey()
}

func (e *env) fund(t *testing.T, key account.PublicKey) {
	t.Helper()
	_, err := ledger.Airdrop(e.ctx, e.store, key, airdrop)
	require.NoError(t, err)
}

func (e *env) balance(t *testing.T, key account.PublicKey) uint64 {
	t.Helper()
	b, err := ledger.Balance(e.ctx, e.store, key)
	require.NoError(t, err)
	return b
}

func (e *env) send(t *testing.T, author account.PublicKey, topic, content string) account.PublicKey {
	t.Helper()
	tweet := newKey(t)
	_, err := e.program.SendTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  author,
		Signers: NewSigners(tweet, author),
	}, topic, content)
	require.NoError(t, err)
	return tweet
}

func TestSendTweet(t *testing.T) {
	e := newEnv(t)
	tweet := newKey(t)

	rec, err := e.program.SendTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  e.author,
		Signers: NewSigners(tweet, e.author),
	}, "bikes", "this is a tweet about bikes")
	require.NoError(t, err)

	deposit := ledger.DefaultRent().MinimumBalance(app.TweetLen)
	assert.Equal(t, tweet, rec.Address)
	assert.Equal(t, deposit, rec.Lamports)

	got, err := e.program.GetTweet(e.ctx, tweet)
	require.NoError(t, err)
	assert.Equal(t, app.Tweet{
		Author:    e.author,
		Timestamp: testNow.Unix(),
		Topic:     "bikes",
		Content:   "this is a tweet about bikes",
	}, got.Tweet)

	acc, err := e.store.Get(e.ctx, tweet)
	require.NoError(t, err)
	assert.Len(t, acc.Data, app.TweetLen)
	assert.Equal(t, e.program.ID, acc.Owner)
	assert.Equal(t, uint64(airdrop)-deposit, e.balance(t, e.author))
}

func TestSendTweetWithoutTopic(t *testing.T) {
	e := newEnv(t)
	tweet := e.send(t, e.author, "", "this is a tweet")

	got, err := e.program.GetTweet(e.ctx, tweet)
	require.NoError(t, err)
	assert.Equal(t, "", got.Tweet.Topic)
	assert.Equal(t, "this is a tweet", got.Tweet.Content)
}

func TestSendTweetFromDifferentAuthor(t *testing.T) {
	e := newEnv(t)
	other := newKey(t)
	e.fund(t, other)

	tweet := e.send(t, other, "bikes", "team Cannondale")

	got, err := e.program.GetTweet(e.ctx, tweet)
	require.NoError(t, err)
	assert.Equal(t, other, got.Tweet.Author)
	assert.Equal(t, uint64(airdrop), e.balance(t, e.author))
}

func TestSendTweetBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		topic   string
		content string
		want    error
	}{
		{"exact limits", strings.Repeat("x", 50), strings.Repeat("x", 280), nil},
		{"four byte chars at limits", strings.Repeat("🚲", 50), strings.Repeat("🚲", 280), nil},
		{"topic with 51 chars", strings.Repeat("x", 51), "Bikes bikes bikes", app.ErrTopicTooLong},
		{"content with 281 chars", "bikes", strings.Repeat("x", 281), app.ErrContentTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			tweet := newKey(t)

			_, err := e.program.SendTweet(e.ctx, Accounts{
				Tweet:   tweet,
				Author:  e.author,
				Signers: NewSigners(tweet, e.author),
			}, tt.topic, tt.content)

			if tt.want == nil {
				require.NoError(t, err)
				got, err := e.program.GetTweet(e.ctx, tweet)
				require.NoError(t, err)
				assert.Equal(t, tt.topic, got.Tweet.Topic)
				assert.Equal(t, tt.content, got.Tweet.Content)
				return
			}

			require.ErrorIs(t, err, tt.want)
			_, err = e.store.Get(e.ctx, tweet)
			assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
			assert.Equal(t, uint64(airdrop), e.balance(t, e.author))
		})
	}
}

func TestSendTweetMissingSignatures(t *testing.T) {
	e := newEnv(t)
	tweet := newKey(t)

	_, err := e.program.SendTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  e.author,
		Signers: NewSigners(e.author),
	}, "bikes", "gm")
	assert.ErrorIs(t, err, ledger.ErrMissingSignature)

	_, err = e.program.SendTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  e.author,
		Signers: NewSigners(tweet),
	}, strings.Repeat("x", 51), "gm")
	assert.ErrorIs(t, err, ledger.ErrMissingSignature)
}

func TestSendTweetAccountInUse(t *testing.T) {
	e := newEnv(t)
	tweet := e.send(t, e.author, "bikes", "first")
	before := e.balance(t, e.author)

	_, err := e.program.SendTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  e.author,
		Signers: NewSigners(tweet, e.author),
	}, "bikes", "second")
	require.ErrorIs(t, err, ledger.ErrAccountInUse)

	got, err := e.program.GetTweet(e.ctx, tweet)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Tweet.Content)
	assert.Equal(t, before, e.balance(t, e.author))
}

func TestSendTweetInsufficientFunds(t *testing.T) {
	e := newEnv(t)
	poor := newKey(t)
	tweet := newKey(t)

	_, err := e.program.SendTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  poor,
		Signers: NewSigners(tweet, poor),
	}, "bikes", "gm")
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	_, err = e.store.Get(e.ctx, tweet)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestUpdateTweet(t *testing.T) {
	e := newEnv(t)
	tweet := e.send(t, e.author, "solana", "gm")

	p := e.program
	p.Now = func() time.Time { return testNow.Add(time.Hour) }

	rec, err := p.UpdateTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  e.author,
		Signers: NewSigners(e.author),
	}, "anchor", "gm friend")
	require.NoError(t, err)

	want := app.Tweet{
		Author:    e.author,
		Timestamp: testNow.Unix(),
		Topic:     "anchor",
		Content:   "gm friend",
	}
	assert.Equal(t, want, rec.Tweet)

	got, err := p.GetTweet(e.ctx, tweet)
	require.NoError(t, err)
	assert.Equal(t, want, got.Tweet)
}

func TestUpdateTweetValidation(t *testing.T) {
	e := newEnv(t)
	tweet := e.send(t, e.author, "solana", "gm")
	accs := Accounts{Tweet: tweet, Author: e.author, Signers: NewSigners(e.author)}

	_, err := e.program.UpdateTweet(e.ctx, accs, strings.Repeat("x", 51), "gm")
	assert.ErrorIs(t, err, app.ErrTopicTooLong)

	_, err = e.program.UpdateTweet(e.ctx, accs, "solana", strings.Repeat("x", 281))
	assert.ErrorIs(t, err, app.ErrContentTooLong)

	got, err := e.program.GetTweet(e.ctx, tweet)
	require.NoError(t, err)
	assert.Equal(t, "solana", got.Tweet.Topic)
	assert.Equal(t, "gm", got.Tweet.Content)
}

func TestUpdateTweetByOtherAuthor(t *testing.T) {
	e := newEnv(t)
	tweet := e.send(t, e.author, "solana", "gm")
	other := newKey(t)

	_, err := e.program.UpdateTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  other,
		Signers: NewSigners(other),
	}, "hacked", "gm")
	require.ErrorIs(t, err, app.ErrUnauthorized)

	// подпись автора не предоставлена
	_, err = e.program.UpdateTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  e.author,
		Signers: NewSigners(other),
	}, "hacked", "gm")
	require.ErrorIs(t, err, ledger.ErrMissingSignature)

	got, err := e.program.GetTweet(e.ctx, tweet)
	require.NoError(t, err)
	assert.Equal(t, "solana", got.Tweet.Topic)
}

func TestUpdateTweetMissingAccount(t *testing.T) {
	e := newEnv(t)
	_, err := e.program.UpdateTweet(e.ctx, Accounts{
		Tweet:   newKey(t),
		Author:  e.author,
		Signers: NewSigners(e.author),
	}, "solana", "gm")
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestUpdateTweetWrongOwner(t *testing.T) {
	e := newEnv(t)
	// системный аккаунт автора не является твитом
	_, err := e.program.UpdateTweet(e.ctx, Accounts{
		Tweet:   e.author,
		Author:  e.author,
		Signers: NewSigners(e.author),
	}, "solana", "gm")
	assert.ErrorIs(t, err, ledger.ErrAccountOwnedByWrongProgram)
}

func TestDeleteTweet(t *testing.T) {
	e := newEnv(t)
	tweet := e.send(t, e.author, "solana", "gm")
	before := e.balance(t, e.author)

	refund, err := e.program.DeleteTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  e.author,
		Signers: NewSigners(e.author),
	})
	require.NoError(t, err)
	assert.Equal(t, ledger.DefaultRent().MinimumBalance(app.TweetLen), refund)
	assert.Equal(t, before+refund, e.balance(t, e.author))
	assert.Equal(t, uint64(airdrop), e.balance(t, e.author))

	_, err = e.program.GetTweet(e.ctx, tweet)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)

	_, err = e.program.DeleteTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  e.author,
		Signers: NewSigners(e.author),
	})
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestDeleteTweetByOtherAuthor(t *testing.T) {
	e := newEnv(t)
	tweet := e.send(t, e.author, "solana", "gm")
	other := newKey(t)
	e.fund(t, other)

	_, err := e.program.DeleteTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  other,
		Signers: NewSigners(other),
	})
	require.ErrorIs(t, err, app.ErrUnauthorized)

	_, err = e.program.GetTweet(e.ctx, tweet)
	require.NoError(t, err)
	assert.Equal(t, uint64(airdrop), e.balance(t, other))
}

func TestListTweets(t *testing.T) {
	e := newEnv(t)
	other := newKey(t)
	e.fund(t, other)

	a := e.send(t, e.author, "bikes", "this is a tweet about bikes")
	b := e.send(t, e.author, "", "this is a tweet")
	c := e.send(t, other, "bikes", "team Cannondale")
	e.send(t, other, "bike", "almost")

	all, err := e.program.ListTweets(e.ctx, Query{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	mine, err := e.program.ListTweets(e.ctx, Query{Authors: []account.PublicKey{e.author}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []account.PublicKey{a, b}, addresses(mine))

	topic := "bikes"
	bikes, err := e.program.ListTweets(e.ctx, Query{Topic: &topic})
	require.NoError(t, err)
	assert.ElementsMatch(t, []account.PublicKey{a, c}, addresses(bikes))

	empty := ""
	noTopic, err := e.program.ListTweets(e.ctx, Query{Authors: []account.PublicKey{e.author}, Topic: &empty})
	require.NoError(t, err)
	assert.ElementsMatch(t, []account.PublicKey{b}, addresses(noTopic))
}

func TestListTweetsNewestFirst(t *testing.T) {
	e := newEnv(t)
	first := e.send(t, e.author, "", "first")
	e.program.Now = func() time.Time { return testNow.Add(time.Minute) }
	second := e.send(t, e.author, "", "second")

	got, err := e.program.ListTweets(e.ctx, Query{})
	require.NoError(t, err)
	assert.Equal(t, []account.PublicKey{second, first}, addresses(got))
}

func TestListTweetsSameTimestampByAddress(t *testing.T) {
	e := newEnv(t)
	var sent []account.PublicKey
	for i := 0; i < 5; i++ {
		sent = append(sent, e.send(t, e.author, "", "same second"))
	}
	sort.Slice(sent, func(i, j int) bool {
		return bytes.Compare(sent[i][:], sent[j][:]) < 0
	})

	got, err := e.program.ListTweets(e.ctx, Query{})
	require.NoError(t, err)
	assert.Equal(t, sent, addresses(got))
}

func TestDeleteTweetRefundOverflow(t *testing.T) {
	e := newEnv(t)
	tweet := e.send(t, e.author, "solana", "gm")
	_, err := ledger.Airdrop(e.ctx, e.store, e.author, ledger.MaxLamports-e.balance(t, e.author))
	require.NoError(t, err)

	_, err = e.program.DeleteTweet(e.ctx, Accounts{
		Tweet:   tweet,
		Author:  e.author,
		Signers: NewSigners(e.author),
	})
	require.ErrorIs(t, err, ledger.ErrLamportsOverflow)

	_, err = e.program.GetTweet(e.ctx, tweet)
	require.NoError(t, err)
	assert.Equal(t, uint64(ledger.MaxLamports), e.balance(t, e.author))
}

func addresses(records []Record) []account.PublicKey {
	res := make([]account.PublicKey, 0, len(records))
	for _, r := range records {
		res = append(res, r.Address)
	}
	return res
}
