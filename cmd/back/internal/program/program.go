package program

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"time"

	"tweetchain/cmd/back/internal/app"
	"tweetchain/cmd/back/internal/ledger"
	"tweetchain/internal/account"
	"tweetchain/internal/logger"
	"tweetchain/internal/metrics"
)

const (
	InstructionSendTweet   = "send_tweet"
	InstructionUpdateTweet = "update_tweet"
	InstructionDeleteTweet = "delete_tweet"
)

// Signers множество ключей, чьи подписи проверены
type Signers map[account.PublicKey]struct{}

func NewSigners(keys ...account.PublicKey) Signers {
	s := make(Signers, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s Signers) Has(key account.PublicKey) bool {
	_, ok := s[key]
	return ok
}

// Accounts аккаунты, переданные в инструкцию
type Accounts struct {
	Tweet   account.PublicKey
	Author  account.PublicKey
	Signers Signers
}

type Record struct {
	Address  account.PublicKey
	Lamports uint64
	Tweet    app.Tweet
}

type Query struct {
	Authors []account.PublicKey
	Topic   *string
}

type Program struct {
	ID     account.PublicKey
	Ledger ledger.Store
	Rent   ledger.Rent
	Now    func() time.Time
}

func New(id account.PublicKey, store ledger.Store, rent ledger.Rent) *Program {
	return &Program{
		ID:     id,
		Ledger: store,
		Rent:   rent,
		Now:    time.Now,
	}
}

// SendTweet создает аккаунт твита, депозит платит автор
func (p *Program) SendTweet(ctx context.Context, accs Accounts, topic, content string) (rec Record, err error) {
	defer func() { observe(ctx, InstructionSendTweet, accs, err) }()

	if err := requireSigners(accs.Signers, accs.Author, accs.Tweet); err != nil {
		return Record{}, err
	}

	deposit := p.Rent.MinimumBalance(app.TweetLen)
	err = p.Ledger.Atomic(ctx, func(tx ledger.Tx) error {
		if _, err := tx.Get(ctx, accs.Tweet); err == nil {
			return fmt.Errorf("tweet %s: %w", accs.Tweet, ledger.ErrAccountInUse)
		} else if !errors.Is(err, ledger.ErrAccountNotFound) {
			return err
		}

		payer, err := tx.Get(ctx, accs.Author)
		if errors.Is(err, ledger.ErrAccountNotFound) || (err == nil && payer.Lamports < deposit) {
			return fmt.Errorf("author %s needs %d lamports: %w", accs.Author, deposit, ledger.ErrInsufficientFunds)
		}
		if err != nil {
			return err
		}

		if err := app.Validate(topic, content); err != nil {
			return err
		}

		tweet := app.Tweet{
			Author:    accs.Author,
			Timestamp: p.Now().Unix(),
			Topic:     topic,
			Content:   content,
		}
		data, err := tweet.Marshal()
		if err != nil {
			return err
		}

		payer.Lamports -= deposit
		if err := tx.Put(ctx, payer); err != nil {
			return err
		}
		rec = Record{Address: accs.Tweet, Lamports: deposit, Tweet: tweet}
		return tx.Create(ctx, ledger.Account{
			Address:  accs.Tweet,
			Owner:    p.ID,
			Lamports: deposit,
			Data:     data,
		})
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// UpdateTweet меняет только topic и content, author и timestamp не трогаем
func (p *Program) UpdateTweet(ctx context.Context, accs Accounts, topic, content string) (rec Record, err error) {
	defer func() { observe(ctx, InstructionUpdateTweet, accs, err) }()

	if err := requireSigners(accs.Signers, accs.Author); err != nil {
		return Record{}, err
	}

	err = p.Ledger.Atomic(ctx, func(tx ledger.Tx) error {
		acc, tweet, err := p.loadOwned(ctx, tx, accs)
		if err != nil {
			return err
		}
		if err := app.Validate(topic, content); err != nil {
			return err
		}

		tweet.Topic = topic
		tweet.Content = content
		if acc.Data, err = tweet.Marshal(); err != nil {
			return err
		}
		rec = Record{Address: acc.Address, Lamports: acc.Lamports, Tweet: tweet}
		return tx.Put(ctx, acc)
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// DeleteTweet закрывает аккаунт твита и возвращает депозит автору
func (p *Program) DeleteTweet(ctx context.Context, accs Accounts) (refund uint64, err error) {
	defer func() { observe(ctx, InstructionDeleteTweet, accs, err) }()

	if err := requireSigners(accs.Signers, accs.Author); err != nil {
		return 0, err
	}

	err = ledger.Atomic(ctx, p.Ledger, func(tx ledger.Tx) error {
		acc, _, err := p.loadOwned(ctx, tx, accs)
		if err != nil {
			return err
		}

		refund = acc.Lamports
		if err := tx.Delete(ctx, acc.Address); err != nil {
			return err
		}
		_, err = ledger.Credit(ctx, tx, accs.Author, refund)
		return err
	})
	if err != nil {
		return 0, err
	}
	metrics.LamportsReclaimed.Add(float64(refund))
	return refund, nil
}

func (p *Program) GetTweet(ctx context.Context, address account.PublicKey) (Record, error) {
	acc, err := p.Ledger.Get(ctx, address)
	if err != nil {
		return Record{}, fmt.Errorf("tweet %s: %w", address, err)
	}
	tweet, err := p.decode(acc)
	if err != nil {
		return Record{}, err
	}
	return Record{Address: acc.Address, Lamports: acc.Lamports, Tweet: tweet}, nil
}

// ListTweets новые твиты первыми
func (p *Program) ListTweets(ctx context.Context, q Query) ([]Record, error) {
	filters := []ledger.Filter{{
		Offset: 0,
		Values: [][]byte{app.TweetDiscriminator[:]},
	}}
	if len(q.Authors) > 0 {
		f := ledger.Filter{Offset: app.AuthorOffset}
		for _, a := range q.Authors {
			f.Values = append(f.Values, a.Bytes())
		}
		filters = append(filters, f)
	}
	if q.Topic != nil {
		// длина + байты, чтобы "bike" не совпадал с "bikes"
		v := binary.LittleEndian.AppendUint32(nil, uint32(len(*q.Topic)))
		v = append(v, *q.Topic...)
		filters = append(filters, ledger.Filter{
			Offset: app.TopicOffset - app.StringLengthPrefix,
			Values: [][]byte{v},
		})
	}

	accounts, err := p.Ledger.List(ctx, p.ID, filters...)
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}

	records := make([]Record, 0, len(accounts))
	for _, acc := range accounts {
		tweet, err := app.Unmarshal(acc.Data)
		if err != nil {
			logger.FromContext(ctx).Warn("skip undecodable tweet account",
				"address", acc.Address.String(), "error", err)
			continue
		}
		records = append(records, Record{Address: acc.Address, Lamports: acc.Lamports, Tweet: tweet})
	}
	// при равном времени порядок по байтам адреса, одинаковый для всех хранилищ
	sort.Slice(records, func(i, j int) bool {
		if records[i].Tweet.Timestamp != records[j].Tweet.Timestamp {
			return records[i].Tweet.Timestamp > records[j].Tweet.Timestamp
		}
		return bytes.Compare(records[i].Address[:], records[j].Address[:]) < 0
	})
	return records, nil
}

// loadOwned проверки аккаунта твита: владелец - программа, автор совпадает с подписантом
func (p *Program) loadOwned(ctx context.Context, tx ledger.Tx, accs Accounts) (ledger.Account, app.Tweet, error) {
	acc, err := tx.Get(ctx, accs.Tweet)
	if err != nil {
		return ledger.Account{}, app.Tweet{}, fmt.Errorf("tweet %s: %w", accs.Tweet, err)
	}
	tweet, err := p.decode(acc)
	if err != nil {
		return ledger.Account{}, app.Tweet{}, err
	}
	if tweet.Author != accs.Author {
		return ledger.Account{}, app.Tweet{}, app.ErrUnauthorized
	}
	return acc, tweet, nil
}

func (p *Program) decode(acc ledger.Account) (app.Tweet, error) {
	if acc.Owner != p.ID {
		return app.Tweet{}, fmt.Errorf("account %s: %w", acc.Address, ledger.ErrAccountOwnedByWrongProgram)
	}
	tweet, err := app.Unmarshal(acc.Data)
	if err != nil {
		return app.Tweet{}, fmt.Errorf("account %s: %w", acc.Address, err)
	}
	return tweet, nil
}

func requireSigners(signers Signers, keys ...account.PublicKey) error {
	for _, k := range keys {
		if !signers.Has(k) {
			return fmt.Errorf("%s: %w", k, ledger.ErrMissingSignature)
		}
	}
	return nil
}

func observe(ctx context.Context, instruction string, accs Accounts, err error) {
	result := resultLabel(err)
	metrics.InstructionsTotal.WithLabelValues(instruction, result).Inc()

	log := logger.FromContext(ctx)
	if err != nil {
		log.Debug("instruction failed", "instruction", instruction,
			"tweet", accs.Tweet.String(), "author", accs.Author.String(), "result", result, "error", err)
		return
	}
	log.Debug("instruction executed", "instruction", instruction,
		"tweet", accs.Tweet.String(), "author", accs.Author.String())
}

func resultLabel(err error) string {
	var code app.ErrorCode
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &code):
		return code.Name()
	case errors.Is(err, ledger.ErrMissingSignature):
		return "MissingSignature"
	case errors.Is(err, ledger.ErrAccountNotFound):
		return "AccountNotFound"
	case errors.Is(err, ledger.ErrAccountInUse):
		return "AccountInUse"
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return "InsufficientFunds"
	case errors.Is(err, ledger.ErrAccountOwnedByWrongProgram):
		return "AccountOwnedByWrongProgram"
	case errors.Is(err, ledger.ErrLamportsOverflow):
		return "LamportsOverflow"
	default:
		return "error"
	}
}
