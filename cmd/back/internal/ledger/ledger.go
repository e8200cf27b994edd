// Package ledger хранит аккаунты (адрес, владелец-программа, баланс, данные)
// и выполняет изменения атомарно: транзакция применяется целиком или никак.
package ledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"

	"tweetchain/internal/account"
)

var (
	ErrAccountNotFound            = errors.New("account not found")
	ErrAccountInUse               = errors.New("account already in use")
	ErrInsufficientFunds          = errors.New("insufficient funds")
	ErrMissingSignature           = errors.New("missing required signature")
	ErrAccountOwnedByWrongProgram = errors.New("account owned by wrong program")
	ErrFilterValueLength          = errors.New("filter values must have equal length")
	ErrLamportsOverflow           = errors.New("lamports overflow")

	// errRecipientCreated аккаунт получателя создан параллельной транзакцией
	errRecipientCreated = errors.New("recipient created concurrently")
)

// MaxLamports баланс хранится в bigint
const MaxLamports = math.MaxInt64

// SystemProgram владелец "обычных" аккаунтов с балансом
var SystemProgram = account.PublicKey{}

type Account struct {
	Address  account.PublicKey
	Owner    account.PublicKey
	Lamports uint64
	Data     []byte
}

func (a Account) Clone() Account {
	a.Data = bytes.Clone(a.Data)
	return a
}

type Tx interface {
	// Get блокирует аккаунт до конца транзакции
	Get(ctx context.Context, address account.PublicKey) (Account, error)
	// Create только для нового адреса, иначе ErrAccountInUse
	Create(ctx context.Context, acc Account) error
	Put(ctx context.Context, acc Account) error
	Delete(ctx context.Context, address account.PublicKey) error
}

type Store interface {
	// Atomic выполняет fn в одной транзакции. Ошибка fn откатывает все изменения.
	Atomic(ctx context.Context, fn func(tx Tx) error) error
	Get(ctx context.Context, address account.PublicKey) (Account, error)
	List(ctx context.Context, owner account.PublicKey, filters ...Filter) ([]Account, error)
}

// Filter совпадает, если данные аккаунта по смещению Offset равны одному из Values
type Filter struct {
	Offset int
	Values [][]byte
}

func (f Filter) Validate() error {
	if f.Offset < 0 || len(f.Values) == 0 {
		return fmt.Errorf("filter at offset %d: %w", f.Offset, ErrFilterValueLength)
	}
	for _, v := range f.Values[1:] {
		if len(v) != len(f.Values[0]) {
			return ErrFilterValueLength
		}
	}
	return nil
}

func (f Filter) Match(data []byte) bool {
	for _, v := range f.Values {
		end := f.Offset + len(v)
		if end <= len(data) && bytes.Equal(data[f.Offset:end], v) {
			return true
		}
	}
	return false
}

func matchAll(data []byte, filters []Filter) bool {
	for _, f := range filters {
		if !f.Match(data) {
			return false
		}
	}
	return true
}

// AddLamports сумма балансов, не больше MaxLamports
func AddLamports(balance, lamports uint64) (uint64, error) {
	if lamports > MaxLamports || balance > MaxLamports-lamports {
		return 0, fmt.Errorf("%d + %d: %w", balance, lamports, ErrLamportsOverflow)
	}
	return balance + lamports, nil
}

// Credit начисляет lamports на address внутри tx, создавая системный аккаунт при необходимости.
// Возвращает новый баланс.
func Credit(ctx context.Context, tx Tx, address account.PublicKey, lamports uint64) (uint64, error) {
	acc, err := tx.Get(ctx, address)
	missing := errors.Is(err, ErrAccountNotFound)
	switch {
	case missing:
		acc = Account{Address: address, Owner: SystemProgram}
	case err != nil:
		return 0, err
	}

	if acc.Lamports, err = AddLamports(acc.Lamports, lamports); err != nil {
		return 0, fmt.Errorf("credit %s: %w", address, err)
	}
	if !missing {
		return acc.Lamports, tx.Put(ctx, acc)
	}

	if err := tx.Create(ctx, acc); err != nil {
		if errors.Is(err, ErrAccountInUse) {
			return 0, fmt.Errorf("%w: %w", errRecipientCreated, err)
		}
		return 0, err
	}
	return acc.Lamports, nil
}

// Atomic store.Atomic, повторенный один раз, если получатель Credit
// появился в параллельной транзакции
func Atomic(ctx context.Context, store Store, fn func(tx Tx) error) error {
	err := store.Atomic(ctx, fn)
	if errors.Is(err, errRecipientCreated) {
		err = store.Atomic(ctx, fn)
	}
	return err
}

// Airdrop начисляет lamports на адрес, создавая системный аккаунт при необходимости
func Airdrop(ctx context.Context, store Store, address account.PublicKey, lamports uint64) (uint64, error) {
	var balance uint64
	err := Atomic(ctx, store, func(tx Tx) error {
		var err error
		balance, err = Credit(ctx, tx, address, lamports)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("airdrop to %s: %w", address, err)
	}
	return balance, nil
}

// Balance возвращает 0 для несуществующего аккаунта
func Balance(ctx context.Context, store Store, address account.PublicKey) (uint64, error) {
	acc, err := store.Get(ctx, address)
	if errors.Is(err, ErrAccountNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return acc.Lamports, nil
}
