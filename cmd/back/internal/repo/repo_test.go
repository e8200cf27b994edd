package repo

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetchain/cmd/back/internal/app"
	"tweetchain/cmd/back/internal/ledger"
	"tweetchain/cmd/back/internal/program"
	"tweetchain/internal/account"
)

func TestListQuery(t *testing.T) {
	owner := account.PublicKey{1}
	query, args, err := listQuery(owner, []ledger.Filter{
		{Offset: 0, Values: [][]byte{[]byte("12345678")}},
		{Offset: 8, Values: [][]byte{make([]byte, 32), make([]byte, 32)}},
	})
	require.NoError(t, err)

	assert.Equal(t, `select address, owner, lamports, data from accounts where owner = $1`+
		` and substring(data from $2 for $3) = ANY($4)`+
		` and substring(data from $5 for $6) = ANY($7) order by address`, query)
	require.Len(t, args, 7)
	assert.Equal(t, owner[:], args[0])
	assert.Equal(t, 1, args[1])
	assert.Equal(t, 8, args[2])
	assert.Equal(t, 9, args[4])
	assert.Equal(t, 32, args[5])
	assert.IsType(t, pq.ByteaArray{}, args[6])
}

func TestListQueryInvalidFilter(t *testing.T) {
	_, _, err := listQuery(account.PublicKey{}, []ledger.Filter{{Offset: 0}})
	assert.ErrorIs(t, err, ledger.ErrFilterValueLength)
}

// Тесты с базой запускаются только при заданном TWEETCHAIN_TEST_DSN
func openTestDB(t *testing.T) *Repository {
	t.Helper()
	dsn := os.Getenv("TWEETCHAIN_TEST_DSN")
	if dsn == "" {
		t.Skip("TWEETCHAIN_TEST_DSN is not set")
	}

	migrator, err := migrate.New("file://../../../../migrations", dsn)
	require.NoError(t, err)
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		require.NoError(t, err)
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db)
}

func newKey(t *testing.T) account.PublicKey {
	t.Helper()
	kp, err := account.NewKeypair()
	require.NoError(t, err)
	return kp.PublicKey()
}

func TestRepositoryAtomic(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	addr := newKey(t)

	_, err := ledger.Airdrop(ctx, repo, addr, 500)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = repo.Atomic(ctx, func(tx ledger.Tx) error {
		require.NoError(t, tx.Delete(ctx, addr))
		return boom
	})
	require.ErrorIs(t, err, boom)

	acc, err := repo.Get(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(500), acc.Lamports)
	assert.Equal(t, ledger.SystemProgram, acc.Owner)

	require.NoError(t, repo.Atomic(ctx, func(tx ledger.Tx) error {
		return tx.Delete(ctx, addr)
	}))
	_, err = repo.Get(ctx, addr)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestRepositoryList(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	program := newKey(t)

	a, b := newKey(t), newKey(t)
	require.NoError(t, repo.Atomic(ctx, func(tx ledger.Tx) error {
		if err := tx.Put(ctx, ledger.Account{Address: a, Owner: program, Data: []byte("aaXX")}); err != nil {
			return err
		}
		return tx.Put(ctx, ledger.Account{Address: b, Owner: program, Data: []byte("bbYY")})
	}))

	got, err := repo.List(ctx, program, ledger.Filter{Offset: 2, Values: [][]byte{[]byte("XX")}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a, got[0].Address)
	assert.Equal(t, []byte("aaXX"), got[0].Data)
}

func TestRepositoryConcurrentCreate(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	addr := newKey(t)

	var (
		wg      sync.WaitGroup
		errs    = make([]error, 2)
		created = make(chan struct{})
		release = make(chan struct{})
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = repo.Atomic(ctx, func(tx ledger.Tx) error {
			if err := tx.Create(ctx, ledger.Account{Address: addr, Lamports: 1}); err != nil {
				return err
			}
			close(created)
			<-release
			return nil
		})
	}()
	go func() {
		defer wg.Done()
		<-created
		// вставка ждет коммита первой транзакции
		time.AfterFunc(100*time.Millisecond, func() { close(release) })
		errs[1] = repo.Atomic(ctx, func(tx ledger.Tx) error {
			return tx.Create(ctx, ledger.Account{Address: addr, Lamports: 2})
		})
	}()
	wg.Wait()

	require.NoError(t, errs[0])
	require.ErrorIs(t, errs[1], ledger.ErrAccountInUse)

	acc, err := repo.Get(ctx, addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), acc.Lamports)
}

func TestRepositoryCreateOverflow(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()
	addr := newKey(t)

	err := repo.Atomic(ctx, func(tx ledger.Tx) error {
		return tx.Create(ctx, ledger.Account{Address: addr, Lamports: ledger.MaxLamports + 1})
	})
	require.ErrorIs(t, err, ledger.ErrLamportsOverflow)

	_, err = ledger.Airdrop(ctx, repo, addr, ledger.MaxLamports)
	require.NoError(t, err)
	_, err = ledger.Airdrop(ctx, repo, addr, 1)
	require.ErrorIs(t, err, ledger.ErrLamportsOverflow)
}

func newProgram(t *testing.T) (*program.Program, *Repository, account.PublicKey) {
	t.Helper()
	repo := openTestDB(t)
	author := newKey(t)
	_, err := ledger.Airdrop(context.Background(), repo, author, 1_000_000_000)
	require.NoError(t, err)
	return program.New(newKey(t), repo, ledger.DefaultRent()), repo, author
}

func TestProgramSendTweetOverExistingAddress(t *testing.T) {
	p, repo, author := newProgram(t)
	ctx := context.Background()
	tweet := newKey(t)
	accs := program.Accounts{Tweet: tweet, Author: author, Signers: program.NewSigners(tweet, author)}

	_, err := p.SendTweet(ctx, accs, "solana", "gm")
	require.NoError(t, err)
	before, err := ledger.Balance(ctx, repo, author)
	require.NoError(t, err)

	_, err = p.SendTweet(ctx, accs, "anchor", "overwrite")
	require.ErrorIs(t, err, ledger.ErrAccountInUse)

	got, err := p.GetTweet(ctx, tweet)
	require.NoError(t, err)
	assert.Equal(t, "gm", got.Tweet.Content)
	after, err := ledger.Balance(ctx, repo, author)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestProgramFailedSendKeepsBalance(t *testing.T) {
	p, repo, author := newProgram(t)
	ctx := context.Background()
	tweet := newKey(t)

	_, err := p.SendTweet(ctx, program.Accounts{
		Tweet:   tweet,
		Author:  author,
		Signers: program.NewSigners(tweet, author),
	}, strings.Repeat("x", 51), "gm")
	require.ErrorIs(t, err, app.ErrTopicTooLong)

	balance, err := ledger.Balance(ctx, repo, author)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000_000), balance)
	_, err = repo.Get(ctx, tweet)
	assert.ErrorIs(t, err, ledger.ErrAccountNotFound)
}

func TestProgramConcurrentSendToOneAddress(t *testing.T) {
	p, repo, author := newProgram(t)
	ctx := context.Background()
	tweet := newKey(t)
	accs := program.Accounts{Tweet: tweet, Author: author, Signers: program.NewSigners(tweet, author)}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, content := range []string{"first", "second"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = p.SendTweet(ctx, accs, "", content)
		}()
	}
	wg.Wait()

	var failed int
	for _, err := range errs {
		if err != nil {
			require.ErrorIs(t, err, ledger.ErrAccountInUse)
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	deposit := ledger.DefaultRent().MinimumBalance(app.TweetLen)
	balance, err := ledger.Balance(ctx, repo, author)
	require.NoError(t, err)
	assert.Equal(t, 1_000_000_000-deposit, balance)
}
