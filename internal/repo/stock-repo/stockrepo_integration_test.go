package stockrepo

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbaylon/stashbot/internal/pg"
)

// newTestDB connects to the database named by TEST_DATABASE_URI and resets
// the schema. Skipped when the variable is unset so the suite stays runnable
// without Postgres.
func newTestDB(t *testing.T) (*Repository, *pgxpool.Pool) {
	dsn := os.Getenv("TEST_DATABASE_URI")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URI not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.RunMigrations(pool))
	_, err = pool.Exec(ctx, `
		TRUNCATE users, categories, products, variants, purchases, stock_items, topups
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)

	return New(pg.New(pool)), pool
}

func seedVariantWithStock(t *testing.T, pool *pgxpool.Pool, payloads []string) int {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx, `INSERT INTO users (id, balance) VALUES (42, 100000)`)
	require.NoError(t, err)

	var productID int
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO products (name) VALUES ('VPN Premium') RETURNING id`).Scan(&productID))

	var variantID int
	require.NoError(t, pool.QueryRow(ctx,
		`INSERT INTO variants (product_id, name, price) VALUES ($1, '1-month plan', 150) RETURNING id`,
		productID).Scan(&variantID))

	for _, p := range payloads {
		_, err := pool.Exec(ctx,
			`INSERT INTO stock_items (variant_id, payload) VALUES ($1, $2)`, variantID, p)
		require.NoError(t, err)
	}
	return variantID
}

func seedPurchase(t *testing.T, pool *pgxpool.Pool, token string, variantID, qty int) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO purchases (token, user_id, variant_id, qty, unit_price, total_price)
		VALUES ($1, 42, $2, $3, 150, $4)
	`, token, variantID, qty, int64(150*qty))
	require.NoError(t, err)
}

// Concurrent buyers racing for the last item: exactly one claim wins, the
// others come back empty, and the sold row carries the winner's token.
func TestClaim_ConcurrentBuyersSingleItem(t *testing.T) {
	repo, pool := newTestDB(t)
	ctx := context.Background()

	variantID := seedVariantWithStock(t, pool, []string{"acc1:pw1"})

	const buyers = 8
	tokens := make([]string, buyers)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("tok-%d", i)
		seedPurchase(t, pool, tokens[i], variantID, 1)
	}

	start := make(chan struct{})
	results := make([][]string, buyers)
	errs := make([]error, buyers)

	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = repo.Claim(ctx, variantID, 1, tokens[i], time.Now())
		}(i)
	}
	close(start)
	wg.Wait()

	winners := 0
	var winnerToken string
	for i := 0; i < buyers; i++ {
		require.NoError(t, errs[i])
		switch len(results[i]) {
		case 0:
		case 1:
			winners++
			winnerToken = tokens[i]
			assert.Equal(t, "acc1:pw1", results[i][0])
		default:
			t.Fatalf("claim returned %d payloads for a single item", len(results[i]))
		}
	}
	assert.Equal(t, 1, winners)

	var sold bool
	var soldToken string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT is_sold, purchase_token FROM stock_items WHERE variant_id = $1`,
		variantID).Scan(&sold, &soldToken))
	assert.True(t, sold)
	assert.Equal(t, winnerToken, soldToken)

	unsold, err := repo.CountUnsold(ctx, variantID)
	require.NoError(t, err)
	assert.Zero(t, unsold)
}

// A claim for more items than the pool holds must touch nothing at all.
func TestClaim_ShortPoolTouchesNothing(t *testing.T) {
	repo, pool := newTestDB(t)
	ctx := context.Background()

	variantID := seedVariantWithStock(t, pool, []string{"acc1:pw1"})
	seedPurchase(t, pool, "tok-short", variantID, 2)

	payloads, err := repo.Claim(ctx, variantID, 2, "tok-short", time.Now())
	require.NoError(t, err)
	assert.Empty(t, payloads)

	unsold, err := repo.CountUnsold(ctx, variantID)
	require.NoError(t, err)
	assert.Equal(t, 1, unsold)
}

// While one transaction holds the locked row, a competing claim skips it
// instead of blocking, and the short pick claims nothing.
func TestClaim_LockedRowIsSkipped(t *testing.T) {
	repo, pool := newTestDB(t)
	ctx := context.Background()

	variantID := seedVariantWithStock(t, pool, []string{"acc1:pw1"})
	seedPurchase(t, pool, "tok-holder", variantID, 1)
	seedPurchase(t, pool, "tok-late", variantID, 1)

	txManager := pg.NewTXManager(pool)

	holderClaimed := make(chan struct{})
	release := make(chan struct{})

	var holderPayloads []string
	var holderErr error

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		holderErr = txManager.Begin(ctx, func(ctx context.Context) error {
			payloads, err := repo.Claim(ctx, variantID, 1, "tok-holder", time.Now())
			holderPayloads = payloads
			close(holderClaimed)
			if err != nil {
				return err
			}
			<-release
			return nil
		})
	}()

	<-holderClaimed
	payloads, err := repo.Claim(ctx, variantID, 1, "tok-late", time.Now())
	require.NoError(t, err)
	assert.Empty(t, payloads)

	close(release)
	wg.Wait()

	require.NoError(t, holderErr)
	require.Len(t, holderPayloads, 1)

	var soldToken string
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT purchase_token FROM stock_items WHERE variant_id = $1 AND is_sold`,
		variantID).Scan(&soldToken))
	assert.Equal(t, "tok-holder", soldToken)
}
