package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taxcloud-connector/internal/core/cache"
	"taxcloud-connector/internal/features/tax/domain"
)

const (
	transactionKeyPrefix = "tax:transaction:"
	addressKeyPrefix     = "tax:address:"
)

// RedisTransactionRepository implements ports.TransactionRepository on top of
// the cache adaptation. Transactions are stored without expiration.
type RedisTransactionRepository struct {
	cache cache.Cache
}

// NewRedisTransactionRepository creates a new RedisTransactionRepository.
func NewRedisTransactionRepository(c cache.Cache) *RedisTransactionRepository {
	return &RedisTransactionRepository{
		cache: c,
	}
}

// Get retrieves the tax transaction of one order.
// Returns domain.ErrTransactionNotFound when no record exists.
func (r *RedisTransactionRepository) Get(ctx context.Context, orderID string) (*domain.TaxTransaction, error) {
	key := transactionKeyPrefix + orderID
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if err.Error() == fmt.Sprintf("key not found: %s", key) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction from cache: %w", err)
	}

	var tx domain.TaxTransaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}

	return &tx, nil
}

// Save stores a tax transaction.
func (r *RedisTransactionRepository) Save(ctx context.Context, tx *domain.TaxTransaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	if err := r.cache.Set(ctx, transactionKeyPrefix+tx.OrderID, data, 0); err != nil {
		return fmt.Errorf("failed to save transaction to cache: %w", err)
	}

	return nil
}

// RedisAddressCache implements ports.AddressCache. Validated addresses are
// stored per context key so checkout sessions expire while order records
// persist.
type RedisAddressCache struct {
	cache      cache.Cache
	sessionTTL time.Duration
}

// NewRedisAddressCache creates a new RedisAddressCache. sessionTTL bounds
// entries whose context key marks a checkout session; other entries never
// expire.
func NewRedisAddressCache(c cache.Cache, sessionTTL time.Duration) *RedisAddressCache {
	return &RedisAddressCache{
		cache:      c,
		sessionTTL: sessionTTL,
	}
}

// sessionKeyPrefix marks context keys with session lifetime.
const sessionKeyPrefix = "session:"

func addressKey(contextKey, hash string) string {
	return addressKeyPrefix + contextKey + ":" + hash
}

// Get retrieves a previously validated address. The second return value is
// false on a cache miss.
func (r *RedisAddressCache) Get(ctx context.Context, contextKey, hash string) (domain.Address, bool, error) {
	key := addressKey(contextKey, hash)
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if err.Error() == fmt.Sprintf("key not found: %s", key) {
			return domain.Address{}, false, nil
		}
		return domain.Address{}, false, fmt.Errorf("failed to get address from cache: %w", err)
	}

	var address domain.Address
	if err := json.Unmarshal(data, &address); err != nil {
		return domain.Address{}, false, fmt.Errorf("failed to unmarshal address: %w", err)
	}

	return address, true, nil
}

// Put stores a validated address under the content hash of its input.
func (r *RedisAddressCache) Put(ctx context.Context, contextKey, hash string, address domain.Address) error {
	data, err := json.Marshal(address)
	if err != nil {
		return fmt.Errorf("failed to marshal address: %w", err)
	}

	var ttl time.Duration
	if len(contextKey) > len(sessionKeyPrefix) && contextKey[:len(sessionKeyPrefix)] == sessionKeyPrefix {
		ttl = r.sessionTTL
	}

	if err := r.cache.Set(ctx, addressKey(contextKey, hash), data, ttl); err != nil {
		return fmt.Errorf("failed to save address to cache: %w", err)
	}

	return nil
}
