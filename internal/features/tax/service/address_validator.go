package service

import (
	"context"

	"taxcloud-connector/internal/core/logger"
	"taxcloud-connector/internal/features/tax/domain"
	"taxcloud-connector/internal/features/tax/ports"

	"go.uber.org/zap"
)

// AddressValidator normalizes destination addresses through the provider.
// Validation is best effort: on any provider failure the original address is
// used unvalidated so checkout never blocks on address cleanup.
type AddressValidator struct {
	// provider performs the address verification calls.
	provider ports.TaxProvider
	// cache stores validated addresses keyed by a content hash of the input.
	cache ports.AddressCache
}

// NewAddressValidator creates a new instance of AddressValidator.
func NewAddressValidator(provider ports.TaxProvider, cache ports.AddressCache) *AddressValidator {
	return &AddressValidator{
		provider: provider,
		cache:    cache,
	}
}

// Validate returns the normalized form of an address. The contextKey scopes
// cache entries; session-scoped keys expire while order-scoped keys persist.
// Non-US addresses are returned unchanged since the provider only serves US
// destinations.
func (v *AddressValidator) Validate(ctx context.Context, contextKey string, address domain.Address) domain.Address {
	if !address.IsUS() {
		return address
	}

	hash := address.Hash()

	cached, found, err := v.cache.Get(ctx, contextKey, hash)
	if err != nil {
		logger.Get().Warn("Address cache lookup failed",
			zap.String("context_key", contextKey),
			zap.Error(err))
	} else if found {
		return cached
	}

	// The provider rejects a country field; it is stripped here and merged
	// back onto the verified result.
	country := address.Country
	address.Country = ""

	verified, err := v.provider.VerifyAddress(ctx, address)
	if err != nil {
		logger.Get().Warn("Address verification failed, using address as entered",
			zap.String("context_key", contextKey),
			zap.Error(err))
		address.Country = country
		return address
	}

	verified.Country = country

	if err := v.cache.Put(ctx, contextKey, hash, verified); err != nil {
		logger.Get().Warn("Failed to cache validated address",
			zap.String("context_key", contextKey),
			zap.Error(err))
	}

	return verified
}
