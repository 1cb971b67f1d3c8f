package pair

import (
	"testing"

	"tradingpairs/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateCreate(t *testing.T) {
	validator := NewValidator()

	require.Equal(t, ErrLabelRequired, validator.ValidateCreate(domain.CreatePair{BaseCurrency: "ETH", QuoteCurrency: "USDT"}))
	require.Equal(t, ErrBaseRequired, validator.ValidateCreate(domain.CreatePair{Label: "ETH/USDT", QuoteCurrency: "USDT"}))
	require.Equal(t, ErrQuoteRequired, validator.ValidateCreate(domain.CreatePair{Label: "ETH/USDT", BaseCurrency: "ETH"}))
	require.NoError(t, validator.ValidateCreate(domain.CreatePair{Label: "ETH/USDT", BaseCurrency: "ETH", QuoteCurrency: "USDT"}))
}

func TestValidator_ValidatePatch_Empty(t *testing.T) {
	validator := NewValidator()

	require.Equal(t, ErrNothingToUpdate, validator.ValidatePatch(domain.Patch{}))
}

func TestValidator_ValidatePatch_BlankValues(t *testing.T) {
	validator := NewValidator()
	blank := ""

	require.Equal(t, ErrLabelRequired, validator.ValidatePatch(domain.Patch{Label: &blank}))
	require.Equal(t, ErrBaseRequired, validator.ValidatePatch(domain.Patch{BaseCurrency: &blank}))
	require.Equal(t, ErrQuoteRequired, validator.ValidatePatch(domain.Patch{QuoteCurrency: &blank}))
}

func TestValidator_ValidatePatch_SingleField(t *testing.T) {
	validator := NewValidator()
	active := false

	require.NoError(t, validator.ValidatePatch(domain.Patch{IsActive: &active}))
}

func TestValidator_ValidateFilters(t *testing.T) {
	validator := NewValidator()
	negative := -1
	ok := 25

	require.Equal(t, ErrNegativeLimit, validator.ValidateFilters(domain.Filters{Limit: &negative}))
	require.Equal(t, ErrNegativeOffset, validator.ValidateFilters(domain.Filters{Offset: &negative}))
	require.NoError(t, validator.ValidateFilters(domain.Filters{Limit: &ok, Offset: &ok}))
	require.NoError(t, validator.ValidateFilters(domain.Filters{}))
}

func TestValidator_ValidateBulkUpdate(t *testing.T) {
	validator := NewValidator()

	require.Equal(t, ErrNoUpdatesInBatch, validator.ValidateBulkUpdate(nil))
	require.Equal(t, ErrLabelRequired, validator.ValidateBulkUpdate([]domain.PriceUpdate{
		{Price: decimal.RequireFromString("1")},
	}))
	require.NoError(t, validator.ValidateBulkUpdate([]domain.PriceUpdate{
		{Label: "ETH/USDT", Price: decimal.RequireFromString("3500")},
	}))
}
