package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAvailable(t *testing.T) {
	resetTables(t)
	product := createTestProduct(t, "Widget", 10, 7)

	qty, err := GetAvailable(testDB, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, qty)

	_, err = GetAvailable(testDB, "no-such-product")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestTryReserve(t *testing.T) {
	resetTables(t)
	product := createTestProduct(t, "Widget", 10, 5)

	remaining, err := TryReserve(testDB, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
	assert.Equal(t, 2, productQuantity(t, product.ID))
}

func TestTryReserveInsufficientStock(t *testing.T) {
	resetTables(t)
	product := createTestProduct(t, "Widget", 10, 2)

	_, err := TryReserve(testDB, product.ID, 3)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Stock untouched on failure.
	assert.Equal(t, 2, productQuantity(t, product.ID))
}

func TestTryReserveUnknownProduct(t *testing.T) {
	resetTables(t)

	_, err := TryReserve(testDB, "no-such-product", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestTryReserveInvalidQuantity(t *testing.T) {
	resetTables(t)
	product := createTestProduct(t, "Widget", 10, 5)

	_, err := TryReserve(testDB, product.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = TryReserve(testDB, product.ID, -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestTryReserveExactRemainingStock(t *testing.T) {
	resetTables(t)
	product := createTestProduct(t, "Widget", 10, 4)

	remaining, err := TryReserve(testDB, product.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	_, err = TryReserve(testDB, product.ID, 1)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

// Stock 5, 20 concurrent single-unit reservations: exactly 5 succeed and the
// quantity never goes negative.
func TestTryReserveConcurrent(t *testing.T) {
	resetTables(t)
	product := createTestProduct(t, "Widget", 10, 5)

	const attempts = 20
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := TryReserve(testDB, product.ID, 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, ErrInsufficientStock):
			insufficient++
		}
	}

	assert.Equal(t, 5, ok)
	assert.Equal(t, attempts-5, insufficient)
	assert.Equal(t, 0, productQuantity(t, product.ID))
}
