package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praveenkumar11901/marketplace-api/models"
)

func TestAddItemCreatesCartAndLine(t *testing.T) {
	resetTables(t)
	shopper := createTestUser(t, models.RoleShopper)
	product := createTestProduct(t, "Widget", 10, 5)

	item, err := AddItem(testDB, shopper.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	require.NotNil(t, item.Product)
	assert.Equal(t, "Widget", item.Product.Title)

	// Cart was created lazily, one per shopper.
	var cart models.Cart
	require.NoError(t, testDB.Where("user_id = ?", shopper.ID).First(&cart).Error)
	assert.Equal(t, cart.ID, item.CartID)

	// Adding is advisory: no stock was reserved.
	assert.Equal(t, 5, productQuantity(t, product.ID))
}

// Adding a then b of the same product is one line of a+b, same as a single
// add of a+b.
func TestAddItemMergesRepeatAdds(t *testing.T) {
	resetTables(t)
	shopper := createTestUser(t, models.RoleShopper)
	product := createTestProduct(t, "Widget", 10, 10)

	first, err := AddItem(testDB, shopper.ID, product.ID, 2)
	require.NoError(t, err)
	second, err := AddItem(testDB, shopper.ID, product.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	var count int64
	require.NoError(t, testDB.Model(&models.CartItem{}).Where("cart_id = ?", first.CartID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddItemMergeExceedingStock(t *testing.T) {
	resetTables(t)
	shopper := createTestUser(t, models.RoleShopper)
	product := createTestProduct(t, "Widget", 10, 5)

	_, err := AddItem(testDB, shopper.ID, product.ID, 3)
	require.NoError(t, err)

	_, err = AddItem(testDB, shopper.ID, product.ID, 3)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// The existing line keeps its old quantity.
	items, err := ListItems(testDB, shopper.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	resetTables(t)
	shopper := createTestUser(t, models.RoleShopper)
	product := createTestProduct(t, "Widget", 10, 5)

	_, err := AddItem(testDB, shopper.ID, "no-such-product", 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = AddItem(testDB, shopper.ID, product.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = AddItem(testDB, shopper.ID, product.ID, 6)
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestUpdateItem(t *testing.T) {
	resetTables(t)
	shopper := createTestUser(t, models.RoleShopper)
	product := createTestProduct(t, "Widget", 10, 5)

	item, err := AddItem(testDB, shopper.ID, product.ID, 2)
	require.NoError(t, err)

	updated, err := UpdateItem(testDB, item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	_, err = UpdateItem(testDB, item.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = UpdateItem(testDB, item.ID, 6)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	_, err = UpdateItem(testDB, "no-such-item", 1)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestUpdateItemStaleProduct(t *testing.T) {
	resetTables(t)
	shopper := createTestUser(t, models.RoleShopper)
	product := createTestProduct(t, "Widget", 10, 5)

	item, err := AddItem(testDB, shopper.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, testDB.Delete(&models.Product{}, "id = ?", product.ID).Error)

	_, err = UpdateItem(testDB, item.ID, 3)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRemoveItemReportsMissingConsistently(t *testing.T) {
	resetTables(t)
	shopper := createTestUser(t, models.RoleShopper)
	product := createTestProduct(t, "Widget", 10, 5)

	item, err := AddItem(testDB, shopper.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, RemoveItem(testDB, item.ID))

	// Removing again is a clean not-found, never corruption.
	assert.ErrorIs(t, RemoveItem(testDB, item.ID), ErrCartItemNotFound)

	items, err := ListItems(testDB, shopper.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListItems(t *testing.T) {
	resetTables(t)
	shopper := createTestUser(t, models.RoleShopper)
	first := createTestProduct(t, "First", 10, 5)
	second := createTestProduct(t, "Second", 20, 5)

	_, err := AddItem(testDB, shopper.ID, first.ID, 1)
	require.NoError(t, err)
	_, err = AddItem(testDB, shopper.ID, second.ID, 2)
	require.NoError(t, err)

	items, err := ListItems(testDB, shopper.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, first.ID, items[0].ProductID)
	assert.Equal(t, second.ID, items[1].ProductID)
}

// The listing reflects the product's current state, not a snapshot taken at
// add time.
func TestListItemsReflectsLiveProduct(t *testing.T) {
	resetTables(t)
	shopper := createTestUser(t, models.RoleShopper)
	product := createTestProduct(t, "Widget", 10, 5)

	_, err := AddItem(testDB, shopper.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, testDB.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("quantity", 1).Error)

	items, err := ListItems(testDB, shopper.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, 1, items[0].Product.Quantity)
}

func TestListItemsStaleProductIsNil(t *testing.T) {
	resetTables(t)
	shopper := createTestUser(t, models.RoleShopper)
	product := createTestProduct(t, "Widget", 10, 5)

	_, err := AddItem(testDB, shopper.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, testDB.Delete(&models.Product{}, "id = ?", product.ID).Error)

	items, err := ListItems(testDB, shopper.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Product)
}

func TestListItemsNoCartYet(t *testing.T) {
	resetTables(t)
	shopper := createTestUser(t, models.RoleShopper)

	items, err := ListItems(testDB, shopper.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
