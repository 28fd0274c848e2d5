package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCart_MalformedBlobFallsBackToEmpty(t *testing.T) {
	for _, blob := range []string{"", "{", "not json", `"just a string"`, "42"} {
		cart := decodeCart("u", []byte(blob))
		assert.NotNil(t, cart, "blob %q", blob)
		assert.Equal(t, "u", cart.UserID)
		assert.Empty(t, cart.Items, "blob %q must read as an empty cart", blob)
	}
}

func TestDecodeCart_ValidBlob(t *testing.T) {
	blob := `{"user_id":"old","items":[{"product_id":"pen","name":"Gel Pen","price":145,"quantity":2}]}`

	cart := decodeCart("u", []byte(blob))

	assert.Equal(t, "u", cart.UserID, "key owner wins over the stored user id")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "pen", cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestDecodeCart_NullItemsBecomesEmptySlice(t *testing.T) {
	cart := decodeCart("u", []byte(`{"items":null}`))

	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestEmptyCart(t *testing.T) {
	cart := emptyCart("u")
	assert.Equal(t, "u", cart.UserID)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}
