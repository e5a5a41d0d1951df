package routes_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmart/storefront/internal/routes"
)

func TestPageURL(t *testing.T) {
	assert.Equal(t, "/home", routes.PageURL(routes.Home))
	assert.Equal(t, "/search", routes.PageURL(routes.Search))
	assert.Equal(t, "/orders", routes.PageURL(routes.Orders))
	assert.Equal(t, "/wishlist", routes.PageURL(routes.Wishlist))
	assert.Equal(t, "/cart", routes.PageURL(routes.Cart))
	assert.Equal(t, "/order-history", routes.PageURL("Order History"))
}

func TestSearchDestination(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   string
		wantOK bool
	}{
		{"empty", "", "", false},
		{"single space", " ", "", false},
		{"whitespace only", " \t\n ", "", false},
		{"two words", "wireless mouse", "/search?q=wireless%20mouse", true},
		{"untrimmed text is encoded as typed", " usb ", "/search?q=%20usb%20", true},
		{"reserved characters", "a&b=c", "/search?q=a%26b%3Dc", true},
		{"unicode", "café", "/search?q=caf%C3%A9", true},
		{"marks left as typed", "it's (new)!*", "/search?q=it's%20(new)!*", true},
		{"tilde", "~usb-c_hub.v2", "/search?q=~usb-c_hub.v2", true},
		{"plus and slash", "c++/go", "/search?q=c%2B%2B%2Fgo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := routes.SearchDestination(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchURL_RoundTrip(t *testing.T) {
	u, err := url.Parse(routes.SearchURL("50% off + free shipping"))
	require.NoError(t, err)

	assert.Equal(t, "/search", u.Path)
	assert.Equal(t, "50% off + free shipping", u.Query().Get(routes.SearchParam))
}

func TestEncodeComponent(t *testing.T) {
	assert.Equal(t, "", routes.EncodeComponent(""))
	assert.Equal(t, "A-Za-z0-9-_.!~*'()", routes.EncodeComponent("A-Za-z0-9-_.!~*'()"))
	assert.Equal(t, "%23%24%25%26%2B%2C%2F%3A%3B%3D%3F%40", routes.EncodeComponent("#$%&+,/:;=?@"))
	assert.Equal(t, "%E2%82%AC5", routes.EncodeComponent("€5"))
}
