package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pushkarbw/sample-e-com-sub003/errs"
)

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{errs.Validation("bad input"), http.StatusBadRequest},
		{errs.InsufficientStock("Widget"), http.StatusBadRequest},
		{errs.EmptyCart(), http.StatusBadRequest},
		{errs.InvalidState("already cancelled"), http.StatusBadRequest},
		{errs.NotFound("product"), http.StatusNotFound},
		{errs.Unauthorized("missing header"), http.StatusUnauthorized},
		{errs.Forbidden("bad token"), http.StatusForbidden},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, errs.HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestWrappedErrorsStillMap(t *testing.T) {
	wrapped := fmt.Errorf("checkout: %w", errs.InsufficientStock("Widget"))
	assert.Equal(t, http.StatusBadRequest, errs.HTTPStatus(wrapped))

	var stock *errs.InsufficientStockError
	assert.True(t, errors.As(wrapped, &stock))
	assert.Equal(t, "Widget", stock.ProductName)
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "product not found", errs.NotFound("product").Error())
	assert.Equal(t, "insufficient stock for product: Widget", errs.InsufficientStock("Widget").Error())
	assert.Equal(t, "cart is empty", errs.EmptyCart().Error())
}
