package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListInvalidConnStringReturnsError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := List(ctx, "postgres://bad:5432/db?connect_timeout=1")
	assert.Error(t, err)
}

func TestDeleteInvalidConnStringReturnsError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Delete(ctx, "postgres://bad:5432/db?connect_timeout=1", "some_slot")
	assert.Error(t, err)
}
