package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect_MalformedURL(t *testing.T) {
	database, err := Connect(context.Background(), "not a connection string")
	assert.Error(t, err)
	assert.Nil(t, database)
}

func TestClose_NilPoolIsSafe(t *testing.T) {
	database := &DB{}
	assert.NotPanics(t, func() { database.Close() })
}
