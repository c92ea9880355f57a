package products

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		want := []Product{{Description: "D"}}
		res := Fetch(t.Context(), LoaderFunc(func(context.Context) ([]Product, error) { return want, nil }))

		assert.True(t, res.OK())
		assert.Equal(t, want, res.Products)
	})

	t.Run("nil collection becomes empty", func(t *testing.T) {
		res := Fetch(t.Context(), LoaderFunc(func(context.Context) ([]Product, error) { return nil, nil }))

		assert.True(t, res.OK())
		assert.NotNil(t, res.Products)
		assert.Empty(t, res.Products)
	})

	t.Run("failure", func(t *testing.T) {
		boom := errors.New("boom")
		res := Fetch(t.Context(), LoaderFunc(func(context.Context) ([]Product, error) { return []Product{{}}, boom }))

		assert.False(t, res.OK())
		assert.ErrorIs(t, res.Err, boom)
		assert.Empty(t, res.Products)
	})
}

func TestProductJSON(t *testing.T) {
	t.Run("preserves unknown fields", func(t *testing.T) {
		in := `{"img":"a.png","des":"D","uname":"U","price":2,"owner":"0xabc"}`

		var p Product
		require.NoError(t, json.Unmarshal([]byte(in), &p))

		out, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, in, string(out))
	})

	t.Run("built in code", func(t *testing.T) {
		out, err := json.Marshal(Product{Image: "i", Description: "d", OwnerName: "o", Price: "0.25"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"img":"i","des":"d","uname":"o","price":0.25}`, string(out))

		out, err = json.Marshal(Product{Price: "free"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"img":"","des":"","uname":"","price":"free"}`, string(out))
	})

	t.Run("changed after decoding", func(t *testing.T) {
		var p Product
		require.NoError(t, json.Unmarshal([]byte(`{"img":"a.png","des":"D","uname":"U","price":2,"owner":"0xabc"}`), &p))
		require.NotNil(t, p.Raw())

		p.Price = "3"

		assert.Nil(t, p.Raw())
		out, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"img":"a.png","des":"D","uname":"U","price":3}`, string(out))
	})
}

func TestDecodeListing_SyntaxError(t *testing.T) {
	_, err := DecodeListing([]byte(`{"prods":`))
	require.Error(t, err)
}
