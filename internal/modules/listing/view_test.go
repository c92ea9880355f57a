package listing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harinagireddy-katta/DeKart/internal/modules/products"
)

// bodyLoader decodes a fixed listing response body.
func bodyLoader(body string) products.Loader {
	return products.LoaderFunc(func(context.Context) ([]products.Product, error) {
		return products.DecodeListing([]byte(body))
	})
}

func failingLoader(err error) products.Loader {
	return products.LoaderFunc(func(context.Context) ([]products.Product, error) {
		return nil, err
	})
}

func mountAndWait(t *testing.T, v *View) products.Result {
	t.Helper()
	v.Mount(t.Context())
	t.Cleanup(v.Unmount)
	return v.Wait(t.Context())
}

func TestView_MissingFieldRendersNoCards(t *testing.T) {
	v := New(bodyLoader(`{}`), nil)

	res := mountAndWait(t, v)

	require.True(t, res.OK())
	assert.Equal(t, Loaded, v.State())
	assert.Empty(t, v.Cards())
}

func TestView_MapsRecordToCard(t *testing.T) {
	v := New(bodyLoader(`{"prods":[{"img":"a.png","des":"D","uname":"U","price":1.5}]}`), nil)

	mountAndWait(t, v)

	cards := v.Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, 0, cards[0].Index)
	assert.Equal(t, "a.png", cards[0].ImageURL)
	assert.Equal(t, "D", cards[0].Description)
	assert.Equal(t, "U", cards[0].OwnerName)
	assert.Equal(t, "1.5 ETH", cards[0].PriceLabel)
}

func TestView_SelectForwardsOriginalRecord(t *testing.T) {
	body := `{"prods":[{"img":"a.png","des":"first","uname":"U","price":1},{"img":"b.png","des":"second","uname":"V","price":2,"tokenId":42}]}`

	var got []products.Product
	v := New(bodyLoader(body), func(p products.Product) { got = append(got, p) })

	mountAndWait(t, v)
	require.NoError(t, v.Select(1))

	require.Len(t, got, 1)
	assert.Equal(t, v.Items()[1], got[0])
	assert.JSONEq(t, `{"img":"b.png","des":"second","uname":"V","price":2,"tokenId":42}`, string(got[0].Raw()))
}

func TestView_SelectOutOfRange(t *testing.T) {
	called := false
	v := New(bodyLoader(`{"prods":[{"des":"only"}]}`), func(products.Product) { called = true })

	mountAndWait(t, v)

	require.ErrorIs(t, v.Select(1), ErrNoSuchCard)
	require.ErrorIs(t, v.Select(-1), ErrNoSuchCard)
	assert.False(t, called)
}

func TestView_FailedLoadKeepsEmptyState(t *testing.T) {
	boom := errors.New("network down")
	var logs bytes.Buffer
	v := New(failingLoader(boom), nil, WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))

	require.NotPanics(t, func() {
		res := mountAndWait(t, v)
		assert.ErrorIs(t, res.Err, boom)
		assert.Empty(t, res.Products)
	})

	assert.Equal(t, Failed, v.State())
	assert.Empty(t, v.Items())
	assert.Empty(t, v.Cards())

	var entry struct {
		Level string `json:"level"`
		Msg   string `json:"msg"`
		Err   string `json:"err"`
	}
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry), "want exactly one log line, got %q", logs.String())
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "listing_load_failed", entry.Msg)
	assert.Equal(t, "network down", entry.Err)
}

func TestView_CardsAreMemoized(t *testing.T) {
	v := New(bodyLoader(`{"prods":[{"des":"a"},{"des":"b"}]}`), func(products.Product) {})

	mountAndWait(t, v)

	first := v.Cards()
	second := v.Cards()
	require.Len(t, first, 2)
	assert.Same(t, &first[0], &second[0], "unchanged inputs must reuse derived cards")

	var picked string
	v.SetOnSelect(func(p products.Product) { picked = p.Description })
	third := v.Cards()
	assert.NotSame(t, &first[0], &third[0], "new callback must recompute cards")

	third[1].Activate()
	assert.Equal(t, "b", picked)
}

func TestView_MountLoadsOnce(t *testing.T) {
	var calls atomic.Int32
	loader := products.LoaderFunc(func(context.Context) ([]products.Product, error) {
		calls.Add(1)
		return []products.Product{{Description: "x"}}, nil
	})
	v := New(loader, nil)

	v.Mount(t.Context())
	v.Mount(t.Context())
	t.Cleanup(v.Unmount)
	v.Wait(t.Context())
	v.Mount(t.Context())

	assert.Equal(t, int32(1), calls.Load())
	assert.Len(t, v.Cards(), 1)
}

func TestView_UnmountDiscardsLateResult(t *testing.T) {
	started := make(chan struct{})
	loader := products.LoaderFunc(func(ctx context.Context) ([]products.Product, error) {
		close(started)
		<-ctx.Done()
		// Ignore cancellation and answer anyway.
		return []products.Product{{Description: "stale"}}, nil
	})
	v := New(loader, nil)

	v.Mount(t.Context())
	<-started
	v.Unmount()

	res := v.Wait(t.Context())
	assert.ErrorIs(t, res.Err, ErrDiscarded)
	assert.Equal(t, Loading, v.State())
	assert.Empty(t, v.Items())
	assert.Empty(t, v.Cards())
}

func TestView_ParentContextCancelDiscards(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	loader := products.LoaderFunc(func(ctx context.Context) ([]products.Product, error) {
		<-ctx.Done()
		return []products.Product{{Description: "stale"}}, nil
	})
	v := New(loader, nil)

	v.Mount(ctx)
	t.Cleanup(v.Unmount)
	cancel()

	res := v.Wait(t.Context())
	assert.ErrorIs(t, res.Err, ErrDiscarded)
	assert.Empty(t, v.Items())
}

func TestView_WaitHonorsContext(t *testing.T) {
	release := make(chan struct{})
	loader := products.LoaderFunc(func(ctx context.Context) ([]products.Product, error) {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil, ctx.Err()
	})
	v := New(loader, nil)
	v.Mount(t.Context())
	defer v.Unmount()
	defer close(release)

	ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
	defer cancel()

	res := v.Wait(ctx)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	assert.Equal(t, Loading, v.State())
}

func TestView_WaitBeforeMount(t *testing.T) {
	v := New(bodyLoader(`{}`), nil)

	res := v.Wait(t.Context())
	assert.ErrorIs(t, res.Err, ErrNotMounted)
	assert.Equal(t, Idle, v.State())

	v.Unmount()
	v.Mount(t.Context())
	assert.Equal(t, Idle, v.State(), "unmounted view never loads")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", State(42).String())
}
