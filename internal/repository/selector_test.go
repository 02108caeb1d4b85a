// internal/repository/selector_test.go
package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/projectgichatbot-max/gitag-backend/internal/models"
)

// stubStore satisfies Store with a name and nothing else; selection tests
// never touch the data methods.
type stubStore struct {
	Store
	name   string
	closed bool
}

func (s *stubStore) Name() string { return s.name }
func (s *stubStore) Close() error {
	s.closed = true
	return nil
}
func (s *stubStore) ListProducts(ctx context.Context, f Filter, p Pagination) ([]models.Product, PageInfo, error) {
	return nil, PageInfo{}, nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestProviderSelectsPrimaryWhenAvailable(t *testing.T) {
	primary := &stubStore{name: "postgres"}
	var secondaryOpened atomic.Int32

	p := NewProvider(
		func(ctx context.Context) (Store, error) { return primary, nil },
		func(ctx context.Context) (Store, error) {
			secondaryOpened.Add(1)
			return &stubStore{name: "firestore"}, nil
		},
		testLogger(),
	)

	s, err := p.Store(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "postgres", s.Name())
	assert.Equal(t, "postgres", p.Active())
	assert.Zero(t, secondaryOpened.Load())
}

func TestProviderFallsBackWhenPrimaryFails(t *testing.T) {
	p := NewProvider(
		func(ctx context.Context) (Store, error) { return nil, errors.New("connection refused") },
		func(ctx context.Context) (Store, error) { return &stubStore{name: "firestore"}, nil },
		testLogger(),
	)

	s, err := p.Store(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "firestore", s.Name())
}

func TestProviderSelectionIsTerminal(t *testing.T) {
	var primaryAttempts atomic.Int32
	p := NewProvider(
		func(ctx context.Context) (Store, error) {
			primaryAttempts.Add(1)
			return nil, errors.New("connection refused")
		},
		func(ctx context.Context) (Store, error) { return &stubStore{name: "firestore"}, nil },
		testLogger(),
	)

	first, err := p.Store(context.Background())
	assert.NoError(t, err)

	// The failed primary is never retried, even if it would now succeed.
	second, err := p.Store(context.Background())
	assert.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int32(1), primaryAttempts.Load())
}

func TestProviderFailureIsTerminal(t *testing.T) {
	boom := errors.New("firestore init failed")
	var secondaryAttempts atomic.Int32
	p := NewProvider(
		nil,
		func(ctx context.Context) (Store, error) {
			secondaryAttempts.Add(1)
			return nil, boom
		},
		testLogger(),
	)

	_, err := p.Store(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = p.Store(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int32(1), secondaryAttempts.Load())
	assert.Empty(t, p.Active())
}

func TestProviderConcurrentFirstCallersShareOneStore(t *testing.T) {
	var opens atomic.Int32
	p := NewProvider(
		func(ctx context.Context) (Store, error) {
			opens.Add(1)
			return &stubStore{name: "postgres"}, nil
		},
		func(ctx context.Context) (Store, error) { return &stubStore{name: "firestore"}, nil },
		testLogger(),
	)

	const callers = 16
	stores := make([]Store, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := p.Store(context.Background())
			assert.NoError(t, err)
			stores[i] = s
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), opens.Load())
	for i := 1; i < callers; i++ {
		assert.Same(t, stores[0], stores[i])
	}
}

func TestProviderCloseReleasesChosenStore(t *testing.T) {
	primary := &stubStore{name: "postgres"}
	p := NewProvider(
		func(ctx context.Context) (Store, error) { return primary, nil },
		func(ctx context.Context) (Store, error) { return &stubStore{name: "firestore"}, nil },
		testLogger(),
	)

	_, err := p.Store(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, p.Close())
	assert.True(t, primary.closed)
}
