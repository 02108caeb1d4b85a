// internal/repository/selector.go
package repository

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// OpenFunc constructs a driver. The primary func may fail; the secondary is
// expected to always come up, degrading to placeholder data on its own when
// credentials are missing.
type OpenFunc func(ctx context.Context) (Store, error)

// Provider implements the backend selection protocol: on first use it tries
// the primary driver once, falls back to the secondary on any failure, and
// then serves the chosen driver for the remainder of the process lifetime.
// There is no re-evaluation or failback; a restart is required to re-attempt
// primary selection. The mutex makes sure concurrent first-callers cannot
// race to open duplicate connections.
type Provider struct {
	mu        sync.Mutex
	store     Store
	err       error
	decided   bool
	primary   OpenFunc
	secondary OpenFunc
	logger    *logrus.Logger
}

func NewProvider(primary, secondary OpenFunc, logger *logrus.Logger) *Provider {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Provider{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

// Store returns the active driver, selecting it on the first call. The
// outcome, success or failure, is terminal for the process lifetime.
func (p *Provider) Store(ctx context.Context) (Store, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.decided {
		return p.store, p.err
	}
	p.decided = true

	if p.primary != nil {
		s, err := p.primary(ctx)
		if err == nil {
			p.logger.WithField("backend", s.Name()).Info("primary store selected")
			p.store = s
			return s, nil
		}
		p.logger.WithError(err).Warn("primary store unavailable, falling back to secondary")
	} else {
		p.logger.Warn("primary store not configured, falling back to secondary")
	}

	s, err := p.secondary(ctx)
	if err != nil {
		p.logger.WithError(err).Error("secondary store failed to initialize")
		p.err = err
		return nil, err
	}
	p.logger.WithField("backend", s.Name()).Info("secondary store selected")
	p.store = s
	return s, nil
}

// Active reports the backend name once selection has happened, for the
// health endpoint. Empty until the first Store call.
func (p *Provider) Active() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.store == nil {
		return ""
	}
	return p.store.Name()
}

// Close releases the chosen driver, if any.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}
