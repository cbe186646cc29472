package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/dmitrijs2005/softwareslayer/internal/client/models"
	"github.com/dmitrijs2005/softwareslayer/internal/logging"
)

const persistTimeout = 5 * time.Second

type persistJob struct {
	user    *models.User
	barrier chan struct{}
}

// persister applies session writes in call order on one goroutine.
// Consecutive writes between two barriers collapse into the last one.
type persister struct {
	kv  KeyValueStore
	log logging.Logger

	mu      sync.Mutex
	queue   []persistJob
	stopped bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
}

func newPersister(kv KeyValueStore, log logging.Logger) *persister {
	p := &persister{
		kv:   kv,
		log:  log,
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *persister) enqueue(u *models.User) {
	p.push(persistJob{user: u})
}

func (p *persister) push(j persistJob) bool {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		if j.barrier == nil {
			p.log.Warn(context.Background(), "persistence stopped, session change kept in memory only")
		}
		return false
	}
	p.queue = append(p.queue, j)
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
	return true
}

func (p *persister) flush(ctx context.Context) error {
	barrier := make(chan struct{})
	if !p.push(persistJob{barrier: barrier}) {
		return nil
	}
	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *persister) stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	close(p.quit)
	<-p.done
}

func (p *persister) run() {
	defer close(p.done)

	for {
		select {
		case <-p.wake:
			p.drain()
		case <-p.quit:
			p.drain()
			return
		}
	}
}

func (p *persister) drain() {
	for {
		p.mu.Lock()
		batch := p.queue
		p.queue = nil
		p.mu.Unlock()

		if len(batch) == 0 {
			return
		}

		var pending *persistJob
		for i := range batch {
			j := batch[i]
			if j.barrier != nil {
				if pending != nil {
					p.apply(pending.user)
					pending = nil
				}
				close(j.barrier)
				continue
			}
			pending = &j
		}
		if pending != nil {
			p.apply(pending.user)
		}
	}
}

func (p *persister) apply(u *models.User) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if u == nil {
		if err := p.kv.Delete(ctx, StorageKey); err != nil {
			p.log.Error(ctx, "failed to remove persisted session", "error", err)
			return
		}
		p.log.Debug(ctx, "persisted session removed")
		return
	}

	data, err := json.Marshal(u)
	if err != nil {
		p.log.Error(ctx, "failed to encode session", "error", err)
		return
	}
	if err := p.kv.Set(ctx, StorageKey, data); err != nil {
		p.log.Error(ctx, "failed to persist session", "error", err, "user_id", u.ID)
		return
	}
	p.log.Debug(ctx, "session persisted", "user_id", u.ID)
}
