package jobs

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/feldges/data-extractor/internal/extract"
	"github.com/feldges/data-extractor/internal/store"
)

// Extractor is the engine contract the manager dispatches to.
type Extractor interface {
	Extract(ctx context.Context, companyID string) error
}

// Manager runs extraction jobs off the submitting caller's thread and
// answers status queries at any time. Completion is derived from snapshot
// existence, never tracked separately, so job bookkeeping can never diverge
// from the persisted result. Failures are recorded explicitly so a crashed
// job is distinguishable from one still running.
type Manager struct {
	engine    Extractor
	snapshots store.Store
	docs      *store.DocumentStore
	sem       *semaphore.Weighted

	mu       sync.RWMutex
	inflight map[string]struct{}
	failures map[string]string // company ID -> error kind

	wg sync.WaitGroup
}

// NewManager creates a job manager. maxWorkers bounds the number of
// concurrent extraction calls; values below 1 are treated as 1.
func NewManager(engine Extractor, snapshots store.Store, docs *store.DocumentStore, maxWorkers int) *Manager {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Manager{
		engine:    engine,
		snapshots: snapshots,
		docs:      docs,
		sem:       semaphore.NewWeighted(int64(maxWorkers)),
		inflight:  make(map[string]struct{}),
		failures:  make(map[string]string),
	}
}

// NewCompanyID mints a fresh globally-unique identifier: a 128-bit random
// value rendered as 32 hex characters without separators.
func NewCompanyID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// Submit accepts a PDF, relocates it into durable document storage under a
// fresh identifier and dispatches extraction in the background. It returns
// the identifier immediately; callers poll Status until the job settles.
// Unreadable input is rejected synchronously and no job is created.
func (m *Manager) Submit(ctx context.Context, pdf []byte) (string, error) {
	if len(pdf) == 0 {
		return "", &extract.InvalidDocumentError{Reason: "empty upload"}
	}
	if !extract.IsPDF(pdf) {
		return "", &extract.InvalidDocumentError{Reason: "not a PDF byte stream"}
	}

	id := NewCompanyID()
	if err := m.docs.Save(id, pdf); err != nil {
		return "", fmt.Errorf("failed to store document: %w", err)
	}

	m.mu.Lock()
	m.inflight[id] = struct{}{}
	m.mu.Unlock()

	m.wg.Add(1)
	go m.run(id)

	log.Printf("Extraction job submitted: %s", id)
	return id, nil
}

// run executes one extraction job on a background worker. The job is bound
// to the manager's lifetime, not the submitting request's context.
func (m *Manager) run(id string) {
	defer m.wg.Done()

	ctx := context.Background()
	if err := m.sem.Acquire(ctx, 1); err != nil {
		m.recordFailure(id, extract.KindTransport)
		return
	}
	defer m.sem.Release(1)

	err := m.engine.Extract(ctx, id)

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inflight, id)
	if err != nil {
		kind := extract.ErrorKind(err)
		if kind == "" {
			kind = extract.KindTransport
		}
		m.failures[id] = kind
		log.Printf("Extraction job failed: %s: %v", id, err)
	}
}

func (m *Manager) recordFailure(id, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inflight, id)
	m.failures[id] = kind
}

// Status reports the state of a job. A persisted snapshot means complete;
// that check runs first, so once a job reports complete it can never revert.
// Unknown identifiers (no snapshot, no in-flight job, no recorded failure)
// are a caller error.
func (m *Manager) Status(ctx context.Context, id string) (Status, error) {
	exists, err := m.snapshots.Exists(ctx, id)
	if err != nil {
		return Status{}, fmt.Errorf("failed to check snapshot: %w", err)
	}
	if exists {
		return Status{State: StateComplete}, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if kind, ok := m.failures[id]; ok {
		return Status{State: StateFailed, ErrorKind: kind}, nil
	}
	if _, ok := m.inflight[id]; ok {
		return Status{State: StateRunning}, nil
	}

	return Status{}, &store.NotFoundError{ID: id}
}

// Wait blocks until every dispatched job has settled. Used by tests and by
// one-shot CLI runs; the server never calls it.
func (m *Manager) Wait() {
	m.wg.Wait()
}
