package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/giftcert-api/internal/application/usecase"
	"github.com/jhoicas/giftcert-api/internal/domain"
	"github.com/jhoicas/giftcert-api/internal/domain/entity"
	"github.com/jhoicas/giftcert-api/internal/domain/search"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeSearcher devuelve una lista fija y guarda los criterios recibidos.
type fakeSearcher[E any] struct {
	items []E
	total int
	err   error
	calls []search.Criteria
}

func (f *fakeSearcher[E]) Search(_ context.Context, c search.Criteria) ([]E, int, error) {
	f.calls = append(f.calls, c)
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.items, f.total, nil
}

type memCertificates struct {
	byID map[string]*entity.GiftCertificate
	tags map[string][]string
}

func newMemCertificates(certs ...*entity.GiftCertificate) *memCertificates {
	m := &memCertificates{byID: map[string]*entity.GiftCertificate{}, tags: map[string][]string{}}
	for _, c := range certs {
		m.byID[c.ID] = c
	}
	return m
}

func (m *memCertificates) Create(_ context.Context, c *entity.GiftCertificate) error {
	for _, existing := range m.byID {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memCertificates) GetByID(_ context.Context, id string) (*entity.GiftCertificate, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Tags = []entity.Tag{}
	for _, tid := range m.tags[id] {
		cp.Tags = append(cp.Tags, entity.Tag{ID: tid})
	}
	return &cp, nil
}

func (m *memCertificates) GetByNames(_ context.Context, names []string) ([]*entity.GiftCertificate, error) {
	var out []*entity.GiftCertificate
	for _, n := range names {
		for _, c := range m.byID {
			if c.Name == n {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (m *memCertificates) Update(_ context.Context, c *entity.GiftCertificate) error {
	if _, ok := m.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memCertificates) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memCertificates) AttachTags(_ context.Context, certificateID string, tagIDs []string) error {
	m.tags[certificateID] = append(m.tags[certificateID], tagIDs...)
	return nil
}

type memTags struct {
	byID map[string]*entity.Tag
}

func newMemTags(tags ...*entity.Tag) *memTags {
	m := &memTags{byID: map[string]*entity.Tag{}}
	for _, t := range tags {
		m.byID[t.ID] = t
	}
	return m
}

func (m *memTags) Create(_ context.Context, t *entity.Tag) error {
	for _, existing := range m.byID {
		if existing.Name == t.Name {
			return domain.ErrDuplicate
		}
	}
	m.byID[t.ID] = t
	return nil
}

func (m *memTags) GetByID(_ context.Context, id string) (*entity.Tag, error) {
	return m.byID[id], nil
}

func (m *memTags) GetByName(_ context.Context, name string) (*entity.Tag, error) {
	for _, t := range m.byID {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (m *memTags) Delete(_ context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memUsers struct {
	byID  map[string]*entity.User
	stats []entity.TagStat
	limit int
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return m.byID[id], nil
}

func (m *memUsers) PopularTags(_ context.Context, _ string, limit int) ([]entity.TagStat, error) {
	m.limit = limit
	return m.stats, nil
}

type memOrders struct {
	byID map[string]*entity.Order
}

func (m *memOrders) Create(_ context.Context, o *entity.Order) error {
	m.byID[o.ID] = o
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return m.byID[id], nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

// fakeTx ejecuta fn con los repos en memoria; no revierte cambios.
type fakeTx struct {
	repos usecase.TxRepos
	runs  int
}

func (f *fakeTx) Run(_ context.Context, fn func(repos usecase.TxRepos) error) error {
	f.runs++
	return fn(f.repos)
}

// recordingObserver guarda cada búsqueda observada.
type recordingObserver struct {
	mu    sync.Mutex
	found []int
	errs  []error
}

func (o *recordingObserver) ObserveSearch(_ search.EntityType, found int, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.found = append(o.found, found)
	o.errs = append(o.errs, err)
}

func newEngine(t *testing.T, observer usecase.SearchObserver) *usecase.SearchEngine {
	t.Helper()
	reg, err := search.NewRegistry(entity.Catalogs()...)
	require.NoError(t, err)
	return usecase.NewSearchEngine(search.NewParser(reg, 100, zerolog.Nop()), search.NewBuilder(reg), observer)
}

func certs(n int) []*entity.GiftCertificate {
	out := make([]*entity.GiftCertificate, n)
	for i := range out {
		out[i] = &entity.GiftCertificate{ID: string(rune('a' + i)), Name: "cert-" + string(rune('a'+i))}
	}
	return out
}
