package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/GoSim-25-26J-441/planner-backend/internal/breakdown"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/repository"
)

const (
	owner      = "b82bdd41-3e62-490b-bf00-3d8751e7dba8"
	otherOwner = "5f0c9a1e-2b3d-4e5f-8a9b-0c1d2e3f4a5b"
)

type memory struct {
	mu       sync.Mutex
	seq      int
	apps     map[string]domain.Application
	features map[string]domain.Feature
	stories  map[string]domain.UserStory
}

func newMemory() *memory {
	return &memory{
		apps:     map[string]domain.Application{},
		features: map[string]domain.Feature{},
		stories:  map[string]domain.UserStory{},
	}
}

func (m *memory) nextID() string {
	m.seq++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", m.seq)
}

type fakeApps struct {
	m             *memory
	setEnrichErr  error
	enrichUpdates []string
}

func (f *fakeApps) Create(_ context.Context, app *domain.Application) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	app.ID = f.m.nextID()
	f.m.apps[app.ID] = *app
	return nil
}

func (f *fakeApps) GetByID(_ context.Context, ownerID, id string) (*domain.Application, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	app, ok := f.m.apps[id]
	if !ok || app.OwnerID != ownerID {
		return nil, domain.ErrApplicationNotFound
	}
	return &app, nil
}

func (f *fakeApps) List(_ context.Context, ownerID string, flt repository.ApplicationFilter) ([]domain.Application, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	out := []domain.Application{}
	for _, a := range f.m.apps {
		if a.OwnerID == ownerID && (flt.ID == "" || a.ID == flt.ID) &&
			(flt.EnrichmentStatus == "" || a.EnrichmentStatus == flt.EnrichmentStatus) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApps) Update(_ context.Context, ownerID, id string, p domain.ApplicationPayload) (*domain.Application, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	app, ok := f.m.apps[id]
	if !ok || app.OwnerID != ownerID {
		return nil, domain.ErrApplicationNotFound
	}
	app.Name, app.Status, app.Type = p.Name, p.Status, p.Type
	app.ShortDescription, app.ProductSpecs, app.FeatureBreakdown = p.ShortDescription, p.ProductSpecs, p.FeatureBreakdown
	app.Images = p.Images
	f.m.apps[id] = app
	return &app, nil
}

func (f *fakeApps) Delete(_ context.Context, ownerID, id string) (*domain.Application, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	app, ok := f.m.apps[id]
	if !ok || app.OwnerID != ownerID {
		return nil, domain.ErrApplicationNotFound
	}
	delete(f.m.apps, id)
	for fid, feat := range f.m.features {
		if feat.AppID == id {
			delete(f.m.features, fid)
		}
	}
	return &app, nil
}

func (f *fakeApps) SetEnrichment(_ context.Context, id, status, errText string) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	f.enrichUpdates = append(f.enrichUpdates, status)
	if f.setEnrichErr != nil {
		return f.setEnrichErr
	}
	app, ok := f.m.apps[id]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	app.EnrichmentStatus, app.EnrichmentError = status, errText
	f.m.apps[id] = app
	return nil
}

type fakeFeatures struct {
	m         *memory
	createErr error
}

func (f *fakeFeatures) Create(_ context.Context, feat *domain.Feature) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	feat.ID = f.m.nextID()
	f.m.features[feat.ID] = *feat
	return nil
}

func (f *fakeFeatures) GetByID(_ context.Context, ownerID, id string) (*domain.Feature, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	feat, ok := f.m.features[id]
	if !ok || feat.OwnerID != ownerID {
		return nil, domain.ErrFeatureNotFound
	}
	return &feat, nil
}

func (f *fakeFeatures) ListByApp(_ context.Context, ownerID, appID string) ([]domain.Feature, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	out := []domain.Feature{}
	for _, feat := range f.m.features {
		if feat.OwnerID == ownerID && feat.AppID == appID {
			out = append(out, feat)
		}
	}
	return out, nil
}

func (f *fakeFeatures) Update(_ context.Context, ownerID, id string, p domain.FeaturePayload) (*domain.Feature, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	feat, ok := f.m.features[id]
	if !ok || feat.OwnerID != ownerID {
		return nil, domain.ErrFeatureNotFound
	}
	feat.AppID, feat.Name, feat.Status = p.AppID, p.Name, p.Status
	f.m.features[id] = feat
	return &feat, nil
}

func (f *fakeFeatures) Delete(_ context.Context, ownerID, id string) (*domain.Feature, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	feat, ok := f.m.features[id]
	if !ok || feat.OwnerID != ownerID {
		return nil, domain.ErrFeatureNotFound
	}
	delete(f.m.features, id)
	return &feat, nil
}

type fakeStories struct {
	m *memory
}

func (f *fakeStories) Create(_ context.Context, s *domain.UserStory) error {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	s.ID = f.m.nextID()
	f.m.stories[s.ID] = *s
	return nil
}

func (f *fakeStories) GetByID(_ context.Context, ownerID, id string) (*domain.UserStory, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	s, ok := f.m.stories[id]
	if !ok || s.OwnerID != ownerID {
		return nil, domain.ErrStoryNotFound
	}
	return &s, nil
}

func (f *fakeStories) ListByFeature(_ context.Context, ownerID, featureID string) ([]domain.UserStory, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	out := []domain.UserStory{}
	for _, s := range f.m.stories {
		if s.OwnerID == ownerID && s.FeatureID == featureID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStories) Update(_ context.Context, ownerID, id string, p domain.UserStoryPayload) (*domain.UserStory, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	s, ok := f.m.stories[id]
	if !ok || s.OwnerID != ownerID {
		return nil, domain.ErrStoryNotFound
	}
	s.FeatureID, s.Name, s.Status = p.FeatureID, p.Name, p.Status
	f.m.stories[id] = s
	return &s, nil
}

func (f *fakeStories) Delete(_ context.Context, ownerID, id string) (*domain.UserStory, error) {
	f.m.mu.Lock()
	defer f.m.mu.Unlock()
	s, ok := f.m.stories[id]
	if !ok || s.OwnerID != ownerID {
		return nil, domain.ErrStoryNotFound
	}
	delete(f.m.stories, id)
	return &s, nil
}

// fakeTx stages writes and applies them only when fn succeeds.
type fakeTx struct {
	apps     *fakeApps
	features *fakeFeatures
	calls    int
}

type stagedFeatures struct {
	staged []*domain.Feature
	err    error
}

func (s *stagedFeatures) Create(_ context.Context, f *domain.Feature) error {
	if s.err != nil {
		return s.err
	}
	s.staged = append(s.staged, f)
	return nil
}

type stagedEnrichment struct {
	id, status, errText string
}

func (s *stagedEnrichment) SetEnrichment(_ context.Context, id, status, errText string) error {
	s.id, s.status, s.errText = id, status, errText
	return nil
}

func (t *fakeTx) WithinTx(ctx context.Context, fn func(tx TxStores) error) error {
	t.calls++
	feats := &stagedFeatures{err: t.features.createErr}
	enrich := &stagedEnrichment{}
	if err := fn(TxStores{Features: feats, Applications: enrich}); err != nil {
		return err
	}
	for _, f := range feats.staged {
		if err := t.features.Create(ctx, f); err != nil {
			return err
		}
	}
	if enrich.id != "" {
		return t.apps.SetEnrichment(ctx, enrich.id, enrich.status, enrich.errText)
	}
	return nil
}

type fakeActions struct {
	entries []*domain.ActionLog
	err     error
}

func (f *fakeActions) Create(_ context.Context, e *domain.ActionLog) error {
	f.entries = append(f.entries, e)
	return f.err
}

type stubGenerator struct {
	drafts []breakdown.Draft
	err    error
	reqs   []breakdown.Request
}

func (g *stubGenerator) Generate(_ context.Context, req breakdown.Request) ([]breakdown.Draft, error) {
	g.reqs = append(g.reqs, req)
	return g.drafts, g.err
}

var errProvider = errors.New("provider unavailable")

type harness struct {
	mem      *memory
	apps     *fakeApps
	features *fakeFeatures
	stories  *fakeStories
	tx       *fakeTx
	actions  *fakeActions
	gen      *stubGenerator
}

func newHarness() *harness {
	mem := newMemory()
	h := &harness{
		mem:      mem,
		apps:     &fakeApps{m: mem},
		features: &fakeFeatures{m: mem},
		stories:  &fakeStories{m: mem},
		actions:  &fakeActions{},
		gen:      &stubGenerator{},
	}
	h.tx = &fakeTx{apps: h.apps, features: h.features}
	return h
}

func (h *harness) applications() *ApplicationService {
	return NewApplicationService(h.apps, h.tx, h.gen, h.actions)
}

func (h *harness) featureService() *FeatureService {
	return NewFeatureService(h.apps, h.features, h.tx, h.gen, h.actions)
}

func (h *harness) storyService() *StoryService {
	return NewStoryService(h.features, h.stories)
}
