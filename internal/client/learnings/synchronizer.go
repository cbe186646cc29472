package learnings

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/softwareslayer/internal/client/models"
	"github.com/dmitrijs2005/softwareslayer/internal/logging"
)

// API is the part of client.Client the synchronizer talks to.
type API interface {
	ListCategories(ctx context.Context) ([]string, error)
	ListLearnings(ctx context.Context, userID int64) ([]models.LearningItem, error)
	CreateLearning(ctx context.Context, token, title, category string) error
	DeleteLearning(ctx context.Context, token string, id int64) error
}

// Session supplies the current user and change notifications.
type Session interface {
	User() *models.User
	Subscribe(fn func(*models.User)) (cancel func())
}

// View is a point-in-time copy of the synchronizer state.
type View struct {
	Categories []string
	Sections   []models.LearningSection
	Drafts     map[string]string
	Submitting map[string]bool
	Loading    bool
	Refreshing bool
	Error      string
}

type Synchronizer struct {
	api      API
	session  Session
	notifier Notifier
	confirm  Confirmer
	log      logging.Logger

	mu         sync.Mutex
	categories []string
	sections   []models.LearningSection
	drafts     map[string]string
	submitting map[string]bool
	loading    bool
	refreshing bool
	errMessage string

	// deleted holds ids removed by DeleteItem; reloads never bring them back.
	deleted map[int64]struct{}

	generation  uint64
	closed      bool
	started     bool
	baseCtx     context.Context
	unsubscribe func()
	bg          sync.WaitGroup
}

func NewSynchronizer(api API, session Session, notifier Notifier, confirm Confirmer, logger logging.Logger) *Synchronizer {
	return &Synchronizer{
		api:        api,
		session:    session,
		notifier:   notifier,
		confirm:    confirm,
		log:        logger.With("component", "learnings"),
		drafts:     make(map[string]string),
		submitting: make(map[string]bool),
		deleted:    make(map[int64]struct{}),
		loading:    true,
	}
}

// Start subscribes to session changes and fetches the categories, which in
// turn loads the items. ctx also bounds reloads triggered later by session
// changes.
func (s *Synchronizer) Start(ctx context.Context) {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.baseCtx = ctx
	s.unsubscribe = s.session.Subscribe(s.onUserChange)
	s.mu.Unlock()

	s.LoadCategories(ctx)
}

// Close detaches from the session and waits for background reloads. Requests
// still in flight run to completion but their results are ignored.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	s.closed = true
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	s.bg.Wait()
}

// Wait blocks until reloads started by session changes have finished.
func (s *Synchronizer) Wait() {
	s.bg.Wait()
}

func (s *Synchronizer) onUserChange(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if u == nil {
		s.generation++
		s.sections = nil
		s.drafts = make(map[string]string)
		s.deleted = make(map[int64]struct{})
		s.loading = true
		s.refreshing = false
		s.errMessage = ""
		return
	}

	ctx := s.baseCtx
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		s.LoadItems(ctx)
	}()
}

func (s *Synchronizer) LoadCategories(ctx context.Context) {
	categories, err := s.api.ListCategories(ctx)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.errMessage = MsgCategoriesFailed
		s.mu.Unlock()
		s.log.Error(ctx, "failed to fetch categories", "error", err)
		return
	}

	changed := !slices.Equal(s.categories, categories)
	s.categories = slices.Clone(categories)
	s.errMessage = ""
	s.mu.Unlock()

	s.log.Debug(ctx, "categories loaded", "count", len(categories), "changed", changed)

	if changed {
		s.LoadItems(ctx)
	}
}

func (s *Synchronizer) LoadItems(ctx context.Context) {
	s.loadItems(ctx)
}

// loadItems reports false when it returned without issuing a request.
func (s *Synchronizer) loadItems(ctx context.Context) bool {
	user := s.session.User()

	s.mu.Lock()
	if s.closed || user == nil || len(s.categories) == 0 {
		s.mu.Unlock()
		return false
	}
	s.generation++
	gen := s.generation
	categories := slices.Clone(s.categories)
	s.mu.Unlock()

	items, err := s.api.ListLearnings(ctx, user.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return true
	}
	if gen != s.generation {
		s.log.Debug(ctx, "discarding stale learning items", "generation", gen)
		return true
	}

	s.loading = false
	s.refreshing = false

	if err != nil {
		s.errMessage = MsgItemsFailed
		s.log.Error(ctx, "failed to fetch learning items", "user_id", user.ID, "error", err)
		return true
	}

	if len(s.deleted) > 0 {
		items = slices.DeleteFunc(items, func(it models.LearningItem) bool {
			_, gone := s.deleted[it.ID]
			return gone
		})
	}
	s.sections = Partition(categories, items)
	s.errMessage = ""
	s.log.Debug(ctx, "learning items loaded", "user_id", user.ID, "count", len(items))
	return true
}

// Refresh reloads the items and reports progress through View.Refreshing.
func (s *Synchronizer) Refresh(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.refreshing = true
	s.mu.Unlock()

	if !s.loadItems(ctx) {
		s.mu.Lock()
		s.refreshing = false
		s.mu.Unlock()
	}
}

// CreateItem adds an item under category. Only one create per category runs
// at a time; a second call while one is in flight returns immediately. On
// success the items are reloaded and the category's draft is cleared.
func (s *Synchronizer) CreateItem(ctx context.Context, title, category string) {
	user := s.session.User()
	if user == nil {
		return
	}
	if strings.TrimSpace(title) == "" {
		s.notify(KindValidation, TitleInputError, MsgInvalidTitle)
		return
	}

	s.mu.Lock()
	if s.closed || s.submitting[category] {
		s.mu.Unlock()
		return
	}
	s.submitting[category] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.submitting, category)
		s.mu.Unlock()
	}()

	if err := s.api.CreateLearning(ctx, user.Token, title, category); err != nil {
		s.log.Error(ctx, "failed to create learning item", "category", category, "error", err)
		s.notify(KindError, TitleError, MsgCreateFailed)
		return
	}

	s.loadItems(ctx)

	s.mu.Lock()
	if !s.closed {
		delete(s.drafts, category)
	}
	s.mu.Unlock()
}

// DeleteItem removes the item after the user confirms. The item is dropped
// from local sections without a reload, and reloads already in flight will
// not restore it.
func (s *Synchronizer) DeleteItem(ctx context.Context, id int64) {
	user := s.session.User()
	if user == nil {
		return
	}

	if !s.confirm.Confirm(ctx, TitleConfirmDelete, MsgConfirmDelete) {
		return
	}

	if err := s.api.DeleteLearning(ctx, user.Token, id); err != nil {
		s.log.Error(ctx, "failed to delete learning item", "id", id, "error", err)
		s.notify(KindError, TitleError, MsgDeleteFailed)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.deleted[id] = struct{}{}
	sections := make([]models.LearningSection, len(s.sections))
	for i, sec := range s.sections {
		sections[i] = models.LearningSection{
			Title: sec.Title,
			Data: slices.DeleteFunc(slices.Clone(sec.Data), func(it models.LearningItem) bool {
				return it.ID == id
			}),
		}
	}
	s.sections = sections
}

func (s *Synchronizer) SetDraftInput(category, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.drafts[category] = value
}

// SubmitDraft creates an item from the trimmed draft of category. A blank
// draft is rejected with a validation notification.
func (s *Synchronizer) SubmitDraft(ctx context.Context, category string) {
	s.mu.Lock()
	if s.closed || s.submitting[category] {
		s.mu.Unlock()
		return
	}
	title := strings.TrimSpace(s.drafts[category])
	s.mu.Unlock()

	if title == "" {
		s.notify(KindValidation, TitleInputError, MsgInvalidTitle)
		return
	}

	s.CreateItem(ctx, title, category)
}

func (s *Synchronizer) State() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Categories: slices.Clone(s.categories),
		Sections:   models.CloneSections(s.sections),
		Drafts:     make(map[string]string, len(s.drafts)),
		Submitting: make(map[string]bool, len(s.submitting)),
		Loading:    s.loading,
		Refreshing: s.refreshing,
		Error:      s.errMessage,
	}
	for k, d := range s.drafts {
		v.Drafts[k] = d
	}
	for k, b := range s.submitting {
		if b {
			v.Submitting[k] = true
		}
	}
	return v
}

func (s *Synchronizer) notify(kind Kind, title, message string) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	s.notifier.Notify(Notification{Kind: kind, Title: title, Message: message})
}
