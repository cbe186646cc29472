package cli

import (
	"bufio"
	"bytes"
	"context"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/softwareslayer/internal/client/config"
	"github.com/dmitrijs2005/softwareslayer/internal/client/learnings"
	"github.com/dmitrijs2005/softwareslayer/internal/client/models"
	"github.com/dmitrijs2005/softwareslayer/internal/client/services"
	"github.com/dmitrijs2005/softwareslayer/internal/client/session"
	"github.com/dmitrijs2005/softwareslayer/internal/logging"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// storeContext returns a context carrying an initialized session store
// holding u (nil for anonymous).
func storeContext(t *testing.T, u *models.User) context.Context {
	t.Helper()
	store := session.NewStore(&memKV{data: map[string][]byte{}}, logging.Discard())
	store.Initialize(context.Background())
	require.NoError(t, store.WaitReady(context.Background()))
	if u != nil {
		store.SetUser(u)
	}
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return session.NewContext(context.Background(), store)
}

type fakeSession struct {
	mu    sync.Mutex
	user  *models.User
	state session.State
}

func (f *fakeSession) User() *models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user.Clone()
}

func (f *fakeSession) State() session.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeSession) set(u *models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user = u
	if u == nil {
		f.state = session.StateAnonymous
	} else {
		f.state = session.StateAuthenticated
	}
}

type fakeAuth struct {
	sess *fakeSession

	LastForm       services.RegisterForm
	LastIdentifier string
	LastPassword   string
	RegisterErr    error
	LoginUser      *models.User
	LoginErr       error
	LogoutCalls    int

	pingMu  sync.Mutex
	PingErr error
	Pings   int
}

func (f *fakeAuth) Register(_ context.Context, form services.RegisterForm) error {
	f.LastForm = form
	return f.RegisterErr
}

func (f *fakeAuth) Login(_ context.Context, identifier, password string) (*models.User, error) {
	f.LastIdentifier, f.LastPassword = identifier, password
	if f.LoginErr != nil {
		return nil, f.LoginErr
	}
	if f.sess != nil {
		f.sess.set(f.LoginUser.Clone())
	}
	return f.LoginUser, nil
}

func (f *fakeAuth) Logout(_ context.Context) {
	f.LogoutCalls++
	if f.sess != nil {
		f.sess.set(nil)
	}
}

func (f *fakeAuth) Ping(_ context.Context) error {
	f.pingMu.Lock()
	defer f.pingMu.Unlock()
	f.Pings++
	return f.PingErr
}

func (f *fakeAuth) setPingErr(err error) {
	f.pingMu.Lock()
	defer f.pingMu.Unlock()
	f.PingErr = err
}

func (f *fakeAuth) pings() int {
	f.pingMu.Lock()
	defer f.pingMu.Unlock()
	return f.Pings
}

type fakeSkills struct {
	skills  []string
	ListErr error
	AddErr  error
	RenErr  error
	RemErr  error

	LastAdded   string
	LastOld     string
	LastNew     string
	LastRemoved string
}

func (f *fakeSkills) List(_ context.Context) ([]string, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return slices.Clone(f.skills), nil
}

func (f *fakeSkills) Add(_ context.Context, topic string) error {
	f.LastAdded = topic
	if f.AddErr != nil {
		return f.AddErr
	}
	if strings.TrimSpace(topic) == "" {
		return services.ErrEmptyTopic
	}
	f.skills = append(f.skills, topic)
	return nil
}

func (f *fakeSkills) Rename(_ context.Context, oldTopic, newTopic string) error {
	f.LastOld, f.LastNew = oldTopic, newTopic
	if f.RenErr != nil {
		return f.RenErr
	}
	for i, s := range f.skills {
		if s == oldTopic {
			f.skills[i] = newTopic
		}
	}
	return nil
}

func (f *fakeSkills) Remove(_ context.Context, topic string) error {
	f.LastRemoved = topic
	if f.RemErr != nil {
		return f.RemErr
	}
	f.skills = slices.DeleteFunc(f.skills, func(s string) bool { return s == topic })
	return nil
}

// fakeLearnings applies drafts and deletes locally, the way a synchronizer
// would on success.
type fakeLearnings struct {
	view learnings.View

	started    bool
	closed     bool
	waits      int
	refreshes  int
	submitted  []string
	deleted    []int64
	failSubmit bool
	nextID     int64
}

func (f *fakeLearnings) Start(context.Context) { f.started = true }
func (f *fakeLearnings) Close()                { f.closed = true }
func (f *fakeLearnings) Wait()                 { f.waits++ }
func (f *fakeLearnings) Refresh(context.Context) {
	f.refreshes++
}

func (f *fakeLearnings) State() learnings.View {
	v := f.view
	v.Categories = slices.Clone(f.view.Categories)
	v.Sections = models.CloneSections(f.view.Sections)
	v.Drafts = make(map[string]string, len(f.view.Drafts))
	for k, d := range f.view.Drafts {
		v.Drafts[k] = d
	}
	return v
}

func (f *fakeLearnings) SetDraftInput(category, value string) {
	if f.view.Drafts == nil {
		f.view.Drafts = map[string]string{}
	}
	f.view.Drafts[category] = value
}

func (f *fakeLearnings) SubmitDraft(_ context.Context, category string) {
	f.submitted = append(f.submitted, category)
	title := strings.TrimSpace(f.view.Drafts[category])
	if title == "" || f.failSubmit {
		return
	}
	f.nextID++
	for i, s := range f.view.Sections {
		if s.Title == category {
			f.view.Sections[i].Data = append(f.view.Sections[i].Data, models.LearningItem{ID: f.nextID, Title: title, Category: category})
		}
	}
	delete(f.view.Drafts, category)
}

func (f *fakeLearnings) DeleteItem(_ context.Context, id int64) {
	f.deleted = append(f.deleted, id)
	for i, s := range f.view.Sections {
		f.view.Sections[i].Data = slices.DeleteFunc(s.Data, func(it models.LearningItem) bool { return it.ID == id })
	}
}

type testApp struct {
	*App
	out    *bytes.Buffer
	sess   *fakeSession
	auth   *fakeAuth
	skills *fakeSkills
	learn  *fakeLearnings
}

func newTestApp(input string) *testApp {
	sess := &fakeSession{state: session.StateAnonymous}
	auth := &fakeAuth{sess: sess}
	skills := &fakeSkills{}
	learn := &fakeLearnings{view: learnings.View{Drafts: map[string]string{}}}
	out := &bytes.Buffer{}

	cfg := &config.Config{}
	cfg.LoadDefaults()

	a := &App{
		config:       cfg,
		log:          logging.Discard(),
		session:      sess,
		authService:  auth,
		skillService: skills,
		learnings:    learn,
		reader:       bufio.NewReader(strings.NewReader(input)),
		out:          out,
	}
	return &testApp{App: a, out: out, sess: sess, auth: auth, skills: skills, learn: learn}
}

func testUser() *models.User {
	return &models.User{
		ID:        7,
		Email:     "ada@example.com",
		Username:  "ada",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Token:     "tok-7",
	}
}

func sampleView() learnings.View {
	return learnings.View{
		Categories: []string{"Frontend", "Backend"},
		Sections: []models.LearningSection{
			{Title: "Frontend", Data: []models.LearningItem{{ID: 1, Title: "Flexbox", Category: "Frontend"}}},
			{Title: "Backend", Data: []models.LearningItem{}},
		},
		Drafts: map[string]string{},
	}
}
