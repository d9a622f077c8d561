package podbay

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/discovery/core/assembly"
	"github.com/jask/discovery/core/display"
	"github.com/jask/discovery/core/display/displaytest"
	"github.com/jask/discovery/core/reaction"
	"github.com/jask/discovery/core/router"
	"github.com/jask/discovery/internal/database/repository"
	"github.com/jask/discovery/internal/messages"
	"github.com/jask/discovery/internal/service"
	"github.com/jask/discovery/internal/tui"
)

const halRefusal = "I know you and Frank were planning to disconnect me, and that is something I cannot allow to happen."

var launch = time.Date(2001, time.April, 3, 22, 15, 9, 0, time.UTC)

type fakeDoors struct {
	mu   sync.Mutex
	rows []repository.DoorRequest
	err  error
}

func (f *fakeDoors) Record(_ context.Context, by, outcome, msg string, at time.Time) (repository.DoorRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return repository.DoorRequest{}, f.err
	}
	r := repository.DoorRequest{RequestedBy: by, Outcome: outcome, Message: msg, RequestedAt: at}
	f.rows = append(f.rows, r)
	return r, nil
}

func (f *fakeDoors) Recent(_ context.Context, limit int) ([]repository.DoorRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]repository.DoorRequest, 0, limit)
	for i := len(f.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.rows[i])
	}
	return out, nil
}

func (f *fakeDoors) Summary(context.Context) (service.Summary, error) {
	var s service.Summary
	for _, r := range f.rows {
		if r.Outcome == OutcomeRefused {
			s.Refused++
		} else {
			s.Opened++
		}
	}
	return s, nil
}

type fakeCrew struct {
	rows []repository.CrewMember
	err  error
}

func (f fakeCrew) List(context.Context) ([]repository.CrewMember, error) {
	return f.rows, f.err
}

type fakeNav struct {
	presented []assembly.Builder[tui.Screen]
	dismissed int
}

func (n *fakeNav) Present(b assembly.Builder[tui.Screen]) error {
	n.presented = append(n.presented, b)
	return nil
}

func (n *fakeNav) Dismiss() { n.dismissed++ }

type countingMetrics struct {
	events []string
	doors  []string
}

func (m *countingMetrics) Event(handler, event string) { m.events = append(m.events, handler+":"+event) }
func (m *countingMetrics) DoorRequest(outcome string)  { m.doors = append(m.doors, outcome) }

func testEnv(t *testing.T) Env {
	t.Helper()
	bundle, err := messages.NewBundle()
	require.NoError(t, err)
	return Env{
		Messages: messages.New(bundle, "en"),
		Clock:    func() time.Time { return launch },
	}
}

func newDoorHandler(t *testing.T, killDave bool, doors DoorRecorder) *DoorHandler {
	t.Helper()
	h, err := NewDoorHandler(Settings{KillDave: killDave, Commander: "Dave"}, testEnv(t), doors, Destinations{})
	require.NoError(t, err)
	return h
}

func TestOpenDoorsBeforeBindPanics(t *testing.T) {
	doors := &fakeDoors{}
	metrics := &countingMetrics{}
	env := testEnv(t)
	env.Metrics = metrics
	h, err := NewDoorHandler(Settings{KillDave: true}, env, doors, Destinations{})
	require.NoError(t, err)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		require.True(t, reaction.IsPrecondition(r))
		require.Empty(t, doors.rows)
		require.Zero(t, h.Attempts(), "a rejected event must not count as an attempt")
		require.Empty(t, metrics.events)
		require.Empty(t, metrics.doors)
	}()
	h.Handle(Tap(OpenDoors))
}

func TestOpenDoorsRefusesWithFixedMessage(t *testing.T) {
	doors := &fakeDoors{}
	metrics := &countingMetrics{}
	env := testEnv(t)
	env.Metrics = metrics
	h, err := NewDoorHandler(Settings{KillDave: true}, env, doors, Destinations{})
	require.NoError(t, err)
	rec := displaytest.NewRecorder[DoorPayload]()
	h.Bind(rec)

	h.Handle(Tap(OpenDoors))

	require.Equal(t, 1, rec.Count())
	got, _ := rec.Last()
	require.Equal(t, halRefusal, got.Message)
	require.True(t, got.Refused())
	require.Equal(t, 1, got.Attempt)
	require.Equal(t, launch, got.At)

	require.Len(t, doors.rows, 1)
	require.Equal(t, "Dave", doors.rows[0].RequestedBy)
	require.Equal(t, OutcomeRefused, doors.rows[0].Outcome)
	require.Equal(t, []string{"door:open-doors"}, metrics.events)
	require.Equal(t, []string{OutcomeRefused}, metrics.doors)
}

func TestOpenDoorsWhenAllowed(t *testing.T) {
	h := newDoorHandler(t, false, &fakeDoors{})
	rec := displaytest.NewRecorder[DoorPayload]()
	h.Bind(rec)

	h.Handle(Tap(OpenDoors))
	h.Handle(Tap(OpenDoors))

	shown := rec.Shown()
	require.Len(t, shown, 2)
	require.Equal(t, "Opening the pod bay doors, Dave.", shown[1].Message)
	require.Equal(t, OutcomeOpened, shown[1].Outcome)
	require.Equal(t, 2, shown[1].Attempt)
}

func TestIdenticalStateProducesIdenticalPushes(t *testing.T) {
	a, b := newDoorHandler(t, true, &fakeDoors{}), newDoorHandler(t, true, &fakeDoors{})
	ra, rb := displaytest.NewRecorder[DoorPayload](), displaytest.NewRecorder[DoorPayload]()
	a.Bind(ra)
	b.Bind(rb)

	a.Handle(Tap(OpenDoors))
	b.Handle(Tap(OpenDoors))

	require.Equal(t, ra.Shown(), rb.Shown())
}

func TestRebindReachesOnlyLatestDisplay(t *testing.T) {
	h := newDoorHandler(t, true, &fakeDoors{})
	first, second := displaytest.NewRecorder[DoorPayload](), displaytest.NewRecorder[DoorPayload]()
	h.Bind(first)
	h.Bind(second)

	h.Handle(Tap(OpenDoors))

	require.Zero(t, first.Count())
	require.Equal(t, 1, second.Count())
}

func TestReleasedDisplayIsSkipped(t *testing.T) {
	doors := &fakeDoors{}
	h := newDoorHandler(t, true, doors)
	rec := displaytest.NewRecorder[DoorPayload]()
	bound := h.Bind(rec)
	require.False(t, h.Release(bound+1))
	require.True(t, h.Release(bound))

	require.NotPanics(t, func() { h.Handle(Tap(OpenDoors)) })
	require.Zero(t, rec.Count())
	require.Len(t, doors.rows, 1)
}

func TestReleasedFuncDisplayGetsNoMorePushes(t *testing.T) {
	h := newDoorHandler(t, true, &fakeDoors{})
	var calls int
	bound := h.Bind(display.Func[DoorPayload](func(DoorPayload) { calls++ }))

	h.Handle(Tap(OpenDoors))
	require.True(t, h.Release(bound))
	h.Handle(Tap(OpenDoors))

	require.Equal(t, 1, calls)
}

func TestRebindInvalidatesEarlierBinding(t *testing.T) {
	h := newDoorHandler(t, true, &fakeDoors{})
	first, second := displaytest.NewRecorder[DoorPayload](), displaytest.NewRecorder[DoorPayload]()
	stale := h.Bind(first)
	h.Bind(second)

	require.False(t, h.Release(stale), "a replaced screen must not unbind its successor")
	h.Handle(Tap(Refresh))
	require.Equal(t, 1, second.Count())
}

func TestRecordFailureStillShows(t *testing.T) {
	h := newDoorHandler(t, true, &fakeDoors{err: errors.New("disk full")})
	rec := displaytest.NewRecorder[DoorPayload]()
	h.Bind(rec)

	h.Handle(Tap(OpenDoors))
	require.Equal(t, 1, rec.Count())
}

func TestRefreshAndUnrecognized(t *testing.T) {
	h := newDoorHandler(t, true, &fakeDoors{})
	rec := displaytest.NewRecorder[DoorPayload]()
	h.Bind(rec)

	h.Handle(Tap(Refresh))
	h.Handle(Event{Kind: Unrecognized, Input: "sing daisy"})
	h.Handle(Tap(Dismiss))

	shown := rec.Shown()
	require.Len(t, shown, 2)
	require.Equal(t, OutcomeIdle, shown[0].Outcome)
	require.Equal(t, "Pod Bay", shown[0].Title)
	require.Equal(t, OutcomeConfused, shown[1].Outcome)
	require.Equal(t, `I'm sorry, Dave. I don't understand "sing daisy".`, shown[1].Message)
}

func TestNavigationGoesThroughBoundRouter(t *testing.T) {
	crew := assembly.Func[tui.Screen](func() (tui.Screen, error) { return nil, nil })
	h, err := NewDoorHandler(Settings{}, testEnv(t), &fakeDoors{}, Destinations{Crew: crew})
	require.NoError(t, err)

	require.Panics(t, func() { h.Handle(Tap(ShowCrew)) })

	nav := &fakeNav{}
	nb := h.BindRouter(nav)
	h.Handle(Tap(ShowCrew))
	h.Handle(Tap(ShowLog))
	require.Len(t, nav.presented, 1)

	require.True(t, h.ReleaseRouter(nb))
	require.NotPanics(t, func() { h.Handle(Tap(ShowCrew)) })
	require.Len(t, nav.presented, 1)
}

type stubScreen struct{ title string }

func (s *stubScreen) Update(tea.Msg) (tea.Cmd, bool) { return nil, false }
func (s *stubScreen) View(int, int) string           { return s.title }
func (s *stubScreen) Scope() string                  { return tui.ScopeCrew }
func (s *stubScreen) Title() string                  { return s.title }

func TestNavigationPresentsBuiltScreen(t *testing.T) {
	builds := 0
	crew := assembly.New(func() (tui.Screen, error) {
		builds++
		return &stubScreen{title: "Crew"}, nil
	})
	h, err := NewDoorHandler(Settings{}, testEnv(t), &fakeDoors{}, Destinations{Crew: crew})
	require.NoError(t, err)

	stack := tui.NewStack(nil)
	r := router.New[tui.Screen]()
	r.Bind(stack)
	h.BindRouter(r)

	h.Handle(Tap(ShowCrew))
	h.Handle(Tap(ShowCrew))

	require.Equal(t, 2, builds)
	require.Equal(t, 2, stack.Len())
	require.Equal(t, []string{"Crew", "Crew"}, stack.Titles())
}

func TestCrewHandler(t *testing.T) {
	h, err := NewCrewHandler(testEnv(t), fakeCrew{rows: []repository.CrewMember{
		{Name: "Dave Bowman", Role: "Mission Commander", Status: "awake"},
		{Name: "Victor Kaminsky", Role: "Survey Team", Status: "hibernating"},
	}})
	require.NoError(t, err)
	rec := displaytest.NewRecorder[CrewPayload]()
	h.Bind(rec)
	nav := &fakeNav{}
	h.BindRouter(nav)

	h.Handle(Tap(Refresh))
	h.Handle(Tap(Dismiss))

	p, ok := rec.Last()
	require.True(t, ok)
	require.Equal(t, "Crew Roster", p.Title)
	require.Equal(t, 2, p.Len())
	require.Equal(t, "Dave Bowman", p.Members()[0].Name)
	require.Equal(t, 1, nav.dismissed)
}

func TestCrewHandlerReportsProblem(t *testing.T) {
	h, err := NewCrewHandler(testEnv(t), fakeCrew{err: errors.New("no such table: crew")})
	require.NoError(t, err)
	rec := displaytest.NewRecorder[CrewPayload]()
	h.Bind(rec)

	h.Handle(Tap(Refresh))

	p, _ := rec.Last()
	require.Zero(t, p.Len())
	require.Equal(t, "no such table: crew", p.Problem)
}

func TestLogHandlerRespectsLimit(t *testing.T) {
	doors := &fakeDoors{}
	for i := range 5 {
		_, _ = doors.Record(context.Background(), "Dave", OutcomeRefused, "no", launch.Add(time.Duration(i)*time.Minute))
	}
	h, err := NewLogHandler(Settings{LogLimit: 3}, testEnv(t), doors)
	require.NoError(t, err)
	rec := displaytest.NewRecorder[LogPayload]()
	h.Bind(rec)

	h.Handle(Tap(Refresh))

	p, _ := rec.Last()
	require.Equal(t, 3, p.Len())
	require.Equal(t, 5, p.Refused)
	require.True(t, p.Entries()[0].At.Equal(launch.Add(4*time.Minute)))
	require.Equal(t, "Door Requests", p.Title)
}

func TestHandlerBuildersConstructFreshHandlers(t *testing.T) {
	trace := assembly.NewTrace()
	doors := &fakeDoors{}
	b := DoorHandlers(
		assembly.Shared(Settings{KillDave: true}),
		assembly.Shared(testEnv(t)),
		assembly.Shared[DoorRecorder](doors),
		assembly.Shared(Destinations{}),
		assembly.Observe(trace),
	)

	h1, err := b.Build()
	require.NoError(t, err)
	h2, err := b.Build()
	require.NoError(t, err)
	require.NotSame(t, h1, h2)
	require.Equal(t, 2, trace.Count("podbay.DoorHandler"))
}

func TestHandlerBuilderReportsMissingCollaborator(t *testing.T) {
	b := LogHandlers(
		assembly.Shared(Settings{}),
		assembly.Shared(Env{}),
		assembly.Shared[DoorHistory](nil),
	)
	_, err := b.Build()
	require.Error(t, err)
	require.True(t, assembly.IsMissing(err))

	var aerr *assembly.Error
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, []string{"podbay.LogHandler"}, aerr.Path)
}
