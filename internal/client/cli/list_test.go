package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/softwareslayer/internal/client/learnings"
	"github.com/stretchr/testify/require"
)

func TestPrintLearnings(t *testing.T) {
	tests := []struct {
		name string
		view learnings.View
		want string
	}{
		{
			name: "loading",
			view: learnings.View{Loading: true},
			want: "Loading learning items...\n",
		},
		{
			name: "error while loading",
			view: learnings.View{Loading: true, Error: "Failed to load"},
			want: "Error: Failed to load\nLoading learning items...\n",
		},
		{
			name: "sections",
			view: sampleView(),
			want: "== Frontend ==\n  [1] Flexbox\n== Backend ==\n  (no items)\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ta := newTestApp("")
			ta.printLearnings(tc.view)
			require.Equal(t, tc.want, ta.out.String())
		})
	}
}

func TestListAndRefresh(t *testing.T) {
	ta := newTestApp("")
	ta.learn.view = sampleView()

	require.NoError(t, ta.List(context.Background()))
	require.Zero(t, ta.learn.refreshes)
	require.Contains(t, ta.out.String(), "[1] Flexbox")

	ta.out.Reset()
	require.NoError(t, ta.Refresh(context.Background()))
	require.Equal(t, 1, ta.learn.refreshes)
	require.Contains(t, ta.out.String(), "[1] Flexbox")
}

func TestAdd_UnknownCategory(t *testing.T) {
	ta := newTestApp("")
	ta.learn.view = sampleView()

	require.NoError(t, ta.Add(context.Background(), "Design"))
	require.Empty(t, ta.learn.submitted)
	require.Equal(t, "Unknown category \"Design\". Available: Frontend, Backend\n", ta.out.String())
}

func TestAdd_Success(t *testing.T) {
	ta := newTestApp("  CSS Grid \n")
	ta.learn.view = sampleView()

	require.NoError(t, ta.Add(context.Background(), "Backend"))
	require.Equal(t, []string{"Backend"}, ta.learn.submitted)

	out := ta.out.String()
	require.Contains(t, out, "Enter title for Backend\n> ")
	require.Contains(t, out, "Added.\n")
	require.Contains(t, out, "== Backend ==\n  [1] CSS Grid\n")
	require.NotContains(t, ta.learn.State().Drafts, "Backend")
}

func TestAdd_BlankTitleSubmitsWithoutAdded(t *testing.T) {
	ta := newTestApp("\n")
	ta.learn.view = sampleView()

	require.NoError(t, ta.Add(context.Background(), "Frontend"))
	require.Equal(t, []string{"Frontend"}, ta.learn.submitted)
	require.NotContains(t, ta.out.String(), "Added.")
}

func TestAdd_FailedSubmitKeepsDraftForRetry(t *testing.T) {
	ta := newTestApp("Hooks\n\n")
	ta.learn.view = sampleView()
	ta.learn.failSubmit = true

	require.NoError(t, ta.Add(context.Background(), "Frontend"))
	require.NotContains(t, ta.out.String(), "Added.")
	require.Equal(t, "Hooks", ta.learn.State().Drafts["Frontend"])

	ta.out.Reset()
	ta.learn.failSubmit = false
	require.NoError(t, ta.Add(context.Background(), "Frontend"))

	out := ta.out.String()
	require.Contains(t, out, `(empty line keeps "Hooks")`)
	require.Contains(t, out, "Added.\n")
	require.Contains(t, out, "  [1] Hooks\n")
}

func TestAdd_InputError(t *testing.T) {
	ta := newTestApp("")
	ta.learn.view = sampleView()

	require.Error(t, ta.Add(context.Background(), "Frontend"))
	require.Empty(t, ta.learn.submitted)
}

func TestDelete(t *testing.T) {
	ta := newTestApp("")
	ta.learn.view = sampleView()

	require.NoError(t, ta.Delete(context.Background(), "1"))
	require.Equal(t, []int64{1}, ta.learn.deleted)
	require.Equal(t, "Deleted.\n", ta.out.String())
}

func TestDelete_NothingRemoved(t *testing.T) {
	ta := newTestApp("")
	ta.learn.view = sampleView()

	require.NoError(t, ta.Delete(context.Background(), "99"))
	require.Equal(t, []int64{99}, ta.learn.deleted)
	require.Empty(t, ta.out.String())
}

func TestDelete_InvalidID(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3"} {
		ta := newTestApp("")
		ta.learn.view = sampleView()

		require.NoError(t, ta.Delete(context.Background(), raw))
		require.Empty(t, ta.learn.deleted)
		require.Contains(t, ta.out.String(), "Input Error: Invalid id")
	}
}

func TestCountItems(t *testing.T) {
	require.Equal(t, 1, countItems(sampleView()))
	require.Zero(t, countItems(learnings.View{}))
}
