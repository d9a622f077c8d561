package displaytest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/discovery/core/display"
	"github.com/jask/discovery/core/display/displaytest"
)

type banner struct{ Text string }

func TestRecorderKeepsOrder(t *testing.T) {
	rec := displaytest.NewRecorder[banner]()
	var d display.Display[banner] = rec

	_, ok := rec.Last()
	require.False(t, ok)

	d.Show(banner{Text: "a"})
	d.Show(banner{Text: "b"})

	require.Equal(t, 2, rec.Count())
	require.Equal(t, []banner{{Text: "a"}, {Text: "b"}}, rec.Shown())
	last, ok := rec.Last()
	require.True(t, ok)
	require.Equal(t, banner{Text: "b"}, last)

	rec.Reset()
	require.Zero(t, rec.Count())
}
