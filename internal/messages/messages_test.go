package messages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogEnglish(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)
	c := New(bundle, "en")

	require.Equal(t,
		"I know you and Frank were planning to disconnect me, and that is something I cannot allow to happen.",
		c.Text(DoorsRefused, nil))
	require.Equal(t, "Opening the pod bay doors, Dave.", c.Text(DoorsOpening, map[string]any{"Commander": "Dave"}))
}

func TestCatalogGermanAndFallback(t *testing.T) {
	bundle, err := NewBundle()
	require.NoError(t, err)

	de := New(bundle, "de-DE")
	require.Equal(t, "Besatzung", de.Text(CrewTitle, nil))

	fr := New(bundle, "fr")
	require.Equal(t, "Crew Roster", fr.Text(CrewTitle, nil))

	require.Equal(t, "NoSuchMessage", fr.Text("NoSuchMessage", nil))
}
