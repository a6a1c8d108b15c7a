package planner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"auraquest/internal/itinerary"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text  string
	err   error
	calls int
	last  Request
}

func (f *fakeGenerator) Generate(_ context.Context, req Request) (string, error) {
	f.calls++
	f.last = req
	return f.text, f.err
}

func (f *fakeGenerator) Name() string { return "fake" }

func fixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "goa.json"))
	require.NoError(t, err)
	return string(data)
}

func TestGenerate_Success(t *testing.T) {
	gen := &fakeGenerator{text: fixture(t)}
	it, err := New(gen).Generate(context.Background(), "req-1", goaPrefs())
	require.NoError(t, err)

	assert.Equal(t, 1, gen.calls)
	assert.Same(t, itinerary.Schema(), gen.last.Schema)
	assert.Contains(t, gen.last.Prompt, "Indian Rupees (INR)")
	assert.NotEmpty(t, it.Days)
}

func TestGenerate_ErrorKinds(t *testing.T) {
	transport := errors.New("connection reset")
	cases := []struct {
		name string
		gen  *fakeGenerator
		kind ErrorKind
	}{
		{"transport", &fakeGenerator{err: transport}, KindTransport},
		{"empty", &fakeGenerator{text: "  \n"}, KindEmpty},
		{"invalid json", &fakeGenerator{text: "{not json"}, KindMalformed},
		{"missing required", &fakeGenerator{text: `{"tripTitle":"x"}`}, KindMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it, err := New(tc.gen).Generate(context.Background(), "req-2", goaPrefs())
			assert.Nil(t, it)

			var gerr *GenerationError
			require.ErrorAs(t, err, &gerr)
			assert.Equal(t, tc.kind, gerr.Kind)
			assert.Equal(t, "req-2", gerr.RequestID)
			assert.Equal(t, 1, tc.gen.calls, "exactly one attempt")
		})
	}
}

func TestGenerationError_Unwrap(t *testing.T) {
	_, err := New(&fakeGenerator{text: ""}).Generate(context.Background(), "r", goaPrefs())
	assert.ErrorIs(t, err, itinerary.ErrEmpty)
	assert.Contains(t, err.Error(), "(empty)")

	var shape *itinerary.ShapeError
	_, err = New(&fakeGenerator{text: "[]"}).Generate(context.Background(), "r", goaPrefs())
	assert.ErrorAs(t, err, &shape)
}

func TestGenerate_SnapshotUntouched(t *testing.T) {
	prefs := goaPrefs()
	before := prefs.Clone()
	_, err := New(&fakeGenerator{text: fixture(t)}).Generate(context.Background(), "r", prefs)
	require.NoError(t, err)
	assert.Equal(t, before, prefs)
}
