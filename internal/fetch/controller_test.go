package fetch

import (
	"context"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pokeview/pokedex/internal/errors"
	"github.com/pokeview/pokedex/internal/model"
	pokeapimock "github.com/pokeview/pokedex/internal/pokeapi/mock"
)

type fixedRoller struct {
	value int
	err   error
}

func (r fixedRoller) Roll(int) (int, error) { return r.value, r.err }

func newTestController(t *testing.T) (*Controller, *pokeapimock.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockClient := pokeapimock.NewMockClient(ctrl)

	c, err := NewController(&Config{Client: mockClient})
	require.NoError(t, err)
	return c, mockClient
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("query did not finish")
	}
}

func TestNewController_RequiresClient(t *testing.T) {
	_, err := NewController(&Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = NewController(nil)
	require.Error(t, err)
}

func TestController_StartsIdle(t *testing.T) {
	c, _ := newTestController(t)

	assert.Equal(t, model.QueryPhaseIdle, c.Snapshot().Phase)
	assert.Equal(t, "", c.Snapshot().StatusMessage())
}

func TestController_Submit_Loaded(t *testing.T) {
	c, mockClient := newTestController(t)
	sprite := image.NewRGBA(image.Rect(0, 0, 8, 8))
	record := &model.Record{ID: 25, Name: "pikachu", ArtworkURL: "https://example.test/25.png"}

	mockClient.EXPECT().GetPokemon(gomock.Any(), "25").Return(record, nil)
	mockClient.EXPECT().FetchImage(gomock.Any(), "https://example.test/25.png").Return(sprite, nil)

	wait(t, c.Submit(context.Background(), "  25 "))

	state := c.Snapshot()
	assert.Equal(t, model.QueryPhaseLoaded, state.Phase)
	assert.Equal(t, "Loaded: #25 Pikachu", state.StatusMessage())
	assert.Same(t, record, state.Record)
	assert.True(t, state.HasImage())
	assert.NotEmpty(t, state.RequestID)
}

func TestController_Submit_NormalizesQuery(t *testing.T) {
	c, mockClient := newTestController(t)

	mockClient.EXPECT().GetPokemon(gomock.Any(), "mr mime").Return(&model.Record{ID: 122, Name: "mr-mime"}, nil)

	wait(t, c.Submit(context.Background(), "\tMr Mime "))
	assert.Equal(t, "mr mime", c.Snapshot().Query)
}

func TestController_Submit_NotFound(t *testing.T) {
	c, mockClient := newTestController(t)

	mockClient.EXPECT().
		GetPokemon(gomock.Any(), "doesnotexist").
		Return(nil, errors.NotFound(errors.NotFoundMessage))

	wait(t, c.Submit(context.Background(), "doesnotexist"))

	state := c.Snapshot()
	assert.Equal(t, model.QueryPhaseFailed, state.Phase)
	assert.Equal(t, "Error: Not found (try another name/ID).", state.StatusMessage())
	assert.Nil(t, state.Record)
	assert.Nil(t, state.Image)
}

func TestController_Submit_FailureMessages(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"http status", errors.HTTPStatus(500), "HTTP 500"},
		{"network", errors.Network(context.DeadlineExceeded), "context deadline exceeded"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, mockClient := newTestController(t)
			mockClient.EXPECT().GetPokemon(gomock.Any(), "25").Return(nil, tc.err)

			wait(t, c.Submit(context.Background(), "25"))
			assert.Equal(t, tc.expected, c.Snapshot().Err)
		})
	}
}

func TestController_Submit_NoArtwork(t *testing.T) {
	c, mockClient := newTestController(t)

	// FetchImage is not expected: gomock fails the test if it is called
	mockClient.EXPECT().GetPokemon(gomock.Any(), "132").Return(&model.Record{ID: 132, Name: "ditto"}, nil)

	wait(t, c.Submit(context.Background(), "132"))

	state := c.Snapshot()
	assert.Equal(t, model.QueryPhaseLoaded, state.Phase)
	assert.False(t, state.HasImage())
	assert.Equal(t, "Loaded: #132 Ditto", state.StatusMessage())
}

func TestController_Submit_ImageFailureIsNotFatal(t *testing.T) {
	c, mockClient := newTestController(t)
	record := &model.Record{ID: 1, Name: "bulbasaur", ArtworkURL: "https://example.test/1.png"}

	mockClient.EXPECT().GetPokemon(gomock.Any(), "1").Return(record, nil)
	mockClient.EXPECT().
		FetchImage(gomock.Any(), record.ArtworkURL).
		Return(nil, errors.ImageDecode(nil, "sprite decode failed"))

	wait(t, c.Submit(context.Background(), "1"))

	state := c.Snapshot()
	assert.Equal(t, model.QueryPhaseLoaded, state.Phase)
	assert.Nil(t, state.Image)
	assert.Empty(t, state.Err)
}

func TestController_Submit_BlankIsNoop(t *testing.T) {
	c, _ := newTestController(t)
	updates := 0
	c.SetUpdateCallback(func(*model.QueryState) { updates++ })

	wait(t, c.Submit(context.Background(), "   "))

	assert.Equal(t, model.QueryPhaseIdle, c.Snapshot().Phase)
	assert.Equal(t, 0, updates)
}

func TestController_Submit_PublishesLoadingImmediately(t *testing.T) {
	c, mockClient := newTestController(t)
	gate := make(chan struct{})

	mockClient.EXPECT().
		GetPokemon(gomock.Any(), "pikachu").
		DoAndReturn(func(ctx context.Context, query string) (*model.Record, error) {
			<-gate
			return &model.Record{ID: 25, Name: "pikachu"}, nil
		})

	done := c.Submit(context.Background(), "Pikachu")

	state := c.Snapshot()
	assert.Equal(t, model.QueryPhaseLoading, state.Phase)
	assert.Equal(t, "Fetching \"pikachu\"…", state.StatusMessage())

	close(gate)
	wait(t, done)
	assert.Equal(t, model.QueryPhaseLoaded, c.Snapshot().Phase)
}

func TestController_Submit_DiscardsStaleCompletion(t *testing.T) {
	c, mockClient := newTestController(t)
	gate := make(chan struct{})

	mockClient.EXPECT().
		GetPokemon(gomock.Any(), "1").
		DoAndReturn(func(ctx context.Context, query string) (*model.Record, error) {
			<-gate
			return &model.Record{ID: 1, Name: "bulbasaur"}, nil
		})
	mockClient.EXPECT().GetPokemon(gomock.Any(), "4").Return(&model.Record{ID: 4, Name: "charmander"}, nil)

	var mu sync.Mutex
	var seen []string
	c.SetUpdateCallback(func(s *model.QueryState) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, s.StatusMessage())
	})

	first := c.Submit(context.Background(), "1")
	second := c.Submit(context.Background(), "4")
	wait(t, second)

	close(gate)
	wait(t, first)

	state := c.Snapshot()
	assert.Equal(t, uint64(2), state.Generation)
	assert.Equal(t, 4, state.Record.ID)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"Fetching \"1\"…",
		"Fetching \"4\"…",
		"Loaded: #4 Charmander",
	}, seen)
}

func TestController_RandomQueryID_UsesRoller(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, err := NewController(&Config{
		Client: pokeapimock.NewMockClient(ctrl),
		Roller: fixedRoller{value: 42},
	})
	require.NoError(t, err)

	assert.Equal(t, 42, c.RandomQueryID())
}

func TestController_RandomQueryID_FallsBackOnBadRoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	rollers := []Roller{
		fixedRoller{value: 0},
		fixedRoller{value: 999},
		fixedRoller{err: errors.Internal("dice jammed")},
	}

	for _, r := range rollers {
		c, err := NewController(&Config{Client: pokeapimock.NewMockClient(ctrl), Roller: r})
		require.NoError(t, err)

		id := c.RandomQueryID()
		assert.GreaterOrEqual(t, id, 1)
		assert.LessOrEqual(t, id, MaxRandomID)
	}
}

func TestDiceRoller_Range(t *testing.T) {
	var r DiceRoller
	for i := 0; i < 500; i++ {
		v, err := r.Roll(MaxRandomID)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, MaxRandomID)
	}

	_, err := r.Roll(0)
	assert.Error(t, err)
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"Pikachu", "pikachu"},
		{" 25\n", "25"},
	}

	for _, test := range tests {
		if got := NormalizeQuery(test.input); got != test.expected {
			t.Errorf("NormalizeQuery(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}
