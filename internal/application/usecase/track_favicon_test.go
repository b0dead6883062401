package usecase_test

import (
	"context"
	"errors"
	"image"
	"math/rand"
	"testing"

	"github.com/bnema/tabicon/internal/application/port"
	portmocks "github.com/bnema/tabicon/internal/application/port/mocks"
	"github.com/bnema/tabicon/internal/application/usecase"
	"github.com/bnema/tabicon/internal/domain/favicon"
	"github.com/bnema/tabicon/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const idealSize = 16

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// squareScaler returns a blank raster of the requested size.
type squareScaler struct {
	calls int
}

func (s *squareScaler) Scale(_ context.Context, _ image.Image, width, height int) (image.Image, error) {
	s.calls++
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

type recordingNotifier struct {
	icons []image.Image
}

func (n *recordingNotifier) NotifyFaviconUpdated(_ context.Context, icon image.Image) {
	n.icons = append(n.icons, icon)
}

type countingMetrics struct {
	counts map[port.CandidateOutcome]int
}

func (m *countingMetrics) RecordCandidate(outcome port.CandidateOutcome) {
	if m.counts == nil {
		m.counts = make(map[port.CandidateOutcome]int)
	}
	m.counts[outcome]++
}

func icon(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func newTracker(t *testing.T) (*usecase.FaviconTracker, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	tracker, err := usecase.NewFaviconTracker(idealSize, &squareScaler{}, notifier)
	require.NoError(t, err)
	return tracker, notifier
}

func offer(ctx context.Context, tr *usecase.FaviconTracker, w, h int, url string) {
	tr.OnCandidate(ctx, icon(w, h), w, h, url)
}

func heldSource(t *testing.T, tr *usecase.FaviconTracker) favicon.Size {
	t.Helper()
	held, ok := tr.Held()
	require.True(t, ok, "expected a held favicon")
	return held.Source
}

func TestNewFaviconTracker_RejectsInvalidIdealSize(t *testing.T) {
	_, err := usecase.NewFaviconTracker(0, &squareScaler{}, nil)
	require.ErrorIs(t, err, usecase.ErrInvalidIdealSize)

	_, err = usecase.NewFaviconTracker(-3, &squareScaler{}, nil)
	require.ErrorIs(t, err, usecase.ErrInvalidIdealSize)
}

func TestNewFaviconTracker_RequiresScaler(t *testing.T) {
	_, err := usecase.NewFaviconTracker(idealSize, nil, nil)
	require.Error(t, err)
}

func TestFaviconTracker_FirstCandidateKept(t *testing.T) {
	ctx := testContext()
	tr, notifier := newTracker(t)
	assert.Equal(t, usecase.TrackerEmpty, tr.State())

	offer(ctx, tr, 10, 10, "A")

	held, ok := tr.Held()
	require.True(t, ok)
	assert.Equal(t, usecase.TrackerHolding, tr.State())
	assert.Equal(t, favicon.Size{Width: 10, Height: 10}, held.Source)
	assert.Equal(t, "A", held.SourceURL)
	assert.Equal(t, favicon.Size{Width: idealSize, Height: idealSize}, favicon.SizeOf(held.Image))

	current := tr.Current("A", false, true)
	require.NotNil(t, current)
	assert.Same(t, held.Image, current)
	assert.Len(t, notifier.icons, 1)
}

func TestFaviconTracker_SquareBeatsRectangle(t *testing.T) {
	ctx := testContext()
	tr, _ := newTracker(t)

	offer(ctx, tr, 10, 10, "A")
	offer(ctx, tr, 12, 8, "A")
	assert.Equal(t, favicon.Size{Width: 10, Height: 10}, heldSource(t, tr))

	offer(ctx, tr, 12, 12, "A")
	assert.Equal(t, favicon.Size{Width: 12, Height: 12}, heldSource(t, tr))
}

func TestFaviconTracker_NonSquareReplacedBySquare(t *testing.T) {
	ctx := testContext()
	tr, _ := newTracker(t)

	offer(ctx, tr, 12, 8, "A")
	offer(ctx, tr, 4, 4, "A")
	assert.Equal(t, favicon.Size{Width: 4, Height: 4}, heldSource(t, tr))
}

func TestFaviconTracker_IdealExactMatchWins(t *testing.T) {
	ctx := testContext()
	tr, _ := newTracker(t)

	offer(ctx, tr, 32, 32, "A")
	offer(ctx, tr, 16, 16, "A")
	assert.Equal(t, favicon.Size{Width: 16, Height: 16}, heldSource(t, tr))

	offer(ctx, tr, 20, 20, "A")
	assert.Equal(t, favicon.Size{Width: 16, Height: 16}, heldSource(t, tr))
}

func TestFaviconTracker_MonotoneGrowth(t *testing.T) {
	ctx := testContext()
	tr, notifier := newTracker(t)

	steps := []struct {
		w, h int
		want favicon.Size
	}{
		{8, 8, favicon.Size{Width: 8, Height: 8}},
		{12, 12, favicon.Size{Width: 12, Height: 12}},
		{20, 10, favicon.Size{Width: 12, Height: 12}},
		{20, 20, favicon.Size{Width: 20, Height: 20}},
	}
	for _, s := range steps {
		offer(ctx, tr, s.w, s.h, "A")
		assert.Equal(t, s.want, heldSource(t, tr), "after %dx%d", s.w, s.h)
	}

	// Rejected candidates are broadcast too.
	assert.Len(t, notifier.icons, len(steps))
}

func TestFaviconTracker_URLChangeAlwaysWins(t *testing.T) {
	ctx := testContext()
	tr, _ := newTracker(t)

	offer(ctx, tr, 16, 16, "A")
	offer(ctx, tr, 4, 3, "B")

	held, ok := tr.Held()
	require.True(t, ok)
	assert.Equal(t, favicon.Size{Width: 4, Height: 3}, held.Source)
	assert.Equal(t, "B", held.SourceURL)
}

func TestFaviconTracker_CurrentSuppressesStale(t *testing.T) {
	ctx := testContext()
	tr, _ := newTracker(t)

	assert.Nil(t, tr.Current("A", false, true), "nothing held")

	offer(ctx, tr, 10, 10, "A")

	assert.NotNil(t, tr.Current("A", false, true))
	assert.Nil(t, tr.Current("B", false, true), "other url")
	assert.Nil(t, tr.Current("A", true, true), "native page")
	assert.Nil(t, tr.Current("A", false, false), "no content")
}

func TestFaviconTracker_IdealSizeOne(t *testing.T) {
	ctx := testContext()
	tr, err := usecase.NewFaviconTracker(1, &squareScaler{}, nil)
	require.NoError(t, err)

	offer(ctx, tr, 64, 64, "A")
	offer(ctx, tr, 1, 1, "A")
	assert.Equal(t, favicon.Size{Width: 1, Height: 1}, heldSource(t, tr))
}

func TestFaviconTracker_BoundaryBehaviors(t *testing.T) {
	tests := []struct {
		name string
		next favicon.Size
		want favicon.Size
	}{
		{"equal dimensions not better", favicon.Size{Width: 10, Height: 8}, favicon.Size{Width: 10, Height: 8}},
		{"larger in both axes", favicon.Size{Width: 12, Height: 9}, favicon.Size{Width: 12, Height: 9}},
		{"larger width equal height", favicon.Size{Width: 12, Height: 8}, favicon.Size{Width: 12, Height: 8}},
		{"equal width larger height", favicon.Size{Width: 10, Height: 9}, favicon.Size{Width: 10, Height: 9}},
		{"larger width smaller height", favicon.Size{Width: 12, Height: 7}, favicon.Size{Width: 10, Height: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			tr, _ := newTracker(t)

			offer(ctx, tr, 10, 8, "A")
			offer(ctx, tr, tt.next.Width, tt.next.Height, "A")
			assert.Equal(t, tt.want, heldSource(t, tr))
		})
	}
}

func TestFaviconTracker_RepeatedCandidateIsIdempotent(t *testing.T) {
	ctx := testContext()
	scaler := &squareScaler{}
	tr, err := usecase.NewFaviconTracker(idealSize, scaler, nil)
	require.NoError(t, err)

	img := icon(12, 9)
	tr.OnCandidate(ctx, img, 12, 9, "A")
	first, _ := tr.Held()

	tr.OnCandidate(ctx, img, 12, 9, "A")
	second, _ := tr.Held()

	assert.Equal(t, first, second)
	assert.Equal(t, 1, scaler.calls)
}

func TestFaviconTracker_InvalidCandidatesIgnored(t *testing.T) {
	ctx := testContext()
	metrics := &countingMetrics{}
	notifier := &recordingNotifier{}
	tr, err := usecase.NewFaviconTracker(idealSize, &squareScaler{}, notifier, usecase.WithMetrics(metrics))
	require.NoError(t, err)

	tr.OnCandidate(ctx, nil, 16, 16, "A")
	tr.OnCandidate(ctx, icon(4, 4), 0, 4, "A")
	tr.OnCandidate(ctx, icon(4, 4), 4, -1, "A")

	_, ok := tr.Held()
	assert.False(t, ok)
	assert.Equal(t, usecase.TrackerEmpty, tr.State())
	assert.Empty(t, notifier.icons)
	assert.Equal(t, 3, metrics.counts[port.CandidateIgnored])
}

func TestFaviconTracker_RescaleFailureLeavesStateAndSkipsNotify(t *testing.T) {
	ctx := testContext()
	scaler := portmocks.NewMockImageScaler(t)
	notifier := &recordingNotifier{}
	metrics := &countingMetrics{}

	tr, err := usecase.NewFaviconTracker(idealSize, scaler, notifier, usecase.WithMetrics(metrics))
	require.NoError(t, err)

	scaler.EXPECT().Scale(mock.Anything, mock.Anything, idealSize, idealSize).
		Return(icon(idealSize, idealSize), nil).Once()
	offer(ctx, tr, 8, 8, "A")

	scaler.EXPECT().Scale(mock.Anything, mock.Anything, idealSize, idealSize).
		Return(nil, errors.New("backend unavailable")).Once()
	offer(ctx, tr, 12, 12, "A")

	assert.Equal(t, favicon.Size{Width: 8, Height: 8}, heldSource(t, tr))
	assert.Len(t, notifier.icons, 1)
	assert.Equal(t, 1, metrics.counts[port.CandidateKept])
	assert.Equal(t, 1, metrics.counts[port.CandidateRescaleFailed])
}

func TestFaviconTracker_RescaleWrongSizeTreatedAsFailure(t *testing.T) {
	ctx := testContext()
	scaler := portmocks.NewMockImageScaler(t)
	notifier := &recordingNotifier{}

	tr, err := usecase.NewFaviconTracker(idealSize, scaler, notifier)
	require.NoError(t, err)

	scaler.EXPECT().Scale(mock.Anything, mock.Anything, idealSize, idealSize).
		Return(icon(8, 8), nil).Once()
	offer(ctx, tr, 8, 8, "A")

	_, ok := tr.Held()
	assert.False(t, ok)
	assert.Empty(t, notifier.icons)
}

func TestFaviconTracker_NotifiesWithOriginalCandidate(t *testing.T) {
	ctx := testContext()
	tr, notifier := newTracker(t)

	img := icon(32, 24)
	tr.OnCandidate(ctx, img, 32, 24, "A")

	require.Len(t, notifier.icons, 1)
	assert.Same(t, img, notifier.icons[0])

	held, _ := tr.Held()
	assert.NotSame(t, img, held.Image)
}

func TestFaviconTracker_KeepHookSeesEveryKeep(t *testing.T) {
	ctx := testContext()
	var kept []favicon.Held
	tr, err := usecase.NewFaviconTracker(idealSize, &squareScaler{}, nil,
		usecase.WithKeepHook(func(_ context.Context, held favicon.Held) {
			kept = append(kept, held)
		}),
	)
	require.NoError(t, err)

	offer(ctx, tr, 8, 8, "A")
	offer(ctx, tr, 4, 4, "A")
	offer(ctx, tr, 16, 16, "A")

	require.Len(t, kept, 2)
	assert.Equal(t, favicon.Size{Width: 8, Height: 8}, kept[0].Source)
	assert.Equal(t, favicon.Size{Width: 16, Height: 16}, kept[1].Source)
}

func TestFaviconTracker_Destroy(t *testing.T) {
	ctx := testContext()
	tr, notifier := newTracker(t)

	offer(ctx, tr, 10, 10, "A")
	tr.Destroy()

	assert.Equal(t, usecase.TrackerDead, tr.State())
	assert.Nil(t, tr.Current("A", false, true))
	_, ok := tr.Held()
	assert.False(t, ok)

	offer(ctx, tr, 16, 16, "A")
	assert.Equal(t, usecase.TrackerDead, tr.State())
	assert.Len(t, notifier.icons, 1)
}

func TestTrackerState_String(t *testing.T) {
	assert.Equal(t, "empty", usecase.TrackerEmpty.String())
	assert.Equal(t, "holding", usecase.TrackerHolding.String())
	assert.Equal(t, "dead", usecase.TrackerDead.String())
	assert.Equal(t, "unknown", usecase.TrackerState(42).String())
}

// Random streams under one URL must keep the held raster at ideal size,
// never trade a square source for a non-square one, and never replace a
// sufficient square source with anything but an exact match.
func TestFaviconTracker_RandomStreamInvariants(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(1))

	for run := 0; run < 200; run++ {
		tr, _ := newTracker(t)
		for i := 0; i < 30; i++ {
			prev, hadPrev := tr.Held()

			w := 1 + rng.Intn(40)
			h := w
			if rng.Intn(2) == 0 {
				h = 1 + rng.Intn(40)
			}
			offer(ctx, tr, w, h, "A")

			held, ok := tr.Held()
			require.True(t, ok)
			require.Equal(t, favicon.Size{Width: idealSize, Height: idealSize}, favicon.SizeOf(held.Image))

			if !hadPrev {
				continue
			}
			if prev.Source.Square() {
				require.True(t, held.Source.Square(), "square source displaced by %dx%d", w, h)
			}
			if prev.Source.Square() && prev.Source.AtLeast(idealSize) && held.Source != prev.Source {
				require.Equal(t, favicon.Size{Width: idealSize, Height: idealSize}, held.Source)
			}
		}
	}
}
