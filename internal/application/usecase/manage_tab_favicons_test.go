package usecase_test

import (
	"testing"

	"github.com/bnema/tabicon/internal/application/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManageTabFavicons_OpenIsLazyAndStable(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabFaviconsUseCase(&squareScaler{}, usecase.TabFaviconOptions{IdealSize: idealSize})
	tab := &fakeTab{id: "tab-1", url: "https://a.example/"}

	assert.Nil(t, uc.Get("tab-1"))

	first, err := uc.Open(ctx, tab)
	require.NoError(t, err)
	second, err := uc.Open(ctx, tab)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first, uc.Get("tab-1"))
	assert.Equal(t, 1, uc.Count())
}

func TestManageTabFavicons_CloseDestroys(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabFaviconsUseCase(&squareScaler{}, usecase.TabFaviconOptions{IdealSize: idealSize})

	tf, err := uc.Open(ctx, &fakeTab{id: "tab-1", url: "https://a.example/"})
	require.NoError(t, err)

	assert.True(t, uc.Close(ctx, "tab-1"))
	assert.False(t, uc.Close(ctx, "tab-1"))
	assert.Equal(t, usecase.TrackerDead, tf.Tracker().State())
	assert.Nil(t, uc.Get("tab-1"))
}

func TestManageTabFavicons_CloseAll(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabFaviconsUseCase(&squareScaler{}, usecase.TabFaviconOptions{IdealSize: idealSize})

	a, err := uc.Open(ctx, &fakeTab{id: "a"})
	require.NoError(t, err)
	b, err := uc.Open(ctx, &fakeTab{id: "b"})
	require.NoError(t, err)

	uc.CloseAll(ctx)

	assert.Equal(t, 0, uc.Count())
	assert.Equal(t, usecase.TrackerDead, a.Tracker().State())
	assert.Equal(t, usecase.TrackerDead, b.Tracker().State())
}

func TestManageTabFavicons_SetIdealSizeOnlyAffectsNewTabs(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageTabFaviconsUseCase(&squareScaler{}, usecase.TabFaviconOptions{IdealSize: 16})

	before, err := uc.Open(ctx, &fakeTab{id: "before"})
	require.NoError(t, err)

	uc.SetIdealSize(32)
	uc.SetIdealSize(0)
	assert.Equal(t, 32, uc.IdealSize())

	after, err := uc.Open(ctx, &fakeTab{id: "after"})
	require.NoError(t, err)

	assert.Equal(t, 16, before.Tracker().IdealSize())
	assert.Equal(t, 32, after.Tracker().IdealSize())
}
