package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sahibus/models"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

// Четвертый рейс не добавляется: выбор остается прежним
func TestToggleIDLimit(t *testing.T) {
	ids := []string{}
	var changed bool
	for _, id := range []string{"a", "b", "c"} {
		ids, changed = ToggleID(ids, id)
		assert.True(t, changed)
	}

	ids, changed = ToggleID(ids, "d")
	assert.False(t, changed)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

// Повторное переключение убирает рейс: toggle обратим
func TestToggleIDRemove(t *testing.T) {
	ids, _ := ToggleID([]string{"a", "b", "c"}, "b")
	assert.Equal(t, []string{"a", "c"}, ids)

	ids, changed := ToggleID(ids, "b")
	assert.True(t, changed)
	assert.Equal(t, []string{"a", "c", "b"}, ids)
}

// После снятия одного из трех можно добавить другой
func TestToggleIDRemoveFreesSlot(t *testing.T) {
	ids, _ := ToggleID([]string{"a", "b", "c"}, "a")
	ids, changed := ToggleID(ids, "d")
	assert.True(t, changed)
	assert.Equal(t, []string{"b", "c", "d"}, ids)
}

func TestToggleIDDoesNotMutateInput(t *testing.T) {
	orig := []string{"a", "b"}
	_, _ = ToggleID(orig, "c")
	_, _ = ToggleID(orig, "a")
	assert.Equal(t, []string{"a", "b"}, orig)
}

// Сравнение выводится в порядке рейсов в выдаче, не в порядке выбора
func TestMaterializeComparisonOrder(t *testing.T) {
	trips := []models.Trip{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}

	result := MaterializeComparison(trips, []string{"d", "b"})
	assert.Equal(t, []string{"b", "d"}, tripIDs(result))

	// Неизвестные id молча пропускаются
	result = MaterializeComparison(trips, []string{"x", "c"})
	assert.Equal(t, []string{"c"}, tripIDs(result))
}

func TestCompareServiceToggleAndList(t *testing.T) {
	ctx := context.Background()
	cs := NewCompareService(testRedis(t))

	ids, err := cs.List(ctx, "dev1")
	assert.NoError(t, err)
	assert.Empty(t, ids)

	ids, changed, err := cs.Toggle(ctx, "dev1", "a")
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"a"}, ids)

	// Выбор сохраняется между чтениями
	ids, err = cs.List(ctx, "dev1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids)

	// Выбор другого устройства независим
	ids, err = cs.List(ctx, "dev2")
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestCompareServiceLimitPersisted(t *testing.T) {
	ctx := context.Background()
	cs := NewCompareService(testRedis(t))

	for _, id := range []string{"a", "b", "c"} {
		_, _, err := cs.Toggle(ctx, "dev1", id)
		assert.NoError(t, err)
	}

	ids, changed, err := cs.Toggle(ctx, "dev1", "d")
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestCompareServiceClear(t *testing.T) {
	ctx := context.Background()
	cs := NewCompareService(testRedis(t))

	_, _, err := cs.Toggle(ctx, "dev1", "a")
	assert.NoError(t, err)

	assert.NoError(t, cs.Clear(ctx, "dev1"))

	ids, err := cs.List(ctx, "dev1")
	assert.NoError(t, err)
	assert.Empty(t, ids)
}
