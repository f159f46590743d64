package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultService() *Service {
	return NewService(8, 18, 30)
}

func TestMonthGrid_February2024(t *testing.T) {
	// Февраль 2024: високосный, начинается в четверг
	grid, err := newDefaultService().MonthGrid(2024, 2)
	require.NoError(t, err)

	require.Len(t, grid.Days, 32) // 3 заглушки + 29 дней

	for i := 0; i < 3; i++ {
		assert.Nil(t, grid.Days[i])
	}
	for day := 1; day <= 29; day++ {
		require.NotNil(t, grid.Days[2+day])
		assert.Equal(t, day, *grid.Days[2+day])
	}
}

func TestMonthGrid_MonthStartingMonday(t *testing.T) {
	// Сентябрь 2025 начинается в понедельник - заглушек нет
	grid, err := newDefaultService().MonthGrid(2025, 9)
	require.NoError(t, err)

	require.Len(t, grid.Days, 30)
	require.NotNil(t, grid.Days[0])
	assert.Equal(t, 1, *grid.Days[0])
}

func TestMonthGrid_MonthStartingSunday(t *testing.T) {
	// Июнь 2025 начинается в воскресенье - 6 заглушек
	grid, err := newDefaultService().MonthGrid(2025, 6)
	require.NoError(t, err)

	require.Len(t, grid.Days, 36)
	for i := 0; i < 6; i++ {
		assert.Nil(t, grid.Days[i])
	}
	require.NotNil(t, grid.Days[6])
	assert.Equal(t, 1, *grid.Days[6])
}

func TestMonthGrid_DaysInMonth(t *testing.T) {
	svc := newDefaultService()

	cases := []struct {
		year  int
		month int
		days  int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 4, 30},
		{2025, 12, 31},
	}

	for _, tc := range cases {
		grid, err := svc.MonthGrid(tc.year, tc.month)
		require.NoError(t, err)

		count := 0
		for _, day := range grid.Days {
			if day != nil {
				count++
			}
		}
		assert.Equal(t, tc.days, count, "year=%d month=%d", tc.year, tc.month)

		// Последний элемент всегда последний день месяца
		last := grid.Days[len(grid.Days)-1]
		require.NotNil(t, last)
		assert.Equal(t, tc.days, *last)
	}
}

func TestMonthGrid_InvalidInput(t *testing.T) {
	svc := newDefaultService()

	_, err := svc.MonthGrid(2025, 0)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = svc.MonthGrid(2025, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = svc.MonthGrid(0, 5)
	assert.ErrorIs(t, err, ErrInvalidYear)
}

func TestDailySlots_Template(t *testing.T) {
	slots := newDefaultService().DailySlots()

	// Часы 8..18 включительно, шаг 30 минут
	require.Len(t, slots, 22)
	assert.Equal(t, "08:00", slots[0].String())
	assert.Equal(t, "18:30", slots[len(slots)-1].String())

	// Строго возрастающие, каждые 30 минут
	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].IsBefore(slots[i]))

		next, err := slots[i-1].AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, next, slots[i])
	}
}

func TestDailySlots_SameForEveryCall(t *testing.T) {
	svc := newDefaultService()
	assert.Equal(t, svc.DailySlots(), svc.DailySlots())
}

func TestIsBookableSlot(t *testing.T) {
	svc := newDefaultService()

	assert.True(t, svc.IsBookableSlot("08:00"))
	assert.True(t, svc.IsBookableSlot("18:30"))
	assert.False(t, svc.IsBookableSlot("07:30"))
	assert.False(t, svc.IsBookableSlot("19:00"))
	assert.False(t, svc.IsBookableSlot("09:15"))
}
