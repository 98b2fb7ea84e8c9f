package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodLogRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteFoodLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	f := testutil.NewTestFoodLog(testDay.Add(12*time.Hour), "Chicken and rice",
		testutil.WithSource(domain.FoodSourceAIPhoto),
		testutil.WithItems(
			domain.FoodItem{Name: "Chicken breast", Quantity: "150 g", Macros: domain.Macros{Calories: 250, ProteinG: 46, FatG: 5}},
			domain.FoodItem{Name: "Rice", Quantity: "1 cup", Macros: domain.Macros{Calories: 205, ProteinG: 4, CarbsG: 45}},
		))
	f.PhotoPath = "/tmp/lunch.jpg"
	require.NoError(t, repo.Create(ctx, f))

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chicken and rice", got.Description)
	assert.Equal(t, domain.FoodSourceAIPhoto, got.Source)
	assert.Equal(t, "/tmp/lunch.jpg", got.PhotoPath)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Rice", got.Items[1].Name)
	assert.InDelta(t, 455.0, got.Total.Calories, 0.001)
	assert.InDelta(t, 50.0, got.Total.ProteinG, 0.001)
}

func TestFoodLogRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteFoodLogRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFoodLogRepo_ListBetween(t *testing.T) {
	repo := NewSQLiteFoodLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	breakfast := testutil.NewTestFoodLog(testDay.Add(8*time.Hour), "Oats",
		testutil.WithItems(domain.FoodItem{Name: "Oats", Macros: domain.Macros{Calories: 300}}))
	dinner := testutil.NewTestFoodLog(testDay.Add(19*time.Hour), "Pasta")
	yesterday := testutil.NewTestFoodLog(testDay.Add(-2*time.Hour), "Snack")
	for _, f := range []*domain.FoodLog{dinner, yesterday, breakfast} {
		require.NoError(t, repo.Create(ctx, f))
	}

	got, err := repo.ListBetween(ctx, testutil.TestUserID, testDay, testDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, breakfast.ID, got[0].ID)
	assert.Len(t, got[0].Items, 1)
	assert.Equal(t, dinner.ID, got[1].ID)
	assert.Empty(t, got[1].Items)

	none, err := repo.ListBetween(ctx, "other", testDay, testDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFoodLogRepo_Delete(t *testing.T) {
	repo := NewSQLiteFoodLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	f := testutil.NewTestFoodLog(testDay, "Apple", testutil.WithItems(domain.FoodItem{Name: "Apple"}))
	require.NoError(t, repo.Create(ctx, f))
	require.NoError(t, repo.Delete(ctx, f.ID))

	_, err := repo.GetByID(ctx, f.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, f.ID), ErrNotFound)
}

func TestFoodLogRepo_DefaultsSourceToManual(t *testing.T) {
	repo := NewSQLiteFoodLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	f := testutil.NewTestFoodLog(testDay, "Banana")
	f.Source = ""
	require.NoError(t, repo.Create(ctx, f))

	got, err := repo.GetByID(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FoodSourceManual, got.Source)
}

func TestFoodLogRepo_RoundTripsGeneratedLogs(t *testing.T) {
	repo := NewSQLiteFoodLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	faker := gofakeit.New(42)

	want := map[string]*domain.FoodLog{}
	for i := 0; i < 20; i++ {
		items := make([]domain.FoodItem, faker.Number(0, 4))
		for j := range items {
			items[j] = domain.FoodItem{
				Name:     faker.Fruit(),
				Quantity: fmt.Sprintf("%d g", faker.Number(10, 400)),
				Macros: domain.Macros{
					Calories: faker.Float64Range(0, 900),
					ProteinG: faker.Float64Range(0, 60),
					CarbsG:   faker.Float64Range(0, 120),
					FatG:     faker.Float64Range(0, 50),
				},
			}
		}
		f := testutil.NewTestFoodLog(testDay.Add(time.Duration(i)*time.Hour), faker.Lunch(),
			testutil.WithItems(items...))
		require.NoError(t, repo.Create(ctx, f))
		want[f.ID] = f
	}

	got, err := repo.ListBetween(ctx, testutil.TestUserID, testDay, testDay.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, got, 20)
	for i, g := range got {
		w := want[g.ID]
		require.NotNil(t, w)
		if i > 0 {
			assert.False(t, g.LoggedAt.Before(got[i-1].LoggedAt), "ordered by time")
		}
		assert.Equal(t, w.Description, g.Description)
		require.Len(t, g.Items, len(w.Items))
		for j := range w.Items {
			assert.Equal(t, w.Items[j].Name, g.Items[j].Name)
			assert.Equal(t, w.Items[j].Quantity, g.Items[j].Quantity)
			assert.InDelta(t, w.Items[j].Calories, g.Items[j].Calories, 1e-9)
		}
		assert.InDelta(t, w.Total.FatG, g.Total.FatG, 1e-9)
	}
}
