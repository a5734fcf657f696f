package property

import (
	"context"
	"testing"

	"github.com/rentals/backend/internal/domain/property"
	"github.com/rentals/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPropertyRepository is a mock implementation of PropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id int64) (*property.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]property.Property, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]property.Property), args.Error(1)
}

func (m *MockPropertyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) FindIDByName(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockPropertyRepository) ListIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestProperty(t *testing.T, id int64) *property.Property {
	t.Helper()
	p, err := property.NewProperty(property.Details{
		Name:         "Casa Azul",
		Address:      "Calle Mayor 1",
		City:         "Cádiz",
		Country:      "España",
		NightlyPrice: decimal.NewFromInt(85),
		Capacity:     4,
		Description:  "Seafront house",
	})
	require.NoError(t, err)
	p.ID = id
	return p
}

func TestPropertyService_Create(t *testing.T) {
	ctx := context.Background()
	req := CreatePropertyRequest{
		Name:         " Casa Azul ",
		Address:      "Calle Mayor 1",
		City:         "Cádiz",
		Country:      "España",
		NightlyPrice: decimal.RequireFromString("85.50"),
		Capacity:     4,
		Description:  "Seafront house",
		Status:       "AVAILABLE",
	}

	t.Run("creates property", func(t *testing.T) {
		repo := new(MockPropertyRepository)
		svc := NewPropertyService(repo)

		repo.On("ExistsByName", ctx, "Casa Azul").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*property.Property")).Return(nil)

		resp, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "Casa Azul", resp.Name)
		assert.Equal(t, "disponible", resp.Status)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := new(MockPropertyRepository)
		svc := NewPropertyService(repo)

		repo.On("ExistsByName", ctx, "Casa Azul").Return(true, nil)

		_, err := svc.Create(ctx, req)

		assert.Equal(t, shared.KindAlreadyExists, shared.KindOf(err))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("zero price rejected", func(t *testing.T) {
		repo := new(MockPropertyRepository)
		svc := NewPropertyService(repo)

		bad := req
		bad.NightlyPrice = decimal.Zero
		_, err := svc.Create(ctx, bad)

		assert.True(t, shared.IsValidation(err))
	})
}

func TestPropertyService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		repo := new(MockPropertyRepository)
		svc := NewPropertyService(repo)

		capacity := 6
		repo.On("FindByID", ctx, int64(2)).Return(newTestProperty(t, 2), nil)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		resp, err := svc.Update(ctx, 2, UpdatePropertyRequest{Capacity: &capacity})

		require.NoError(t, err)
		assert.Equal(t, 6, resp.Capacity)
		assert.Equal(t, "Casa Azul", resp.Name)
		repo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything)
	})

	t.Run("rename to taken name", func(t *testing.T) {
		repo := new(MockPropertyRepository)
		svc := NewPropertyService(repo)

		name := "Villa Sol"
		repo.On("FindByID", ctx, int64(2)).Return(newTestProperty(t, 2), nil)
		repo.On("ExistsByName", ctx, name).Return(true, nil)

		_, err := svc.Update(ctx, 2, UpdatePropertyRequest{Name: &name})

		assert.Equal(t, shared.KindAlreadyExists, shared.KindOf(err))
	})

	t.Run("update by name", func(t *testing.T) {
		repo := new(MockPropertyRepository)
		svc := NewPropertyService(repo)

		status := "maintenance"
		repo.On("FindIDByName", ctx, "Casa Azul").Return(int64(2), nil)
		repo.On("FindByID", ctx, int64(2)).Return(newTestProperty(t, 2), nil)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		resp, err := svc.UpdateByName(ctx, "Casa Azul", UpdatePropertyRequest{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, "mantenimiento", resp.Status)
	})
}

func TestPropertyService_ChangeStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPropertyRepository)
	svc := NewPropertyService(repo)

	repo.On("FindByID", ctx, int64(2)).Return(newTestProperty(t, 2), nil)
	repo.On("Save", ctx, mock.Anything).Return(nil)

	resp, err := svc.ChangeStatus(ctx, 2, ChangeStatusRequest{Status: "OCUPADA"})
	require.NoError(t, err)
	assert.Equal(t, "ocupada", resp.Status)

	_, err = svc.ChangeStatus(ctx, 2, ChangeStatusRequest{Status: "demolished"})
	assert.True(t, shared.IsValidation(err))
}

func TestPropertyService_FindIDByName(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPropertyRepository)
	svc := NewPropertyService(repo)

	_, err := svc.FindIDByName(ctx, "   ")
	assert.True(t, shared.IsValidation(err))

	repo.On("FindIDByName", ctx, "Nowhere").Return(int64(0), shared.NewNotFoundError("Property not found"))
	_, err = svc.FindIDByName(ctx, "Nowhere")
	assert.True(t, shared.IsNotFound(err))
}

func TestPropertyService_DeleteByName(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		input     string
		setup     func(repo *MockPropertyRepository)
		wantErr   func(error) bool
		deletesID int64
	}{
		{
			name:  "deletes resolved id",
			input: "Casa Azul",
			setup: func(repo *MockPropertyRepository) {
				repo.On("FindIDByName", ctx, "Casa Azul").Return(int64(2), nil)
				repo.On("Delete", ctx, int64(2)).Return(nil)
			},
			deletesID: 2,
		},
		{
			name:    "blank name",
			input:   "  ",
			setup:   func(*MockPropertyRepository) {},
			wantErr: shared.IsValidation,
		},
		{
			name:  "unknown name",
			input: "Nowhere",
			setup: func(repo *MockPropertyRepository) {
				repo.On("FindIDByName", ctx, "Nowhere").Return(int64(0), shared.NewNotFoundError("Property not found"))
			},
			wantErr: shared.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockPropertyRepository)
			svc := NewPropertyService(repo)
			tt.setup(repo)

			err := svc.DeleteByName(ctx, tt.input)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			repo.AssertCalled(t, "Delete", ctx, tt.deletesID)
		})
	}
}

func TestPropertyService_ListIDs(t *testing.T) {
	ctx := context.Background()
	repo := new(MockPropertyRepository)
	svc := NewPropertyService(repo)

	repo.On("ListIDs", ctx).Return([]int64{1, 2, 5}, nil)

	ids, err := svc.ListIDs(ctx)

	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 5}, ids)
}
