package pendingcomponents

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"sentrybot/models"
)

// MockPendingComponentsService is a mock implementation of the
// PendingComponentsService interface
type MockPendingComponentsService struct {
	mock.Mock
}

func (m *MockPendingComponentsService) PutPendingComponent(
	ctx context.Context,
	component models.PendingComponent,
) error {
	args := m.Called(ctx, component)
	return args.Error(0)
}

func (m *MockPendingComponentsService) GetPendingComponent(
	ctx context.Context,
	id string,
) (mo.Option[models.PendingComponent], error) {
	args := m.Called(ctx, id)
	return args.Get(0).(mo.Option[models.PendingComponent]), args.Error(1)
}

func (m *MockPendingComponentsService) DeletePendingComponent(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
