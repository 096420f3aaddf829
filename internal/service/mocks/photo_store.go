package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPhotoStore struct {
	mock.Mock
}

func NewMockPhotoStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPhotoStore {
	m := &MockPhotoStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPhotoStore) Save(ctx context.Context, path string, data []byte) (string, error) {
	args := m.Called(ctx, path, data)
	return args.String(0), args.Error(1)
}
