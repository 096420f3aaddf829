package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

type MockInventoryRepository struct {
	mock.Mock
}

func NewMockInventoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInventoryRepository {
	m := &MockInventoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockInventoryRepository) All() []*model.InventoryItem {
	args := m.Called()
	var r0 []*model.InventoryItem
	if v := args.Get(0); v != nil {
		r0 = v.([]*model.InventoryItem)
	}
	return r0
}

func (m *MockInventoryRepository) ByID(id string) (*model.InventoryItem, bool) {
	args := m.Called(id)
	var r0 *model.InventoryItem
	if v := args.Get(0); v != nil {
		r0 = v.(*model.InventoryItem)
	}
	return r0, args.Bool(1)
}

func (m *MockInventoryRepository) Upsert(item *model.InventoryItem) {
	m.Called(item)
}

func (m *MockInventoryRepository) Delete(id string) {
	m.Called(id)
}

func (m *MockInventoryRepository) RenameModelGroup(oldName, newName string) int {
	args := m.Called(oldName, newName)
	return args.Int(0)
}

func (m *MockInventoryRepository) ApplyUsage(parts []model.PartUsage) []*model.InventoryItem {
	args := m.Called(parts)
	var r0 []*model.InventoryItem
	if v := args.Get(0); v != nil {
		r0 = v.([]*model.InventoryItem)
	}
	return r0
}

func (m *MockInventoryRepository) ReplaceAll(items []*model.InventoryItem) {
	m.Called(items)
}
