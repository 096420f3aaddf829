package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

type MockCustomerRepository struct {
	mock.Mock
}

func NewMockCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCustomerRepository) All() []*model.Customer {
	args := m.Called()
	var r0 []*model.Customer
	if v := args.Get(0); v != nil {
		r0 = v.([]*model.Customer)
	}
	return r0
}

func (m *MockCustomerRepository) ByID(id string) (*model.Customer, bool) {
	args := m.Called(id)
	var r0 *model.Customer
	if v := args.Get(0); v != nil {
		r0 = v.(*model.Customer)
	}
	return r0, args.Bool(1)
}

func (m *MockCustomerRepository) Upsert(c *model.Customer) {
	m.Called(c)
}

func (m *MockCustomerRepository) Delete(id string) {
	m.Called(id)
}

func (m *MockCustomerRepository) ReplaceAll(customers []*model.Customer) {
	m.Called(customers)
}
