package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/Ckopin0130/PrintManage-sub000/internal/model"
)

type MockRecordRepository struct {
	mock.Mock
}

func NewMockRecordRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecordRepository {
	m := &MockRecordRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRecordRepository) All() []*model.RepairRecord {
	args := m.Called()
	var r0 []*model.RepairRecord
	if v := args.Get(0); v != nil {
		r0 = v.([]*model.RepairRecord)
	}
	return r0
}

func (m *MockRecordRepository) ByID(id string) (*model.RepairRecord, bool) {
	args := m.Called(id)
	var r0 *model.RepairRecord
	if v := args.Get(0); v != nil {
		r0 = v.(*model.RepairRecord)
	}
	return r0, args.Bool(1)
}

func (m *MockRecordRepository) Upsert(rec *model.RepairRecord) {
	m.Called(rec)
}

func (m *MockRecordRepository) Delete(id string) {
	m.Called(id)
}

func (m *MockRecordRepository) ReplaceAll(records []*model.RepairRecord) {
	m.Called(records)
}
