package mocks

import (
	"context"
	"database/sql"
	"reflect"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/appointedtime/pressroom/internal/domain"
)

// MockJobRepository is a mock of JobRepository interface
type MockJobRepository struct {
	ctrl     *gomock.Controller
	recorder *MockJobRepositoryMockRecorder
}

// MockJobRepositoryMockRecorder is the mock recorder for MockJobRepository
type MockJobRepositoryMockRecorder struct {
	mock *MockJobRepository
}

// NewMockJobRepository creates a new mock instance
func NewMockJobRepository(ctrl *gomock.Controller) *MockJobRepository {
	mock := &MockJobRepository{ctrl: ctrl}
	mock.recorder = &MockJobRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockJobRepository) EXPECT() *MockJobRepositoryMockRecorder {
	return m.recorder
}

// WithTransaction mocks base method
func (m *MockJobRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithTransaction", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithTransaction indicates an expected call of WithTransaction
func (mr *MockJobRepositoryMockRecorder) WithTransaction(ctx, fn interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithTransaction", reflect.TypeOf((*MockJobRepository)(nil).WithTransaction), ctx, fn)
}

// CreateJob mocks base method
func (m *MockJobRepository) CreateJob(ctx context.Context, job *domain.Job) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateJob", ctx, job)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateJob indicates an expected call of CreateJob
func (mr *MockJobRepositoryMockRecorder) CreateJob(ctx, job interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateJob", reflect.TypeOf((*MockJobRepository)(nil).CreateJob), ctx, job)
}

// CreateJobTx mocks base method
func (m *MockJobRepository) CreateJobTx(ctx context.Context, tx *sql.Tx, job *domain.Job) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateJobTx", ctx, tx, job)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateJobTx indicates an expected call of CreateJobTx
func (mr *MockJobRepositoryMockRecorder) CreateJobTx(ctx, tx, job interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateJobTx", reflect.TypeOf((*MockJobRepository)(nil).CreateJobTx), ctx, tx, job)
}

// GetJobByID mocks base method
func (m *MockJobRepository) GetJobByID(ctx context.Context, id string) (*domain.Job, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetJobByID", ctx, id)
	ret0, _ := ret[0].(*domain.Job)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetJobByID indicates an expected call of GetJobByID
func (mr *MockJobRepositoryMockRecorder) GetJobByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetJobByID", reflect.TypeOf((*MockJobRepository)(nil).GetJobByID), ctx, id)
}

// GetJobs mocks base method
func (m *MockJobRepository) GetJobs(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetJobs", ctx, filter)
	ret0, _ := ret[0].([]*domain.Job)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetJobs indicates an expected call of GetJobs
func (mr *MockJobRepositoryMockRecorder) GetJobs(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetJobs", reflect.TypeOf((*MockJobRepository)(nil).GetJobs), ctx, filter)
}

// UpdateJob mocks base method
func (m *MockJobRepository) UpdateJob(ctx context.Context, job *domain.Job) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateJob", ctx, job)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateJob indicates an expected call of UpdateJob
func (mr *MockJobRepositoryMockRecorder) UpdateJob(ctx, job interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateJob", reflect.TypeOf((*MockJobRepository)(nil).UpdateJob), ctx, job)
}

// DeleteJob mocks base method
func (m *MockJobRepository) DeleteJob(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteJob", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteJob indicates an expected call of DeleteJob
func (mr *MockJobRepositoryMockRecorder) DeleteJob(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteJob", reflect.TypeOf((*MockJobRepository)(nil).DeleteJob), ctx, id)
}

// RevenueBySalesRep mocks base method
func (m *MockJobRepository) RevenueBySalesRep(ctx context.Context, filter domain.JobFilter) ([]*domain.SalesRepRevenue, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RevenueBySalesRep", ctx, filter)
	ret0, _ := ret[0].([]*domain.SalesRepRevenue)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RevenueBySalesRep indicates an expected call of RevenueBySalesRep
func (mr *MockJobRepositoryMockRecorder) RevenueBySalesRep(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RevenueBySalesRep", reflect.TypeOf((*MockJobRepository)(nil).RevenueBySalesRep), ctx, filter)
}

// MockJobProcessRepository is a mock of JobProcessRepository interface
type MockJobProcessRepository struct {
	ctrl     *gomock.Controller
	recorder *MockJobProcessRepositoryMockRecorder
}

// MockJobProcessRepositoryMockRecorder is the mock recorder for MockJobProcessRepository
type MockJobProcessRepositoryMockRecorder struct {
	mock *MockJobProcessRepository
}

// NewMockJobProcessRepository creates a new mock instance
func NewMockJobProcessRepository(ctrl *gomock.Controller) *MockJobProcessRepository {
	mock := &MockJobProcessRepository{ctrl: ctrl}
	mock.recorder = &MockJobProcessRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockJobProcessRepository) EXPECT() *MockJobProcessRepositoryMockRecorder {
	return m.recorder
}

// CreateProcess mocks base method
func (m *MockJobProcessRepository) CreateProcess(ctx context.Context, process *domain.JobProcess) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateProcess", ctx, process)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateProcess indicates an expected call of CreateProcess
func (mr *MockJobProcessRepositoryMockRecorder) CreateProcess(ctx, process interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateProcess", reflect.TypeOf((*MockJobProcessRepository)(nil).CreateProcess), ctx, process)
}

// CreateProcessTx mocks base method
func (m *MockJobProcessRepository) CreateProcessTx(ctx context.Context, tx *sql.Tx, process *domain.JobProcess) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateProcessTx", ctx, tx, process)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateProcessTx indicates an expected call of CreateProcessTx
func (mr *MockJobProcessRepositoryMockRecorder) CreateProcessTx(ctx, tx, process interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateProcessTx", reflect.TypeOf((*MockJobProcessRepository)(nil).CreateProcessTx), ctx, tx, process)
}

// GetProcessesByJobID mocks base method
func (m *MockJobProcessRepository) GetProcessesByJobID(ctx context.Context, jobID string) ([]*domain.JobProcess, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProcessesByJobID", ctx, jobID)
	ret0, _ := ret[0].([]*domain.JobProcess)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProcessesByJobID indicates an expected call of GetProcessesByJobID
func (mr *MockJobProcessRepositoryMockRecorder) GetProcessesByJobID(ctx, jobID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProcessesByJobID", reflect.TypeOf((*MockJobProcessRepository)(nil).GetProcessesByJobID), ctx, jobID)
}

// MockMachineLoadRepository is a mock of MachineLoadRepository interface
type MockMachineLoadRepository struct {
	ctrl     *gomock.Controller
	recorder *MockMachineLoadRepositoryMockRecorder
}

// MockMachineLoadRepositoryMockRecorder is the mock recorder for MockMachineLoadRepository
type MockMachineLoadRepositoryMockRecorder struct {
	mock *MockMachineLoadRepository
}

// NewMockMachineLoadRepository creates a new mock instance
func NewMockMachineLoadRepository(ctrl *gomock.Controller) *MockMachineLoadRepository {
	mock := &MockMachineLoadRepository{ctrl: ctrl}
	mock.recorder = &MockMachineLoadRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockMachineLoadRepository) EXPECT() *MockMachineLoadRepositoryMockRecorder {
	return m.recorder
}

// CreateLoad mocks base method
func (m *MockMachineLoadRepository) CreateLoad(ctx context.Context, load *domain.MachineLoad) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateLoad", ctx, load)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateLoad indicates an expected call of CreateLoad
func (mr *MockMachineLoadRepositoryMockRecorder) CreateLoad(ctx, load interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateLoad", reflect.TypeOf((*MockMachineLoadRepository)(nil).CreateLoad), ctx, load)
}

// CreateLoadTx mocks base method
func (m *MockMachineLoadRepository) CreateLoadTx(ctx context.Context, tx *sql.Tx, load *domain.MachineLoad) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateLoadTx", ctx, tx, load)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateLoadTx indicates an expected call of CreateLoadTx
func (mr *MockMachineLoadRepositoryMockRecorder) CreateLoadTx(ctx, tx, load interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateLoadTx", reflect.TypeOf((*MockMachineLoadRepository)(nil).CreateLoadTx), ctx, tx, load)
}

// GetLoads mocks base method
func (m *MockMachineLoadRepository) GetLoads(ctx context.Context, filter domain.MachineLoadFilter) ([]*domain.MachineLoad, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLoads", ctx, filter)
	ret0, _ := ret[0].([]*domain.MachineLoad)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLoads indicates an expected call of GetLoads
func (mr *MockMachineLoadRepositoryMockRecorder) GetLoads(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLoads", reflect.TypeOf((*MockMachineLoadRepository)(nil).GetLoads), ctx, filter)
}

// LastFinishTime mocks base method
func (m *MockMachineLoadRepository) LastFinishTime(ctx context.Context, machineName string) (*time.Time, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastFinishTime", ctx, machineName)
	ret0, _ := ret[0].(*time.Time)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LastFinishTime indicates an expected call of LastFinishTime
func (mr *MockMachineLoadRepositoryMockRecorder) LastFinishTime(ctx, machineName interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastFinishTime", reflect.TypeOf((*MockMachineLoadRepository)(nil).LastFinishTime), ctx, machineName)
}
