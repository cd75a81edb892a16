package mocks

import (
	"context"
	"reflect"

	"github.com/golang/mock/gomock"

	"github.com/appointedtime/pressroom/internal/domain"
)

// MockJobService is a mock of JobService interface
type MockJobService struct {
	ctrl     *gomock.Controller
	recorder *MockJobServiceMockRecorder
}

// MockJobServiceMockRecorder is the mock recorder for MockJobService
type MockJobServiceMockRecorder struct {
	mock *MockJobService
}

// NewMockJobService creates a new mock instance
func NewMockJobService(ctrl *gomock.Controller) *MockJobService {
	mock := &MockJobService{ctrl: ctrl}
	mock.recorder = &MockJobServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockJobService) EXPECT() *MockJobServiceMockRecorder {
	return m.recorder
}

// CreateJob mocks base method
func (m *MockJobService) CreateJob(ctx context.Context, job *domain.Job) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateJob", ctx, job)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateJob indicates an expected call of CreateJob
func (mr *MockJobServiceMockRecorder) CreateJob(ctx, job interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateJob", reflect.TypeOf((*MockJobService)(nil).CreateJob), ctx, job)
}

// GetJobByID mocks base method
func (m *MockJobService) GetJobByID(ctx context.Context, id string) (*domain.Job, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetJobByID", ctx, id)
	ret0, _ := ret[0].(*domain.Job)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetJobByID indicates an expected call of GetJobByID
func (mr *MockJobServiceMockRecorder) GetJobByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetJobByID", reflect.TypeOf((*MockJobService)(nil).GetJobByID), ctx, id)
}

// GetJobs mocks base method
func (m *MockJobService) GetJobs(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetJobs", ctx, filter)
	ret0, _ := ret[0].([]*domain.Job)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetJobs indicates an expected call of GetJobs
func (mr *MockJobServiceMockRecorder) GetJobs(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetJobs", reflect.TypeOf((*MockJobService)(nil).GetJobs), ctx, filter)
}

// UpdateJob mocks base method
func (m *MockJobService) UpdateJob(ctx context.Context, job *domain.Job) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateJob", ctx, job)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateJob indicates an expected call of UpdateJob
func (mr *MockJobServiceMockRecorder) UpdateJob(ctx, job interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateJob", reflect.TypeOf((*MockJobService)(nil).UpdateJob), ctx, job)
}

// DeleteJob mocks base method
func (m *MockJobService) DeleteJob(ctx context.Context, id string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteJob", ctx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeleteJob indicates an expected call of DeleteJob
func (mr *MockJobServiceMockRecorder) DeleteJob(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteJob", reflect.TypeOf((*MockJobService)(nil).DeleteJob), ctx, id)
}

// RevenueSummary mocks base method
func (m *MockJobService) RevenueSummary(ctx context.Context, filter domain.JobFilter) (*domain.RevenueSummary, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RevenueSummary", ctx, filter)
	ret0, _ := ret[0].(*domain.RevenueSummary)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RevenueSummary indicates an expected call of RevenueSummary
func (mr *MockJobServiceMockRecorder) RevenueSummary(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RevenueSummary", reflect.TypeOf((*MockJobService)(nil).RevenueSummary), ctx, filter)
}

// MockJobProcessService is a mock of JobProcessService interface
type MockJobProcessService struct {
	ctrl     *gomock.Controller
	recorder *MockJobProcessServiceMockRecorder
}

// MockJobProcessServiceMockRecorder is the mock recorder for MockJobProcessService
type MockJobProcessServiceMockRecorder struct {
	mock *MockJobProcessService
}

// NewMockJobProcessService creates a new mock instance
func NewMockJobProcessService(ctrl *gomock.Controller) *MockJobProcessService {
	mock := &MockJobProcessService{ctrl: ctrl}
	mock.recorder = &MockJobProcessServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockJobProcessService) EXPECT() *MockJobProcessServiceMockRecorder {
	return m.recorder
}

// CreateProcess mocks base method
func (m *MockJobProcessService) CreateProcess(ctx context.Context, process *domain.JobProcess) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateProcess", ctx, process)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateProcess indicates an expected call of CreateProcess
func (mr *MockJobProcessServiceMockRecorder) CreateProcess(ctx, process interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateProcess", reflect.TypeOf((*MockJobProcessService)(nil).CreateProcess), ctx, process)
}

// GetProcessesByJobID mocks base method
func (m *MockJobProcessService) GetProcessesByJobID(ctx context.Context, jobID string) ([]*domain.JobProcess, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProcessesByJobID", ctx, jobID)
	ret0, _ := ret[0].([]*domain.JobProcess)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProcessesByJobID indicates an expected call of GetProcessesByJobID
func (mr *MockJobProcessServiceMockRecorder) GetProcessesByJobID(ctx, jobID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProcessesByJobID", reflect.TypeOf((*MockJobProcessService)(nil).GetProcessesByJobID), ctx, jobID)
}

// MockMachineLoadService is a mock of MachineLoadService interface
type MockMachineLoadService struct {
	ctrl     *gomock.Controller
	recorder *MockMachineLoadServiceMockRecorder
}

// MockMachineLoadServiceMockRecorder is the mock recorder for MockMachineLoadService
type MockMachineLoadServiceMockRecorder struct {
	mock *MockMachineLoadService
}

// NewMockMachineLoadService creates a new mock instance
func NewMockMachineLoadService(ctrl *gomock.Controller) *MockMachineLoadService {
	mock := &MockMachineLoadService{ctrl: ctrl}
	mock.recorder = &MockMachineLoadServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockMachineLoadService) EXPECT() *MockMachineLoadServiceMockRecorder {
	return m.recorder
}

// CreateLoad mocks base method
func (m *MockMachineLoadService) CreateLoad(ctx context.Context, load *domain.MachineLoad) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateLoad", ctx, load)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateLoad indicates an expected call of CreateLoad
func (mr *MockMachineLoadServiceMockRecorder) CreateLoad(ctx, load interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateLoad", reflect.TypeOf((*MockMachineLoadService)(nil).CreateLoad), ctx, load)
}

// GetLoads mocks base method
func (m *MockMachineLoadService) GetLoads(ctx context.Context, filter domain.MachineLoadFilter) ([]*domain.MachineLoad, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetLoads", ctx, filter)
	ret0, _ := ret[0].([]*domain.MachineLoad)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetLoads indicates an expected call of GetLoads
func (mr *MockMachineLoadServiceMockRecorder) GetLoads(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetLoads", reflect.TypeOf((*MockMachineLoadService)(nil).GetLoads), ctx, filter)
}

// GetMachines mocks base method
func (m *MockMachineLoadService) GetMachines(ctx context.Context) []*domain.Machine {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMachines", ctx)
	ret0, _ := ret[0].([]*domain.Machine)
	return ret0
}

// GetMachines indicates an expected call of GetMachines
func (mr *MockMachineLoadServiceMockRecorder) GetMachines(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMachines", reflect.TypeOf((*MockMachineLoadService)(nil).GetMachines), ctx)
}

// MockPlannerService is a mock of PlannerService interface
type MockPlannerService struct {
	ctrl     *gomock.Controller
	recorder *MockPlannerServiceMockRecorder
}

// MockPlannerServiceMockRecorder is the mock recorder for MockPlannerService
type MockPlannerServiceMockRecorder struct {
	mock *MockPlannerService
}

// NewMockPlannerService creates a new mock instance
func NewMockPlannerService(ctrl *gomock.Controller) *MockPlannerService {
	mock := &MockPlannerService{ctrl: ctrl}
	mock.recorder = &MockPlannerServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockPlannerService) EXPECT() *MockPlannerServiceMockRecorder {
	return m.recorder
}

// PlanJob mocks base method
func (m *MockPlannerService) PlanJob(ctx context.Context, req *domain.PlanJobRequest) (*domain.JobPlan, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PlanJob", ctx, req)
	ret0, _ := ret[0].(*domain.JobPlan)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PlanJob indicates an expected call of PlanJob
func (mr *MockPlannerServiceMockRecorder) PlanJob(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PlanJob", reflect.TypeOf((*MockPlannerService)(nil).PlanJob), ctx, req)
}
