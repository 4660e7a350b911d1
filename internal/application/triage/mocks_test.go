package triage

import (
	"context"

	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/domain/server"
	"inqboard/internal/infrastructure/analysis"
)

type mockInquiryRepo struct {
	saveFunc                    func(ctx context.Context, i *inquiry.Inquiry) error
	updateFunc                  func(ctx context.Context, i *inquiry.Inquiry) error
	deleteFunc                  func(ctx context.Context, id uint) error
	getByIDFunc                 func(ctx context.Context, id uint) (*inquiry.Inquiry, error)
	listFunc                    func(ctx context.Context, f inquiry.Filter) ([]*inquiry.Inquiry, int64, error)
	listOldestByStatusFunc      func(ctx context.Context, status vo.Status, limit, maxAttempts int) ([]*inquiry.Inquiry, error)
	updateStatusGuardedFunc     func(ctx context.Context, id uint, expected, next vo.Status) (bool, error)
	updateCategoryFunc          func(ctx context.Context, id uint, category vo.Category) error
	incrementViewCountFunc      func(ctx context.Context, id uint) error
	incrementTriageAttemptsFunc func(ctx context.Context, id uint) error
	resetTriageAttemptsFunc     func(ctx context.Context, id uint) error
}

func (m *mockInquiryRepo) Save(ctx context.Context, i *inquiry.Inquiry) error {
	return m.saveFunc(ctx, i)
}

func (m *mockInquiryRepo) Update(ctx context.Context, i *inquiry.Inquiry) error {
	return m.updateFunc(ctx, i)
}

func (m *mockInquiryRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockInquiryRepo) GetByID(ctx context.Context, id uint) (*inquiry.Inquiry, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockInquiryRepo) List(ctx context.Context, f inquiry.Filter) ([]*inquiry.Inquiry, int64, error) {
	return m.listFunc(ctx, f)
}

func (m *mockInquiryRepo) ListOldestByStatus(ctx context.Context, status vo.Status, limit, maxAttempts int) ([]*inquiry.Inquiry, error) {
	return m.listOldestByStatusFunc(ctx, status, limit, maxAttempts)
}

func (m *mockInquiryRepo) UpdateStatusGuarded(ctx context.Context, id uint, expected, next vo.Status) (bool, error) {
	return m.updateStatusGuardedFunc(ctx, id, expected, next)
}

func (m *mockInquiryRepo) UpdateCategory(ctx context.Context, id uint, category vo.Category) error {
	return m.updateCategoryFunc(ctx, id, category)
}

func (m *mockInquiryRepo) IncrementViewCount(ctx context.Context, id uint) error {
	return m.incrementViewCountFunc(ctx, id)
}

func (m *mockInquiryRepo) IncrementTriageAttempts(ctx context.Context, id uint) error {
	return m.incrementTriageAttemptsFunc(ctx, id)
}

func (m *mockInquiryRepo) ResetTriageAttempts(ctx context.Context, id uint) error {
	return m.resetTriageAttemptsFunc(ctx, id)
}

type mockProcessLogRepo struct {
	appendFunc             func(ctx context.Context, log *inquiry.ProcessLog) error
	listByInquiryIDFunc    func(ctx context.Context, inquiryID uint) ([]*inquiry.ProcessLog, error)
	latestFeedbackFunc     func(ctx context.Context, inquiryID uint) (*inquiry.ProcessLog, error)
	deleteLatestByStepFunc func(ctx context.Context, inquiryID uint, step vo.Status) error
	deleteByInquiryIDFunc  func(ctx context.Context, inquiryID uint) error
}

func (m *mockProcessLogRepo) Append(ctx context.Context, log *inquiry.ProcessLog) error {
	return m.appendFunc(ctx, log)
}

func (m *mockProcessLogRepo) ListByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.ProcessLog, error) {
	return m.listByInquiryIDFunc(ctx, inquiryID)
}

func (m *mockProcessLogRepo) LatestFeedback(ctx context.Context, inquiryID uint) (*inquiry.ProcessLog, error) {
	return m.latestFeedbackFunc(ctx, inquiryID)
}

func (m *mockProcessLogRepo) DeleteLatestByStep(ctx context.Context, inquiryID uint, step vo.Status) error {
	return m.deleteLatestByStepFunc(ctx, inquiryID, step)
}

func (m *mockProcessLogRepo) DeleteByInquiryID(ctx context.Context, inquiryID uint) error {
	return m.deleteByInquiryIDFunc(ctx, inquiryID)
}

type mockCommentRepo struct {
	saveFunc              func(ctx context.Context, c *inquiry.Comment) error
	updateFunc            func(ctx context.Context, c *inquiry.Comment) error
	deleteFunc            func(ctx context.Context, id uint) error
	getByIDFunc           func(ctx context.Context, id uint) (*inquiry.Comment, error)
	listByInquiryIDFunc   func(ctx context.Context, inquiryID uint) ([]*inquiry.Comment, error)
	deleteByInquiryIDFunc func(ctx context.Context, inquiryID uint) error
}

func (m *mockCommentRepo) Save(ctx context.Context, c *inquiry.Comment) error {
	return m.saveFunc(ctx, c)
}

func (m *mockCommentRepo) Update(ctx context.Context, c *inquiry.Comment) error {
	return m.updateFunc(ctx, c)
}

func (m *mockCommentRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id uint) (*inquiry.Comment, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockCommentRepo) ListByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.Comment, error) {
	return m.listByInquiryIDFunc(ctx, inquiryID)
}

func (m *mockCommentRepo) DeleteByInquiryID(ctx context.Context, inquiryID uint) error {
	return m.deleteByInquiryIDFunc(ctx, inquiryID)
}

type mockServerRepo struct {
	saveFunc          func(ctx context.Context, s *server.Server) error
	updateFunc        func(ctx context.Context, s *server.Server) error
	deleteFunc        func(ctx context.Context, id uint) error
	getByIDFunc       func(ctx context.Context, id uint) (*server.Server, error)
	getBySiteNameFunc func(ctx context.Context, siteName string) (*server.Server, error)
	listFunc          func(ctx context.Context, page, pageSize int) ([]*server.Server, int64, error)
}

func (m *mockServerRepo) Save(ctx context.Context, s *server.Server) error {
	return m.saveFunc(ctx, s)
}

func (m *mockServerRepo) Update(ctx context.Context, s *server.Server) error {
	return m.updateFunc(ctx, s)
}

func (m *mockServerRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockServerRepo) GetByID(ctx context.Context, id uint) (*server.Server, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockServerRepo) GetBySiteName(ctx context.Context, siteName string) (*server.Server, error) {
	return m.getBySiteNameFunc(ctx, siteName)
}

func (m *mockServerRepo) List(ctx context.Context, page, pageSize int) ([]*server.Server, int64, error) {
	return m.listFunc(ctx, page, pageSize)
}

type mockCollector struct {
	collectFunc func(ctx context.Context, srv *server.Server) map[string]string
}

func (m *mockCollector) Collect(ctx context.Context, srv *server.Server) map[string]string {
	return m.collectFunc(ctx, srv)
}

type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, req analysis.AnalyzeRequest) (string, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, req analysis.AnalyzeRequest) (string, error) {
	return m.analyzeFunc(ctx, req)
}

type mockNotifier struct {
	messages []string
}

func (m *mockNotifier) Notify(text string) bool {
	m.messages = append(m.messages, text)
	return true
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
