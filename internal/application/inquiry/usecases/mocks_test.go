package usecases

import (
	"context"

	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/domain/user"
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

type mockAttachmentRepo struct {
	saveFunc              func(ctx context.Context, a *inquiry.Attachment) error
	deleteFunc            func(ctx context.Context, id uint) error
	getByIDFunc           func(ctx context.Context, id uint) (*inquiry.Attachment, error)
	listByInquiryIDFunc   func(ctx context.Context, inquiryID uint) ([]*inquiry.Attachment, error)
	deleteByInquiryIDFunc func(ctx context.Context, inquiryID uint) error
}

func (m *mockAttachmentRepo) Save(ctx context.Context, a *inquiry.Attachment) error {
	return m.saveFunc(ctx, a)
}

func (m *mockAttachmentRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockAttachmentRepo) GetByID(ctx context.Context, id uint) (*inquiry.Attachment, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockAttachmentRepo) ListByInquiryID(ctx context.Context, inquiryID uint) ([]*inquiry.Attachment, error) {
	return m.listByInquiryIDFunc(ctx, inquiryID)
}

func (m *mockAttachmentRepo) DeleteByInquiryID(ctx context.Context, inquiryID uint) error {
	return m.deleteByInquiryIDFunc(ctx, inquiryID)
}

type mockUserRepo struct {
	createFunc           func(ctx context.Context, u *user.User) error
	updateFunc           func(ctx context.Context, u *user.User) error
	deleteFunc           func(ctx context.Context, id uint) error
	getByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	getByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	existsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	listFunc             func(ctx context.Context, page, pageSize int) ([]*user.User, int64, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	return m.createFunc(ctx, u)
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	return m.updateFunc(ctx, u)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return m.getByUsernameFunc(ctx, username)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return m.existsByUsernameFunc(ctx, username)
}

func (m *mockUserRepo) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	return m.listFunc(ctx, page, pageSize)
}

type mockNotifier struct {
	messages []string
}

func (m *mockNotifier) Notify(text string) bool {
	m.messages = append(m.messages, text)
	return true
}

type mockAnswerer struct {
	answerFunc func(ctx context.Context, question string) (string, error)
}

func (m *mockAnswerer) Answer(ctx context.Context, question string) (string, error) {
	return m.answerFunc(ctx, question)
}

type mockFileRemover struct {
	removed []string
	err     error
}

func (m *mockFileRemover) Remove(storedPath string) error {
	m.removed = append(m.removed, storedPath)
	return m.err
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
