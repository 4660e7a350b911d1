package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inqboard/internal/application/workflow"
	"inqboard/internal/domain/inquiry"
	vo "inqboard/internal/domain/inquiry/valueobjects"
	"inqboard/internal/domain/user"
	"inqboard/internal/shared/errors"
	"inqboard/internal/shared/logger"
)

func fixtureInquiry(t *testing.T, id uint, status vo.Status, authorID uint) *inquiry.Inquiry {
	t.Helper()
	now := time.Now()
	inq, err := inquiry.ReconstructInquiry(
		id, "쇼핑몰 결제 오류", "결제 버튼을 누르면 500 에러가 발생합니다",
		vo.CategoryError, status, authorID, "김철수", "shop-a", 0, 0, now, now)
	require.NoError(t, err)
	return inq
}

func fixtureUser(t *testing.T, id uint, role string) *user.User {
	t.Helper()
	now := time.Now()
	u, err := user.ReconstructUser(id, "chulsoo", "$2a$10$hash", "김철수", role, "shop-a", true, now, now)
	require.NoError(t, err)
	return u
}

func TestCreateInquiry(t *testing.T) {
	t.Run("saves inquiry with registration log and alert", func(t *testing.T) {
		var saved *inquiry.Inquiry
		var logged *inquiry.ProcessLog
		inquiries := &mockInquiryRepo{
			saveFunc: func(_ context.Context, i *inquiry.Inquiry) error {
				saved = i
				return i.SetID(42)
			},
		}
		logs := &mockProcessLogRepo{
			appendFunc: func(_ context.Context, log *inquiry.ProcessLog) error {
				logged = log
				return log.SetID(1)
			},
		}
		users := &mockUserRepo{
			getByIDFunc: func(_ context.Context, id uint) (*user.User, error) {
				return fixtureUser(t, id, "user"), nil
			},
		}
		notifier := &mockNotifier{}

		uc := NewCreateInquiryUseCase(inquiries, logs, users, notifier, logger.NewLogger())
		result, err := uc.Execute(context.Background(), CreateInquiryCommand{
			Title:    "쇼핑몰 결제 오류",
			Content:  "결제 버튼을 누르면 500 에러가 발생합니다",
			Category: "오류",
			AuthorID: 7,
		})
		require.NoError(t, err)

		assert.Equal(t, uint(42), result.InquiryID)
		assert.Equal(t, "registered", result.Status)
		assert.Equal(t, "shop-a", saved.SiteTag())
		require.NotNil(t, logged)
		assert.Equal(t, vo.StatusRegistered, logged.Step())
		assert.Equal(t, "문의글이 등록되었습니다.", logged.Message())
		require.Len(t, notifier.messages, 1)
		assert.Contains(t, notifier.messages[0], "#42")
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		uc := NewCreateInquiryUseCase(&mockInquiryRepo{}, &mockProcessLogRepo{}, &mockUserRepo{}, &mockNotifier{}, logger.NewLogger())
		_, err := uc.Execute(context.Background(), CreateInquiryCommand{
			Title:    "제목",
			Content:  "내용",
			Category: "urgent",
			AuthorID: 7,
		})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestGetInquiry(t *testing.T) {
	t.Run("returns detail with comments and logs", func(t *testing.T) {
		viewCounted := false
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusPendingApproval, 7), nil
			},
			incrementViewCountFunc: func(_ context.Context, _ uint) error {
				viewCounted = true
				return nil
			},
		}
		comment, err := inquiry.NewSystemComment(42, "에단", "📊 AI 분석 결과\n\n분석 내용")
		require.NoError(t, err)
		comments := &mockCommentRepo{
			listByInquiryIDFunc: func(_ context.Context, _ uint) ([]*inquiry.Comment, error) {
				return []*inquiry.Comment{comment}, nil
			},
		}
		entry, err := inquiry.NewProcessLog(42, vo.StatusRegistered, "", "김철수")
		require.NoError(t, err)
		logs := &mockProcessLogRepo{
			listByInquiryIDFunc: func(_ context.Context, _ uint) ([]*inquiry.ProcessLog, error) {
				return []*inquiry.ProcessLog{entry}, nil
			},
		}

		uc := NewGetInquiryUseCase(inquiries, comments, logs, logger.NewLogger())
		dto, err := uc.Execute(context.Background(), GetInquiryQuery{InquiryID: 42, UserID: 7, UserRole: "user"})
		require.NoError(t, err)

		assert.True(t, viewCounted)
		require.Len(t, dto.Comments, 1)
		assert.True(t, dto.Comments[0].IsSystem)
		require.Len(t, dto.ProcessLogs, 1)
		assert.Equal(t, "registered", dto.ProcessLogs[0].Step)
	})

	t.Run("hides other users' inquiries", func(t *testing.T) {
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusRegistered, 7), nil
			},
		}

		uc := NewGetInquiryUseCase(inquiries, &mockCommentRepo{}, &mockProcessLogRepo{}, logger.NewLogger())
		_, err := uc.Execute(context.Background(), GetInquiryQuery{InquiryID: 42, UserID: 8, UserRole: "user"})
		assert.Equal(t, errors.ErrorTypeForbidden, errors.GetAppError(err).Type)
	})
}

func TestListInquiries(t *testing.T) {
	t.Run("scopes non-admins to their own inquiries", func(t *testing.T) {
		var seen inquiry.Filter
		inquiries := &mockInquiryRepo{
			listFunc: func(_ context.Context, f inquiry.Filter) ([]*inquiry.Inquiry, int64, error) {
				seen = f
				return []*inquiry.Inquiry{fixtureInquiry(t, 1, vo.StatusRegistered, 7)}, 1, nil
			},
		}

		uc := NewListInquiriesUseCase(inquiries, logger.NewLogger())
		result, err := uc.Execute(context.Background(), ListInquiriesQuery{UserID: 7, UserRole: "user"})
		require.NoError(t, err)

		require.NotNil(t, seen.AuthorID)
		assert.Equal(t, uint(7), *seen.AuthorID)
		assert.Equal(t, int64(1), result.Total)
	})

	t.Run("admins see everything", func(t *testing.T) {
		var seen inquiry.Filter
		inquiries := &mockInquiryRepo{
			listFunc: func(_ context.Context, f inquiry.Filter) ([]*inquiry.Inquiry, int64, error) {
				seen = f
				return nil, 0, nil
			},
		}

		uc := NewListInquiriesUseCase(inquiries, logger.NewLogger())
		_, err := uc.Execute(context.Background(), ListInquiriesQuery{
			Status:   "pending_approval",
			UserID:   1,
			UserRole: "admin",
		})
		require.NoError(t, err)

		assert.Nil(t, seen.AuthorID)
		require.NotNil(t, seen.Status)
		assert.Equal(t, vo.StatusPendingApproval, *seen.Status)
	})

	t.Run("rejects invalid status filter", func(t *testing.T) {
		uc := NewListInquiriesUseCase(&mockInquiryRepo{}, logger.NewLogger())
		_, err := uc.Execute(context.Background(), ListInquiriesQuery{Status: "unknown", UserRole: "admin"})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestUpdateInquiry(t *testing.T) {
	t.Run("author edits while registered", func(t *testing.T) {
		updated := false
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusRegistered, 7), nil
			},
			updateFunc: func(_ context.Context, i *inquiry.Inquiry) error {
				updated = true
				assert.Equal(t, "수정된 제목", i.Title())
				return nil
			},
		}

		uc := NewUpdateInquiryUseCase(inquiries, logger.NewLogger())
		dto, err := uc.Execute(context.Background(), UpdateInquiryCommand{
			InquiryID: 42,
			Title:     "수정된 제목",
			Content:   "수정된 내용",
			Category:  "긴급",
			UserID:    7,
			UserRole:  "user",
		})
		require.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, "긴급", dto.Category)
	})

	t.Run("author cannot edit once the pipeline picked it up", func(t *testing.T) {
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusAIReview, 7), nil
			},
		}

		uc := NewUpdateInquiryUseCase(inquiries, logger.NewLogger())
		_, err := uc.Execute(context.Background(), UpdateInquiryCommand{
			InquiryID: 42,
			Title:     "수정",
			Content:   "수정",
			UserID:    7,
			UserRole:  "user",
		})
		assert.Equal(t, errors.ErrorTypeForbidden, errors.GetAppError(err).Type)
	})
}

func TestDeleteInquiry(t *testing.T) {
	t.Run("cascades rows and removes files", func(t *testing.T) {
		deleted := map[string]bool{}
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusCompleted, 7), nil
			},
			deleteFunc: func(_ context.Context, _ uint) error {
				deleted["inquiry"] = true
				return nil
			},
		}
		comments := &mockCommentRepo{
			deleteByInquiryIDFunc: func(_ context.Context, _ uint) error {
				deleted["comments"] = true
				return nil
			},
		}
		logs := &mockProcessLogRepo{
			deleteByInquiryIDFunc: func(_ context.Context, _ uint) error {
				deleted["logs"] = true
				return nil
			},
		}
		attachment, err := inquiry.NewAttachment(42, "screenshot.png", "uploads/2026/08/abc123.png", 2048)
		require.NoError(t, err)
		attachments := &mockAttachmentRepo{
			listByInquiryIDFunc: func(_ context.Context, _ uint) ([]*inquiry.Attachment, error) {
				return []*inquiry.Attachment{attachment}, nil
			},
			deleteByInquiryIDFunc: func(_ context.Context, _ uint) error {
				deleted["attachments"] = true
				return nil
			},
		}
		files := &mockFileRemover{}

		uc := NewDeleteInquiryUseCase(inquiries, comments, logs, attachments, passthroughTx{}, files, logger.NewLogger())
		err = uc.Execute(context.Background(), DeleteInquiryCommand{InquiryID: 42, UserID: 1, UserRole: "admin"})
		require.NoError(t, err)

		for _, key := range []string{"inquiry", "comments", "logs", "attachments"} {
			assert.True(t, deleted[key], key)
		}
		assert.Equal(t, []string{"uploads/2026/08/abc123.png"}, files.removed)
	})

	t.Run("file removal failure is not fatal", func(t *testing.T) {
		attachment, err := inquiry.NewAttachment(42, "log.txt", "uploads/log.txt", 100)
		require.NoError(t, err)
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusRegistered, 7), nil
			},
			deleteFunc: func(_ context.Context, _ uint) error { return nil },
		}
		comments := &mockCommentRepo{deleteByInquiryIDFunc: func(_ context.Context, _ uint) error { return nil }}
		logs := &mockProcessLogRepo{deleteByInquiryIDFunc: func(_ context.Context, _ uint) error { return nil }}
		attachments := &mockAttachmentRepo{
			listByInquiryIDFunc: func(_ context.Context, _ uint) ([]*inquiry.Attachment, error) {
				return []*inquiry.Attachment{attachment}, nil
			},
			deleteByInquiryIDFunc: func(_ context.Context, _ uint) error { return nil },
		}
		files := &mockFileRemover{err: fmt.Errorf("permission denied")}

		uc := NewDeleteInquiryUseCase(inquiries, comments, logs, attachments, passthroughTx{}, files, logger.NewLogger())
		assert.NoError(t, uc.Execute(context.Background(), DeleteInquiryCommand{InquiryID: 42, UserID: 7, UserRole: "user"}))
	})
}

func TestAddComment(t *testing.T) {
	t.Run("saves comment under the author's name", func(t *testing.T) {
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusCompleted, 7), nil
			},
		}
		var saved *inquiry.Comment
		comments := &mockCommentRepo{
			saveFunc: func(_ context.Context, c *inquiry.Comment) error {
				saved = c
				return c.SetID(3)
			},
		}
		users := &mockUserRepo{
			getByIDFunc: func(_ context.Context, id uint) (*user.User, error) {
				return fixtureUser(t, id, "user"), nil
			},
		}

		uc := NewAddCommentUseCase(inquiries, comments, users, logger.NewLogger())
		dto, err := uc.Execute(context.Background(), AddCommentCommand{
			InquiryID: 42,
			Content:   "확인 감사합니다",
			UserID:    7,
			UserRole:  "user",
		})
		require.NoError(t, err)

		assert.Equal(t, "김철수", saved.AuthorName())
		assert.False(t, dto.IsSystem)
	})
}

func TestDeleteComment(t *testing.T) {
	t.Run("users cannot delete pipeline comments", func(t *testing.T) {
		comment, err := inquiry.NewSystemComment(42, "미러", "분석 결과")
		require.NoError(t, err)
		comments := &mockCommentRepo{
			getByIDFunc: func(_ context.Context, _ uint) (*inquiry.Comment, error) {
				return comment, nil
			},
		}

		uc := NewDeleteCommentUseCase(comments, logger.NewLogger())
		err = uc.Execute(context.Background(), DeleteCommentCommand{CommentID: 3, UserID: 7, UserRole: "user"})
		assert.Equal(t, errors.ErrorTypeForbidden, errors.GetAppError(err).Type)
	})

	t.Run("admins can", func(t *testing.T) {
		comment, err := inquiry.NewSystemComment(42, "미러", "분석 결과")
		require.NoError(t, err)
		deleted := false
		comments := &mockCommentRepo{
			getByIDFunc: func(_ context.Context, _ uint) (*inquiry.Comment, error) {
				return comment, nil
			},
			deleteFunc: func(_ context.Context, _ uint) error {
				deleted = true
				return nil
			},
		}

		uc := NewDeleteCommentUseCase(comments, logger.NewLogger())
		require.NoError(t, uc.Execute(context.Background(), DeleteCommentCommand{CommentID: 3, UserID: 1, UserRole: "admin"}))
		assert.True(t, deleted)
	})
}

func TestAskAI(t *testing.T) {
	t.Run("publishes answer and marks inquiry answered", func(t *testing.T) {
		var markedTo vo.Status
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusRegistered, 7), nil
			},
			updateStatusGuardedFunc: func(_ context.Context, _ uint, _, next vo.Status) (bool, error) {
				markedTo = next
				return true, nil
			},
		}
		var saved *inquiry.Comment
		comments := &mockCommentRepo{
			saveFunc: func(_ context.Context, c *inquiry.Comment) error {
				saved = c
				return c.SetID(5)
			},
		}
		answerer := &mockAnswerer{
			answerFunc: func(_ context.Context, question string) (string, error) {
				assert.Equal(t, "쿠폰 적용이 안 됩니다", question)
				return "쿠폰 설정을 확인해주세요", nil
			},
		}

		uc := NewAskAIUseCase(inquiries, comments, answerer, logger.NewLogger())
		dto, err := uc.Execute(context.Background(), AskAICommand{
			InquiryID: 42,
			Question:  "쿠폰 적용이 안 됩니다",
			UserID:    7,
			UserRole:  "user",
		})
		require.NoError(t, err)

		assert.Equal(t, "AI Assistant", saved.AuthorName())
		assert.True(t, saved.IsSystem())
		assert.Equal(t, vo.StatusAnswered, markedTo)
		assert.Equal(t, "쿠폰 설정을 확인해주세요", dto.Content)
	})

	t.Run("answer failure leaves no comment", func(t *testing.T) {
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusRegistered, 7), nil
			},
		}
		answerer := &mockAnswerer{
			answerFunc: func(_ context.Context, _ string) (string, error) {
				return "", fmt.Errorf("api timeout")
			},
		}

		uc := NewAskAIUseCase(inquiries, &mockCommentRepo{}, answerer, logger.NewLogger())
		_, err := uc.Execute(context.Background(), AskAICommand{InquiryID: 42, UserID: 7, UserRole: "user"})
		assert.Equal(t, errors.ErrorTypeInternal, errors.GetAppError(err).Type)
	})
}

func TestProcessInquiry(t *testing.T) {
	newEngine := func(inquiries *mockInquiryRepo, logs *mockProcessLogRepo) *workflow.Engine {
		return workflow.NewEngine(inquiries, logs, passthroughTx{}, logger.NewLogger())
	}

	t.Run("approval moves to ai_processing", func(t *testing.T) {
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusPendingApproval, 7), nil
			},
			updateStatusGuardedFunc: func(_ context.Context, _ uint, expected, next vo.Status) (bool, error) {
				assert.Equal(t, vo.StatusPendingApproval, expected)
				assert.Equal(t, vo.StatusAIProcessing, next)
				return true, nil
			},
		}
		logs := &mockProcessLogRepo{
			appendFunc: func(_ context.Context, log *inquiry.ProcessLog) error {
				return log.SetID(9)
			},
		}
		notifier := &mockNotifier{}

		uc := NewProcessInquiryUseCase(inquiries, newEngine(inquiries, logs), notifier, logger.NewLogger())
		result, err := uc.Execute(context.Background(), ProcessInquiryCommand{
			InquiryID:    42,
			TargetStatus: "ai_processing",
			UserRole:     "admin",
			Username:     "admin",
		})
		require.NoError(t, err)

		assert.Equal(t, "ai_processing", result.To)
		require.Len(t, notifier.messages, 1)
		assert.Contains(t, notifier.messages[0], "pending_approval → ai_processing")
	})

	t.Run("send-back records the feedback note", func(t *testing.T) {
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusPendingApproval, 7), nil
			},
			updateStatusGuardedFunc: func(_ context.Context, _ uint, _, _ vo.Status) (bool, error) {
				return true, nil
			},
		}
		var appended *inquiry.ProcessLog
		logs := &mockProcessLogRepo{
			appendFunc: func(_ context.Context, log *inquiry.ProcessLog) error {
				appended = log
				return log.SetID(10)
			},
		}

		uc := NewProcessInquiryUseCase(inquiries, newEngine(inquiries, logs), &mockNotifier{}, logger.NewLogger())
		result, err := uc.Execute(context.Background(), ProcessInquiryCommand{
			InquiryID:    42,
			TargetStatus: "registered",
			Note:         "서버 진단을 다시 수행해주세요",
			UserRole:     "admin",
			Username:     "admin",
		})
		require.NoError(t, err)

		assert.Equal(t, "registered", result.To)
		require.NotNil(t, appended)
		assert.True(t, appended.IsFeedback())
		assert.Equal(t, "서버 진단을 다시 수행해주세요", appended.FeedbackNote())
	})

	t.Run("rejects non-admins", func(t *testing.T) {
		uc := NewProcessInquiryUseCase(&mockInquiryRepo{}, nil, &mockNotifier{}, logger.NewLogger())
		_, err := uc.Execute(context.Background(), ProcessInquiryCommand{
			InquiryID:    42,
			TargetStatus: "ai_processing",
			UserRole:     "user",
		})
		assert.Equal(t, errors.ErrorTypeForbidden, errors.GetAppError(err).Type)
	})

	t.Run("rejects edges outside the table", func(t *testing.T) {
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusRegistered, 7), nil
			},
		}

		uc := NewProcessInquiryUseCase(inquiries, newEngine(inquiries, &mockProcessLogRepo{}), &mockNotifier{}, logger.NewLogger())
		_, err := uc.Execute(context.Background(), ProcessInquiryCommand{
			InquiryID:    42,
			TargetStatus: "completed",
			UserRole:     "admin",
		})
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("concurrent change surfaces as conflict", func(t *testing.T) {
		inquiries := &mockInquiryRepo{
			getByIDFunc: func(_ context.Context, id uint) (*inquiry.Inquiry, error) {
				return fixtureInquiry(t, id, vo.StatusPendingApproval, 7), nil
			},
			updateStatusGuardedFunc: func(_ context.Context, _ uint, _, _ vo.Status) (bool, error) {
				return false, nil
			},
		}

		uc := NewProcessInquiryUseCase(inquiries, newEngine(inquiries, &mockProcessLogRepo{}), &mockNotifier{}, logger.NewLogger())
		_, err := uc.Execute(context.Background(), ProcessInquiryCommand{
			InquiryID:    42,
			TargetStatus: "ai_processing",
			UserRole:     "admin",
		})
		assert.True(t, errors.IsConflictError(err))
	})
}
