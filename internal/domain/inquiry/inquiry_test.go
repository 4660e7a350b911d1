package inquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "inqboard/internal/domain/inquiry/valueobjects"
)

func TestNewInquiry(t *testing.T) {
	t.Run("creates with registered status", func(t *testing.T) {
		inq, err := NewInquiry("로그인이 안 됩니다", "어제부터 로그인 버튼이 반응하지 않습니다.", "", 42, "김고객", "acme-shop")
		require.NoError(t, err)

		assert.Equal(t, vo.StatusRegistered, inq.Status())
		assert.False(t, inq.HasCategory())
		assert.Equal(t, uint(42), inq.AuthorID())
		assert.Equal(t, "acme-shop", inq.SiteTag())
		assert.Zero(t, inq.TriageAttempts())
	})

	t.Run("accepts preset category", func(t *testing.T) {
		inq, err := NewInquiry("제목", "내용", vo.CategoryUrgent, 1, "user", "")
		require.NoError(t, err)
		assert.True(t, inq.HasCategory())
		assert.Equal(t, vo.CategoryUrgent, inq.Category())
	})

	t.Run("rejects bad input", func(t *testing.T) {
		tests := []struct {
			name     string
			title    string
			content  string
			category vo.Category
			authorID uint
		}{
			{"empty title", "", "content", "", 1},
			{"empty content", "title", "", "", 1},
			{"bad category", "title", "content", vo.Category("spam"), 1},
			{"zero author", "title", "content", "", 0},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewInquiry(tt.title, tt.content, tt.category, tt.authorID, "user", "")
				assert.Error(t, err)
			})
		}
	})
}

func TestInquiryChangeStatus(t *testing.T) {
	newRegistered := func(t *testing.T) *Inquiry {
		inq, err := NewInquiry("title", "content", "", 1, "user", "")
		require.NoError(t, err)
		return inq
	}

	t.Run("follows workflow edges", func(t *testing.T) {
		inq := newRegistered(t)

		require.NoError(t, inq.ChangeStatus(vo.StatusAIReview))
		require.NoError(t, inq.ChangeStatus(vo.StatusPendingApproval))
		require.NoError(t, inq.ChangeStatus(vo.StatusAIProcessing))
		require.NoError(t, inq.ChangeStatus(vo.StatusCompleted))
		assert.Equal(t, vo.StatusCompleted, inq.Status())
	})

	t.Run("rejects skipped steps", func(t *testing.T) {
		inq := newRegistered(t)
		err := inq.ChangeStatus(vo.StatusCompleted)
		assert.Error(t, err)
		assert.Equal(t, vo.StatusRegistered, inq.Status())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		inq := newRegistered(t)
		assert.NoError(t, inq.ChangeStatus(vo.StatusRegistered))
	})

	t.Run("revert from ai_review", func(t *testing.T) {
		inq := newRegistered(t)
		require.NoError(t, inq.ChangeStatus(vo.StatusAIReview))
		require.NoError(t, inq.ChangeStatus(vo.StatusRegistered))
		assert.Equal(t, vo.StatusRegistered, inq.Status())
	})
}

func TestInquiryAssignCategory(t *testing.T) {
	inq, err := NewInquiry("title", "content", "", 1, "user", "")
	require.NoError(t, err)

	require.NoError(t, inq.AssignCategory(vo.CategoryError))
	assert.Equal(t, vo.CategoryError, inq.Category())

	assert.Error(t, inq.AssignCategory(vo.Category("bogus")))
}

func TestInquiryPermissions(t *testing.T) {
	inq, err := NewInquiry("title", "content", "", 7, "user", "")
	require.NoError(t, err)

	assert.True(t, inq.CanBeViewedBy(7, "user"))
	assert.False(t, inq.CanBeViewedBy(8, "user"))
	assert.True(t, inq.CanBeViewedBy(8, "admin"))

	assert.True(t, inq.CanBeModifiedBy(7, "user"))
	require.NoError(t, inq.ChangeStatus(vo.StatusAIReview))
	assert.False(t, inq.CanBeModifiedBy(7, "user"))
	assert.True(t, inq.CanBeModifiedBy(1, "admin"))
}
