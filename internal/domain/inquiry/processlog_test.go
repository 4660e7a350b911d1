package inquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "inqboard/internal/domain/inquiry/valueobjects"
)

func TestNewProcessLogDefaultsMessage(t *testing.T) {
	log, err := NewProcessLog(1, vo.StatusAIReview, "", "system")
	require.NoError(t, err)
	assert.Equal(t, "AI가 문의 내용을 분석하고 있습니다.", log.Message())

	log, err = NewProcessLog(1, vo.StatusAIReview, "custom note", "system")
	require.NoError(t, err)
	assert.Equal(t, "custom note", log.Message())
}

func TestFeedbackLog(t *testing.T) {
	t.Run("with note", func(t *testing.T) {
		log, err := NewFeedbackLog(1, "서버 로그를 다시 확인해주세요", "admin")
		require.NoError(t, err)

		assert.True(t, log.IsFeedback())
		assert.Equal(t, "[재확인 요청] 서버 로그를 다시 확인해주세요", log.Message())
		assert.Equal(t, "서버 로그를 다시 확인해주세요", log.FeedbackNote())
	})

	t.Run("without note", func(t *testing.T) {
		log, err := NewFeedbackLog(1, "", "admin")
		require.NoError(t, err)

		assert.True(t, log.IsFeedback())
		assert.Empty(t, log.FeedbackNote())
	})

	t.Run("ordinary log is not feedback", func(t *testing.T) {
		log, err := NewProcessLog(1, vo.StatusRegistered, "", "system")
		require.NoError(t, err)
		assert.False(t, log.IsFeedback())
	})
}
