package analysis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inqboard/internal/domain/server"
)

func testServer(t *testing.T) *server.Server {
	t.Helper()
	srv, err := server.ReconstructServer(
		1, "acme-shop", "에이크미 쇼핑몰", "203.0.113.10", 22,
		"root", "blob",
		"qna_user", "blob",
		"shop.example.com", "", "",
		"shop.example.com/admin", "", "",
		"",
		true,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return srv
}

func TestBuildAnalysisPromptMinimal(t *testing.T) {
	prompt := BuildAnalysisPrompt(AnalyzeRequest{
		Title:    "로그인 오류",
		Content:  "로그인이 안 됩니다.",
		Category: "오류",
	})

	assert.Contains(t, prompt, "기술 분석 전문가")
	assert.Contains(t, prompt, "절대 마크다운 문법")
	assert.Contains(t, prompt, "[카테고리]: 오류")
	assert.Contains(t, prompt, "[제목]: 로그인 오류")
	assert.Contains(t, prompt, "[내용]: 로그인이 안 됩니다.")
	assert.Contains(t, prompt, "📋 문의 요약")
	assert.Contains(t, prompt, "📌 최종 판단")

	assert.NotContains(t, prompt, "관리자 재확인 요청")
	assert.NotContains(t, prompt, "대상 서버 정보")
}

func TestBuildAnalysisPromptWithFeedback(t *testing.T) {
	prompt := BuildAnalysisPrompt(AnalyzeRequest{
		Title:         "로그인 오류",
		Content:       "로그인이 안 됩니다.",
		Category:      "오류",
		AdminFeedback: "서버 로그를 다시 확인해주세요",
	})

	assert.Contains(t, prompt, "🔄 [관리자 재확인 요청]")
	assert.Contains(t, prompt, "관리자 피드백: 서버 로그를 다시 확인해주세요")

	// Feedback must come before the inquiry body.
	assert.Less(t,
		strings.Index(prompt, "관리자 재확인 요청"),
		strings.Index(prompt, "[카테고리]"))
}

func TestBuildAnalysisPromptWithServerAndDiagnostics(t *testing.T) {
	prompt := BuildAnalysisPrompt(AnalyzeRequest{
		Title:    "사이트 접속 불가",
		Content:  "홈페이지가 안 열립니다.",
		Category: "긴급",
		Server:   testServer(t),
		Diagnostics: map[string]string{
			"uptime":     "up 12 days",
			"web_server": "active",
		},
	})

	assert.Contains(t, prompt, "🖥️ [대상 서버 정보]")
	assert.Contains(t, prompt, "- 사이트명: 에이크미 쇼핑몰")
	assert.Contains(t, prompt, "- 서버 IP: 203.0.113.10")
	assert.Contains(t, prompt, "📡 [실제 서버 진단 결과]")
	assert.Contains(t, prompt, "--- 서버 가동시간 ---\nup 12 days")
	assert.Contains(t, prompt, "--- 웹서버 상태 ---\nactive")
}

func TestBuildAnalysisPromptServerWithoutDiagnostics(t *testing.T) {
	prompt := BuildAnalysisPrompt(AnalyzeRequest{
		Title:    "t",
		Content:  "c",
		Category: "기타",
		Server:   testServer(t),
	})

	assert.Contains(t, prompt, "🖥️ [대상 서버 정보]")
	assert.NotContains(t, prompt, "실제 서버 진단 결과")
}

func TestBuildAnswerPrompt(t *testing.T) {
	prompt := BuildAnswerPrompt("백업은 어떻게 하나요?")
	assert.Contains(t, prompt, "AI 어시스턴트")
	assert.Contains(t, prompt, "질문: 백업은 어떻게 하나요?")
}
