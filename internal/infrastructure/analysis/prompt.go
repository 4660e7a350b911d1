package analysis

import (
	"fmt"
	"strings"

	"inqboard/internal/domain/server"
	"inqboard/internal/infrastructure/diagnostics"
)

// AnalyzeRequest carries everything the prompt builder needs for one
// inquiry. AdminFeedback, Server, and Diagnostics are all optional.
type AnalyzeRequest struct {
	Title         string
	Content       string
	Category      string
	AdminFeedback string
	Server        *server.Server
	Diagnostics   map[string]string
}

// reportTemplate is the fixed output format the model is told to follow.
// Markdown is forbidden because the report is rendered as plain text in the
// board UI.
const reportTemplate = `아래 형식을 정확히 따라주세요:

📋 문의 요약
- 문의 유형: (오류/건의/긴급/추가개발/기타)
- 핵심 내용: (1-2줄 요약)
- 접수 긴급도: (긴급/높음/보통/낮음)

🔍 확인 사항
(어떤 부분을 확인했는지 구체적으로 기술)
1. 확인 항목: (확인한 내용)
   확인 결과: (정상/이상/확인필요)
   상세: (확인한 내용의 세부사항)
2. 확인 항목: (확인한 내용)
   확인 결과: (정상/이상/확인필요)
   상세: (확인한 내용의 세부사항)

⚠️ 문제점 분석
(각 문제점이 어떻게 잘못되었는지 원인까지 기술)
1. 문제: (문제 설명)
   원인: (왜 이 문제가 발생했는지)
   영향 범위: (이 문제로 인해 어디까지 영향을 받는지)
   심각도: (치명적/높음/보통/낮음)
2. 문제: (문제 설명)
   원인: (원인 설명)
   영향 범위: (영향 범위)
   심각도: (심각도)

💡 수정 방안
(각 문제에 대해 어떤 부분을 어떻게 수정하면 되는지 구체적으로)
1. 대상: (수정할 대상 - 서버/DB/코드/설정 등)
   수정 내용: (구체적으로 무엇을 어떻게 변경하는지)
   작업 절차: (순서대로 작업 단계를 나열)
   기대 효과: (수정 후 예상되는 결과)
2. 대상: (수정할 대상)
   수정 내용: (구체적 변경 내용)
   작업 절차: (작업 단계)
   기대 효과: (예상 결과)

🔗 연관 영향 분석
(수정했을 때 다른 관련된 부분에 영향이 없는지 확인)
1. 관련 시스템/기능: (영향받을 수 있는 부분)
   영향 여부: (영향있음/영향없음)
   대응 방안: (영향이 있다면 어떻게 대응하는지)

⏱️ 예상 소요 시간
- 분석 완료: 완료
- 수정 작업: (예상 시간)
- 테스트 검증: (예상 시간)
- 전체 소요: (총 예상 시간)

🚨 수정 불가 시 대안
(만약 수정이 안되거나 문제가 심각한 경우 어떤 조치를 할 수 있는지)
1. 대안: (대체 방안 설명)
   조건: (이 대안을 선택하는 조건)
   장단점: (장점과 단점)
2. 대안: (대체 방안 설명)
   조건: (조건)
   장단점: (장점과 단점)
- 긴급 연락: (에스컬레이션이 필요한 경우 누구에게 연락해야 하는지)

📌 최종 판단
- 우선순위: (긴급/높음/보통/낮음)
- 권장 조치: (즉시처리/일반처리/모니터링/보류)
- 승인 요청 사항: (관리자에게 승인받아야 할 구체적 내용을 한줄로)`

// BuildAnalysisPrompt composes the full triage prompt: role framing, the
// markdown prohibition, then the optional feedback and server sections, the
// inquiry itself, and the fixed report template.
func BuildAnalysisPrompt(req AnalyzeRequest) string {
	var b strings.Builder

	b.WriteString("당신은 웹 서비스 운영팀의 기술 분석 전문가입니다.\n")
	b.WriteString("고객 문의를 분석하여 관리자가 승인할 수 있는 상세한 처리 보고서를 작성해주세요.\n\n")
	b.WriteString("절대 마크다운 문법(#, **, |, ---, >, ```)을 사용하지 마세요.\n")
	b.WriteString("이모지와 일반 텍스트, 번호 목록만 사용하세요.\n")

	b.WriteString(feedbackSection(req.AdminFeedback))
	b.WriteString(serverSection(req.Server, req.Diagnostics))

	fmt.Fprintf(&b, "\n[카테고리]: %s\n", req.Category)
	fmt.Fprintf(&b, "[제목]: %s\n", req.Title)
	fmt.Fprintf(&b, "[내용]: %s\n\n", req.Content)

	b.WriteString(reportTemplate)

	return b.String()
}

func feedbackSection(feedback string) string {
	if feedback == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n🔄 [관리자 재확인 요청]\n")
	b.WriteString("이전 분석에 대해 관리자가 아래와 같은 피드백을 보냈습니다.\n")
	b.WriteString("반드시 이 피드백 내용을 반영하여 재분석해주세요.\n")
	b.WriteString("기존 분석에서 부족했던 부분을 보완하고, 관리자가 지적한 사항을 중점적으로 다시 확인해주세요.\n\n")
	fmt.Fprintf(&b, "관리자 피드백: %s\n", feedback)
	return b.String()
}

func serverSection(srv *server.Server, diag map[string]string) string {
	if srv == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n🖥️ [대상 서버 정보]\n")
	b.WriteString("이 문의는 아래 서버에서 발생한 문제입니다.\n\n")
	fmt.Fprintf(&b, "- 사이트명: %s\n", srv.DisplayName())
	fmt.Fprintf(&b, "- 서버 IP: %s\n", srv.Host())
	fmt.Fprintf(&b, "- 사이트 주소: %s\n", srv.SiteURL())
	fmt.Fprintf(&b, "- 관리자 페이지: %s\n", srv.AdminURL())

	if len(diag) > 0 {
		b.WriteString("\n📡 [실제 서버 진단 결과]\n")
		b.WriteString("아래는 해당 서버에 직접 접속하여 수집한 실시간 진단 데이터입니다.\n")
		b.WriteString("이 데이터를 기반으로 정확한 문제 원인을 분석해주세요.\n\n")

		for _, key := range diagnostics.ProbeOrder {
			value, ok := diag[key]
			if !ok {
				continue
			}
			label := diagnostics.ProbeLabels[key]
			if label == "" {
				label = key
			}
			fmt.Fprintf(&b, "--- %s ---\n%s\n\n", label, value)
		}
	}

	b.WriteString("\n")
	return b.String()
}

// BuildAnswerPrompt frames a direct board question for the assistant
// endpoint.
func BuildAnswerPrompt(question string) string {
	return "당신은 Q&A 게시판의 친절한 AI 어시스턴트입니다. 사용자의 질문에 한국어로 명확하고 도움이 되는 답변을 해주세요.\n\n질문: " + question
}
