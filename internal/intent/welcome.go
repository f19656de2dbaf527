package intent

import "github.com/estlahq/skillbot/internal/kakao"

// WelcomeGreeting is the fixed conversation-start copy. Deployment
// copy, not converted content, so it lives here rather than the store.
const WelcomeGreeting = "안녕하세요 이스트라입니다.\n무엇을 도와드릴까요?"

// WelcomeQuickReplies returns the fixed quick replies shown with the
// greeting. A fresh slice per call keeps responses independent.
func WelcomeQuickReplies() []kakao.QuickReply {
	return []kakao.QuickReply{
		{Label: "홈페이지", Action: "message", MessageText: "홈페이지 이동"},
		{Label: "배송조회", Action: "message", MessageText: "배송조회"},
		{Label: "회사소개", Action: "message", MessageText: "회사 소개"},
		{Label: "자주 묻는 질문", Action: "message", MessageText: "QnA 리스트 보여줘"},
		{Label: "자가 진단", Action: "message", MessageText: "자가 진단 리스트 보여줘"},
		{Label: "상담원 연결", Action: "message", MessageText: "상담원 연결"},
	}
}
