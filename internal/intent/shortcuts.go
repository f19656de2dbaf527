package intent

// shortcuts are fixed link-card answers, checked in order. The delivery
// entry additionally accepts the bare "배송" utterance via exact.
var shortcuts = []struct {
	keywords []string
	exact    []string
	shortcut Shortcut
}{
	{
		keywords: []string{"상담원"},
		shortcut: Shortcut{
			Lead:        "상담원 연결을 원하시면 아래 버튼을 눌러주세요.",
			Title:       "상담원 연결",
			Description: "평일 09:00 ~ 18:00 (점심시간 12:00 ~ 13:00)",
			Label:       "카카오톡 상담하기",
			URL:         "http://pf.kakao.com/_estla/chat",
		},
	},
	{
		keywords: []string{"홈페이지"},
		shortcut: Shortcut{
			Title:       "이스트라 홈페이지",
			Description: "이스트라의 다양한 제품을 만나보세요.",
			Label:       "홈페이지 바로가기",
			URL:         "https://estla.co.kr/",
		},
	},
	{
		keywords: []string{"배송조회", "배송 조회"},
		exact:    []string{"배송"},
		shortcut: Shortcut{
			Title:       "배송 조회",
			Description: "주문하신 상품의 배송 현황을 확인하세요.",
			Label:       "배송 조회하기",
			URL:         "https://estla.co.kr/211",
		},
	},
	{
		keywords: []string{"회사", "소개"},
		shortcut: Shortcut{
			Lead: "이스트라는 TV 전문 브랜드로서, '기본에 충실하자'라는 슬로건 아래 " +
				"합리적인 가격과 최고의 품질, 그리고 진정성 있는 서비스를 제공합니다.\n\n" +
				"2019년 설립 이후 스마트 TV 시장을 선도하며, 국내 최초 전 부품 5년 무상 A/S를 " +
				"실시하는 등 고객 만족을 위해 최선을 다하고 있습니다.",
			Title:       "이스트라 브랜드 스토리",
			Description: "이스트라의 이야기를 더 자세히 알아보세요.",
			Label:       "브랜드 스토리 보기",
			URL:         "https://estla.co.kr/brandstory",
		},
	},
}

func matchShortcut(utterance string) (Shortcut, bool) {
	for _, entry := range shortcuts {
		if containsAny(utterance, entry.keywords...) {
			return entry.shortcut, true
		}
		for _, exact := range entry.exact {
			if utterance == exact {
				return entry.shortcut, true
			}
		}
	}
	return Shortcut{}, false
}
