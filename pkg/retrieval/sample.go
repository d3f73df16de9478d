package retrieval

import (
	"fmt"

	"github.com/koreview/revu/pkg/models"
)

// SampleBPCases returns built-in reference cases tailored to the proposal's
// domain labels. Used when the search service is unreachable, unconfigured,
// or returns no hits.
func SampleBPCases(domain, division string) []models.BPCase {
	return []models.BPCase{
		{
			Title:          fmt.Sprintf("%s 분야 AI 기반 자동화 시스템 구축", domain),
			TechType:       "AI/ML - 자연어처리",
			BusinessDomain: domain,
			Division:       division,
			ProblemAsWas:   fmt.Sprintf("%s 업무에서 수작업 처리로 인한 시간 소요 및 오류 발생 (하루 평균 4시간 소요)", domain),
			SolutionToBe:   "AI 기반 자동 분류 및 처리 시스템 도입으로 처리 시간 80% 단축 및 정확도 95% 달성",
			Summary:        fmt.Sprintf("%s 분야에 AI 자동화를 도입하여 업무 효율성을 크게 향상시킨 사례. 6개월 내 ROI 200%% 달성", domain),
			Tips:           "초기 데이터 품질 확보가 중요. 파일럿 프로젝트로 시작하여 점진적 확대 권장",
		},
		{
			Title:          fmt.Sprintf("%s %s 데이터 분석 플랫폼 구축", division, domain),
			TechType:       "AI/ML - 예측 분석",
			BusinessDomain: domain,
			Division:       division,
			ProblemAsWas:   "분산된 데이터로 인한 의사결정 지연 및 인사이트 부족",
			SolutionToBe:   "통합 데이터 분석 플랫폼 구축으로 실시간 인사이트 제공 및 예측 정확도 향상",
			Summary:        fmt.Sprintf("%s 사업부의 %s 데이터를 통합 분석하여 의사결정 속도 3배 향상", division, domain),
			Tips:           "데이터 거버넌스 체계를 먼저 수립한 후 플랫폼 구축 시작",
		},
		{
			Title:          fmt.Sprintf("%s 최적화를 위한 머신러닝 모델 적용", domain),
			TechType:       "AI/ML - 최적화",
			BusinessDomain: domain,
			Division:       division,
			ProblemAsWas:   "경험 기반 의사결정으로 인한 최적화 한계 및 리소스 낭비",
			SolutionToBe:   "ML 기반 최적화 모델로 리소스 활용률 30% 개선 및 비용 절감",
			Summary:        fmt.Sprintf("%s 업무 최적화를 위한 ML 모델 개발 및 적용 성공 사례", domain),
			Tips:           "도메인 전문가와 데이터 사이언티스트의 긴밀한 협업이 성공의 핵심",
		},
	}
}
