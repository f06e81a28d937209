package catalog

import "github.com/hyejin/scholarhub/internal/app/models"

// Default returns the built-in seed catalog used when no catalog file is
// configured.
func Default() *Catalog {
	return New(seedEntries)
}

func gpa(v float64) *float64 { return &v }

var seedEntries = []models.Scholarship{
	{
		ID:              "1",
		Title:           "2025 강원대학교 성적우수 장학금",
		Summary:         "직전학기 성적 3.5 이상 학생 대상, 등록금 50% 지원",
		Organization:    "강원대학교 학생처",
		Amount:          "최대 300만원",
		Deadline:        "2025-12-15",
		ApplicationLink: "https://kangwon.ac.kr",
		Conditions: models.ScholarshipConditions{
			Grade: []string{"2학년", "3학년", "4학년"},
			GPA:   gpa(3.5),
		},
		Category:  models.CategoryScholarship,
		Source:    "강원대 공지사항",
		IsNew:     true,
		ViewCount: 1247,
	},
	{
		ID:              "2",
		Title:           "SW중심대학 코딩캠프 참가자 장학금",
		Summary:         "SW전공생 대상, 캠프 수료 후 장학금 지급",
		Organization:    "SW사업단",
		Amount:          "100만원",
		Deadline:        "2025-12-01",
		ApplicationLink: "https://sw.kangwon.ac.kr",
		Conditions: models.ScholarshipConditions{
			Major: []string{"컴퓨터공학", "소프트웨어학과", "정보통신공학"},
			Grade: []string{"1학년", "2학년", "3학년"},
		},
		Category:  models.CategoryScholarship,
		Source:    "SW사업단 홈페이지",
		IsNew:     true,
		ViewCount: 856,
	},
	{
		ID:              "3",
		Title:           "2025 스타트업 아이디어 공모전",
		Summary:         "창업 아이디어 기획서 제출, 최우수상 500만원",
		Organization:    "교육혁신본부",
		Amount:          "최대 500만원",
		Deadline:        "2025-11-30",
		ApplicationLink: "https://innovation.kangwon.ac.kr",
		Conditions: models.ScholarshipConditions{
			Grade: []string{"2학년", "3학년", "4학년"},
		},
		Category:  models.CategoryCompetition,
		Source:    "교육혁신본부",
		IsNew:     false,
		ViewCount: 2341,
	},
	{
		ID:              "4",
		Title:           "저소득층 생활비 지원 장학금",
		Summary:         "기초생활수급자 및 차상위계층 대상",
		Organization:    "강원대학교 학생처",
		Amount:          "학기당 200만원",
		Deadline:        "2025-12-20",
		ApplicationLink: "https://kangwon.ac.kr",
		Conditions: models.ScholarshipConditions{
			Income: "기초생활수급자",
		},
		Category:  models.CategoryScholarship,
		Source:    "강원대 공지사항",
		IsNew:     false,
		ViewCount: 945,
	},
	{
		ID:              "5",
		Title:           "외국어 자격증 취득 장려 장학금",
		Summary:         "TOEIC 800점 이상 또는 동등 자격증 소지자",
		Organization:    "취업지원과",
		Amount:          "50만원",
		Deadline:        "2025-12-10",
		ApplicationLink: "https://career.kangwon.ac.kr",
		Conditions: models.ScholarshipConditions{
			Certificates: []string{"TOEIC", "TOEFL", "IELTS"},
		},
		Category:  models.CategoryScholarship,
		Source:    "취업지원과",
		IsNew:     true,
		ViewCount: 1523,
	},
}
