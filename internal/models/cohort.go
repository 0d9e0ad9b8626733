package models

import (
	"encoding/json"
	"fmt"
)

// AgeCohort 年龄分组（有序枚举，顺序用于趋势分析）
type AgeCohort int

const (
	CohortNeonate     AgeCohort = iota // < 28 天
	CohortInfant                       // < 1 岁
	CohortToddler                      // < 3 岁
	CohortPreschool                    // < 5 岁
	CohortSchoolAge                    // < 12 岁
	CohortAdolescent                   // < 18 岁
	CohortYoungAdult                   // < 40 岁
	CohortMiddleAdult                  // < 65 岁
	CohortGeriatric                    // >= 65 岁
)

var cohortNames = [...]string{
	"NEONATE",
	"INFANT",
	"TODDLER",
	"PRESCHOOL",
	"SCHOOL_AGE",
	"ADOLESCENT",
	"YOUNG_ADULT",
	"MIDDLE_ADULT",
	"GERIATRIC",
}

var cohortDisplay = [...]string{
	"Neonate (0-28 days)",
	"Infant (29 days - 1 year)",
	"Toddler (1-3 years)",
	"Preschool (3-5 years)",
	"School Age (5-12 years)",
	"Adolescent (12-18 years)",
	"Young Adult (18-40 years)",
	"Middle Adult (40-65 years)",
	"Geriatric (>65 years)",
}

// AllCohorts 按规范顺序返回全部年龄分组
func AllCohorts() []AgeCohort {
	cohorts := make([]AgeCohort, 0, len(cohortNames))
	for i := range cohortNames {
		cohorts = append(cohorts, AgeCohort(i))
	}
	return cohorts
}

// Ordinal 分组序号（0..8）
func (c AgeCohort) Ordinal() int {
	return int(c)
}

// Valid 是否为已知分组
func (c AgeCohort) Valid() bool {
	return c >= CohortNeonate && c <= CohortGeriatric
}

func (c AgeCohort) String() string {
	if !c.Valid() {
		return fmt.Sprintf("AgeCohort(%d)", int(c))
	}
	return cohortNames[c]
}

// Display 人类可读名称（用于洞察文本和报表）
func (c AgeCohort) Display() string {
	if !c.Valid() {
		return c.String()
	}
	return cohortDisplay[c]
}

// ParseAgeCohort 由名称解析分组
func ParseAgeCohort(s string) (AgeCohort, error) {
	for i, name := range cohortNames {
		if name == s {
			return AgeCohort(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown age cohort %q", ErrInvalidInput, s)
}

func (c AgeCohort) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *AgeCohort) UnmarshalText(text []byte) error {
	parsed, err := ParseAgeCohort(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c AgeCohort) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *AgeCohort) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// GeriatricSubCohort 老年细分组，仅对 GERIATRIC 有定义
type GeriatricSubCohort string

const (
	SubCohortYoungGeriatric GeriatricSubCohort = "YOUNG_GERIATRIC" // [65, 75)
	SubCohortMidGeriatric   GeriatricSubCohort = "MID_GERIATRIC"   // [75, 85)
	SubCohortOldGeriatric   GeriatricSubCohort = "OLD_GERIATRIC"   // [85, ∞)
)
