package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Gender 性别（封闭枚举）
type Gender string

const (
	GenderMale    Gender = "MALE"
	GenderFemale  Gender = "FEMALE"
	GenderOther   Gender = "OTHER"
	GenderUnknown Gender = "UNKNOWN"
)

// ParseGender 解析性别字符串
// 接受（不区分大小写）：M/MALE、F/FEMALE、O/OTHER、U/UNKNOWN，空字符串视为 UNKNOWN
// 其他任何值返回 ErrInvalidInput
func ParseGender(s string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "M", "MALE":
		return GenderMale, nil
	case "F", "FEMALE":
		return GenderFemale, nil
	case "O", "OTHER":
		return GenderOther, nil
	case "", "U", "UNKNOWN":
		return GenderUnknown, nil
	default:
		return "", fmt.Errorf("%w: unrecognized gender %q", ErrInvalidInput, s)
	}
}

// Valid 是否为已知的性别枚举值
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUnknown:
		return true
	}
	return false
}

// Normalize 零值（未填写）按 UNKNOWN 处理
func (g Gender) Normalize() Gender {
	if g == "" {
		return GenderUnknown
	}
	return g
}

// Code 单字母编码（M/F/O/U），用于报表键
func (g Gender) Code() string {
	switch g {
	case GenderMale:
		return "M"
	case GenderFemale:
		return "F"
	case GenderOther:
		return "O"
	default:
		return "U"
	}
}

// Numeric 模型特征编码
func (g Gender) Numeric() int {
	switch g {
	case GenderMale:
		return 0
	case GenderFemale:
		return 1
	case GenderOther:
		return 2
	default:
		return 3
	}
}

func (g *Gender) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: gender must be a string", ErrInvalidInput)
	}
	parsed, err := ParseGender(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
