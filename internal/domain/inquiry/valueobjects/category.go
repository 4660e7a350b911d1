package valueobjects

import (
	"fmt"
	"strings"
)

// Category classifies an inquiry. The analysis step assigns one of these when
// the author left it empty; values outside this set are rejected.
type Category string

const (
	CategoryUrgent      Category = "긴급"
	CategoryError       Category = "오류"
	CategorySuggestion  Category = "건의"
	CategoryDevelopment Category = "추가개발"
	CategoryEtc         Category = "기타"
)

var validCategories = map[Category]bool{
	CategoryUrgent:      true,
	CategoryError:       true,
	CategorySuggestion:  true,
	CategoryDevelopment: true,
	CategoryEtc:         true,
}

func AllCategories() []Category {
	return []Category{
		CategoryUrgent,
		CategoryError,
		CategorySuggestion,
		CategoryDevelopment,
		CategoryEtc,
	}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid inquiry category: %s", s)
	}
	return c, nil
}

// NormalizeCategory maps a model answer onto a known category, falling back
// to 기타 when the text matches nothing. Models occasionally echo extra
// characters around the label, so a containment check is used.
func NormalizeCategory(s string) Category {
	s = strings.TrimSpace(s)
	if c := Category(s); c.IsValid() {
		return c
	}
	for _, c := range AllCategories() {
		if strings.Contains(s, c.String()) {
			return c
		}
	}
	return CategoryEtc
}
