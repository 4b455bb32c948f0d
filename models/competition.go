package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// Difficulty 문제 난이도를 나타냅니다
type Difficulty string

const (
	DifficultyAll    Difficulty = "all"
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty 문자열을 난이도로 변환합니다. 인식할 수 없으면 all을 반환합니다.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyAll
	}
}

// Status 대회 진행 상태를 나타냅니다
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusCompleted Status = "completed"
)

// Scoring 난이도별 배점을 나타냅니다
type Scoring struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// PointsFor 난이도에 해당하는 배점을 반환합니다
func (s Scoring) PointsFor(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return s.Easy
	case DifficultyMedium:
		return s.Medium
	case DifficultyHard:
		return s.Hard
	default:
		return 0
	}
}

// Problem 대회에 편성된 외부 저지 문제를 나타냅니다
type Problem struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Difficulty   Difficulty `json:"difficulty"`
	URL          string     `json:"url"`
	Slug         string     `json:"slug"`
	IsValid      bool       `json:"isValid"`
	IsValidating bool       `json:"isValidating"`
}

// ExternalURL 문제의 외부 저지 주소를 반환합니다.
// URL이 비어있으면 슬러그로부터 주소를 유도합니다.
func (p Problem) ExternalURL() string {
	if p.URL != "" {
		return p.URL
	}
	s := p.Slug
	if s == "" {
		s = slug.Make(p.Title)
	}
	return fmt.Sprintf("https://leetcode.com/problems/%s/", s)
}

// Competition 대회 정의를 나타냅니다. Teams는 참가 팀 코드의 순서 있는 목록입니다.
type Competition struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Status      Status    `json:"status"`
	Duration    int       `json:"duration"` // 분 단위
	Teams       []string  `json:"teams"`
	MaxTeamSize int       `json:"maxTeamSize"`
	Problems    []Problem `json:"problems"`
	Rules       []string  `json:"rules"`
	Scoring     Scoring   `json:"scoring"`
}

// EndTime 대회 종료 시각을 반환합니다
func (c *Competition) EndTime() time.Time {
	return c.Date.Add(time.Duration(c.Duration) * time.Minute)
}

// HasTeam 해당 코드의 팀이 대회에 참가 중인지 확인합니다
func (c *Competition) HasTeam(code string) bool {
	for _, t := range c.Teams {
		if t == code {
			return true
		}
	}
	return false
}

// FindProblem 대회 편성에서 문제를 찾습니다
func (c *Competition) FindProblem(problemID string) (Problem, bool) {
	for _, p := range c.Problems {
		if p.ID == problemID {
			return p, true
		}
	}
	return Problem{}, false
}
