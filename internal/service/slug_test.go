package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yashkhope01/Blog/internal/service"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation stripped", "Hello, World!", "hello-world"},
		{"multiple spaces collapse", "Go   Generics    Explained", "go-generics-explained"},
		{"mixed case", "Why TDD Matters", "why-tdd-matters"},
		{"digits kept", "Top 10 Tips for 2026", "top-10-tips-for-2026"},
		{"symbols only", "!!!???", ""},
		{"leading and trailing spaces", "  padded title  ", "padded-title"},
		{"slashes dropped", "AI/ML in Practice", "aiml-in-practice"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.Slugify(tc.title))
		})
	}
}
