package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords(t *testing.T) {
	t.Run("ranks by frequency descending", func(t *testing.T) {
		got := Keywords("kubernetes docker kubernetes terraform kubernetes docker", 0)
		assert.Equal(t, []string{"kubernetes", "docker", "terraform"}, got)
	})

	t.Run("ties broken by first occurrence", func(t *testing.T) {
		got := Keywords("golang python rust", 0)
		assert.Equal(t, []string{"golang", "python", "rust"}, got)
	})

	t.Run("lowercases input", func(t *testing.T) {
		got := Keywords("Docker DOCKER docker", 0)
		assert.Equal(t, []string{"docker"}, got)
	})

	t.Run("drops short and non-alphabetic tokens", func(t *testing.T) {
		got := Keywords("aws k8s 12345 golang c++", 0)
		// "aws" and "k8s" are under four alphabetic characters.
		assert.Equal(t, []string{"golang"}, got)
	})

	t.Run("drops stop words", func(t *testing.T) {
		got := Keywords("that with this golang from which", 0)
		assert.Equal(t, []string{"golang"}, got)
	})

	t.Run("truncates to topN", func(t *testing.T) {
		got := Keywords("alpha bravo charlie delta echo", 3)
		assert.Len(t, got, 3)
		assert.Equal(t, []string{"alpha", "bravo", "charlie"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Keywords("", 0))
		assert.Nil(t, Keywords("   ", 0))
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		text := "golang python golang docker python rust terraform docker golang"
		first := Keywords(text, 0)
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, Keywords(text, 0))
		}
	})
}

func TestOverlap(t *testing.T) {
	t.Run("keeps first argument order", func(t *testing.T) {
		got := Overlap([]string{"docker", "golang", "rust"}, []string{"rust", "docker"})
		assert.Equal(t, []string{"docker", "rust"}, got)
	})

	t.Run("empty sides", func(t *testing.T) {
		assert.Nil(t, Overlap(nil, []string{"x"}))
		assert.Nil(t, Overlap([]string{"x"}, nil))
	})

	t.Run("disjoint", func(t *testing.T) {
		assert.Nil(t, Overlap([]string{"a"}, []string{"b"}))
	})
}

func TestContainsAny(t *testing.T) {
	keywords := []string{"kubernetes", "golang"}

	assert.True(t, ContainsAny(keywords, []string{"kubernetes"}))
	assert.True(t, ContainsAny(keywords, []string{"Kubernetes"}))
	assert.True(t, ContainsAny(keywords, []string{"missing", "golang"}))
	assert.False(t, ContainsAny(keywords, []string{"terraform"}))
	assert.False(t, ContainsAny(keywords, nil))
	assert.False(t, ContainsAny(nil, []string{"kubernetes"}))
}

func TestContentWords(t *testing.T) {
	t.Run("trims punctuation and lowercases", func(t *testing.T) {
		got := ContentWords("Senior Engineer, (Python)!")
		assert.Equal(t, []string{"senior", "engineer", "python"}, got)
	})

	t.Run("removes stop words", func(t *testing.T) {
		got := ContentWords("the engineer and the manager")
		assert.Equal(t, []string{"engineer", "manager"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ContentWords(""))
	})
}
