package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWithFrontmatter(t *testing.T) {
	source := []byte(`---
title: Balance Basics
order: 2
---
# Standing tall

Hold the chair with **both** hands.
`)

	var meta struct {
		Title string `yaml:"title"`
		Order int    `yaml:"order"`
	}
	html, err := NewParser().Parse(source, &meta)
	require.NoError(t, err)

	assert.Equal(t, "Balance Basics", meta.Title)
	assert.Equal(t, 2, meta.Order)
	assert.Contains(t, string(html), `<h1 id="standing-tall">Standing tall</h1>`)
	assert.Contains(t, string(html), "<strong>both</strong>")
	assert.NotContains(t, string(html), "title:")
}

func TestParseWithoutFrontmatter(t *testing.T) {
	var meta struct {
		Title string `yaml:"title"`
	}
	html, err := NewParser().Parse([]byte("plain text"), &meta)
	require.NoError(t, err)

	assert.Empty(t, meta.Title)
	assert.Contains(t, string(html), "plain text")
}
