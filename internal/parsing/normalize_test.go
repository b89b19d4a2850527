package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "golang", Fold("GoLang"))
	assert.Equal(t, Fold("KUBERNETES"), Fold("kubernetes"))
	assert.True(t, EqualFold("Austin, TX", "austin, tx"))
	assert.False(t, EqualFold("Austin", "Boston"))
}

func TestFoldAll(t *testing.T) {
	assert.Equal(t, []string{"react", "sql"}, FoldAll([]string{"React", "SQL"}))
	assert.Empty(t, FoldAll(nil))
}

func TestRelated(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"react", "react native", true},
		{"react native", "react", true},
		{"go", "go", true},
		{"python", "java", false},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Related(tt.a, tt.b))
		})
	}
}

func TestSplitTrim(t *testing.T) {
	assert.Equal(t, []string{"Austin", "TX"}, SplitTrim("Austin, TX", ","))
	assert.Equal(t, []string{"Austin", ""}, SplitTrim("Austin, ", ","))
	assert.Equal(t, []string{""}, SplitTrim("", ","))
}
