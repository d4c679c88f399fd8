package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RepoIdentifier
		wantErr bool
	}{
		{"plain", "facebook/react", RepoIdentifier{Owner: "facebook", Name: "react"}, false},
		{"url encoded", "facebook%2Freact", RepoIdentifier{Owner: "facebook", Name: "react"}, false},
		{"surrounding slashes", "/golang/go/", RepoIdentifier{Owner: "golang", Name: "go"}, false},
		{"git suffix", "cli/cli.git", RepoIdentifier{Owner: "cli", Name: "cli"}, false},
		{"dots and dashes", "charm-bracelet/bubble.tea", RepoIdentifier{Owner: "charm-bracelet", Name: "bubble.tea"}, false},
		{"empty", "", RepoIdentifier{}, true},
		{"owner only", "facebook", RepoIdentifier{}, true},
		{"empty owner", "/react", RepoIdentifier{}, true},
		{"too many parts", "a/b/c", RepoIdentifier{}, true},
		{"bad escape", "facebook%2react%", RepoIdentifier{}, true},
		{"query chars", "facebook/react?x=1", RepoIdentifier{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepoIdentifier(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRepoIdentifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepoIdentifier_String(t *testing.T) {
	r := RepoIdentifier{Owner: "facebook", Name: "react"}
	assert.Equal(t, "facebook/react", r.String())
	assert.False(t, r.IsZero())
	assert.True(t, RepoIdentifier{}.IsZero())
}
