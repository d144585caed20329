package version

import (
	"runtime/debug"
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestRevision(t *testing.T) {
	tests := map[string]struct {
		in   []debug.BuildSetting
		want string
	}{
		"NoVCS": {
			want: "(devel)",
		},
		"Clean": {
			in: []debug.BuildSetting{
				{Key: "vcs", Value: "git"},
				{Key: "vcs.revision", Value: "27b6dbfe4b99f67df74bfb7323e19d6c547f68fd"},
				{Key: "vcs.modified", Value: "false"},
			},
			want: "27b6dbfe4b99",
		},
		"Dirty": {
			in: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "27b6dbfe4b99f67df74bfb7323e19d6c547f68fd"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: "27b6dbfe4b99-dirty",
		},
		"ShortRevision": {
			in: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "27b6dbf"},
			},
			want: "27b6dbf",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := revision(test.in)

			assert.EqualValuesf(t, got, test.want, "revision(%v)", test.in)
		})
	}
}

func TestVersion(t *testing.T) {
	assert.Truef(t, Version() != "", "Version() must not be empty")
}
