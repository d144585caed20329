//go:build !freestanding

package assert_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"

	"github.com/teleivo/assertive/assert"
	"github.com/teleivo/assertive/require"
	fatalassert "github.com/teleivo/fatal/assert"
)

// crashEnv selects the assertion failing when the test binary is re-executed by TestFailure.
const crashEnv = "FATAL_ASSERT_TEST_CRASH"

func TestHolds(t *testing.T) {
	var formatted bool
	fatalassert.That(true, "not formatted %v", stringer(func() string {
		formatted = true
		return "arg"
	}))
	fatalassert.NoError(nil)

	assert.Falsef(t, formatted, "message must not be formatted if the assertion holds")
}

func TestFailure(t *testing.T) {
	switch os.Getenv(crashEnv) {
	case "":
	case "That":
		got := 2
		fatalassert.That(got == 1, "want %d, got %d", 1, got)
		os.Exit(0)
	case "ThatWithoutArgs":
		fatalassert.That(false, "100%")
		os.Exit(0)
	case "Fail":
		fatalassert.Fail("state %q", "closed")
		os.Exit(0)
	case "NoError":
		fatalassert.NoError(errors.New("disk full"))
		os.Exit(0)
	default:
		t.Fatalf("unknown %s=%q", crashEnv, os.Getenv(crashEnv))
	}

	tests := map[string]struct {
		want *regexp.Regexp
	}{
		"That": {
			want: regexp.MustCompile(`assert_test\.go:\d+: precondition failure: want 1, got 2$`),
		},
		"ThatWithoutArgs": {
			want: regexp.MustCompile(`assert_test\.go:\d+: precondition failure: 100%$`),
		},
		"Fail": {
			want: regexp.MustCompile(`assert_test\.go:\d+: fatal error: state "closed"$`),
		},
		"NoError": {
			want: regexp.MustCompile(`assert_test\.go:\d+: fatal error: disk full$`),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cmd := exec.Command(os.Args[0], "-test.run=^TestFailure$")
			cmd.Env = append(os.Environ(), crashEnv+"="+name)
			var stderr bytes.Buffer
			cmd.Stderr = &stderr

			err := cmd.Run()

			var exitErr *exec.ExitError
			require.Truef(t, errors.As(err, &exitErr), "expected abnormal termination, got err %v with stderr:\n%s", err, stderr.String())
			line, _, _ := strings.Cut(stderr.String(), "\n")
			assert.Truef(t, test.want.MatchString(line), "diagnostic %q does not match %q", line, test.want)
		})
	}
}

type stringer func() string

func (s stringer) String() string { return s() }
