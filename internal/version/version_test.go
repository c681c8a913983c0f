package version

import "testing"

func withVersion(t *testing.T, v, commit, built string) {
	t.Helper()
	origVersion, origCommit, origBuildTime := Version, Commit, BuildTime
	t.Cleanup(func() {
		Version, Commit, BuildTime = origVersion, origCommit, origBuildTime
	})
	Version, Commit, BuildTime = v, commit, built
}

func TestString(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		withVersion(t, "dev", "unknown", "unknown")

		if got, want := String(), "dev (unknown) built unknown"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("custom values", func(t *testing.T) {
		withVersion(t, "1.2.3", "abc1234", "2026-01-15T10:30:00Z")

		if got, want := String(), "1.2.3 (abc1234) built 2026-01-15T10:30:00Z"; got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})
}

func TestUserAgent(t *testing.T) {
	withVersion(t, "1.2.3", "abc1234", "unknown")

	if got, want := UserAgent("mcctl"), "mcctl/1.2.3 (+abc1234)"; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}
