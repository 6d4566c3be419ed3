package branch

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestName(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want string
	}{
		{
			name: "slash without date",
			spec: Spec{Prefix: "release", Username: "my", Commit: "abcd1234", Detail: "master", Separator: "/"},
			want: "release/my/abcd1234/master",
		},
		{
			name: "slash with date",
			spec: Spec{Prefix: "release", Username: "my", Commit: "abcd1234", Detail: "master", Separator: "/", IncludeDate: true, Date: "20240101"},
			want: "release/my/abcd1234/master_20240101",
		},
		{
			name: "underscore with date",
			spec: Spec{Prefix: "feature", Username: "wy", Commit: "0011aabb", Detail: "login", Separator: "_", IncludeDate: true, Date: "20241231"},
			want: "feature_wy_0011aabb_login_20241231",
		},
		{
			name: "empty separator defaults to slash",
			spec: Spec{Prefix: "hotfix", Username: "zl", Commit: "deadbeef", Detail: "crash"},
			want: "hotfix/zl/deadbeef/crash",
		},
		{
			name: "date ignored when not requested",
			spec: Spec{Prefix: "dev", Username: "my", Commit: "abcd1234", Detail: "x", Separator: "/", Date: "20240101"},
			want: "dev/my/abcd1234/x",
		},
		{
			name: "separator in free text passes through",
			spec: Spec{Prefix: "feature", Username: "my", Commit: "abcd1234", Detail: "api/v2", Separator: "/"},
			want: "feature/my/abcd1234/api/v2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Name(tt.spec); got != tt.want {
				t.Fatalf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNameJoinsPartsWithSeparator(t *testing.T) {
	for _, sep := range []string{"/", "_"} {
		for _, withDate := range []bool{false, true} {
			s := Spec{Prefix: "p", Username: "u", Commit: "c", Detail: "d", Separator: sep, IncludeDate: withDate, Date: "20240305"}
			want := strings.Join(s.Parts(), sep)
			if withDate {
				want += "_20240305"
			}
			if got := Name(s); got != want {
				t.Fatalf("Name(sep=%q, date=%v) = %q, want %q", sep, withDate, got, want)
			}
		}
	}
}

func TestDateStamp(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), "20240101"},
		{time.Date(2022, time.August, 8, 23, 59, 0, 0, time.UTC), "20220808"},
		{time.Date(2023, time.December, 25, 12, 0, 0, 0, time.UTC), "20231225"},
	}
	for _, tt := range tests {
		got := DateStamp(tt.in)
		if got != tt.want {
			t.Fatalf("DateStamp(%v) = %q, want %q", tt.in, got, tt.want)
		}
		if len(got) != 8 {
			t.Fatalf("DateStamp(%v) length = %d, want 8", tt.in, len(got))
		}
	}
}

func TestShortHash(t *testing.T) {
	tests := []struct {
		hash string
		n    int
		want string
	}{
		{"abcdef1234567890", 8, "abcdef12"},
		{"abc1234", 8, "abc1234"},
		{"  abcdef123\n", 8, "abcdef12"},
		{"abcdef", 0, "abcdef"},
	}
	for _, tt := range tests {
		if got := ShortHash(tt.hash, tt.n); got != tt.want {
			t.Fatalf("ShortHash(%q, %d) = %q, want %q", tt.hash, tt.n, got, tt.want)
		}
	}
}

func TestConflicts(t *testing.T) {
	s := Spec{Prefix: "feat/x", Username: "my", Commit: "abcd1234", Detail: "a/b", Separator: "/"}
	got := Conflicts(s)
	want := []string{"prefix", "detail"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Conflicts() = %v, want %v", got, want)
	}

	s.Separator = "_"
	if got := Conflicts(s); len(got) != 0 {
		t.Fatalf("Conflicts() with underscore = %v, want none", got)
	}
}

func TestSanitize(t *testing.T) {
	s := Spec{Prefix: "feature", Username: "my_name", Commit: "abcd1234", Detail: "fix_login", Separator: "_"}
	got := Name(Sanitize(s, "-"))
	if got != "feature_my-name_abcd1234_fix-login" {
		t.Fatalf("Name(Sanitize()) = %q", got)
	}
	if Name(s) != "feature_my_name_abcd1234_fix_login" {
		t.Fatalf("Sanitize mutated the original spec")
	}
}
