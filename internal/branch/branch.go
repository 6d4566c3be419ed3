package branch

import (
	"strings"
	"time"
)

// DefaultSeparator joins the main name parts when none was chosen.
const DefaultSeparator = "/"

// DateSeparator always precedes the date suffix, whatever the main separator is.
const DateSeparator = "_"

// Spec describes a branch to create. It lives for one run only.
type Spec struct {
	Prefix      string
	Username    string
	Commit      string
	Detail      string
	Separator   string
	IncludeDate bool
	Date        string // YYYYMMDD
}

// Parts returns the main name parts in join order.
func (s Spec) Parts() []string {
	return []string{s.Prefix, s.Username, s.Commit, s.Detail}
}

func (s Spec) separator() string {
	if s.Separator == "" {
		return DefaultSeparator
	}
	return s.Separator
}

// Name assembles the branch name. Parts are joined verbatim; nothing typed
// into a free-text field is escaped.
func Name(s Spec) string {
	name := strings.Join(s.Parts(), s.separator())
	if s.IncludeDate {
		name += DateSeparator + s.Date
	}
	return name
}

// DateStamp formats t as an 8 digit YYYYMMDD string.
func DateStamp(t time.Time) string {
	return t.Format("20060102")
}

// ShortHash returns the first n characters of hash.
func ShortHash(hash string, n int) string {
	hash = strings.TrimSpace(hash)
	if n <= 0 || len(hash) <= n {
		return hash
	}
	return hash[:n]
}

// Conflicts reports the free-text fields that contain the chosen separator.
// Such names are still valid git refs but cannot be split back into parts.
func Conflicts(s Spec) []string {
	sep := s.separator()
	var fields []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"prefix", s.Prefix},
		{"username", s.Username},
		{"detail", s.Detail},
	} {
		if strings.Contains(f.value, sep) {
			fields = append(fields, f.name)
		}
	}
	return fields
}

// Sanitize returns a copy of s with the separator replaced in the
// free-text fields.
func Sanitize(s Spec, replacement string) Spec {
	sep := s.separator()
	if replacement == sep {
		return s
	}
	out := s
	out.Prefix = strings.ReplaceAll(s.Prefix, sep, replacement)
	out.Username = strings.ReplaceAll(s.Username, sep, replacement)
	out.Detail = strings.ReplaceAll(s.Detail, sep, replacement)
	return out
}
