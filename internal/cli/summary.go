package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/andyrewlee/mkbranch/internal/ui/common"
	"github.com/andyrewlee/mkbranch/internal/wizard"
)

func renderSummary(w io.Writer, s common.Styles, res *wizard.Result, checkout bool) {
	spec := res.Spec
	date := "-"
	if spec.IncludeDate {
		date = spec.Date
	}
	commit := spec.Commit
	if res.SourceBranch != "" {
		commit += " (" + res.SourceBranch + ")"
	}

	rows := []struct{ label, value string }{
		{"Prefix", spec.Prefix},
		{"Username", spec.Username},
		{"Commit", commit},
		{"Detail", spec.Detail},
		{"Separator", spec.Separator},
		{"Date", date},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(s.Label.Render(r.label))
		b.WriteString(r.value)
		b.WriteString("\n")
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, b.String())
	fmt.Fprintln(w, s.Box.Render(s.BranchName.Render(res.Name)))

	switch {
	case res.Sanitized:
		fmt.Fprintln(w, s.Help.Render(fmt.Sprintf("Replaced separator %q in %s",
			spec.Separator, strings.Join(res.Conflicts, ", "))))
	case len(res.Conflicts) > 0:
		fmt.Fprintln(w, s.Warning.Render(fmt.Sprintf("%s separator %q appears in %s",
			common.Icons.Warning, spec.Separator, strings.Join(res.Conflicts, ", "))))
	}

	switch {
	case !res.Created:
		fmt.Fprintln(w, s.Help.Render("Dry run, no branch created."))
	case checkout:
		fmt.Fprintln(w, s.Success.Render(common.Icons.Check+" New branch created and checked out: ")+res.Name)
	default:
		fmt.Fprintln(w, s.Success.Render(common.Icons.Check+" New branch created: ")+res.Name)
	}
}
