package application

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/rios0rios0/bumpwatch/domain"
)

const commentHeader = "## :warning: Major version bumps detected"

// bumpRow is one line of the summary table.
type bumpRow struct {
	Path string
	Old  string
	New  string
}

// RenderComment renders the markdown summary posted on the pull request.
// Rows are ordered by new version descending so the largest targets appear
// first, with the package path as tiebreaker.
func RenderComment(result domain.AnalysisResult, manifestPath string) string {
	rows := make([]bumpRow, 0, len(result.MajorBumps))
	for path, bump := range result.MajorBumps {
		rows = append(rows, bumpRow{Path: path, Old: bump.Old, New: bump.New})
	}
	sortRowsByVersionDescending(rows)

	var b strings.Builder
	b.WriteString(commentHeader + "\n\n")
	fmt.Fprintf(&b, "The following entries in `%s` increase their major version:\n\n", manifestPath)
	b.WriteString("| Package | Old | New |\n")
	b.WriteString("|---|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", row.Path, row.Old, row.New)
	}
	b.WriteString("\nPlease confirm these breaking releases are intentional before merging.\n")
	return b.String()
}

// sortRowsByVersionDescending orders rows newest target version first.
func sortRowsByVersionDescending(rows []bumpRow) {
	sort.Slice(rows, func(i, j int) bool {
		v1 := normalizeVersion(rows[i].New)
		v2 := normalizeVersion(rows[j].New)
		if semver.IsValid(v1) && semver.IsValid(v2) && semver.Compare(v1, v2) != 0 {
			return semver.Compare(v1, v2) > 0
		}
		return rows[i].Path < rows[j].Path
	})
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
