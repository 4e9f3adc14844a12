package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"yumbridge/pkg/hostfacts"
	"yumbridge/pkg/pkgstate"
)

// Table wraps tabwriter for consistent styling.
type Table struct {
	writer  *tabwriter.Writer
	headers []string
}

// NewTable creates a new table writing to stdout.
func NewTable(header []string) *Table {
	return NewTableWriter(os.Stdout, header)
}

// NewTableWriter creates a new table that writes to a specific writer.
func NewTableWriter(w io.Writer, header []string) *Table {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	t := &Table{
		writer:  tw,
		headers: header,
	}
	if len(header) > 0 {
		headerRow := make([]string, len(header))
		for i, h := range header {
			headerRow[i] = Bold(strings.ToUpper(h))
		}
		fmt.Fprintln(tw, strings.Join(headerRow, "\t"))
	}
	return t
}

// AddRow adds a row to the table.
func (t *Table) AddRow(row []string) {
	fmt.Fprintln(t.writer, strings.Join(row, "\t"))
}

// Render outputs the table.
func (t *Table) Render() {
	t.writer.Flush()
}

// PrintChanges prints a change set, names sorted.
func PrintChanges(changes pkgstate.ChangeSet) {
	if changes.IsEmpty() {
		MutedMsg("No changes")
		return
	}

	table := NewTable([]string{"package", "old", "new"})
	for _, name := range changes.Names() {
		ch := changes[name]
		old := ch.Old
		if old == "" {
			old = "-"
		}
		table.AddRow([]string{
			PackageName.Sprint(name),
			OldVersion.Sprint(old),
			PackageVersion.Sprint(ch.New),
		})
	}
	table.Render()
}

// PrintRemoved prints the names removed by an operation.
func PrintRemoved(names []string) {
	if len(names) == 0 {
		MutedMsg("Nothing removed")
		return
	}
	for _, name := range names {
		fmt.Printf("  %s %s\n", Red(SymbolError), RemovedName.Sprint(name))
	}
}

// PrintVersionMap prints a name-to-version map, names sorted. Empty
// versions render as a dash.
func PrintVersionMap(versions map[string]string) {
	if len(versions) == 0 {
		MutedMsg("No packages")
		return
	}

	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)

	table := NewTable([]string{"package", "version"})
	for _, name := range names {
		version := versions[name]
		if version == "" {
			version = "-"
		}
		table.AddRow([]string{
			PackageName.Sprint(name),
			PackageVersion.Sprint(version),
		})
	}
	table.Render()
}

// PrintInstalled prints an installed-set snapshot. With asList set,
// multi-version packages get one row per version instead of a joined
// display string.
func PrintInstalled(snap pkgstate.Snapshot, asList bool) {
	if len(snap) == 0 {
		MutedMsg("No packages installed")
		return
	}

	table := NewTable([]string{"package", "version"})
	for _, name := range snap.Names() {
		if asList {
			for _, version := range snap.Versions(name) {
				table.AddRow([]string{
					PackageName.Sprint(name),
					PackageVersion.Sprint(version),
				})
			}
			continue
		}
		table.AddRow([]string{
			PackageName.Sprint(name),
			PackageVersion.Sprint(snap.Version(name)),
		})
	}
	table.Render()
}

// PrintFacts prints the detected host facts.
func PrintFacts(f hostfacts.Facts) {
	HeaderMsg("Host Facts")

	printField("Distribution", f.ID)
	if len(f.Family) > 0 {
		printField("Family", strings.Join(f.Family, ", "))
	}
	printField("Version", f.VersionID)
	printField("Architecture", f.CPUArch)
}

func printField(label, value string) {
	if value == "" {
		value = "-"
	}
	fmt.Printf("  %s: %s\n", Cyan(label), value)
}
