package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/cloudquest/internal/curriculum"
)

const (
	modulesSheet   = "Modules"
	resourcesSheet = "Resources"
)

var curriculumCmd = &cobra.Command{
	Use:   "curriculum",
	Short: "Inspect the built-in curriculum",
}

var curriculumListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print tracks, modules and topics",
	Run: func(cmd *cobra.Command, args []string) {
		printCurriculum(cmd.OutOrStdout(), curriculum.Default())
	},
}

var curriculumExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the curriculum and resource directory to an .xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if err := exportCurriculum(curriculum.Default(), out); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", out)
		return nil
	},
}

func printCurriculum(w io.Writer, c *curriculum.Catalog) {
	for _, tr := range c.Tracks() {
		fmt.Fprintln(w, tr.Title)
		for _, m := range tr.Modules {
			fmt.Fprintf(w, "  %-20s %s [%s, %s]\n", m.ID, m.Title, m.Category.DisplayName(), m.Difficulty)
			for _, t := range m.Topics {
				fmt.Fprintf(w, "      %-6s %-22s %s\n", t.Type, t.ID, t.Title)
			}
		}
	}
	fmt.Fprintf(w, "\n%d modules, %d topics\n", len(c.AllModules()), c.TopicCount())
}

// exportCurriculum writes one row per topic to the Modules sheet and one row
// per resource to the Resources sheet.
func exportCurriculum(c *curriculum.Catalog, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes Modules.
	if err := f.SetSheetName(f.GetSheetName(0), modulesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	rows := [][]any{{"Track", "Module ID", "Module", "Category", "Difficulty", "Topic ID", "Topic", "Type"}}
	for _, tr := range c.Tracks() {
		for _, m := range tr.Modules {
			for _, t := range m.Topics {
				rows = append(rows, []any{
					tr.Title, m.ID, m.Title, m.Category.DisplayName(), string(m.Difficulty),
					t.ID, t.Title, string(t.Type),
				})
			}
		}
	}
	if err := writeRows(f, modulesSheet, rows); err != nil {
		return err
	}

	if _, err := f.NewSheet(resourcesSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	rows = [][]any{{"Category", "Title", "Description", "URL", "Tags"}}
	for _, cat := range c.Resources() {
		for _, r := range cat.Items {
			rows = append(rows, []any{cat.Title, r.Title, r.Description, r.URL, strings.Join(r.Tags, ", ")})
		}
	}
	if err := writeRows(f, resourcesSheet, rows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func init() {
	curriculumExportCmd.Flags().StringP("out", "o", "cloudquest-curriculum.xlsx", "Output .xlsx path")

	curriculumCmd.AddCommand(curriculumListCmd)
	curriculumCmd.AddCommand(curriculumExportCmd)
}
