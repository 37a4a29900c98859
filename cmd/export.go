package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/letteragent/letteragent/pkg/export"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a letter as PDF, Word, or print-ready HTML",
		Long: `Exports a letter text file to a shareable document. The letter text
is embedded byte-for-byte; whitespace is preserved and nothing beyond
format-mandated escaping is applied.`,
	}

	cmd.AddCommand(newExportPDFCmd())
	cmd.AddCommand(newExportDocCmd())
	cmd.AddCommand(newExportHTMLCmd())

	return cmd
}

func readLetter(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read letter: %w", err)
	}
	return string(data), nil
}

func outputPath(flag, input, ext string) string {
	if flag != "" {
		return flag
	}
	base := strings.TrimSuffix(input, ".txt")
	return base + ext
}

func newExportPDFCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pdf <letter.txt>",
		Short: "Render the letter to an A4 PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			text, err := readLetter(args[0])
			if err != nil {
				return err
			}
			path := outputPath(out, args[0], ".pdf")
			r := export.NewPDFRenderer(getLogger())
			if err := r.WritePDF(path, text, export.PDFOptions{
				FontPath: cfg.Export.FontPath,
				FontSize: cfg.Export.FontSize,
			}); err != nil {
				return err
			}
			log.WithField("path", path).Info("PDF written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output path (default: input with .pdf)")

	return cmd
}

func newExportDocCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "doc <letter.txt>",
		Short: "Write a Word-compatible .doc document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readLetter(args[0])
			if err != nil {
				return err
			}
			path := outputPath(out, args[0], ".doc")
			if err := export.WriteDoc(path, text); err != nil {
				return err
			}
			log.WithField("path", path).Info("Word document written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output path (default: input with .doc)")

	return cmd
}

func newExportHTMLCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "html <letter.txt>",
		Short: "Write a print-ready HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readLetter(args[0])
			if err != nil {
				return err
			}
			path := outputPath(out, args[0], ".html")
			if err := export.WriteHTML(path, text); err != nil {
				return err
			}
			log.WithField("path", path).Info("HTML document written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Output path (default: input with .html)")

	return cmd
}
