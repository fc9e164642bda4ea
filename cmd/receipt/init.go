package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	receiptpdf "github.com/porticus-lab/go-receipt-pdf"
)

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write sample products.csv and template.html into the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := []struct {
				name string
				data []byte
			}{
				{"products.csv", receiptpdf.SampleProducts()},
				{"template.html", []byte(receiptpdf.DefaultTemplateSource())},
			}
			for _, f := range files {
				written, err := writeSample(f.name, f.data, force)
				if err != nil {
					return err
				}
				if written {
					fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", f.name)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "kept existing %s\n", f.name)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}

// writeSample creates name unless it exists and force is false.
func writeSample(name string, data []byte, force bool) (bool, error) {
	flag := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flag |= os.O_EXCL
	}
	f, err := os.OpenFile(name, flag, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("creating %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, fmt.Errorf("writing %s: %w", name, err)
	}
	return true, f.Close()
}
