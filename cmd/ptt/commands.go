// cmd/ptt/commands.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/codr1/ThemeStudio/internal/palette"
	"github.com/codr1/ThemeStudio/internal/ptt"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ptt",
		Short:        "ptt - picoTracker theme file tool",
		Long:         "Create, inspect and convert picoTracker .ptt theme files.",
		SilenceUsage: true,
	}
	root.AddCommand(
		newDefaultsCmd(),
		newRandomCmd(),
		newImportCmd(),
		newExportCmd(),
		newDescribeCmd(),
	)
	return root
}

func newDefaultsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the default theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTheme(cmd.OutOrStdout(), palette.Defaults(), asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of .ptt XML")
	return cmd
}

func newRandomCmd() *cobra.Command {
	var (
		seed   uint64
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a randomized theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var r *rand.Rand
			if cmd.Flags().Changed("seed") {
				r = rand.New(rand.NewPCG(seed, seed))
			}
			return writeTheme(cmd.OutOrStdout(), palette.Randomize(r), asJSON)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible output")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of .ptt XML")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Print the recognized colors of a theme file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := decodeFile(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), slotMap(colors))
		},
	}
}

func newExportCmd() *cobra.Command {
	var (
		name   string
		sets   []string
		from   string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a .ptt file built from flags over the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := make(map[string]string)
			if from != "" {
				colors, err := decodeFile(from)
				if err != nil {
					return err
				}
				for slot, value := range colors {
					form[string(slot)] = value
				}
			}
			for _, assignment := range sets {
				slotName, value, ok := strings.Cut(assignment, "=")
				if !ok {
					return fmt.Errorf("--set %q: expected SLOT=#RRGGBB", assignment)
				}
				slot, ok := palette.ParseSlot(strings.ToUpper(strings.TrimSpace(slotName)))
				if !ok {
					return fmt.Errorf("--set %q: unknown slot %q", assignment, slotName)
				}
				if !palette.IsHexColor(value) {
					return fmt.Errorf("--set %q: %q is not a #RRGGBB color", assignment, value)
				}
				form[string(slot)] = value
			}

			path := filepath.Join(outDir, ptt.FileName(name))
			set := palette.BuildExport(form, palette.Defaults())
			if err := os.WriteFile(path, ptt.Marshal(set), 0o644); err != nil {
				return fmt.Errorf("write theme file: %w", err)
			}
			log.Info().Str("path", path).Msg("Theme written")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", ptt.FallbackThemeName, "Theme name (file name without extension)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Slot override as SLOT=#RRGGBB (repeatable)")
	cmd.Flags().StringVar(&from, "from", "", "Start from the colors of an existing theme file")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	return cmd
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE",
		Short: "List the colors of a theme file with their nearest names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := decodeFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, slot := range palette.Slots() {
				value, ok := colors[slot]
				if !ok {
					fmt.Fprintf(out, "%-15s (missing)\n", slot)
					continue
				}
				name, err := palette.NearestName(value)
				if err != nil {
					name = "?"
				}
				fmt.Fprintf(out, "%-15s %-8s %s\n", slot, value, name)
			}
			return nil
		},
	}
}

func decodeFile(path string) (map[palette.Slot]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open theme file: %w", err)
	}
	defer file.Close()

	colors, err := ptt.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return colors, nil
}

func writeTheme(w io.Writer, set palette.ColorSet, asJSON bool) error {
	if asJSON {
		return writeJSON(w, set)
	}
	if err := ptt.Encode(w, set); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// slotMap converts decoded colors to string keys; encoding/json sorts them.
func slotMap(colors map[palette.Slot]string) map[string]string {
	out := make(map[string]string, len(colors))
	for slot, value := range colors {
		out[string(slot)] = value
	}
	return out
}
