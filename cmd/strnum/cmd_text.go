// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/strnum/anagram"
	"github.com/katalvlaran/strnum/codepoint"
	"github.com/katalvlaran/strnum/freq"
	"github.com/katalvlaran/strnum/lcp"
	"github.com/katalvlaran/strnum/permute"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) freqCmd() *cobra.Command {
	var (
		firstUnique, duplicates, most, skipSpace bool
		needle                                   string
	)
	cmd := &cobra.Command{
		Use:   "freq <text>",
		Short: "Count code points; optionally report the first unique, duplicates or most frequent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []freq.Option
			if skipSpace {
				opts = append(opts, freq.WithSkipWhitespace())
			}
			a.logger.Debug("freq", zap.Int("bytes", len(args[0])), zap.Bool("skip_space", skipSpace))
			p := newPrinter(cmd.OutOrStdout())
			text := args[0]

			switch {
			case cmd.Flags().Changed("count"):
				n, err := freq.Occurrences(text, needle)
				if err != nil {
					return fmt.Errorf("freq: %w", err)
				}
				p.field(fmt.Sprintf("%q", needle), n)
			case firstUnique:
				r, ok, err := freq.FirstUnique(text, opts...)
				if err != nil {
					return fmt.Errorf("freq: %w", err)
				}
				if !ok {
					p.line("none")
					return nil
				}
				p.line(string(r))
			case duplicates:
				entries, err := freq.Duplicates(text, opts...)
				if err != nil {
					return fmt.Errorf("freq: %w", err)
				}
				for _, e := range entries {
					p.field(fmt.Sprintf("%q", e.Rune), e.Count)
				}
			case most:
				e, ok, err := freq.MostFrequent(text, opts...)
				if err != nil {
					return fmt.Errorf("freq: %w", err)
				}
				if !ok {
					p.line("none")
					return nil
				}
				p.field(fmt.Sprintf("%q", e.Rune), e.Count)
			default:
				table, err := freq.Frequencies(text, opts...)
				if err != nil {
					return fmt.Errorf("freq: %w", err)
				}
				p.header(fmt.Sprintf("%d code points, %d distinct", table.Total(), table.Len()))
				table.Each(func(e freq.Entry) bool {
					p.field(fmt.Sprintf("%q", e.Rune), e.Count)
					return true
				})
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&firstUnique, "first-unique", false, "print the first code point that occurs once")
	cmd.Flags().BoolVar(&duplicates, "duplicates", false, "print code points that occur more than once")
	cmd.Flags().BoolVar(&most, "most", false, "print the most frequent code point")
	cmd.Flags().BoolVar(&skipSpace, "skip-space", false, "ignore whitespace")
	cmd.Flags().StringVar(&needle, "count", "", "print how often this single character occurs")
	cmd.MarkFlagsMutuallyExclusive("first-unique", "duplicates", "most", "count")

	return cmd
}

func (a *app) anagramCmd() *cobra.Command {
	var fold, strip, nfc bool
	cmd := &cobra.Command{
		Use:   "anagram <a> <b>",
		Short: "Report whether two strings are rearrangements of each other",
		Long: `Report whether two strings contain the same code points with the same
multiplicities. Flags add normalisation on top of the anagram section of
the config file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.AnagramOptions()
			if nfc {
				opts = append(opts, anagram.WithNFC())
			}
			if fold {
				opts = append(opts, anagram.WithCaseFold())
			}
			if strip {
				opts = append(opts, anagram.WithStripWhitespace())
			}
			a.logger.Debug("anagram", zap.Int("options", len(opts)))

			ok, err := anagram.IsAnagram(args[0], args[1], opts...)
			if err != nil {
				return fmt.Errorf("anagram: %w", err)
			}
			newPrinter(cmd.OutOrStdout()).verdict(ok)

			return nil
		},
	}
	cmd.Flags().BoolVar(&fold, "fold", false, "compare case-insensitively (Unicode case folding)")
	cmd.Flags().BoolVar(&strip, "strip-space", false, "ignore whitespace")
	cmd.Flags().BoolVar(&nfc, "nfc", false, "normalise to NFC first")

	return cmd
}

func (a *app) lcpCmd() *cobra.Command {
	var strategy string
	cmd := &cobra.Command{
		Use:   "lcp <s1> [s2 ...]",
		Short: "Longest common prefix of the arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd.OutOrStdout())
			if strategy == "all" {
				for _, s := range lcp.Strategies() {
					prefix, err := lcp.Find(args, lcp.WithStrategy(s))
					if err != nil {
						return fmt.Errorf("lcp %s: %w", s, err)
					}
					p.field(s.String(), fmt.Sprintf("%q", prefix))
				}
				return nil
			}

			s := a.cfg.Strategy()
			if strategy != "" {
				var err error
				if s, err = lcp.ParseStrategy(strategy); err != nil {
					return fmt.Errorf("lcp: %w", err)
				}
			}
			a.logger.Debug("lcp", zap.Stringer("strategy", s), zap.Int("strings", len(args)))

			prefix, err := lcp.Find(args, lcp.WithStrategy(s))
			if err != nil {
				return fmt.Errorf("lcp %s: %w", s, err)
			}
			p.line(fmt.Sprintf("%q", prefix))

			return nil
		},
	}
	names := make([]string, 0, len(lcp.Strategies())+1)
	for _, s := range lcp.Strategies() {
		names = append(names, s.String())
	}
	names = append(names, "all")
	cmd.Flags().StringVar(&strategy, "strategy", "", "one of "+strings.Join(names, ", ")+" (default from config)")

	return cmd
}

func (a *app) permuteCmd() *cobra.Command {
	var (
		maxLength int
		count     bool
	)
	cmd := &cobra.Command{
		Use:   "permute <text>",
		Short: "Print every distinct arrangement of the code points of text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrinter(cmd.OutOrStdout())
			if count {
				n, err := permute.Count(args[0])
				if err != nil {
					return fmt.Errorf("permute: %w", err)
				}
				p.line(n)
				return nil
			}

			limit := a.cfg.Permute.MaxLength
			if cmd.Flags().Changed("max-length") {
				limit = maxLength
			}
			if limit <= 0 {
				return fmt.Errorf("permute: %w: max-length %d", permute.ErrInvalidInput, limit)
			}
			a.logger.Debug("permute", zap.Int("max_length", limit))

			emitted := 0
			err := permute.Each(args[0], func(s string) bool {
				p.line(s)
				emitted++
				return true
			}, permute.WithMaxLength(limit), permute.WithContext(cmd.Context()))
			if err != nil {
				return fmt.Errorf("permute: %w", err)
			}
			a.logger.Debug("permute done", zap.Int("emitted", emitted))

			return nil
		},
	}
	cmd.Flags().IntVar(&maxLength, "max-length", permute.DefaultMaxLength, "largest accepted input in code points")
	cmd.Flags().BoolVar(&count, "count", false, "print only the number of arrangements")

	return cmd
}

func (a *app) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <text> <char>",
		Short: "Remove every occurrence of one character from text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := codepoint.Single(args[1])
			if err != nil {
				return fmt.Errorf("remove: %w", err)
			}
			a.logger.Debug("remove", zap.String("char", fmt.Sprintf("%U", r)))
			out, err := codepoint.Remove(args[0], r)
			if err != nil {
				return fmt.Errorf("remove: %w", err)
			}
			newPrinter(cmd.OutOrStdout()).line(out)

			return nil
		},
	}
}

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <text>",
		Short: "Show code point count, UTF-16 length, reversal and palindrome check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := codepoint.Decode(args[0])
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			reversed, err := codepoint.Reverse(args[0])
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}
			palindrome, err := codepoint.IsPalindrome(args[0])
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			p := newPrinter(cmd.OutOrStdout())
			p.field("bytes", len(args[0]))
			p.field("code points", seq.Len())
			p.field("utf-16 units", len(codepoint.EncodeUTF16(seq)))
			p.field("reversed", reversed)
			p.field("palindrome", palindrome)

			return nil
		},
	}
}
