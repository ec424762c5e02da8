package cmd

import (
	"fmt"
	"strings"

	corpusfile "github.com/bnema/verbtrainer/internal/adapters/corpus/file"
	replyrender "github.com/bnema/verbtrainer/internal/adapters/render/reply"
	"github.com/bnema/verbtrainer/internal/domain"
	"github.com/spf13/cobra"
)

type corpusFlags struct {
	verbs        string
	translations string
}

func newCorpusCmd(load appLoader) *cobra.Command {
	flags := &corpusFlags{}

	corpusCmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect and validate the verb corpus",
	}
	corpusCmd.PersistentFlags().StringVar(&flags.verbs, "verbs", "", "conjugation file (json, toml or yaml); overrides corpus.verbs")
	corpusCmd.PersistentFlags().StringVar(&flags.translations, "translations", "", "translation file; overrides corpus.translations")

	corpusCmd.AddCommand(
		newCorpusCheckCmd(load, flags),
		newCorpusShowCmd(load, flags),
		newCorpusStatsCmd(load, flags),
		newCorpusExportCmd(load, flags),
	)

	return corpusCmd
}

func loadCorpusWithFlags(cmd *cobra.Command, load appLoader, flags *corpusFlags) (*app, *domain.Corpus, error) {
	app, err := load(cmd)
	if err != nil {
		return nil, nil, err
	}
	if flags.verbs != "" {
		app.cfg.Corpus.Verbs = flags.verbs
		app.cfg.Corpus.Translations = flags.translations
	}

	corpus, err := app.loadCorpus(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	return app, corpus, nil
}

func newCorpusCheckCmd(load appLoader, flags *corpusFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the corpus against the tense catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, corpus, err := loadCorpusWithFlags(cmd, load, flags)
			if err != nil {
				return err
			}

			catalog := corpus.Catalog()
			forms := corpus.Len() * len(catalog.Tenses) * domain.PersonCount
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "corpus ok: %d verbs, %d tenses, %d groups, %d forms\n",
				corpus.Len(), len(catalog.Tenses), len(catalog.Groups), forms)
			return err
		},
	}
}

func newCorpusShowCmd(load appLoader, flags *corpusFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <verb>",
		Short: "Print the conjugation table of one verb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, corpus, err := loadCorpusWithFlags(cmd, load, flags)
			if err != nil {
				return err
			}

			id := domain.VerbID(strings.ToLower(strings.TrimSpace(args[0])))
			verb, ok := corpus.Verb(id)
			if !ok {
				return fmt.Errorf("verb %q: %w", id, domain.ErrNotFound)
			}

			rendered, err := replyrender.RenderVerb(verb, corpus.Catalog())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newCorpusStatsCmd(load appLoader, flags *corpusFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print verb, tense and group counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, corpus, err := loadCorpusWithFlags(cmd, load, flags)
			if err != nil {
				return err
			}

			rendered, err := replyrender.RenderStats(corpus)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newCorpusExportCmd(load appLoader, flags *corpusFlags) *cobra.Command {
	var format string
	var translations bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the validated corpus as json, toml or yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := corpusfile.ParseFormat(format)
			if err != nil {
				return err
			}

			_, corpus, err := loadCorpusWithFlags(cmd, load, flags)
			if err != nil {
				return err
			}

			return corpusfile.ExportCorpus(cmd.OutOrStdout(), corpus, parsed, translations)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(corpusfile.FormatJSON), "output format: json, toml or yaml")
	cmd.Flags().BoolVar(&translations, "translations-only", false, "export translations instead of conjugations")

	return cmd
}
