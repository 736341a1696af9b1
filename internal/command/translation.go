package command

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lingualink/internal/bootstrap"
	"lingualink/internal/dto"
)

const historyTimeLayout = "2006-01-02 15:04:05"

func newTranslateTextCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate-text",
		Short: "Translate text and record it in the user's history",
		Long: `Translate text with the configured provider, or with the built-in phrase
table when no provider is available. With --glossary-id, the glossary's terms
are applied to provider output. The glossary id is recorded even when no
such glossary exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userId, err := a.uintFlag(cmd, "user-id", "PromptUserID")
			if err != nil {
				return err
			}
			text, err := a.stringFlag(cmd, "text", "PromptText")
			if err != nil {
				return err
			}
			source, err := a.stringFlag(cmd, "source-lang", "PromptSourceLanguage")
			if err != nil {
				return err
			}
			target, err := a.stringFlag(cmd, "target-lang", "PromptTargetLanguage")
			if err != nil {
				return err
			}
			glossaryId, _ := cmd.Flags().GetUint("glossary-id")

			req := &dto.TranslateRequest{
				UserId:         userId,
				Text:           text,
				SourceLanguage: source,
				TargetLanguage: target,
				GlossaryId:     glossaryId,
			}
			if err := dto.Validate(req); err != nil {
				return err
			}

			return a.runWithContainer(cmd, func(ctx context.Context, c *bootstrap.Container) error {
				res, err := c.TranslationService.Translate(ctx, req)
				if err != nil {
					return err
				}

				if res.GlossaryName != "" {
					a.println(cmd, "UsingGlossary", map[string]any{"Name": res.GlossaryName})
				}
				a.println(cmd, "TranslatedText", map[string]any{"Text": res.TranslatedText})
				a.success(cmd, "TranslationSaved", map[string]any{"ID": res.Id})
				return nil
			})
		},
	}

	cmd.Flags().Uint("user-id", 0, "ID of the user")
	cmd.Flags().String("text", "", "Text to be translated")
	cmd.Flags().String("source-lang", "", "Source language code")
	cmd.Flags().String("target-lang", "", "Target language code")
	cmd.Flags().Uint("glossary-id", 0, "Glossary ID to use for translation")

	return cmd
}

func newTranslationHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translation-history",
		Short: "View translation history for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userId, err := a.uintFlag(cmd, "user-id", "PromptUserID")
			if err != nil {
				return err
			}

			return a.runWithContainer(cmd, func(ctx context.Context, c *bootstrap.Container) error {
				entries, err := c.TranslationService.History(ctx, userId)
				if err != nil {
					return err
				}

				if len(entries) == 0 {
					a.println(cmd, "NoTranslationHistory", nil)
					return nil
				}

				out := cmd.OutOrStdout()
				for i, e := range entries {
					a.println(cmd, "HistoryHeader", map[string]any{
						"Index":     i + 1,
						"CreatedAt": e.CreatedAt.UTC().Format(historyTimeLayout),
						"Source":    e.SourceLanguage,
						"Target":    e.TargetLanguage,
					})
					a.println(cmd, "HistorySource", map[string]any{"Text": e.SourceText})
					a.println(cmd, "HistoryTranslation", map[string]any{"Text": e.TranslatedText})
					if e.GlossaryId != nil && *e.GlossaryId != 0 {
						name := e.GlossaryName
						if name == "" {
							name = a.t("GlossaryUnknown", nil)
						}
						a.println(cmd, "HistoryGlossary", map[string]any{"Name": name})
					}
					fmt.Fprintln(out)
				}
				return nil
			})
		},
	}

	cmd.Flags().Uint("user-id", 0, "ID of the user")

	return cmd
}
