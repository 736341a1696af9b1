package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"lingualink/internal/bootstrap"
	"lingualink/internal/dto"
)

func newListGlossariesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-glossaries",
		Short: "List all available glossaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWithContainer(cmd, func(ctx context.Context, c *bootstrap.Container) error {
				glossaries, err := c.GlossaryService.List(ctx)
				if err != nil {
					return err
				}

				if len(glossaries) == 0 {
					a.println(cmd, "NoGlossaries", nil)
					return nil
				}

				for _, g := range glossaries {
					industry := a.t("IndustryNone", nil)
					if g.Industry != nil {
						industry = *g.Industry
					}

					a.println(cmd, "GlossaryHeader", map[string]any{"ID": g.Id, "Name": g.Name})
					a.println(cmd, "GlossaryDetails", map[string]any{
						"Industry": industry,
						"Source":   g.SourceLanguage,
						"Target":   g.TargetLanguage,
					})
					a.println(cmd, "GlossaryTermCount", map[string]any{"Count": g.TermCount})
					fmt.Fprintln(cmd.OutOrStdout())
				}
				return nil
			})
		},
	}
}

func newCreateGlossaryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-glossary",
		Short: "Create a glossary with optional terms",
		Example: `  lingualink create-glossary --name "Legal EN-DE" --industry legal \
    --source-lang en --target-lang de --term contract=Vertrag --term court=Gericht`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.stringFlag(cmd, "name", "PromptGlossaryName")
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

			req := &dto.CreateGlossaryRequest{
				Name:           name,
				SourceLanguage: source,
				TargetLanguage: target,
			}

			if cmd.Flags().Changed("industry") {
				industry, _ := cmd.Flags().GetString("industry")
				req.Industry = &industry
			}

			rawTerms, _ := cmd.Flags().GetStringArray("term")
			for _, raw := range rawTerms {
				term, err := parseTerm(raw)
				if err != nil {
					return err
				}
				req.Terms = append(req.Terms, term)
			}

			if err := dto.Validate(req); err != nil {
				return err
			}

			return a.runWithContainer(cmd, func(ctx context.Context, c *bootstrap.Container) error {
				glossary, err := c.GlossaryService.Create(ctx, req)
				if err != nil {
					return err
				}
				a.success(cmd, "GlossaryCreated", map[string]any{"Name": glossary.Name, "ID": glossary.Id})
				return nil
			})
		},
	}

	cmd.Flags().String("name", "", "Name of the glossary")
	cmd.Flags().String("industry", "", "Industry the glossary belongs to")
	cmd.Flags().String("source-lang", "", "Source language code")
	cmd.Flags().String("target-lang", "", "Target language code")
	cmd.Flags().StringArray("term", nil, "Term as source=target (repeatable)")

	return cmd
}

// parseTerm splits "source=target" on the first '='.
func parseTerm(raw string) (dto.GlossaryTermRequest, error) {
	source, target, ok := strings.Cut(raw, "=")
	source, target = strings.TrimSpace(source), strings.TrimSpace(target)
	if !ok || source == "" || target == "" {
		return dto.GlossaryTermRequest{}, fmt.Errorf("invalid term %q, expected source=target", raw)
	}
	return dto.GlossaryTermRequest{SourceTerm: source, TargetTranslation: target}, nil
}
