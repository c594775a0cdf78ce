package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/GoSim-25-26J-441/planner-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/domain"
	"github.com/GoSim-25-26J-441/planner-backend/internal/planner/repository"
)

func newPromptsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Manage prompt templates",
	}

	seed := &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Upsert global prompt templates from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			prompts, err := readPrompts(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			db, err := bootstrap.OpenDB(cmd.Context(), &e.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := repository.NewPromptRepository(db)
			for i := range prompts {
				if err := repo.UpsertGlobal(cmd.Context(), &prompts[i]); err != nil {
					return fmt.Errorf("prompt %s/%s: %w", prompts[i].PromptType, prompts[i].SubType, err)
				}
			}
			e.log.Info("prompts seeded", zap.Int("count", len(prompts)), zap.String("file", args[0]))
			return nil
		},
	}

	var owner string
	list := &cobra.Command{
		Use:   "list",
		Short: "List global prompt templates and, with --owner, that user's own",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := bootstrap.OpenDB(cmd.Context(), &e.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			prompts, err := repository.NewPromptRepository(db).List(cmd.Context(), owner)
			if err != nil {
				return err
			}
			return printPrompts(cmd.OutOrStdout(), prompts)
		},
	}
	list.Flags().StringVar(&owner, "owner", "", "users.id whose templates are listed alongside the global ones")

	cmd.AddCommand(seed, list)
	return cmd
}

// readPrompts decodes a YAML sequence of {type, subType, content} entries.
func readPrompts(r io.Reader) ([]domain.Prompt, error) {
	var prompts []domain.Prompt
	if err := yaml.NewDecoder(r).Decode(&prompts); err != nil {
		return nil, fmt.Errorf("decode prompts: %w", err)
	}
	for i, p := range prompts {
		if p.PromptType == "" || p.Content == "" {
			return nil, fmt.Errorf("entry %d: type and content are required", i)
		}
	}
	return prompts, nil
}

func printPrompts(w io.Writer, prompts []domain.Prompt) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSCOPE\tTYPE\tSUBTYPE\tUPDATED")
	for _, p := range prompts {
		scope := "global"
		if p.OwnerID != "" {
			scope = "owner"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, scope, p.PromptType, p.SubType, p.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
