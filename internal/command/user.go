package command

import (
	"context"

	"github.com/spf13/cobra"

	"lingualink/internal/bootstrap"
	"lingualink/internal/dto"
)

func newCreateUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.stringFlag(cmd, "name", "PromptUserName")
			if err != nil {
				return err
			}
			email, err := a.stringFlag(cmd, "email", "PromptEmail")
			if err != nil {
				return err
			}
			language, err := a.stringFlag(cmd, "language", "PromptPrimaryLanguage")
			if err != nil {
				return err
			}

			req := &dto.CreateUserRequest{Name: name, Email: email, PrimaryLanguage: language}
			if err := dto.Validate(req); err != nil {
				return err
			}

			return a.runWithContainer(cmd, func(ctx context.Context, c *bootstrap.Container) error {
				user, err := c.UserService.Create(ctx, req)
				if err != nil {
					return err
				}
				a.success(cmd, "UserCreated", map[string]any{"Name": user.Name, "ID": user.Id})
				return nil
			})
		},
	}

	cmd.Flags().String("name", "", "Name of the user")
	cmd.Flags().String("email", "", "Email of the user")
	cmd.Flags().String("language", "", "Primary language code")

	return cmd
}
