package command

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"lingualink/internal/bootstrap"
	"lingualink/internal/dto"
	"lingualink/internal/service"
)

func newCreateSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-session",
		Short: "Create a new collaborative session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := a.stringFlag(cmd, "session-name", "PromptSessionName")
			if err != nil {
				return err
			}
			userId, err := a.uintFlag(cmd, "user-id", "PromptUserID")
			if err != nil {
				return err
			}

			req := &dto.CreateSessionRequest{Name: name, UserId: userId}
			if err := dto.Validate(req); err != nil {
				return err
			}

			return a.runWithContainer(cmd, func(ctx context.Context, c *bootstrap.Container) error {
				session, err := c.SessionService.Create(ctx, req)
				if err != nil {
					return err
				}
				a.success(cmd, "SessionCreated", map[string]any{"Name": session.Name, "ID": session.Id})
				a.println(cmd, "SessionShareHint", nil)
				return nil
			})
		},
	}

	cmd.Flags().String("session-name", "", "Name of the collaborative session")
	cmd.Flags().Uint("user-id", 0, "ID of the user creating the session")

	return cmd
}

func newJoinSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "join-session",
		Short: "Join an existing collaborative session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionId, err := a.uintFlag(cmd, "session-id", "PromptSessionID")
			if err != nil {
				return err
			}
			userId, err := a.uintFlag(cmd, "user-id", "PromptUserID")
			if err != nil {
				return err
			}

			return a.runWithContainer(cmd, func(ctx context.Context, c *bootstrap.Container) error {
				res, err := c.SessionService.Join(ctx, &dto.JoinSessionRequest{SessionId: sessionId, UserId: userId})
				switch {
				case errors.Is(err, service.ErrSessionNotFound):
					a.warn(cmd, "SessionNotFound", nil)
					return nil
				case errors.Is(err, service.ErrUserNotFound):
					a.warn(cmd, "UserNotFound", nil)
					return nil
				case errors.Is(err, service.ErrAlreadyParticipant):
					a.warn(cmd, "AlreadyParticipant", nil)
					return nil
				case err != nil:
					return err
				}

				a.success(cmd, "SessionJoined", map[string]any{"User": res.UserName, "Session": res.SessionName})
				return nil
			})
		},
	}

	cmd.Flags().Uint("session-id", 0, "ID of the session to join")
	cmd.Flags().Uint("user-id", 0, "ID of the user joining the session")

	return cmd
}
