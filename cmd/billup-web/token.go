package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/billup/billup-web/internal/session/app/session"
	"github.com/billup/billup-web/internal/session/app/token"
	"github.com/billup/billup-web/internal/session/domain"
	sessionhttp "github.com/billup/billup-web/internal/session/infra/http"
	"github.com/billup/billup-web/internal/session/infra/jwt"
	"github.com/billup/billup-web/internal/session/infra/storage"
	"github.com/billup/billup-web/pkg/log"
	pkgtime "github.com/billup/billup-web/pkg/time"
)

func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token <jwt>",
		Short: "Decode a bearer token and check whether a session would accept it",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return inspectToken(ctx, c.OutOrStdout(), domain.BearerToken(args[0]), pkgtime.NewClock())
		},
	}
}

func inspectToken(ctx context.Context, out io.Writer, t domain.BearerToken, clock pkgtime.Clock) error {
	codec := jwt.NewCodec()
	claims, err := codec.Decode(t)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "userId:    %s\n", optional(claims.UserID))
	_, _ = fmt.Fprintf(out, "roles:     %s\n", roles(claims.Roles))
	if claims.ExpiresAt != nil {
		_, _ = fmt.Fprintf(out, "expiresAt: %s\n", claims.ExpiresAt.UTC().Format(time.RFC3339))
	} else {
		_, _ = fmt.Fprintln(out, "expiresAt: -")
	}

	logger := log.New(log.LevelDisabled)
	validator := token.NewValidator(codec, clock)
	store := session.NewStore(storage.NewMemory(), codec, validator, logger)
	controller := session.NewController(ctx, store, validator, codec, nil, sessionhttp.NewRedirectNavigator(), logger)

	_, _ = fmt.Fprintf(out, "valid:     %t\n", validator.IsValid(t))
	if err = controller.SetAuthData(ctx, t); err != nil {
		_, _ = fmt.Fprintf(out, "session:   rejected (%s)\n", err)
		return nil
	}
	_, _ = fmt.Fprintln(out, "session:   accepted")
	return nil
}

func optional(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func roles(v []string) string {
	if v == nil {
		return "-"
	}
	return "[" + strings.Join(v, ", ") + "]"
}
