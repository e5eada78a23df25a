package cli

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/ignishealth/ignis/internal/auth"
	"github.com/ignishealth/ignis/internal/client"
)

var (
	authUsername string
	authPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the sync server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, remote *client.Client) (bool, error) {
			return remote.Login(ctx, authUsername, authPassword)
		}, "Logged in.")
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create the account on a fresh sync server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(ctx context.Context, remote *client.Client) (bool, error) {
			allowed, err := remote.AuthConfig(ctx)
			if err != nil {
				return false, err
			}
			if !allowed {
				return false, fmt.Errorf("signup is disabled: an account already exists")
			}
			return remote.Signup(ctx, authUsername, authPassword)
		}, "Account created.")
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		cfg, err := loadClientConfig()
		if err != nil {
			return err
		}
		remote, _, err := newRemote(cfg)
		if err != nil {
			return err
		}
		// Server-side logout is best-effort, the local token is what matters.
		_ = remote.Logout(ctx)
		if err := clearSessionToken(cfg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync server and session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		cfg, err := loadClientConfig()
		if err != nil {
			return err
		}
		remote, _, err := newRemote(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Server: %s\n", resolveServerURL(cfg))

		allowed, err := remote.AuthConfig(ctx)
		if err != nil {
			fmt.Fprintln(out, "Server: unreachable")
			return nil
		}
		fmt.Fprintf(out, "Signup allowed: %v\n", allowed)

		if _, err := remote.GetData(ctx); err != nil {
			fmt.Fprintln(out, "Session: not logged in")
		} else {
			fmt.Fprintln(out, "Session: active")
		}
		return nil
	},
}

// withSession runs an auth call and persists the session cookie it left
// in the jar.
func withSession(authenticate func(ctx context.Context, remote *client.Client) (bool, error), success string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	cfg, err := loadClientConfig()
	if err != nil {
		return err
	}
	remote, jar, err := newRemote(cfg)
	if err != nil {
		return err
	}

	ok, err := authenticate(ctx, remote)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server rejected the credentials")
	}

	u, err := url.Parse(resolveServerURL(cfg))
	if err != nil {
		return fmt.Errorf("parse server url: %w", err)
	}
	for _, c := range jar.Cookies(u) {
		if c.Name == auth.CookieName {
			if err := saveSessionToken(cfg, c.Value); err != nil {
				return err
			}
		}
	}
	fmt.Println(success)
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{loginCmd, signupCmd} {
		cmd.Flags().StringVarP(&authUsername, "username", "u", "", "Account username")
		cmd.Flags().StringVarP(&authPassword, "password", "p", "", "Account password")
		cmd.MarkFlagRequired("username")
		cmd.MarkFlagRequired("password")
	}
	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, statusCmd)
}
