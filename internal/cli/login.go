package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/me/manyas/internal/auth"
	"github.com/me/manyas/pkg/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// prompter reads answers from the command's input. Passwords are read
// without echo when the input is a terminal.
type prompter struct {
	in  *bufio.Reader
	fd  int
	tty bool
	out io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	p := &prompter{in: bufio.NewReader(cmd.InOrStdin()), out: cmd.ErrOrStderr()}
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd, p.tty = int(f.Fd()), true
	}
	return p
}

func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.ToLower(label), ": "), err)
	}
	return strings.TrimSpace(s), nil
}

func (p *prompter) password(label string) (string, error) {
	if !p.tty {
		return p.line(label)
	}
	fmt.Fprint(p.out, label)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

func newLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to Manyas AI",
		Long:  "Sign in with email and password and store the session token for later commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			var err error
			if email == "" {
				if email, err = p.line("Email: "); err != nil {
					return err
				}
			}
			password, err := p.password("Password: ")
			if err != nil {
				return err
			}

			st := auth.NewStore(api, creds, logger)
			out := st.Login(cmd.Context(), email, password)
			if !out.Success() {
				return errors.New(out.Error)
			}
			user, _ := st.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s> (%s)\n", user.Name, user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted if omitted)")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var (
		name  string
		email string
		role  string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a Manyas AI account and sign in",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := model.Registration{Name: name, Email: email, Role: model.Role(role)}
			if !reg.Role.Valid() {
				return fmt.Errorf("invalid role %q (want creator or company)", role)
			}
			if reg.Name == "" || reg.Email == "" {
				return errors.New("--name and --email are required")
			}

			p := newPrompter(cmd)
			password, err := p.password("Password: ")
			if err != nil {
				return err
			}
			confirm, err := p.password("Confirm password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return errors.New("passwords do not match")
			}
			if len([]rune(password)) < model.MinPasswordLength {
				return fmt.Errorf("password must be at least %d characters", model.MinPasswordLength)
			}
			reg.Password = password

			st := auth.NewStore(api, creds, logger)
			out := st.Register(cmd.Context(), reg)
			if !out.Success() {
				return errors.New(out.Error)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered and signed in as %s <%s> (%s)\n", reg.Name, reg.Email, reg.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name or company name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&role, "role", string(model.RoleCreator), "Account type (creator, company)")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth.NewStore(api, creds, logger).Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := checkedSession(cmd.Context())
			user, ok := st.User()
			if !ok {
				return errNotSignedIn
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", user.Name, user.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Role: %s\n", user.Role)
			if label := user.Role.Label(); label != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Panel: %s\n", label)
			}
			return nil
		},
	}
}
