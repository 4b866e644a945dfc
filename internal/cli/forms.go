package cli

import (
	"context"
	"fmt"
	"strings"

	"assethub/internal/client/session"
	"assethub/internal/domain/entity"
	"assethub/internal/errors"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user leaves a form.
var ErrAborted = errors.New("form aborted")

// Credentials is what the login form collects.
type Credentials struct {
	Email    string
	Password string
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}

		return nil
	}
}

// PromptLogin asks for email and password; email pre-fills the first field.
func PromptLogin(ctx context.Context, email string, accessible bool) (Credentials, error) {
	creds := Credentials{Email: email}
	form := huh.NewForm(huh.NewGroup(
		huh.NewNote().Title("Sign in to AssetHub"),
		huh.NewInput().Title("Email").Value(&creds.Email).Validate(notBlank("Email")),
		huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&creds.Password).Validate(notBlank("Password")),
	)).WithAccessible(accessible)

	if err := runForm(ctx, form); err != nil {
		return Credentials{}, err
	}
	creds.Email = strings.TrimSpace(creds.Email)

	return creds, nil
}

// PromptSignUp collects a registration. Company and package fields only show for HR.
func PromptSignUp(ctx context.Context, accessible bool) (session.SignUpInput, error) {
	var (
		input session.SignUpInput
		role  = string(entity.RoleEmployee)
	)

	packages := make([]huh.Option[string], 0, len(entity.Packages))
	for _, p := range entity.Packages {
		packages = append(packages, huh.NewOption(packageLabel(p), p.Name))
	}
	notHR := func() bool { return role != string(entity.RoleHR) }

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Full name").Value(&input.Name).Validate(notBlank("Name")),
			huh.NewInput().Title("Email").Value(&input.Email).Validate(notBlank("Email")),
			huh.NewInput().Title("Password").
				Description("At least 6 characters with an uppercase and a lowercase letter").
				EchoMode(huh.EchoModePassword).
				Value(&input.Password),
			huh.NewInput().Title("Photo URL").Description("Optional").Value(&input.PhotoURL),
			huh.NewSelect[string]().Title("I am joining as").
				Options(
					huh.NewOption("Employee", string(entity.RoleEmployee)),
					huh.NewOption("HR manager", string(entity.RoleHR)),
				).
				Value(&role),
		),
		huh.NewGroup(
			huh.NewInput().Title("Company name").Value(&input.CompanyName).Validate(notBlank("Company name")),
			huh.NewInput().Title("Company logo URL").Description("Optional").Value(&input.CompanyLogo),
			huh.NewSelect[string]().Title("Package").Options(packages...).Value(&input.PackageName),
		).WithHideFunc(notHR),
	).WithAccessible(accessible)

	if err := runForm(ctx, form); err != nil {
		return session.SignUpInput{}, err
	}

	input.Role = entity.Role(role)
	if input.Role != entity.RoleHR {
		input.CompanyName, input.CompanyLogo, input.PackageName = "", "", ""
	}

	return input, nil
}

// PromptSelect lets the user pick one of options and returns its value.
func PromptSelect(ctx context.Context, title string, options []huh.Option[string], accessible bool) (string, error) {
	var value string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(options...).Value(&value),
	)).WithAccessible(accessible)

	if err := runForm(ctx, form); err != nil {
		return "", err
	}

	return value, nil
}

func packageLabel(p entity.Package) string {
	return fmt.Sprintf("%s%s - up to %d members, $%d", strings.ToUpper(p.Name[:1]), p.Name[1:], p.MemberLimit, p.Price)
}

func runForm(ctx context.Context, form *huh.Form) error {
	err := form.RunWithContext(ctx)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}

	return errors.Wrap(err, "run form")
}
