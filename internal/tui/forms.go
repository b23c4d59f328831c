package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/shopipy/posctl/internal/api"
	"github.com/shopipy/posctl/internal/session"
)

// ValidateRequired rejects empty or whitespace-only input
func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

// ValidateEmail performs a shallow shape check; the backend owns the
// real validation.
func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("this field is required")
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 || !strings.Contains(s[at:], ".") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

// LoginForm collects email and password for authentication
type LoginForm struct {
	Email    string
	Password string
}

// Run displays the login form and blocks until submitted or aborted
func (f *LoginForm) Run() error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&f.Email).
			Validate(ValidateEmail),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&f.Password).
			Validate(ValidateRequired),
	))

	if err := form.Run(); err != nil {
		return fmt.Errorf("login form: %w", err)
	}
	return nil
}

// RunRegisterForm collects the registration fields. The password pair is
// intentionally not cross-checked here; the credential gate compares the
// two before any network call is made.
func RunRegisterForm(f *session.RegisterForm) error {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("First name").
			Value(&f.FirstName).
			Validate(ValidateRequired),
		huh.NewInput().
			Title("Last name").
			Value(&f.LastName).
			Validate(ValidateRequired),
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&f.Email).
			Validate(ValidateEmail),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&f.Password).
			Validate(ValidateRequired),
		huh.NewInput().
			Title("Repeat password").
			EchoMode(huh.EchoModePassword).
			Value(&f.RepeatPassword).
			Validate(ValidateRequired),
		huh.NewConfirm().
			Title("Register as a merchant owner?").
			Affirmative("Owner").
			Negative("Employee").
			Value(&f.Owner),
	))

	if err := form.Run(); err != nil {
		return fmt.Errorf("register form: %w", err)
	}
	return nil
}

// RunMerchantForm collects the merchant creation fields
func RunMerchantForm(req *api.CreateMerchantRequest) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Business name").
				Value(&req.Name).
				Validate(ValidateRequired),
			huh.NewInput().
				Title("Phone").
				Value(&req.Phone),
			huh.NewInput().
				Title("Email").
				Value(&req.Email).
				Validate(ValidateEmail),
			huh.NewInput().
				Title("Currency").
				Placeholder("EUR").
				Value(&req.Currency).
				Validate(ValidateRequired),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Address").
				Value(&req.Address).
				Validate(ValidateRequired),
			huh.NewInput().
				Title("City").
				Value(&req.City).
				Validate(ValidateRequired),
			huh.NewInput().
				Title("Country").
				Value(&req.Country).
				Validate(ValidateRequired),
			huh.NewInput().
				Title("Postcode").
				Value(&req.Postcode).
				Validate(ValidateRequired),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("merchant form: %w", err)
	}
	return nil
}

// MerchantOptions converts a merchant list into select options keyed by id
func MerchantOptions(merchants []api.Merchant) []huh.Option[string] {
	opts := make([]huh.Option[string], len(merchants))
	for i, m := range merchants {
		opts[i] = huh.NewOption(fmt.Sprintf("%s (%s)", m.Name, m.City), m.ID)
	}
	return opts
}

// SelectMerchant displays a merchant choice and returns the chosen id.
// When allowCreate is set an extra option is appended whose selection is
// reported as an empty id, meaning "create a new merchant instead".
func SelectMerchant(merchants []api.Merchant, allowCreate bool) (string, error) {
	opts := MerchantOptions(merchants)
	if allowCreate {
		opts = append(opts, huh.NewOption("Create a new merchant...", ""))
	}
	if len(opts) == 0 {
		return "", fmt.Errorf("no merchants available")
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Choose a merchant").
			Options(opts...).
			Value(&selected),
	))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("merchant selection: %w", err)
	}
	return selected, nil
}

// SelectString displays a choice among plain string options
func SelectString(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options available")
	}

	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}

	var selected string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(opts...).
			Value(&selected),
	))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selection: %w", err)
	}
	return selected, nil
}

// Confirm displays a yes/no prompt
func Confirm(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Value(&confirmed),
	))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirmation: %w", err)
	}
	return confirmed, nil
}
