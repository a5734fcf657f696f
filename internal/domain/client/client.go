package client

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rentals/backend/internal/domain/shared"
	"golang.org/x/text/unicode/norm"
)

var (
	namePattern  = regexp.MustCompile(`^[\p{L}\p{M}]+( [\p{L}\p{M}]+)*$`)
	phonePattern = regexp.MustCompile(`^\+[1-9][0-9]{6,14}$`)
	validate     = validator.New()
)

// Client is a guest who books properties.
// Email is the business key used to detect duplicates and to address
// records from the booking desk.
type Client struct {
	shared.BaseEntity
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Country      string
	RegisteredAt time.Time
}

// NewClient creates a new client. The registration date is assigned here
// and never changes afterwards.
func NewClient(firstName, lastName, email, phone, country string) (*Client, error) {
	c := &Client{
		BaseEntity:   shared.NewBaseEntity(),
		RegisteredAt: time.Now(),
	}
	if err := c.apply(firstName, lastName, email, phone, country); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the client's editable fields
func (c *Client) Update(firstName, lastName, email, phone, country string) error {
	if err := c.apply(firstName, lastName, email, phone, country); err != nil {
		return err
	}
	c.Touch()
	return nil
}

// FullName returns first and last name joined by a space
func (c *Client) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

func (c *Client) apply(firstName, lastName, email, phone, country string) error {
	first, err := normalizeName(firstName, "First name")
	if err != nil {
		return err
	}
	last, err := normalizeName(lastName, "Last name")
	if err != nil {
		return err
	}
	mail, err := NormalizeEmail(email)
	if err != nil {
		return err
	}
	tel := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if err := validatePhone(tel); err != nil {
		return err
	}
	ctry := strings.TrimSpace(country)
	if ctry == "" {
		return shared.NewValidationError("INVALID_COUNTRY", "Country cannot be empty")
	}
	if len([]rune(ctry)) > 100 {
		return shared.NewValidationError("INVALID_COUNTRY", "Country cannot exceed 100 characters")
	}

	c.FirstName = first
	c.LastName = last
	c.Email = mail
	c.Phone = tel
	c.Country = ctry
	return nil
}

// NormalizeEmail trims and lowercases an email and checks its format
func NormalizeEmail(email string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" {
		return "", shared.NewValidationError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(e) > 200 {
		return "", shared.NewValidationError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if err := validate.Var(e, "email"); err != nil {
		return "", shared.NewValidationError("INVALID_EMAIL", "Invalid email format")
	}
	return e, nil
}

func normalizeName(name, field string) (string, error) {
	n := strings.Join(strings.Fields(norm.NFC.String(name)), " ")
	if n == "" {
		return "", shared.NewValidationError("INVALID_NAME", field+" cannot be empty")
	}
	if len([]rune(n)) > 100 {
		return "", shared.NewValidationError("INVALID_NAME", field+" cannot exceed 100 characters")
	}
	if !namePattern.MatchString(n) {
		return "", shared.NewValidationError("INVALID_NAME", field+" can only contain letters and spaces")
	}
	return n, nil
}

// validatePhone accepts E.164 numbers: a plus sign followed by 7 to 15 digits
func validatePhone(phone string) error {
	if phone == "" {
		return shared.NewValidationError("INVALID_PHONE", "Phone cannot be empty")
	}
	if !phonePattern.MatchString(phone) {
		return shared.NewValidationError("INVALID_PHONE", "Phone must be in international format, e.g. +34600111222")
	}
	return nil
}
