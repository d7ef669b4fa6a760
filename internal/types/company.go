package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Company is one subsidiary shown on the companies page.
type Company struct {
	Logo               string `json:"logo,omitempty"`
	Name               string `json:"name" validate:"required,min=1"`
	Description        string `json:"description"`
	WebsiteURL         string `json:"website_url,omitempty" validate:"omitempty,url"`
	ShowDetails        bool   `json:"show_details"`
	ShowWebsiteSection bool   `json:"show_website_section"`
	ZoomLogo           bool   `json:"zoom_logo"`
}

// NewCompany returns a Company with details shown and no website section.
func NewCompany(logo, name, description string) Company {
	return Company{
		Logo:        logo,
		Name:        name,
		Description: description,
		ShowDetails: true,
	}
}

// UnmarshalJSON applies the show_details default of true when the field is absent.
func (c *Company) UnmarshalJSON(data []byte) error {
	type plain Company
	decoded := plain{ShowDetails: true}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*c = Company(decoded)
	return nil
}

// Validate validates the Company using the validator.
func (c *Company) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// LinksOut reports whether the card renders an outbound website link.
func (c *Company) LinksOut() bool {
	return c.ShowWebsiteSection && c.WebsiteURL != ""
}
