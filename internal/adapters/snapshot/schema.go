package snapshot

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	FetchedAt string          `toml:"fetched_at"`
	Products  []productSchema `toml:"products"`
	Accounts  []accountSchema `toml:"accounts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type productSchema struct {
	ID           string       `toml:"id"`
	Name         string       `toml:"name"`
	Tiers        []tierSchema `toml:"tiers,omitempty"`
	Screens      int          `toml:"screens"`
	ColorPrimary string       `toml:"color_primary,omitempty"`
	LogoURL      string       `toml:"logo_url,omitempty"`
	Remark       string       `toml:"remark,omitempty"`
	OpenPreOrder bool         `toml:"open_pre_order,omitempty"`
	CreatedAt    string       `toml:"created_at,omitempty"`
	UpdatedAt    string       `toml:"updated_at,omitempty"`
}

type tierSchema struct {
	DurationDays int     `toml:"duration_days"`
	Cost         float64 `toml:"cost"`
	Price        float64 `toml:"price"`
	AgentPrice   float64 `toml:"agent_price"`
}

type accountSchema struct {
	ID            string  `toml:"id"`
	Platform      string  `toml:"platform"`
	UserName      string  `toml:"user_name,omitempty"`
	Email         string  `toml:"email,omitempty"`
	Password      string  `toml:"password,omitempty"`
	Link          string  `toml:"link,omitempty"`
	ScreenName    string  `toml:"screen_name,omitempty"`
	PIN           string  `toml:"pin,omitempty"`
	DayType       int     `toml:"day_type,omitempty"`
	Amount        int     `toml:"amount,omitempty"`
	Cost          float64 `toml:"cost,omitempty"`
	StartDate     string  `toml:"start_date,omitempty"`
	EndDate       string  `toml:"end_date,omitempty"`
	RealStartDate string  `toml:"real_start_date,omitempty"`
	RealEndDate   string  `toml:"real_end_date,omitempty"`
	PaymentDate   string  `toml:"payment_date,omitempty"`
	Status        string  `toml:"status,omitempty"`
}
