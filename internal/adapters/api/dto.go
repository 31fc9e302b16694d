package api

import "github.com/harnstore/harn-cli/internal/domain"

// Wire shapes mirror the backend's JSON field names exactly. The backend
// sends both a Mongo _id and a plain id on each record; id wins when present.

type tierDTO struct {
	DayType    int     `json:"dayType"`
	Cost       float64 `json:"cost"`
	Price      float64 `json:"price"`
	AgentPrice float64 `json:"agentPrice"`
}

type productDTO struct {
	MongoID      string    `json:"_id"`
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         []tierDTO `json:"type"`
	Screen       int       `json:"screen"`
	ColorPrimary string    `json:"colorPrimary"`
	LogoImage    string    `json:"logoImage"`
	Remark       string    `json:"remark"`
	OpenPreOrder bool      `json:"openPreOrder"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}

type accountDTO struct {
	MongoID       string  `json:"_id"`
	ID            string  `json:"id"`
	Platform      string  `json:"platform"`
	UserName      string  `json:"userName"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	Link          string  `json:"link"`
	ScreenName    string  `json:"screenName"`
	PIN           string  `json:"pin"`
	DayType       int     `json:"dayType"`
	Amount        int     `json:"amount"`
	Cost          float64 `json:"cost"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	RealStartDate string  `json:"realStartDate"`
	RealEndDate   string  `json:"realEndDate"`
	PaymentDate   string  `json:"paymentDate"`
	Status        string  `json:"status"`
}

func (d productDTO) toDomain() domain.Product {
	tiers := make([]domain.PricingTier, 0, len(d.Type))
	for _, tier := range d.Type {
		tiers = append(tiers, domain.PricingTier{
			DurationDays: tier.DayType,
			Cost:         tier.Cost,
			Price:        tier.Price,
			AgentPrice:   tier.AgentPrice,
		})
	}

	return domain.Product{
		ID:           domain.PlatformID(firstNonEmpty(d.ID, d.MongoID)),
		Name:         d.Name,
		Tiers:        tiers,
		Screens:      d.Screen,
		ColorPrimary: d.ColorPrimary,
		LogoURL:      d.LogoImage,
		Remark:       d.Remark,
		OpenPreOrder: d.OpenPreOrder,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (d accountDTO) toDomain() domain.Account {
	return domain.Account{
		ID:            domain.AccountID(firstNonEmpty(d.ID, d.MongoID)),
		Platform:      domain.PlatformID(d.Platform),
		UserName:      d.UserName,
		Email:         d.Email,
		Password:      d.Password,
		Link:          d.Link,
		ScreenName:    d.ScreenName,
		PIN:           d.PIN,
		DayType:       d.DayType,
		Amount:        d.Amount,
		Cost:          d.Cost,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		RealStartDate: d.RealStartDate,
		RealEndDate:   d.RealEndDate,
		PaymentDate:   d.PaymentDate,
		Status:        domain.AccountStatus(d.Status),
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
