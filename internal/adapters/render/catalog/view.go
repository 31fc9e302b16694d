package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/harnstore/harn-cli/internal/application"
	"github.com/harnstore/harn-cli/internal/domain"
)

const noUserNameLabel = "no user name"

type RenderOptions struct {
	Now time.Time
}

func RenderProducts(overviews []application.ProductOverview, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return renderProductList(overviews, opts, s)
	})
}

func RenderAccounts(listing application.AccountListing, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return renderAccountList(listing, opts, s)
	})
}

func RenderAccountDetail(detail application.AccountDetail, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		return renderDetail(detail, opts, s)
	})
}

func renderProductList(overviews []application.ProductOverview, _ RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Harn Catalog"),
		s.header.Render(fmt.Sprintf("products: %d", len(overviews))),
	}

	if len(overviews) == 0 {
		lines = append(lines, s.empty.Render("No products available. Run `harn refresh` first."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, overview := range overviews {
		lines = append(lines, s.section.Render(renderProductLine(overview, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProductLine(overview application.ProductOverview, s styles) string {
	parts := []string{
		s.product.Render(fmt.Sprintf("%s (%s)", overview.Product.Name, overview.Product.ID)),
		s.detail.Render(fmt.Sprintf("%d accounts, %d screens", overview.AccountCount, overview.Product.Screens)),
	}

	if !overview.Product.Sellable() {
		parts = append(parts, s.empty.Render("no pricing tiers"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// RenderProductDetail shows the pricing tiers and terms of one product.
func RenderProductDetail(overview application.ProductOverview, opts RenderOptions) (string, error) {
	return render(func(s styles) string {
		parts := []string{
			s.title.Render(overview.Product.Name),
			s.header.Render(fmt.Sprintf("%d accounts, %d screens", overview.AccountCount, overview.Product.Screens)),
		}

		for _, tier := range overview.Product.Tiers {
			parts = append(parts, s.detail.Render(fmt.Sprintf("%d days  %s  (cost %s, agent %s)",
				tier.DurationDays, baht(tier.Price), baht(tier.Cost), baht(tier.AgentPrice))))
		}
		if !overview.Product.Sellable() {
			parts = append(parts, s.empty.Render("no pricing tiers"))
		}

		if remark := strings.TrimSpace(overview.Product.Remark); remark != "" {
			parts = append(parts, s.section.Render(s.label.Render("terms")))
			for _, line := range strings.Split(remark, "\n") {
				parts = append(parts, s.detail.Render(line))
			}
		}

		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	})
}

func renderAccountList(listing application.AccountListing, _ RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("%s (%d accounts)", listing.Product.Name, len(listing.Accounts))),
	}

	if len(listing.Accounts) == 0 {
		lines = append(lines, s.empty.Render("No accounts for this product."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, row := range listing.Accounts {
		lines = append(lines, s.section.Render(renderAccountLine(row, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccountLine(row application.AccountRow, s styles) string {
	name := strings.TrimSpace(row.Account.UserName)
	if name == "" {
		name = noUserNameLabel
	}

	parts := []string{
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.account.Render(fmt.Sprintf("%s (%s)", name, row.Account.ID)),
			" ",
			s.status.Render(fmt.Sprintf("[%s]", statusLabel(row.Account.Status))),
		),
		s.detail.Render(row.Account.PrimaryCredential()),
		expiryLine(row.Account.EndDate, row.Expired, s),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func expiryLine(endDate string, expired bool, s styles) string {
	line := s.label.Render("ends: ") + s.value.Render(domain.FormatDate(endDate))
	if expired {
		return line + " " + s.expired.Render("(expired)")
	}

	return line + " " + s.current.Render("(current)")
}

func renderDetail(detail application.AccountDetail, _ RenderOptions, s styles) string {
	account := detail.Account

	parts := []string{
		s.title.Render("Account Details"),
		detailField("platform", detail.PlatformName, s),
		detailField("status", statusLabel(account.Status), s),
	}

	switch detail.CredentialKind {
	case domain.CredentialLink:
		parts = append(parts, detailField("link", orNoData(account.Link), s))
	case domain.CredentialScreenPIN:
		parts = append(parts,
			detailField("screen", orNoData(account.ScreenName), s),
			detailField("pin", orNoData(account.PIN), s),
		)
	}

	parts = append(parts,
		detailField("email", orNoData(account.Email), s),
		detailField("password", orNoData(account.Password), s),
		detailField("starts", detail.StartDate, s),
	)

	ends := detailField("ends", detail.EndDate, s)
	if detail.Expired {
		ends += " " + s.expired.Render("(expired)")
	}
	parts = append(parts, ends)

	payment := []string{
		s.label.Render("payment"),
		detailField("cost", baht(account.Cost), s),
		detailField("paid on", detail.PaymentDate, s),
		detailField("days", dayTypeLabel(account), s),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinVertical(lipgloss.Left, parts...),
		s.section.Render(lipgloss.JoinVertical(lipgloss.Left, payment...)),
	)
}

func detailField(label, value string, s styles) string {
	return s.label.Render(label+": ") + s.value.Render(value)
}

func statusLabel(status domain.AccountStatus) string {
	if status == "" {
		return "unknown"
	}

	return string(status)
}

func dayTypeLabel(account domain.Account) string {
	if label := account.PackageLabel(); label != "" {
		return fmt.Sprintf("%d (%s)", account.DayType, label)
	}

	return fmt.Sprintf("%d", account.DayType)
}

func baht(amount float64) string {
	return fmt.Sprintf("฿%.0f", amount)
}

func orNoData(value string) string {
	if strings.TrimSpace(value) == "" {
		return "no data"
	}

	return value
}
