package catalog

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harnstore/harn-cli/internal/application"
	"github.com/harnstore/harn-cli/internal/ports"
)

// copiedNoticeWindow is how long the "copied" affordance stays visible
// before the view reverts.
const copiedNoticeWindow = 1500 * time.Millisecond

type browsePage int

const (
	pageProducts browsePage = iota
	pageAccounts
	pageDetail
)

type clearNoticeMsg struct{}

// BrowseModel is the interactive catalog walker. All selection changes go
// through the BrowseSession, so the product/account selection invariants
// hold no matter which keys arrive in which order.
type BrowseModel struct {
	session   *application.BrowseSession
	clipboard ports.Clipboard
	styles    styles

	page     browsePage
	products []application.ProductOverview
	accounts []application.AccountRow
	detail   application.AccountDetail
	cursor   int
	notice   string
}

func NewBrowseModel(session *application.BrowseSession, clipboard ports.Clipboard) BrowseModel {
	return BrowseModel{
		session:   session,
		clipboard: clipboard,
		styles:    newStyles(),
		products:  session.Products(),
	}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < m.listLength()-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m.advance(), nil
	case "esc":
		return m.back()
	case "c":
		if m.page == pageDetail {
			return m.copyCredential()
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m BrowseModel) listLength() int {
	switch m.page {
	case pageProducts:
		return len(m.products)
	case pageAccounts:
		return len(m.accounts)
	default:
		return 0
	}
}

func (m BrowseModel) advance() BrowseModel {
	switch m.page {
	case pageProducts:
		if m.cursor >= len(m.products) {
			return m
		}
		rows, err := m.session.SelectProduct(m.products[m.cursor].Product.ID)
		if err != nil {
			m.notice = err.Error()
			return m
		}
		m.accounts = rows
		m.page = pageAccounts
		m.cursor = 0
		m.notice = ""
	case pageAccounts:
		if m.cursor >= len(m.accounts) {
			return m
		}
		detail, err := m.session.SelectAccount(m.accounts[m.cursor].Account.ID)
		if err != nil {
			m.notice = err.Error()
			return m
		}
		m.detail = detail
		m.page = pageDetail
		m.notice = ""
	}

	return m
}

func (m BrowseModel) back() (tea.Model, tea.Cmd) {
	switch m.page {
	case pageDetail:
		m.session.CloseAccountDetails()
		m.page = pageAccounts
	case pageAccounts:
		m.session.DeselectProduct()
		m.page = pageProducts
		m.cursor = 0
		m.accounts = nil
	default:
		return m, tea.Quit
	}

	m.notice = ""
	return m, nil
}

func (m BrowseModel) copyCredential() (tea.Model, tea.Cmd) {
	value := m.detail.Account.PrimaryCredential()
	if err := m.clipboard.Copy(context.Background(), value); err != nil {
		m.notice = "Copy failed, try again"
	} else {
		m.notice = "Copied to clipboard"
	}

	return m, tea.Tick(copiedNoticeWindow, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

func (m BrowseModel) View() string {
	var body string
	switch m.page {
	case pageProducts:
		body = m.viewProducts()
	case pageAccounts:
		body = m.viewAccounts()
	case pageDetail:
		body = renderDetail(m.detail, RenderOptions{}, m.styles)
	}

	lines := []string{body}
	if m.notice != "" {
		lines = append(lines, m.styles.section.Render(m.styles.notice.Render(m.notice)))
	}
	lines = append(lines, m.styles.section.Render(m.styles.empty.Render(m.helpLine())))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m BrowseModel) viewProducts() string {
	lines := []string{
		m.styles.title.Render("Harn Catalog"),
		m.styles.header.Render(fmt.Sprintf("products: %d", len(m.products))),
	}

	if len(m.products) == 0 {
		lines = append(lines, m.styles.empty.Render("No products available. Run `harn refresh` first."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, overview := range m.products {
		lines = append(lines, m.styles.section.Render(m.cursorPrefix(i)+renderProductLine(overview, m.styles)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m BrowseModel) viewAccounts() string {
	product, _ := m.session.SelectedProduct()
	lines := []string{
		m.styles.title.Render(fmt.Sprintf("%s (%d accounts)", product.Name, len(m.accounts))),
	}

	if len(m.accounts) == 0 {
		lines = append(lines, m.styles.empty.Render("No accounts for this product."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, row := range m.accounts {
		lines = append(lines, m.styles.section.Render(m.cursorPrefix(i)+renderAccountLine(row, m.styles)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m BrowseModel) cursorPrefix(index int) string {
	if index == m.cursor {
		return m.styles.selected.Render("> ")
	}

	return "  "
}

func (m BrowseModel) helpLine() string {
	switch m.page {
	case pageDetail:
		return "c copy, esc back, q quit"
	default:
		return "up/down move, enter select, esc back, q quit"
	}
}

// RunBrowse drives the interactive walker until the user quits.
func RunBrowse(session *application.BrowseSession, clipboard ports.Clipboard) error {
	p := tea.NewProgram(NewBrowseModel(session, clipboard), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
