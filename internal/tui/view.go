package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tech0-step3/portal-web/internal/users/domain"
	"github.com/tech0-step3/portal-web/internal/users/form"
)

var fieldLabels = map[form.Field]string{
	form.FieldName:       "名前",
	form.FieldEmail:      "メールアドレス",
	form.FieldPrefecture: "都道府県",
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "212"}).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "241"}).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"})

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "241"}).
			Italic(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "230", Dark: "230"}).
			Background(lipgloss.AdaptiveColor{Light: "25", Dark: "61"}).
			Bold(true).
			Padding(0, 1)

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "241"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "236", Dark: "252"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "196"}).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	focusedBorderColor = lipgloss.AdaptiveColor{Light: "25", Dark: "212"}
	dimBorderColor     = lipgloss.AdaptiveColor{Light: "243", Dark: "241"}
)

func helpKey(key, desc string) string {
	return keyStyle.Render(key) + " " + descStyle.Render(desc)
}

func fieldValue(u domain.User, field form.Field) string {
	switch field {
	case form.FieldName:
		return u.Name
	case form.FieldEmail:
		return u.Email
	case form.FieldPrefecture:
		return u.Prefecture
	}
	return ""
}

func (m Model) View() string {
	state := m.form.State()
	displayed := m.form.Displayed()

	var body strings.Builder
	body.WriteString(titleStyle.Render("登録者 ID: "+displayed.ID) + "\n\n")

	for i, field := range form.Fields {
		var value string
		switch state {
		case form.Editing:
			value = m.inputs[i].View()
		case form.Saving:
			value = pendingStyle.Render(m.form.Value(field))
		default:
			value = valueStyle.Render(fieldValue(displayed, field))
		}
		body.WriteString(labelStyle.Render(fieldLabels[field]) + value + "\n")
	}

	border := dimBorderColor
	if state != form.Viewing {
		border = focusedBorderColor
	}
	box := boxStyle.BorderForeground(border)
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}

	status := statusStyle.Render(m.status)
	if m.statusErr {
		status = errorStyle.Render(m.status)
	}

	return box.Render(strings.TrimRight(body.String(), "\n")) + "\n" +
		m.helpLine(state) + "\n" +
		status
}

func (m Model) helpLine(state form.State) string {
	switch state {
	case form.Editing:
		return strings.Join([]string{
			helpKey("tab", "next field"),
			helpKey("enter", "save"),
			helpKey("esc", "cancel"),
		}, "  ")
	case form.Saving:
		return descStyle.Render("保存中...")
	default:
		return strings.Join([]string{
			helpKey("e", "edit"),
			helpKey("q", "quit"),
		}, "  ")
	}
}
