package formatter

import (
	"strings"

	"github.com/alexanderramin/parcelscout/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// The canned reply is the same for every found parcel; only the query is
// spliced in.
const chatReplyTail = ` is zoned R5, perfect for medium-density residential projects. ` +
	`I'll analyze FAR, confirm compliance with overlays or special permits, and check for ` +
	`restrictions or environmental triggers like flood zones. If mixed-use or density bonuses ` +
	`under Inclusionary Housing are viable, I'll uncover them to maximize ROI and ensure seamless compliance.`

// FollowUpPrompts are the suggested next questions under a chat reply.
// They are display only.
var FollowUpPrompts = []string{
	"What are common zoning challenges here?",
	"Can you analyze environmental risks now?",
}

// chatIcons are the reply toolbar: voice, attach, like, dislike, retry.
var chatIcons = []string{"🎤", "📎", "👍", "👎", "↻"}

// ChatReplyText returns the canned narrative quoting query as typed.
func ChatReplyText(query string) string {
	return `"` + query + chatReplyTail + `"`
}

var replyBubble = lipgloss.NewStyle().
	Background(ColorPanel).
	Foreground(ColorFg).
	Padding(1, 2)

// FormatChatReply renders the chat tab's answer area: a reply bubble for a
// found record, a destructive alert for an error, nothing before a search.
func FormatChatReply(query string, r *domain.LookupResult, width int) string {
	switch {
	case r.IsError():
		return Alert(r.Err.Message, AlertDestructive, width)
	case !r.Found():
		return ""
	}

	textWidth := 0
	if width > 4 {
		textWidth = width - 4
	}

	icons := make([]string, len(chatIcons))
	for i, ic := range chatIcons {
		icons[i] = Button(ic, ButtonGhost, SizeIcon, false)
	}
	bubble := wrapText(ChatReplyText(query), textWidth) + "\n\n" + ButtonRow(icons...)

	prompts := make([]string, len(FollowUpPrompts))
	for i, p := range FollowUpPrompts {
		prompts[i] = Button(p, ButtonOutline, SizeDefault, false)
	}

	return replyBubble.Render(bubble) + "\n\n" + stackButtons(prompts, width)
}

// stackButtons lays buttons out on one row, or one per line when the row
// would overflow width.
func stackButtons(buttons []string, width int) string {
	row := ButtonRow(buttons...)
	if width <= 0 || lipgloss.Width(row) <= width {
		return row
	}
	return strings.Join(buttons, "\n")
}

// FormatSummary renders the summary tab for a found record.
func FormatSummary(r *domain.LookupResult, width int) string {
	if !r.Found() {
		return ""
	}
	details := r.Property.ZoningDetails
	iw := innerWidth(width)

	var b strings.Builder
	b.WriteString(Header("Property Overview"))
	b.WriteString("\n")
	b.WriteString(wrapText(details.Overview, iw))
	b.WriteString("\n\n")
	b.WriteString(Header("Zoning Compliance"))
	b.WriteString("\n")
	b.WriteString(wrapText(details.Compliance, iw))
	b.WriteString("\n")
	b.WriteString(Button("Read More", ButtonLink, SizeDefault, false))

	return Card("", b.String(), width)
}

// FormatTasks renders the tasks tab for a found record.
func FormatTasks(r *domain.LookupResult, width int) string {
	if !r.Found() {
		return ""
	}
	return Card("", FormatPermitPlan(r.Property.ZoningDetails.Permits, innerWidth(width)), width)
}

// FormatTabBar renders the three tab triggers with the active one bracketed.
func FormatTabBar(active domain.Tab) string {
	parts := make([]string, len(domain.Tabs))
	for i, t := range domain.Tabs {
		if t == active {
			parts[i] = StylePurple.Bold(true).Render("[ " + t.Label() + " ]")
		} else {
			parts[i] = Dim("  " + t.Label() + "  ")
		}
	}
	return strings.Join(parts, Dim("│"))
}

// FormatTabContent dispatches to the renderer for tab. The search bar is
// part of the chat tab and is rendered by the caller.
func FormatTabContent(tab domain.Tab, query string, r *domain.LookupResult, width int) string {
	switch tab {
	case domain.TabSummary:
		return FormatSummary(r, width)
	case domain.TabTasks:
		return FormatTasks(r, width)
	default:
		return FormatChatReply(query, r, width)
	}
}

// SearchPlaceholder is the hint shown in an empty address input.
const SearchPlaceholder = "Enter property address (e.g., 5721 18th Avenue)..."

// FormatSearchBar renders the address input card. button is the submit
// control's face (an icon, or a spinner frame while loading).
func FormatSearchBar(input, button string, disabled bool, width int) string {
	submit := Button(button, ButtonDefault, SizeDefault, disabled)
	return Card("▦ Property Information Search", input+"  "+submit, width)
}
