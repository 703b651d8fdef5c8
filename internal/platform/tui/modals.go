package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/questcv/internal/audio"
	"github.com/vovakirdan/questcv/internal/game/mission"
	"github.com/vovakirdan/questcv/internal/game/player"
)

// menuKeyMap defines the key bindings shared by the list overlays. It
// implements help.KeyMap so the help bubble can render it.
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Tab    key.Binding
	Back   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Tab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Select, k.Tab, k.Back},
	}
}

var menuKeys = menuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "w"),
		key.WithHelp("up/w", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "s"),
		key.WithHelp("down/s", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}

// shopKeys adds the buy/sell tab switch.
var shopKeys = menuKeyMap{
	Up:     menuKeys.Up,
	Down:   menuKeys.Down,
	Select: menuKeys.Select,
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "buy/sell"),
	),
	Back: menuKeys.Back,
}

// modalKind identifies the open overlay. Simulation-owned modals (dialogue,
// chat, shop, studio, puzzle) are opened by simulation events; player-owned
// modals (missions, inventory, skills) are opened by menu keys.
type modalKind int

const (
	modalNone modalKind = iota
	modalDialogue
	modalChat
	modalShop
	modalStudio
	modalPuzzle
	modalMissions
	modalInventory
	modalSkills
)

type modalState struct {
	kind        modalKind
	cursor      int
	selling     bool // shop: gem-selling tab active
	text        string
	npcName     string
	puzzleStage int
	reviewID    int // missions: id of the mission whose notes are open, 0 none
	devTaps     int // bag: rapid 'v' presses toward the dev-options unlock
	lastTap     time.Time
}

func (m *Model) openModal(kind modalKind) {
	m.modal = modalState{kind: kind}
	m.held.clear()
}

func (m *Model) closeModal() {
	m.modal = modalState{}
}

// handleModalKey routes keys to the open overlay.
func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.save()
		m.quitting = true
		return m, tea.Quit
	}

	switch m.modal.kind {
	case modalDialogue, modalChat:
		switch key {
		case "esc", "enter", " ", "e":
			cmd := m.handleEvents(m.sim.CloseDialogue())
			m.closeModal()
			return m, cmd
		}

	case modalStudio:
		switch key {
		case "esc", "enter", "q":
			m.sim.Resume()
			m.closeModal()
			m.sound.Play(audio.SoundUIClick)
		}

	case modalShop:
		return m.handleShopKey(key)

	case modalSkills:
		return m.handleSkillsKey(key)

	case modalInventory:
		return m.handleInventoryKey(key)

	case modalMissions:
		return m.handleMissionsKey(key)

	case modalPuzzle:
		return m.handlePuzzleKey(key)
	}

	return m, nil
}

func (m Model) handleShopKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "q":
		m.sim.Resume()
		m.closeModal()
		return m, nil
	case "tab":
		m.modal.selling = !m.modal.selling
		m.modal.cursor = 0
		return m, nil
	case "up", "w", "k":
		if m.modal.cursor > 0 {
			m.modal.cursor--
		}
		return m, nil
	case "down", "s", "j":
		limit := len(m.sim.Catalog.ShopItems)
		if m.modal.selling {
			limit = len(m.gemColors())
		}
		if m.modal.cursor < limit-1 {
			m.modal.cursor++
		}
		return m, nil
	case "enter", " ", "e":
		if m.modal.selling {
			colors := m.gemColors()
			if m.modal.cursor >= len(colors) {
				return m, nil
			}
			_, events, err := m.sim.SellGem(colors[m.modal.cursor])
			if err != nil {
				m.pushNotice(playerErrMessage(err))
				m.sound.Play(audio.SoundError)
				return m, nil
			}
			if m.modal.cursor >= len(m.gemColors()) && m.modal.cursor > 0 {
				m.modal.cursor--
			}
			return m, m.handleEvents(events)
		}
		items := m.sim.Catalog.ShopItems
		if m.modal.cursor >= len(items) {
			return m, nil
		}
		events, err := m.sim.Purchase(items[m.modal.cursor].ID)
		if err != nil {
			m.pushNotice(playerErrMessage(err))
			m.sound.Play(audio.SoundError)
			return m, nil
		}
		return m, m.handleEvents(events)
	}
	return m, nil
}

func (m Model) handleSkillsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "k", "q":
		m.sim.Resume()
		m.closeModal()
		return m, nil
	case "up", "w":
		if m.modal.cursor > 0 {
			m.modal.cursor--
		}
		return m, nil
	case "down", "s":
		if m.modal.cursor < len(m.sim.Catalog.Skills)-1 {
			m.modal.cursor++
		}
		return m, nil
	case "enter", " ", "e":
		skills := m.sim.Catalog.Skills
		if m.modal.cursor >= len(skills) {
			return m, nil
		}
		events, err := m.sim.UnlockSkill(skills[m.modal.cursor].ID)
		if err != nil {
			m.pushNotice(playerErrMessage(err))
			m.sound.Play(audio.SoundError)
			return m, nil
		}
		return m, m.handleEvents(events)
	}
	return m, nil
}

// handleInventoryKey drives the bag, which doubles as the home of the hidden
// developer options: seven rapid 'v' presses unlock them, and 't' then toggles
// the teleporter.
func (m Model) handleInventoryKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "esc", "i", "enter", "q":
		m.sim.Resume()
		m.closeModal()
	case "v":
		now := time.Now()
		if now.Sub(m.modal.lastTap) > time.Second {
			m.modal.devTaps = 0
		}
		m.modal.devTaps++
		m.modal.lastTap = now
		if m.modal.devTaps >= 7 && !m.sim.Dev.DevOptionsUnlocked {
			m.sim.Dev.DevOptionsUnlocked = true
			m.sim.Dev.TeleporterEnabled = true
			m.pushNotice("Developer options unlocked")
			m.sound.Play(audio.SoundUnlock)
			m.save()
		}
	case "t":
		if m.sim.Dev.DevOptionsUnlocked {
			m.sim.Dev.TeleporterEnabled = !m.sim.Dev.TeleporterEnabled
			state := "off"
			if m.sim.Dev.TeleporterEnabled {
				state = "on"
			}
			m.pushNotice("Teleporter " + state)
			m.save()
		}
	}
	return m, nil
}

func (m Model) handleMissionsKey(key string) (tea.Model, tea.Cmd) {
	if m.modal.reviewID != 0 {
		switch key {
		case "esc", "enter", "m", "q":
			m.modal.reviewID = 0
		}
		return m, nil
	}
	switch key {
	case "esc", "m", "q":
		m.sim.Resume()
		m.closeModal()
	case "up", "w", "k":
		if m.modal.cursor > 0 {
			m.modal.cursor--
		}
	case "down", "s", "j":
		if m.modal.cursor < len(m.sim.Missions.All())-1 {
			m.modal.cursor++
		}
	case "enter", " ", "e":
		all := m.sim.Missions.All()
		if m.modal.cursor < len(all) {
			ms := all[m.modal.cursor]
			if ms.Status == mission.StatusCompleted && ms.TeachingNotes != "" {
				m.modal.reviewID = ms.ID
				m.sound.Play(audio.SoundUIClick)
			}
		}
	}
	return m, nil
}

// deploySequence is the puzzle's required key order. Pressing the stages out
// of order resets the pipeline.
var deploySequence = []struct {
	key   string
	label string
}{
	{"b", "build"},
	{"t", "test"},
	{"d", "deploy"},
}

func (m Model) handlePuzzleKey(key string) (tea.Model, tea.Cmd) {
	if key == "esc" || key == "q" {
		m.sim.CancelPuzzle()
		m.closeModal()
		return m, nil
	}

	want := deploySequence[m.modal.puzzleStage].key
	if key == want {
		m.modal.puzzleStage++
		m.sound.Play(audio.SoundUIClick)
		if m.modal.puzzleStage == len(deploySequence) {
			cmd := m.handleEvents(m.sim.CompletePuzzle())
			m.closeModal()
			return m, cmd
		}
		return m, nil
	}
	for _, st := range deploySequence {
		if key == st.key {
			m.modal.puzzleStage = 0
			m.sound.Play(audio.SoundError)
			m.pushNotice("Pipeline failed. Start over from build.")
			break
		}
	}
	return m, nil
}

// gemColors returns the player's gem colors in a stable order.
func (m Model) gemColors() []string {
	colors := make([]string, 0, len(m.sim.Player.Gems))
	for c := range m.sim.Player.Gems {
		colors = append(colors, c)
	}
	sort.Strings(colors)
	return colors
}

// playerErrMessage maps a progression precondition failure to a player-facing
// line.
func playerErrMessage(err error) string {
	switch err {
	case player.ErrInsufficientFunds:
		return "Not enough coins."
	case player.ErrAlreadyOwned:
		return "You already own that."
	case player.ErrSkillAlreadyUnlocked:
		return "Already unlocked."
	case player.ErrPredecessorMissing:
		return "Unlock the previous skill in the branch first."
	case player.ErrLevelTooLow:
		return "You need a higher level for that."
	case player.ErrInsufficientResources:
		return "You can't afford that yet."
	case player.ErrNoGems:
		return "No gems of that color."
	default:
		return "That didn't work."
	}
}

var (
	modalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
	modalTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	modalDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	modalSelectStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	modalDoneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// viewModal renders the open overlay, centered in the terminal.
func (m Model) viewModal() string {
	var content string
	switch m.modal.kind {
	case modalDialogue, modalChat:
		content = m.viewDialogue()
	case modalStudio:
		content = m.viewStudio()
	case modalShop:
		content = m.viewShop()
	case modalSkills:
		content = m.viewSkills()
	case modalInventory:
		content = m.viewInventory()
	case modalMissions:
		content = m.viewMissions()
	case modalPuzzle:
		content = m.viewPuzzle()
	}

	box := modalBoxStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) viewDialogue() string {
	name := m.modal.npcName
	if name == "" {
		name = "???"
	}
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(name) + "\n\n")
	b.WriteString(wrapText(m.modal.text, 56) + "\n\n")
	b.WriteString(modalDimStyle.Render("enter to close"))
	return b.String()
}

func (m Model) viewStudio() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(m.modal.npcName+"'s Studio") + "\n\n")
	b.WriteString("  ┌─────────────┐\n")
	b.WriteString("  │  ~ gallery  │\n")
	b.WriteString("  │   of side   │\n")
	b.WriteString("  │  projects ~ │\n")
	b.WriteString("  └─────────────┘\n\n")
	b.WriteString(wrapText("Every frame here started as a weekend experiment. Some shipped, some taught a lesson. Both count.", 56))
	b.WriteString("\n\n" + modalDimStyle.Render("enter to close"))
	return b.String()
}

func (m Model) viewShop() string {
	p := m.sim.Player
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(fmt.Sprintf("%s's Shop", m.modal.npcName)))
	b.WriteString(modalDimStyle.Render(fmt.Sprintf("   coins: %d", p.Coins)) + "\n\n")

	if m.modal.selling {
		b.WriteString("buy | " + modalSelectStyle.Render("sell gems") + "\n\n")
		colors := m.gemColors()
		if len(colors) == 0 {
			b.WriteString(modalDimStyle.Render("No gems to sell. Go find some.") + "\n")
		}
		for i, c := range colors {
			line := fmt.Sprintf("%s gem x%d", c, p.Gems[c])
			b.WriteString(cursorLine(line, i == m.modal.cursor) + "\n")
		}
	} else {
		b.WriteString(modalSelectStyle.Render("buy") + " | sell gems\n\n")
		for i, it := range m.sim.Catalog.ShopItems {
			cost := fmt.Sprintf("%d coins", p.DiscountedCost(&m.sim.Catalog.ShopItems[i]))
			if p.OwnsUpgrade(it.ID) {
				cost = modalDoneStyle.Render("owned")
			}
			line := fmt.Sprintf("%-18s %-10s %s", it.Name, cost, modalDimStyle.Render(it.Description))
			b.WriteString(cursorLine(line, i == m.modal.cursor) + "\n")
		}
	}

	b.WriteString("\n" + m.help.View(shopKeys))
	return b.String()
}

func (m Model) viewSkills() string {
	p := m.sim.Player
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Skill Tree"))
	b.WriteString(modalDimStyle.Render(fmt.Sprintf("   level %d, coins %d", p.Level, p.Coins)) + "\n\n")

	branch := ""
	for i, sk := range m.sim.Catalog.Skills {
		if sk.Branch != branch {
			branch = sk.Branch
			b.WriteString(modalDimStyle.Render("-- "+branch+" --") + "\n")
		}
		status := skillStatus(p, &m.sim.Catalog.Skills[i])
		line := fmt.Sprintf("%-20s %s", sk.Name, status)
		b.WriteString(cursorLine(line, i == m.modal.cursor) + "\n")
	}

	b.WriteString("\n" + m.help.View(menuKeys))
	return b.String()
}

func skillStatus(p *player.State, sk *player.Skill) string {
	if p.HasSkill(sk.ID) {
		return modalDoneStyle.Render("unlocked")
	}
	var parts []string
	if sk.Cost.Coins > 0 {
		parts = append(parts, fmt.Sprintf("%d coins", sk.Cost.Coins))
	}
	colors := make([]string, 0, len(sk.Cost.Gems))
	for c := range sk.Cost.Gems {
		colors = append(colors, c)
	}
	sort.Strings(colors)
	for _, c := range colors {
		parts = append(parts, fmt.Sprintf("%d %s gem", sk.Cost.Gems[c], c))
	}
	if sk.RequiredLevel > 1 {
		parts = append(parts, fmt.Sprintf("lv %d", sk.RequiredLevel))
	}
	if len(parts) == 0 {
		return "free"
	}
	return strings.Join(parts, ", ")
}

func (m Model) viewInventory() string {
	p := m.sim.Player
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Bag") + "\n\n")

	if len(p.Inventory) == 0 {
		b.WriteString(modalDimStyle.Render("Nothing carried.") + "\n")
	}
	for _, it := range p.Inventory {
		b.WriteString(fmt.Sprintf("  %s x%d\n", it.Name, it.Quantity))
	}

	b.WriteString("\nGems:\n")
	colors := m.gemColors()
	if len(colors) == 0 {
		b.WriteString(modalDimStyle.Render("  none") + "\n")
	}
	for _, c := range colors {
		b.WriteString(fmt.Sprintf("  %s x%d\n", c, p.Gems[c]))
	}

	if len(p.Upgrades) > 0 {
		b.WriteString("\nUpgrades:\n")
		for _, id := range p.Upgrades {
			if it, ok := m.sim.Catalog.Item(id); ok {
				b.WriteString("  " + it.Name + "\n")
			}
		}
	}

	if m.sim.Dev.DevOptionsUnlocked {
		state := "off"
		if m.sim.Dev.TeleporterEnabled {
			state = "on"
		}
		b.WriteString("\nDeveloper options:\n")
		b.WriteString(fmt.Sprintf("  teleporter: %s  %s\n", state, modalDimStyle.Render("(t toggles)")))
	}

	b.WriteString("\n" + modalDimStyle.Render("esc to close"))
	return b.String()
}

func (m Model) viewMissions() string {
	if m.modal.reviewID != 0 {
		if ms, ok := m.sim.Missions.Get(m.modal.reviewID); ok {
			return m.viewMissionNotes(ms)
		}
	}

	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Missions") + "\n\n")

	for i, ms := range m.sim.Missions.All() {
		icon := " "
		switch ms.Status {
		case mission.StatusCompleted:
			icon = modalDoneStyle.Render("✓")
		case mission.StatusAvailable:
			icon = "▶"
		case mission.StatusLocked:
			icon = modalDimStyle.Render("·")
		}
		line := fmt.Sprintf("%s %s", icon, ms.Title)
		if ms.Status == mission.StatusAvailable {
			if step := ms.CurrentStep(); step != nil {
				line += modalDimStyle.Render("  - " + step.Description)
			}
		}
		if ms.Status == mission.StatusCompleted && ms.TeachingNotes != "" {
			line += modalDimStyle.Render("  [notes]")
		}
		b.WriteString(cursorLine(line, i == m.modal.cursor) + "\n")
	}

	b.WriteString("\n" + modalDimStyle.Render("enter reviews a completed mission's notes") + "\n")
	b.WriteString(m.help.View(menuKeys))
	return b.String()
}

func (m Model) viewMissionNotes(ms *mission.Mission) string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render(ms.Title) + "\n\n")
	b.WriteString(wrapText(ms.TeachingNotes, 56) + "\n")
	if ms.Reference != "" {
		b.WriteString("\n" + modalDimStyle.Render("see: "+ms.Reference) + "\n")
	}
	b.WriteString("\n" + modalDimStyle.Render("esc to go back"))
	return b.String()
}

func (m Model) viewPuzzle() string {
	var b strings.Builder
	b.WriteString(modalTitleStyle.Render("Ship it") + "\n\n")
	b.WriteString("Run the pipeline in order:\n\n")
	for i, st := range deploySequence {
		mark := "[ ]"
		if i < m.modal.puzzleStage {
			mark = modalDoneStyle.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("  %s (%s) %s\n", mark, st.key, st.label))
	}
	b.WriteString("\n" + modalDimStyle.Render("wrong order resets the pipeline; esc to walk away"))
	return b.String()
}

func cursorLine(line string, selected bool) string {
	if selected {
		return modalSelectStyle.Render("> ") + line
	}
	return "  " + line
}

// wrapText folds text at word boundaries to the given width.
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if lineLen > 0 && lineLen+1+len(w) > width {
			b.WriteByte('\n')
			lineLen = 0
		} else if i > 0 {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
