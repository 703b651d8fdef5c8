package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/questcv/internal/audio"
	"github.com/vovakirdan/questcv/internal/core"
	"github.com/vovakirdan/questcv/internal/dialogue"
	"github.com/vovakirdan/questcv/internal/game/player"
	"github.com/vovakirdan/questcv/internal/game/sim"
	"github.com/vovakirdan/questcv/internal/storage"
)

// phase is the coarse session state: asking for a name, then playing.
type phase int

const (
	phaseWelcome phase = iota
	phasePlaying
)

// noticeTTL is how long a notification stays on screen.
const noticeTTL = 4 * time.Second

type notice struct {
	text    string
	expires time.Time
}

// dialogueTextMsg delivers generated NPC dialogue text to an open modal.
type dialogueTextMsg struct {
	text string
}

// Model is the Bubble Tea model driving one game session.
type Model struct {
	sim    *sim.Simulation
	screen *core.Screen
	store  *storage.Store
	gen    dialogue.Generator
	sound  audio.Sink
	config core.RuntimeConfig

	phase     phase
	nameInput textinput.Model
	known     []string // existing save names shown on the welcome screen
	name      string

	held    *heldKeys
	modal   modalState
	help    help.Model
	notices []notice

	width    int
	height   int
	quitting bool
}

// NewModel creates a session model. A non-empty name skips the welcome screen
// and loads that player's save immediately; SSH sessions use the connection's
// username this way.
func NewModel(g *sim.Simulation, store *storage.Store, gen dialogue.Generator, sound audio.Sink, cfg core.RuntimeConfig, name string) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if sound == nil {
		sound = audio.Nop{}
	}
	if gen == nil {
		gen = dialogue.Fallback{}
	}

	m := Model{
		sim:    g,
		screen: core.NewScreen(80, 24),
		store:  store,
		gen:    gen,
		sound:  sound,
		config: cfg,
		held:   newHeldKeys(),
		help:   help.New(),
		width:  80,
		height: 24,
	}

	if store != nil {
		if names, err := store.Players(); err == nil {
			m.known = names
		}
	}

	if name != "" {
		m.name = name
		m.phase = phasePlaying
		m.loadSave()
		return m
	}

	in := textinput.New()
	in.Placeholder = "your name"
	in.CharLimit = 32
	in.Focus()
	m.nameInput = in
	return m
}

// Init starts the tick loop, or the name prompt's cursor blink.
func (m Model) Init() tea.Cmd {
	if m.phase == phasePlaying {
		return tickCmd(m.config.TickRate)
	}
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case dialogueTextMsg:
		if m.modal.kind == modalDialogue || m.modal.kind == modalChat {
			m.modal.text = msg.text
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case tea.KeyMsg:
		if m.phase == phaseWelcome {
			return m.handleWelcomeKey(msg)
		}
		if m.modal.kind != modalNone {
			return m.handleModalKey(msg)
		}
		return m.handlePlayKey(msg)
	}

	return m, nil
}

// handleWelcomeKey drives the name prompt.
func (m Model) handleWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.name = name
		m.phase = phasePlaying
		m.loadSave()
		return m, tickCmd(m.config.TickRate)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handlePlayKey routes keys while the world is live.
func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if k, ok := MapMovementKey(key); ok {
		m.held.press(k, time.Now())
		return m, nil
	}

	switch MapActionKey(key) {
	case ActionQuit:
		m.save()
		m.quitting = true
		return m, tea.Quit

	case ActionInteract:
		cmd := m.handleEvents(m.sim.Interact())
		return m, cmd

	case ActionTeleport:
		events, err := m.sim.Teleport()
		if err != nil {
			m.pushNotice(teleportMessage(err, m.sim.TeleportCost()))
			m.sound.Play(audio.SoundError)
			return m, nil
		}
		return m, m.handleEvents(events)

	case ActionMissions:
		m.sim.Suspend()
		m.openModal(modalMissions)
	case ActionInventory:
		m.sim.Suspend()
		m.openModal(modalInventory)
	case ActionSkills:
		m.sim.Suspend()
		m.openModal(modalSkills)
	}

	return m, nil
}

// handleTick runs one simulation step and re-arms the timer. Ticks keep
// flowing while a modal is open: the simulation suspends itself, but notices
// still expire and collectible respawns still poll the wall clock.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.pruneNotices(now)
	if m.phase != phasePlaying {
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.held.frame(now)
	dt := 1.0 / float64(m.config.TickRate)
	cmd := m.handleEvents(m.sim.Step(frame, dt))
	return m, tea.Batch(tickCmd(m.config.TickRate), cmd)
}

// handleEvents applies simulation events to the presentation layer:
// notifications, sounds, modal opens, and autosave requests.
func (m *Model) handleEvents(events []sim.Event) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range events {
		switch e.Kind {
		case sim.EventSound:
			m.sound.Play(e.Sound)

		case sim.EventOpenDialogue:
			m.openModal(modalDialogue)
			m.modal.npcName = e.NPCName
			m.modal.text = "..."
			cmds = append(cmds, m.dialogueCmd(e))

		case sim.EventOpenChat:
			m.openModal(modalChat)
			m.modal.npcName = e.NPCName
			m.modal.text = "..."
			cmds = append(cmds, m.dialogueCmd(e))

		case sim.EventOpenShop:
			m.openModal(modalShop)
			m.modal.npcName = e.NPCName

		case sim.EventOpenStudio:
			m.openModal(modalStudio)
			m.modal.npcName = e.NPCName

		case sim.EventOpenPuzzle:
			m.openModal(modalPuzzle)

		case sim.EventAutosave:
			m.save()

		default:
			if e.Message != "" {
				m.pushNotice(e.Message)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// dialogueCmd fetches dialogue text off the update loop. The generator is a
// fallback chain, so the command always delivers something to show.
func (m Model) dialogueCmd(e sim.Event) tea.Cmd {
	req := dialogue.Request{
		NPCID:       e.NPCID,
		NPCName:     e.NPCName,
		PlayerLevel: m.sim.Player.Level,
	}
	if act := m.sim.Missions.Active(); act != nil {
		req.MissionTitle = act.Title
		if step := act.CurrentStep(); step != nil {
			req.StepDescription = step.Description
		}
	}
	gen := m.gen
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		text, _ := gen.Generate(ctx, req)
		return dialogueTextMsg{text: text}
	}
}

// loadSave restores the player's snapshot, if one exists. A broken store is
// logged and the session starts fresh rather than failing.
func (m *Model) loadSave() {
	if m.store == nil {
		m.pushNotice("Welcome, " + m.name)
		return
	}
	save, found, err := m.store.LoadGame(m.name)
	if err != nil {
		log.Warn("could not load save", "player", m.name, "error", err)
		m.pushNotice("Could not load your save; starting fresh")
		return
	}
	if !found {
		m.pushNotice("Welcome, " + m.name)
		return
	}
	m.sim.Restore(save)
	m.pushNotice("Welcome back, " + m.name)
}

// save persists the current snapshot. Best effort: a failed save surfaces as
// a notice, never as a crash.
func (m *Model) save() {
	if m.store == nil || m.name == "" {
		return
	}
	if err := m.store.SaveGame(m.name, m.sim.Snapshot()); err != nil {
		log.Warn("autosave failed", "player", m.name, "error", err)
		m.pushNotice("Autosave failed")
	}
}

func (m *Model) pushNotice(text string) {
	m.notices = append(m.notices, notice{text: text, expires: time.Now().Add(noticeTTL)})
	if len(m.notices) > 3 {
		m.notices = m.notices[len(m.notices)-3:]
	}
}

func (m *Model) pruneNotices(now time.Time) {
	kept := m.notices[:0]
	for _, n := range m.notices {
		if now.Before(n.expires) {
			kept = append(kept, n)
		}
	}
	m.notices = kept
}

func (m Model) activeNotices() []string {
	out := make([]string, 0, len(m.notices))
	for _, n := range m.notices {
		out = append(out, n.text)
	}
	return out
}

// teleportMessage maps a fast-travel failure to a player-facing line.
func teleportMessage(err error, cost int) string {
	switch {
	case errors.Is(err, sim.ErrTeleporterDisabled):
		return "The teleporter is offline."
	case errors.Is(err, player.ErrInsufficientFunds):
		return fmt.Sprintf("Teleporting costs %d coins.", cost)
	case errors.Is(err, sim.ErrIndoors):
		return "The teleporter can't reach you indoors."
	case errors.Is(err, sim.ErrNoSafeLandingSpot):
		return "No clear ground near the destination."
	case errors.Is(err, sim.ErrAllMissionsDone):
		return "Nowhere left to travel; every mission is done."
	default:
		return "No destination right now."
	}
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phaseWelcome {
		return m.viewWelcome()
	}
	if m.modal.kind != modalNone {
		return m.viewModal()
	}
	renderWorld(m.screen, m.sim, m.name, m.activeNotices())
	return RenderScreen(m.screen)
}

func (m Model) viewWelcome() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("QUEST CV")
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render("An explorable résumé. Walk around, talk to people, get hired.")

	var b strings.Builder
	b.WriteString("\n  " + title + "\n\n")
	b.WriteString("  " + sub + "\n\n")
	b.WriteString("  Who's exploring today?\n\n")
	b.WriteString("  " + m.nameInput.View() + "\n\n")
	if len(m.known) > 0 {
		b.WriteString("  Returning travelers: " + strings.Join(m.known, ", ") + "\n\n")
	}
	b.WriteString("  enter to start, esc to leave\n")
	return b.String()
}

// Run starts a local terminal session and blocks until it ends.
func Run(g *sim.Simulation, store *storage.Store, gen dialogue.Generator, sound audio.Sink, cfg core.RuntimeConfig, name string) error {
	model := NewModel(g, store, gen, sound, cfg, name)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
