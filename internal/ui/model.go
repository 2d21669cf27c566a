package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/kaboom/internal/network/client"
	"github.com/palemoky/kaboom/internal/protocol"
	"github.com/palemoky/kaboom/internal/protocol/codec"
)

// gamePhase is the client-side UI phase.
type gamePhase int

const (
	phaseName  gamePhase = iota // entering a nickname
	phaseTable                  // joined, watching/playing the table
)

// serverMsg wraps a decoded server message for the bubbletea loop.
type serverMsg struct {
	msg *protocol.Message
}

// connClosedMsg signals that the connection dropped.
type connClosedMsg struct{}

// Model is the top-level bubbletea model for the online client.
type Model struct {
	client *client.Client
	msgCh  chan tea.Msg

	phase gamePhase
	input textinput.Model

	state    *protocol.GameStatePayload
	lines    []string // game_message log
	errText  string
	playerID string
}

// NewModel creates the client model and wires network callbacks.
func NewModel(serverURL string) *Model {
	input := textinput.New()
	input.Placeholder = "Your name"
	input.CharLimit = 20
	input.Focus()

	m := &Model{
		client: client.NewClient(serverURL),
		msgCh:  make(chan tea.Msg, 64),
		input:  input,
	}

	m.client.OnMessage = func(msg *protocol.Message) {
		m.msgCh <- serverMsg{msg: msg}
	}
	m.client.OnClose = func() {
		m.msgCh <- connClosedMsg{}
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	if err := m.client.Connect(); err != nil {
		m.errText = fmt.Sprintf("connect failed: %v", err)
		return tea.Quit
	}
	return m.listen()
}

// listen waits for the next network event.
func (m *Model) listen() tea.Cmd {
	return func() tea.Msg {
		return <-m.msgCh
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case serverMsg:
		m.handleServer(msg.msg)
		codec.PutMessage(msg.msg)
		return m, m.listen()

	case connClosedMsg:
		m.errText = "connection closed"
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "q":
		if m.phase == phaseName && key.String() == "q" {
			break // let "q" be typed into the name field
		}
		m.client.Close()
		return m, tea.Quit
	}

	if m.phase == phaseName {
		if key.Type == tea.KeyEnter {
			name := m.input.Value()
			m.client.PlayerName = name
			_ = m.client.Send(protocol.MsgJoinGame, protocol.JoinGamePayload{Name: name})
			m.phase = phaseTable
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		return m, cmd
	}

	// Table phase key bindings
	switch key.String() {
	case "d":
		_ = m.client.Send(protocol.MsgDrawCard, nil)
	case "x":
		_ = m.client.Send(protocol.MsgDiscardDrawnCard, nil)
	case "1", "2", "3", "4":
		pos := int(key.String()[0]-'0') - 1
		_ = m.client.Send(protocol.MsgReplaceCard, protocol.ReplaceCardPayload{Position: &pos})
	}
	return m, nil
}

// handleServer applies one server message to the model.
func (m *Model) handleServer(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgConnected:
		if payload, err := codec.ParsePayload[protocol.ConnectedPayload](msg); err == nil {
			m.playerID = payload.PlayerID
		}

	case protocol.MsgGameStateUpdate:
		if payload, err := codec.ParsePayload[protocol.GameStatePayload](msg); err == nil {
			m.state = payload
			m.errText = ""
		}

	case protocol.MsgGameMessage:
		if payload, err := codec.ParsePayload[protocol.GameMessagePayload](msg); err == nil {
			m.addLine(payload.Text)
		}

	case protocol.MsgError:
		if payload, err := codec.ParsePayload[protocol.ErrorPayload](msg); err == nil {
			m.errText = payload.Message
		}
	}
}

func (m *Model) addLine(line string) {
	m.lines = append(m.lines, line)
	if len(m.lines) > 8 {
		m.lines = m.lines[len(m.lines)-8:]
	}
}
