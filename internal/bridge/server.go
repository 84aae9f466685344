package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"offjournal/internal/application/commands"
	"offjournal/internal/ports"
)

// Handler answers one request with one response
type Handler interface {
	Handle(ctx context.Context, req Request) Response
}

type handlerFunc func(ctx context.Context, payload json.RawMessage) (any, error)

// Server routes request envelopes to application commands
type Server struct {
	entries  ports.EntryRepository
	planner  ports.PlannerRepository
	index    ports.EntryIndex
	logger   *slog.Logger
	handlers map[string]handlerFunc
}

// Option configures a Server
type Option func(*Server)

// WithIndex keeps idx in step with entry mutations and enables entries:search
func WithIndex(idx ports.EntryIndex) Option {
	return func(s *Server) { s.index = idx }
}

// WithLogger sets the server logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer creates a server over the entry and planner repositories
func NewServer(entries ports.EntryRepository, planner ports.PlannerRepository, opts ...Option) *Server {
	s := &Server{
		entries: entries,
		planner: planner,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "bridge.server")

	s.handlers = map[string]handlerFunc{
		CmdEntriesList:       s.listEntries,
		CmdEntriesGetContent: s.getContent,
		CmdEntriesUpdate:     s.updateEntry,
		CmdEntriesCreate:     s.createEntry,
		CmdEntriesDelete:     s.deleteEntry,
		CmdEntriesSearch:     s.searchEntries,
		CmdEntriesMood:       s.analyzeMood,
		CmdPlannerList:       s.listEvents,
		CmdPlannerAdd:        s.addEvent,
		CmdPlannerUpdate:     s.updateEvent,
		CmdPlannerDelete:     s.deleteEvent,
	}
	return s
}

var _ Handler = (*Server)(nil)

// Handle routes req and converts any error into an error envelope
func (s *Server) Handle(ctx context.Context, req Request) Response {
	if strings.TrimSpace(req.Command) == "" {
		return Failure(req, "missing command")
	}

	h, ok := s.handlers[req.Command]
	if !ok {
		s.logger.Warn("unknown command", "command", req.Command)
		return Failure(req, fmt.Sprintf("%s: %s", ErrUnknownCommand, req.Command))
	}

	data, err := h(ctx, req.Payload)
	if err != nil {
		s.logger.Debug("command failed", "command", req.Command, "error", err)
		return Failure(req, err.Error())
	}
	return Success(req, data)
}

func decode[T any](payload json.RawMessage) (T, error) {
	var v T
	if len(payload) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(payload, &v); err != nil {
		return v, fmt.Errorf("invalid payload: %w", err)
	}
	return v, nil
}

func (s *Server) listEntries(ctx context.Context, _ json.RawMessage) (any, error) {
	return commands.NewListEntriesCommand(s.entries).Execute(ctx)
}

func (s *Server) getContent(ctx context.Context, payload json.RawMessage) (any, error) {
	p, err := decode[IDPayload](payload)
	if err != nil {
		return nil, err
	}
	entry, err := commands.NewGetEntryCommand(s.entries, p.ID).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return entry.Content, nil
}

func (s *Server) updateEntry(ctx context.Context, payload json.RawMessage) (any, error) {
	p, err := decode[UpdatePayload](payload)
	if err != nil {
		return nil, err
	}
	res, err := commands.NewUpdateEntryCommand(s.entries, p.ID, p.Content).Execute(ctx)
	if err != nil {
		return nil, err
	}
	s.reindex(p.ID)
	return Result{Status: StatusSuccess, Message: res.Message}, nil
}

func (s *Server) createEntry(ctx context.Context, payload json.RawMessage) (any, error) {
	p, err := decode[TitlePayload](payload)
	if err != nil {
		return nil, err
	}
	res, err := commands.NewCreateEntryCommand(s.entries, p.Title).Execute(ctx)
	if err != nil {
		return nil, err
	}
	s.reindex(res.Entry.ID)
	return Result{Status: StatusSuccess, Data: res.Entry}, nil
}

func (s *Server) deleteEntry(ctx context.Context, payload json.RawMessage) (any, error) {
	p, err := decode[IDPayload](payload)
	if err != nil {
		return nil, err
	}
	res, err := commands.NewDeleteEntryCommand(s.entries, p.ID).Execute(ctx)
	if err != nil {
		return nil, err
	}
	if s.index != nil {
		if err := s.index.Remove(p.ID); err != nil {
			s.logger.Warn("index remove failed", "id", p.ID, "error", err)
		}
	}
	return Result{Status: StatusSuccess, Message: res.Message}, nil
}

func (s *Server) searchEntries(ctx context.Context, payload json.RawMessage) (any, error) {
	if s.index == nil {
		return nil, fmt.Errorf("search index is disabled")
	}
	p, err := decode[QueryPayload](payload)
	if err != nil {
		return nil, err
	}
	return commands.NewSearchCommand(s.index, p.Query).Execute(ctx)
}

func (s *Server) analyzeMood(ctx context.Context, payload json.RawMessage) (any, error) {
	p, err := decode[IDPayload](payload)
	if err != nil {
		return nil, err
	}
	return commands.NewAnalyzeMoodCommand(s.entries, p.ID).Execute(ctx)
}

func (s *Server) listEvents(ctx context.Context, _ json.RawMessage) (any, error) {
	return commands.NewListEventsCommand(s.planner).Execute(ctx)
}

func (s *Server) addEvent(ctx context.Context, payload json.RawMessage) (any, error) {
	p, err := decode[EventPayload](payload)
	if err != nil {
		return nil, err
	}
	res, err := commands.NewAddEventCommand(s.planner, p.Date, p.Title).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return Result{Status: StatusSuccess, Data: res.Event}, nil
}

func (s *Server) updateEvent(ctx context.Context, payload json.RawMessage) (any, error) {
	p, err := decode[EventUpdatePayload](payload)
	if err != nil {
		return nil, err
	}
	res, err := commands.NewUpdateEventCommand(s.planner, p.ID, p.Date, p.Title).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return Result{Status: StatusSuccess, Message: res.Message}, nil
}

func (s *Server) deleteEvent(ctx context.Context, payload json.RawMessage) (any, error) {
	p, err := decode[EventIDPayload](payload)
	if err != nil {
		return nil, err
	}
	res, err := commands.NewDeleteEventCommand(s.planner, p.ID).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return Result{Status: StatusSuccess, Message: res.Message}, nil
}

// reindex refreshes one entry in the search index. Index failures are logged,
// the repository stays the source of truth.
func (s *Server) reindex(id string) {
	if s.index == nil {
		return
	}
	entry, err := s.entries.Get(id)
	if err != nil {
		s.logger.Warn("index refresh skipped", "id", id, "error", err)
		return
	}
	if err := s.index.Upsert(*entry); err != nil {
		s.logger.Warn("index upsert failed", "id", id, "error", err)
	}
}
