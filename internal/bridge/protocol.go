// Package bridge carries JSON command/response envelopes between the
// front-end and the journal backend.
package bridge

import (
	"encoding/json"
	"errors"
	"strings"
)

// Envelope statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Command names
const (
	CmdEntriesList       = "entries:list"
	CmdEntriesGetContent = "entries:get_content"
	CmdEntriesUpdate     = "entries:update"
	CmdEntriesCreate     = "entries:create"
	CmdEntriesDelete     = "entries:delete"
	CmdEntriesSearch     = "entries:search"
	CmdEntriesMood       = "entries:mood"

	CmdPlannerList   = "planner:list"
	CmdPlannerAdd    = "planner:add"
	CmdPlannerUpdate = "planner:update"
	CmdPlannerDelete = "planner:delete"
)

// Command families; a family owns one busy indicator
const (
	FamilyDiary   = "diary"
	FamilyPlanner = "planner"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBridgeClosed   = errors.New("bridge closed")
	ErrBridgeBusy     = errors.New("bridge queue full")
)

// Request is the outbound envelope
type Request struct {
	Command string          `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
	ID      string          `json:"id,omitempty"`
}

// Response is the inbound envelope
type Response struct {
	Status  string          `json:"status"`
	Command string          `json:"command"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	ID      string          `json:"id,omitempty"`
}

// OK reports whether the response carries a success status
func (r Response) OK() bool {
	return r.Status == StatusSuccess
}

// Result is the data of a successful mutation
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Payloads
type (
	IDPayload struct {
		ID string `json:"id"`
	}
	UpdatePayload struct {
		ID      string `json:"id"`
		Content string `json:"content"`
	}
	TitlePayload struct {
		Title string `json:"title"`
	}
	QueryPayload struct {
		Query string `json:"query"`
	}
	EventPayload struct {
		Date  string `json:"date"`
		Title string `json:"title"`
	}
	EventUpdatePayload struct {
		ID    int    `json:"id"`
		Date  string `json:"date,omitempty"`
		Title string `json:"title,omitempty"`
	}
	EventIDPayload struct {
		ID int `json:"id"`
	}
)

// Family returns the view family a command belongs to, or "" for none
func Family(command string) string {
	switch {
	case strings.HasPrefix(command, "entries:"):
		return FamilyDiary
	case strings.HasPrefix(command, "planner:"):
		return FamilyPlanner
	default:
		return ""
	}
}

// NewRequest builds a request envelope. A nil payload is omitted.
func NewRequest(command string, payload any, id string) (Request, error) {
	req := Request{Command: command, ID: id}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return Request{}, err
		}
		req.Payload = raw
	}
	return req, nil
}

// Success builds a success response for req carrying data
func Success(req Request, data any) Response {
	resp := Response{Status: StatusSuccess, Command: req.Command, ID: req.ID}
	raw, err := json.Marshal(data)
	if err != nil {
		return Failure(req, err.Error())
	}
	resp.Data = raw
	return resp
}

// Failure builds an error response for req
func Failure(req Request, message string) Response {
	return Response{
		Status:  StatusError,
		Command: req.Command,
		Message: message,
		ID:      req.ID,
	}
}

// DecodeRequest parses one request envelope
func DecodeRequest(data []byte) (Request, error) {
	var req Request
	err := json.Unmarshal(data, &req)
	return req, err
}

// DecodeResponse parses one response envelope
func DecodeResponse(data []byte) (Response, error) {
	var resp Response
	err := json.Unmarshal(data, &resp)
	return resp, err
}
