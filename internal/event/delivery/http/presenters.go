package http

import (
	"git-activity-feed/internal/event"
	"git-activity-feed/internal/model"
)

// --- Response DTOs ---

type eventResp struct {
	RequestID  string `json:"request_id"`
	Author     string `json:"author"`
	Action     string `json:"action"`
	FromBranch string `json:"from_branch"`
	ToBranch   string `json:"to_branch"`
	Timestamp  string `json:"timestamp"`
}

func newEventResp(e model.CanonicalEvent) eventResp {
	return eventResp{
		RequestID:  e.RequestID,
		Author:     e.Author,
		Action:     string(e.Action),
		FromBranch: e.FromBranch,
		ToBranch:   e.ToBranch,
		Timestamp:  e.Timestamp,
	}
}

type receiveResp struct {
	Status string     `json:"status"`
	Event  *eventResp `json:"event,omitempty"`
}

func (h *handler) newReceiveResp(out event.IngestOutput) receiveResp {
	resp := receiveResp{Status: string(out.Status)}
	if out.Status == event.StatusReceived {
		e := newEventResp(out.Event)
		resp.Event = &e
	}
	return resp
}

func (h *handler) newListResp(out event.ListLatestOutput) []eventResp {
	items := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		items[i] = newEventResp(e)
	}
	return items
}
