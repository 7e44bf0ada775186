package usecase

import (
	"fmt"

	"git-activity-feed/internal/event"
	"git-activity-feed/internal/model"
	"git-activity-feed/internal/webhook"
)

// Normalize maps a decoded webhook payload to a canonical event.
// Unsupported kinds and unrecorded pull request actions are ignored, not errors.
func (uc *implUseCase) Normalize(payload webhook.Payload) (event.NormalizeOutput, error) {
	switch p := payload.(type) {
	case nil:
		return event.NormalizeOutput{}, event.ErrNilPayload
	case webhook.PushPayload:
		return uc.normalizePush(p)
	case webhook.PullRequestPayload:
		return uc.normalizePullRequest(p)
	case webhook.UnsupportedPayload:
		return ignored(event.ReasonUnhandledEvent), nil
	default:
		return event.NormalizeOutput{}, fmt.Errorf("%w: %T", event.ErrUnsupportedPayload, payload)
	}
}

func (uc *implUseCase) normalizePush(p webhook.PushPayload) (event.NormalizeOutput, error) {
	var pusherName, senderLogin, rawTimestamp string
	if p.Pusher != nil {
		pusherName = p.Pusher.Name
	}
	if p.Sender != nil {
		senderLogin = p.Sender.Login
	}
	if p.HeadCommit != nil {
		rawTimestamp = p.HeadCommit.Timestamp
	}

	ts, err := uc.timestamp(rawTimestamp)
	if err != nil {
		return event.NormalizeOutput{}, fmt.Errorf("push head_commit.timestamp: %w", err)
	}

	return event.NormalizeOutput{
		Event: model.CanonicalEvent{
			RequestID:  p.After,
			Author:     uc.coalesce(pusherName, senderLogin, model.UnknownAuthor),
			Action:     model.ActionPush,
			FromBranch: "",
			ToBranch:   webhook.BranchFromRef(p.Ref),
			Timestamp:  ts,
		},
	}, nil
}

func (uc *implUseCase) normalizePullRequest(p webhook.PullRequestPayload) (event.NormalizeOutput, error) {
	pr := p.PullRequest
	if pr == nil {
		pr = &webhook.PullRequest{}
	}

	var action model.Action
	switch {
	case p.Action == "closed" && pr.Merged:
		action = model.ActionMerge
	case event.IsPullRequestAction(p.Action):
		action = model.ActionPullRequest
	default:
		return ignored(event.ReasonIgnoredPRAction), nil
	}

	var author, fromBranch, toBranch string
	if pr.User != nil {
		author = pr.User.Login
	}
	if pr.Head != nil {
		fromBranch = pr.Head.Ref
	}
	if pr.Base != nil {
		toBranch = pr.Base.Ref
	}

	ts, err := uc.timestamp(uc.coalesce(pr.UpdatedAt, pr.CreatedAt))
	if err != nil {
		return event.NormalizeOutput{}, fmt.Errorf("pull_request timestamp: %w", err)
	}

	return event.NormalizeOutput{
		Event: model.CanonicalEvent{
			RequestID:  string(pr.ID),
			Author:     uc.coalesce(author, model.UnknownAuthor),
			Action:     action,
			FromBranch: fromBranch,
			ToBranch:   toBranch,
			Timestamp:  ts,
		},
	}, nil
}
