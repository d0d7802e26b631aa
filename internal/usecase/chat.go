package usecase

import (
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/adapter/observability"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/chatbot"
	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/domain"
	obsctx "github.com/rishi6824/AIinterview-and-resume-analyser/internal/observability"
)

// ChatService answers interview-preparation chit-chat. The responder itself
// is stateless; the bounded per-session history only drives response rotation
// and the transcript endpoint.
type ChatService struct {
	Responder *chatbot.Responder
	History   domain.ChatHistory
}

// NewChatService constructs a ChatService.
func NewChatService(r *chatbot.Responder, h domain.ChatHistory) ChatService {
	return ChatService{Responder: r, History: h}
}

// Reply classifies the message and returns the canned response for its topic.
// History-store failures degrade to turn zero rather than failing the chat.
func (s ChatService) Reply(ctx domain.Context, sessionID, message string) (string, error) {
	turn := 0
	if s.History != nil {
		hist, err := s.History.History(ctx, sessionID)
		if err != nil {
			obsctx.LoggerFromContext(ctx).Warn("chat history unavailable", "error", err)
		} else {
			for _, m := range hist {
				if m.Role == "assistant" {
					turn++
				}
			}
		}
	}

	reply, topic := s.Responder.Reply(message, turn)
	observability.ChatRepliesTotal.WithLabelValues(topic).Inc()

	if s.History != nil {
		if err := s.History.Append(ctx, sessionID, domain.ChatMessage{Role: "user", Text: message}); err != nil {
			obsctx.LoggerFromContext(ctx).Warn("chat history append failed", "error", err)
		} else if err := s.History.Append(ctx, sessionID, domain.ChatMessage{Role: "assistant", Text: reply}); err != nil {
			obsctx.LoggerFromContext(ctx).Warn("chat history append failed", "error", err)
		}
	}
	return reply, nil
}

// Transcript returns the retained history for a session.
func (s ChatService) Transcript(ctx domain.Context, sessionID string) ([]domain.ChatMessage, error) {
	if s.History == nil {
		return nil, nil
	}
	return s.History.History(ctx, sessionID)
}
