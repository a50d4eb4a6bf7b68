package service

import (
	"regexp"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// ChatMemberGetter is the membership oracle: it reports a user's status in a
// channel. Implemented by *tgbotapi.BotAPI.
type ChatMemberGetter interface {
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

var channelNameRe = regexp.MustCompile(`(?:https?://)?t\.me/@?(\w+)`)

// MembershipService verifies that a user is subscribed to every configured
// sponsor channel. With no sponsors configured the gate is open.
type MembershipService struct {
	api      ChatMemberGetter
	logger   *zap.Logger
	sponsors []string
}

// NewMembershipService creates a MembershipService for the given sponsor
// channel URLs or handles.
func NewMembershipService(api ChatMemberGetter, logger *zap.Logger, sponsors []string) *MembershipService {
	return &MembershipService{
		api:      api,
		logger:   logger,
		sponsors: sponsors,
	}
}

// SponsorsList returns the configured sponsor channel names, stripped of any
// t.me/ prefix and leading @.
func (s *MembershipService) SponsorsList() []string {
	names := make([]string, 0, len(s.sponsors))
	for _, sponsor := range s.sponsors {
		names = append(names, extractChannelName(sponsor))
	}
	return names
}

// Verify checks the user's membership in every sponsor channel in order,
// stopping at the first failure. An oracle error counts as a failure for that
// channel: the gate fails closed. Results are not cached; every gated action
// re-verifies.
func (s *MembershipService) Verify(userID int64) bool {
	if len(s.sponsors) == 0 {
		s.logger.Warn("sponsors list is empty, skipping membership verification")
		return true
	}

	for _, sponsor := range s.sponsors {
		channel := extractChannelName(sponsor)

		member, err := s.api.GetChatMember(tgbotapi.GetChatMemberConfig{
			ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
				SuperGroupUsername: "@" + channel,
				UserID:             userID,
			},
		})
		if err != nil {
			s.logger.Warn("membership verification error",
				zap.String("channel", channel),
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			return false
		}

		if !isValidMemberStatus(member.Status) {
			return false
		}
	}

	return true
}

func isValidMemberStatus(status string) bool {
	switch status {
	case "creator", "administrator", "member":
		return true
	}
	return false
}

// extractChannelName derives a bare channel name from a t.me URL or a handle.
func extractChannelName(url string) string {
	if m := channelNameRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return strings.TrimSpace(strings.ReplaceAll(url, "@", ""))
}
