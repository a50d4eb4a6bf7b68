package service

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// fakeMemberOracle answers GetChatMember from canned statuses and records the
// order channels were queried in.
type fakeMemberOracle struct {
	statuses map[string]string // channel (with @) -> status
	errs     map[string]error
	queried  []string
}

func (f *fakeMemberOracle) GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	channel := config.SuperGroupUsername
	f.queried = append(f.queried, channel)

	if err := f.errs[channel]; err != nil {
		return tgbotapi.ChatMember{}, err
	}
	return tgbotapi.ChatMember{Status: f.statuses[channel]}, nil
}

func TestMembershipVerify(t *testing.T) {
	t.Run("OpenGateWithoutSponsors", func(t *testing.T) {
		oracle := &fakeMemberOracle{}
		svc := NewMembershipService(oracle, zap.NewNop(), nil)

		if !svc.Verify(1) {
			t.Fatal("empty sponsors list must open the gate")
		}
		if len(oracle.queried) != 0 {
			t.Errorf("oracle queried %v with no sponsors configured", oracle.queried)
		}
	})

	t.Run("PassingStatuses", func(t *testing.T) {
		for _, status := range []string{"member", "administrator", "creator"} {
			oracle := &fakeMemberOracle{statuses: map[string]string{"@footchan": status}}
			svc := NewMembershipService(oracle, zap.NewNop(), []string{"footchan"})

			if !svc.Verify(1) {
				t.Errorf("status %q must pass the gate", status)
			}
		}
	})

	t.Run("FailingStatuses", func(t *testing.T) {
		for _, status := range []string{"left", "kicked", "restricted", ""} {
			oracle := &fakeMemberOracle{statuses: map[string]string{"@footchan": status}}
			svc := NewMembershipService(oracle, zap.NewNop(), []string{"footchan"})

			if svc.Verify(1) {
				t.Errorf("status %q must fail the gate", status)
			}
		}
	})

	t.Run("ShortCircuitsOnFirstFailure", func(t *testing.T) {
		oracle := &fakeMemberOracle{statuses: map[string]string{
			"@first":  "left",
			"@second": "member",
		}}
		svc := NewMembershipService(oracle, zap.NewNop(), []string{"first", "second"})

		if svc.Verify(1) {
			t.Fatal("gate must fail with a non-member channel")
		}
		if len(oracle.queried) != 1 || oracle.queried[0] != "@first" {
			t.Errorf("queried %v, want only @first", oracle.queried)
		}
	})

	t.Run("OracleErrorClosesGate", func(t *testing.T) {
		oracle := &fakeMemberOracle{
			statuses: map[string]string{"@first": "member"},
			errs:     map[string]error{"@second": errors.New("Bad Request: chat not found")},
		}
		svc := NewMembershipService(oracle, zap.NewNop(), []string{"first", "second"})

		if svc.Verify(1) {
			t.Fatal("oracle error must fail closed")
		}
		if len(oracle.queried) != 2 {
			t.Errorf("queried %v, want both channels", oracle.queried)
		}
	})

	t.Run("AllChannelsPass", func(t *testing.T) {
		oracle := &fakeMemberOracle{statuses: map[string]string{
			"@first":  "member",
			"@second": "administrator",
		}}
		svc := NewMembershipService(oracle, zap.NewNop(), []string{"first", "second"})

		if !svc.Verify(1) {
			t.Fatal("gate must pass when every channel passes")
		}
	})
}

func TestExtractChannelName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://t.me/footchan", "footchan"},
		{"http://t.me/footchan", "footchan"},
		{"t.me/footchan", "footchan"},
		{"t.me/@footchan", "footchan"},
		{"@footchan", "footchan"},
		{"footchan", "footchan"},
		{" footchan ", "footchan"},
	}

	for _, tt := range tests {
		if got := extractChannelName(tt.in); got != tt.want {
			t.Errorf("extractChannelName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSponsorsList(t *testing.T) {
	svc := NewMembershipService(&fakeMemberOracle{}, zap.NewNop(), []string{
		"https://t.me/first", "@second",
	})

	got := svc.SponsorsList()
	want := []string{"first", "second"}
	if len(got) != len(want) {
		t.Fatalf("SponsorsList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SponsorsList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
