/* onboarding.go
 * Contains the direct message questionnaire run for every new member. The answers are used to set the member's
 * nickname and grant the member role
 */

package bot

import (
	"context"
	"errors"
	"fmt"

	"ducs-bot/profile"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	namePrompt      = "Welcome to DUCS! I’m the DUCS Bot, here to help get you all set up on the server 🎉 Let’s start with a quick question — what’s your name?"
	classYearPrompt = "What's your class year?"
	emailPrompt     = "What's your school email? (please include '%s' at the end)"
	companyPrompt   = "Since you are graduated, do you want to add your company name or school in your server nickname? If yes, please enter the company name, or type 'no' to skip."

	invalidNameReply      = "Please enter a valid name."
	invalidClassYearReply = "Please enter a valid class year as a number."
	invalidEmailReply     = "Sorry, your email does not meet the required domain. Please try again."
	invalidCompanyReply   = "Please enter a valid response."

	onboardingSuccessReply = "Success! Your nickname has been changed to: %s and you have been assigned the '%s' role. Contact an admin if you want to change."
	roleNotFoundReply      = "Nickname updated successfully to: %s but the role '%s' was not found."
	onboardingFailedReply  = "I couldn't change your nickname or assign your role. Please contact an admin."
)

// onboardingSession holds the answers collected from one member. It lives only as long as the dialogue
type onboardingSession struct {
	ID        string
	GuildID   string
	UserID    string
	ChannelID string
	Email     string
	Profile   profile.Profile
}

// onboardMember runs the questionnaire for a new member and applies the result
// Preconditions: Receives the session, the guild the member joined and the member's user
// Postconditions: The member's nickname and role are updated if every question was answered, else the failure
// is logged
func (b *Bot) onboardMember(session DiscordSession, guildID string, user *discordgo.User) {
	dm, err := session.UserChannelCreate(user.ID)
	if err != nil {
		b.logger.Error("failed to open direct message channel", "guild", guildID, "user", user.ID, "err", err)
		return
	}

	s := &onboardingSession{
		ID:        uuid.NewString(),
		GuildID:   guildID,
		UserID:    user.ID,
		ChannelID: dm.ID,
	}
	log := b.logger.With("session", s.ID, "guild", guildID, "user", user.ID)
	log.Info("starting onboarding")

	if err := b.collectAnswers(context.Background(), session, s); err != nil {
		if errors.Is(err, ErrReplyTimeout) {
			log.Warn("onboarding abandoned", "err", err)
		} else {
			log.Error("onboarding failed", "err", err)
		}
		return
	}

	b.applyProfile(session, s)
}

// ask sends a question to the member and waits for their next direct message
func (b *Bot) ask(ctx context.Context, session DiscordSession, s *onboardingSession, question string) (string, error) {
	replies, release := b.replies.expect(s.ChannelID, s.UserID)
	defer release()

	if _, err := session.ChannelMessageSend(s.ChannelID, question); err != nil {
		return "", fmt.Errorf("failed to send question: %w", err)
	}
	reply, err := await(ctx, replies, b.Settings.PromptTimeout)
	if err != nil {
		return "", err
	}
	return reply.Content, nil
}

// askUntil repeats a question until accept returns true, sending retry after every rejected answer
func (b *Bot) askUntil(ctx context.Context, session DiscordSession, s *onboardingSession, question string, retry string, accept func(string) bool) error {
	for {
		answer, err := b.ask(ctx, session, s, question)
		if err != nil {
			return err
		}
		if accept(answer) {
			return nil
		}
		if _, err := session.ChannelMessageSend(s.ChannelID, retry); err != nil {
			return fmt.Errorf("failed to send retry prompt: %w", err)
		}
	}
}

// collectAnswers asks each onboarding question in order. Graduates are also asked for their company
// Preconditions: Receives an onboardingSession with the DM channel set
// Postconditions: The session holds a complete profile, or an error is returned (ErrReplyTimeout when the member
// stops answering)
func (b *Bot) collectAnswers(ctx context.Context, session DiscordSession, s *onboardingSession) error {
	err := b.askUntil(ctx, session, s, namePrompt, invalidNameReply, func(answer string) bool {
		name, ok := profile.ValidName(answer)
		s.Profile.Name = name
		return ok
	})
	if err != nil {
		return fmt.Errorf("name: %w", err)
	}

	err = b.askUntil(ctx, session, s, classYearPrompt, invalidClassYearReply, func(answer string) bool {
		year, err := profile.ParseClassYear(answer)
		s.Profile.ClassYear = year
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("class year: %w", err)
	}

	err = b.askUntil(ctx, session, s, fmt.Sprintf(emailPrompt, b.Settings.EmailDomain), invalidEmailReply, func(answer string) bool {
		s.Email = answer
		return profile.HasEmailDomain(answer, b.Settings.EmailDomain)
	})
	if err != nil {
		return fmt.Errorf("email: %w", err)
	}

	if !profile.IsGraduate(s.Profile.ClassYear, b.now()) {
		return nil
	}
	err = b.askUntil(ctx, session, s, companyPrompt, invalidCompanyReply, func(answer string) bool {
		company, _, err := profile.ParseCompanyAnswer(answer)
		s.Profile.Company = company
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("company: %w", err)
	}
	return nil
}

// applyProfile sets the member's nickname and grants the member role, then tells the member what happened
func (b *Bot) applyProfile(session DiscordSession, s *onboardingSession) {
	log := b.logger.With("session", s.ID, "guild", s.GuildID, "user", s.UserID)
	nickname := s.Profile.DisplayName()

	reply, err := b.grantMembership(session, s.GuildID, s.UserID, nickname)
	if err != nil {
		log.Error("failed to change nickname or assign role", "err", err)
		reply = onboardingFailedReply
	} else {
		log.Info("onboarding complete", "nickname", nickname)
	}

	if _, err := session.ChannelMessageSend(s.ChannelID, reply); err != nil {
		log.Error("failed to send onboarding result", "err", err)
	}
}

// grantMembership applies the nickname and role
// Preconditions: Receives the guild, member and nickname to set
// Postconditions: Returns the confirmation to send to the member, or an error if any guild change failed
func (b *Bot) grantMembership(session DiscordSession, guildID string, userID string, nickname string) (string, error) {
	if err := session.GuildMemberNickname(guildID, userID, nickname); err != nil {
		return "", fmt.Errorf("failed to set nickname: %w", err)
	}

	roles, err := session.GuildRoles(guildID)
	if err != nil {
		return "", fmt.Errorf("failed to get guild roles: %w", err)
	}
	role, found := lo.Find(roles, func(r *discordgo.Role) bool {
		return r.Name == b.Settings.MemberRole
	})
	if !found {
		return fmt.Sprintf(roleNotFoundReply, nickname, b.Settings.MemberRole), nil
	}

	if err := session.GuildMemberRoleAdd(guildID, userID, role.ID); err != nil {
		return "", fmt.Errorf("failed to add role %s: %w", role.ID, err)
	}
	return fmt.Sprintf(onboardingSuccessReply, nickname, b.Settings.MemberRole), nil
}
