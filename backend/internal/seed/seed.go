package seed

import (
	"fmt"

	"go.uber.org/zap"
	"pulse/backend/internal/content"
	"pulse/backend/internal/messaging"
	"pulse/backend/internal/social"
	"pulse/backend/pkg/logger"
)

// Apply populates empty stores with the demo community. Everything goes
// through the regular services so counters and follow edges are consistent
// by construction. Calling Apply twice fails on the duplicate emails.
func Apply(socialSvc *social.Service, contentSvc *content.Service, messagingSvc *messaging.Service) error {
	log := logger.Get()

	type profile struct {
		email, name, bio, avatar, specialty, location string
		years                                         int
		admin                                         bool
	}

	profiles := []profile{
		{
			email: "sarah.johnson@example.com", name: "Sarah Johnson",
			bio:       "Lead nurse practitioner with 15 years of experience in emergency medicine.",
			specialty: "Emergency Medicine", location: "Boston, MA", years: 15, admin: true,
		},
		{
			email: "michael.chen@example.com", name: "Michael Chen",
			bio:       "Pediatric nurse with a passion for patient education.",
			specialty: "Pediatrics", location: "San Francisco, CA", years: 8,
		},
		{
			email: "lisa.rodriguez@example.com", name: "Lisa Rodriguez",
			bio:       "Cardiac nurse specialized in post-surgical care.",
			specialty: "Cardiac Care", location: "Chicago, IL", years: 10,
		},
		{
			email: "james.wilson@example.com", name: "James Wilson",
			bio:       "ICU nurse with focus on respiratory care.",
			specialty: "Intensive Care", location: "Seattle, WA", years: 12,
		},
		{
			email: "emily.patel@example.com", name: "Emily Patel",
			bio:       "Oncology nurse dedicated to compassionate care.",
			specialty: "Oncology", location: "Austin, TX", years: 6,
		},
	}

	users := make([]*social.User, len(profiles))
	store := socialSvc.Store()
	for i, p := range profiles {
		user, err := socialSvc.Register(p.email, p.name, "demo-password")
		if err != nil {
			return fmt.Errorf("seed user %s: %w", p.email, err)
		}
		if _, err := store.UpdateProfile(user.ID, p.name, p.bio, p.avatar, p.specialty, p.location, p.years); err != nil {
			return fmt.Errorf("seed profile %s: %w", p.email, err)
		}
		if p.admin {
			if err := store.SetRole(user.ID, social.RoleAdmin); err != nil {
				return fmt.Errorf("seed role %s: %w", p.email, err)
			}
		}
		users[i] = user
	}

	sarah, michael, lisa, james, emily := users[0], users[1], users[2], users[3], users[4]

	follows := [][2]*social.User{
		{sarah, michael}, {sarah, emily},
		{michael, sarah}, {michael, lisa}, {michael, james},
		{lisa, sarah}, {lisa, michael}, {lisa, emily},
		{james, sarah},
		{emily, lisa},
	}
	for _, pair := range follows {
		if err := socialSvc.Follow(pair[0].ID, pair[1].ID); err != nil {
			return fmt.Errorf("seed follow: %w", err)
		}
	}

	jobPost, err := contentSvc.CreatePost(sarah.ID,
		"Important Update: Our hospital is hosting a career fair next month. Great opportunity for new graduates! #NursingCareers",
		nil, true)
	if err != nil {
		return fmt.Errorf("seed post: %w", err)
	}
	certPost, err := contentSvc.CreatePost(michael.ID,
		"Just finished my certification in pediatric advanced life support. Always learning! #NursingEducation #PALS",
		nil, false)
	if err != nil {
		return fmt.Errorf("seed post: %w", err)
	}
	if _, err := contentSvc.CreatePost(lisa.ID,
		"Reflecting on a challenging but rewarding shift today. So grateful for my amazing team. #NursingLife",
		nil, false); err != nil {
		return fmt.Errorf("seed post: %w", err)
	}

	comments := []struct {
		author *social.User
		post   *content.Post
		text   string
	}{
		{michael, jobPost, "Thanks for sharing! Will the fair be open to pediatric specialists?"},
		{lisa, jobPost, "Great opportunity, passing this along to my colleagues."},
		{emily, jobPost, "Is remote attendance possible?"},
		{sarah, certPost, "Congratulations Michael, well earned!"},
		{lisa, certPost, "PALS is such a valuable certification. Nice work!"},
	}
	for _, c := range comments {
		if _, err := contentSvc.AddComment(c.author.ID, c.post.ID, c.text); err != nil {
			return fmt.Errorf("seed comment: %w", err)
		}
	}

	likes := []struct {
		user *social.User
		post *content.Post
	}{
		{michael, jobPost}, {lisa, jobPost}, {james, jobPost}, {emily, jobPost},
		{sarah, certPost}, {lisa, certPost}, {emily, certPost},
	}
	for _, l := range likes {
		if err := contentSvc.LikePost(l.user.ID, l.post.ID); err != nil {
			return fmt.Errorf("seed like: %w", err)
		}
	}

	messages := []struct {
		from, to *social.User
		text     string
	}{
		{michael, sarah, "Hi Sarah, do you have the schedule for the career fair yet?"},
		{sarah, michael, "Hi Michael! It runs 9am to 3pm on the 14th, booths open all day."},
		{michael, sarah, "Perfect, I'll spread the word in the pediatrics group."},
		{lisa, emily, "Emily, loved your post on compassionate care last week."},
	}
	for _, m := range messages {
		if _, err := messagingSvc.Send(m.from.ID, m.to.ID, m.text); err != nil {
			return fmt.Errorf("seed message: %w", err)
		}
	}

	log.Info("Demo data seeded",
		zap.Int("users", len(users)),
		zap.Int("posts", 3),
		zap.Int("comments", len(comments)),
	)
	return nil
}
