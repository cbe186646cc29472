package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/softwareslayer/internal/client/client"
	"github.com/dmitrijs2005/softwareslayer/internal/client/models"
	"github.com/dmitrijs2005/softwareslayer/internal/logging"
)

var (
	ErrNotLoggedIn = errors.New("not logged in")
	ErrEmptyTopic  = errors.New("topic must not be empty")
)

// SkillService manages the signed-in user's skill topics.
type SkillService interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, topic string) error
	Rename(ctx context.Context, oldTopic, newTopic string) error
	Remove(ctx context.Context, topic string) error
}

type skillService struct {
	client  client.Client
	session SessionStore
	log     logging.Logger
}

func NewSkillService(client client.Client, session SessionStore, logger logging.Logger) SkillService {
	return &skillService{client: client, session: session, log: logger.With("component", "skills")}
}

func (s *skillService) user() (*models.User, error) {
	u := s.session.User()
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	return u, nil
}

func cleanTopic(topic string) (string, error) {
	t := strings.TrimSpace(topic)
	if t == "" {
		return "", ErrEmptyTopic
	}
	return t, nil
}

func (s *skillService) List(ctx context.Context) ([]string, error) {
	u, err := s.user()
	if err != nil {
		return nil, err
	}

	skills, err := s.client.ListSkills(ctx, u.Token, u.ID)
	if err != nil {
		return nil, fmt.Errorf("list skills error: %w", err)
	}
	if skills == nil {
		skills = []string{}
	}
	return skills, nil
}

func (s *skillService) Add(ctx context.Context, topic string) error {
	u, err := s.user()
	if err != nil {
		return err
	}
	t, err := cleanTopic(topic)
	if err != nil {
		return err
	}

	if err := s.client.CreateSkill(ctx, u.Token, t); err != nil {
		return fmt.Errorf("add skill error: %w", err)
	}
	s.log.Debug(ctx, "skill added", "user_id", u.ID, "topic", t)
	return nil
}

func (s *skillService) Rename(ctx context.Context, oldTopic, newTopic string) error {
	u, err := s.user()
	if err != nil {
		return err
	}
	oldT, err := cleanTopic(oldTopic)
	if err != nil {
		return err
	}
	newT, err := cleanTopic(newTopic)
	if err != nil {
		return err
	}
	if oldT == newT {
		return nil
	}

	if err := s.client.UpdateSkill(ctx, u.Token, oldT, newT); err != nil {
		return fmt.Errorf("update skill error: %w", err)
	}
	s.log.Debug(ctx, "skill renamed", "user_id", u.ID, "from", oldT, "to", newT)
	return nil
}

func (s *skillService) Remove(ctx context.Context, topic string) error {
	u, err := s.user()
	if err != nil {
		return err
	}
	t, err := cleanTopic(topic)
	if err != nil {
		return err
	}

	if err := s.client.DeleteSkill(ctx, u.Token, t); err != nil {
		return fmt.Errorf("remove skill error: %w", err)
	}
	s.log.Debug(ctx, "skill removed", "user_id", u.ID, "topic", t)
	return nil
}
