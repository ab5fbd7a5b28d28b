package dicesession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	dicesession "github.com/KirkDiggler/rpg-sheet/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *clock.Fixed
	repo     dicesession.Repository
	mr       *miniredis.Miniredis
	cleanup  func()
	useRedis bool
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{useRedis: true})
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	s.cleanup = func() {}

	if !s.useRedis {
		s.repo = dicesession.NewInMemory(s.clock)
		return
	}

	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup

	repo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) sampleRoll(id string, total int) dicesession.DiceRoll {
	return dicesession.DiceRoll{
		RollID:      id,
		Token:       "stealth",
		Kind:        "skill",
		Description: "Stealth check",
		Notation:    "1d20+6",
		Dice:        []int{total - 6},
		DiceTotal:   total - 6,
		Modifier:    6,
		Total:       total,
		RolledAt:    s.clock.Now(),
	}
}

func (s *RepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID:   "char_1",
		EntityType: "character",
		Context:    "rolls",
		Rolls:      []dicesession.DiceRoll{s.sampleRoll("roll_1", 18)},
	})
	s.Require().NoError(err)
	s.Assert().Equal(s.clock.Now().Add(dicesession.DefaultTTL), created.Session.ExpiresAt)

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_1", Context: "rolls"})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Rolls, 1)
	s.Assert().Equal("character", got.Session.EntityType)
	s.Assert().Equal("roll_1", got.Session.Rolls[0].RollID)
	s.Assert().Equal([]int{12}, got.Session.Rolls[0].Dice)
	s.Assert().Equal(18, got.Session.Rolls[0].Total)

	if s.mr != nil {
		s.Assert().True(s.mr.Exists("dice_session:char_1:rolls"))
	}
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_404", Context: "rolls"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestKeyValidation() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{Context: "rolls"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_1"})
	s.Assert().True(errors.IsInvalidArgument(err))

	s.Assert().True(errors.IsInvalidArgument(s.repo.Update(s.ctx, nil)))
}

func (s *RepositoryTestSuite) TestUpdateAppendsRolls() {
	created, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "char_1",
		Context:  "rolls",
		Rolls:    []dicesession.DiceRoll{s.sampleRoll("roll_1", 10)},
	})
	s.Require().NoError(err)

	session := created.Session
	session.Rolls = append(session.Rolls, s.sampleRoll("roll_2", 20))
	s.Require().NoError(s.repo.Update(s.ctx, session))

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_1", Context: "rolls"})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Rolls, 2)
	s.Assert().Equal("roll_2", got.Session.Rolls[1].RollID)
}

func (s *RepositoryTestSuite) TestExpiredSession() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "char_1",
		Context:  "rolls",
		TTL:      time.Minute,
	})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_1", Context: "rolls"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestUpdateExpiredSession() {
	created, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "char_1",
		Context:  "rolls",
		TTL:      time.Minute,
	})
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)

	err = s.repo.Update(s.ctx, created.Session)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "char_1",
		Context:  "rolls",
		Rolls: []dicesession.DiceRoll{
			s.sampleRoll("roll_1", 10),
			s.sampleRoll("roll_2", 11),
		},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "char_1", Context: "rolls"})
	s.Require().NoError(err)
	s.Assert().Equal(2, out.RollsDeleted)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_1", Context: "rolls"})
	s.Assert().True(errors.IsNotFound(err))

	out, err = s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: "char_1", Context: "rolls"})
	s.Require().NoError(err)
	s.Assert().Equal(0, out.RollsDeleted)
}

func (s *RepositoryTestSuite) TestGetReturnsCopy() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "char_1",
		Context:  "rolls",
		Rolls:    []dicesession.DiceRoll{s.sampleRoll("roll_1", 10)},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_1", Context: "rolls"})
	s.Require().NoError(err)
	got.Session.Rolls[0].Dice[0] = 99

	again, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: "char_1", Context: "rolls"})
	s.Require().NoError(err)
	s.Assert().Equal(4, again.Session.Rolls[0].Dice[0])
}

func TestNewRedisRepositoryRequiresClient(t *testing.T) {
	_, err := dicesession.NewRedisRepository(&dicesession.Config{Clock: clock.New()})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}

	_, err = dicesession.NewRedisRepository(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
