package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/dice"
	dicemock "github.com/KirkDiggler/rpg-sheet/internal/dice/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type EvaluateTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockSource *dicemock.MockSource
}

func TestEvaluateSuite(t *testing.T) {
	suite.Run(t, new(EvaluateTestSuite))
}

func (s *EvaluateTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSource = dicemock.NewMockSource(s.ctrl)
}

func (s *EvaluateTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EvaluateTestSuite) TestTotalIsDicePlusModifier() {
	s.mockSource.EXPECT().Between(1, 6).Return(4, nil)
	s.mockSource.EXPECT().Between(1, 6).Return(5, nil)

	result, err := dice.Evaluate(dice.Request{Count: 2, Sides: 6, Modifier: 3}, s.mockSource)
	s.Require().NoError(err)
	s.Assert().Equal([]int{4, 5}, result.Rolls)
	s.Assert().Equal(12, result.Total)
	s.Assert().Equal(9, result.DiceTotal())
	s.Assert().Equal("2d6+3: [4 5] +3 = 12", result.String())
}

func (s *EvaluateTestSuite) TestNegativeTotalIsNotClamped() {
	s.mockSource.EXPECT().Between(1, 4).Return(1, nil)

	result, err := dice.Evaluate(dice.Request{Count: 1, Sides: 4, Modifier: -5}, s.mockSource)
	s.Require().NoError(err)
	s.Assert().Equal(-4, result.Total)
}

func (s *EvaluateTestSuite) TestAdvantageKeepsHigher() {
	s.mockSource.EXPECT().Between(1, 20).Return(7, nil)
	s.mockSource.EXPECT().Between(1, 20).Return(15, nil)

	req := dice.D20(2)
	req.Mode = dice.ModeAdvantage
	result, err := dice.Evaluate(req, s.mockSource)
	s.Require().NoError(err)
	s.Assert().Equal([]int{15}, result.Rolls)
	s.Assert().Equal([]int{7}, result.Dropped)
	s.Assert().Equal(17, result.Total)
	s.Assert().Equal("1d20+2 adv: [15] dropped [7] +2 = 17", result.String())
}

func (s *EvaluateTestSuite) TestDisadvantageKeepsLower() {
	s.mockSource.EXPECT().Between(1, 20).Return(7, nil)
	s.mockSource.EXPECT().Between(1, 20).Return(15, nil)

	req := dice.D20(0)
	req.Mode = dice.ModeDisadvantage
	result, err := dice.Evaluate(req, s.mockSource)
	s.Require().NoError(err)
	s.Assert().Equal([]int{7}, result.Rolls)
	s.Assert().Equal([]int{15}, result.Dropped)
	s.Assert().Equal(7, result.Total)
}

func (s *EvaluateTestSuite) TestSourceErrorIsWrapped() {
	s.mockSource.EXPECT().Between(1, 8).Return(0, fmt.Errorf("entropy exhausted"))

	_, err := dice.Evaluate(dice.Request{Count: 1, Sides: 8}, s.mockSource)
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func (s *EvaluateTestSuite) TestSourceOutOfRangeIsRejected() {
	s.mockSource.EXPECT().Between(1, 6).Return(7, nil)

	_, err := dice.Evaluate(dice.Request{Count: 1, Sides: 6}, s.mockSource)
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func (s *EvaluateTestSuite) TestInvalidRequest() {
	_, err := dice.Evaluate(dice.Request{Count: 0, Sides: 6}, s.mockSource)
	s.Assert().True(errors.IsMalformedExpression(err))

	_, err = dice.Evaluate(dice.Request{Count: 1, Sides: 1}, s.mockSource)
	s.Assert().True(errors.IsMalformedExpression(err))

	_, err = dice.Evaluate(dice.Request{Count: 1, Sides: 2, Modifier: dice.MaxModifier + 1}, s.mockSource)
	s.Assert().True(errors.IsMalformedExpression(err))

	_, err = dice.Evaluate(dice.Request{Count: 1, Sides: 6}, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *EvaluateTestSuite) TestRollWithScriptedSource() {
	src := dicemock.NewScriptedSource(3, 3, 6)

	result, err := dice.Roll("3d6-2", src)
	s.Require().NoError(err)
	s.Assert().Equal(10, result.Total)
	s.Assert().Equal(0, src.Remaining())
}

func (s *EvaluateTestSuite) TestSeededSourceIsDeterministic() {
	req := dice.Request{Count: 20, Sides: 12, Modifier: 1}

	first, err := dice.Evaluate(req, dice.NewSeeded(42))
	s.Require().NoError(err)
	second, err := dice.Evaluate(req, dice.NewSeeded(42))
	s.Require().NoError(err)

	s.Assert().Equal(first, second)
}

func (s *EvaluateTestSuite) TestEveryDieWithinRange() {
	src := dice.NewSeeded(7)
	for _, sides := range []int{2, 4, 6, 8, 10, 12, 20, 100} {
		req := dice.Request{Count: 50, Sides: sides, Modifier: -3}
		result, err := dice.Evaluate(req, src)
		s.Require().NoError(err)

		sum := 0
		for _, v := range result.Rolls {
			s.Assert().GreaterOrEqual(v, 1)
			s.Assert().LessOrEqual(v, sides)
			sum += v
		}
		s.Assert().Equal(sum-3, result.Total)
	}
}

func (s *EvaluateTestSuite) TestSeededSourceRejectsEmptyRange() {
	_, err := dice.NewSeeded(1).Between(5, 4)
	s.Assert().True(errors.IsInvalidArgument(err))
}
