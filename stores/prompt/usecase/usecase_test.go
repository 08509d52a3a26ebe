package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
	mCustody "github.com/prompthub/marketplace/domain/custody/mocks"
	"github.com/prompthub/marketplace/domain/event"
	mEvent "github.com/prompthub/marketplace/domain/event/mocks"
	"github.com/prompthub/marketplace/domain/prompt"
	mPrompt "github.com/prompthub/marketplace/domain/prompt/mocks"
	mQuery "github.com/prompthub/marketplace/service/query/mocks"
)

type testSuite struct {
	suite.Suite

	im prompt.UseCase

	promptRepo  *mPrompt.Repo
	custodyRepo *mCustody.Repo
	query       *mQuery.Mongo
	publisher   *mEvent.Publisher
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.promptRepo = &mPrompt.Repo{}
	s.custodyRepo = &mCustody.Repo{}
	s.query = &mQuery.Mongo{}
	s.publisher = &mEvent.Publisher{}

	s.im = New(&PromptUseCaseCfg{
		PromptRepo:  s.promptRepo,
		CustodyRepo: s.custodyRepo,
		Query:       s.query,
		Publisher:   s.publisher,
	})
}

var creator = domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")

func (s *testSuite) passthroughTransaction() {
	s.query.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
			return run(c)
		})
}

func (s *testSuite) TestRegister() {
	c := ctx.Background()

	s.passthroughTransaction()
	s.promptRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.custodyRepo.On("Mint", mock.Anything, mock.Anything, creator).Return(nil)
	s.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	p, err := s.im.Register(c, creator, "mint-1", "ipfs://metadata", 250)
	s.NoError(err)
	s.Equal(domain.ToPromptId("mint-1"), p.PromptId)
	s.Equal(creator, p.Creator)
	s.Equal(domain.Bps(250), p.RoyaltyBps)
	s.Equal(int64(0), p.SalesCount)

	s.custodyRepo.AssertCalled(s.T(), "Mint", mock.Anything, p.PromptId, creator)
	s.publisher.AssertCalled(s.T(), "Publish", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypeItemCreated && ev.Creator == creator
	}))
}

func (s *testSuite) TestRegisterGeneratesMintId() {
	c := ctx.Background()

	s.passthroughTransaction()
	s.promptRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.custodyRepo.On("Mint", mock.Anything, mock.Anything, creator).Return(nil)
	s.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	p, err := s.im.Register(c, creator, "", "ipfs://metadata", 0)
	s.NoError(err)
	s.NotEmpty(p.MintId)
	s.Equal(domain.ToPromptId(p.MintId), p.PromptId)
}

func (s *testSuite) TestRegisterRoyaltyTooHigh() {
	c := ctx.Background()

	_, err := s.im.Register(c, creator, "mint-1", "ipfs://metadata", domain.MaxRoyaltyBps+1)
	s.Equal(domain.ErrInvalidRoyalty, err)
}

func (s *testSuite) TestRegisterUriBounds() {
	c := ctx.Background()

	s.passthroughTransaction()
	s.promptRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	s.custodyRepo.On("Mint", mock.Anything, mock.Anything, creator).Return(nil)
	s.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	_, err := s.im.Register(c, creator, "mint-1", "", 0)
	s.Equal(domain.ErrInvalidUri, err)

	_, err = s.im.Register(c, creator, "mint-2", strings.Repeat("a", prompt.MaxMetadataUriLen+1), 0)
	s.Equal(domain.ErrInvalidUri, err)

	// max length is inclusive
	_, err = s.im.Register(c, creator, "mint-3", strings.Repeat("a", prompt.MaxMetadataUriLen), 0)
	s.NoError(err)
}

func (s *testSuite) TestRegisterDuplicate() {
	c := ctx.Background()

	s.passthroughTransaction()
	s.promptRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := s.im.Register(c, creator, "mint-1", "ipfs://metadata", 0)
	s.Equal(domain.ErrConflict, err)
	s.publisher.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
}
