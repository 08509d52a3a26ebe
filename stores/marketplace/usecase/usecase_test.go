package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/marketplace"
	mMarketplace "github.com/prompthub/marketplace/domain/marketplace/mocks"
)

type testSuite struct {
	suite.Suite

	im   marketplace.UseCase
	repo *mMarketplace.Repo
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.repo = &mMarketplace.Repo{}
	s.im = New(&MarketplaceUseCaseCfg{MarketplaceRepo: s.repo})
}

var admin = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")

func (s *testSuite) TestInitialize() {
	c := ctx.Background()

	s.repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	cfg, err := s.im.Initialize(c, admin, 500)
	s.NoError(err)
	s.Equal(admin, cfg.Admin)
	s.Equal(domain.Bps(500), cfg.FeeBps)
	s.Equal(uint64(0), cfg.Treasury)
}

func (s *testSuite) TestInitializeFeeBoundary() {
	c := ctx.Background()

	s.repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	// cap is inclusive
	_, err := s.im.Initialize(c, admin, domain.MaxFeeBps)
	s.NoError(err)

	_, err = s.im.Initialize(c, admin, domain.MaxFeeBps+1)
	s.Equal(domain.ErrInvalidFee, err)
}

func (s *testSuite) TestInitializeTwice() {
	c := ctx.Background()

	s.repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := s.im.Initialize(c, admin, 500)
	s.Equal(domain.ErrConflict, err)
}

func (s *testSuite) TestClose() {
	c := ctx.Background()

	s.repo.On("Get", mock.Anything).Return(&marketplace.Config{Admin: admin, FeeBps: 500}, nil)
	s.repo.On("Remove", mock.Anything).Return(nil)

	err := s.im.Close(c, admin)
	s.NoError(err)
	s.repo.AssertExpectations(s.T())
}

func (s *testSuite) TestCloseNotAdmin() {
	c := ctx.Background()

	s.repo.On("Get", mock.Anything).Return(&marketplace.Config{Admin: admin, FeeBps: 500}, nil)

	err := s.im.Close(c, domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369"))
	s.Equal(domain.ErrUnauthorized, err)
	s.repo.AssertNotCalled(s.T(), "Remove", mock.Anything)
}
