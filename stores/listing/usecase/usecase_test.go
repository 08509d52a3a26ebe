package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/prompthub/marketplace/base/ctx"
	"github.com/prompthub/marketplace/domain"
	"github.com/prompthub/marketplace/domain/custody"
	mCustody "github.com/prompthub/marketplace/domain/custody/mocks"
	"github.com/prompthub/marketplace/domain/event"
	mEvent "github.com/prompthub/marketplace/domain/event/mocks"
	mLedger "github.com/prompthub/marketplace/domain/ledger/mocks"
	"github.com/prompthub/marketplace/domain/listing"
	mListing "github.com/prompthub/marketplace/domain/listing/mocks"
	"github.com/prompthub/marketplace/domain/marketplace"
	mMarketplace "github.com/prompthub/marketplace/domain/marketplace/mocks"
	"github.com/prompthub/marketplace/domain/prompt"
	mPrompt "github.com/prompthub/marketplace/domain/prompt/mocks"
	mQuery "github.com/prompthub/marketplace/service/query/mocks"
)

type testSuite struct {
	suite.Suite

	im *impl

	listingRepo     *mListing.Repo
	promptRepo      *mPrompt.Repo
	custodyRepo     *mCustody.Repo
	ledgerRepo      *mLedger.Repo
	marketplaceRepo *mMarketplace.Repo
	query           *mQuery.Mongo
	publisher       *mEvent.Publisher
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.listingRepo = &mListing.Repo{}
	s.promptRepo = &mPrompt.Repo{}
	s.custodyRepo = &mCustody.Repo{}
	s.ledgerRepo = &mLedger.Repo{}
	s.marketplaceRepo = &mMarketplace.Repo{}
	s.query = &mQuery.Mongo{}
	s.publisher = &mEvent.Publisher{}

	s.im = New(&ListingUseCaseCfg{
		ListingRepo:     s.listingRepo,
		PromptRepo:      s.promptRepo,
		CustodyRepo:     s.custodyRepo,
		LedgerRepo:      s.ledgerRepo,
		MarketplaceRepo: s.marketplaceRepo,
		Query:           s.query,
		Publisher:       s.publisher,
	}).(*impl)
}

func (s *testSuite) passthroughTransaction() {
	s.query.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error {
			return run(c)
		})
}

var (
	promptId = domain.PromptId("7d9f5e3c1b")
	seller   = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	buyer    = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	creator  = domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	admin    = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")
)

func (s *testSuite) TestCreate() {
	c := ctx.Background()

	s.promptRepo.On("FindOne", mock.Anything, prompt.Id{PromptId: promptId}).
		Return(&prompt.Prompt{PromptId: promptId, Creator: creator}, nil)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(nil, domain.ErrNotFound)
	s.passthroughTransaction()
	s.custodyRepo.On("Transfer", mock.Anything, promptId, seller, custody.EscrowAddress(promptId)).
		Return(nil)
	s.listingRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	s.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	l, err := s.im.Create(c, seller, promptId, 1000, "prompt for sale")
	s.NoError(err)
	s.True(l.IsActive)
	s.Equal(seller, l.Seller)
	s.Equal(uint64(1000), l.Price)
	s.NotEmpty(l.Instance)

	s.custodyRepo.AssertExpectations(s.T())
	s.publisher.AssertCalled(s.T(), "Publish", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypePromptListed && ev.Seller == seller && ev.Price == 1000
	}))
}

func (s *testSuite) TestCreateZeroPrice() {
	c := ctx.Background()

	_, err := s.im.Create(c, seller, promptId, 0, "")
	s.Equal(domain.ErrInvalidPrice, err)
}

func (s *testSuite) TestCreateAlreadyActive() {
	c := ctx.Background()

	s.promptRepo.On("FindOne", mock.Anything, prompt.Id{PromptId: promptId}).
		Return(&prompt.Prompt{PromptId: promptId, Creator: creator}, nil)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(&listing.Listing{PromptId: promptId, Seller: seller, IsActive: true}, nil)

	_, err := s.im.Create(c, seller, promptId, 1000, "")
	s.Equal(domain.ErrConflict, err)
}

func (s *testSuite) TestCreateOverClosedListing() {
	c := ctx.Background()

	// a sold or delisted instance is terminal, relisting starts a fresh one
	closedAt := time.Now().Add(-time.Hour)
	s.promptRepo.On("FindOne", mock.Anything, prompt.Id{PromptId: promptId}).
		Return(&prompt.Prompt{PromptId: promptId, Creator: creator}, nil)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(&listing.Listing{
			PromptId: promptId,
			Instance: "closed-instance",
			Seller:   buyer,
			Price:    500,
			IsActive: false,
			ClosedAt: &closedAt,
		}, nil)
	s.passthroughTransaction()
	s.custodyRepo.On("Transfer", mock.Anything, promptId, seller, custody.EscrowAddress(promptId)).
		Return(nil)
	s.listingRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	s.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	l, err := s.im.Create(c, seller, promptId, 2000, "listed again")
	s.NoError(err)
	s.True(l.IsActive)
	s.Equal(seller, l.Seller)
	s.Equal(uint64(2000), l.Price)
	s.Nil(l.ClosedAt)
	s.NotEqual("closed-instance", l.Instance)

	s.custodyRepo.AssertExpectations(s.T())
}

func (s *testSuite) TestCreateNotOwner() {
	c := ctx.Background()

	s.promptRepo.On("FindOne", mock.Anything, prompt.Id{PromptId: promptId}).
		Return(&prompt.Prompt{PromptId: promptId, Creator: creator}, nil)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(nil, domain.ErrNotFound)
	s.passthroughTransaction()
	s.custodyRepo.On("Transfer", mock.Anything, promptId, buyer, custody.EscrowAddress(promptId)).
		Return(domain.ErrUnauthorized)

	_, err := s.im.Create(c, buyer, promptId, 1000, "")
	s.Equal(domain.ErrUnauthorized, err)
	s.listingRepo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *testSuite) TestUpdate() {
	c := ctx.Background()

	price := uint64(2000)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(&listing.Listing{PromptId: promptId, Seller: seller, Price: 1000, IsActive: true}, nil)
	s.listingRepo.On("Update", mock.Anything, listing.Id{PromptId: promptId}, listing.Patchable{Price: &price}).
		Return(nil)

	err := s.im.Update(c, seller, promptId, listing.Terms{Price: &price})
	s.NoError(err)
	s.listingRepo.AssertExpectations(s.T())
}

func (s *testSuite) TestUpdateNotSeller() {
	c := ctx.Background()

	price := uint64(2000)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(&listing.Listing{PromptId: promptId, Seller: seller, Price: 1000, IsActive: true}, nil)

	err := s.im.Update(c, buyer, promptId, listing.Terms{Price: &price})
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *testSuite) TestUpdateInactive() {
	c := ctx.Background()

	price := uint64(2000)
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(&listing.Listing{PromptId: promptId, Seller: seller, Price: 1000, IsActive: false}, nil)

	err := s.im.Update(c, seller, promptId, listing.Terms{Price: &price})
	s.Equal(domain.ErrNotForSale, err)
}

func (s *testSuite) expectActivePurchase(price uint64, feeBps, royaltyBps domain.Bps) {
	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(&listing.Listing{
			PromptId: promptId,
			Instance: "instance-1",
			Seller:   seller,
			Price:    price,
			IsActive: true,
			ListedAt: time.Now(),
		}, nil)
	s.promptRepo.On("FindOne", mock.Anything, prompt.Id{PromptId: promptId}).
		Return(&prompt.Prompt{PromptId: promptId, Creator: creator, RoyaltyBps: royaltyBps}, nil)
	s.marketplaceRepo.On("Get", mock.Anything).
		Return(&marketplace.Config{Admin: admin, FeeBps: feeBps}, nil)
}

func (s *testSuite) TestPurchase() {
	c := ctx.Background()

	s.expectActivePurchase(1000, 500, 250)
	s.passthroughTransaction()
	s.ledgerRepo.On("Transfer", mock.Anything, buyer, admin, uint64(50)).Return(nil)
	s.ledgerRepo.On("Transfer", mock.Anything, buyer, creator, uint64(25)).Return(nil)
	s.ledgerRepo.On("Transfer", mock.Anything, buyer, seller, uint64(925)).Return(nil)
	s.custodyRepo.On("TransferFromEscrow", mock.Anything, custody.EscrowGrant(promptId), buyer).Return(nil)
	s.listingRepo.On("Update", mock.Anything, listing.Id{PromptId: promptId}, mock.Anything).Return(nil)
	s.promptRepo.On("RecordSale", mock.Anything, prompt.Id{PromptId: promptId}, uint64(1000)).Return(nil)
	s.marketplaceRepo.On("AddTreasury", mock.Anything, uint64(50)).Return(nil)
	s.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	receipt, err := s.im.Purchase(c, buyer, promptId)
	s.NoError(err)
	s.Equal(uint64(50), receipt.PlatformFee)
	s.Equal(uint64(25), receipt.Royalty)
	s.Equal(uint64(925), receipt.SellerAmount)
	s.Equal(receipt.Price, receipt.PlatformFee+receipt.Royalty+receipt.SellerAmount)

	s.ledgerRepo.AssertExpectations(s.T())
	s.custodyRepo.AssertExpectations(s.T())
	s.marketplaceRepo.AssertExpectations(s.T())
	s.publisher.AssertCalled(s.T(), "Publish", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypePromptSold && ev.Buyer == buyer && ev.Seller == seller
	}))
}

func (s *testSuite) TestPurchaseZeroFees() {
	c := ctx.Background()

	s.expectActivePurchase(1000, 0, 0)
	s.passthroughTransaction()
	s.ledgerRepo.On("Transfer", mock.Anything, buyer, admin, uint64(0)).Return(nil)
	s.ledgerRepo.On("Transfer", mock.Anything, buyer, creator, uint64(0)).Return(nil)
	s.ledgerRepo.On("Transfer", mock.Anything, buyer, seller, uint64(1000)).Return(nil)
	s.custodyRepo.On("TransferFromEscrow", mock.Anything, custody.EscrowGrant(promptId), buyer).Return(nil)
	s.listingRepo.On("Update", mock.Anything, listing.Id{PromptId: promptId}, mock.Anything).Return(nil)
	s.promptRepo.On("RecordSale", mock.Anything, prompt.Id{PromptId: promptId}, uint64(1000)).Return(nil)
	s.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	receipt, err := s.im.Purchase(c, buyer, promptId)
	s.NoError(err)
	s.Equal(uint64(1000), receipt.SellerAmount)

	// nothing collected, nothing accumulated
	s.marketplaceRepo.AssertNotCalled(s.T(), "AddTreasury", mock.Anything, mock.Anything)
}

func (s *testSuite) TestPurchaseInactive() {
	c := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(&listing.Listing{PromptId: promptId, Seller: seller, Price: 1000, IsActive: false}, nil)

	_, err := s.im.Purchase(c, buyer, promptId)
	s.Equal(domain.ErrNotForSale, err)
}

func (s *testSuite) TestPurchaseUnlisted() {
	c := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(nil, domain.ErrNotFound)

	_, err := s.im.Purchase(c, buyer, promptId)
	s.Equal(domain.ErrNotForSale, err)
}

func (s *testSuite) TestPurchaseOwnListing() {
	c := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(&listing.Listing{PromptId: promptId, Seller: seller, Price: 1000, IsActive: true}, nil)

	_, err := s.im.Purchase(c, seller, promptId)
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *testSuite) TestPurchaseInsufficientFunds() {
	c := ctx.Background()

	s.expectActivePurchase(1000, 500, 250)
	s.passthroughTransaction()
	s.ledgerRepo.On("Transfer", mock.Anything, buyer, admin, uint64(50)).
		Return(domain.ErrInsufficientFunds)

	_, err := s.im.Purchase(c, buyer, promptId)
	s.Equal(domain.ErrInsufficientFunds, err)
	s.custodyRepo.AssertNotCalled(s.T(), "TransferFromEscrow", mock.Anything, mock.Anything, mock.Anything)
	s.promptRepo.AssertNotCalled(s.T(), "RecordSale", mock.Anything, mock.Anything, mock.Anything)
}

func (s *testSuite) TestDelist() {
	c := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(&listing.Listing{PromptId: promptId, Seller: seller, Price: 1000, IsActive: true}, nil)
	s.passthroughTransaction()
	s.custodyRepo.On("TransferFromEscrow", mock.Anything, custody.EscrowGrant(promptId), seller).Return(nil)
	s.listingRepo.On("Update", mock.Anything, listing.Id{PromptId: promptId}, mock.Anything).Return(nil)
	s.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	err := s.im.Delist(c, seller, promptId)
	s.NoError(err)

	s.custodyRepo.AssertExpectations(s.T())
	s.publisher.AssertCalled(s.T(), "Publish", mock.Anything, mock.MatchedBy(func(ev *event.Event) bool {
		return ev.Type == event.TypePromptDelisted && ev.Seller == seller
	}))
}

func (s *testSuite) TestDelistNotSeller() {
	c := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(&listing.Listing{PromptId: promptId, Seller: seller, Price: 1000, IsActive: true}, nil)

	err := s.im.Delist(c, buyer, promptId)
	s.Equal(domain.ErrUnauthorized, err)
	s.custodyRepo.AssertNotCalled(s.T(), "TransferFromEscrow", mock.Anything, mock.Anything, mock.Anything)
}

func (s *testSuite) TestDelistInactive() {
	c := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listing.Id{PromptId: promptId}).
		Return(&listing.Listing{PromptId: promptId, Seller: seller, Price: 1000, IsActive: false}, nil)

	err := s.im.Delist(c, seller, promptId)
	s.Equal(domain.ErrNotForSale, err)
}
