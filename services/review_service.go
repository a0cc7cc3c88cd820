package services

import (
	"errors"

	"github.com/quark1412/FoodyRush-sub000/entity"
	"github.com/quark1412/FoodyRush-sub000/repository"

	"gorm.io/gorm"
)

var (
	ErrAlreadyReviewed   = errors.New("product already reviewed for this order")
	ErrOrderNotShipped   = errors.New("only delivered orders can be reviewed")
	ErrProductNotInOrder = errors.New("product is not part of this order")
)

type ReviewService struct {
	db          *gorm.DB
	repo        *repository.ReviewRepository
	orderRepo   *repository.OrderRepository
	productRepo *repository.ProductRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, orderRepo *repository.OrderRepository, productRepo *repository.ProductRepository) *ReviewService {
	return &ReviewService{db: db, repo: repo, orderRepo: orderRepo, productRepo: productRepo}
}

func orderContains(order *entity.Order, productID uint) bool {
	for _, item := range order.OrderItems {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// classify buckets a rating the way the platform labels reviews.
func classify(rating int) string {
	switch {
	case rating >= 4:
		return entity.ReviewTypePositive
	case rating == 3:
		return entity.ReviewTypeNeutral
	default:
		return entity.ReviewTypeNegative
	}
}

type CreateReviewReq struct {
	ProductID uint   `json:"productId" binding:"required"`
	OrderID   uint   `json:"orderId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Content   string `json:"content" binding:"required"`
}

func (s *ReviewService) Create(userID uint, req CreateReviewReq) (*entity.Review, error) {
	order, err := s.orderRepo.FindByIDAndUser(req.OrderID, userID)
	if err != nil {
		return nil, err
	}
	if order.CurrentStatus() != entity.StatusShipped {
		return nil, ErrOrderNotShipped
	}
	if !orderContains(order, req.ProductID) {
		return nil, ErrProductNotInOrder
	}

	count, err := s.repo.CountByOrderAndProduct(req.OrderID, req.ProductID, userID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyReviewed
	}

	review := &entity.Review{
		ProductID: req.ProductID,
		UserID:    userID,
		OrderID:   req.OrderID,
		Rating:    req.Rating,
		Content:   req.Content,
		Status:    entity.ReviewStatusNotReplied,
		Type:      classify(req.Rating),
		IsActive:  true,
	}
	if err := s.repo.Create(review); err != nil {
		return nil, err
	}
	if err := s.productRepo.RefreshRating(req.ProductID); err != nil {
		return nil, err
	}
	return review, nil
}

// Reply attaches the shop's response and flips the status to Replied.
func (s *ReviewService) Reply(reviewID, responderID uint, content string) (*entity.Review, error) {
	if _, err := s.repo.FindByID(reviewID); err != nil {
		return nil, err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreateResponse(tx, &entity.ReviewResponse{
			ReviewID: reviewID,
			UserID:   responderID,
			Content:  content,
		}); err != nil {
			return err
		}
		return s.repo.UpdateStatus(tx, reviewID, entity.ReviewStatusReplied)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(reviewID)
}

// Hide and Show toggle visibility on the storefront.
func (s *ReviewService) Hide(id uint) error {
	review, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.SetActive(id, false); err != nil {
		return err
	}
	return s.productRepo.RefreshRating(review.ProductID)
}

func (s *ReviewService) Show(id uint) error {
	review, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.SetActive(id, true); err != nil {
		return err
	}
	return s.productRepo.RefreshRating(review.ProductID)
}

func (s *ReviewService) ListAll() ([]entity.Review, error) {
	var reviews []entity.Review
	err := s.repo.FindAll(&reviews)
	return reviews, err
}

func (s *ReviewService) ListForProduct(productID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := s.repo.FindActiveByProduct(productID, &reviews)
	return reviews, err
}
