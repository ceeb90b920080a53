package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/InternPulse/property-hive-backend/internal/dtos"
	"github.com/InternPulse/property-hive-backend/internal/models"
	"github.com/InternPulse/property-hive-backend/internal/repositories"
	"github.com/InternPulse/property-hive-backend/internal/utils"
)

// ---------------------------------------------------------------------
// PropertyService interface
// ---------------------------------------------------------------------

type PropertyService interface {
	CreateProperty(ctx context.Context, sellerID uuid.UUID, req *dtos.CreatePropertyRequest) (*models.Property, error)

	GetProperty(ctx context.Context, id uuid.UUID) (*dtos.PropertyDetailResponse, error)
	ListProperties(ctx context.Context) ([]*models.Property, error)
	ListSellerProperties(ctx context.Context, sellerID uuid.UUID) ([]*models.Property, error)

	UpdateProperty(ctx context.Context, sellerID, id uuid.UUID, req *dtos.UpdatePropertyRequest) (*models.Property, error)
	DeleteProperty(ctx context.Context, sellerID, id uuid.UUID) error

	AttachImage(ctx context.Context, propertyID uuid.UUID, filePath string) (*models.PropertyImage, error)
	AttachDocument(ctx context.Context, propertyID uuid.UUID, documentType, filePath string) (*models.PropertyDocument, error)

	// PurchaseProperty marks the listing sold, records the sale for the
	// seller and the purchase for the buyer, and opens a pending
	// transaction (with its invoice) for the payment.
	PurchaseProperty(ctx context.Context, buyerID, propertyID uuid.UUID, paymentMethod string) (*dtos.TransactionDetailResponse, error)

	ListPurchases(ctx context.Context, userID uuid.UUID) ([]*models.UserProperty, error)
	ListSales(ctx context.Context, userID uuid.UUID) ([]*models.SoldProperty, error)

	// RateProperty records a 1-5 star review.
	RateProperty(ctx context.Context, userID, propertyID uuid.UUID, req *dtos.CreateRatingRequest) (*models.Rating, error)
	ListRatings(ctx context.Context, propertyID uuid.UUID) ([]*models.Rating, error)
}

type propertyService struct {
	properties   repositories.PropertyRepository
	assets       repositories.PropertyAssetRepository
	ownership    repositories.OwnershipRepository
	ratings      repositories.RatingRepository
	transactions TransactionService
}

func NewPropertyService(
	properties repositories.PropertyRepository,
	assets repositories.PropertyAssetRepository,
	ownership repositories.OwnershipRepository,
	ratings repositories.RatingRepository,
	transactions TransactionService,
) PropertyService {
	return &propertyService{
		properties:   properties,
		assets:       assets,
		ownership:    ownership,
		ratings:      ratings,
		transactions: transactions,
	}
}

// ---------------------------------------------------------------------
// Listing CRUD
// ---------------------------------------------------------------------

func (s *propertyService) CreateProperty(ctx context.Context, sellerID uuid.UUID, req *dtos.CreatePropertyRequest) (*models.Property, error) {
	property := &models.Property{
		ID:           uuid.New(),
		SellerID:     sellerID,
		Location:     req.Location,
		Description:  req.Description,
		SquareMeters: req.SquareMeters,
		PropertyType: req.PropertyType,
		Price:        req.Price,
		IsActive:     true,
	}
	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id uuid.UUID) (*dtos.PropertyDetailResponse, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, utils.ErrNotFound
	}

	images, err := s.assets.ListImages(ctx, id)
	if err != nil {
		return nil, err
	}
	documents, err := s.assets.ListDocuments(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dtos.PropertyDetailResponse{
		Property:  property,
		Images:    make([]models.PropertyImage, 0, len(images)),
		Documents: make([]models.PropertyDocument, 0, len(documents)),
	}
	for _, img := range images {
		detail.Images = append(detail.Images, *img)
	}
	for _, doc := range documents {
		detail.Documents = append(detail.Documents, *doc)
	}
	return detail, nil
}

func (s *propertyService) ListProperties(ctx context.Context) ([]*models.Property, error) {
	return s.properties.ListAll(ctx)
}

func (s *propertyService) ListSellerProperties(ctx context.Context, sellerID uuid.UUID) ([]*models.Property, error) {
	return s.properties.ListBySellerID(ctx, sellerID)
}

func (s *propertyService) UpdateProperty(ctx context.Context, sellerID, id uuid.UUID, req *dtos.UpdatePropertyRequest) (*models.Property, error) {
	property, err := s.ownedProperty(ctx, sellerID, id)
	if err != nil {
		return nil, err
	}

	if req.Location != "" {
		property.Location = req.Location
	}
	if req.Description != "" {
		property.Description = req.Description
	}
	if req.SquareMeters != "" {
		property.SquareMeters = req.SquareMeters
	}
	if req.PropertyType != "" {
		property.PropertyType = req.PropertyType
	}
	if req.Price > 0 {
		property.Price = req.Price
	}

	if err := s.properties.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, sellerID, id uuid.UUID) error {
	if _, err := s.ownedProperty(ctx, sellerID, id); err != nil {
		return err
	}
	return s.properties.Delete(ctx, id)
}

func (s *propertyService) ownedProperty(ctx context.Context, sellerID, id uuid.UUID) (*models.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, utils.ErrNotFound
	}
	if property.SellerID != sellerID {
		return nil, &utils.AppError{
			StatusCode: http.StatusForbidden,
			Code:       utils.ErrCodeUnauthorized,
			Message:    "You do not own this property",
		}
	}
	return property, nil
}

func (s *propertyService) requireProperty(ctx context.Context, id uuid.UUID) error {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if property == nil {
		return utils.ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------
// Assets
// ---------------------------------------------------------------------

func (s *propertyService) AttachImage(ctx context.Context, propertyID uuid.UUID, filePath string) (*models.PropertyImage, error) {
	if err := s.requireProperty(ctx, propertyID); err != nil {
		return nil, err
	}

	img := &models.PropertyImage{
		ID:         uuid.New(),
		PropertyID: propertyID,
		FilePath:   filePath,
	}
	if err := s.assets.AddImage(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *propertyService) AttachDocument(ctx context.Context, propertyID uuid.UUID, documentType, filePath string) (*models.PropertyDocument, error) {
	if err := s.requireProperty(ctx, propertyID); err != nil {
		return nil, err
	}

	doc := &models.PropertyDocument{
		ID:           uuid.New(),
		PropertyID:   propertyID,
		DocumentType: documentType,
		FilePath:     filePath,
	}
	if err := s.assets.AddDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ---------------------------------------------------------------------
// Purchase flow
// ---------------------------------------------------------------------

func (s *propertyService) PurchaseProperty(ctx context.Context, buyerID, propertyID uuid.UUID, paymentMethod string) (*dtos.TransactionDetailResponse, error) {
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, utils.ErrNotFound
	}
	if property.IsSold {
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "Property has already been sold",
		}
	}

	if err := s.properties.MarkSold(ctx, propertyID); err != nil {
		return nil, err
	}
	if err := s.ownership.RecordSale(ctx, property.SellerID, propertyID); err != nil {
		return nil, err
	}
	if err := s.ownership.RecordPurchase(ctx, buyerID, propertyID); err != nil {
		return nil, err
	}

	// The payment itself settles out of band; the purchase opens it as
	// pending at the listing price.
	return s.transactions.CreateTransaction(ctx, buyerID, &dtos.CreateTransactionRequest{
		PropertyID:    propertyID,
		Amount:        property.Price,
		PaymentMethod: paymentMethod,
	})
}

func (s *propertyService) ListPurchases(ctx context.Context, userID uuid.UUID) ([]*models.UserProperty, error) {
	return s.ownership.ListPurchasesByUser(ctx, userID)
}

func (s *propertyService) ListSales(ctx context.Context, userID uuid.UUID) ([]*models.SoldProperty, error) {
	return s.ownership.ListSalesByUser(ctx, userID)
}

// ---------------------------------------------------------------------
// Ratings
// ---------------------------------------------------------------------

func (s *propertyService) RateProperty(ctx context.Context, userID, propertyID uuid.UUID, req *dtos.CreateRatingRequest) (*models.Rating, error) {
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, utils.ErrNotFound
	}

	rating := &models.Rating{
		ID:         uuid.New(),
		UserID:     userID,
		PropertyID: propertyID,
		Rating:     req.Rating,
	}
	if req.Feedback != "" {
		rating.Feedback = &req.Feedback
	}

	if err := s.ratings.Create(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (s *propertyService) ListRatings(ctx context.Context, propertyID uuid.UUID) ([]*models.Rating, error) {
	return s.ratings.ListByPropertyID(ctx, propertyID)
}
