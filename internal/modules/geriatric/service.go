package geriatric

import (
	"context"
	"errors"

	"github.com/geridir/core/internal/models"
	"github.com/geridir/core/internal/pkg/pagination"
	"github.com/geridir/core/internal/pkg/response"
	"gorm.io/gorm"
)

// Service manages care-residence listings.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create stores a new listing with its image and therapy associations.
func (s *Service) Create(ctx context.Context, dto *CreateGeriatricDTO) (*models.GeriatricModel, error) {
	g := &models.GeriatricModel{
		Name:          dto.Name,
		Description:   dto.Description,
		Address:       dto.Address,
		Street:        dto.Street,
		StreetNumber:  dto.StreetNumber,
		City:          dto.City,
		Province:      dto.Province,
		Country:       dto.Country,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		PriceRangeMin: dto.PriceRangeMin,
		PriceRangeMax: dto.PriceRangeMax,
		MainImage:     dto.MainImage,
	}
	applyFlags(g, dto.CapabilityFlags)

	if g.MainImage == "" && len(dto.ImageURLs) > 0 {
		g.MainImage = dto.ImageURLs[0]
	}
	for _, url := range dto.ImageURLs {
		g.Images = append(g.Images, models.GeriatricImage{URL: url})
	}
	g.Therapies = therapyRows(dto.Therapies)

	if err := s.db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

// Get loads one listing with its associations. Returns (nil, nil) when the
// listing does not exist.
func (s *Service) Get(ctx context.Context, id string) (*models.GeriatricModel, error) {
	var g models.GeriatricModel
	err := s.db.WithContext(ctx).
		Preload("Images").
		Preload("Therapies").
		Preload("Reviews").
		First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// List returns listings page by page, newest first.
func (s *Service) List(ctx context.Context, q pagination.Query) ([]models.GeriatricModel, response.Pagination, error) {
	query := s.db.WithContext(ctx).
		Model(&models.GeriatricModel{}).
		Preload("Images").
		Preload("Therapies").
		Order("created_at DESC")

	var rows []models.GeriatricModel
	pag, err := pagination.Paginate(query, q, &rows)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return rows, pag, nil
}

// Update patches the listing. A non-nil therapy or image list replaces the
// stored associations wholesale. Returns (nil, nil) when absent.
func (s *Service) Update(ctx context.Context, id string, dto *UpdateGeriatricDTO) (*models.GeriatricModel, error) {
	var g models.GeriatricModel
	err := s.db.WithContext(ctx).First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	applyUpdate(&g, dto)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&g).Error; err != nil {
			return err
		}
		if dto.Therapies != nil {
			if err := tx.Unscoped().
				Where("geriatric_id = ?", g.ID).
				Delete(&models.GeriatricTherapy{}).Error; err != nil {
				return err
			}
			for _, row := range therapyRows(*dto.Therapies) {
				row.GeriatricID = g.ID
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			}
		}
		if dto.ImageURLs != nil {
			if err := tx.Unscoped().
				Where("geriatric_id = ?", g.ID).
				Delete(&models.GeriatricImage{}).Error; err != nil {
				return err
			}
			for _, url := range *dto.ImageURLs {
				img := models.GeriatricImage{GeriatricID: g.ID, URL: url}
				if err := tx.Create(&img).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Delete soft-deletes a listing. Returns gorm.ErrRecordNotFound when the
// listing does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.GeriatricModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func applyFlags(g *models.GeriatricModel, flags CapabilityFlags) {
	g.HasDayCare = flags.HasDayCare
	g.HasPermanentStay = flags.HasPermanentStay
	g.HasPrivateRoom = flags.HasPrivateRoom
	g.HasDoubleRoom = flags.HasDoubleRoom
	g.HasSharedRoom = flags.HasSharedRoom
	g.HasPrivateBath = flags.HasPrivateBath
	g.HasSharedBath = flags.HasSharedBath
	g.HasIndependentCare = flags.HasIndependentCare
	g.HasSemiDependent = flags.HasSemiDependent
	g.HasDependent = flags.HasDependent
	g.HasHighComplexity = flags.HasHighComplexity
	g.Has24hMedical = flags.Has24hMedical
	g.Has24hNursing = flags.Has24hNursing
	g.HasPresentialDoctor = flags.HasPresentialDoctor
	g.HasMedicationSupply = flags.HasMedicationSupply
	g.HasAttentionForNeurologicalDiseases = flags.HasAttentionForNeurologicalDiseases
}

func applyUpdate(g *models.GeriatricModel, dto *UpdateGeriatricDTO) {
	if dto.Name != nil {
		g.Name = *dto.Name
	}
	if dto.Description != nil {
		g.Description = *dto.Description
	}
	if dto.Address != nil {
		g.Address = *dto.Address
	}
	if dto.Street != nil {
		g.Street = *dto.Street
	}
	if dto.StreetNumber != nil {
		g.StreetNumber = *dto.StreetNumber
	}
	if dto.City != nil {
		g.City = *dto.City
	}
	if dto.Province != nil {
		g.Province = *dto.Province
	}
	if dto.Country != nil {
		g.Country = *dto.Country
	}
	if dto.Latitude != nil {
		g.Latitude = dto.Latitude
	}
	if dto.Longitude != nil {
		g.Longitude = dto.Longitude
	}
	if dto.PriceRangeMin != nil {
		g.PriceRangeMin = dto.PriceRangeMin
	}
	if dto.PriceRangeMax != nil {
		g.PriceRangeMax = dto.PriceRangeMax
	}
	if dto.MainImage != nil {
		g.MainImage = *dto.MainImage
	}

	// Tri-state flags: only sent values overwrite.
	overlayFlag(&g.HasDayCare, dto.HasDayCare)
	overlayFlag(&g.HasPermanentStay, dto.HasPermanentStay)
	overlayFlag(&g.HasPrivateRoom, dto.HasPrivateRoom)
	overlayFlag(&g.HasDoubleRoom, dto.HasDoubleRoom)
	overlayFlag(&g.HasSharedRoom, dto.HasSharedRoom)
	overlayFlag(&g.HasPrivateBath, dto.HasPrivateBath)
	overlayFlag(&g.HasSharedBath, dto.HasSharedBath)
	overlayFlag(&g.HasIndependentCare, dto.HasIndependentCare)
	overlayFlag(&g.HasSemiDependent, dto.HasSemiDependent)
	overlayFlag(&g.HasDependent, dto.HasDependent)
	overlayFlag(&g.HasHighComplexity, dto.HasHighComplexity)
	overlayFlag(&g.Has24hMedical, dto.Has24hMedical)
	overlayFlag(&g.Has24hNursing, dto.Has24hNursing)
	overlayFlag(&g.HasPresentialDoctor, dto.HasPresentialDoctor)
	overlayFlag(&g.HasMedicationSupply, dto.HasMedicationSupply)
	overlayFlag(&g.HasAttentionForNeurologicalDiseases, dto.HasAttentionForNeurologicalDiseases)
}

func overlayFlag(dst *models.TriState, src *bool) {
	if src != nil {
		*dst = src
	}
}

func therapyRows(raw []string) []models.GeriatricTherapy {
	var rows []models.GeriatricTherapy
	seen := map[models.Therapy]bool{}
	for _, value := range raw {
		t, ok := models.ParseTherapy(value)
		if !ok || seen[t] {
			continue
		}
		seen[t] = true
		rows = append(rows, models.GeriatricTherapy{Therapy: t})
	}
	return rows
}
