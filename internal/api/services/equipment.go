package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"

	"armory/internal/api/dto"
	"armory/internal/domain"
	"armory/internal/repository"
)

var ErrEquipmentNotFound = errors.New("equipment not found")

type EquipmentService struct {
	equipmentRepo *repository.EquipmentRepository
}

func NewEquipmentService(equipmentRepo *repository.EquipmentRepository) *EquipmentService {
	return &EquipmentService{equipmentRepo: equipmentRepo}
}

// Create normalizes a user-authored form and persists it under a fresh random
// customId. createdBy is nil for unauthenticated creations.
func (s *EquipmentService) Create(ctx context.Context, form *dto.EquipmentForm, createdBy *uuid.UUID) (*domain.Equipment, error) {
	eq, err := NormalizeForm(form)
	if err != nil {
		return nil, err
	}

	eq.CustomID = generateCustomID()
	eq.CreatedBy = createdBy

	if err := s.equipmentRepo.Create(eq); err != nil {
		return nil, err
	}

	return eq, nil
}

// FindOrCreateFromExternal resolves a raw item to its stored equipment record.
// Items carrying a catalog identifier reuse it as the customId, so repeated
// adds of the same catalog entry hit the same row instead of duplicating it.
func (s *EquipmentService) FindOrCreateFromExternal(ctx context.Context, item *dto.CatalogItem) (*domain.Equipment, error) {
	key := item.ExternalKey()
	if key != "" {
		eq, err := s.equipmentRepo.FindByCustomID(key)
		if err == nil {
			return eq, nil
		}
		if !errors.Is(err, repository.ErrEquipmentNotFound) {
			return nil, err
		}
	}

	eq, err := NormalizeCatalogItem(item)
	if err != nil {
		return nil, err
	}

	if key != "" {
		eq.CustomID = key
	} else {
		eq.CustomID = generateCustomID()
	}

	if err := s.equipmentRepo.Create(eq); err != nil {
		// Lost a create race on the customId; the winner's row is the record.
		if key != "" && errors.Is(err, repository.ErrEquipmentExists) {
			return s.equipmentRepo.FindByCustomID(key)
		}
		return nil, err
	}

	return eq, nil
}

func (s *EquipmentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}
	return eq, nil
}

func (s *EquipmentService) ListCreatedBy(ctx context.Context, userID uuid.UUID) ([]*domain.Equipment, error) {
	return s.equipmentRepo.FindByCreatedBy(userID)
}

// Update applies a partial patch to a stored record. The id is taken from the
// path, never from the payload.
func (s *EquipmentService) Update(ctx context.Context, id uuid.UUID, patch *dto.EquipmentPatch) (*domain.Equipment, error) {
	eq, err := s.equipmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	if err := ApplyPatch(eq, patch); err != nil {
		return nil, err
	}

	if err := s.equipmentRepo.Update(eq); err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, err
	}

	return eq, nil
}

func generateCustomID() string {
	buf := make([]byte, 10)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is in much deeper trouble;
		// fall back to a uuid so creation still succeeds.
		return uuid.NewString()
	}
	return hex.EncodeToString(buf)
}
